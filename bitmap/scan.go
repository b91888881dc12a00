// Copyright 2026 Devbits, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package bitmap

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/devbits/devbits/internal/invariants"
)

// NextSet returns the index of the first set bit in
// [start, max), or max if every bit in that range is
// clear. The scan is a plain ascending walk; the bitmaps
// this package serves are small enough that word-at-a-time
// scanning has not been worth the complexity.
func NextSet[T constraints.Unsigned, K constraints.Integer](bm []T, start, max K) K {
	if invariants.Enabled && start > max {
		panic("bitmap: NextSet called with start > max")
	}
	bit := start
	for bit < max && !IsSet(bm, bit) {
		bit++
	}
	return bit
}

// NextClear returns the index of the first clear bit in
// [start, max), or max if every bit in that range is set.
func NextClear[T constraints.Unsigned, K constraints.Integer](bm []T, start, max K) K {
	if invariants.Enabled && start > max {
		panic("bitmap: NextClear called with start > max")
	}
	bit := start
	for bit < max && !IsClear(bm, bit) {
		bit++
	}
	return bit
}

// Ones returns an iterator over the indices of the set
// bits in [0, max), in ascending order. The sequence is
// single-use; it reads bm as it goes, so bits mutated
// behind the cursor are not revisited and bits mutated
// ahead of it are observed.
func Ones[T constraints.Unsigned, K constraints.Integer](bm []T, max K) iter.Seq[K] {
	return func(yield func(K) bool) {
		for bit := NextSet(bm, 0, max); bit < max; bit = NextSet(bm, bit+1, max) {
			if !yield(bit) {
				return
			}
		}
	}
}

// Zeros returns an iterator over the indices of the clear
// bits in [0, max), in ascending order.
func Zeros[T constraints.Unsigned, K constraints.Integer](bm []T, max K) iter.Seq[K] {
	return func(yield func(K) bool) {
		for bit := NextClear(bm, 0, max); bit < max; bit = NextClear(bm, bit+1, max) {
			if !yield(bit) {
				return
			}
		}
	}
}
