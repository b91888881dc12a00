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

// Package bitmap implements bit-level operations on
// caller-owned slices of unsigned machine words.
//
// A bitmap is just a []T for any unsigned word type T;
// bit b lives in word b/W at intra-word position b%W,
// where W is the bit width of T. The package never
// allocates: callers size their own storage with Words
// and zero it (or not) as they see fit. Capacity is not
// recorded anywhere; operations that need a bound take
// it as an argument.
//
// None of these functions are safe for concurrent use
// on overlapping storage; callers that share a bitmap
// across goroutines must provide their own locking.
package bitmap

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Words returns the number of T-typed words needed to
// store nbits bits, i.e. ceil(nbits/W) for W the bit
// width of T.
func Words[T constraints.Unsigned](nbits int) int {
	w := int(unsafe.Sizeof(T(0))) * 8
	return (nbits + w - 1) / w
}

// Set sets bit k in bm.
//
// There is no capacity check beyond the slice bounds on
// the word holding k; indexing past the caller's storage
// panics via the runtime bounds check.
func Set[T constraints.Unsigned, K constraints.Integer](bm []T, k K) {
	bm[uintptr(k)/(unsafe.Sizeof(bm[0])*8)] |= T(1) << (uintptr(k) % (unsafe.Sizeof(bm[0]) * 8))
}

// Clear clears bit k in bm.
func Clear[T constraints.Unsigned, K constraints.Integer](bm []T, k K) {
	bm[uintptr(k)/(unsafe.Sizeof(bm[0])*8)] &^= T(1) << (uintptr(k) % (unsafe.Sizeof(bm[0]) * 8))
}

// IsSet returns whether bit k in bm is set.
func IsSet[T constraints.Unsigned, K constraints.Integer](bm []T, k K) bool {
	return bm[uintptr(k)/(unsafe.Sizeof(bm[0])*8)]&(T(1)<<(uintptr(k)%(unsafe.Sizeof(bm[0])*8))) != 0
}

// IsClear returns whether bit k in bm is clear.
// It is always the negation of IsSet.
func IsClear[T constraints.Unsigned, K constraints.Integer](bm []T, k K) bool {
	return !IsSet(bm, k)
}
