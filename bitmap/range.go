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
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// SetRange sets the bits [first, last) in bm.
// Interior words are filled whole; only the words
// holding first and last-1 need mask arithmetic.
func SetRange[T constraints.Unsigned, K constraints.Integer](bm []T, first, last K) {
	if first >= last {
		return
	}
	w := unsafe.Sizeof(bm[0]) * 8
	msk := w - 1
	ones := ^T(0)
	lo := uintptr(first) / w
	hi := uintptr(last-1) / w
	loMask := ones << (uintptr(first) & msk)
	hiMask := ones >> ((uintptr(last-1) & msk) ^ msk)
	if lo == hi {
		bm[lo] |= loMask & hiMask
		return
	}
	bm[lo] |= loMask
	for i := lo + 1; i < hi; i++ {
		bm[i] = ones
	}
	bm[hi] |= hiMask
}

// ClearRange clears the bits [first, last) in bm.
func ClearRange[T constraints.Unsigned, K constraints.Integer](bm []T, first, last K) {
	if first >= last {
		return
	}
	w := unsafe.Sizeof(bm[0]) * 8
	msk := w - 1
	ones := ^T(0)
	lo := uintptr(first) / w
	hi := uintptr(last-1) / w
	loMask := ones << (uintptr(first) & msk)
	hiMask := ones >> ((uintptr(last-1) & msk) ^ msk)
	if lo == hi {
		bm[lo] &^= loMask & hiMask
		return
	}
	bm[lo] &^= loMask
	for i := lo + 1; i < hi; i++ {
		bm[i] = 0
	}
	bm[hi] &^= hiMask
}

// Count returns the number of set bits in [0, max).
func Count[T constraints.Unsigned, K constraints.Integer](bm []T, max K) int {
	if max <= 0 {
		return 0
	}
	w := unsafe.Sizeof(bm[0]) * 8
	full := uintptr(max) / w
	n := 0
	for i := uintptr(0); i < full; i++ {
		n += bits.OnesCount64(uint64(bm[i]))
	}
	if tail := uintptr(max) % w; tail != 0 {
		n += bits.OnesCount64(uint64(bm[full] & (^T(0) >> (w - tail))))
	}
	return n
}
