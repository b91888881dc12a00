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
	"testing"
)

func TestWords(t *testing.T) {
	cases := []struct {
		nbits             int
		w8, w16, w32, w64 int
	}{
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1},
		{8, 1, 1, 1, 1},
		{9, 2, 1, 1, 1},
		{16, 2, 1, 1, 1},
		{17, 3, 2, 1, 1},
		{32, 4, 2, 1, 1},
		{33, 5, 3, 2, 1},
		{64, 8, 4, 2, 1},
		{65, 9, 5, 3, 2},
		{1000, 125, 63, 32, 16},
	}
	for _, c := range cases {
		if got := Words[uint8](c.nbits); got != c.w8 {
			t.Errorf("Words[uint8](%d) = %d, want %d", c.nbits, got, c.w8)
		}
		if got := Words[uint16](c.nbits); got != c.w16 {
			t.Errorf("Words[uint16](%d) = %d, want %d", c.nbits, got, c.w16)
		}
		if got := Words[uint32](c.nbits); got != c.w32 {
			t.Errorf("Words[uint32](%d) = %d, want %d", c.nbits, got, c.w32)
		}
		if got := Words[uint64](c.nbits); got != c.w64 {
			t.Errorf("Words[uint64](%d) = %d, want %d", c.nbits, got, c.w64)
		}
	}
}

// the 16-bit scenario: set the two end bits, check
// everything in between, then drop the low one
func TestSetClearScenario(t *testing.T) {
	bm := make([]uint64, Words[uint64](16))
	Set(bm, 0)
	Set(bm, 15)
	if !IsSet(bm, 0) || !IsSet(bm, 15) {
		t.Fatal("end bits not set")
	}
	for b := 1; b < 15; b++ {
		if !IsClear(bm, b) {
			t.Errorf("bit %d unexpectedly set", b)
		}
	}
	Clear(bm, 0)
	if IsSet(bm, 0) {
		t.Error("bit 0 still set after Clear")
	}
	if !IsSet(bm, 15) {
		t.Error("bit 15 lost by clearing bit 0")
	}
}

func singleBitOps[T uint8 | uint16 | uint32 | uint64](t *testing.T) {
	t.Helper()
	const nbits = 200
	bm := make([]T, Words[T](nbits))

	// set is idempotent and independent of other bits
	for _, b := range []int{0, 1, 7, 8, 63, 64, 65, 100, nbits - 1} {
		Set(bm, b)
		Set(bm, b)
		if !IsSet(bm, b) {
			t.Fatalf("bit %d not set", b)
		}
		if IsClear(bm, b) {
			t.Fatalf("IsClear(%d) is not the negation of IsSet", b)
		}
	}
	want := map[int]bool{0: true, 1: true, 7: true, 8: true, 63: true, 64: true, 65: true, 100: true, nbits - 1: true}
	for b := 0; b < nbits; b++ {
		if IsSet(bm, b) != want[b] {
			t.Fatalf("bit %d = %v, want %v", b, IsSet(bm, b), want[b])
		}
	}

	// clear is idempotent and independent of other bits
	Clear(bm, 64)
	Clear(bm, 64)
	delete(want, 64)
	for b := 0; b < nbits; b++ {
		if IsSet(bm, b) != want[b] {
			t.Fatalf("after Clear(64): bit %d = %v, want %v", b, IsSet(bm, b), want[b])
		}
	}
}

func TestSingleBitOps(t *testing.T) {
	t.Run("uint8", singleBitOps[uint8])
	t.Run("uint16", singleBitOps[uint16])
	t.Run("uint32", singleBitOps[uint32])
	t.Run("uint64", singleBitOps[uint64])
}

func TestIsClearNegation(t *testing.T) {
	bm := make([]uint64, 4)
	if err := RandomFill(bm); err != nil {
		t.Fatal(err)
	}
	for b := 0; b < 256; b++ {
		if IsClear(bm, b) == IsSet(bm, b) {
			t.Fatalf("bit %d: IsClear and IsSet agree", b)
		}
	}
}
