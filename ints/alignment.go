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

package ints

import (
	"golang.org/x/exp/constraints"

	"github.com/devbits/devbits/internal/invariants"
)

// IsPow2 returns true if and only if v is a power of two
func IsPow2[T constraints.Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}

// IsAligned returns true if and only if v is a multiple
// of align, which must be a power of two
func IsAligned[T constraints.Unsigned](v, align T) bool {
	if invariants.Enabled && !IsPow2(align) {
		panic("ints: alignment is not a power of two")
	}
	return v&(align-1) == 0
}

// AlignDown returns v rounded down to a multiple of
// align, which must be a power of two
func AlignDown[T constraints.Unsigned](v, align T) T {
	if invariants.Enabled && !IsPow2(align) {
		panic("ints: alignment is not a power of two")
	}
	return v &^ (align - 1)
}

// AlignUp returns v rounded up to a multiple of align,
// which must be a power of two
func AlignUp[T constraints.Unsigned](v, align T) T {
	return AlignDown(v+align-1, align)
}

// DivRoundDown returns num/den rounded towards zero
func DivRoundDown[T constraints.Unsigned](num, den T) T {
	return num / den
}

// DivRoundUp returns num/den rounded away from zero
func DivRoundUp[T constraints.Unsigned](num, den T) T {
	return DivRoundDown(num+den-1, den)
}
