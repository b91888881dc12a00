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
	"golang.org/x/exp/constraints"

	"github.com/devbits/devbits/internal/invariants"
)

// Log2 returns k such that 1<<k == v.
//
// v must be a positive power of two; anything else is a
// caller bug, caught only under the invariants build tag.
// The doubling search is deliberate: the arguments are
// alignment values and word widths known at the call
// site, never hot-path data.
func Log2[T constraints.Unsigned](v T) T {
	if invariants.Enabled && (v == 0 || v&(v-1) != 0) {
		panic("bitmap: Log2 of a non-power-of-two")
	}
	var k T
	for T(1)<<k < v {
		k++
	}
	return k
}
