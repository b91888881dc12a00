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
	"unsafe"
)

// PtrAlignDown returns p rounded down to a multiple of
// align, which must be a power of two. p must point into
// an allocation that extends at least to the rounded
// address; the adjustment stays inside the allocation by
// the usual unsafe.Add rules.
func PtrAlignDown(p unsafe.Pointer, align uintptr) unsafe.Pointer {
	return unsafe.Add(p, -int(uintptr(p)&(align-1)))
}

// PtrAlignUp returns p rounded up to a multiple of align,
// which must be a power of two.
func PtrAlignUp(p unsafe.Pointer, align uintptr) unsafe.Pointer {
	return unsafe.Add(p, int(-uintptr(p)&(align-1)))
}
