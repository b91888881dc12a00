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

func TestLog2(t *testing.T) {
	cases := []struct {
		in, want uint
	}{
		{1, 0},
		{2, 1},
		{4, 2},
		{8, 3},
		{1024, 10},
		{1 << 20, 20},
	}
	for _, c := range cases {
		if got := Log2(c.in); got != c.want {
			t.Errorf("Log2(%d) = %d, want %d", c.in, got, c.want)
		}
	}
	for k := 0; k < 64; k++ {
		if got := Log2(uint64(1) << k); got != uint64(k) {
			t.Errorf("Log2(1<<%d) = %d", k, got)
		}
	}
	for k := 0; k < 16; k++ {
		if got := Log2(uint16(1) << k); got != uint16(k) {
			t.Errorf("Log2(uint16(1)<<%d) = %d", k, got)
		}
	}
}
