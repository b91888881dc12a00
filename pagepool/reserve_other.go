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

//go:build !linux && !darwin && !windows

package pagepool

// fallback reservation backend: an ordinary heap
// allocation; the region still never moves because the
// pool holds the only reference to the full slice

func reserve(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func release(mem []byte) error {
	return nil
}
