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

// Package pagepool hands out fixed-size pages carved
// from one contiguous reserved memory region.
//
// The region is reserved once, up front, via a
// per-platform backend (an anonymous mapping on unix,
// VirtualAlloc on windows) and never moves, so a page is
// fully identified by its base address: Free recovers
// the page index from the buffer pointer alone.
// Occupancy lives in a bitmap word slice; a page's bit
// is set exactly while the page is handed out.
package pagepool

import (
	"fmt"
	"iter"
	"os"
	"slices"
	"sync"
	"unsafe"

	"github.com/devbits/devbits/bitmap"
	"github.com/devbits/devbits/internal/invariants"
	"github.com/devbits/devbits/ints"
)

// Pool is a fixed-size page allocator.
// All methods are safe for concurrent use.
type Pool struct {
	mu        sync.Mutex
	mem       []byte // whole reservation; usable prefix is pages<<pageShift
	words     []uint64
	pages     int
	pageShift uint

	// pages handed out; must match the bitmap
	// population after every mutation
	inuse int
}

// New reserves pages*pageSize bytes and returns a pool
// over them. pageSize must be a power of two.
func New(pages, pageSize int) (*Pool, error) {
	if pages <= 0 {
		return nil, fmt.Errorf("pagepool: bad page count %d", pages)
	}
	if pageSize <= 0 || !ints.IsPow2(uint(pageSize)) {
		return nil, fmt.Errorf("pagepool: page size %d is not a power of two", pageSize)
	}
	// size the reservation to the OS mapping granularity;
	// munmap must see the length we mapped
	size := ints.AlignUp(uint(pages*pageSize), uint(os.Getpagesize()))
	mem, err := reserve(int(size))
	if err != nil {
		return nil, fmt.Errorf("pagepool: reserving %d bytes: %w", size, err)
	}
	return &Pool{
		mem:       mem,
		words:     make([]uint64, bitmap.Words[uint64](pages)),
		pages:     pages,
		pageShift: uint(bitmap.Log2(uint(pageSize))),
	}, nil
}

// Pages returns the total page count.
func (p *Pool) Pages() int { return p.pages }

// PageSize returns the size of each page in bytes.
func (p *Pool) PageSize() int { return 1 << p.pageShift }

// InUse returns the number of pages currently handed out.
func (p *Pool) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inuse
}

// Used returns an iterator over the indices of the pages
// currently handed out, in ascending order. The set is
// snapshotted when iteration begins.
func (p *Pool) Used() iter.Seq[int] {
	return func(yield func(int) bool) {
		p.mu.Lock()
		pgs := slices.Collect(bitmap.Ones(p.words, p.pages))
		p.mu.Unlock()
		for _, pg := range pgs {
			if !yield(pg) {
				return
			}
		}
	}
}

// Alloc returns an unused page.
//
// If every page is in use, Alloc panics: the pool is
// sized for its workload at construction, so exhaustion
// is a sizing bug rather than a condition to recover
// from.
func (p *Pool) Alloc() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	pg := bitmap.NextClear(p.words, 0, p.pages)
	if pg == p.pages {
		panic("pagepool: out of pages")
	}
	bitmap.Set(p.words, pg)
	p.inuse++
	p.checkCounts()
	return p.page(pg, 1)
}

// AllocRun returns n contiguous unused pages as a single
// buffer, or false if no such run exists. A run can be
// unavailable through fragmentation while plenty of
// single pages remain, so unlike Alloc this is an
// ordinary outcome and not a panic.
func (p *Pool) AllocRun(n int) ([]byte, bool) {
	if n <= 0 {
		return nil, false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for pg := bitmap.NextClear(p.words, 0, p.pages); pg+n <= p.pages; pg = bitmap.NextClear(p.words, pg+1, p.pages) {
		end := bitmap.NextSet(p.words, pg, pg+n)
		if end == pg+n {
			bitmap.SetRange(p.words, pg, pg+n)
			p.inuse += n
			p.checkCounts()
			return p.page(pg, n), true
		}
		pg = end
	}
	return nil, false
}

// Free returns the pages covering buf to the pool.
// buf must be exactly a slice returned by Alloc or
// AllocRun that has not already been freed; anything
// else panics.
func (p *Pool) Free(buf []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(buf) == 0 || !ints.IsAligned(uint(len(buf)), uint(p.PageSize())) {
		panic("pagepool: Free of a non-page-sized buffer")
	}
	off := p.offset(&buf[0])
	if !ints.IsAligned(uint(off), uint(p.PageSize())) {
		panic("pagepool: Free of a pointer that is not a page base")
	}
	pg := off >> p.pageShift
	n := len(buf) >> p.pageShift
	if pg+n > p.pages || bitmap.NextClear(p.words, pg, pg+n) != pg+n {
		panic("pagepool: double free")
	}
	bitmap.ClearRange(p.words, pg, pg+n)
	p.inuse -= n
	p.checkCounts()
}

// Close releases the reservation. The pool must not be
// used afterwards.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mem == nil {
		return nil
	}
	err := release(p.mem)
	p.mem, p.words = nil, nil
	return err
}

// page returns the n-page buffer starting at page pg.
func (p *Pool) page(pg, n int) []byte {
	buf := p.mem[pg<<p.pageShift:]
	return buf[: n<<p.pageShift : n<<p.pageShift]
}

// offset maps a pointer into the region back to its byte
// displacement from the region base.
func (p *Pool) offset(ptr *byte) int {
	base := uintptr(unsafe.Pointer(&p.mem[0]))
	q := uintptr(unsafe.Pointer(ptr))
	if q < base || q-base >= uintptr(p.pages<<p.pageShift) {
		panic("pagepool: pointer outside the pool")
	}
	return int(q - base)
}

func (p *Pool) checkCounts() {
	if invariants.Enabled && p.inuse != bitmap.Count(p.words, p.pages) {
		panic("pagepool: in-use counter diverged from the bitmap")
	}
}
