// SPDX-License-Identifier: MIT

package vec3

import (
	"fmt"
	"sync"
)

// Allocator hands out and takes back the 3-element blocks used by Indirect.
// Free MUST reject blocks it did not hand out or already took back with
// ErrInvalidStorageState when it is able to detect them.
type Allocator interface {
	Alloc() (*[Dim]float64, error)
	Free(block *[Dim]float64) error
}

// HeapAllocator allocates every block with new and zeroes it on Free.
// It cannot detect double frees; Indirect never issues one.
type HeapAllocator struct{}

// Alloc returns a fresh zeroed block.
func (HeapAllocator) Alloc() (*[Dim]float64, error) { return new([Dim]float64), nil }

// Free zeroes the block so stale readers observe zeros instead of old data.
func (HeapAllocator) Free(block *[Dim]float64) error {
	if block == nil {
		return vecErrorf("HeapAllocator.Free", ErrInvalidStorageState)
	}
	*block = [Dim]float64{}

	return nil
}

// CountingAllocator is a HeapAllocator that tracks every live block.
// It counts allocations and frees and rejects double or foreign frees, which
// makes it the allocator of choice for tests and for the benchmark harness
// (allocation counts per scenario).
//
// Safe for concurrent use.
type CountingAllocator struct {
	mu     sync.Mutex
	live   map[*[Dim]float64]struct{}
	allocs int
	frees  int
}

// NewCountingAllocator returns an empty tracker.
func NewCountingAllocator() *CountingAllocator {
	return &CountingAllocator{live: make(map[*[Dim]float64]struct{})}
}

// Alloc returns a fresh block and records it as live.
func (a *CountingAllocator) Alloc() (*[Dim]float64, error) {
	block := new([Dim]float64)

	a.mu.Lock()
	a.live[block] = struct{}{}
	a.allocs++
	a.mu.Unlock()

	return block, nil
}

// Free takes a live block back. Freeing a block twice, or a block this
// allocator never handed out, returns ErrInvalidStorageState and leaves the
// counters untouched.
func (a *CountingAllocator) Free(block *[Dim]float64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.live[block]; !ok {
		return fmt.Errorf("CountingAllocator.Free(%p): %w", block, ErrInvalidStorageState)
	}
	delete(a.live, block)
	a.frees++
	*block = [Dim]float64{}

	return nil
}

// Allocs reports how many blocks were handed out.
func (a *CountingAllocator) Allocs() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.allocs
}

// Frees reports how many blocks were taken back.
func (a *CountingAllocator) Frees() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.frees
}

// Live reports how many blocks are currently outstanding.
func (a *CountingAllocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.live)
}

// Owns reports whether block is currently live in this allocator.
func (a *CountingAllocator) Owns(block *[Dim]float64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.live[block]

	return ok
}

// Reset forgets every block and zeroes the counters.
func (a *CountingAllocator) Reset() {
	a.mu.Lock()
	a.live = make(map[*[Dim]float64]struct{})
	a.allocs, a.frees = 0, 0
	a.mu.Unlock()
}

var (
	_ Allocator = HeapAllocator{}
	_ Allocator = (*CountingAllocator)(nil)
)
