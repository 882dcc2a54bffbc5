// SPDX-License-Identifier: MIT

package vec3

import "fmt"

// Indirect keeps the three components in a separately allocated block that it
// exclusively owns.
//
// Ownership rules:
//   - The block comes from an Allocator at construction and goes back to the
//     same Allocator on Release, exactly once.
//   - After Release every accessor fails with ErrInvalidStorageState (At/Set)
//     or panics with it (named accessors).
//   - Values must not be copied (go vet flags it); use Clone, which deep-copies
//     into a fresh block from the same Allocator.
type Indirect struct {
	_     noCopy
	block *[Dim]float64
	alloc Allocator
}

var (
	_ Storage[*Indirect] = (*Indirect)(nil)
	_ fmt.Stringer       = (*Indirect)(nil)
)

const (
	ctxIndirectAt      = "Indirect.At"
	ctxIndirectSet     = "Indirect.Set"
	ctxIndirectRelease = "Indirect.Release"
	ctxIndirectNew     = "NewIndirect"
)

// NewIndirect allocates a block from alloc and stores (x, y, z) in it.
// A nil alloc means HeapAllocator.
func NewIndirect(alloc Allocator, x, y, z float64) (*Indirect, error) {
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	block, err := alloc.Alloc()
	if err != nil {
		return nil, vecErrorf(ctxIndirectNew, err)
	}
	if block == nil {
		return nil, vecErrorf(ctxIndirectNew, ErrInvalidStorageState)
	}
	block[IdxX], block[IdxY], block[IdxZ] = x, y, z

	return &Indirect{block: block, alloc: alloc}, nil
}

// Released reports whether the block was already given back.
func (s *Indirect) Released() bool { return s.block == nil }

// Allocator returns the allocator that owns the block.
func (s *Indirect) Allocator() Allocator { return s.alloc }

// At returns component i.
func (s *Indirect) At(i int) (float64, error) {
	if s.block == nil {
		return 0, vecErrorf(ctxIndirectAt, ErrInvalidStorageState)
	}
	if i < 0 || i >= Dim {
		return 0, indexErrorf(ctxIndirectAt, i)
	}

	return s.block[i], nil
}

// Set writes component i.
func (s *Indirect) Set(i int, v float64) error {
	if s.block == nil {
		return vecErrorf(ctxIndirectSet, ErrInvalidStorageState)
	}
	if i < 0 || i >= Dim {
		return indexErrorf(ctxIndirectSet, i)
	}
	s.block[i] = v

	return nil
}

// live returns the block or panics on released storage.
func (s *Indirect) live(tag string) *[Dim]float64 {
	if s.block == nil {
		panic(vecErrorf(tag, ErrInvalidStorageState))
	}

	return s.block
}

func (s *Indirect) X() float64 { return s.live("Indirect.X")[IdxX] }
func (s *Indirect) Y() float64 { return s.live("Indirect.Y")[IdxY] }
func (s *Indirect) Z() float64 { return s.live("Indirect.Z")[IdxZ] }

func (s *Indirect) SetX(v float64) { s.live("Indirect.SetX")[IdxX] = v }
func (s *Indirect) SetY(v float64) { s.live("Indirect.SetY")[IdxY] = v }
func (s *Indirect) SetZ(v float64) { s.live("Indirect.SetZ")[IdxZ] = v }

// Spawn allocates new indirect storage from the same allocator.
func (s *Indirect) Spawn(x, y, z float64) (*Indirect, error) {
	return NewIndirect(s.alloc, x, y, z)
}

// Clone deep-copies the components into a new block.
func (s *Indirect) Clone() (*Indirect, error) {
	if s.block == nil {
		return nil, vecErrorf("Indirect.Clone", ErrInvalidStorageState)
	}

	return NewIndirect(s.alloc, s.block[IdxX], s.block[IdxY], s.block[IdxZ])
}

// Release gives the block back to its allocator and clears the reference.
// The reference is cleared even when the allocator rejects the block, so
// the allocator is never asked twice.
func (s *Indirect) Release() error {
	if s.block == nil {
		return vecErrorf(ctxIndirectRelease, ErrInvalidStorageState)
	}
	block := s.block
	s.block = nil
	if err := s.alloc.Free(block); err != nil {
		return vecErrorf(ctxIndirectRelease, err)
	}

	return nil
}

// String renders the components, or <released>.
func (s *Indirect) String() string {
	if s.block == nil {
		return "<released>"
	}

	return fmt.Sprintf("(%g, %g, %g)", s.block[IdxX], s.block[IdxY], s.block[IdxZ])
}
