// SPDX-License-Identifier: MIT

// Package vec3 - storage contract shared by every backend.
//
// Purpose:
//   - Describe where the three components of a vector physically live.
//   - Let Naive and Lazy vectors be generic over that choice without any
//     runtime dispatch: the backend is a type parameter, resolved at compile time.
//
// The constraint is self-referential (Storage[S] mentions S) so that Spawn and
// Clone hand back the same concrete backend they were called on.

package vec3

// Dim is the fixed component count of every vector in this package.
const Dim = 3

// Component indexes.
const (
	IdxX = 0
	IdxY = 1
	IdxZ = 2
)

// Storage is the capability set of a storage backend S.
//
// Contract:
//   - At/Set accept i in 0..2; anything else is ErrIndexOutOfRange.
//   - X/Y/Z and SetX/SetY/SetZ are the named accessors; they panic with
//     ErrInvalidStorageState on released storage (programmer error).
//   - Spawn builds new storage of the same kind (same allocator for Indirect).
//   - Clone is always a deep copy; no two live values share a block.
//   - Release gives back owned resources exactly once; a second call
//     returns ErrInvalidStorageState.
type Storage[S any] interface {
	At(i int) (float64, error)
	Set(i int, v float64) error

	X() float64
	Y() float64
	Z() float64
	SetX(v float64)
	SetY(v float64)
	SetZ(v float64)

	Spawn(x, y, z float64) (S, error)
	Clone() (S, error)
	Release() error
}

// Kind constructs a fresh backend of type S from three components.
// EmbeddedKind and IndirectKind are the two provided kinds.
type Kind[S Storage[S]] func(x, y, z float64) (S, error)

// EmbeddedKind builds Embedded storage.
var EmbeddedKind Kind[*Embedded] = func(x, y, z float64) (*Embedded, error) {
	return NewEmbedded(x, y, z), nil
}

// IndirectKind builds Indirect storage whose blocks come from alloc.
// A nil alloc means HeapAllocator.
func IndirectKind(alloc Allocator) Kind[*Indirect] {
	return func(x, y, z float64) (*Indirect, error) {
		return NewIndirect(alloc, x, y, z)
	}
}

// components reads all three components of s in index order.
func components[S Storage[S]](s S) ([Dim]float64, error) {
	var (
		out [Dim]float64
		err error
	)
	for i := 0; i < Dim; i++ {
		if out[i], err = s.At(i); err != nil {
			return [Dim]float64{}, err
		}
	}

	return out, nil
}

// noCopy makes go vet's copylocks check flag value copies of the embedding struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
