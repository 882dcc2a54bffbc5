// SPDX-License-Identifier: MIT

package vec3

import "fmt"

// Embedded keeps the three components inside the value itself.
// Copying an Embedded copies its components; there is nothing to release.
type Embedded struct {
	data [Dim]float64
}

var (
	_ Storage[*Embedded] = (*Embedded)(nil)
	_ fmt.Stringer       = (*Embedded)(nil)
)

// NewEmbedded returns embedded storage holding (x, y, z).
func NewEmbedded(x, y, z float64) *Embedded {
	return &Embedded{data: [Dim]float64{x, y, z}}
}

// At returns component i.
func (e *Embedded) At(i int) (float64, error) {
	if i < 0 || i >= Dim {
		return 0, indexErrorf("Embedded.At", i)
	}

	return e.data[i], nil
}

// Set writes component i.
func (e *Embedded) Set(i int, v float64) error {
	if i < 0 || i >= Dim {
		return indexErrorf("Embedded.Set", i)
	}
	e.data[i] = v

	return nil
}

func (e *Embedded) X() float64 { return e.data[IdxX] }
func (e *Embedded) Y() float64 { return e.data[IdxY] }
func (e *Embedded) Z() float64 { return e.data[IdxZ] }

func (e *Embedded) SetX(v float64) { e.data[IdxX] = v }
func (e *Embedded) SetY(v float64) { e.data[IdxY] = v }
func (e *Embedded) SetZ(v float64) { e.data[IdxZ] = v }

// Spawn returns new embedded storage; it never fails.
func (e *Embedded) Spawn(x, y, z float64) (*Embedded, error) {
	return NewEmbedded(x, y, z), nil
}

// Clone returns an independent copy.
func (e *Embedded) Clone() (*Embedded, error) {
	c := *e

	return &c, nil
}

// Release is a no-op: embedded storage owns nothing.
func (e *Embedded) Release() error { return nil }

// String renders the components as (x, y, z).
func (e *Embedded) String() string {
	return fmt.Sprintf("(%g, %g, %g)", e.data[IdxX], e.data[IdxY], e.data[IdxZ])
}
