// SPDX-License-Identifier: MIT

// Package vec3 - eager (naive) vectors.
//
// Every Add materializes its result immediately into new storage of the same
// kind. A chain a+b+c+a+b+c therefore performs five materializations: four
// intermediates plus the final result. This is the baseline the lazy
// expression graph (expr.go) is measured against.

package vec3

import "fmt"

// Naive is an eagerly evaluated vector over storage backend S.
type Naive[S Storage[S]] struct {
	s S
}

// NewNaive builds a vector of the given kind holding (x, y, z).
func NewNaive[S Storage[S]](kind Kind[S], x, y, z float64) (*Naive[S], error) {
	s, err := kind(x, y, z)
	if err != nil {
		return nil, vecErrorf("NewNaive", err)
	}

	return &Naive[S]{s: s}, nil
}

// NaiveOf wraps existing storage. The vector takes ownership of s.
func NaiveOf[S Storage[S]](s S) *Naive[S] { return &Naive[S]{s: s} }

// Storage exposes the backend for named read/write access.
func (v *Naive[S]) Storage() S { return v.s }

// At returns component i.
func (v *Naive[S]) At(i int) (float64, error) { return v.s.At(i) }

func (v *Naive[S]) X() float64 { return v.s.X() }
func (v *Naive[S]) Y() float64 { return v.s.Y() }
func (v *Naive[S]) Z() float64 { return v.s.Z() }

// Components returns (x, y, z).
func (v *Naive[S]) Components() ([Dim]float64, error) { return components(v.s) }

// Add returns a new vector holding the pairwise sums of v and b.
// Operands are left untouched. Complexity: O(1), one allocation of S.
func (v *Naive[S]) Add(b *Naive[S]) (*Naive[S], error) {
	if v == nil || b == nil {
		return nil, vecErrorf("Naive.Add", ErrNilExpr)
	}
	l, err := components(v.s)
	if err != nil {
		return nil, vecErrorf("Naive.Add", err)
	}
	r, err := components(b.s)
	if err != nil {
		return nil, vecErrorf("Naive.Add", err)
	}
	s, err := v.s.Spawn(l[IdxX]+r[IdxX], l[IdxY]+r[IdxY], l[IdxZ]+r[IdxZ])
	if err != nil {
		return nil, vecErrorf("Naive.Add", err)
	}

	return &Naive[S]{s: s}, nil
}

// SumNaive folds Add left to right over first and rest.
// Each intermediate is released as soon as the next sum has consumed it, so
// only the returned vector stays live. With a single operand SumNaive returns
// a clone, never first itself.
func SumNaive[S Storage[S]](first *Naive[S], rest ...*Naive[S]) (*Naive[S], error) {
	if first == nil {
		return nil, vecErrorf("SumNaive", ErrNilExpr)
	}
	if len(rest) == 0 {
		return first.Clone()
	}

	acc, err := first.Add(rest[0])
	if err != nil {
		return nil, vecErrorf("SumNaive", err)
	}
	for _, r := range rest[1:] {
		next, err := acc.Add(r)
		if err != nil {
			_ = acc.Release()
			return nil, vecErrorf("SumNaive", err)
		}
		if err = acc.Release(); err != nil {
			_ = next.Release()
			return nil, vecErrorf("SumNaive", err)
		}
		acc = next
	}

	return acc, nil
}

// Clone returns a deep copy.
func (v *Naive[S]) Clone() (*Naive[S], error) {
	s, err := v.s.Clone()
	if err != nil {
		return nil, vecErrorf("Naive.Clone", err)
	}

	return &Naive[S]{s: s}, nil
}

// Release frees the backend; see Storage.Release.
func (v *Naive[S]) Release() error { return v.s.Release() }

// String renders the vector via its backend.
func (v *Naive[S]) String() string { return fmt.Sprint(v.s) }
