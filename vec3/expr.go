// SPDX-License-Identifier: MIT

// Package vec3 - lazy expression graph.
//
// Purpose:
//   - Add composes two operands into an AddOp node and computes nothing.
//   - Evaluation happens once, when an expression is assigned into a Lazy leaf
//     (Assign, FromExpr) or read out with Eval.
//
// Implementation:
//   - AddOp[L, R] is generic over both operand types, so a whole tree such as
//     Add(Add(a, b), c) is one concrete type and every At call is resolved at
//     compile time.
//   - Leaves are held by pointer (non-owning); nested nodes are held by value.
//     A node must not outlive the leaves it references: build it, evaluate it,
//     drop it.
//   - Sum is the dynamic counterpart: it folds through the Expr interface and
//     pays one indirect call per node and component.
//
// Determinism:
//   - The tree shape is exactly the caller's composition; no re-association and
//     no caching of shared sub-expressions. Evaluation walks the tree once per
//     component, reading every leaf exactly once per component.

package vec3

import "fmt"

// Expr is the single capability the evaluator relies on: indexed component
// read for i in 0..2.
type Expr interface {
	At(i int) (float64, error)
}

// Lazy is a leaf vector over storage backend S that takes part in expressions.
type Lazy[S Storage[S]] struct {
	s S
}

var (
	_ Expr = (*Lazy[*Embedded])(nil)
	_ Expr = (*Lazy[*Indirect])(nil)
	_ Expr = AddOp[Expr, Expr]{}
)

// NewLazy builds a leaf of the given kind holding (x, y, z).
func NewLazy[S Storage[S]](kind Kind[S], x, y, z float64) (*Lazy[S], error) {
	s, err := kind(x, y, z)
	if err != nil {
		return nil, vecErrorf("NewLazy", err)
	}

	return &Lazy[S]{s: s}, nil
}

// LazyOf wraps existing storage. The leaf takes ownership of s.
func LazyOf[S Storage[S]](s S) *Lazy[S] { return &Lazy[S]{s: s} }

// At returns component i. A nil leaf yields ErrNilExpr.
func (v *Lazy[S]) At(i int) (float64, error) {
	if v == nil {
		return 0, vecErrorf("Lazy.At", ErrNilExpr)
	}

	return v.s.At(i)
}

// Storage exposes the backend for named read/write access.
func (v *Lazy[S]) Storage() S { return v.s }

func (v *Lazy[S]) X() float64 { return v.s.X() }
func (v *Lazy[S]) Y() float64 { return v.s.Y() }
func (v *Lazy[S]) Z() float64 { return v.s.Z() }

// Components returns (x, y, z).
func (v *Lazy[S]) Components() ([Dim]float64, error) { return components(v.s) }

// Assign evaluates e into v. See the package-level Assign.
func (v *Lazy[S]) Assign(e Expr) error { return Assign(v, e) }

// Clone returns a deep copy.
func (v *Lazy[S]) Clone() (*Lazy[S], error) {
	s, err := v.s.Clone()
	if err != nil {
		return nil, vecErrorf("Lazy.Clone", err)
	}

	return &Lazy[S]{s: s}, nil
}

// Release frees the backend; see Storage.Release.
func (v *Lazy[S]) Release() error { return v.s.Release() }

// String renders the leaf via its backend.
func (v *Lazy[S]) String() string { return fmt.Sprint(v.s) }

// AddOp is a pending addition of two sub-expressions.
type AddOp[L, R Expr] struct {
	l L
	r R
}

// Add composes l + r. Operands need not share a concrete type.
// Complexity: O(1); no component is read.
func Add[L, R Expr](l L, r R) AddOp[L, R] {
	return AddOp[L, R]{l: l, r: r}
}

// At returns l[i] + r[i], resolving both subtrees.
// A nil interface operand yields ErrNilExpr.
func (n AddOp[L, R]) At(i int) (float64, error) {
	if any(n.l) == nil || any(n.r) == nil {
		return 0, vecErrorf("AddOp.At", ErrNilExpr)
	}
	a, err := n.l.At(i)
	if err != nil {
		return 0, err
	}
	b, err := n.r.At(i)
	if err != nil {
		return 0, err
	}

	return a + b, nil
}

// Left returns the left operand.
func (n AddOp[L, R]) Left() L { return n.l }

// Right returns the right operand.
func (n AddOp[L, R]) Right() R { return n.r }

func (n AddOp[L, R]) depth() int {
	return 1 + max(Depth(n.l), Depth(n.r))
}

func (n AddOp[L, R]) String() string {
	return fmt.Sprintf("(%v + %v)", n.l, n.r)
}

// nilExpr stands in for a nil operand handed to Sum.
type nilExpr struct{}

func (nilExpr) At(int) (float64, error) { return 0, vecErrorf("Sum", ErrNilExpr) }
func (nilExpr) String() string          { return "<nil>" }

// Sum folds operands left to right: Sum(a, b, c) is ((a + b) + c).
// Nil operands are kept in place and surface as ErrNilExpr on evaluation.
func Sum(first Expr, rest ...Expr) Expr {
	acc := orNil(first)
	for _, r := range rest {
		acc = AddOp[Expr, Expr]{l: acc, r: orNil(r)}
	}

	return acc
}

func orNil(e Expr) Expr {
	if e == nil {
		return nilExpr{}
	}

	return e
}

// Depth returns the structural depth of e: 0 for a leaf, 1 + the deeper
// operand for a node.
func Depth(e Expr) int {
	if d, ok := e.(interface{ depth() int }); ok {
		return d.depth()
	}

	return 0
}
