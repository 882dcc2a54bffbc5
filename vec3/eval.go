// SPDX-License-Identifier: MIT

package vec3

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const (
	ctxEval     = "Eval"
	ctxAssign   = "Assign"
	ctxFromExpr = "FromExpr"
	ctxAssignC  = "AssignConcurrent"
)

// Eval resolves e into its three components. It performs one tree walk per
// component and nothing else.
func Eval[E Expr](e E) ([Dim]float64, error) {
	var (
		out [Dim]float64
		err error
	)
	if any(e) == nil {
		return out, vecErrorf(ctxEval, ErrNilExpr)
	}
	for i := 0; i < Dim; i++ {
		if out[i], err = e.At(i); err != nil {
			return [Dim]float64{}, vecErrorf(ctxEval, err)
		}
	}

	return out, nil
}

// Assign evaluates e and writes the result into dst's storage, once per
// component. dst may itself appear in e: component i only ever reads
// component i of each leaf. On error dst is left unchanged.
func Assign[S Storage[S], E Expr](dst *Lazy[S], e E) error {
	if dst == nil {
		return vecErrorf(ctxAssign, ErrNilExpr)
	}
	out, err := Eval(e)
	if err != nil {
		return vecErrorf(ctxAssign, err)
	}

	return store(ctxAssign, dst.s, out)
}

// FromExpr constructs a new leaf of the given kind from e. This is the only
// allocation the lazy path makes for a whole expression.
func FromExpr[S Storage[S], E Expr](kind Kind[S], e E) (*Lazy[S], error) {
	out, err := Eval(e)
	if err != nil {
		return nil, vecErrorf(ctxFromExpr, err)
	}
	s, err := kind(out[IdxX], out[IdxY], out[IdxZ])
	if err != nil {
		return nil, vecErrorf(ctxFromExpr, err)
	}

	return &Lazy[S]{s: s}, nil
}

// AssignConcurrent is Assign with the three components computed in parallel.
// Leaf reads are read-only, so the component walks share nothing mutable.
// dst is written only after all three succeed.
func AssignConcurrent[S Storage[S], E Expr](ctx context.Context, dst *Lazy[S], e E) error {
	if dst == nil || any(e) == nil {
		return vecErrorf(ctxAssignC, ErrNilExpr)
	}

	var out [Dim]float64
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < Dim; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := e.At(i)
			if err != nil {
				return err
			}
			out[i] = v // each goroutine owns one slot

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return vecErrorf(ctxAssignC, err)
	}

	return store(ctxAssignC, dst.s, out)
}

func store[S Storage[S]](tag string, s S, v [Dim]float64) error {
	for i := 0; i < Dim; i++ {
		if err := s.Set(i, v[i]); err != nil {
			return vecErrorf(tag, err)
		}
	}

	return nil
}
