// SPDX-License-Identifier: MIT

package vec3_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/exprvec/vec3"
	"github.com/stretchr/testify/require"
)

// TestAddComposesWithoutReading ensures building a node reads nothing and
// indexing it returns the pairwise sum.
func TestAddComposesWithoutReading(t *testing.T) {
	a := newCountingLeaf(fixA)
	b := newCountingLeaf(fixB)

	n := vec3.Add(a, b)
	require.Zero(t, a.total(), "composition is structural only")
	require.Zero(t, b.total())

	for i := 0; i < vec3.Dim; i++ {
		got, err := n.At(i)
		require.NoError(t, err)
		require.Equal(t, fixA[i]+fixB[i], got)
	}
	require.Same(t, a, n.Left())
	require.Same(t, b, n.Right())
}

// TestAddMatchesComponentSums checks (a+b)[i] == a[i] + b[i] over random
// operands, mixing leaves of both backends in one node.
func TestAddMatchesComponentSums(t *testing.T) {
	rng := rand.New(rand.NewSource(4242))
	alloc := vec3.NewCountingAllocator()
	for n := 0; n < 100; n++ {
		va := [vec3.Dim]float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		vb := [vec3.Dim]float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		a := mustLazy(t, vec3.EmbeddedKind, va)
		b := mustLazy(t, vec3.IndirectKind(alloc), vb)

		node := vec3.Add(a, b)
		for i := 0; i < vec3.Dim; i++ {
			got, err := node.At(i)
			require.NoError(t, err)
			require.Equal(t, va[i]+vb[i], got)
		}
		require.NoError(t, b.Release())
	}
	require.Equal(t, 100, alloc.Allocs(), "no intermediate was materialized")
}

// TestChainShapesAgree evaluates the left-leaning chain and the grouped
// chain on both backends: both must give (24, 30, 36).
func TestChainShapesAgree(t *testing.T) {
	t.Run("embedded", func(t *testing.T) { checkChainShapes(t, vec3.EmbeddedKind) })
	t.Run("indirect", func(t *testing.T) { checkChainShapes(t, vec3.IndirectKind(nil)) })
}

func checkChainShapes[S vec3.Storage[S]](t *testing.T, kind vec3.Kind[S]) {
	a, b, c := mustLazy(t, kind, fixA), mustLazy(t, kind, fixB), mustLazy(t, kind, fixC)

	linear := vec3.Add(vec3.Add(vec3.Add(vec3.Add(vec3.Add(a, b), c), a), b), c)
	grouped := vec3.Add(vec3.Add(vec3.Add(a, b), vec3.Add(c, a)), vec3.Add(b, c))
	dynamic := vec3.Sum(a, b, c, a, b, c)

	require.Equal(t, 5, vec3.Depth(linear))
	require.Equal(t, 3, vec3.Depth(grouped))
	require.Equal(t, 5, vec3.Depth(dynamic))

	for name, e := range map[string]vec3.Expr{"linear": linear, "grouped": grouped, "dynamic": dynamic} {
		got, err := vec3.Eval(e)
		require.NoError(t, err, name)
		require.Equal(t, wantChain, got, name)
	}
}

// TestEagerAndLazyAgree cross-checks the baseline against the expression path.
func TestEagerAndLazyAgree(t *testing.T) {
	t.Run("embedded", func(t *testing.T) { checkEagerLazy(t, vec3.EmbeddedKind) })
	t.Run("indirect", func(t *testing.T) { checkEagerLazy(t, vec3.IndirectKind(vec3.NewCountingAllocator())) })
}

func checkEagerLazy[S vec3.Storage[S]](t *testing.T, kind vec3.Kind[S]) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 50; n++ {
		var v [3][vec3.Dim]float64
		for k := range v {
			v[k] = [vec3.Dim]float64{rng.Float64() * 100, rng.Float64() - 0.5, rng.NormFloat64()}
		}
		na, nb, nc := mustNaive(t, kind, v[0]), mustNaive(t, kind, v[1]), mustNaive(t, kind, v[2])
		la, lb, lc := mustLazy(t, kind, v[0]), mustLazy(t, kind, v[1]), mustLazy(t, kind, v[2])

		eager, err := vec3.SumNaive(na, nb, nc, na, nb, nc)
		require.NoError(t, err)
		lazy, err := vec3.FromExpr(kind, vec3.Add(vec3.Add(vec3.Add(vec3.Add(vec3.Add(la, lb), lc), la), lb), lc))
		require.NoError(t, err)

		ge, err := eager.Components()
		require.NoError(t, err)
		gl, err := lazy.Components()
		require.NoError(t, err)
		require.Equal(t, ge, gl, "same association order gives bit-identical sums")
	}
}

// TestEvalReadsEachLeafOncePerComponent checks the evaluation contract with
// instrumented leaves.
func TestEvalReadsEachLeafOncePerComponent(t *testing.T) {
	x, y, z := newCountingLeaf(fixA), newCountingLeaf(fixB), newCountingLeaf(fixC)

	got, err := vec3.Eval(vec3.Add(vec3.Add(x, y), z))
	require.NoError(t, err)
	require.Equal(t, [vec3.Dim]float64{12, 15, 18}, got)
	for _, leaf := range []*countingLeaf{x, y, z} {
		require.Equal(t, [vec3.Dim]int64{1, 1, 1}, leaf.perComponent())
	}

	// a leaf appearing twice is read once per occurrence and component
	a, b := newCountingLeaf(fixA), newCountingLeaf(fixB)
	_, err = vec3.Eval(vec3.Add(vec3.Add(a, b), a))
	require.NoError(t, err)
	require.Equal(t, [vec3.Dim]int64{2, 2, 2}, a.perComponent())
	require.Equal(t, [vec3.Dim]int64{1, 1, 1}, b.perComponent())
}

// TestExprIndexOutOfRange ensures composite nodes surface bad indexes.
func TestExprIndexOutOfRange(t *testing.T) {
	a := mustLazy(t, vec3.EmbeddedKind, fixA)
	b := mustLazy(t, vec3.IndirectKind(nil), fixB)
	n := vec3.Add(vec3.Add(a, b), a)

	for _, i := range []int{-1, 3} {
		_, err := n.At(i)
		require.ErrorIs(t, err, vec3.ErrIndexOutOfRange)
		_, err = a.At(i)
		require.ErrorIs(t, err, vec3.ErrIndexOutOfRange)
	}
}

// TestExprNilOperands covers nil leaves and nil Sum operands.
func TestExprNilOperands(t *testing.T) {
	a := mustLazy(t, vec3.EmbeddedKind, fixA)
	var missing *vec3.Lazy[*vec3.Embedded]

	_, err := vec3.Eval(vec3.Add(a, missing))
	require.ErrorIs(t, err, vec3.ErrNilExpr)

	_, err = vec3.Eval(vec3.Sum(a, nil))
	require.ErrorIs(t, err, vec3.ErrNilExpr)

	_, err = vec3.Eval(vec3.Sum(nil))
	require.ErrorIs(t, err, vec3.ErrNilExpr)

	// Untyped nil interface operands and expressions.
	_, err = vec3.Eval(vec3.Add[vec3.Expr, vec3.Expr](a, nil))
	require.ErrorIs(t, err, vec3.ErrNilExpr)
	_, err = vec3.Eval(vec3.Add[vec3.Expr, vec3.Expr](nil, a))
	require.ErrorIs(t, err, vec3.ErrNilExpr)
	_, err = vec3.Eval(vec3.Expr(nil))
	require.ErrorIs(t, err, vec3.ErrNilExpr)

	require.ErrorIs(t, vec3.Assign(a, vec3.Expr(nil)), vec3.ErrNilExpr)
	require.ErrorIs(t, vec3.AssignConcurrent(context.Background(), a, vec3.Expr(nil)), vec3.ErrNilExpr)
	got, err := a.Components()
	require.NoError(t, err)
	require.Equal(t, fixA, got, "destination untouched")

	v, err := vec3.FromExpr(vec3.EmbeddedKind, vec3.Expr(nil))
	require.ErrorIs(t, err, vec3.ErrNilExpr)
	require.Nil(t, v)
}

// TestExprReleasedLeaf ensures a node over a released leaf fails instead of
// reading a stale block.
func TestExprReleasedLeaf(t *testing.T) {
	alloc := vec3.NewCountingAllocator()
	a := mustLazy(t, vec3.IndirectKind(alloc), fixA)
	b := mustLazy(t, vec3.IndirectKind(alloc), fixB)
	n := vec3.Add(a, b)

	require.NoError(t, b.Release())
	_, err := vec3.Eval(n)
	require.ErrorIs(t, err, vec3.ErrInvalidStorageState)

	allocs := alloc.Allocs()
	_, err = vec3.FromExpr(vec3.IndirectKind(alloc), n)
	require.ErrorIs(t, err, vec3.ErrInvalidStorageState)
	require.Equal(t, allocs, alloc.Allocs(), "nothing allocated for a failed evaluation")
}

// TestExprString renders the tree shape.
func TestExprString(t *testing.T) {
	a := mustLazy(t, vec3.EmbeddedKind, fixA)
	b := mustLazy(t, vec3.EmbeddedKind, fixB)
	require.Equal(t, "(((1, 2, 3) + (4, 5, 6)) + (1, 2, 3))", vec3.Add(vec3.Add(a, b), a).String())
	require.Zero(t, vec3.Depth(a))
}
