// SPDX-License-Identifier: MIT
// Package vec3_test contains shared fixtures for the vec3 tests.

package vec3_test

import (
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/exprvec/vec3"
	"github.com/stretchr/testify/require"
)

// Fixed operands used throughout: a=(1,2,3), b=(4,5,6), c=(7,8,9).
var (
	fixA = [vec3.Dim]float64{1, 2, 3}
	fixB = [vec3.Dim]float64{4, 5, 6}
	fixC = [vec3.Dim]float64{7, 8, 9}

	// a+b+c+a+b+c component-wise.
	wantChain = [vec3.Dim]float64{24, 30, 36}
)

// mustLazy builds a Lazy leaf or fails the test.
func mustLazy[S vec3.Storage[S]](t testing.TB, kind vec3.Kind[S], v [vec3.Dim]float64) *vec3.Lazy[S] {
	t.Helper()
	l, err := vec3.NewLazy(kind, v[0], v[1], v[2])
	require.NoError(t, err)

	return l
}

// mustNaive builds a Naive vector or fails the test.
func mustNaive[S vec3.Storage[S]](t testing.TB, kind vec3.Kind[S], v [vec3.Dim]float64) *vec3.Naive[S] {
	t.Helper()
	n, err := vec3.NewNaive(kind, v[0], v[1], v[2])
	require.NoError(t, err)

	return n
}

// countingLeaf is an Expr leaf that records every component read.
type countingLeaf struct {
	v     [vec3.Dim]float64
	reads [vec3.Dim]atomic.Int64
}

func newCountingLeaf(v [vec3.Dim]float64) *countingLeaf { return &countingLeaf{v: v} }

func (c *countingLeaf) At(i int) (float64, error) {
	if i < 0 || i >= vec3.Dim {
		return 0, vec3.ErrIndexOutOfRange
	}
	c.reads[i].Add(1)

	return c.v[i], nil
}

// perComponent returns the read counters as a plain array.
func (c *countingLeaf) perComponent() [vec3.Dim]int64 {
	return [vec3.Dim]int64{c.reads[0].Load(), c.reads[1].Load(), c.reads[2].Load()}
}

// total returns the number of reads across all components.
func (c *countingLeaf) total() int64 {
	p := c.perComponent()

	return p[0] + p[1] + p[2]
}
