package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/exprvec/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// TestRowOperations checks swap, scale and combine on both paths.
func TestRowOperations(t *testing.T) {
	for name, wrap := range map[string]func(*matrix.Dense) matrix.Matrix{
		"dense":    func(d *matrix.Dense) matrix.Matrix { return d },
		"fallback": func(d *matrix.Dense) matrix.Matrix { return hide{d} },
	} {
		t.Run(name, func(t *testing.T) {
			d := mustRows(t, [][]float64{{1, 2}, {3, 4}})
			m := wrap(d)

			require.NoError(t, matrix.SwapRows(m, 0, 1))
			require.Equal(t, "[3, 4]\n[1, 2]\n", d.String())

			require.NoError(t, matrix.ScaleRow(m, 1, 2))
			require.Equal(t, "[3, 4]\n[2, 4]\n", d.String())

			// row0 = 1*row0 - 1.5*row1
			require.NoError(t, matrix.CombineRows(m, 0, 1, 1, -1.5))
			require.Equal(t, "[0, -2]\n[2, 4]\n", d.String())

			require.NoError(t, matrix.SwapRows(m, 1, 1), "self swap is a no-op")
		})
	}
}

// TestRowOperationsErrors covers bad indexes, nil input and non-finite factors.
func TestRowOperationsErrors(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	require.ErrorIs(t, matrix.SwapRows(m, 0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ScaleRow(m, -1, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.CombineRows(m, 0, 1, 9, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ScaleRow(m, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.CombineRows(m, 0, math.Inf(1), 1, 1), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.SwapRows(nil, 0, 0), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ScaleRow(typedNil, 0, 1), matrix.ErrNilMatrix)
}

// TestDet checks known determinants, including pivoting sign flips.
func TestDet(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-4}}, -4},
		{"2x2", [][]float64{{2, 1}, {1, 3}}, 5},
		{"permutation", [][]float64{{0, 1}, {1, 0}}, -1},
		{"3x3", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}, -3},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
		{"zero column", [][]float64{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}}, 0},
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustRows(t, tc.rows)
			before := m.String()

			got, err := matrix.Det(m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tol)
			require.Equal(t, before, m.String(), "Det must not modify its input")

			viaFallback, err := matrix.Det(hide{m})
			require.NoError(t, err)
			assert.InDelta(t, tc.want, viaFallback, tol)
		})
	}
}

// TestGaussEliminationReducesToIdentity ensures an invertible matrix is
// reduced in place to I and its determinant is returned.
func TestGaussEliminationReducesToIdentity(t *testing.T) {
	m := mustRows(t, [][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}})
	det, err := matrix.GaussElimination(m)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, det, tol)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := m.At(i, j)
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, v, tol, "(%d,%d)", i, j)
		}
	}
}

// TestGaussEliminationRectangular reduces an augmented system [A|b] and reads
// the solution from the last column.
func TestGaussEliminationRectangular(t *testing.T) {
	// 2x + y - z = 8; -3x - y + 2z = -11; -2x + y + 2z = -3  ⇒ (2, 3, -1)
	aug := mustRows(t, [][]float64{
		{2, 1, -1, 8},
		{-3, -1, 2, -11},
		{-2, 1, 2, -3},
	})
	w := hide{aug}
	_, err := matrix.GaussElimination(w)
	require.NoError(t, err)

	for i, want := range []float64{2, 3, -1} {
		v, _ := aug.At(i, 3)
		assert.InDelta(t, want, v, 1e-9)
	}
}

// TestPivotTolerance treats tiny pivots as zero when configured.
func TestPivotTolerance(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 1}, {1, 1 + 1e-14}})
	exact, err := matrix.Det(m)
	require.NoError(t, err)
	require.NotZero(t, exact)

	tolerant, err := matrix.Det(m, matrix.WithPivotTolerance(1e-10))
	require.NoError(t, err)
	require.Zero(t, tolerant)

	require.Panics(t, func() { matrix.WithPivotTolerance(-1) })
	require.Panics(t, func() { matrix.WithPivotTolerance(math.NaN()) })
}

// TestTrace covers the diagonal sum and the square requirement.
func TestTrace(t *testing.T) {
	tr, err := matrix.Trace(mustRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)

	_, err = matrix.Trace(mustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Det(mustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Trace(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	require.True(t, matrix.IsSquare(mustRows(t, [][]float64{{1}})))
	require.False(t, matrix.IsSquare(nil))
}
