// SPDX-License-Identifier: MIT

// Package matrix - row operations & Gaussian elimination.
//
// Purpose:
//   - Elementary row operations (swap, scale, combine) on any Matrix.
//   - Gauss–Jordan elimination with partial pivoting, in place, returning the
//     signed product of the pivots: the determinant for square input.
//   - Det and Trace on square matrices.
//
// Implementation:
//   - *Dense takes the flat-slice fast path; any other Matrix is copied into a
//     Dense, reduced, and written back through Set.
//
// Determinism:
//   - Pivot search scans rows top to bottom and keeps the first maximum, so
//     ties always resolve to the upper row.

package matrix

import "math"

const (
	opSwapRows    = "SwapRows"
	opScaleRow    = "ScaleRow"
	opCombineRows = "CombineRows"
	opGauss       = "GaussElimination"
	opDet         = "Det"
	opTrace       = "Trace"
)

// SwapRows exchanges rows i and j of m in place.
// Complexity: O(c).
func SwapRows(m Matrix, i, j int) error {
	if err := checkRows(m, i, j); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if i == j {
		return nil
	}
	if d, ok := m.(*Dense); ok {
		d.swapRows(i, j)
		return nil
	}
	for k := 0; k < m.Cols(); k++ {
		a, _ := m.At(i, k) // indices validated above
		b, _ := m.At(j, k)
		if err := m.Set(i, k, b); err != nil {
			return matrixErrorf(opSwapRows, err)
		}
		if err := m.Set(j, k, a); err != nil {
			return matrixErrorf(opSwapRows, err)
		}
	}

	return nil
}

// ScaleRow multiplies row i of m by f in place.
// Complexity: O(c).
func ScaleRow(m Matrix, i int, f float64) error {
	if err := checkRows(m, i, i); err != nil {
		return matrixErrorf(opScaleRow, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return matrixErrorf(opScaleRow, ErrNaNInf)
	}
	if d, ok := m.(*Dense); ok {
		d.scaleRow(i, f)
		return nil
	}
	for k := 0; k < m.Cols(); k++ {
		v, _ := m.At(i, k)
		if err := m.Set(i, k, f*v); err != nil {
			return matrixErrorf(opScaleRow, err)
		}
	}

	return nil
}

// CombineRows sets row i to fi*row_i + fj*row_j in place.
// Complexity: O(c).
func CombineRows(m Matrix, i int, fi float64, j int, fj float64) error {
	if err := checkRows(m, i, j); err != nil {
		return matrixErrorf(opCombineRows, err)
	}
	if math.IsNaN(fi) || math.IsInf(fi, 0) || math.IsNaN(fj) || math.IsInf(fj, 0) {
		return matrixErrorf(opCombineRows, ErrNaNInf)
	}
	if d, ok := m.(*Dense); ok {
		d.combineRows(i, fi, j, fj)
		return nil
	}
	for k := 0; k < m.Cols(); k++ {
		a, _ := m.At(i, k)
		b, _ := m.At(j, k)
		if err := m.Set(i, k, fi*a+fj*b); err != nil {
			return matrixErrorf(opCombineRows, err)
		}
	}

	return nil
}

// GaussElimination reduces m in place to reduced row echelon form using
// partial pivoting and returns the signed product of the pivots.
//
// Implementation:
//   - Stage 1: for each column j < min(r, c) pick the row p >= j with the
//     largest |m[p][j]|.
//   - Stage 2: if that magnitude is within the pivot tolerance, stop and
//     return 0 (m is left partially reduced).
//   - Stage 3: accumulate the pivot, swap p into row j (flipping the sign),
//     scale row j to a unit pivot, and clear column j in every other row.
//
// Returns:
//   - For square m: det(m). For rectangular m: the signed pivot product of the
//     leading min(r, c) columns.
//
// Complexity:
//   - Time O(min(r,c) * r * c), Space O(1) extra on *Dense.
func GaussElimination(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opGauss, err)
	}
	o := gatherOptions(opts...)

	d, direct, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opGauss, err)
	}
	det, _ := d.gaussJordan(o.pivotTol)
	if !direct {
		if err = writeBack(m, d); err != nil {
			return 0, matrixErrorf(opGauss, err)
		}
	}

	return det, nil
}

// Det returns the determinant of a square m without modifying it.
// Complexity: O(n^3).
func Det(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	work, _, err := toDense(m.Clone())
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	det, _ := work.gaussJordan(gatherOptions(opts...).pivotTol)

	return det, nil
}

// Trace returns the sum of the diagonal of a square m.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum float64
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// IsSquare reports whether m has as many rows as columns.
func IsSquare(m Matrix) bool { return m != nil && m.Rows() == m.Cols() }

func checkRows(m Matrix, i, j int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateRow(m, i); err != nil {
		return err
	}

	return ValidateRow(m, j)
}

// ---------- Dense fast paths (indices pre-validated) ----------

func (m *Dense) swapRows(i, j int) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

func (m *Dense) scaleRow(i int, f float64) {
	row := m.data[i*m.c : (i+1)*m.c]
	for k := range row {
		row[k] *= f
	}
}

func (m *Dense) combineRows(i int, fi float64, j int, fj float64) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k] = fi*ri[k] + fj*rj[k]
	}
}

// gaussJordan returns the signed pivot product and whether every pivot
// column cleared the tolerance. The product alone cannot tell: it may
// underflow to 0 over non-zero pivots.
func (m *Dense) gaussJordan(tol float64) (float64, bool) {
	var (
		det   = 1.0
		swaps int
	)
	n := min(m.r, m.c)
	for j := 0; j < n; j++ {
		// Stage 1: partial pivot search, first maximum wins
		p, best := j, math.Abs(m.data[j*m.c+j])
		for i := j + 1; i < m.r; i++ {
			if a := math.Abs(m.data[i*m.c+j]); a > best {
				p, best = i, a
			}
		}
		// Stage 2: zero column ⇒ singular
		if best <= tol {
			return 0, false
		}
		// Stage 3: normalize pivot row, then clear the column elsewhere
		pivot := m.data[p*m.c+j]
		det *= pivot
		if p != j {
			m.swapRows(p, j)
			swaps++
		}
		m.scaleRow(j, 1/pivot)
		for i := 0; i < m.r; i++ {
			if i == j {
				continue
			}
			if f := m.data[i*m.c+j]; f != 0 {
				m.combineRows(i, 1, j, -f)
			}
		}
	}
	if swaps%2 == 1 {
		det = -det
	}

	return det, true
}
