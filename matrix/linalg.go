// SPDX-License-Identifier: MIT

// Package matrix - products, transpose, inverse and linear solve.
//
// Purpose:
//   - Mul, MatVec and Transpose allocate a fresh Dense result and never
//     mutate their inputs.
//   - Inverse and Solve run Gauss–Jordan on an augmented Dense ([A|I] and
//     [A|b]), so they share the pivoting rules of GaussElimination.
//
// Determinism:
//   - Fixed loop orders (i→k→j on the Dense product path, i→j→k otherwise).

package matrix

import "fmt"

const (
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
	opSolve     = "Solve"
)

// Mul returns the product a*b as a new Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Zero entries of a are skipped.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for i := 0; i < rows; i++ {
			out := res.data[i*cols : (i+1)*cols]
			for k := 0; k < inner; k++ {
				av := da.data[i*inner+k]
				if av == 0 {
					continue
				}
				row := db.data[k*cols : (k+1)*cols]
				for j := range out {
					out[j] += av * row[j]
				}
			}
		}

		return res, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var sum float64
			for k := 0; k < inner; k++ {
				av, err := a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				bv, err := b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// MatVec returns y = m*x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.Rows())
	if d, ok := m.(*Dense); ok {
		for i := range y {
			var acc float64
			for j, v := range d.data[i*d.c : (i+1)*d.c] {
				acc += v * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}
	for i := range y {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += v * x[j]
		}
	}

	return y, nil
}

// Transpose returns mᵀ as a new Dense.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, _, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(src.c, src.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < src.r; i++ {
		for j := 0; j < src.c; j++ {
			res.data[j*res.c+i] = src.data[i*src.c+j]
		}
	}

	return res, nil
}

// Inverse returns m⁻¹ by reducing [m|I] to [I|m⁻¹].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the augmented matrix.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	aug, err := augment(m, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		aug.data[i*aug.c+n+i] = 1
	}
	if _, ok := aug.gaussJordan(gatherOptions(opts...).pivotTol); !ok {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	inv, _ := NewDense(n, n) // n > 0 for any validated matrix
	for i := 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug.data[i*aug.c+n:(i+1)*aug.c])
	}

	return inv, nil
}

// Solve returns x with a*x = b for square, non-singular a.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != n), ErrSingular.
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	aug, err := augment(a, 1)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	for i, v := range b {
		aug.data[i*aug.c+n] = v
	}
	if _, ok := aug.gaussJordan(gatherOptions(opts...).pivotTol); !ok {
		return nil, matrixErrorf(opSolve, fmt.Errorf("%dx%d system: %w", n, n, ErrSingular))
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = aug.data[i*aug.c+n]
	}

	return x, nil
}

// augment copies m into the left block of a Dense with extra zero columns.
func augment(m Matrix, extra int) (*Dense, error) {
	src, _, err := toDense(m)
	if err != nil {
		return nil, err
	}
	aug, err := NewDense(src.r, src.c+extra)
	if err != nil {
		return nil, err
	}
	for i := 0; i < src.r; i++ {
		copy(aug.data[i*aug.c:i*aug.c+src.c], src.data[i*src.c:(i+1)*src.c])
	}

	return aug, nil
}
