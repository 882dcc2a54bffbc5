// Package matrix offers a dense row-major float64 matrix with elementary row
// operations and Gaussian elimination.
//
// The package provides:
//
//   - Dense with bounds-checked At/Set (ErrOutOfRange, never a panic) and a
//     finite-values policy on Set (ErrNaNInf).
//   - SwapRows, ScaleRow and CombineRows on any Matrix.
//   - GaussElimination: in-place Gauss–Jordan reduction with partial pivoting,
//     returning the signed pivot product; Det and Trace for square input.
//   - Inverse and Solve over augmented matrices (ErrSingular on a zero pivot
//     column), plus Mul, MatVec and Transpose.
//
// Kernels accept the Matrix interface; *Dense unlocks flat-slice fast paths.
package matrix
