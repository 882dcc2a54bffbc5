// Package exprvec is a small numeric playground for comparing eager and
// lazily evaluated arithmetic on fixed-size vectors.
//
// What is inside?
//
//	• vec3: 3-component vectors over embedded or heap-backed (indirect)
//	  storage, an eager vector type, and typed expression trees that sum any
//	  number of operands into one destination without temporaries
//	• matrix: a dense row-major matrix with row operations, Gauss–Jordan
//	  elimination with partial pivoting, determinant and trace
//	• bench: a timing harness running the eager/lazy × embedded/indirect
//	  scenario grid, configured from YAML, logging through slog
//	• cmd/exprbench: the command-line front end (run, list, check)
//
// Layout:
//
//	vec3/           storage backends, Naive, Lazy, AddOp, Eval/Assign
//	matrix/         Dense, SwapRows/ScaleRow/CombineRows, GaussElimination
//	bench/          Measure, Scenario, Runner, Suite, reports
//	cmd/exprbench/  CLI
//	examples/       runnable demonstrations
//
// Quick example:
//
//	a, _ := vec3.NewLazy(vec3.EmbeddedKind, 1, 2, 3)
//	b, _ := vec3.NewLazy(vec3.EmbeddedKind, 4, 5, 6)
//	s, _ := vec3.FromExpr(vec3.EmbeddedKind, vec3.Add(a, b)) // (5, 7, 9)
//
//	go install github.com/katalvlaran/exprvec/cmd/exprbench@latest
package exprvec
