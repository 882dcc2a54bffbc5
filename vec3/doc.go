// Package vec3 provides 3-component float vectors in two evaluation styles
// over two storage backends, so the cost of eager temporaries can be compared
// against lazily composed expressions.
//
// Overview:
//
//   - Storage backends decide where the three components live:
//     Embedded keeps them inside the value; Indirect owns a separately
//     allocated block obtained from an Allocator and gives it back exactly once.
//   - Naive vectors evaluate eagerly: every Add materializes a new vector.
//   - Lazy leaves take part in expressions: Add builds an AddOp node that only
//     records its operands; Assign, FromExpr and Eval resolve the whole tree in
//     one pass, writing each destination component once.
//
// Storage is a type parameter everywhere (Naive[S], Lazy[S]) and AddOp is
// generic over both operand types, so a composed tree is a single concrete
// type with statically resolved component reads. Sum offers the dynamic
// alternative through the Expr interface.
//
// Example:
//
//	a, _ := vec3.NewLazy(vec3.EmbeddedKind, 1, 2, 3)
//	b, _ := vec3.NewLazy(vec3.EmbeddedKind, 4, 5, 6)
//	c, _ := vec3.NewLazy(vec3.EmbeddedKind, 7, 8, 9)
//	e := vec3.Add(vec3.Add(vec3.Add(vec3.Add(vec3.Add(a, b), c), a), b), c)
//	sum, _ := vec3.FromExpr(vec3.EmbeddedKind, e) // (24, 30, 36)
//
// Lifetimes:
//
//   - An expression node references its leaves; it is valid only while they
//     are live (not Released). Build it, evaluate it, drop it.
//   - Indirect storage must not be copied by value; Clone deep-copies.
//   - After Release, At/Set return ErrInvalidStorageState and a second Release
//     fails the same way without reaching the allocator.
//
// Error handling (sentinel errors):
//
//   - ErrIndexOutOfRange: component index outside 0..2.
//   - ErrInvalidStorageState: released storage used, released twice, or a
//     block freed that the allocator does not own.
//   - ErrNilExpr: nil operand or destination.
//
// Concurrency:
//
//   - Vectors are not synchronized. AssignConcurrent evaluates the three
//     components of one expression in parallel, which is safe because leaf
//     reads are read-only. CountingAllocator is safe for concurrent use.
package vec3
