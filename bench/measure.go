package bench

import "time"

// Result is the outcome of one timed run.
type Result struct {
	Iterations int
	Elapsed    time.Duration
}

// NsPerOp returns the mean wall-clock time per invocation in nanoseconds.
func (r Result) NsPerOp() float64 {
	if r.Iterations <= 0 {
		return 0
	}

	return float64(r.Elapsed.Nanoseconds()) / float64(r.Iterations)
}

// Measure calls op iterations times and reports the elapsed wall-clock time.
// Nothing else is done between calls.
func Measure(iterations int, op func()) (Result, error) {
	if iterations <= 0 {
		return Result{}, benchErrorf("Measure", ErrBadIterations)
	}
	if op == nil {
		return Result{}, benchErrorf("Measure", ErrNilOperation)
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		op()
	}

	return Result{Iterations: iterations, Elapsed: time.Since(start)}, nil
}
