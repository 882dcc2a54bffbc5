// Package bench is the timing harness for the vec3 evaluation strategies.
//
// Measure is the whole contract with the code under test: call a zero-argument
// operation N times and report the wall-clock duration. On top of it:
//
//   - DefaultScenarios builds the comparison grid: {naive, expr-inline,
//     expr-prebuilt, expr-grouped} × {embedded, indirect}, all summing
//     a=(1,2,3), b=(4,5,6), c=(7,8,9) into (24,30,36).
//   - Runner times scenarios sequentially, verifies every final vector and
//     counts indirect-storage allocations with vec3.CountingAllocator.
//   - Suite loads a run description from YAML; Write renders reports as a
//     table or JSON.
//
// Indirect scenarios are timed on a vec3.CountingAllocator by default, so
// their timings include its mutex and map bookkeeping on every allocation
// and free. WithHeapTiming (suite key heap_timing, CLI flag --heap-timing)
// times them on vec3.HeapAllocator instead and counts allocations in a
// separate untimed pass.
//
// Timing runs on the calling goroutine only; nothing here is concurrent.
package bench
