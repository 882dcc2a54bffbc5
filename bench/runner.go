package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/exprvec/vec3"
)

// Report is the outcome of one scenario.
type Report struct {
	RunID      string            `json:"run_id"`
	Scenario   string            `json:"scenario"`
	Storage    StorageKind       `json:"storage"`
	Variant    Variant           `json:"variant"`
	Iterations int               `json:"iterations"`
	Elapsed    time.Duration     `json:"elapsed_ns"`
	NsPerOp    float64           `json:"ns_per_op"`
	Result     [vec3.Dim]float64 `json:"result"`
	// Allocs and Frees count indirect blocks taken and returned during the
	// timed calls only; both stay 0 for embedded storage.
	Allocs int `json:"allocs"`
	Frees  int `json:"frees"`
	// Live counts blocks still outstanding after the fixture was closed.
	Live int `json:"live"`
	// Allocator names the allocator the timed calls ran on.
	Allocator string `json:"allocator"`
}

const (
	allocatorCounting = "counting"
	allocatorHeap     = "heap"
)

// Runner times scenarios one after another on the calling goroutine.
type Runner struct {
	opts  options
	runID string
	log   *Logger
}

// NewRunner builds a Runner; every run gets a fresh random identifier.
func NewRunner(opts ...Option) *Runner {
	o := gatherOptions(opts...)
	id := uuid.NewString()

	return &Runner{opts: o, runID: id, log: o.logger.WithRunID(id)}
}

// RunID identifies this runner's reports and log records.
func (r *Runner) RunID() string { return r.runID }

// Iterations is the effective timed call count per scenario.
func (r *Runner) Iterations() int { return r.opts.iterations }

// Select applies the configured filter to scenarios.
func (r *Runner) Select(scenarios []Scenario) ([]Scenario, error) {
	if len(r.opts.filter) == 0 {
		return scenarios, nil
	}
	byName := make(map[string]Scenario, len(scenarios))
	for _, s := range scenarios {
		byName[s.Name] = s
	}
	out := make([]Scenario, 0, len(r.opts.filter))
	for _, name := range r.opts.filter {
		s, ok := byName[name]
		if !ok {
			return nil, benchErrorf("Runner.Select", fmt.Errorf("%q: %w", name, ErrUnknownScenario))
		}
		out = append(out, s)
	}

	return out, nil
}

// Run times every selected scenario in order. It stops at the first failure
// or when ctx is done, returning the reports gathered so far.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]Report, error) {
	selected, err := r.Select(scenarios)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(selected))
	for _, s := range selected {
		if err = ctx.Err(); err != nil {
			return reports, benchErrorf("Runner.Run", err)
		}
		rep, err := r.RunScenario(ctx, s)
		r.log.LogScenario(ctx, rep, err)
		if err != nil {
			return reports, err
		}
		reports = append(reports, rep)
	}
	r.log.InfoContext(ctx, "run completed", "scenarios", len(reports))

	return reports, nil
}

// RunScenario prepares, warms up, times and verifies one scenario.
//
// By default indirect scenarios are timed on a vec3.CountingAllocator, so
// its locking and bookkeeping is part of every measured allocation. With
// WithHeapTiming they are timed on vec3.HeapAllocator and the counters come
// from a second, untimed pass.
func (r *Runner) RunScenario(ctx context.Context, s Scenario) (rep Report, err error) {
	rep = Report{RunID: r.runID, Scenario: s.Name, Storage: s.Storage, Variant: s.Variant, Allocator: allocatorCounting}
	tag := "RunScenario(" + s.Name + ")"

	counting := vec3.NewCountingAllocator()
	defer func() { rep.Live = counting.Live() }()

	heap := r.opts.heapTiming && s.Storage == StorageIndirect
	var timed vec3.Allocator = counting
	if heap {
		timed = vec3.HeapAllocator{}
		rep.Allocator = allocatorHeap
	}

	p, err := r.pass(ctx, s, timed)
	if err != nil {
		return rep, benchErrorf(tag, err)
	}
	rep.Iterations = p.Iterations
	rep.Elapsed = p.Elapsed
	rep.NsPerOp = p.NsPerOp()
	rep.Result = p.last
	r.log.DebugContext(ctx, "scenario timed", "scenario", s.Name, "elapsed", p.Elapsed, "allocator", rep.Allocator)

	if heap {
		counted, cerr := r.pass(ctx, s, counting)
		if cerr != nil {
			return rep, benchErrorf(tag, cerr)
		}
		p.allocs, p.frees = counted.allocs, counted.frees
	}
	rep.Allocs, rep.Frees = p.allocs, p.frees

	if rep.Result != s.Expected {
		return rep, benchErrorf(tag, fmt.Errorf("got %v, want %v: %w", rep.Result, s.Expected, ErrResultMismatch))
	}

	return rep, nil
}

// passResult is one timed run of a fixture.
type passResult struct {
	Result
	last          [vec3.Dim]float64
	allocs, frees int // timed calls only; 0 unless alloc counts
}

// pass sets s up on alloc, warms it up, measures it and closes it.
func (r *Runner) pass(ctx context.Context, s Scenario, alloc vec3.Allocator) (out passResult, err error) {
	fx, err := s.Setup(alloc)
	if err != nil {
		return out, err
	}
	defer func() {
		if cerr := fx.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	for i := 0; i < r.opts.warmup; i++ {
		fx.Op()
	}
	if err = ctx.Err(); err != nil {
		return out, err
	}

	counter, _ := alloc.(*vec3.CountingAllocator)
	var allocs, frees int
	if counter != nil {
		allocs, frees = counter.Allocs(), counter.Frees()
	}
	if out.Result, err = Measure(r.opts.iterations, fx.Op); err != nil {
		return out, err
	}
	if counter != nil {
		out.allocs = counter.Allocs() - allocs
		out.frees = counter.Frees() - frees
	}
	out.last, err = fx.Last()

	return out, err
}
