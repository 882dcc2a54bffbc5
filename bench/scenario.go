package bench

import (
	"fmt"

	"github.com/katalvlaran/exprvec/vec3"
)

// StorageKind names a vec3 storage backend.
type StorageKind string

const (
	StorageEmbedded StorageKind = "embedded"
	StorageIndirect StorageKind = "indirect"
)

// Variant names an evaluation strategy.
type Variant string

const (
	// VariantNaive sums a+b+c+a+b+c eagerly, materializing every step.
	VariantNaive Variant = "naive"
	// VariantExprInline composes and evaluates the chain on every call.
	VariantExprInline Variant = "expr-inline"
	// VariantExprPrebuilt composes the chain once and evaluates it on every call.
	VariantExprPrebuilt Variant = "expr-prebuilt"
	// VariantExprGrouped is VariantExprPrebuilt over (a+b)+(c+a)+(b+c).
	VariantExprGrouped Variant = "expr-grouped"
)

// Operands of every default scenario and the sum they must produce.
var (
	OperandA = [vec3.Dim]float64{1, 2, 3}
	OperandB = [vec3.Dim]float64{4, 5, 6}
	OperandC = [vec3.Dim]float64{7, 8, 9}
	Expected = [vec3.Dim]float64{24, 30, 36}
)

// Fixture is a prepared scenario ready to be timed.
type Fixture struct {
	// Op is the operation handed to Measure.
	Op func()
	// Last returns the vector produced by the most recent Op call and the
	// first error any call hit.
	Last func() ([vec3.Dim]float64, error)
	// Close releases the operands.
	Close func() error
}

// Scenario is one cell of the storage × variant grid.
type Scenario struct {
	Name     string
	Storage  StorageKind
	Variant  Variant
	Expected [vec3.Dim]float64

	setup func(alloc vec3.Allocator) (Fixture, error)
}

// Setup prepares the fixture. Indirect scenarios draw every block from alloc.
func (s Scenario) Setup(alloc vec3.Allocator) (Fixture, error) {
	if s.setup == nil {
		return Fixture{}, benchErrorf("Scenario.Setup", fmt.Errorf("%q: %w", s.Name, ErrUnknownScenario))
	}

	return s.setup(alloc)
}

var variants = []Variant{VariantNaive, VariantExprInline, VariantExprPrebuilt, VariantExprGrouped}

// DefaultScenarios returns the eight scenarios of the standard comparison:
// every variant over embedded storage, then every variant over indirect storage.
func DefaultScenarios() []Scenario {
	out := make([]Scenario, 0, 2*len(variants))
	out = append(out, scenariosFor(StorageEmbedded, func(vec3.Allocator) vec3.Kind[*vec3.Embedded] {
		return vec3.EmbeddedKind
	})...)
	out = append(out, scenariosFor(StorageIndirect, vec3.IndirectKind)...)

	return out
}

// ScenarioNames lists the names of scenarios in order.
func ScenarioNames(scenarios []Scenario) []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}

	return names
}

func scenariosFor[S vec3.Storage[S]](storage StorageKind, kindOf func(vec3.Allocator) vec3.Kind[S]) []Scenario {
	out := make([]Scenario, 0, len(variants))
	for _, v := range variants {
		v := v
		out = append(out, Scenario{
			Name:     fmt.Sprintf("%s/%s", v, storage),
			Storage:  storage,
			Variant:  v,
			Expected: Expected,
			setup: func(alloc vec3.Allocator) (Fixture, error) {
				if v == VariantNaive {
					return naiveFixture(kindOf(alloc))
				}
				return exprFixture(kindOf(alloc), v)
			},
		})
	}

	return out
}

// tracker keeps the outcome of the latest call and the first failure.
type tracker struct {
	last [vec3.Dim]float64
	err  error
}

func (t *tracker) fail(err error) {
	if t.err == nil {
		t.err = err
	}
}

func (t *tracker) result() ([vec3.Dim]float64, error) { return t.last, t.err }

func naiveFixture[S vec3.Storage[S]](kind vec3.Kind[S]) (Fixture, error) {
	ops := make([]*vec3.Naive[S], 0, 3)
	for _, v := range [][vec3.Dim]float64{OperandA, OperandB, OperandC} {
		n, err := vec3.NewNaive(kind, v[0], v[1], v[2])
		if err != nil {
			releaseAll(ops)
			return Fixture{}, benchErrorf("naiveFixture", err)
		}
		ops = append(ops, n)
	}
	a, b, c := ops[0], ops[1], ops[2]

	t := &tracker{}
	op := func() {
		sum, err := vec3.SumNaive(a, b, c, a, b, c)
		if err != nil {
			t.fail(err)
			return
		}
		if t.last, err = sum.Components(); err != nil {
			t.fail(err)
		}
		if err = sum.Release(); err != nil {
			t.fail(err)
		}
	}

	return Fixture{Op: op, Last: t.result, Close: func() error { return releaseAll(ops) }}, nil
}

func exprFixture[S vec3.Storage[S]](kind vec3.Kind[S], variant Variant) (Fixture, error) {
	ops := make([]*vec3.Lazy[S], 0, 3)
	for _, v := range [][vec3.Dim]float64{OperandA, OperandB, OperandC} {
		l, err := vec3.NewLazy(kind, v[0], v[1], v[2])
		if err != nil {
			releaseAll(ops)
			return Fixture{}, benchErrorf("exprFixture", err)
		}
		ops = append(ops, l)
	}
	a, b, c := ops[0], ops[1], ops[2]

	t := &tracker{}
	var op func()
	switch variant {
	case VariantExprInline:
		op = func() {
			materialize(t, kind, vec3.Add(vec3.Add(vec3.Add(vec3.Add(vec3.Add(a, b), c), a), b), c))
		}
	case VariantExprPrebuilt:
		e := vec3.Add(vec3.Add(vec3.Add(vec3.Add(vec3.Add(a, b), c), a), b), c)
		op = func() { materialize(t, kind, e) }
	case VariantExprGrouped:
		e := vec3.Add(vec3.Add(vec3.Add(a, b), vec3.Add(c, a)), vec3.Add(b, c))
		op = func() { materialize(t, kind, e) }
	default:
		releaseAll(ops)
		return Fixture{}, benchErrorf("exprFixture", fmt.Errorf("variant %q: %w", variant, ErrUnknownScenario))
	}

	return Fixture{Op: op, Last: t.result, Close: func() error { return releaseAll(ops) }}, nil
}

// materialize constructs a vector from e, records it and releases it, the way
// a scoped temporary would be.
func materialize[S vec3.Storage[S], E vec3.Expr](t *tracker, kind vec3.Kind[S], e E) {
	v, err := vec3.FromExpr(kind, e)
	if err != nil {
		t.fail(err)
		return
	}
	if t.last, err = v.Components(); err != nil {
		t.fail(err)
	}
	if err = v.Release(); err != nil {
		t.fail(err)
	}
}

func releaseAll[V interface{ Release() error }](vs []V) error {
	var first error
	for _, v := range vs {
		if err := v.Release(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
