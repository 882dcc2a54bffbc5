package bench

// Defaults (single source of truth).
const (
	// DefaultIterations matches the repetition count of the standard comparison.
	DefaultIterations = 2_000_000

	// DefaultWarmup is the number of untimed calls before each timed run.
	DefaultWarmup = 0
)

const (
	panicIterationsInvalid = "bench: WithIterations: n must be > 0"
	panicWarmupInvalid     = "bench: WithWarmup: n must be >= 0"
)

// Option configures a Runner. Constructors panic only on nonsensical values.
type Option func(*options)

type options struct {
	iterations int
	warmup     int
	logger     *Logger
	filter     []string
	heapTiming bool
}

// WithIterations sets the number of timed calls per scenario.
func WithIterations(n int) Option {
	if n <= 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *options) { o.iterations = n }
}

// WithWarmup sets the number of untimed calls before each timed run.
func WithWarmup(n int) Option {
	if n < 0 {
		panic(panicWarmupInvalid)
	}

	return func(o *options) { o.warmup = n }
}

// WithLogger routes scenario logs to l. A nil l keeps the no-op logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFilter restricts a run to the named scenarios, in the given order.
// An empty filter runs everything.
func WithFilter(names ...string) Option {
	return func(o *options) { o.filter = append([]string(nil), names...) }
}

// WithHeapTiming times indirect scenarios on vec3.HeapAllocator and takes
// the allocation counters from a separate untimed pass, so timings carry no
// tracking overhead. Off by default.
func WithHeapTiming(on bool) Option {
	return func(o *options) { o.heapTiming = on }
}

func gatherOptions(opts ...Option) options {
	o := options{
		iterations: DefaultIterations,
		warmup:     DefaultWarmup,
		logger:     NoopLogger(),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
