package bench

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Suite is the YAML description of a benchmark run:
//
//	iterations: 2000000
//	warmup: 1000
//	scenarios: [naive/embedded, expr-prebuilt/embedded]
//	log_level: info
//	format: text
//	heap_timing: false
//
// Zero values fall back to the package defaults.
type Suite struct {
	Iterations int      `yaml:"iterations"`
	Warmup     int      `yaml:"warmup"`
	Scenarios  []string `yaml:"scenarios"`
	LogLevel   string   `yaml:"log_level"`
	Format     string   `yaml:"format"`
	HeapTiming bool     `yaml:"heap_timing"`
}

// DefaultSuite returns the suite used when no file is given.
func DefaultSuite() Suite {
	return Suite{
		Iterations: DefaultIterations,
		Warmup:     DefaultWarmup,
		LogLevel:   "info",
		Format:     FormatText,
	}
}

// LoadSuite reads and validates a YAML suite file.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, benchErrorf("LoadSuite", err)
	}

	return ParseSuite(data)
}

// ParseSuite decodes YAML over DefaultSuite and validates the result.
// Unknown keys are rejected; an empty document yields the defaults.
func ParseSuite(data []byte) (Suite, error) {
	s := DefaultSuite()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Suite{}, benchErrorf("ParseSuite", fmt.Errorf("%w: %v", ErrBadSuite, err))
	}
	if err := s.Validate(); err != nil {
		return Suite{}, err
	}

	return s, nil
}

// Validate checks counts, level and format, and that every named scenario
// exists among the defaults.
func (s Suite) Validate() error {
	if s.Iterations <= 0 {
		return benchErrorf("Suite.Validate", fmt.Errorf("iterations %d: %w", s.Iterations, ErrBadSuite))
	}
	if s.Warmup < 0 {
		return benchErrorf("Suite.Validate", fmt.Errorf("warmup %d: %w", s.Warmup, ErrBadSuite))
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return benchErrorf("Suite.Validate", fmt.Errorf("log_level %q: %w", s.LogLevel, ErrBadSuite))
	}
	if s.Format != FormatText && s.Format != FormatJSON {
		return benchErrorf("Suite.Validate", fmt.Errorf("format %q: %w", s.Format, ErrBadSuite))
	}
	known := make(map[string]struct{})
	for _, name := range ScenarioNames(DefaultScenarios()) {
		known[name] = struct{}{}
	}
	for _, name := range s.Scenarios {
		if _, ok := known[name]; !ok {
			return benchErrorf("Suite.Validate", fmt.Errorf("%q: %w", name, ErrUnknownScenario))
		}
	}

	return nil
}

// Level returns the parsed log level; Validate guarantees it parses.
func (s Suite) Level() slog.Level {
	l, err := ParseLevel(s.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}

	return l
}

// Options translates the suite into Runner options.
func (s Suite) Options() []Option {
	return []Option{
		WithIterations(s.Iterations),
		WithWarmup(s.Warmup),
		WithFilter(s.Scenarios...),
		WithHeapTiming(s.HeapTiming),
	}
}
