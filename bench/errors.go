package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrBadIterations is returned when an iteration count is not positive.
	ErrBadIterations = errors.New("bench: iterations must be > 0")

	// ErrNilOperation is returned when Measure is given no operation.
	ErrNilOperation = errors.New("bench: nil operation")

	// ErrUnknownScenario is returned when a filter names no known scenario.
	ErrUnknownScenario = errors.New("bench: unknown scenario")

	// ErrResultMismatch is returned when a scenario's final vector differs
	// from its expected value.
	ErrResultMismatch = errors.New("bench: result mismatch")

	// ErrBadSuite is returned for invalid suite configuration.
	ErrBadSuite = errors.New("bench: invalid suite")
)

func benchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
