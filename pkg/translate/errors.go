package translate

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedValue       = errors.New("unsupported value")
	ErrInvalidForPropertyKind = errors.New("value not valid for property kind")
	ErrOutOfRange             = errors.New("value out of range")
	ErrNotStepAligned         = errors.New("value not aligned to step")
)

// OutOfRangeError reports a value outside the device range.
type OutOfRangeError struct {
	Value    int64
	Min, Max int32
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %d outside range %d-%d", e.Value, e.Min, e.Max)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// StepError reports a value that is not a multiple of the device step from
// the range minimum.
type StepError struct {
	Value int32
	Step  int32
}

func (e *StepError) Error() string {
	return fmt.Sprintf("value %d not aligned to step %d", e.Value, e.Step)
}

func (e *StepError) Unwrap() error { return ErrNotStepAligned }
