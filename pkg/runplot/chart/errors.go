package chart

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch indicates a series whose x and y sequences differ in length.
var ErrLengthMismatch = errors.New("length mismatch")

// ErrInvalidValue indicates a series value that cannot be plotted (NaN or infinity).
var ErrInvalidValue = errors.New("invalid value")

// ErrEmptyChart indicates a render of a chart without any plotted points.
var ErrEmptyChart = errors.New("empty chart")

// ErrNonPositiveValue indicates a log-scale render of a value <= 0.
var ErrNonPositiveValue = errors.New("non-positive value on log scale")

// ErrWriteFailure indicates the destination could not be written.
var ErrWriteFailure = errors.New("write failure")

// ErrUnknownScale indicates an unsupported scale mode.
var ErrUnknownScale = errors.New("unknown scale")

// ErrUnsupportedFormat indicates an output extension no canvas can produce.
var ErrUnsupportedFormat = errors.New("unsupported format")

// SeriesError represents a rejected series.
type SeriesError struct {
	Label  string
	Err    error
	Detail string
}

func (e *SeriesError) Error() string {
	return fmt.Sprintf("series %q: %v: %s", e.Label, e.Err, e.Detail)
}

func (e *SeriesError) Unwrap() error {
	return e.Err
}

// WriteError represents a failure to write a rendered chart.
// It matches ErrWriteFailure and unwraps to the underlying I/O error.
type WriteError struct {
	Destination string
	Err         error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrWriteFailure, e.Destination, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrWriteFailure.
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailure
}
