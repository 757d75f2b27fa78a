package runplot

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions indicates options that cannot drive a run.
var ErrInvalidOptions = errors.New("invalid options")

// SourceError represents a failure to extract one data source.
type SourceError struct {
	Label string
	Path  string
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %q (%s): %v", e.Label, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError.
func NewSourceError(label, path string, err error) *SourceError {
	return &SourceError{
		Label: label,
		Path:  path,
		Err:   err,
	}
}
