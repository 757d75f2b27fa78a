package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrColumnNotFound indicates a requested column name is absent from the header.
var ErrColumnNotFound = errors.New("column not found")

// ErrRowTooShort indicates a data row has fewer fields than a selected column needs.
var ErrRowTooShort = errors.New("row too short")

// ErrMalformedNumber indicates a selected field is not a floating-point literal.
var ErrMalformedNumber = errors.New("malformed number")

// ErrEmptySource indicates the source has no header line.
var ErrEmptySource = errors.New("empty source")

// ColumnError reports a column name that could not be resolved.
type ColumnError struct {
	Name   string
	Header []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q not found in header [%s]", e.Name, strings.Join(e.Header, ","))
}

func (e *ColumnError) Unwrap() error {
	return ErrColumnNotFound
}

// RowError reports a data row that could not be converted.
type RowError struct {
	// Line is the 1-based source line of the row.
	Line int
	// Column is the header name of the offending field.
	Column string
	// Text is the offending field text (empty for short rows).
	Text string
	Err  error
}

func (e *RowError) Error() string {
	if errors.Is(e.Err, ErrRowTooShort) {
		return fmt.Sprintf("line %d: %v: no field for column %q", e.Line, e.Err, e.Column)
	}
	return fmt.Sprintf("line %d: %v: column %q has %q", e.Line, e.Err, e.Column, e.Text)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
