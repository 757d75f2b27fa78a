package parser

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/runplot-go/pkg/runplot/models"
)

// Extract reads a comma-delimited table from r and returns the values of
// the xName and yName columns as two index-aligned sequences.
func Extract(r io.Reader, xName, yName string) (xs, ys []float64, err error) {
	table, err := ReadTable(r)
	if err != nil {
		return nil, nil, err
	}
	return Columns(table, xName, yName)
}

// Columns resolves xName and yName against the table header and converts
// the selected fields of every non-blank row to float64.
//
// Resolution picks the first matching header field. Blank rows are skipped;
// any other row must contain both selected fields.
func Columns(t *models.Table, xName, yName string) (xs, ys []float64, err error) {
	xi := t.Index(xName)
	if xi < 0 {
		return nil, nil, &ColumnError{Name: xName, Header: t.Header}
	}
	yi := t.Index(yName)
	if yi < 0 {
		return nil, nil, &ColumnError{Name: yName, Header: t.Header}
	}

	need, needName := xi, xName
	if yi > xi {
		need, needName = yi, yName
	}

	xs = make([]float64, 0, len(t.Rows))
	ys = make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row.Blank() {
			continue
		}
		if len(row.Fields) <= need {
			return nil, nil, &RowError{Line: row.Line, Column: needName, Err: ErrRowTooShort}
		}
		x, err := field(row, xi, xName)
		if err != nil {
			return nil, nil, err
		}
		y, err := field(row, yi, yName)
		if err != nil {
			return nil, nil, err
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}

// field parses the float at position idx of row.
func field(row models.Row, idx int, name string) (float64, error) {
	text := row.Fields[idx]
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	// Out-of-range literals saturate to ±Inf or 0.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &RowError{Line: row.Line, Column: name, Text: text, Err: ErrMalformedNumber}
	}
	return v, nil
}
