// Package parser provides table readers and column extraction for benchmark results.
package parser

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/ukaji3/runplot-go/pkg/runplot/models"
)

// Delimiter is the field separator of result tables.
const Delimiter = ","

// ReadTable reads a comma-delimited table with a header row.
// Fields are split on every comma: quoting and escaping are not supported.
// The whole source is read before any splitting happens.
func ReadTable(r io.Reader) (*models.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "parser: could not read source")
	}
	if len(data) == 0 {
		return nil, ErrEmptySource
	}

	lines := strings.Split(string(data), "\n")
	table := &models.Table{
		Header: strings.Split(trimEOL(lines[0]), Delimiter),
	}
	for i, line := range lines[1:] {
		table.Rows = append(table.Rows, models.Row{
			Line:   i + 2, // header is line 1
			Fields: strings.Split(trimEOL(line), Delimiter),
		})
	}
	return table, nil
}

// ReadStrictTable reads an RFC 4180 table: quoted fields may contain commas,
// quotes and newlines. Rows may have any number of fields.
func ReadStrictTable(r io.Reader) (*models.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parser: could not read csv")
	}
	if len(records) == 0 {
		return nil, ErrEmptySource
	}

	table := &models.Table{Header: records[0]}
	for i, rec := range records[1:] {
		// encoding/csv drops empty lines, so positions are record numbers
		// rather than physical lines once blank lines or quoted newlines occur.
		table.Rows = append(table.Rows, models.Row{Line: i + 2, Fields: rec})
	}
	return table, nil
}

func trimEOL(s string) string {
	return strings.TrimSuffix(s, "\r")
}
