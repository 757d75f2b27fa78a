// Package models defines data structures shared by extraction and plotting.
package models

import "strings"

// Row represents a single data row of a table.
type Row struct {
	// Line is the 1-based line (or sheet row) the fields came from.
	Line int `json:"line"`
	// Fields holds the raw text fields in header order.
	Fields []string `json:"fields"`
}

// Blank reports whether the row's text is empty or whitespace only.
// A row holding delimiters, such as ",", is not blank.
func (r Row) Blank() bool {
	switch len(r.Fields) {
	case 0:
		return true
	case 1:
		return strings.TrimSpace(r.Fields[0]) == ""
	}
	return false
}

// Table represents a header row followed by data rows.
type Table struct {
	// Header holds the column names in positional order.
	Header []string `json:"header"`
	// Rows contains the data rows, header excluded.
	Rows []Row `json:"rows,omitempty"`
}

// Index returns the position of the first header field equal to name,
// or -1 if no field matches.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}
