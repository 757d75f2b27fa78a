package parser

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	xs, ys, err := Extract(strings.NewReader("a,b,c\n1,2,3\n4,5,6\n"), "a", "c")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4}, xs)
	assert.Equal(t, []float64{3, 6}, ys)
}

func TestExtractRowCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rows  int
	}{
		{"no trailing newline", "x,y\n1,2\n3,4", 2},
		{"trailing newline", "x,y\n1,2\n3,4\n", 2},
		{"crlf", "x,y\r\n1,2\r\n3,4\r\n", 2},
		{"blank lines", "x,y\n1,2\n\n   \n3,4\n\n", 2},
		{"header only", "x,y\n", 0},
		{"header without newline", "x,y", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs, ys, err := Extract(strings.NewReader(tt.input), "x", "y")
			require.NoError(t, err)
			assert.Len(t, xs, tt.rows)
			assert.Len(t, ys, tt.rows)
		})
	}
}

func TestExtractNumberSyntax(t *testing.T) {
	input := "x,y\n-1.5,1e3\n+2,.25\n 3 ,4E-2\n"
	xs, ys, err := Extract(strings.NewReader(input), "x", "y")
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.5, 2, 3}, xs)
	assert.Equal(t, []float64{1000, 0.25, 0.04}, ys)
}

func TestExtractSwappedColumns(t *testing.T) {
	xs, ys, err := Extract(strings.NewReader("a,b,c\n1,2,3\n"), "c", "a")
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, xs)
	assert.Equal(t, []float64{1}, ys)
}

func TestExtractDuplicateHeaderFirstWins(t *testing.T) {
	xs, ys, err := Extract(strings.NewReader("x,y,x\n1,2,3\n"), "x", "y")
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, xs)
	assert.Equal(t, []float64{2}, ys)
}

func TestExtractColumnNotFound(t *testing.T) {
	for _, name := range []string{"missing", "A", " a", ""} {
		xs, ys, err := Extract(strings.NewReader("a,b\n1,2\n"), name, "b")
		require.ErrorIs(t, err, ErrColumnNotFound)
		assert.Nil(t, xs)
		assert.Nil(t, ys)

		var colErr *ColumnError
		require.True(t, errors.As(err, &colErr))
		assert.Equal(t, name, colErr.Name)
	}

	_, _, err := Extract(strings.NewReader("a,b\n1,2\n"), "a", "c")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestExtractRowTooShort(t *testing.T) {
	input := "a,b,c\n1,2,3\n4,5\n"
	xs, ys, err := Extract(strings.NewReader(input), "a", "c")
	require.ErrorIs(t, err, ErrRowTooShort)
	assert.Nil(t, xs)
	assert.Nil(t, ys)

	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Line)
	assert.Equal(t, "c", rowErr.Column)
}

func TestExtractShortRowReportedBeforeBadNumber(t *testing.T) {
	_, _, err := Extract(strings.NewReader("a,b,c\nbad,2\n"), "a", "c")
	require.ErrorIs(t, err, ErrRowTooShort)
}

func TestExtractMalformedNumber(t *testing.T) {
	tests := []struct {
		input string
		line  int
		text  string
	}{
		{"x,y\n1,2\n3,four\n", 3, "four"},
		{"x,y\n1,\n", 2, ""},
		{"x,y\n1.2.3,4\n", 2, "1.2.3"},
		{"x,y\n\"1\",2\n", 2, "\"1\""},
	}

	for _, tt := range tests {
		_, _, err := Extract(strings.NewReader(tt.input), "x", "y")
		require.ErrorIs(t, err, ErrMalformedNumber, tt.input)

		var rowErr *RowError
		require.True(t, errors.As(err, &rowErr))
		assert.Equal(t, tt.line, rowErr.Line)
		assert.Equal(t, tt.text, rowErr.Text)
	}
}

func TestExtractDelimiterOnlyRowIsNotBlank(t *testing.T) {
	tests := []struct {
		input string
		line  int
	}{
		{"x,y\n1,2\n,\n3,4\n", 3},
		{"x,y,z\n1,2,3\n,,\n", 3},
		{"x,y\n1,2\n\n , \n", 4},
	}

	for _, tt := range tests {
		xs, ys, err := Extract(strings.NewReader(tt.input), "x", "y")
		require.ErrorIs(t, err, ErrMalformedNumber, tt.input)
		assert.Nil(t, xs)
		assert.Nil(t, ys)

		var rowErr *RowError
		require.True(t, errors.As(err, &rowErr))
		assert.Equal(t, tt.line, rowErr.Line)
		assert.Equal(t, "x", rowErr.Column)
	}

	table, err := ReadStrictTable(strings.NewReader("x,y\n1,2\n,\n"))
	require.NoError(t, err)
	_, _, err = Columns(table, "x", "y")
	require.ErrorIs(t, err, ErrMalformedNumber)
}

func TestExtractOutOfRangeNumbers(t *testing.T) {
	xs, ys, err := Extract(strings.NewReader("x,y\n1e400,1e-400\n-1e400,2\n"), "x", "y")
	require.NoError(t, err)
	require.Len(t, xs, 2)
	assert.True(t, math.IsInf(xs[0], 1))
	assert.True(t, math.IsInf(xs[1], -1))
	assert.Equal(t, []float64{0, 2}, ys)
}

func TestExtractEmptySource(t *testing.T) {
	_, _, err := Extract(strings.NewReader(""), "x", "y")
	require.ErrorIs(t, err, ErrEmptySource)
}

func TestReadStrictTable(t *testing.T) {
	input := "name,\"nb,atoms\",runtime\n\"a, quoted\",10,5\n\nb,100,40\n"
	table, err := ReadStrictTable(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "nb,atoms", "runtime"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "a, quoted", table.Rows[0].Fields[0])

	xs, ys, err := Columns(table, "nb,atoms", "runtime")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 100}, xs)
	assert.Equal(t, []float64{5, 40}, ys)
}

func TestReadStrictTableRejectsBadQuoting(t *testing.T) {
	_, err := ReadStrictTable(strings.NewReader("x,y\n\"1,2\n"))
	require.Error(t, err)
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runtimes.csv")
	require.NoError(t, os.WriteFile(path, []byte("nb_atoms,runtime_micros\n10,5\n100,40\n1000,300\n"), 0644))

	for _, strict := range []bool{false, true} {
		xs, ys, err := ExtractFile(path, "nb_atoms", "runtime_micros", FileOptions{Strict: strict})
		require.NoError(t, err)
		assert.Equal(t, []float64{10, 100, 1000}, xs)
		assert.Equal(t, []float64{5, 40, 300}, ys)
	}
}

func TestExtractFileMissing(t *testing.T) {
	_, _, err := ExtractFile(filepath.Join(t.TempDir(), "nope.csv"), "x", "y", FileOptions{})
	require.ErrorIs(t, err, os.ErrNotExist)
}
