package parser

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/ukaji3/runplot-go/pkg/runplot/models"
	"github.com/xuri/excelize/v2"
)

// FileOptions configures how a source file is read.
type FileOptions struct {
	// Strict selects the RFC 4180 reader for delimited text.
	Strict bool
	// Sheet is the worksheet name for .xlsx sources (default: first sheet).
	Sheet string
}

// ReadFile reads a table from path. Workbooks (.xlsx, .xlsm) are read with
// excelize; anything else is treated as comma-delimited text.
func ReadFile(path string, opts FileOptions) (*models.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "parser: could not open workbook %s", path)
		}
		defer f.Close()
		return ReadSheetTable(f, opts.Sheet)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if opts.Strict {
		return ReadStrictTable(f)
	}
	return ReadTable(f)
}

// ExtractFile reads path and returns its xName and yName columns.
func ExtractFile(path, xName, yName string, opts FileOptions) (xs, ys []float64, err error) {
	table, err := ReadFile(path, opts)
	if err != nil {
		return nil, nil, err
	}
	return Columns(table, xName, yName)
}
