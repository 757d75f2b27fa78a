// Package workbook exports chart series to an Excel workbook with a native chart.
package workbook

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/ukaji3/runplot-go/pkg/runplot/models"
	"github.com/xuri/excelize/v2"
)

// ChartSheet is the name of the sheet holding the legend labels and the chart.
const ChartSheet = "Chart"

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

// Options configures the export.
type Options struct {
	// XName and YName head the two data columns of every series sheet.
	XName string
	YName string
	// LogAxes sets both chart axes to log base 10.
	LogAxes bool
}

// markerSymbols maps marker shapes to Excel marker symbols.
var markerSymbols = map[models.MarkerShape]string{
	models.MarkerCircle:       "circle",
	models.MarkerTriangleDown: "triangle",
	models.MarkerSquare:       "square",
	models.MarkerDiamond:      "diamond",
	models.MarkerFilledX:      "x",
	models.MarkerTriangleUp:   "triangle",
	models.MarkerStar:         "star",
}

// Export writes one sheet per series plus a chart sheet with a scatter chart
// overlaying all of them. styles, when given, must be index-aligned with series.
func Export(path string, series []models.Series, styles []models.Style, deco models.Decorations, opts Options) error {
	if len(series) == 0 {
		return errors.New("workbook: no series to export")
	}
	if styles != nil && len(styles) != len(series) {
		return errors.Errorf("workbook: %d styles for %d series", len(styles), len(series))
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ChartSheet); err != nil {
		return errors.Wrap(err, "workbook: could not name chart sheet")
	}
	if err := f.SetCellValue(ChartSheet, "A1", "series"); err != nil {
		return err
	}

	names := SheetNames(series)
	chartSeries := make([]excelize.ChartSeries, 0, len(series))
	for i, s := range series {
		if err := writeSeries(f, names[i], s, opts); err != nil {
			return errors.Wrapf(err, "workbook: could not write series %q", s.Label)
		}

		labelCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(ChartSheet, labelCell, s.Label); err != nil {
			return err
		}

		cs := excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$A$%d", quote(ChartSheet), i+2),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", quote(names[i]), s.Len()+1),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", quote(names[i]), s.Len()+1),
		}
		if styles != nil {
			cs.Marker = excelize.ChartMarker{Symbol: markerSymbols[styles[i].Marker], Size: 7}
		}
		chartSeries = append(chartSeries, cs)
	}

	chart := &excelize.Chart{
		Type:   excelize.Scatter,
		Series: chartSeries,
		Title:  []excelize.RichTextRun{{Text: deco.Title}},
		XAxis: excelize.ChartAxis{
			MajorGridLines: true,
			Title:          []excelize.RichTextRun{{Text: deco.XLabel}},
		},
		YAxis: excelize.ChartAxis{
			MajorGridLines: true,
			Title:          []excelize.RichTextRun{{Text: deco.YLabel}},
		},
		Legend:    excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{Width: 960, Height: 540},
	}
	if opts.LogAxes {
		chart.XAxis.LogBase = 10
		chart.YAxis.LogBase = 10
	}
	if err := f.AddChart(ChartSheet, "C1", chart); err != nil {
		return errors.Wrap(err, "workbook: could not add chart")
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "workbook: could not save %s", path)
	}
	return nil
}

// writeSeries writes a header row followed by one row per point.
func writeSeries(f *excelize.File, sheet string, s models.Series, opts Options) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{opts.XName, opts.YName}); err != nil {
		return err
	}
	for i := range s.X {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{s.X[i], s.Y[i]}); err != nil {
			return err
		}
	}
	return nil
}

// SheetNames returns a valid, unique sheet name for every series label.
func SheetNames(series []models.Series) []string {
	used := map[string]bool{strings.ToLower(ChartSheet): true}
	names := make([]string, len(series))
	for i, s := range series {
		base := sanitize(s.Label)
		if base == "" {
			base = fmt.Sprintf("Series %d", i+1)
		}
		name := base
		for n := 2; used[strings.ToLower(name)]; n++ {
			suffix := fmt.Sprintf(" (%d)", n)
			name = truncate(base, maxSheetName-len(suffix)) + suffix
		}
		used[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}

// sanitize replaces characters Excel forbids in sheet names.
func sanitize(label string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\', '\'':
			return '_'
		}
		return r
	}, strings.TrimSpace(label))
	return truncate(name, maxSheetName)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// quote returns a sheet name usable in a cell reference.
func quote(sheet string) string {
	return "'" + sheet + "'"
}
