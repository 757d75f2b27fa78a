package runplot

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/ukaji3/runplot-go/pkg/runplot/chart"
	"github.com/ukaji3/runplot-go/pkg/runplot/models"
	"github.com/ukaji3/runplot-go/pkg/runplot/parser"
	"github.com/ukaji3/runplot-go/pkg/runplot/workbook"
)

// Result describes a completed run.
type Result struct {
	// Series are the extracted series in source order.
	Series []models.Series `json:"series"`
	// Styles are the styles assigned to each series.
	Styles []models.Style `json:"styles"`
	// Renders describes the log-log and linear outputs, in that order.
	Renders []*models.RenderReport `json:"renders"`
}

// Extract reads every source. The first failure aborts the extraction.
func Extract(opts Options, logger *slog.Logger) ([]models.Series, error) {
	logger = orDiscard(logger)
	fileOpts := parser.FileOptions{Strict: opts.Strict}

	series := make([]models.Series, 0, len(opts.Sources))
	for _, src := range opts.Sources {
		fileOpts.Sheet = src.Sheet
		xs, ys, err := parser.ExtractFile(src.Path, src.XColumn, src.YColumn, fileOpts)
		if err != nil {
			return nil, NewSourceError(src.Label, src.Path, err)
		}
		logger.Debug("extracted source", "label", src.Label, "path", src.Path, "points", len(xs))
		series = append(series, models.Series{Label: src.Label, X: xs, Y: ys})
	}
	return series, nil
}

// Run extracts all sources, then renders one chart at log-log scale and
// again at linear scale. Nothing is rendered unless every source extracts.
func Run(opts Options, logger *slog.Logger) (*Result, error) {
	logger = orDiscard(logger)
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	series, err := Extract(opts, logger)
	if err != nil {
		return nil, err
	}

	c := chart.New(opts.ChartOptions())
	for _, s := range series {
		style, err := c.AddSeries(s.Label, s.X, s.Y)
		if err != nil {
			return nil, err
		}
		logger.Debug("added series", "label", s.Label, "line", style.Line, "marker", style.Marker)
	}
	c.SetDecorations(opts.Decorations)

	result := &Result{Series: series, Styles: c.Styles()}
	for _, out := range []struct {
		scale chart.Scale
		dest  string
	}{
		{chart.ScaleLog, opts.Outputs.Log},
		{chart.ScaleLinear, opts.Outputs.Linear},
	} {
		report, err := c.Render(out.scale, out.dest)
		if err != nil {
			return nil, err
		}
		logger.Info("rendered chart", "scale", out.scale, "path", out.dest)
		result.Renders = append(result.Renders, report)
	}

	if opts.Outputs.Workbook != "" {
		wbOpts := workbook.Options{
			XName:   opts.Sources[0].XColumn,
			YName:   opts.Sources[0].YColumn,
			LogAxes: true,
		}
		if err := workbook.Export(opts.Outputs.Workbook, series, result.Styles, opts.Decorations, wbOpts); err != nil {
			return nil, err
		}
		logger.Info("exported workbook", "path", opts.Outputs.Workbook)
	}

	if opts.Outputs.Report != "" {
		if err := writeReport(opts.Outputs.Report, result); err != nil {
			return nil, err
		}
		logger.Info("wrote report", "path", opts.Outputs.Report)
	}

	return result, nil
}

// ToJSON serializes a result.
func ToJSON(r *Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

func writeReport(path string, r *Result) error {
	data, err := ToJSON(r, true)
	if err != nil {
		return errors.Wrap(err, "runplot: could not encode report")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "runplot: could not write report")
	}
	return nil
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
