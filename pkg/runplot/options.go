// Package runplot extracts benchmark series from result tables and renders
// comparative log-log and linear charts.
package runplot

import (
	"os"

	"github.com/pkg/errors"
	"github.com/ukaji3/runplot-go/pkg/runplot/chart"
	"github.com/ukaji3/runplot-go/pkg/runplot/models"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Source names a result table and the columns to plot from it.
type Source struct {
	// Label is the legend label of the series.
	Label string `yaml:"label"`
	// Path is the table file (.csv or .xlsx).
	Path string `yaml:"path"`
	// Sheet selects the worksheet of an .xlsx source (default: first sheet).
	Sheet string `yaml:"sheet,omitempty"`
	// XColumn and YColumn are header names.
	XColumn string `yaml:"x_column"`
	YColumn string `yaml:"y_column"`
}

// Figure configures the rendered image.
type Figure struct {
	WidthInches      float64 `yaml:"width_inches"`
	HeightInches     float64 `yaml:"height_inches"`
	DPI              int     `yaml:"dpi"`
	FontSize         float64 `yaml:"font_size"`
	LegendFontSize   float64 `yaml:"legend_font_size"`
	FootnoteFontSize float64 `yaml:"footnote_font_size"`
	// UseTeX renders text with the LaTeX handler.
	UseTeX bool `yaml:"use_tex"`
}

// Outputs names the files a run produces. Empty optional outputs are skipped.
type Outputs struct {
	// Log is the log-log chart.
	Log string `yaml:"log"`
	// Linear is the linear chart.
	Linear string `yaml:"linear"`
	// Workbook is an optional .xlsx export of the series.
	Workbook string `yaml:"workbook,omitempty"`
	// Report is an optional JSON description of both renders.
	Report string `yaml:"report,omitempty"`
}

// Options configures a run.
type Options struct {
	Sources []Source `yaml:"sources"`
	// Strict reads delimited sources with an RFC 4180 parser instead of plain comma splitting.
	Strict      bool               `yaml:"strict"`
	Decorations models.Decorations `yaml:"decorations"`
	Figure      Figure             `yaml:"figure"`
	Outputs     Outputs            `yaml:"outputs"`
}

// DefaultOptions returns options comparing the C++ and Rust runtime tables
// of the Lennard-Jones benchmark.
func DefaultOptions() Options {
	return Options{
		Sources: []Source{
			{Label: "C++", Path: "./cpp/runtimes.csv", XColumn: "nb_atoms", YColumn: "runtime_micros"},
			{Label: "Rust", Path: "./rust/runtimes.csv", XColumn: "nb_atoms", YColumn: "runtime_micros"},
		},
		Decorations: models.Decorations{
			Title:    "Runtime per Simulation Step as a Function of the Number of Atoms",
			XLabel:   "Number of Atoms $N$",
			YLabel:   `Runtime $t$ per Simulation Step ($\mu s$)`,
			Footnote: "Average across 100 subsequent timesteps each, Lennard-Jones direct summation, Regular grid of atoms",
		},
		Figure: Figure{
			WidthInches:      16,
			HeightInches:     9,
			DPI:              400,
			FontSize:         15,
			LegendFontSize:   12,
			FootnoteFontSize: 10,
			UseTeX:           true,
		},
		Outputs: Outputs{
			Log:    "runtimes.png",
			Linear: "runtimes_lin.png",
		},
	}
}

// LoadOptions reads a YAML file over DefaultOptions.
// Keys missing from the file keep their default values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrapf(err, "runplot: could not parse %s", path)
	}
	return opts, nil
}

// Validate reports options that cannot drive a run.
func (o Options) Validate() error {
	if len(o.Sources) == 0 {
		return errors.Wrap(ErrInvalidOptions, "no sources")
	}
	for i, s := range o.Sources {
		if s.Path == "" || s.XColumn == "" || s.YColumn == "" {
			return errors.Wrapf(ErrInvalidOptions, "source %d (%q) needs path, x_column and y_column", i+1, s.Label)
		}
	}
	if o.Figure.WidthInches <= 0 || o.Figure.HeightInches <= 0 {
		return errors.Wrap(ErrInvalidOptions, "figure size must be positive")
	}
	if o.Figure.DPI <= 0 {
		return errors.Wrap(ErrInvalidOptions, "dpi must be positive")
	}
	if o.Outputs.Log == "" || o.Outputs.Linear == "" {
		return errors.Wrap(ErrInvalidOptions, "both log and linear outputs are required")
	}
	return nil
}

// ChartOptions converts the figure settings to chart options.
func (o Options) ChartOptions() chart.Options {
	return chart.Options{
		Width:            vg.Length(o.Figure.WidthInches) * vg.Inch,
		Height:           vg.Length(o.Figure.HeightInches) * vg.Inch,
		DPI:              o.Figure.DPI,
		FontSize:         vg.Points(o.Figure.FontSize),
		LegendFontSize:   vg.Points(o.Figure.LegendFontSize),
		FootnoteFontSize: vg.Points(o.Figure.FootnoteFontSize),
		UseTeX:           o.Figure.UseTeX,
	}
}
