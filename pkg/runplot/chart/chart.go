// Package chart renders comparative line charts of benchmark series.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/runplot-go/pkg/runplot/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Scale represents the axis scale applied to both axes.
type Scale string

const (
	// ScaleLog maps both axes logarithmically.
	ScaleLog Scale = "log"
	// ScaleLinear maps both axes linearly.
	ScaleLinear Scale = "linear"
)

// ParseScale converts a scale name into a Scale.
func ParseScale(s string) (Scale, error) {
	switch Scale(s) {
	case ScaleLog, ScaleLinear:
		return Scale(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScale, s)
}

// Options configures the figure.
type Options struct {
	// Width and Height are the canvas size.
	Width  vg.Length
	Height vg.Length
	// DPI is the resolution of raster outputs.
	DPI int
	// FontSize applies to the title, axis labels and tick labels.
	FontSize vg.Length
	// LegendFontSize applies to legend entries.
	LegendFontSize vg.Length
	// FootnoteFontSize applies to the footnote.
	FootnoteFontSize vg.Length
	// UseTeX renders all text with the LaTeX handler so labels may contain math.
	UseTeX bool
}

// DefaultOptions returns a 16x9 inch, 400 DPI figure.
func DefaultOptions() Options {
	return Options{
		Width:            16 * vg.Inch,
		Height:           9 * vg.Inch,
		DPI:              400,
		FontSize:         vg.Points(15),
		LegendFontSize:   vg.Points(12),
		FootnoteFontSize: vg.Points(10),
	}
}

// Chart accumulates series and renders them at a chosen scale.
//
// A Chart owns a single plot. Adding a series draws the next line style and
// marker from the chart's own cycles; rendering only switches the axis scale,
// so successive renders share series, legend and decorations.
type Chart struct {
	opts    Options
	plot    *plot.Plot
	scale   Scale
	deco    models.Decorations
	series  []models.Series
	styles  []models.Style
	lines   *Cycle[models.LineStyle]
	markers *Cycle[models.MarkerShape]
	colors  []color.Color
}

// New creates an empty chart with linear axes.
func New(opts Options) *Chart {
	p := plot.New()

	if opts.UseTeX {
		latex := text.Latex{Fonts: font.DefaultCache, DPI: float64(opts.DPI)}
		for _, sty := range []*text.Style{
			&p.Title.TextStyle,
			&p.X.Label.TextStyle,
			&p.Y.Label.TextStyle,
			&p.X.Tick.Label,
			&p.Y.Tick.Label,
			&p.Legend.TextStyle,
		} {
			sty.Handler = latex
		}
	}
	if opts.FontSize > 0 {
		p.Title.TextStyle.Font.Size = opts.FontSize
		p.X.Label.TextStyle.Font.Size = opts.FontSize
		p.Y.Label.TextStyle.Font.Size = opts.FontSize
		p.X.Tick.Label.Font.Size = opts.FontSize * 0.8
		p.Y.Tick.Label.Font.Size = opts.FontSize * 0.8
	}
	if opts.LegendFontSize > 0 {
		p.Legend.TextStyle.Font.Size = opts.LegendFontSize
	}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = 1 * vg.Millimeter
	p.Add(plotter.NewGrid())

	return &Chart{
		opts:    opts,
		plot:    p,
		scale:   ScaleLinear,
		lines:   NewCycle(LineStyles...),
		markers: NewCycle(MarkerShapes...),
		colors:  seriesColors(),
	}
}

// AddSeries draws a labeled series with the next line style and marker.
// On error the chart is left unchanged.
func (c *Chart) AddSeries(label string, xs, ys []float64) (models.Style, error) {
	if len(xs) != len(ys) {
		return models.Style{}, &SeriesError{
			Label:  label,
			Err:    ErrLengthMismatch,
			Detail: fmt.Sprintf("%d x-values, %d y-values", len(xs), len(ys)),
		}
	}

	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return models.Style{}, &SeriesError{Label: label, Err: ErrInvalidValue, Detail: err.Error()}
	}

	clr := c.colors[len(c.series)%len(c.colors)]
	style := models.Style{
		Line:   c.lines.Next(),
		Marker: c.markers.Next(),
		Color:  hexColor(clr),
	}

	line.LineStyle.Color = clr
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = dashes(style.Line)
	points.GlyphStyle = draw.GlyphStyle{
		Color:  clr,
		Radius: vg.Points(4),
		Shape:  glyph(style.Marker),
	}

	// An empty series still gets a legend entry but has no data range.
	if len(xys) > 0 {
		c.plot.Add(line, points)
	}
	c.plot.Legend.Add(label, line, points)

	c.series = append(c.series, models.Series{
		Label: label,
		X:     append([]float64(nil), xs...),
		Y:     append([]float64(nil), ys...),
	})
	c.styles = append(c.styles, style)
	return style, nil
}

// SetDecorations replaces the title, axis labels and footnote.
func (c *Chart) SetDecorations(d models.Decorations) {
	c.deco = d
	c.plot.Title.Text = d.Title
	c.plot.X.Label.Text = d.XLabel
	c.plot.Y.Label.Text = d.YLabel
}

// Decorations returns the current decorations.
func (c *Chart) Decorations() models.Decorations {
	return c.deco
}

// Series returns the added series in insertion order.
func (c *Chart) Series() []models.Series {
	return append([]models.Series(nil), c.series...)
}

// Styles returns the style of each added series in insertion order.
func (c *Chart) Styles() []models.Style {
	return append([]models.Style(nil), c.styles...)
}

// Scale returns the scale used by the most recent render.
func (c *Chart) Scale() Scale {
	return c.scale
}

// Render switches both axes to scale and writes the chart to dest.
// The image format follows the file extension.
// The destination is closed even when writing fails; partial files are left in place.
func (c *Chart) Render(scale Scale, dest string) (*models.RenderReport, error) {
	format := FormatOf(dest)
	cw, err := c.draw(scale, format)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(dest)
	if err != nil {
		return nil, &WriteError{Destination: dest, Err: err}
	}
	_, err = cw.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, &WriteError{Destination: dest, Err: err}
	}

	report := c.report(format)
	report.Destination = dest
	return report, nil
}

// RenderTo is like Render but writes the image to w in the given format.
func (c *Chart) RenderTo(scale Scale, w io.Writer, format string) (*models.RenderReport, error) {
	format = strings.ToLower(format)
	cw, err := c.draw(scale, format)
	if err != nil {
		return nil, err
	}
	if _, err := cw.WriteTo(w); err != nil {
		return nil, &WriteError{Destination: format + " writer", Err: err}
	}
	return c.report(format), nil
}

// formats lists the supported output formats.
var formats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
	"svg": true, "pdf": true, "eps": true, "tex": true,
}

// FormatOf returns the image format implied by a file name, defaulting to png.
func FormatOf(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "png"
	}
	return ext
}

// draw applies scale and draws the chart onto a canvas for format.
func (c *Chart) draw(scale Scale, format string) (vg.CanvasWriterTo, error) {
	if err := c.validate(scale); err != nil {
		return nil, err
	}
	if !formats[format] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	c.setScale(scale)

	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		img := vgimg.NewWith(
			vgimg.UseWH(c.opts.Width, c.opts.Height),
			vgimg.UseDPI(c.opts.DPI),
		)
		c.drawOn(draw.New(img))
		switch format {
		case "png":
			return vgimg.PngCanvas{Canvas: img}, nil
		case "jpg", "jpeg":
			return vgimg.JpegCanvas{Canvas: img}, nil
		default:
			return vgimg.TiffCanvas{Canvas: img}, nil
		}
	}

	cw, err := draw.NewFormattedCanvas(c.opts.Width, c.opts.Height, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	c.drawOn(draw.New(cw))
	return cw, nil
}

// validate checks that the chart can be drawn at scale.
func (c *Chart) validate(scale Scale) error {
	if scale != ScaleLog && scale != ScaleLinear {
		return fmt.Errorf("%w: %q", ErrUnknownScale, scale)
	}

	points := 0
	for _, s := range c.series {
		points += s.Len()
	}
	if points == 0 {
		return ErrEmptyChart
	}

	if scale != ScaleLog {
		return nil
	}
	for _, s := range c.series {
		for i := range s.X {
			if s.X[i] <= 0 || s.Y[i] <= 0 {
				return &SeriesError{
					Label:  s.Label,
					Err:    ErrNonPositiveValue,
					Detail: fmt.Sprintf("point %d is (%g, %g)", i, s.X[i], s.Y[i]),
				}
			}
		}
	}
	return nil
}

func (c *Chart) setScale(scale Scale) {
	c.scale = scale
	switch scale {
	case ScaleLog:
		c.plot.X.Scale = plot.LogScale{}
		c.plot.Y.Scale = plot.LogScale{}
		c.plot.X.Tick.Marker = plot.LogTicks{Prec: -1}
		c.plot.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	default:
		c.plot.X.Scale = plot.LinearScale{}
		c.plot.Y.Scale = plot.LinearScale{}
		c.plot.X.Tick.Marker = plot.DefaultTicks{}
		c.plot.Y.Tick.Marker = plot.DefaultTicks{}
	}
}

// drawOn draws the footnote strip and the plot onto dc.
func (c *Chart) drawOn(dc draw.Canvas) {
	if c.deco.Footnote != "" {
		sty := c.plot.X.Label.TextStyle
		if c.opts.FootnoteFontSize > 0 {
			sty.Font.Size = c.opts.FootnoteFontSize
		}
		sty.Rotation = 0
		sty.XAlign = draw.XRight
		sty.YAlign = draw.YBottom

		pad := vg.Points(4)
		dc.FillText(sty, vg.Point{X: dc.Max.X - pad, Y: dc.Min.Y + pad}, c.deco.Footnote)
		dc.Min.Y += sty.Height(c.deco.Footnote) + 2*pad
	}

	// Drawing may adjust axis ranges; keep the data ranges for the next render.
	x, y := c.plot.X, c.plot.Y
	defer func() {
		c.plot.X.Min, c.plot.X.Max = x.Min, x.Max
		c.plot.Y.Min, c.plot.Y.Max = y.Min, y.Max
	}()
	if c.scale == ScaleLog {
		widenDegenerate(&c.plot.X)
		widenDegenerate(&c.plot.Y)
	}
	c.plot.Draw(dc)
}

// widenDegenerate spreads a zero-width positive axis range by one decade on
// each side, since a log axis cannot be padded linearly around a single value.
func widenDegenerate(a *plot.Axis) {
	if a.Min != a.Max || a.Min <= 0 || math.IsInf(a.Min, 0) {
		return
	}
	a.Min, a.Max = a.Min/10, a.Max*10
}

// report describes the current chart state.
func (c *Chart) report(format string) *models.RenderReport {
	r := &models.RenderReport{
		Format:      format,
		Scale:       string(c.scale),
		Decorations: c.deco,
		Series:      make([]models.ReportSeries, len(c.series)),
	}
	for i, s := range c.series {
		r.Series[i] = models.ReportSeries{
			Label:  s.Label,
			Style:  c.styles[i],
			Points: s.Len(),
			X:      s.X,
			Y:      s.Y,
		}
	}
	return r
}
