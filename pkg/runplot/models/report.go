package models

// ReportSeries represents series metadata for a rendered chart.
type ReportSeries struct {
	// Label is the legend label.
	Label string `json:"label"`
	// Style is the style the series was drawn with.
	Style Style `json:"style"`
	// Points is the number of points drawn.
	Points int `json:"points"`
	// X and Y are the plotted values.
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// RenderReport describes one rendered output.
type RenderReport struct {
	// Destination is the output path, or empty when rendered to a writer.
	Destination string `json:"destination,omitempty"`
	// Format is the image format (png, svg, ...).
	Format string `json:"format"`
	// Scale is the axis scale used for both axes ("log" or "linear").
	Scale string `json:"scale"`
	// Decorations are the title, axis labels and footnote.
	Decorations Decorations `json:"decorations"`
	// Series lists the drawn series in legend order.
	Series []ReportSeries `json:"series"`
}
