package models

// Series represents one labeled (x, y) curve.
type Series struct {
	// Label is the legend label.
	Label string `json:"label"`
	// X holds the x-values, index-aligned with Y.
	X []float64 `json:"x"`
	// Y holds the y-values, index-aligned with X.
	Y []float64 `json:"y"`
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.X)
}

// LineStyle names a line dash pattern.
type LineStyle string

const (
	LineSolid   LineStyle = "solid"
	LineDashed  LineStyle = "dashed"
	LineDashDot LineStyle = "dash-dot"
	LineDotted  LineStyle = "dotted"
)

// MarkerShape names a point marker shape.
type MarkerShape string

const (
	MarkerCircle       MarkerShape = "circle"
	MarkerTriangleDown MarkerShape = "triangle-down"
	MarkerSquare       MarkerShape = "square"
	MarkerDiamond      MarkerShape = "diamond"
	MarkerFilledX      MarkerShape = "filled-x"
	MarkerTriangleUp   MarkerShape = "triangle-up"
	MarkerStar         MarkerShape = "star"
)

// Style is the visual identity assigned to a series when it is added to a chart.
type Style struct {
	Line   LineStyle   `json:"line"`
	Marker MarkerShape `json:"marker"`
	// Color is the stroke color as a #rrggbb hex string.
	Color string `json:"color"`
}

// Decorations holds the textual decorations of a chart.
type Decorations struct {
	Title    string `json:"title,omitempty" yaml:"title"`
	XLabel   string `json:"x_label,omitempty" yaml:"x_label"`
	YLabel   string `json:"y_label,omitempty" yaml:"y_label"`
	Footnote string `json:"footnote,omitempty" yaml:"footnote"`
}
