package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ukaji3/runplot-go/pkg/runplot/models"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LineStyles is the line dash order assigned to successive series.
var LineStyles = []models.LineStyle{
	models.LineSolid,
	models.LineDashed,
	models.LineDashDot,
	models.LineDotted,
}

// MarkerShapes is the marker order assigned to successive series.
var MarkerShapes = []models.MarkerShape{
	models.MarkerCircle,
	models.MarkerTriangleDown,
	models.MarkerSquare,
	models.MarkerDiamond,
	models.MarkerFilledX,
	models.MarkerTriangleUp,
	models.MarkerStar,
}

// dashes returns the dash pattern for a line style.
func dashes(s models.LineStyle) []vg.Length {
	switch s {
	case models.LineDashed:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case models.LineDashDot:
		return []vg.Length{vg.Points(6), vg.Points(3), vg.Points(1.5), vg.Points(3)}
	case models.LineDotted:
		return []vg.Length{vg.Points(1.5), vg.Points(2)}
	default:
		return nil
	}
}

// glyph returns the glyph drawer for a marker shape.
func glyph(m models.MarkerShape) draw.GlyphDrawer {
	switch m {
	case models.MarkerTriangleDown:
		return triangleDownGlyph{}
	case models.MarkerSquare:
		return draw.BoxGlyph{}
	case models.MarkerDiamond:
		return diamondGlyph{}
	case models.MarkerFilledX:
		return filledXGlyph{}
	case models.MarkerTriangleUp:
		return draw.PyramidGlyph{}
	case models.MarkerStar:
		return starGlyph{}
	default:
		return draw.CircleGlyph{}
	}
}

// diamondGlyph is a filled square rotated by 45 degrees.
type diamondGlyph struct{}

func (diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	c.FillPolygon(sty.Color, []vg.Point{
		{X: pt.X, Y: pt.Y + r},
		{X: pt.X + r, Y: pt.Y},
		{X: pt.X, Y: pt.Y - r},
		{X: pt.X - r, Y: pt.Y},
	})
}

// triangleDownGlyph is a filled triangle pointing down.
type triangleDownGlyph struct{}

func (triangleDownGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius + (sty.Radius-sty.Radius*0.866)/2
	c.FillPolygon(sty.Color, []vg.Point{
		{X: pt.X - r*0.866, Y: pt.Y + r*0.5},
		{X: pt.X + r*0.866, Y: pt.Y + r*0.5},
		{X: pt.X, Y: pt.Y - r},
	})
}

// filledXGlyph is a filled plus sign rotated by 45 degrees.
type filledXGlyph struct{}

func (filledXGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	a := r * 0.3
	plus := []vg.Point{
		{X: a, Y: r}, {X: a, Y: a}, {X: r, Y: a},
		{X: r, Y: -a}, {X: a, Y: -a}, {X: a, Y: -r},
		{X: -a, Y: -r}, {X: -a, Y: -a}, {X: -r, Y: -a},
		{X: -r, Y: a}, {X: -a, Y: a}, {X: -a, Y: r},
	}
	poly := make([]vg.Point, len(plus))
	for i, p := range plus {
		poly[i] = vg.Point{
			X: pt.X + (p.X-p.Y)*math.Sqrt2/2,
			Y: pt.Y + (p.X+p.Y)*math.Sqrt2/2,
		}
	}
	c.FillPolygon(sty.Color, poly)
}

// starGlyph is a filled five-pointed star with one point up.
type starGlyph struct{}

func (starGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	const points = 5
	poly := make([]vg.Point, 0, 2*points)
	for i := 0; i < 2*points; i++ {
		r := sty.Radius
		if i%2 == 1 {
			r *= 0.382
		}
		theta := math.Pi/2 + float64(i)*math.Pi/points
		poly = append(poly, vg.Point{
			X: pt.X + r*vg.Length(math.Cos(theta)),
			Y: pt.Y + r*vg.Length(math.Sin(theta)),
		})
	}
	c.FillPolygon(sty.Color, poly)
}

// seriesColors returns the qualitative palette series colors are drawn from.
func seriesColors() []color.Color {
	p, err := brewer.GetPalette(brewer.TypeQualitative, "Dark2", 8)
	if err != nil {
		return plotutil.DefaultColors
	}
	return p.Colors()
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
