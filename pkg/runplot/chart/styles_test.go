package chart

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/runplot-go/pkg/runplot/models"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

func TestGlyphsAreDistinct(t *testing.T) {
	seen := map[draw.GlyphDrawer]models.MarkerShape{}
	for _, m := range MarkerShapes {
		g := glyph(m)
		prev, dup := seen[g]
		require.False(t, dup, "%s draws the same glyph as %s", m, prev)
		seen[g] = m
	}
}

func TestFilledGlyphShapes(t *testing.T) {
	tests := []struct {
		marker   models.MarkerShape
		vertices int
	}{
		{models.MarkerDiamond, 4},
		{models.MarkerTriangleDown, 3},
		{models.MarkerFilledX, 12},
		{models.MarkerStar, 10},
	}

	sty := draw.GlyphStyle{Color: color.Black, Radius: vg.Points(4)}
	center := vg.Point{X: 10, Y: 10}
	for _, tt := range tests {
		t.Run(string(tt.marker), func(t *testing.T) {
			rec := new(recorder.Canvas)
			glyph(tt.marker).DrawGlyph(&draw.Canvas{Canvas: rec}, sty, center)

			fill := onlyFill(t, rec)

			var pts []vg.Point
			for _, comp := range fill.Path {
				if comp.Type == vg.MoveComp || comp.Type == vg.LineComp {
					pts = append(pts, comp.Pos)
				}
			}
			require.GreaterOrEqual(t, len(pts), tt.vertices)
			for _, p := range pts[:tt.vertices] {
				d := math.Hypot(float64(p.X-center.X), float64(p.Y-center.Y))
				assert.LessOrEqual(t, d, float64(sty.Radius)*1.2)
			}
		})
	}
}

func TestStarPointsUp(t *testing.T) {
	rec := new(recorder.Canvas)
	sty := draw.GlyphStyle{Color: color.Black, Radius: vg.Points(4)}
	starGlyph{}.DrawGlyph(&draw.Canvas{Canvas: rec}, sty, vg.Point{})

	fill := onlyFill(t, rec)
	top := fill.Path[0].Pos
	assert.InDelta(t, 0, float64(top.X), 1e-9)
	assert.InDelta(t, float64(sty.Radius), float64(top.Y), 1e-9)
}

// onlyFill returns the single fill recorded on rec.
func onlyFill(t *testing.T, rec *recorder.Canvas) *recorder.Fill {
	t.Helper()
	var fills []*recorder.Fill
	for _, a := range rec.Actions {
		if f, ok := a.(*recorder.Fill); ok {
			fills = append(fills, f)
		}
	}
	require.Len(t, fills, 1, "glyph must be a single filled shape")
	return fills[0]
}
