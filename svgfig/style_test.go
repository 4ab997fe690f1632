package svgfig

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorString(t *testing.T) {
	assert.Equal(t, "#000000", Color{}.String())
	assert.Equal(t, "#ff0000", NewColor(0xff, 0, 0).String())
	assert.Equal(t, "#0a0b0c", NewColor(10, 11, 12).String())
}

func TestColorConversions(t *testing.T) {
	c, ok := Named("SteelBlue")
	require.True(t, ok)
	assert.Equal(t, "#4682b4", c.String())

	_, ok = Named("no-such-color")
	assert.False(t, ok)

	assert.Equal(t, NewColor(1, 2, 3), ColorOf(color.RGBA{R: 1, G: 2, B: 3, A: 0xff}))
	assert.Equal(t, NewColor(1, 2, 3), ColorOf(NewColor(1, 2, 3)))

	_, _, _, a := NewColor(1, 2, 3).RGBA()
	assert.Equal(t, uint32(0xffff), a)
}

func TestAttrString(t *testing.T) {
	assert.Equal(t, "", Attr{}.String())
	assert.True(t, Attr{}.IsZero())

	red := NewColor(0xff, 0, 0)
	assert.Equal(t, "fill:#ff0000;", Attr{}.Fill(red).String())

	// declaration order does not matter, output order does
	a := Attr{}.FontFamily("serif").Opacity(0.5).StrokeWidth(2).Stroke(Color{}).Fill(red)
	assert.Equal(t, "fill:#ff0000;stroke:#000000;stroke-width:2;opacity:0.5;font-family:serif;", a.String())
	assert.False(t, a.IsZero())
}

func TestAttrLastCallWins(t *testing.T) {
	a := Attr{}.Fill(NewColor(1, 1, 1)).Fill(NewColor(2, 2, 2))
	c, ok := a.LookupFill()
	require.True(t, ok)
	assert.Equal(t, NewColor(2, 2, 2), c)

	_, ok = a.LookupStroke()
	assert.False(t, ok)
}

func TestAttrBuildersDoNotModifyReceiver(t *testing.T) {
	base := Attr{}.StrokeWidth(1)
	wide := base.StrokeWidth(10)
	w, _ := base.LookupStrokeWidth()
	assert.Equal(t, 1.0, w)
	w, _ = wide.LookupStrokeWidth()
	assert.Equal(t, 10.0, w)
}

func TestTransString(t *testing.T) {
	assert.Equal(t, "", Trans{}.String())
	assert.Equal(t, "rotate(90) translate(1, 2) ", Trans{}.Translate(1, 2).Rotate(90).String())
	assert.Equal(t, "scale(2) ", Trans{}.Scale(2).String())
	assert.Equal(t, "scale(2) ", Trans{}.ScaleXY(2, 2).String())
	assert.Equal(t, "scale(1, -1) ", Trans{}.ScaleXY(1, -1).String())
	assert.Equal(t, "translate(2000, 0) rotate(120) scale(1, -1) ",
		Trans{}.ScaleXY(1, -1).Rotate(120).Translate(2000, 0).String())
}

func TestTransOps(t *testing.T) {
	tr := Trans{}.Translate(1, 2).Rotate(3).Scale(4)
	require.Equal(t, 3, tr.Len())
	ops := tr.Ops()
	assert.Equal(t, []Op{Translation{DX: 1, DY: 2}, Rotation{Degrees: 3}, Scaling{SX: 4, SY: 4}}, ops)

	ops[0] = Rotation{}
	assert.Equal(t, Translation{DX: 1, DY: 2}, tr.Ops()[0])
}

func TestTransBranchesDoNotAlias(t *testing.T) {
	base := Trans{}.Translate(1, 1).Translate(2, 2).Translate(3, 3)
	a := base.Rotate(10)
	b := base.Rotate(20)
	assert.Equal(t, "rotate(10) translate(3, 3) translate(2, 2) translate(1, 1) ", a.String())
	assert.Equal(t, "rotate(20) translate(3, 3) translate(2, 2) translate(1, 1) ", b.String())
	assert.Equal(t, 3, base.Len())
}

func TestTransMatrixAppliesFirstAddedFirst(t *testing.T) {
	// rotate (1, 0) to (0, 1), then move it by (10, 0)
	x, y := Trans{}.Rotate(90).Translate(10, 0).Matrix().Transform(1, 0)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 1, y, 1e-9)

	// the other way round: (11, 0) rotated to (0, 11)
	x, y = Trans{}.Translate(10, 0).Rotate(90).Matrix().Transform(1, 0)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 11, y, 1e-9)

	x, y = Trans{}.ScaleXY(2, -1).Matrix().Transform(3, 4)
	assert.InDelta(t, 6, x, 1e-9)
	assert.InDelta(t, -4, y, 1e-9)

	x, y = Trans{}.Matrix().Transform(3, 4)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestFormatNumber(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{-10, "-10"},
		{0.333, "0.333"},
		{0.1, "0.1"},
		{1.5e-7, "0.00000015"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	} {
		assert.Equal(t, tc.want, formatNumber(tc.in), "input %v", tc.in)
	}
}
