package svgfractal

import (
	"math"
	"strings"
	"testing"

	"github.com/benoitkugler/figsvg/svgfig"
	"github.com/cheekybits/is"
	"github.com/srwiley/rasterx"
)

type segment struct{ x1, y1, x2, y2 float64 }

// segments flattens the lines of f into the root coordinate space,
// composing each Trans with matrix.
func segments(f svgfig.Fig, m rasterx.Matrix2D, matrix func(svgfig.Trans) rasterx.Matrix2D) []segment {
	switch f := f.(type) {
	case svgfig.Line:
		x1, y1 := m.Transform(f.X1, f.Y1)
		x2, y2 := m.Transform(f.X2, f.Y2)
		return []segment{{x1, y1, x2, y2}}
	case svgfig.Styled:
		return segments(f.Child, m, matrix)
	case svgfig.Transformed:
		return segments(f.Child, m.Mult(matrix(f.Trans)), matrix)
	case svgfig.Shared:
		return segments(f.Fig(), m, matrix)
	case svgfig.Multiple:
		var out []segment
		for _, child := range f {
			out = append(out, segments(child, m, matrix)...)
		}
		return out
	}
	return nil
}

// appendOrder composes the operations as if they were written in
// the order they were added, the alternative to Trans.Matrix.
func appendOrder(t svgfig.Trans) rasterx.Matrix2D {
	m := rasterx.Identity
	for _, op := range t.Ops() {
		switch op := op.(type) {
		case svgfig.Translation:
			m = m.Translate(op.DX, op.DY)
		case svgfig.Rotation:
			m = m.Rotate(op.Degrees * math.Pi / 180)
		case svgfig.Scaling:
			m = m.Scale(op.SX, op.SY)
		}
	}
	return m
}

type point struct{ x, y int64 }

func key(x, y float64) point {
	return point{int64(math.Round(x * 1e4)), int64(math.Round(y * 1e4))}
}

// degrees counts how many segment ends meet at each point.
func degrees(segs []segment) map[point]int {
	out := map[point]int{}
	for _, s := range segs {
		out[key(s.x1, s.y1)]++
		out[key(s.x2, s.y2)]++
	}
	return out
}

func matrixOf(t svgfig.Trans) rasterx.Matrix2D { return t.Matrix() }

func TestKochIsContinuous(t *testing.T) {
	is := is.New(t)
	const w = 500.
	for depth := 0; depth <= 5; depth++ {
		segs := segments(Koch(w, depth), rasterx.Identity, matrixOf)
		is.Equal(len(segs), int(math.Pow(4, float64(depth))))

		deg := degrees(segs)
		is.Equal(deg[key(0, 0)], 1)
		is.Equal(deg[key(w, 0)], 1)
		for p, d := range deg {
			if p == key(0, 0) || p == key(w, 0) {
				continue
			}
			is.Equal(d, 2)
		}
	}
}

func TestKochFirstLevelEndpoints(t *testing.T) {
	is := is.New(t)
	const w = 300.
	h := w / 3 * math.Sqrt(3) / 2
	segs := segments(Koch(w, 1), rasterx.Identity, matrixOf)
	want := []segment{
		{0, 0, 100, 0},
		{100, 0, 150, h},
		{200, 0, 150, h},
		{200, 0, 300, 0},
	}
	is.Equal(len(segs), len(want))
	for i, s := range segs {
		is.Equal(key(s.x1, s.y1), key(want[i].x1, want[i].y1))
		is.Equal(key(s.x2, s.y2), key(want[i].x2, want[i].y2))
	}
}

// Writing the operations in the order they were added would tear
// the curve apart.
func TestKochBreaksWithAppendOrder(t *testing.T) {
	is := is.New(t)
	segs := segments(Koch(500, 1), rasterx.Identity, appendOrder)
	broken := false
	for p, d := range degrees(segs) {
		if d == 1 && p != key(0, 0) && p != key(500, 0) {
			broken = true
		}
	}
	is.True(broken)
}

func TestKochMarkup(t *testing.T) {
	is := is.New(t)
	line := `<line x1="0" y1="0" x2="300" y2="0"/>` + "\n"
	want := `<g transform="scale(0.3333333333333333) ">` + "\n" +
		line +
		`<g transform="translate(300, 0) rotate(60) ">` + "\n" + line + "</g>\n" +
		`<g transform="translate(600, 0) rotate(120) scale(1, -1) ">` + "\n" + line + "</g>\n" +
		`<g transform="translate(600, 0) ">` + "\n" + line + "</g>\n" +
		"</g>\n"
	is.Equal(svgfig.FigString(Koch(300, 1)), want)
	is.Equal(svgfig.FigString(Koch(300, 0)), line)
}

func TestKochSharesEachLevel(t *testing.T) {
	is := is.New(t)
	outer := Koch(100, 2).(svgfig.Transformed)
	children := outer.Child.(svgfig.Multiple)
	first := children[0].(svgfig.Shared)
	for _, c := range children[1:] {
		is.True(first.Same(c.(svgfig.Transformed).Child.(svgfig.Shared)))
	}
	is.Equal(strings.Count(svgfig.FigString(outer), "<line"), 16)
}

func TestSnowflakeIsClosed(t *testing.T) {
	is := is.New(t)
	const w = 400.
	for depth := 0; depth <= 3; depth++ {
		segs := segments(Snowflake(w, depth), rasterx.Identity, matrixOf)
		is.Equal(len(segs), 3*int(math.Pow(4, float64(depth))))
		for _, d := range degrees(segs) {
			is.Equal(d, 2)
		}
		for _, s := range segs {
			for _, y := range []float64{s.y1, s.y2} {
				is.True(y > -1e-6 && y < w*2/math.Sqrt(3)+1e-6)
			}
			for _, x := range []float64{s.x1, s.x2} {
				is.True(x > -1e-6 && x < w+1e-6)
			}
		}
	}
}

func TestSierpinski(t *testing.T) {
	is := is.New(t)
	const size = 256.
	h := size * math.Sqrt(3) / 2
	for depth := 0; depth <= 4; depth++ {
		fig := Sierpinski(size, depth)
		segs := segments(fig, rasterx.Identity, matrixOf)
		is.Equal(len(segs), 3*int(math.Pow(3, float64(depth))))
		for _, s := range segs {
			is.True(s.x1 > -1e-6 && s.x1 < size+1e-6)
			is.True(s.y1 > -1e-6 && s.y1 < h+1e-6)
		}
		is.Equal(strings.Count(svgfig.FigString(fig), "<line"), len(segs))
	}
}

func TestCarpet(t *testing.T) {
	is := is.New(t)
	for depth := 0; depth <= 3; depth++ {
		out := svgfig.FigString(Carpet(81, depth))
		is.Equal(strings.Count(out, "<rect"), int(math.Pow(8, float64(depth))))
	}
	out := svgfig.NewSvg(81, 81, svgfig.Style(Carpet(81, 2), svgfig.Attr{}.Fill(svgfig.Color{}))).String()
	is.True(strings.HasPrefix(out, `<svg width="81" height="81" xmlns="http://www.w3.org/2000/svg">`+"\n"+
		`<g style="fill:#000000;">`+"\n"))
	is.True(strings.HasSuffix(out, "</g>\n</svg>\n"))
}
