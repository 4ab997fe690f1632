// Package svgfractal builds self-similar figures out of the
// svgfig wrap operators only. Each level shares the figure of the
// previous level, so the tree size grows linearly with the depth
// while the rendered markup grows exponentially.
package svgfractal

import (
	"math"

	"github.com/benoitkugler/figsvg/svgfig"
)

var sqrt3 = math.Sqrt(3)

// Koch returns the Koch curve from (0, 0) to (width, 0), refined
// depth times. The bumps point towards positive y, that is
// downwards on screen.
func Koch(width float64, depth int) svgfig.Fig {
	var fig svgfig.Fig = svgfig.NewLine(0, 0, width, 0)
	for i := 0; i < depth; i++ {
		f := svgfig.Share(fig)
		fig = svgfig.Transform(svgfig.NewMultiple(
			f,
			svgfig.Transform(f, svgfig.Trans{}.Rotate(60).Translate(width, 0)),
			svgfig.Transform(f, svgfig.Trans{}.ScaleXY(1, -1).Rotate(120).Translate(2*width, 0)),
			svgfig.Transform(f, svgfig.Trans{}.Translate(2*width, 0)),
		), svgfig.Trans{}.Scale(1.0/3))
	}
	return fig
}

// Snowflake returns three Koch curves closed into a snowflake
// with bumps facing outwards. It fits in a width x width*2/sqrt(3) box.
func Snowflake(width float64, depth int) svgfig.Fig {
	side := svgfig.Share(Koch(width, depth))
	h := width * sqrt3 / 2
	return svgfig.NewMultiple(
		svgfig.Transform(side, svgfig.Trans{}.Translate(0, h)),
		svgfig.Transform(side, svgfig.Trans{}.Rotate(240).Translate(width, h)),
		svgfig.Transform(side, svgfig.Trans{}.Rotate(120).Translate(width/2, 0)),
	)
}

// Sierpinski returns the outline of the Sierpinski triangle with
// its base at the bottom of a size x size*sqrt(3)/2 box.
func Sierpinski(size float64, depth int) svgfig.Fig {
	h := size * sqrt3 / 2
	var fig svgfig.Fig = svgfig.NewMultiple(
		svgfig.NewLine(0, h, size, h),
		svgfig.NewLine(size, h, size/2, 0),
		svgfig.NewLine(size/2, 0, 0, h),
	)
	for i := 0; i < depth; i++ {
		f := svgfig.Share(fig)
		half := svgfig.Trans{}.Scale(0.5)
		fig = svgfig.NewMultiple(
			svgfig.Transform(f, half.Translate(0, h/2)),
			svgfig.Transform(f, half.Translate(size/2, h/2)),
			svgfig.Transform(f, half.Translate(size/4, 0)),
		)
	}
	return fig
}

// Carpet returns the Sierpinski carpet filling a size x size square.
func Carpet(size float64, depth int) svgfig.Fig {
	var fig svgfig.Fig = svgfig.NewRect(0, 0, size, size)
	for i := 0; i < depth; i++ {
		f := svgfig.Share(fig)
		third := svgfig.Trans{}.Scale(1.0 / 3)
		cells := make(svgfig.Multiple, 0, 8)
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if row == 1 && col == 1 {
					continue
				}
				cells = append(cells, svgfig.Transform(f,
					third.Translate(float64(col)*size/3, float64(row)*size/3)))
			}
		}
		fig = cells
	}
	return fig
}
