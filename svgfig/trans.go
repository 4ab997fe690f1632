package svgfig

import (
	"math"
	"strings"

	"github.com/srwiley/rasterx"
)

// Op is one coordinate transformation of a Trans.
// It is one of Translation, Rotation or Scaling.
type Op interface {
	token() string
	apply(m rasterx.Matrix2D) rasterx.Matrix2D
}

// Translation moves the coordinate frame by (DX, DY).
type Translation struct{ DX, DY float64 }

// Rotation turns the coordinate frame around the origin, in degrees.
type Rotation struct{ Degrees float64 }

// Scaling stretches the coordinate frame.
type Scaling struct{ SX, SY float64 }

func (op Translation) token() string {
	return "translate(" + formatNumber(op.DX) + ", " + formatNumber(op.DY) + ")"
}

func (op Rotation) token() string {
	return "rotate(" + formatNumber(op.Degrees) + ")"
}

func (op Scaling) token() string {
	if op.SX == op.SY {
		return "scale(" + formatNumber(op.SX) + ")"
	}
	return "scale(" + formatNumber(op.SX) + ", " + formatNumber(op.SY) + ")"
}

func (op Translation) apply(m rasterx.Matrix2D) rasterx.Matrix2D { return m.Translate(op.DX, op.DY) }
func (op Rotation) apply(m rasterx.Matrix2D) rasterx.Matrix2D {
	return m.Rotate(op.Degrees * math.Pi / 180)
}
func (op Scaling) apply(m rasterx.Matrix2D) rasterx.Matrix2D { return m.Scale(op.SX, op.SY) }

// Trans is an ordered list of transformations, in the order
// they apply to the geometry: the first added is applied first.
//
// The zero value is the identity. Builders never modify the
// receiver, so a Trans may be extended along several branches.
type Trans struct {
	ops []Op
}

// with returns a copy of t extended by op. The copy never shares
// its backing array with t.
func (t Trans) with(op Op) Trans {
	ops := make([]Op, len(t.ops), len(t.ops)+1)
	copy(ops, t.ops)
	return Trans{ops: append(ops, op)}
}

// Translate appends a translation by (dx, dy).
func (t Trans) Translate(dx, dy float64) Trans { return t.with(Translation{DX: dx, DY: dy}) }

// Rotate appends a rotation around the origin, in degrees.
func (t Trans) Rotate(degrees float64) Trans { return t.with(Rotation{Degrees: degrees}) }

// Scale appends a uniform scaling.
func (t Trans) Scale(s float64) Trans { return t.with(Scaling{SX: s, SY: s}) }

// ScaleXY appends a scaling with distinct factors per axis.
func (t Trans) ScaleXY(sx, sy float64) Trans { return t.with(Scaling{SX: sx, SY: sy}) }

// Len returns the number of operations.
func (t Trans) Len() int { return len(t.ops) }

// Ops returns a copy of the operations, in the order they were added.
func (t Trans) Ops() []Op {
	out := make([]Op, len(t.ops))
	copy(out, t.ops)
	return out
}

// String returns the content of the transform attribute.
//
// In SVG, the rightmost token of a transform list is applied first to
// a point, so the operations are written in reverse order. Every
// token is followed by a space.
func (t Trans) String() string {
	var sb strings.Builder
	for i := len(t.ops) - 1; i >= 0; i-- {
		sb.WriteString(t.ops[i].token())
		sb.WriteByte(' ')
	}
	return sb.String()
}

// Matrix returns the affine matrix denoted by String, mapping
// the local coordinates of the transformed figure to the
// coordinates of its parent.
func (t Trans) Matrix() rasterx.Matrix2D {
	m := rasterx.Identity
	for i := len(t.ops) - 1; i >= 0; i-- {
		m = t.ops[i].apply(m)
	}
	return m
}
