package svgfig

import "strings"

type optional[T any] struct {
	v  T
	ok bool
}

func some[T any](v T) optional[T] { return optional[T]{v: v, ok: true} }

// Attr holds the optional style properties of a group.
// Unset properties are omitted from the output.
//
// Builders take the receiver by value, so an Attr may be
// used as a base for several variants.
type Attr struct {
	fill, stroke         optional[Color]
	strokeWidth, opacity optional[float64]
	fontFamily           optional[string]
}

// Fill sets the fill color.
func (a Attr) Fill(c Color) Attr {
	a.fill = some(c)
	return a
}

// Stroke sets the stroke color.
func (a Attr) Stroke(c Color) Attr {
	a.stroke = some(c)
	return a
}

// StrokeWidth sets the stroke width.
func (a Attr) StrokeWidth(w float64) Attr {
	a.strokeWidth = some(w)
	return a
}

// Opacity sets the group opacity.
func (a Attr) Opacity(o float64) Attr {
	a.opacity = some(o)
	return a
}

// FontFamily sets the font used by text elements.
func (a Attr) FontFamily(family string) Attr {
	a.fontFamily = some(family)
	return a
}

func (a Attr) LookupFill() (Color, bool)          { return a.fill.v, a.fill.ok }
func (a Attr) LookupStroke() (Color, bool)        { return a.stroke.v, a.stroke.ok }
func (a Attr) LookupStrokeWidth() (float64, bool) { return a.strokeWidth.v, a.strokeWidth.ok }
func (a Attr) LookupOpacity() (float64, bool)     { return a.opacity.v, a.opacity.ok }
func (a Attr) LookupFontFamily() (string, bool)   { return a.fontFamily.v, a.fontFamily.ok }

// IsZero reports whether no property is set.
func (a Attr) IsZero() bool {
	return !(a.fill.ok || a.stroke.ok || a.strokeWidth.ok || a.opacity.ok || a.fontFamily.ok)
}

// String returns the content of the style attribute:
// each set property as "name:value;", in the order
// fill, stroke, stroke-width, opacity, font-family.
func (a Attr) String() string {
	var sb strings.Builder
	if a.fill.ok {
		sb.WriteString("fill:" + a.fill.v.String() + ";")
	}
	if a.stroke.ok {
		sb.WriteString("stroke:" + a.stroke.v.String() + ";")
	}
	if a.strokeWidth.ok {
		sb.WriteString("stroke-width:" + formatNumber(a.strokeWidth.v) + ";")
	}
	if a.opacity.ok {
		sb.WriteString("opacity:" + formatNumber(a.opacity.v) + ";")
	}
	if a.fontFamily.ok {
		sb.WriteString("font-family:" + a.fontFamily.v + ";")
	}
	return sb.String()
}
