package svgfig

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an opaque RGB color. The zero value is black.
type Color struct {
	R, G, B uint8
}

// NewColor is a convenience constructor.
func NewColor(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// ColorOf converts c to a Color, dropping its alpha channel.
func ColorOf(c color.Color) Color {
	if c, ok := c.(Color); ok {
		return c
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: nrgba.R, G: nrgba.G, B: nrgba.B}
}

// Named returns the color registered under the SVG 1.1 keyword name
// (case insensitive), such as "red" or "steelblue".
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return ColorOf(c), true
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// String returns the #rrggbb form of the color.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
