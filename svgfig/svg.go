package svgfig

import (
	"io"
	"strings"
)

// Svg is a complete image: a list of figures painted in order
// inside a Width x Height viewport.
type Svg struct {
	Figures       []Fig
	Width, Height uint32
}

// NewSvg returns an image holding a copy of figs.
func NewSvg(width, height uint32, figs ...Fig) Svg {
	out := make([]Fig, len(figs))
	copy(out, figs)
	return Svg{Figures: out, Width: width, Height: height}
}

// WriteTo implements io.WriterTo.
func (s Svg) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := Render(cw, s)
	return cw.n, err
}

// String returns the markup of the image. If the image contains
// a nil figure, the markup written before it is returned.
func (s Svg) String() string {
	var sb strings.Builder
	_ = Render(&sb, s)
	return sb.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
