// Package svgfig builds vector drawings as immutable figure trees
// and writes them as SVG markup.
//
// A drawing is made of primitives (Rect, Circle, Ellipse, Line, Text)
// combined with the wrap operators Style, Transform and Share and with
// Multiple. The resulting tree is handed to Render, or wrapped in an Svg:
//
//	fig := svgfig.Style(svgfig.NewRect(10, 10, 200, 100),
//		svgfig.Attr{}.Fill(svgfig.NewColor(0xff, 0, 0)))
//	fmt.Print(svgfig.NewSvg(500, 600, fig))
package svgfig

// Fig is a node of a figure tree. It is one of Rect, Circle, Ellipse,
// Line, Text, Styled, Transformed, Multiple or Shared.
//
// Figures are never modified once built: wrap operators return
// new nodes pointing to their argument.
type Fig interface {
	encode(e *encoder) error
}

// Rect is a rectangle with top left corner (X, Y).
type Rect struct{ X, Y, Width, Height float64 }

// Circle is a circle centered at (X, Y).
type Circle struct{ X, Y, R float64 }

// Ellipse is an axis aligned ellipse centered at (X, Y).
type Ellipse struct{ X, Y, RX, RY float64 }

// Line is a segment from (X1, Y1) to (X2, Y2).
type Line struct{ X1, Y1, X2, Y2 float64 }

// Text is a text run anchored at (X, Y).
type Text struct {
	X, Y    float64
	Content string
}

func NewRect(x, y, width, height float64) Rect  { return Rect{X: x, Y: y, Width: width, Height: height} }
func NewCircle(x, y, r float64) Circle          { return Circle{X: x, Y: y, R: r} }
func NewEllipse(x, y, rx, ry float64) Ellipse   { return Ellipse{X: x, Y: y, RX: rx, RY: ry} }
func NewLine(x1, y1, x2, y2 float64) Line       { return Line{X1: x1, Y1: y1, X2: x2, Y2: y2} }
func NewText(x, y float64, content string) Text { return Text{X: x, Y: y, Content: content} }

// Styled applies Attr to its child.
type Styled struct {
	Attr  Attr
	Child Fig
}

// Style wraps f in a Styled node.
func Style(f Fig, attr Attr) Styled { return Styled{Attr: attr, Child: f} }

// Transformed applies Trans to its child.
type Transformed struct {
	Trans Trans
	Child Fig
}

// Transform wraps f in a Transformed node.
func Transform(f Fig, trans Trans) Transformed { return Transformed{Trans: trans, Child: f} }

// Multiple is an ordered list of figures; later ones are
// painted over earlier ones.
type Multiple []Fig

// NewMultiple returns a Multiple holding a copy of figs.
func NewMultiple(figs ...Fig) Multiple {
	out := make(Multiple, len(figs))
	copy(out, figs)
	return out
}

// Shared is a handle to a figure which may be referenced
// from several parents without being copied. Copying a Shared
// only copies the handle.
//
// The zero value holds no figure and fails to render with ErrNilFigure.
type Shared struct {
	payload *sharedPayload
}

type sharedPayload struct {
	fig Fig
}

// Share returns a Shared handle to f. If f is already a Shared
// handle, it is returned as is. A Multiple is copied, so later
// writes to the caller's slice do not reach the handle.
func Share(f Fig) Shared {
	switch f := f.(type) {
	case Shared:
		return f
	case Multiple:
		return Shared{payload: &sharedPayload{fig: NewMultiple(f...)}}
	}
	return Shared{payload: &sharedPayload{fig: f}}
}

// Fig returns the figure behind the handle.
func (s Shared) Fig() Fig {
	if s.payload == nil {
		return nil
	}
	return s.payload.fig
}

// Same reports whether s and other refer to the same figure.
func (s Shared) Same(other Shared) bool {
	return s.payload != nil && s.payload == other.payload
}

func (r Rect) encode(e *encoder) error {
	return e.printf("rect", `<rect x="%s" y="%s" width="%s" height="%s"/>`+"\n",
		formatNumber(r.X), formatNumber(r.Y), formatNumber(r.Width), formatNumber(r.Height))
}

func (c Circle) encode(e *encoder) error {
	return e.printf("circle", `<circle x="%s" y="%s" r="%s"/>`+"\n",
		formatNumber(c.X), formatNumber(c.Y), formatNumber(c.R))
}

func (el Ellipse) encode(e *encoder) error {
	return e.printf("ellipse", `<ellipse x="%s" y="%s" rx="%s" ry="%s"/>`+"\n",
		formatNumber(el.X), formatNumber(el.Y), formatNumber(el.RX), formatNumber(el.RY))
}

func (l Line) encode(e *encoder) error {
	return e.printf("line", `<line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
		formatNumber(l.X1), formatNumber(l.Y1), formatNumber(l.X2), formatNumber(l.Y2))
}

func (t Text) encode(e *encoder) error {
	if err := e.printf("text", `<text x="%s" y="%s">`, formatNumber(t.X), formatNumber(t.Y)); err != nil {
		return err
	}
	if err := e.escaped("text", t.Content); err != nil {
		return err
	}
	return e.print("text", "</text>\n")
}

func (s Styled) encode(e *encoder) error {
	if err := e.printf("g", `<g style="%s">`+"\n", s.Attr); err != nil {
		return err
	}
	if err := e.fig(s.Child); err != nil {
		return err
	}
	return e.print("g", "</g>\n")
}

func (t Transformed) encode(e *encoder) error {
	if err := e.printf("g", `<g transform="%s">`+"\n", t.Trans); err != nil {
		return err
	}
	if err := e.fig(t.Child); err != nil {
		return err
	}
	return e.print("g", "</g>\n")
}

func (m Multiple) encode(e *encoder) error {
	for _, f := range m {
		if err := e.fig(f); err != nil {
			return err
		}
	}
	return nil
}

func (s Shared) encode(e *encoder) error {
	return e.fig(s.Fig())
}
