package svgfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrNilFigure is returned when a figure tree contains a nil Fig
// or an empty Shared handle.
var ErrNilFigure = errors.New("svgfig: nil figure")

const (
	svgOpen  = `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">` + "\n"
	svgClose = "</svg>\n"
)

// encoder writes markup to the sink. Every method returns the first
// write error, wrapped with the element being written.
type encoder struct {
	w io.Writer
}

func (e *encoder) printf(element, format string, args ...any) error {
	if _, err := fmt.Fprintf(e.w, format, args...); err != nil {
		return writeError(element, err)
	}
	return nil
}

func (e *encoder) print(element, s string) error {
	if _, err := io.WriteString(e.w, s); err != nil {
		return writeError(element, err)
	}
	return nil
}

func (e *encoder) escaped(element, s string) error {
	if err := escapeText(e.w, s); err != nil {
		return writeError(element, err)
	}
	return nil
}

func (e *encoder) fig(f Fig) error {
	if f == nil {
		return ErrNilFigure
	}
	return f.encode(e)
}

// list writes figs in order. With parallelism > 1, the figures are
// rendered concurrently in separate buffers which are then flushed
// in order.
func (e *encoder) list(figs []Fig, parallelism int) error {
	if parallelism <= 1 || len(figs) < 2 {
		for _, f := range figs {
			if err := e.fig(f); err != nil {
				return err
			}
		}
		return nil
	}

	bufs := make([]bytes.Buffer, len(figs))
	var g errgroup.Group
	g.SetLimit(parallelism)
	for i, f := range figs {
		i, f := i, f
		g.Go(func() error {
			sub := encoder{w: &bufs[i]}
			return sub.fig(f)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i := range bufs {
		if _, err := bufs[i].WriteTo(e.w); err != nil {
			return writeError("figure", err)
		}
	}
	return nil
}

func writeError(element string, err error) error {
	return fmt.Errorf("svgfig: writing <%s>: %w", element, err)
}

// Render writes the markup of s to w.
// It stops at the first failing write and returns its error.
func Render(w io.Writer, s Svg, opts ...Option) error {
	o := newOptions(opts)
	log := Logger()
	log.Debug("svgfig: rendering", "figures", len(s.Figures),
		"width", s.Width, "height", s.Height, "parallelism", o.parallelism)

	e := &encoder{w: w}
	err := e.printf("svg", svgOpen, s.Width, s.Height)
	if err == nil {
		err = e.list(s.Figures, o.parallelism)
	}
	if err == nil {
		err = e.print("svg", svgClose)
	}
	if err != nil {
		log.Debug("svgfig: render aborted", "err", err)
		return err
	}
	log.Debug("svgfig: rendered")
	return nil
}

// RenderFig writes the markup of f alone, without the root element.
// If f is a Multiple, its children are subject to WithParallelism.
func RenderFig(w io.Writer, f Fig, opts ...Option) error {
	o := newOptions(opts)
	e := &encoder{w: w}
	var err error
	if m, ok := f.(Multiple); ok {
		err = e.list(m, o.parallelism)
	} else {
		err = e.fig(f)
	}
	if err != nil {
		Logger().Debug("svgfig: render aborted", "err", err)
	}
	return err
}

// FigString returns the markup of f. If f contains a nil figure,
// the markup written before it is returned.
func FigString(f Fig) string {
	var sb strings.Builder
	_ = RenderFig(&sb, f)
	return sb.String()
}

// Escape returns s with '<', '>' and '&' replaced by entities.
func Escape(s string) string {
	var sb strings.Builder
	_ = escapeText(&sb, s)
	return sb.String()
}

// escapeText copies s to w, escaping '<', '>' and '&'. Other bytes,
// including invalid UTF-8, are written unchanged.
func escapeText(w io.Writer, s string) error {
	last := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '&':
			esc = "&amp;"
		default:
			continue
		}
		if i > last {
			if _, err := io.WriteString(w, s[last:i]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, esc); err != nil {
			return err
		}
		last = i + 1
	}
	if last == len(s) {
		return nil
	}
	_, err := io.WriteString(w, s[last:])
	return err
}

// formatNumber returns the shortest decimal form of v which
// parses back to v, without exponent.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
