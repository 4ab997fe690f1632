package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/figsvg/svgfig"
	"github.com/benoitkugler/figsvg/svgfractal"
)

// maxDepth bounds the recursion depth accepted by the commands;
// the carpet markup grows as 8^depth.
const maxDepth = 8

type figure struct {
	name  string
	short string
	build func(cfg Config) (svgfig.Fig, error)
}

var figures = []figure{
	{"koch", "Koch curve", buildKoch},
	{"snowflake", "Koch snowflake", buildSnowflake},
	{"sierpinski", "Sierpinski triangle outline", buildSierpinski},
	{"carpet", "Sierpinski carpet", buildCarpet},
	{"demo", "a styled rectangle, a text and a circle", buildDemo},
}

func newFigureCmd(f *flags, fig figure) *cobra.Command {
	return &cobra.Command{
		Use:   fig.name,
		Short: "Render a " + fig.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFigure(cmd, f, fig)
		},
	}
}

func runFigure(cmd *cobra.Command, f *flags, fig figure) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := f.resolve(cmd)
	if err != nil {
		return err
	}
	if cfg.Depth < 0 || cfg.Depth > maxDepth {
		return fmt.Errorf("depth %d out of range [0, %d]", cfg.Depth, maxDepth)
	}
	logger.Debug("config", "width", cfg.Width, "height", cfg.Height, "depth", cfg.Depth,
		"stroke", cfg.Stroke, "fill", cfg.Fill, "stroke_width", cfg.StrokeWidth, "parallelism", cfg.Parallelism)

	d, err := fig.build(cfg)
	if err != nil {
		return err
	}
	doc := svgfig.NewSvg(cfg.Width, cfg.Height, topLevel(d)...)
	if cfg.Parallelism > 1 && len(doc.Figures) < 2 {
		logger.Debug("parallelism has no effect on a single top level figure", "figure", fig.name)
	}

	p := newProgress(logger)
	if err := writeDocument(cmd.Context(), cmd.OutOrStdout(), f.output, doc, cfg.Parallelism); err != nil {
		return fmt.Errorf("render %s: %w", fig.name, err)
	}
	dest := f.output
	if dest == "" {
		dest = "stdout"
	}
	p.done(fmt.Sprintf("Rendered %s to %s", fig.name, dest))
	return nil
}

// writeDocument renders doc to the file at path, or to stdout when
// path is empty. Rendering stops at the next write once ctx is done;
// a partially written file is removed.
func writeDocument(ctx context.Context, stdout io.Writer, path string, doc svgfig.Svg, parallelism int) (err error) {
	w := stdout
	if path != "" {
		file, cerr := os.Create(path)
		if cerr != nil {
			return fmt.Errorf("create output: %w", cerr)
		}
		defer func() {
			if cerr := file.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
			if err != nil {
				os.Remove(path)
			}
		}()
		w = file
	}

	bw := bufio.NewWriter(ctxWriter{ctx: ctx, w: w})
	if err := svgfig.Render(bw, doc, svgfig.WithParallelism(parallelism)); err != nil {
		return err
	}
	return bw.Flush()
}

// ctxWriter fails every write once ctx is done.
type ctxWriter struct {
	ctx context.Context
	w   io.Writer
}

func (cw ctxWriter) Write(p []byte) (int, error) {
	if err := cw.ctx.Err(); err != nil {
		return 0, err
	}
	return cw.w.Write(p)
}

// topLevel spreads a Multiple into the root figure list, where
// --parallel applies.
func topLevel(f svgfig.Fig) []svgfig.Fig {
	if m, ok := f.(svgfig.Multiple); ok {
		return m
	}
	return []svgfig.Fig{f}
}

// styleEach applies attr to every child of a Multiple, or to f itself.
func styleEach(f svgfig.Fig, attr svgfig.Attr) svgfig.Fig {
	m, ok := f.(svgfig.Multiple)
	if !ok {
		return svgfig.Style(f, attr)
	}
	styled := make(svgfig.Multiple, len(m))
	for i, child := range m {
		styled[i] = svgfig.Style(child, attr)
	}
	return styled
}

// strokeAttr returns the stroke style of a figure drawn inside
// nested scalings by factor per level: the width is scaled back
// so that lines are cfg.StrokeWidth wide on screen.
func strokeAttr(cfg Config, factor float64) (svgfig.Attr, error) {
	c, err := parseColor(cfg.Stroke)
	if err != nil {
		return svgfig.Attr{}, err
	}
	w := cfg.StrokeWidth * math.Pow(factor, float64(cfg.Depth))
	return svgfig.Attr{}.Stroke(c).StrokeWidth(w), nil
}

func buildKoch(cfg Config) (svgfig.Fig, error) {
	attr, err := strokeAttr(cfg, 3)
	if err != nil {
		return nil, err
	}
	w := float64(cfg.Width)
	bump := w * math.Sqrt(3) / 6
	curve := svgfig.Transform(svgfractal.Koch(w, cfg.Depth),
		svgfig.Trans{}.Translate(0, (float64(cfg.Height)-bump)/2))
	return svgfig.Style(curve, attr), nil
}

func buildSnowflake(cfg Config) (svgfig.Fig, error) {
	attr, err := strokeAttr(cfg, 3)
	if err != nil {
		return nil, err
	}
	return styleEach(svgfractal.Snowflake(float64(cfg.Width), cfg.Depth), attr), nil
}

func buildSierpinski(cfg Config) (svgfig.Fig, error) {
	attr, err := strokeAttr(cfg, 2)
	if err != nil {
		return nil, err
	}
	return styleEach(svgfractal.Sierpinski(float64(cfg.Width), cfg.Depth), attr), nil
}

func buildCarpet(cfg Config) (svgfig.Fig, error) {
	c, err := parseColor(cfg.Fill)
	if err != nil {
		return nil, err
	}
	return styleEach(svgfractal.Carpet(float64(cfg.Width), cfg.Depth), svgfig.Attr{}.Fill(c)), nil
}

func buildDemo(Config) (svgfig.Fig, error) {
	red := svgfig.NewColor(0xff, 0, 0)
	return svgfig.NewMultiple(
		svgfig.Style(svgfig.NewRect(10, 10, 200, 100), svgfig.Attr{}.Fill(red)),
		svgfig.NewText(0, 20, "<XML & Stuff>"),
		svgfig.NewCircle(20, 20, 100),
	), nil
}
