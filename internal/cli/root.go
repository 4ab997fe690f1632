// Package cli implements the svgfig command-line interface.
//
// Each command builds one figure with the svgfig and svgfractal
// packages and writes it as an SVG document to stdout or to the file
// given by --output. Drawing parameters come from DefaultConfig, then
// from the optional --config file (TOML or YAML), then from flags.
//
// All commands support --verbose (-v) for debug-level logging, which
// also enables the debug records of the svgfig renderer.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// flags holds the values of the persistent flags.
type flags struct {
	verbose     bool
	config      string
	output      string
	width       uint32
	height      uint32
	depth       int
	stroke      string
	fill        string
	strokeWidth float64
	parallel    int
}

// NewRootCommand returns the svgfig command tree. Documents are written
// to stdout unless --output is set; logs go to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "svgfig",
		Short:         "svgfig renders generated figures as SVG documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if f.verbose {
				level = log.DebugLevel
			}
			l := newLogger(stderr, level)
			installLogger(l)
			cmd.SetContext(withLogger(cmd.Context(), l))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&f.config, "config", "", "read drawing parameters from a .toml or .yaml file")
	pf.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	pf.Uint32Var(&f.width, "width", 0, "viewport width")
	pf.Uint32Var(&f.height, "height", 0, "viewport height")
	pf.IntVar(&f.depth, "depth", 0, "recursion depth of fractal figures")
	pf.StringVar(&f.stroke, "stroke", "", "stroke color, as #rrggbb or a color name")
	pf.StringVar(&f.fill, "fill", "", "fill color, as #rrggbb or a color name")
	pf.Float64Var(&f.strokeWidth, "stroke-width", 0, "stroke width, in viewport units")
	pf.IntVar(&f.parallel, "parallel", 0, "number of goroutines rendering top level figures (koch has a single one)")

	for _, fig := range figures {
		root.AddCommand(newFigureCmd(f, fig))
	}
	return root
}

// Execute runs the svgfig CLI with the process standard streams.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// resolve merges the defaults, the config file and the flags set
// on the command line, in that order.
func (f *flags) resolve(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = LoadConfig(f.config); err != nil {
			return cfg, err
		}
	}
	set := cmd.Flags().Changed
	if set("width") {
		cfg.Width = f.width
	}
	if set("height") {
		cfg.Height = f.height
	}
	if set("depth") {
		cfg.Depth = f.depth
	}
	if set("stroke") {
		cfg.Stroke = f.stroke
	}
	if set("fill") {
		cfg.Fill = f.fill
	}
	if set("stroke-width") {
		cfg.StrokeWidth = f.strokeWidth
	}
	if set("parallel") {
		cfg.Parallelism = f.parallel
	}
	return cfg, nil
}
