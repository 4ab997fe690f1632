package cli

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/benoitkugler/figsvg/svgfig"
)

// Config holds the drawing parameters shared by all commands.
// It is read from a TOML or YAML file, then overridden by flags.
type Config struct {
	Width       uint32  `toml:"width" yaml:"width"`
	Height      uint32  `toml:"height" yaml:"height"`
	Depth       int     `toml:"depth" yaml:"depth"`
	Stroke      string  `toml:"stroke" yaml:"stroke"`
	Fill        string  `toml:"fill" yaml:"fill"`
	StrokeWidth float64 `toml:"stroke_width" yaml:"stroke_width"`
	Parallelism int     `toml:"parallelism" yaml:"parallelism"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Width:       500,
		Height:      500,
		Depth:       4,
		Stroke:      "black",
		Fill:        "black",
		StrokeWidth: 1,
		Parallelism: 1,
	}
}

// LoadConfig reads the file at path on top of DefaultConfig.
// The format is chosen from the extension: .toml, .yaml or .yml.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}
	return cfg, nil
}

// parseColor accepts a "#rrggbb" literal or an SVG color keyword.
func parseColor(s string) (svgfig.Color, error) {
	if strings.HasPrefix(s, "#") {
		b, err := hex.DecodeString(s[1:])
		if err != nil || len(b) != 3 {
			return svgfig.Color{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
		}
		return svgfig.NewColor(b[0], b[1], b[2]), nil
	}
	c, ok := svgfig.Named(s)
	if !ok {
		return svgfig.Color{}, fmt.Errorf("unknown color name %q", s)
	}
	return c, nil
}
