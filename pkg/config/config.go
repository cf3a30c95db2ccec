// Package config loads presentation and cadence settings.
//
// Configuration never carries scene data; the nodes and edges are fixed in
// [scene.Default]. A config file only tunes how the constellation is fitted,
// animated and colored. Both TOML and YAML are accepted, chosen by file
// extension, and any field left out keeps its default.
//
//	# ~/.config/constellation/config.toml
//	padding = 120
//	bounds  = "labels"
//
//	[animation]
//	increment = 0.003
//	fps       = 60
//
//	[colors]
//	highlight = "#3B6CFF"
//
// bounds = "points" fits the node centers only. Labels then extend past
// the fitted box and the rightmost ones are clipped at the viewport edge,
// so use it only when the labels are hidden or the padding is generous.
//
// [scene.Default]: github.com/matzehuels/constellation/pkg/scene.Default
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/constellation/pkg/errors"
	"github.com/matzehuels/constellation/pkg/reveal"
	"github.com/matzehuels/constellation/pkg/viewport"
)

const appName = "constellation"

// Config is the complete set of tunables.
type Config struct {
	Padding   float64         `toml:"padding" yaml:"padding"`
	Bounds    viewport.Mode   `toml:"bounds" yaml:"bounds"`
	Animation AnimationConfig `toml:"animation" yaml:"animation"`
	Glyph     GlyphConfig     `toml:"glyph" yaml:"glyph"`
	Colors    ColorConfig     `toml:"colors" yaml:"colors"`
	Terminal  TerminalConfig  `toml:"terminal" yaml:"terminal"`
}

// AnimationConfig sets the reveal cadence. The per-second rate used by the
// interactive host is Increment×FPS.
type AnimationConfig struct {
	Increment float64 `toml:"increment" yaml:"increment"`
	FPS       float64 `toml:"fps" yaml:"fps"`
	HitRadius float64 `toml:"hit_radius" yaml:"hit_radius"`
}

// GlyphConfig sets star and label geometry in node-space units.
type GlyphConfig struct {
	StarRadius      float64 `toml:"star_radius" yaml:"star_radius"`
	BoundsRadius    float64 `toml:"bounds_radius" yaml:"bounds_radius"`
	LabelOffsetX    float64 `toml:"label_offset_x" yaml:"label_offset_x"`
	LabelOffsetY    float64 `toml:"label_offset_y" yaml:"label_offset_y"`
	LabelHalfHeight float64 `toml:"label_half_height" yaml:"label_half_height"`
	FontSize        float64 `toml:"font_size" yaml:"font_size"`
	GlowBlur        float64 `toml:"glow_blur" yaml:"glow_blur"`
}

// ColorConfig holds hex colors.
type ColorConfig struct {
	Highlight  string `toml:"highlight" yaml:"highlight"`
	Ink        string `toml:"ink" yaml:"ink"`
	Background string `toml:"background" yaml:"background"`
}

// TerminalConfig tunes the interactive terminal host.
type TerminalConfig struct {
	// CellAspect is how many pixels tall a cell is per pixel of width.
	CellAspect float64 `toml:"cell_aspect" yaml:"cell_aspect"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Padding: 120,
		Bounds:  viewport.ModeLabels,
		Animation: AnimationConfig{
			Increment: reveal.DefaultIncrement,
			FPS:       reveal.DefaultFPS,
			HitRadius: reveal.DefaultHitRadius,
		},
		Glyph: GlyphConfig{
			StarRadius:      7,
			BoundsRadius:    10,
			LabelOffsetX:    14,
			LabelOffsetY:    5,
			LabelHalfHeight: 16,
			FontSize:        14,
			GlowBlur:        10,
		},
		Colors: ColorConfig{
			Highlight:  "#3B6CFF",
			Ink:        "#282828",
			Background: "#FFFFFF",
		},
		Terminal: TerminalConfig{
			CellAspect: 2,
		},
	}
}

// Validate checks every field and returns the first problem as an
// INVALID_CONFIG or INVALID_COLOR error.
func (c *Config) Validate() error {
	if c.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "padding must not be negative, got %v", c.Padding)
	}
	if c.Bounds != viewport.ModeLabels && c.Bounds != viewport.ModePoints {
		return errors.New(errors.ErrCodeInvalidConfig, "bounds must be %q or %q, got %q", viewport.ModeLabels, viewport.ModePoints, c.Bounds)
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"animation.fps", c.Animation.FPS},
		{"animation.hit_radius", c.Animation.HitRadius},
		{"glyph.star_radius", c.Glyph.StarRadius},
		{"glyph.font_size", c.Glyph.FontSize},
		{"terminal.cell_aspect", c.Terminal.CellAspect},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %v", p.name, p.value)
		}
	}
	if c.Animation.Increment <= 0 || c.Animation.Increment > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "animation.increment must be in (0,1], got %v", c.Animation.Increment)
	}
	if c.Glyph.GlowBlur < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "glyph.glow_blur must not be negative, got %v", c.Glyph.GlowBlur)
	}

	for field, v := range map[string]string{
		"colors.highlight":  c.Colors.Highlight,
		"colors.ink":        c.Colors.Ink,
		"colors.background": c.Colors.Background,
	} {
		if err := errors.ValidateColor(field, v); err != nil {
			return err
		}
	}
	return nil
}

// BoundsOptions returns the fitter options for this config, measuring
// labels with m.
func (c *Config) BoundsOptions(m viewport.Measurer) viewport.BoundsOptions {
	return viewport.BoundsOptions{
		Mode:            c.Bounds,
		StarRadius:      c.Glyph.BoundsRadius,
		LabelOffsetX:    c.Glyph.LabelOffsetX,
		LabelHalfHeight: c.Glyph.LabelHalfHeight,
		Measurer:        m,
	}
}

// AnimatorOptions returns the reveal cadence for this config.
func (c *Config) AnimatorOptions() []reveal.Option {
	return []reveal.Option{
		reveal.WithIncrement(c.Animation.Increment),
		reveal.WithRate(c.Animation.Increment * c.Animation.FPS),
	}
}

// DefaultPath returns the config location using the XDG standard
// (~/.config/constellation/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data, filepath.Ext(path))
}

// LoadOrDefault behaves like [Load] but returns the defaults when path does
// not exist. It is used for the implicit default path.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes data over the defaults. ext selects the format: ".toml",
// ".yaml" or ".yml". Unknown keys are rejected so typos do not pass silently.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "config format %q (use .toml, .yaml or .yml)", ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
