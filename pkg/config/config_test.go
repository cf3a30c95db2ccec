package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/constellation/pkg/errors"
	"github.com/matzehuels/constellation/pkg/reveal"
	"github.com/matzehuels/constellation/pkg/viewport"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Padding != 120 {
		t.Errorf("Padding = %v, want 120", cfg.Padding)
	}
	if cfg.Bounds != viewport.ModeLabels {
		t.Errorf("Bounds = %q, want labels", cfg.Bounds)
	}
	if cfg.Animation.Increment != 0.003 || cfg.Animation.FPS != 60 || cfg.Animation.HitRadius != 12 {
		t.Errorf("Animation = %+v", cfg.Animation)
	}
	if cfg.Colors.Highlight != "#3B6CFF" {
		t.Errorf("Colors.Highlight = %q", cfg.Colors.Highlight)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		ext      string
		wantCode errors.Code
		check    func(t *testing.T, c *Config)
	}{
		{
			name: "toml partial override",
			ext:  ".toml",
			data: "padding = 40\nbounds = \"points\"\n\n[animation]\nincrement = 0.01\n\n[colors]\nhighlight = \"#ff0000\"\n",
			check: func(t *testing.T, c *Config) {
				if c.Padding != 40 {
					t.Errorf("Padding = %v, want 40", c.Padding)
				}
				if c.Bounds != viewport.ModePoints {
					t.Errorf("Bounds = %q, want points", c.Bounds)
				}
				if c.Animation.Increment != 0.01 {
					t.Errorf("Increment = %v, want 0.01", c.Animation.Increment)
				}
				if c.Animation.FPS != 60 {
					t.Errorf("FPS = %v, want default 60", c.Animation.FPS)
				}
				if c.Colors.Highlight != "#ff0000" || c.Colors.Ink != "#282828" {
					t.Errorf("Colors = %+v", c.Colors)
				}
			},
		},
		{
			name: "yaml partial override",
			ext:  ".yml",
			data: "glyph:\n  font_size: 18\nterminal:\n  cell_aspect: 2.2\n",
			check: func(t *testing.T, c *Config) {
				if c.Glyph.FontSize != 18 {
					t.Errorf("FontSize = %v, want 18", c.Glyph.FontSize)
				}
				if c.Glyph.StarRadius != 7 {
					t.Errorf("StarRadius = %v, want default 7", c.Glyph.StarRadius)
				}
				if c.Terminal.CellAspect != 2.2 {
					t.Errorf("CellAspect = %v, want 2.2", c.Terminal.CellAspect)
				}
			},
		},
		{
			name: "empty yaml keeps defaults",
			ext:  ".yaml",
			data: "",
			check: func(t *testing.T, c *Config) {
				if c.Padding != 120 {
					t.Errorf("Padding = %v, want 120", c.Padding)
				}
			},
		},
		{
			name:     "toml unknown key",
			ext:      ".toml",
			data:     "paddin = 3\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "yaml unknown key",
			ext:      ".yaml",
			data:     "colours:\n  ink: \"#000\"\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "toml syntax error",
			ext:      ".toml",
			data:     "padding = = 3\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "invalid bounds",
			ext:      ".toml",
			data:     "bounds = \"circles\"\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "invalid color",
			ext:      ".toml",
			data:     "[colors]\nink = \"grey\"\n",
			wantCode: errors.ErrCodeInvalidColor,
		},
		{
			name:     "unsupported extension",
			ext:      ".json",
			data:     "{}",
			wantCode: errors.ErrCodeUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data), tt.ext)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("Parse() error = %v, want code %v", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative padding", func(c *Config) { c.Padding = -1 }},
		{"zero increment", func(c *Config) { c.Animation.Increment = 0 }},
		{"increment above one", func(c *Config) { c.Animation.Increment = 1.5 }},
		{"zero fps", func(c *Config) { c.Animation.FPS = 0 }},
		{"zero hit radius", func(c *Config) { c.Animation.HitRadius = 0 }},
		{"zero star radius", func(c *Config) { c.Glyph.StarRadius = 0 }},
		{"zero font size", func(c *Config) { c.Glyph.FontSize = 0 }},
		{"negative glow", func(c *Config) { c.Glyph.GlowBlur = -2 }},
		{"zero cell aspect", func(c *Config) { c.Terminal.CellAspect = 0 }},
		{"bad background", func(c *Config) { c.Colors.Background = "white" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("padding = 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Padding != 60 {
		t.Errorf("Padding = %v, want 60", cfg.Padding)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}

	cfg, err = LoadOrDefault(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault(missing) error = %v", err)
	}
	if cfg.Padding != 120 {
		t.Errorf("LoadOrDefault(missing).Padding = %v, want 120", cfg.Padding)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "constellation", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestBoundsOptions(t *testing.T) {
	cfg := Default()
	m := viewport.MeasurerFunc(func(string) float64 { return 0 })
	opts := cfg.BoundsOptions(m)

	if opts.Mode != viewport.ModeLabels || opts.StarRadius != 10 || opts.LabelOffsetX != 14 || opts.LabelHalfHeight != 16 {
		t.Errorf("BoundsOptions() = %+v", opts)
	}
	if opts.Measurer == nil {
		t.Error("BoundsOptions().Measurer = nil")
	}
}

func TestAnimatorOptions(t *testing.T) {
	cfg := Default()
	cfg.Animation.Increment = 0.25
	a := reveal.New(nil, cfg.AnimatorOptions()...)
	a.Step(0)
	if a.Progress() != 0.25 {
		t.Errorf("Progress() = %v, want 0.25", a.Progress())
	}
}
