package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/constellation/pkg/errors"
	"github.com/matzehuels/constellation/pkg/observability"
	"github.com/matzehuels/constellation/pkg/reveal"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "svg,pdf,dot", []string{"svg", "pdf", "dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid all", []string{"svg", "png", "pdf", "json", "dot", "nodelink", "nodelink-pdf"}, false},
		{"invalid format", []string{"gif"}, true},
		{"mixed valid invalid", []string{"svg", "gif"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
			}
		})
	}
}

func TestValidateRender(t *testing.T) {
	base := func() renderOpts {
		return renderOpts{formats: []string{"svg"}, progress: 1, hover: reveal.NoNode, scale: 2}
	}
	tests := []struct {
		name   string
		modify func(*renderOpts)
		code   errors.Code
	}{
		{"defaults", func(*renderOpts) {}, ""},
		{"progress above one", func(o *renderOpts) { o.progress = 1.5 }, errors.ErrCodeInvalidInput},
		{"hover out of range", func(o *renderOpts) { o.hover = 8 }, errors.ErrCodeInvalidInput},
		{"zero scale", func(o *renderOpts) { o.scale = 0 }, errors.ErrCodeInvalidInput},
		{"sequence needs png", func(o *renderOpts) { o.sequence = 10 }, errors.ErrCodeUnsupported},
		{"sequence png", func(o *renderOpts) { o.sequence = 10; o.formats = []string{"png"} }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base()
			tt.modify(&opts)
			err := validateRender(&opts, 8)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("validateRender() code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		format  string
		want    string
	}{
		{"default", "", []string{"svg"}, "svg", "constellation.svg"},
		{"explicit single", "out/star.png", []string{"png"}, "png", "out/star.png"},
		{"base with extension", "star.svg", []string{"svg", "png"}, "png", "star.png"},
		{"base without extension", "star", []string{"svg", "json"}, "json", "star.json"},
		{"nodelink", "", []string{"svg", "nodelink"}, "nodelink", "constellation.nodelink.svg"},
		{"nodelink pdf", "star", []string{"pdf", "nodelink-pdf"}, "nodelink-pdf", "star.nodelink.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &renderOpts{output: tt.output, formats: tt.formats}
			if got := outputPath(opts, tt.format); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)
	var buf bytes.Buffer
	return New(&buf, log.DebugLevel), &buf
}

func TestRunRender(t *testing.T) {
	c, logs := newTestCLI(t)
	dir := t.TempDir()
	opts := &renderOpts{
		output:   filepath.Join(dir, "frame"),
		formats:  []string{"svg", "json", "dot"},
		progress: 0.5,
		hover:    0,
		width:    defaultWidth,
		height:   defaultHeight,
		scale:    1,
	}

	ctx := withLogger(context.Background(), c.Logger)
	if err := c.runRender(ctx, opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "frame.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "LILLY") {
		t.Error("svg missing label")
	}
	for _, name := range []string{"frame.json", "frame.dot"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if !strings.Contains(logs.String(), "Rendered") {
		t.Errorf("render hooks did not log, got %q", logs.String())
	}
}

func TestRunRenderSequence(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := t.TempDir()
	opts := &renderOpts{
		output:   filepath.Join(dir, "seq"),
		formats:  []string{"png"},
		hover:    reveal.NoNode,
		width:    400,
		height:   300,
		scale:    0.5,
		sequence: 100,
	}

	if err := c.runRender(withLogger(context.Background(), c.Logger), opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	// 334 hovered frames: indices 0, 100, 200, 300 plus the final frame.
	files, err := filepath.Glob(filepath.Join(dir, "seq_*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 5 {
		t.Errorf("sequence wrote %d frames, want 5: %v", len(files), files)
	}
}

func TestRunRenderRejectsSmallViewport(t *testing.T) {
	c, _ := newTestCLI(t)
	opts := &renderOpts{formats: []string{"svg"}, hover: reveal.NoNode, width: 100, height: 100, scale: 1, progress: 1}

	err := c.runRender(context.Background(), opts)
	if !errors.Is(err, errors.ErrCodeInvalidViewport) {
		t.Errorf("runRender() error = %v, want INVALID_VIEWPORT", err)
	}
}

func TestRunRenderCancelled(t *testing.T) {
	c, _ := newTestCLI(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := &renderOpts{output: filepath.Join(t.TempDir(), "seq"), formats: []string{"png"}, hover: reveal.NoNode,
		width: 400, height: 300, scale: 0.5, sequence: 1}
	if err := c.runRender(ctx, opts); err != context.Canceled {
		t.Errorf("runRender() error = %v, want context.Canceled", err)
	}
}
