// Package fonts provides the label font used for measuring and drawing.
//
// The font is Go Mono from golang.org/x/image/font/gofont, compiled into the
// binary, so label widths are identical in every output format and no font
// needs to be installed.
package fonts

import (
	"encoding/base64"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontFamily is the CSS font-family name for the embedded font.
const FontFamily = "Go Mono"

// FallbackFontFamily lists fallbacks for SVG viewers that ignore embedded fonts.
const FallbackFontFamily = `'Go Mono', 'Geist Mono', ui-monospace, Menlo, monospace`

var (
	parsed     *opentype.Font
	parseErr   error
	parsedOnce sync.Once
)

func mono() (*opentype.Font, error) {
	parsedOnce.Do(func() {
		parsed, parseErr = opentype.Parse(gomono.TTF)
	})
	return parsed, parseErr
}

// Cache for the base64-encoded font (computed once on first access).
var (
	ttfBase64     string
	ttfBase64Once sync.Once
)

// TTFBase64 returns the TrueType data as a base64 string for @font-face
// embedding. The result is cached after first computation.
func TTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(gomono.TTF)
	})
	return ttfBase64
}

// Face returns a new face at the given size. At 72 DPI one point is one
// pixel, so a size-14 face measures labels in the same units as node-space.
func Face(size float64) (font.Face, error) {
	f, err := mono()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// Measurer measures label widths with a fixed-size face. It is safe for
// concurrent use.
type Measurer struct {
	mu   sync.Mutex
	face font.Face
}

// NewMeasurer creates a measurer for labels drawn at size points.
func NewMeasurer(size float64) (*Measurer, error) {
	face, err := Face(size)
	if err != nil {
		return nil, err
	}
	return &Measurer{face: face}, nil
}

// MeasureLabel returns the advance width of label in points.
func (m *Measurer) MeasureLabel(label string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return toFloat(font.MeasureString(m.face, label))
}

// Close releases the underlying face.
func (m *Measurer) Close() error {
	return m.face.Close()
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
