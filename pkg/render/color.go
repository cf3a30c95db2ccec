package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a #rgb or #rrggbb color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(expandHex(hex))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ParseColorOr is like [ParseColor] but returns fallback for invalid
// input. Colors reaching renderers have already been validated.
func ParseColorOr(hex string, fallback color.RGBA) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		return fallback
	}
	return c
}

// expandHex turns #rgb into #rrggbb; go-colorful only reads the long form.
func expandHex(hex string) string {
	if len(hex) != 4 || hex[0] != '#' {
		return hex
	}
	return string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
}
