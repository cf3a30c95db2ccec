package render

import (
	"bytes"
	"encoding/xml"
)

// EscapeXML escapes s for use as SVG text or attribute content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
