package errors

import (
	"regexp"
	"strings"
	"unicode"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor checks that s is a CSS hex color (#rgb or #rrggbb), the
// only color syntax every output format understands.
func ValidateColor(field, s string) error {
	if !hexColorRe.MatchString(s) {
		return New(ErrCodeInvalidColor, "%s: %q is not a hex color (#rgb or #rrggbb)", field, s)
	}
	return nil
}

// ValidateOutputPath validates a path the CLI is about to write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if len(path) > 1024 {
		return New(ErrCodeInvalidPath, "output path too long (max 1024 characters)")
	}
	if strings.ContainsRune(path, 0) {
		return New(ErrCodeInvalidPath, "output path contains a null byte")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}
	return nil
}
