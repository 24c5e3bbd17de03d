package errors

import (
	"strings"
	"unicode"
)

// ValidateIndentWidth checks a tree indent width. Widths below 1 cannot
// place a connector glyph per depth level and are rejected.
func ValidateIndentWidth(width int) error {
	if width < 1 {
		return New(ErrCodeInvalidConfig, "indent width must be >= 1, got %d", width)
	}
	return nil
}

// ValidateSampleName validates a sample name given on the command line.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 64 characters
//   - Only lower-case letters, digits and dashes
func ValidateSampleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "sample name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "sample name too long (max 64 characters)")
	}
	for _, r := range name {
		if r != '-' && !unicode.IsDigit(r) && !(r >= 'a' && r <= 'z') {
			return New(ErrCodeInvalidInput, "sample name contains invalid character %q", r)
		}
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is asked to write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}
