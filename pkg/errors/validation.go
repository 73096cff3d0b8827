package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates an output file path for safety.
// It prevents path traversal sequences and ensures a reasonable length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "output path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateHeading validates a section heading string.
// Headings are rendered verbatim, so control characters are rejected early
// instead of surfacing as replacement bytes in the PDF.
func ValidateHeading(heading string) error {
	if strings.TrimSpace(heading) == "" {
		return New(ErrCodeInvalidContent, "section heading cannot be empty")
	}

	const maxHeadingLength = 256
	if len(heading) > maxHeadingLength {
		return New(ErrCodeInvalidContent, "section heading too long (max %d characters)", maxHeadingLength)
	}

	for _, r := range heading {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidContent, "section heading contains control characters")
		}
	}

	return nil
}

// ValidateListenAddr validates a listen address for the preview server.
// It accepts ":port" and "host:port" forms.
func ValidateListenAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidAddr, "listen address cannot be empty")
	}

	if !strings.Contains(addr, ":") {
		return New(ErrCodeInvalidAddr, "listen address must be of the form host:port or :port")
	}

	return nil
}
