package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeValue validates a node's display value before it enters the
// rendering pipeline.
//
// The validation rules are intentionally conservative:
//   - No newlines (a value occupies exactly one row of the diagram)
//   - No other control characters
//   - Maximum length of 1024 bytes
//
// Empty values are allowed; they render as a blank cell.
func ValidateNodeValue(value string) error {
	if len(value) > 1024 {
		return New(ErrCodeInvalidTree, "node value too long (max 1024 bytes)")
	}

	for _, r := range value {
		if r == '\n' || r == '\r' {
			return New(ErrCodeInvalidTree, "node value cannot contain newlines")
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTree, "node value contains invalid control characters")
		}
	}

	return nil
}

// ValidateMaxCellWidth validates a user-supplied cell width cap.
// The renderer itself clamps low caps, but flags and API fields reject
// nonsense values outright so typos surface early.
func ValidateMaxCellWidth(w int) error {
	if w < 1 {
		return New(ErrCodeInvalidInput, "max cell width must be positive, got %d", w)
	}

	const maxCellWidthLimit = 4096
	if w > maxCellWidthLimit {
		return New(ErrCodeInvalidInput, "max cell width too large (max %d)", maxCellWidthLimit)
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
// It rejects values that are clearly not writable file paths.
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

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "output path cannot be a directory")
	}

	return nil
}
