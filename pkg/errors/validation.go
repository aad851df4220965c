package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateAxisDim checks that dim names one of the coordinate dimensions the
// resolvers understand: x and y for cartesian systems, radius and angle for
// polar ones.
func ValidateAxisDim(dim string) error {
	switch dim {
	case "x", "y", "radius", "angle":
		return nil
	case "":
		return New(ErrCodeInvalidAxis, "axis dimension cannot be empty")
	default:
		return New(ErrCodeInvalidAxis, "unsupported axis dimension %q", dim)
	}
}

// ValidateOriginPolicy checks an area/stack origin policy string.
// The empty string means "unset" and behaves like auto.
func ValidateOriginPolicy(s string) error {
	switch strings.ToLower(s) {
	case "", "auto", "start", "end":
		return nil
	default:
		return New(ErrCodeInvalidOrigin, "origin must be one of start, end, auto: got %q", s)
	}
}

// ValidateFixturePath validates a chart fixture path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Extension must be .toml or .json
func ValidateFixturePath(path string) error {
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

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".json":
		return nil
	default:
		return New(ErrCodeInvalidPath, "fixture must be a .toml or .json file: %s", path)
	}
}
