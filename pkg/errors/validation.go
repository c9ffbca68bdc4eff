package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateBlockID validates a block identifier for safety and correctness.
// IDs end up in cache keys, file names and URLs, so the rules are
// intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateBlockID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidDefinition, "block ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidDefinition, "block ID too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDefinition, "block ID contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidDefinition, "block ID contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// hexColorRegex matches #RGB and #RRGGBB hex color notation.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a block fill color. The empty string is allowed
// and means "use the renderer's default".
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid color %q (expected #RGB or #RRGGBB)", color)
	}
	return nil
}

// ValidatePath validates a definition file path before it reaches the OS.
// Paths come straight from command-line arguments, so absolute and relative
// forms are both fine; the check catches what would otherwise surface as a
// confusing OS error:
//   - No empty paths
//   - Maximum length of 4096 bytes
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d bytes)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
