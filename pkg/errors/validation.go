package errors

import (
	"unicode"
)

// maxRunNameLength leaves room for the ".jpeg" suffix under the common
// 255-byte file name limit.
const maxRunNameLength = 250

// ValidateRunName validates the positional run name, which becomes both part
// of the plot title and the output file name "<run>.jpeg".
//
// The rules are deliberately narrow so that any name the visualisation
// pipeline already uses keeps working:
//   - No empty names
//   - No control characters or null bytes
//   - Maximum length of 250 bytes
//
// Path separators are allowed; the image is then written relative to the
// working directory exactly as the name says.
func ValidateRunName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidArgument, "run name cannot be empty")
	}

	if len(name) > maxRunNameLength {
		return New(ErrCodeInvalidArgument, "run name too long (max %d bytes)", maxRunNameLength)
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidArgument, "run name contains invalid control characters")
		}
	}

	return nil
}

// ValidateViewer validates a viewer backend name from flags or config.
func ValidateViewer(name string) error {
	switch name {
	case "window", "none":
		return nil
	}
	return New(ErrCodeInvalidConfig, "invalid viewer: %q (must be 'window' or 'none')", name)
}
