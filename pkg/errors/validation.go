package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// StdioPath is the path that selects stdin or stdout.
const StdioPath = "-"

// ValidatePath validates an input or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//
// The stdio marker "-" is always valid.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if path == StdioPath {
		return nil
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidatePaths validates an input/output pair and rejects writing over
// the input file.
func ValidatePaths(in, out string) error {
	if err := ValidatePath(in); err != nil {
		return err
	}
	if err := ValidatePath(out); err != nil {
		return err
	}
	if in != StdioPath && filepath.Clean(in) == filepath.Clean(out) {
		return New(ErrCodeInvalidPath, "output path must differ from input path: %s", in)
	}
	return nil
}

// ValidateNodePrefix validates the prefix added to integer node ids in
// GraphML output. It must start like an XML name and contain no
// whitespace, quotes or markup, and must not end in a digit (or stripping it
// would be ambiguous).
func ValidateNodePrefix(prefix string) error {
	if prefix == "" {
		return nil
	}
	if strings.ContainsAny(prefix, " \t\r\n\"'<>&") {
		return New(ErrCodeInvalidConfig, "node prefix contains invalid characters: %q", prefix)
	}
	first := rune(prefix[0])
	if !unicode.IsLetter(first) && first != '_' {
		return New(ErrCodeInvalidConfig, "node prefix must start with a letter or underscore: %q", prefix)
	}
	if last := prefix[len(prefix)-1]; last >= '0' && last <= '9' {
		return New(ErrCodeInvalidConfig, "node prefix must not end with a digit: %q", prefix)
	}
	return nil
}
