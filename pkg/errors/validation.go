package errors

import (
	"strings"
	"unicode"
)

// ValidateTotal checks that a space total is usable by the allocation
// functions. Negative totals are a caller contract violation.
func ValidateTotal(total int) error {
	if total < 0 {
		return New(ErrCodeInvalidInput, "total must be >= 0, got %d", total)
	}
	return nil
}

// ValidateNonNegative checks that every element of values is >= 0.
// The field name is used in the error message to point at the offending list.
func ValidateNonNegative(field string, values []int) error {
	for i, v := range values {
		if v < 0 {
			return New(ErrCodeInvalidInput, "%s[%d] must be >= 0, got %d", field, i, v)
		}
	}
	return nil
}

// ValidateSameLength checks that parallel lists have matching lengths.
// Names and lengths are given in the same order; the first list is the
// reference every other list is compared against.
//
//	ValidateSameLength([]string{"ratios", "values"}, len(ratios), len(values))
func ValidateSameLength(fields []string, lengths ...int) error {
	if len(fields) != len(lengths) {
		return New(ErrCodeInternal, "ValidateSameLength: %d names for %d lengths", len(fields), len(lengths))
	}
	for i := 1; i < len(lengths); i++ {
		if lengths[i] != lengths[0] {
			return New(ErrCodeInvalidInput, "%s has %d elements, %s has %d",
				fields[i], lengths[i], fields[0], lengths[0])
		}
	}
	return nil
}

// ValidatePath validates a layout file path.
// Absolute and relative paths are both allowed; the checks only reject
// input that cannot name a regular file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
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

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path names a directory: %q", path)
	}

	return nil
}
