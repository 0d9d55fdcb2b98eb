package textutil

import (
	"fmt"
	"strings"
)

// IsEmpty reports whether s is empty or consists only of whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotEmpty reports whether s contains at least one non-whitespace rune.
// It is the complement of [IsEmpty].
func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}

// IsEmptyValue applies the [IsEmpty] test to a loosely-typed value.
//
// A nil value or nil *string counts as empty. A string or non-nil *string is
// tested after trimming whitespace. Any other type returns [ErrNotText].
func IsEmptyValue(v any) (bool, error) {
	switch s := v.(type) {
	case nil:
		return true, nil
	case string:
		return IsEmpty(s), nil
	case *string:
		if s == nil {
			return true, nil
		}
		return IsEmpty(*s), nil
	default:
		return false, fmt.Errorf("%w: got %T", ErrNotText, v)
	}
}
