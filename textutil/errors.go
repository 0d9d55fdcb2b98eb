package textutil

import "errors"

// Sentinel errors returned by textutil operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := textutil.IsEmptyValue(42)
//	if errors.Is(err, textutil.ErrNotText) {
//	    // value was neither absent nor text
//	}
var (
	// ErrNotText is returned by [IsEmptyValue] when the supplied value is
	// neither nil nor a text value.
	ErrNotText = errors.New("textutil: input was not absent or a text value")
)
