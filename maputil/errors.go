package maputil

import "errors"

// Sentinel errors returned by maputil operations.
//
// Callers should use [errors.Is] for comparisons:
//
//	_, err := maputil.OnlyOrFail(m, maputil.StringKey("missing"))
//	if errors.Is(err, maputil.ErrKeyNotFound) {
//	    // a requested key was absent
//	}
var (
	// ErrKeyNotFound is returned by the OrFail operation variants when a
	// referenced key (or nested path segment) is absent from the map.
	ErrKeyNotFound = errors.New("maputil: key not found")

	// ErrInvalidGroupCount is returned by [Split] when the requested number
	// of groups is not positive.
	ErrInvalidGroupCount = errors.New("maputil: group count must be greater than 0")

	// ErrDecode is returned by the JSON and YAML codecs when the input is
	// not a mapping, or when a decoded value cannot be stored in the map's
	// value type.
	ErrDecode = errors.New("maputil: cannot decode into map")
)
