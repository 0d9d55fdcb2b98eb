package maputil

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Delimited-path helpers for nested maps
//
// These functions read, write, and test values in nested Map structures
// using delimited key paths. The delimiter defaults to "." and can be
// overridden with the trailing variadic argument. A path without the
// delimiter is a single-segment path, so these degrade to plain key access.
//
// Path segments that look like non-negative decimal integers address
// integer keys (the keys produced by [FromSlice]); all other segments
// address text keys.
//
// Example map:
//
//	m := maputil.New[any]().
//	    Set(maputil.StringKey("db"), maputil.New[any]().
//	        Set(maputil.StringKey("login"), maputil.New[any]().
//	            Set(maputil.StringKey("username"), "scott")))
//
//	maputil.GetNested(m, "db.login.username") // → "scott", true
//	maputil.HasNested(m, "db.login")          // → true
//	maputil.SetNested(m, "db.login.password", "tiger")
// ─────────────────────────────────────────────────────────────────────────────

func delimiter(delim []string) string {
	if len(delim) > 0 && delim[0] != "" {
		return delim[0]
	}
	return "."
}

// getNested walks path through m and returns the final value, or the first
// segment that could not be resolved.
func getNested[V any](m *Map[V], path, sep string) (V, string, bool) {
	var zero V
	var cursor any = m
	for _, seg := range strings.Split(path, sep) {
		mm, ok := cursor.(*Map[V])
		if !ok {
			return zero, seg, false
		}
		v, ok := mm.Get(keyFromText(seg))
		if !ok {
			return zero, seg, false
		}
		cursor = v
	}
	v, ok := cursor.(V)
	if !ok {
		return zero, "", false
	}
	return v, "", true
}

// GetNested retrieves the value at a delimited path, descending through
// nested maps one segment at a time. The walk stops at the first segment
// whose key is missing or whose cursor is not a map, returning ok = false
// without inspecting the remaining segments.
//
//	maputil.GetNested(m, "db.login.username")
//	maputil.GetNested(m, "db/login/username", "/")
func GetNested[V any](m *Map[V], path string, delim ...string) (V, bool) {
	v, _, ok := getNested(m, path, delimiter(delim))
	return v, ok
}

// GetNestedOrFail is the strict form of [GetNested]: the first unresolvable
// segment returns [ErrKeyNotFound] naming that segment.
func GetNestedOrFail[V any](m *Map[V], path string, delim ...string) (V, error) {
	v, seg, ok := getNested(m, path, delimiter(delim))
	if !ok {
		return v, fmt.Errorf("%w: segment %q in path %q", ErrKeyNotFound, seg, path)
	}
	return v, nil
}

// HasNested reports whether the delimited path resolves to a value.
func HasNested[V any](m *Map[V], path string, delim ...string) bool {
	_, _, ok := getNested(m, path, delimiter(delim))
	return ok
}

// SetNested writes value at the delimited path, creating intermediate maps
// as needed. A non-map value sitting on the path is replaced by a fresh map.
//
//	maputil.SetNested(m, "db.login.password", "tiger")
func SetNested(m *Map[any], path string, value any, delim ...string) {
	sep := delimiter(delim)
	seg, rest, found := strings.Cut(path, sep)
	key := keyFromText(seg)
	if !found {
		m.Set(key, value)
		return
	}
	var nested *Map[any]
	if v, present := m.Get(key); present {
		nested, _ = v.(*Map[any])
	}
	if nested == nil {
		nested = New[any]()
		m.Set(key, nested)
	}
	SetNested(nested, rest, value, sep)
}

// ForgetNested removes the entry at the delimited path, if present.
// Intermediate maps are not cleaned up.
func ForgetNested(m *Map[any], path string, delim ...string) {
	sep := delimiter(delim)
	seg, rest, found := strings.Cut(path, sep)
	key := keyFromText(seg)
	if !found {
		m.Delete(key)
		return
	}
	v, present := m.Get(key)
	if !present {
		return
	}
	nested, ok := v.(*Map[any])
	if !ok {
		return
	}
	ForgetNested(nested, rest, sep)
}
