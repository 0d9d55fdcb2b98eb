package maputil

import (
	"fmt"
	"strings"
)

// Default placeholders substituted by [Format].
const (
	DefaultKeyPlaceholder   = "{key}"
	DefaultValuePlaceholder = "{value}"
)

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

// Format renders each entry of m through template, in iteration order, and
// concatenates the results. Every occurrence of the key placeholder is
// replaced with the entry's key and every occurrence of the value
// placeholder with the entry's value, both in their fmt text form.
//
// placeholders[0] overrides the key placeholder (default "{key}") and
// placeholders[1] the value placeholder (default "{value}"). Placeholders
// are taken verbatim; no shape validation is performed. An empty map yields
// the empty string.
//
//	maputil.Format(ages, "Name: {key} Age: {value}\n")
func Format[V any](m *Map[V], template string, placeholders ...string) string {
	keyPH, valuePH := DefaultKeyPlaceholder, DefaultValuePlaceholder
	if len(placeholders) > 0 {
		keyPH = placeholders[0]
	}
	if len(placeholders) > 1 {
		valuePH = placeholders[1]
	}
	var b strings.Builder
	m.Each(func(k Key, v V) {
		line := strings.ReplaceAll(template, keyPH, k.String())
		line = strings.ReplaceAll(line, valuePH, fmt.Sprintf("%v", v))
		b.WriteString(line)
	})
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Extraction
// ─────────────────────────────────────────────────────────────────────────────

// Pull removes key from m and returns its value.
// When key is absent, m is left unchanged and ok is false.
// Remaining keys keep their order; integer keys are not reindexed.
func Pull[V any](m *Map[V], key Key) (V, bool) {
	v, ok := m.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	m.Delete(key)
	return v, true
}

// Call invokes fn with the value stored under key and returns its result.
// When key is absent, fn is not called and ok is false.
func Call[V, R any](m *Map[V], key Key, fn func(V) R) (R, bool) {
	v, ok := m.Get(key)
	if !ok {
		var zero R
		return zero, false
	}
	return fn(v), true
}

// CallOrFail is the strict form of [Call]: a missing key returns
// [ErrKeyNotFound] instead of a false flag.
func CallOrFail[V, R any](m *Map[V], key Key, fn func(V) R) (R, error) {
	r, ok := Call(m, key, fn)
	if !ok {
		return r, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return r, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Keyed mutation
// ─────────────────────────────────────────────────────────────────────────────

// Rename moves the value stored under src to dst and removes src, reporting
// whether src was present. A new dst is appended at the end of the iteration
// order; an existing dst is overwritten in place. When src is absent, m is
// left unchanged. Renaming a key onto itself is a no-op.
func Rename[V any](m *Map[V], src, dst Key) bool {
	v, ok := m.Get(src)
	if !ok {
		return false
	}
	if src == dst {
		return true
	}
	m.Set(dst, v)
	m.Delete(src)
	return true
}

// RenameOrFail is the strict form of [Rename]: a missing source key returns
// [ErrKeyNotFound] instead of a false flag.
func RenameOrFail[V any](m *Map[V], src, dst Key) error {
	if !Rename(m, src, dst) {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, src)
	}
	return nil
}

// SetIf sets m[key] = value when cond is true, reporting whether the value
// was set. When cond is false, m is left unchanged.
func SetIf[V any](m *Map[V], key Key, value V, cond bool) bool {
	if !cond {
		return false
	}
	m.Set(key, value)
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy buckets records by the value each stores under disc.
//
// Records are processed in slice order. Each record is cloned, the
// discriminator entry is pulled from the clone, and the remaining entries
// are appended to the bucket keyed by the pulled value (coerced with
// [KeyOf]). Records missing the discriminator land in the nil-key bucket.
// Bucket order is the order of first appearance of each discriminant value.
//
//	byTarget := maputil.GroupBy(records, maputil.StringKey("target"))
func GroupBy[V any](records []*Map[V], disc Key) *Map[[]*Map[V]] {
	out := New[[]*Map[V]]()
	for _, rec := range records {
		r := rec.Clone()
		var bucket Key
		if v, ok := Pull(r, disc); ok {
			bucket = KeyOf(v)
		}
		group, _ := out.Get(bucket)
		out.Set(bucket, append(group, r))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sub-selection
// ─────────────────────────────────────────────────────────────────────────────

// Only returns a new map containing the entries of m whose key appears in
// keys, in the order the keys are requested. Missing keys are skipped.
func Only[V any](m *Map[V], keys ...Key) *Map[V] {
	out := New[V]()
	for _, k := range keys {
		if v, ok := m.Get(k); ok {
			out.Set(k, v)
		}
	}
	return out
}

// OnlyOrFail is the strict form of [Only]: the first missing key aborts the
// whole call with [ErrKeyNotFound] and no partial result is returned.
func OnlyOrFail[V any](m *Map[V], keys ...Key) (*Map[V], error) {
	out := New[V]()
	for _, k := range keys {
		v, ok := m.Get(k)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
		}
		out.Set(k, v)
	}
	return out, nil
}

// Except returns a new map with the entries of m whose key does not appear
// in keys, preserving m's iteration order. It is the complement of [Only].
func Except[V any](m *Map[V], keys ...Key) *Map[V] {
	drop := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := New[V]()
	m.Each(func(k Key, v V) {
		if _, skip := drop[k]; !skip {
			out.Set(k, v)
		}
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Chunking
// ─────────────────────────────────────────────────────────────────────────────

// Split partitions m into groups consecutive chunks, preserving each entry's
// original key inside its chunk. Chunk length is ceil(Len()/groups), so the
// last chunk may be shorter. groups is the desired number of chunks, not the
// chunk length.
//
// Returns [ErrInvalidGroupCount] when groups is not positive. An empty map
// yields no chunks.
//
//	maputil.Split(maputil.FromSlice([]string{"a", "b", "c", "d", "e"}), 2)
//	// → [{0:a, 1:b, 2:c}, {3:d, 4:e}]
func Split[V any](m *Map[V], groups int) ([]*Map[V], error) {
	if groups <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGroupCount, groups)
	}
	n := m.Len()
	if n == 0 {
		return []*Map[V]{}, nil
	}
	size := (n + groups - 1) / groups
	chunks := make([]*Map[V], 0, (n+size-1)/size)
	var chunk *Map[V]
	m.Each(func(k Key, v V) {
		if chunk == nil || chunk.Len() == size {
			chunk = New[V]()
			chunks = append(chunks, chunk)
		}
		chunk.Set(k, v)
	})
	return chunks, nil
}
