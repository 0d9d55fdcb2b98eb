package maputil

import "fmt"

// Map is an insertion-ordered association of [Key] to V.
//
// Iteration order is the order in which keys were first set; overwriting an
// existing key keeps its position. Unlike Go's built-in map, keys may mix
// text and integer values within one Map, mirroring loosely-typed
// associative arrays.
//
// # Creating a map
//
//	m := maputil.New(
//	    maputil.Entry[int]{Key: maputil.StringKey("Sam"), Value: 34},
//	    maputil.Entry[int]{Key: maputil.StringKey("John"), Value: 28},
//	)
//	l := maputil.FromSlice([]string{"a", "b", "c"}) // keys 0, 1, 2
//
// # Mutation
//
// Set returns the map so literal construction can chain:
//
//	m := maputil.New[any]().
//	    Set(maputil.StringKey("host"), "localhost").
//	    Set(maputil.StringKey("port"), 5432)
//
// A Map is not safe for concurrent mutation; callers must serialize access
// to a shared Map themselves.
type Map[V any] struct {
	order  []Key
	values map[Key]V
}

// Entry is a single (key, value) pair of a [Map].
type Entry[V any] struct {
	Key   Key
	Value V
}

// New creates a Map from entries, in order. When entries repeat a key, the
// last value wins but the key keeps its first position.
func New[V any](entries ...Entry[V]) *Map[V] {
	m := &Map[V]{
		order:  make([]Key, 0, len(entries)),
		values: make(map[Key]V, len(entries)),
	}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// FromSlice creates a Map from items with integer keys 0 … len(items)-1.
func FromSlice[V any](items []V) *Map[V] {
	m := &Map[V]{
		order:  make([]Key, 0, len(items)),
		values: make(map[Key]V, len(items)),
	}
	for i, item := range items {
		m.Set(IntKey(i), item)
	}
	return m
}

// Set associates key with value. A new key is appended to the iteration
// order; an existing key keeps its position. Returns m for chaining.
func (m *Map[V]) Set(key Key, value V) *Map[V] {
	if m.values == nil {
		m.values = make(map[Key]V)
	}
	if _, exists := m.values[key]; !exists {
		m.order = append(m.order, key)
	}
	m.values[key] = value
	return m
}

// Get returns the value stored under key together with a presence flag.
func (m *Map[V]) Get(key Key) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key Key) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key and reports whether it was present.
// Remaining keys keep their order; integer keys are not reindexed.
func (m *Map[V]) Delete(key Key) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (m *Map[V]) Len() int { return len(m.order) }

// IsEmpty reports whether the map has no entries.
func (m *Map[V]) IsEmpty() bool { return len(m.order) == 0 }

// Keys returns the keys in iteration order (copied).
func (m *Map[V]) Keys() []Key {
	out := make([]Key, len(m.order))
	copy(out, m.order)
	return out
}

// Values returns the values in iteration order (copied).
func (m *Map[V]) Values() []V {
	out := make([]V, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.values[k])
	}
	return out
}

// Entries returns the (key, value) pairs in iteration order.
func (m *Map[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, len(m.order))
	for _, k := range m.order {
		out = append(out, Entry[V]{Key: k, Value: m.values[k]})
	}
	return out
}

// Each calls fn(key, value) for every entry in iteration order.
func (m *Map[V]) Each(fn func(Key, V)) {
	for _, k := range m.order {
		fn(k, m.values[k])
	}
}

// Clone returns a shallow copy of m: keys and order are copied, values are
// shared.
func (m *Map[V]) Clone() *Map[V] {
	out := &Map[V]{
		order:  make([]Key, len(m.order)),
		values: make(map[Key]V, len(m.values)),
	}
	copy(out.order, m.order)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// String returns a JSON representation of the map, falling back to a plain
// entry dump when the values cannot be serialised.
// It implements [fmt.Stringer].
func (m *Map[V]) String() string {
	b, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", m.Entries())
	}
	return string(b)
}
