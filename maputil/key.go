package maputil

import (
	"fmt"
	"strconv"
)

type keyKind uint8

const (
	nilKind keyKind = iota
	textKind
	intKind
)

// Key is a map key: either a text value or a non-negative integer index.
//
// Key is a comparable value type, so it can back a Go map. The zero Key is
// the nil key: the absent-marker bucket used by [GroupBy] for records that
// lack the discriminator key. The nil key never matches a text or integer
// key, but it is a valid map key in its own right.
type Key struct {
	kind keyKind
	text string
	num  int
}

// StringKey returns the text key for s.
func StringKey(s string) Key {
	return Key{kind: textKind, text: s}
}

// IntKey returns the integer key for n.
func IntKey(n int) Key {
	return Key{kind: intKind, num: n}
}

// KeyOf coerces an arbitrary value into a Key.
//
// Strings and all Go integer kinds map to text and integer keys respectively;
// a Key passes through unchanged; nil yields the nil key. Any other value
// falls back to its fmt text form.
func KeyOf(v any) Key {
	switch t := v.(type) {
	case nil:
		return Key{}
	case Key:
		return t
	case string:
		return StringKey(t)
	case int:
		return IntKey(t)
	case int8:
		return IntKey(int(t))
	case int16:
		return IntKey(int(t))
	case int32:
		return IntKey(int(t))
	case int64:
		return IntKey(int(t))
	case uint:
		return IntKey(int(t))
	case uint8:
		return IntKey(int(t))
	case uint16:
		return IntKey(int(t))
	case uint32:
		return IntKey(int(t))
	case uint64:
		return IntKey(int(t))
	default:
		return StringKey(fmt.Sprintf("%v", t))
	}
}

// IsNil reports whether k is the nil key.
func (k Key) IsNil() bool { return k.kind == nilKind }

// Text returns the text form of k and whether k is a text key.
func (k Key) Text() (string, bool) {
	return k.text, k.kind == textKind
}

// Int returns the integer form of k and whether k is an integer key.
func (k Key) Int() (int, bool) {
	return k.num, k.kind == intKind
}

// String returns the display form of k: the text itself for text keys, the
// decimal form for integer keys, and the empty string for the nil key.
// It implements [fmt.Stringer].
func (k Key) String() string {
	switch k.kind {
	case textKind:
		return k.text
	case intKind:
		return strconv.Itoa(k.num)
	default:
		return ""
	}
}

// keyFromText converts a path segment or serialized key back into a Key.
// Canonical non-negative decimal strings become integer keys, mirroring the
// index keys produced by [FromSlice]; everything else is a text key.
func keyFromText(s string) Key {
	if s == "" {
		return StringKey(s)
	}
	if s == "0" {
		return IntKey(0)
	}
	if s[0] >= '1' && s[0] <= '9' {
		if n, err := strconv.Atoi(s); err == nil {
			return IntKey(n)
		}
	}
	return StringKey(s)
}
