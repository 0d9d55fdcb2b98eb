package maputil

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// MarshalJSON serialises the map to a JSON object in iteration order.
// Integer and nil keys are written in their text form, since JSON object
// keys are always strings. It implements [json.Marshaler].
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k.String())
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the map's contents with the entries of a JSON
// object, preserving the object's key order via token-level decoding.
// Keys that are canonical non-negative integers become integer keys, so
// [FromSlice] maps survive a marshal/unmarshal round trip.
//
// Nested objects decode as *Map[any] and arrays as []any, which limits
// decoding to Map[any] (or maps whose value type matches the decoded form).
// A value that cannot be stored in V returns [ErrDecode].
// It implements [json.Unmarshaler].
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: expected JSON object, got %v", ErrDecode, tok)
	}
	fresh := New[V]()
	if err := decodeJSONEntries(dec, func(key Key, raw any) error {
		v, err := storeAs[V](raw)
		if err != nil {
			return err
		}
		fresh.Set(key, v)
		return nil
	}); err != nil {
		return err
	}
	*m = *fresh
	return nil
}

// decodeJSONEntries reads key/value pairs up to and including the closing
// '}' of the current object, invoking set for each pair.
func decodeJSONEntries(dec *json.Decoder, set func(Key, any) error) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDecode, err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: expected object key, got %v", ErrDecode, tok)
		}
		raw, err := decodeJSONValue(dec)
		if err != nil {
			return err
		}
		if err := set(keyFromText(name), raw); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// decodeJSONValue reads one JSON value. Objects become *Map[any] so that
// key order survives; arrays become []any.
func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil // string, float64, bool, or nil
	}
	switch d {
	case '{':
		obj := New[any]()
		if err := decodeJSONEntries(dec, func(key Key, raw any) error {
			obj.Set(key, raw)
			return nil
		}); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		items := []any{}
		for dec.More() {
			item, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if _, err := dec.Token(); err != nil { // consume ']'
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: unexpected delimiter %v", ErrDecode, d)
	}
}

// storeAs converts a decoded value into the map's value type.
// nil maps to the zero value of V.
func storeAs[V any](raw any) (V, error) {
	var zero V
	if raw == nil {
		return zero, nil
	}
	v, ok := raw.(V)
	if !ok {
		return zero, fmt.Errorf("%w: cannot store %T as %T", ErrDecode, raw, zero)
	}
	return v, nil
}
