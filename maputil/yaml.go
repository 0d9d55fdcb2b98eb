package maputil

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML serialises the map as a YAML mapping node in iteration order.
// Integer keys are emitted as YAML integers, text keys as strings, and the
// nil key as the empty string. It implements [yaml.Marshaler].
func (m *Map[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.order {
		keyNode := &yaml.Node{}
		if n, ok := k.Int(); ok {
			if err := keyNode.Encode(n); err != nil {
				return nil, err
			}
		} else {
			if err := keyNode.Encode(k.String()); err != nil {
				return nil, err
			}
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(m.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// UnmarshalYAML replaces the map's contents with the entries of a YAML
// mapping, preserving document order. Integer-scalar keys become integer
// keys; other scalars become text keys via [KeyOf]. Nested mappings decode
// as *Map[any] and sequences as []any, so decoding is primarily for
// Map[any]. A value that cannot be stored in V returns [ErrDecode].
// It implements [yaml.Unmarshaler].
func (m *Map[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected YAML mapping, got %v", ErrDecode, node.Kind)
	}
	fresh := New[V]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, err := decodeYAMLKey(node.Content[i])
		if err != nil {
			return err
		}
		raw, err := decodeYAMLValue(node.Content[i+1])
		if err != nil {
			return err
		}
		v, err := storeAs[V](raw)
		if err != nil {
			return err
		}
		fresh.Set(key, v)
	}
	*m = *fresh
	return nil
}

func decodeYAMLKey(node *yaml.Node) (Key, error) {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return KeyOf(raw), nil
}

// decodeYAMLValue converts a node into a Go value, turning mappings into
// *Map[any] so that key order survives.
func decodeYAMLValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		obj := New[any]()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, err := decodeYAMLKey(node.Content[i])
			if err != nil {
				return nil, err
			}
			v, err := decodeYAMLValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		return obj, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := decodeYAMLValue(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.AliasNode:
		return decodeYAMLValue(node.Alias)
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return v, nil
	}
}
