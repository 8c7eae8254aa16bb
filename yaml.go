package kvlist

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when decoding a YAML node that is not a mapping.
var ErrNotMapping = errors.New("yaml node is not a mapping")

// MarshalYAML encodes the list as a YAML mapping whose entries follow
// traversal order.
func (l List[K, V]) MarshalYAML() (interface{}, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for n := l.head; n != nil; n = n.next {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(n.key); err != nil {
			return nil, fmt.Errorf("failed to encode key %v: %w", n.key, err)
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(n.value); err != nil {
			return nil, fmt.Errorf("failed to encode value of key %v: %w", n.key, err)
		}
		mapping.Content = append(mapping.Content, keyNode, valueNode)
	}
	return mapping, nil
}

// UnmarshalYAML replaces the list content with the entries of a YAML mapping.
// Entries are inserted in document order, so a repeated key keeps the slot of
// its first occurrence and the value of its last.
func (l *List[K, V]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d has tag %s", ErrNotMapping, value.Line, value.ShortTag())
	}
	decoded := List[K, V]{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]
		var key K
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("failed to decode key at line %d: %w", keyNode.Line, err)
		}
		var item V
		if err := valueNode.Decode(&item); err != nil {
			return fmt.Errorf("failed to decode value of key %v: %w", key, err)
		}
		decoded.Insert(key, item)
	}
	l.Clear()
	*l = decoded
	return nil
}
