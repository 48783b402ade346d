package load

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a list of fields or a mapping from field
// name to field, keeping the mapping order.
func (fs *Fields) UnmarshalYAML(n *yaml.Node) error {
	list, err := decodeYAMLList(n, func(f *Field, name string) { f.Name = name })
	if err != nil {
		return err
	}
	*fs = list
	return nil
}

// UnmarshalYAML accepts either a list of edges or a mapping from edge
// name to edge, keeping the mapping order.
func (es *Edges) UnmarshalYAML(n *yaml.Node) error {
	list, err := decodeYAMLList(n, func(e *Edge, name string) { e.Name = name })
	if err != nil {
		return err
	}
	*es = list
	return nil
}

// UnmarshalYAML accepts a bare type name as a shorthand for {type: name}.
func (f *Field) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		f.Type = n.Value
		return nil
	}
	type plain Field
	return n.Decode((*plain)(f))
}

// UnmarshalYAML accepts a bare relation name as a shorthand for {name: name}.
func (i *Inverse) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		i.Name = n.Value
		return nil
	}
	type plain Inverse
	return n.Decode((*plain)(i))
}

func decodeYAMLList[T any](n *yaml.Node, setName func(*T, string)) ([]*T, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		var list []*T
		if err := n.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	case yaml.MappingNode:
		list := make([]*T, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			v := new(T)
			if err := val.Decode(v); err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", key.Line, key.Value, err)
			}
			setName(v, key.Value)
			list = append(list, v)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("line %d: expected a list or a mapping", n.Line)
	}
}

// UnmarshalJSON accepts either an array of fields or an object from field
// name to field, keeping the object member order.
func (fs *Fields) UnmarshalJSON(data []byte) error {
	list, err := decodeJSONList(data, func(f *Field, name string) { f.Name = name })
	if err != nil {
		return err
	}
	*fs = list
	return nil
}

// UnmarshalJSON accepts either an array of edges or an object from edge
// name to edge, keeping the object member order.
func (es *Edges) UnmarshalJSON(data []byte) error {
	list, err := decodeJSONList(data, func(e *Edge, name string) { e.Name = name })
	if err != nil {
		return err
	}
	*es = list
	return nil
}

// UnmarshalJSON accepts a bare type name as a shorthand for {"type": name}.
func (f *Field) UnmarshalJSON(data []byte) error {
	if t := bytes.TrimSpace(data); len(t) > 0 && t[0] == '"' {
		return json.Unmarshal(t, &f.Type)
	}
	type plain Field
	return json.Unmarshal(data, (*plain)(f))
}

// UnmarshalJSON accepts a bare relation name as a shorthand for {"name": name}.
func (i *Inverse) UnmarshalJSON(data []byte) error {
	if t := bytes.TrimSpace(data); len(t) > 0 && t[0] == '"' {
		return json.Unmarshal(t, &i.Name)
	}
	type plain Inverse
	return json.Unmarshal(data, (*plain)(i))
}

// decodeJSONList walks objects token by token since encoding/json does not
// expose member order when decoding into maps.
func decodeJSONList[T any](data []byte, setName func(*T, string)) ([]*T, error) {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil, nil
	case data[0] == '[':
		var list []*T
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
		return list, nil
	case data[0] != '{':
		return nil, fmt.Errorf("expected an array or an object")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var list []*T
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		v := new(T)
		if err := dec.Decode(v); err != nil {
			return nil, fmt.Errorf("%q: %w", key, err)
		}
		setName(v, key)
		list = append(list, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return list, nil
}
