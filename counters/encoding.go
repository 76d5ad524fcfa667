package counters

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

func (c Counter) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Counter) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalJSON emits a bare JSON number of any length.
func (c Counter) MarshalJSON() ([]byte, error) {
	return c.MarshalText()
}

// UnmarshalJSON accepts a number or a quoted decimal string.
func (c *Counter) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return c.UnmarshalText(data)
}

func (c Counter) MarshalYAML() (any, error) {
	if c.big == nil {
		return c.small, nil
	}
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
		Value: c.String(),
	}, nil
}

func (c *Counter) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: yaml node at line %d is not a scalar", ErrInvalid, node.Line)
	}
	return c.UnmarshalText([]byte(node.Value))
}

func (c Counter) GobEncode() ([]byte, error) {
	return c.MarshalText()
}

func (c *Counter) GobDecode(data []byte) error {
	return c.UnmarshalText(data)
}
