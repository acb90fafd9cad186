package codec

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

const defaultYAMLIndent = 2

// YAML is a Codec over gopkg.in/yaml.v3. The zero value is ready to use.
type YAML[V any] struct {
	// Indent is the block indentation in spaces. Zero means 2.
	Indent int
	// KnownFields rejects mapping keys that have no matching struct field.
	KnownFields bool
}

var _ Codec[struct{}] = YAML[struct{}]{}

func (c YAML[V]) Encode(v V) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(coalesce(c.Indent, defaultYAMLIndent))
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c YAML[V]) Decode(b []byte) (V, error) {
	var v V
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(c.KnownFields)
	err := dec.Decode(&v)
	return v, err
}
