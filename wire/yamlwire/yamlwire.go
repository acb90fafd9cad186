// Package yamlwire bridges yaml.v3 nodes and wire values.
package yamlwire

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

const (
	tagNull  = "!!null"
	tagStr   = "!!str"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagBool  = "!!bool"
	tagSeq   = "!!seq"
)

// FromNode converts a resolved YAML node to a wire value. A nil node is
// absent. Float scalars keep their literal text.
func FromNode(n *yaml.Node) (wire.Value, error) {
	if n == nil {
		return wire.Absent(), nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return wire.Absent(), nil
		}
		return FromNode(n.Content[0])
	case yaml.AliasNode:
		return FromNode(n.Alias)
	case yaml.SequenceNode:
		content := n.Content
		return wire.Stream(func(yield func(wire.Value, error) bool) {
			for _, c := range content {
				v, err := FromNode(c)
				if !yield(v, err) || err != nil {
					return
				}
			}
		}), nil
	case yaml.MappingNode:
		return wire.Unsupported("map"), nil
	case yaml.ScalarNode:
		return scalar(n)
	}
	return wire.Value{}, errors.Newf("yamlwire: unknown node kind %d", n.Kind)
}

func scalar(n *yaml.Node) (wire.Value, error) {
	switch n.ShortTag() {
	case tagNull:
		return wire.Null(), nil
	case tagStr:
		return wire.String(n.Value), nil
	case tagInt:
		var i int64
		if err := n.Decode(&i); err == nil {
			return wire.Integer(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return wire.Uint(u), nil
		}
		// wider than 64 bits; handled like JSON, as a float
		return parseFloat(n)
	case tagFloat:
		return parseFloat(n)
	case tagBool:
		return wire.Unsupported("boolean " + n.Value), nil
	}
	return wire.Unsupported("yaml " + n.ShortTag()), nil
}

func parseFloat(n *yaml.Node) (wire.Value, error) {
	var f float64
	if err := n.Decode(&f); err != nil {
		return wire.Value{}, errors.Wrapf(err, "yamlwire: number %s", n.Value)
	}
	return wire.FloatLiteral(f, n.Value), nil
}

// ToNode converts v to a YAML node. Strings are tagged so that text that
// looks like a number stays quoted.
func ToNode(v wire.Value) (*yaml.Node, error) {
	switch v.Kind() {
	case wire.KindAbsent, wire.KindNull:
		return scalarNode(tagNull, "null"), nil
	case wire.KindString:
		s, _ := v.Str()
		return scalarNode(tagStr, s), nil
	case wire.KindUint:
		u, _ := v.Uint()
		return scalarNode(tagInt, strconv.FormatUint(u, 10)), nil
	case wire.KindInt:
		i, _ := v.Int()
		return scalarNode(tagInt, strconv.FormatInt(i, 10)), nil
	case wire.KindFloat:
		return floatNode(v), nil
	case wire.KindSequence:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: tagSeq}
		for e, err := range v.Elements() {
			if err != nil {
				return nil, err
			}
			c, err := ToNode(e)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, c)
		}
		return seq, nil
	}
	return nil, errors.Wrapf(wire.ErrUnencodable, "yamlwire: %s", v.Describe())
}

func floatNode(v wire.Value) *yaml.Node {
	if lit, ok := v.Literal(); ok {
		return scalarNode(tagFloat, lit)
	}
	f, _ := v.Float()
	switch {
	case math.IsNaN(f):
		return scalarNode(tagFloat, ".nan")
	case math.IsInf(f, 1):
		return scalarNode(tagFloat, ".inf")
	case math.IsInf(f, -1):
		return scalarNode(tagFloat, "-.inf")
	}
	text := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(text, '.') {
		// integral floats read back as integers, which every numeric codec accepts
		return scalarNode(tagInt, text)
	}
	return scalarNode(tagFloat, text)
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
