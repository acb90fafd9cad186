// Package cborwire bridges CBOR data items and wire values.
package cborwire

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

const majorArray = 4

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	// Core deterministic encoding: smallest integer and float forms, so the
	// same wire value always produces the same bytes.
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cborwire: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("cborwire: CBOR decoder initialization failed: " + err.Error())
	}
}

// Parse converts one CBOR data item to a wire value. Arrays are streamed and
// keep references into data until they are consumed.
func Parse(data []byte) (wire.Value, error) {
	if len(data) == 0 {
		return wire.Value{}, errors.New("cborwire: empty input")
	}
	if data[0]>>5 == majorArray {
		var elems []cbor.RawMessage
		if err := decMode.Unmarshal(data, &elems); err != nil {
			return wire.Value{}, errors.Wrap(err, "cborwire: array")
		}
		return wire.Stream(func(yield func(wire.Value, error) bool) {
			for _, e := range elems {
				v, err := Parse(e)
				if !yield(v, err) || err != nil {
					return
				}
			}
		}), nil
	}

	var x any
	if err := decMode.Unmarshal(data, &x); err != nil {
		return wire.Value{}, errors.Wrap(err, "cborwire: parse")
	}
	return fromAny(x), nil
}

func fromAny(x any) wire.Value {
	switch x := x.(type) {
	case nil:
		return wire.Null()
	case string:
		return wire.String(x)
	case uint64:
		return wire.Uint(x)
	case int64:
		return wire.Integer(x)
	case float64:
		return wire.Float(x)
	case []any:
		elems := make([]wire.Value, len(x))
		for i, e := range x {
			elems[i] = fromAny(e)
		}
		return wire.Sequence(elems...)
	case bool:
		return wire.Unsupported(fmt.Sprintf("boolean %t", x))
	case []byte:
		return wire.Unsupported("byte string")
	case big.Int:
		return wire.Unsupported("integer " + x.String())
	case *big.Int:
		return wire.Unsupported("integer " + x.String())
	case map[any]any, map[string]any:
		return wire.Unsupported("map")
	}
	return wire.Unsupported(fmt.Sprintf("cbor %T", x))
}

// Marshal encodes v as a single CBOR data item. Absent encodes as null.
func Marshal(v wire.Value) ([]byte, error) {
	x, err := toAny(v)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(x)
}

func toAny(v wire.Value) (any, error) {
	switch v.Kind() {
	case wire.KindAbsent, wire.KindNull:
		return nil, nil
	case wire.KindString:
		s, _ := v.Str()
		return s, nil
	case wire.KindUint:
		u, _ := v.Uint()
		return u, nil
	case wire.KindInt:
		i, _ := v.Int()
		return i, nil
	case wire.KindFloat:
		f, _ := v.Float()
		return f, nil
	case wire.KindSequence:
		out := []any{}
		for e, err := range v.Elements() {
			if err != nil {
				return nil, err
			}
			x, err := toAny(e)
			if err != nil {
				return nil, err
			}
			out = append(out, x)
		}
		return out, nil
	}
	return nil, errors.Wrapf(wire.ErrUnencodable, "cborwire: %s", v.Describe())
}
