// Package msgpackwire bridges MessagePack values and wire values.
package msgpackwire

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

// Decode reads one value from dec. MessagePack arrays carry no raw framing
// the decoder can hand back, so sequences are materialized.
func Decode(dec *msgpack.Decoder) (wire.Value, error) {
	x, err := dec.DecodeInterface()
	if err != nil {
		return wire.Value{}, errors.Wrap(err, "msgpackwire: decode")
	}
	return fromAny(x), nil
}

// Parse decodes a single MessagePack value from b.
func Parse(b []byte) (wire.Value, error) {
	return Decode(msgpack.NewDecoder(bytes.NewReader(b)))
}

func fromAny(x any) wire.Value {
	switch x := x.(type) {
	case nil:
		return wire.Null()
	case string:
		return wire.String(x)
	case int8:
		return wire.Integer(int64(x))
	case int16:
		return wire.Integer(int64(x))
	case int32:
		return wire.Integer(int64(x))
	case int64:
		return wire.Integer(x)
	case uint8:
		return wire.Uint(uint64(x))
	case uint16:
		return wire.Uint(uint64(x))
	case uint32:
		return wire.Uint(uint64(x))
	case uint64:
		return wire.Uint(x)
	case float32:
		return wire.Float(float64(x))
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
	case map[string]any, map[any]any:
		return wire.Unsupported("map")
	}
	return wire.Unsupported(fmt.Sprintf("msgpack %T", x))
}

// Encode writes v to enc. Absent is written as nil.
func Encode(enc *msgpack.Encoder, v wire.Value) error {
	switch v.Kind() {
	case wire.KindAbsent, wire.KindNull:
		return enc.EncodeNil()
	case wire.KindString:
		s, _ := v.Str()
		return enc.EncodeString(s)
	case wire.KindUint:
		u, _ := v.Uint()
		return enc.EncodeUint(u)
	case wire.KindInt:
		i, _ := v.Int()
		return enc.EncodeInt(i)
	case wire.KindFloat:
		f, _ := v.Float()
		return enc.EncodeFloat64(f)
	case wire.KindSequence:
		elems, err := v.Collect()
		if err != nil {
			return err
		}
		if err := enc.EncodeArrayLen(len(elems)); err != nil {
			return err
		}
		for _, e := range elems {
			if err := Encode(enc, e); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Wrapf(wire.ErrUnencodable, "msgpackwire: %s", v.Describe())
}

// Marshal encodes v as a standalone MessagePack value.
func Marshal(v wire.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(msgpack.NewEncoder(&buf), v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
