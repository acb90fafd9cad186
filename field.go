package fieldcodec

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/fieldcodec/wire"
	"github.com/unkn0wn-root/fieldcodec/wire/cborwire"
	"github.com/unkn0wn-root/fieldcodec/wire/jsonwire"
	"github.com/unkn0wn-root/fieldcodec/wire/msgpackwire"
	"github.com/unkn0wn-root/fieldcodec/wire/protowire"
	"github.com/unkn0wn-root/fieldcodec/wire/yamlwire"
)

// Field attaches codec C to one struct field holding a T. It marshals
// through encoding/json, fxamacker/cbor, vmihailenco/msgpack and yaml.v3:
//
//	type Trade struct {
//		Qty fieldcodec.Field[uint64, fieldcodec.IntegerOrStr[uint64]] `json:"qty" cbor:"qty" msgpack:"qty" yaml:"qty"`
//	}
//
// A field missing from the input is never handed to C; it keeps its zero
// value, which is nil for Optional and SentinelOptional.
type Field[T any, C Codec[T]] struct {
	V T
}

var (
	_ json.Marshaler        = Field[uint64, IntegerStr[uint64]]{}
	_ json.Unmarshaler      = (*Field[uint64, IntegerStr[uint64]])(nil)
	_ cbor.Marshaler        = Field[uint64, IntegerStr[uint64]]{}
	_ cbor.Unmarshaler      = (*Field[uint64, IntegerStr[uint64]])(nil)
	_ msgpack.CustomEncoder = Field[uint64, IntegerStr[uint64]]{}
	_ msgpack.CustomDecoder = (*Field[uint64, IntegerStr[uint64]])(nil)
	_ yaml.Marshaler        = Field[uint64, IntegerStr[uint64]]{}
	_ yaml.Unmarshaler      = (*Field[uint64, IntegerStr[uint64]])(nil)
)

// Of wraps v.
func Of[C Codec[T], T any](v T) Field[T, C] { return Field[T, C]{V: v} }

func (f Field[T, C]) encode() (wire.Value, error) {
	var c C
	return c.Encode(f.V)
}

func (f *Field[T, C]) decode(v wire.Value) error {
	var c C
	t, err := c.Decode(v)
	if err != nil {
		return err
	}
	f.V = t
	return nil
}

// IsZero reports whether V encodes as null. With `json:",omitzero"` this
// drops nil optionals from the output.
func (f Field[T, C]) IsZero() bool {
	v, err := f.encode()
	return err == nil && v.IsNone()
}

func (f Field[T, C]) MarshalJSON() ([]byte, error) {
	v, err := f.encode()
	if err != nil {
		return nil, err
	}
	return jsonwire.Marshal(v)
}

func (f *Field[T, C]) UnmarshalJSON(b []byte) error {
	v, err := jsonwire.Parse(b)
	if err != nil {
		return err
	}
	return f.decode(v)
}

func (f Field[T, C]) MarshalCBOR() ([]byte, error) {
	v, err := f.encode()
	if err != nil {
		return nil, err
	}
	return cborwire.Marshal(v)
}

func (f *Field[T, C]) UnmarshalCBOR(b []byte) error {
	v, err := cborwire.Parse(b)
	if err != nil {
		return err
	}
	return f.decode(v)
}

func (f Field[T, C]) EncodeMsgpack(enc *msgpack.Encoder) error {
	v, err := f.encode()
	if err != nil {
		return err
	}
	return msgpackwire.Encode(enc, v)
}

func (f *Field[T, C]) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := msgpackwire.Decode(dec)
	if err != nil {
		return err
	}
	return f.decode(v)
}

func (f Field[T, C]) MarshalYAML() (any, error) {
	v, err := f.encode()
	if err != nil {
		return nil, err
	}
	return yamlwire.ToNode(v)
}

func (f *Field[T, C]) UnmarshalYAML(n *yaml.Node) error {
	v, err := yamlwire.FromNode(n)
	if err != nil {
		return err
	}
	return f.decode(v)
}

// DecodeJSON decodes a single JSON value with c.
func DecodeJSON[T any](c Codec[T], data []byte) (T, error) {
	v, err := jsonwire.Parse(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Decode(v)
}

// EncodeJSON encodes t with c as a single JSON value.
func EncodeJSON[T any](c Codec[T], t T) ([]byte, error) {
	v, err := c.Encode(t)
	if err != nil {
		return nil, err
	}
	return jsonwire.Marshal(v)
}

// DecodeProto decodes a google.protobuf.Value with c. A nil pv is absent.
func DecodeProto[T any](c Codec[T], pv *structpb.Value) (T, error) {
	return c.Decode(protowire.FromProto(pv))
}

// EncodeProto encodes t with c as a google.protobuf.Value.
func EncodeProto[T any](c Codec[T], t T) (*structpb.Value, error) {
	v, err := c.Encode(t)
	if err != nil {
		return nil, err
	}
	return protowire.ToProto(v)
}
