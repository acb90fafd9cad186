package fieldcodec

import (
	"encoding"

	"github.com/cockroachdb/errors"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

// TextValue is the pointer side of a type that formats and parses itself as
// text, e.g. *netip.Addr, *big.Int, *uuid.UUID.
type TextValue[T any] interface {
	*T
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

// Represented carries any self-describing text type as a string:
//
//	Field[netip.Addr, Represented[netip.Addr, *netip.Addr]]
//
// Unlike IntegerStr, a parse failure reports the type's own error text.
type Represented[T any, PT TextValue[T]] struct{}

func (Represented[T, PT]) Expecting() string { return "string representation" }

func (c Represented[T, PT]) Decode(v wire.Value) (T, error) {
	var out T
	s, ok := v.Str()
	if !ok {
		return out, invalidType(v, c.Expecting())
	}
	if err := PT(&out).UnmarshalText([]byte(s)); err != nil {
		var zero T
		return zero, &DecodeError{Kind: ErrInvalidValue, Got: v.Describe(), Err: err}
	}
	return out, nil
}

func (Represented[T, PT]) Encode(val T) (wire.Value, error) {
	b, err := PT(&val).MarshalText()
	if err != nil {
		return wire.Value{}, errors.Wrapf(ErrUnrepresentable, "string representation: %v", err)
	}
	return wire.String(string(b)), nil
}
