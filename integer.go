package fieldcodec

import (
	"strconv"
	"unsafe"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

// IntegerStr carries an integer as a base-10 string: "123".
// Bare numbers are rejected; see IntegerOrStr for the lenient form.
type IntegerStr[T Integer] struct{}

var _ Codec[uint64] = IntegerStr[uint64]{}

func (IntegerStr[T]) Expecting() string { return "integer string" }

func (c IntegerStr[T]) Decode(v wire.Value) (T, error) {
	s, ok := v.Str()
	if !ok {
		return 0, invalidType(v, c.Expecting())
	}
	n, err := parseInteger[T](s)
	if err != nil {
		return 0, invalidValue(v, c.Expecting(), err)
	}
	return n, nil
}

func (IntegerStr[T]) Encode(n T) (wire.Value, error) {
	return wire.String(formatInteger(n)), nil
}

// IntegerOrStr accepts "123" or 123 and always emits "123".
//
// Numeric input is formatted to its decimal text and parsed on the same path
// as a string, so both shapes share one success boundary and one error
// (a failure reports the text, e.g. `string "300"` for a uint8 target).
type IntegerOrStr[T Integer] struct{}

func (IntegerOrStr[T]) Expecting() string { return "integer or integer string" }

func (c IntegerOrStr[T]) Decode(v wire.Value) (T, error) {
	var text string
	switch v.Kind() {
	case wire.KindString:
		text, _ = v.Str()
	case wire.KindUint:
		u, _ := v.Uint()
		text = strconv.FormatUint(u, 10)
	case wire.KindInt:
		i, _ := v.Int()
		text = strconv.FormatInt(i, 10)
	default:
		return 0, invalidType(v, c.Expecting())
	}
	n, err := parseInteger[T](text)
	if err != nil {
		return 0, invalidValue(wire.String(text), c.Expecting(), err)
	}
	return n, nil
}

func (IntegerOrStr[T]) Encode(n T) (wire.Value, error) {
	return wire.String(formatInteger(n)), nil
}

// Number is the plain numeric form: a wire integer that must fit T.
// It is the natural element codec for RangeOf over integers.
type Number[T Integer] struct{}

func (Number[T]) Expecting() string { return "integer" }

func (c Number[T]) Decode(v wire.Value) (T, error) {
	var (
		n  T
		ok bool
	)
	switch v.Kind() {
	case wire.KindUint:
		u, _ := v.Uint()
		n, ok = fromUint[T](u)
	case wire.KindInt:
		i, _ := v.Int()
		n, ok = fromInt[T](i)
	default:
		return 0, invalidType(v, c.Expecting())
	}
	if !ok {
		return 0, outOfRange(v, c.Expecting())
	}
	return n, nil
}

func (Number[T]) Encode(n T) (wire.Value, error) {
	if signed[T]() {
		return wire.Integer(int64(n)), nil
	}
	return wire.Uint(uint64(n)), nil
}

// Text is a plain string.
type Text struct{}

func (Text) Expecting() string { return "string" }

func (c Text) Decode(v wire.Value) (string, error) {
	s, ok := v.Str()
	if !ok {
		return "", invalidType(v, c.Expecting())
	}
	return s, nil
}

func (Text) Encode(s string) (wire.Value, error) { return wire.String(s), nil }

func signed[T Integer]() bool {
	var zero T
	return zero-1 < 0
}

func bitSize[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// parseInteger parses base-10 text into T, rejecting values outside T's width.
func parseInteger[T Integer](s string) (T, error) {
	if signed[T]() {
		n, err := strconv.ParseInt(s, 10, bitSize[T]())
		return T(n), err
	}
	n, err := strconv.ParseUint(s, 10, bitSize[T]())
	return T(n), err
}

func formatInteger[T Integer](n T) string {
	if signed[T]() {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatUint(uint64(n), 10)
}

func fromUint[T Integer](u uint64) (T, bool) {
	n := T(u)
	if n < 0 || uint64(n) != u {
		return 0, false
	}
	return n, true
}

func fromInt[T Integer](i int64) (T, bool) {
	n := T(i)
	if int64(n) != i || (n < 0) != (i < 0) {
		return 0, false
	}
	return n, true
}
