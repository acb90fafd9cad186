package fieldcodec

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

func TestIntegerStr_Decode(t *testing.T) {
	var c IntegerStr[uint64]

	got, err := c.Decode(wire.String("123"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != 123 {
		t.Fatalf("got %d, want 123", got)
	}

	_, err = c.Decode(wire.Uint(123))
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("bare number: want ErrInvalidType, got %v", err)
	}
	if !strings.Contains(err.Error(), "integer string") {
		t.Fatalf("error should name the expectation: %v", err)
	}

	_, err = c.Decode(wire.String("abc"))
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("non-numeric text: want ErrInvalidValue, got %v", err)
	}
	if !strings.Contains(err.Error(), `"abc"`) {
		t.Fatalf("error should quote the text: %v", err)
	}
}

func TestIntegerStr_Widths(t *testing.T) {
	if _, err := (IntegerStr[uint8]{}).Decode(wire.String("256")); err == nil {
		t.Fatal("256 must not fit uint8")
	}
	if _, err := (IntegerStr[uint64]{}).Decode(wire.String("-1")); err == nil {
		t.Fatal("-1 must not fit uint64")
	}
	n, err := (IntegerStr[int8]{}).Decode(wire.String("-128"))
	if err != nil || n != math.MinInt8 {
		t.Fatalf("int8 -128: got %d, %v", n, err)
	}
	if _, err := (IntegerStr[int32]{}).Decode(wire.String(" 1")); err == nil {
		t.Fatal("surrounding whitespace must be rejected")
	}
}

func TestIntegerStr_Encode(t *testing.T) {
	v, err := (IntegerStr[int64]{}).Encode(-42)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if s, ok := v.Str(); !ok || s != "-42" {
		t.Fatalf("got %v", v)
	}
	v, _ = (IntegerStr[uint64]{}).Encode(math.MaxUint64)
	if s, _ := v.Str(); s != "18446744073709551615" {
		t.Fatalf("got %q", s)
	}
}

func TestIntegerOrStr(t *testing.T) {
	var c IntegerOrStr[uint64]
	for _, in := range []wire.Value{wire.String("123"), wire.Uint(123), wire.Integer(123)} {
		got, err := c.Decode(in)
		if err != nil {
			t.Fatalf("%v: %v", in, err)
		}
		if got != 123 {
			t.Fatalf("%v: got %d", in, got)
		}
	}

	_, err := c.Decode(wire.Float(1.5))
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("float: want ErrInvalidType, got %v", err)
	}
	_, err = c.Decode(wire.Int(-3))
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("negative into uint64: want ErrInvalidValue, got %v", err)
	}

	v, err := c.Encode(7)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if s, ok := v.Str(); !ok || s != "7" {
		t.Fatalf("IntegerOrStr must always emit a string, got %v", v)
	}
}

func TestIntegerOrStr_NumericFailureReportsText(t *testing.T) {
	_, err := (IntegerOrStr[uint8]{}).Decode(wire.Uint(300))
	if err == nil {
		t.Fatal("300 must not fit uint8")
	}
	if !strings.Contains(err.Error(), `string "300"`) {
		t.Fatalf("numeric input should be reported as its text: %v", err)
	}
}

func TestNumber(t *testing.T) {
	n, err := (Number[int16]{}).Decode(wire.Int(-300))
	if err != nil || n != -300 {
		t.Fatalf("got %d, %v", n, err)
	}
	if _, err := (Number[uint8]{}).Decode(wire.Uint(256)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
	if _, err := (Number[uint32]{}).Decode(wire.Int(-1)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
	if _, err := (Number[int64]{}).Decode(wire.Uint(math.MaxUint64)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
	if _, err := (Number[int]{}).Decode(wire.String("1")); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("want ErrInvalidType, got %v", err)
	}

	v, _ := (Number[int32]{}).Encode(5)
	if v.Kind() != wire.KindUint {
		t.Fatalf("non-negative signed values encode as unsigned, got %v", v.Kind())
	}
	v, _ = (Number[int32]{}).Encode(-5)
	if i, ok := v.Int(); !ok || i != -5 {
		t.Fatalf("got %v", v)
	}
}

func TestText(t *testing.T) {
	s, err := Text{}.Decode(wire.String("x"))
	if err != nil || s != "x" {
		t.Fatalf("got %q, %v", s, err)
	}
	if _, err := (Text{}).Decode(wire.Null()); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("want ErrInvalidType, got %v", err)
	}
}

func roundTrip[T Integer](t *testing.T, c Codec[T], vals ...T) {
	t.Helper()
	for _, n := range vals {
		v, err := c.Encode(n)
		if err != nil {
			t.Fatalf("Encode(%d): %v", n, err)
		}
		got, err := c.Decode(v)
		if err != nil {
			t.Fatalf("Decode(%v): %v", v, err)
		}
		if got != n {
			t.Fatalf("round trip %d -> %v -> %d", n, v, got)
		}
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	roundTrip[int8](t, IntegerStr[int8]{}, math.MinInt8, -1, 0, math.MaxInt8)
	roundTrip[uint16](t, IntegerOrStr[uint16]{}, 0, 123, math.MaxUint16)
	roundTrip[int32](t, IntegerOrStr[int32]{}, math.MinInt32, math.MaxInt32)
	roundTrip[int64](t, IntegerStr[int64]{}, math.MinInt64, math.MaxInt64)
	roundTrip[uint64](t, IntegerOrStr[uint64]{}, 0, math.MaxUint64)
	roundTrip[int](t, Number[int]{}, -7, 7)
	roundTrip[uint](t, Number[uint]{}, 0, math.MaxUint)
}
