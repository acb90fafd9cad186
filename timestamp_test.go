package fieldcodec

import (
	"errors"
	"testing"
	"time"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

func TestEpochSeconds(t *testing.T) {
	var c EpochSeconds

	got, err := c.Decode(wire.String("0"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Equal(time.Unix(0, 0)) || got.Location() != time.UTC {
		t.Fatalf("got %v, want the epoch in UTC", got)
	}

	got, err = c.Decode(wire.String("-86400"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if want := time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	v, err := c.Encode(time.Date(2023, 11, 14, 22, 13, 20, 999_000_000, time.UTC))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if s, _ := v.Str(); s != "1700000000" {
		t.Fatalf("got %q; sub-second precision must be dropped", s)
	}
}

func TestEpochMillis(t *testing.T) {
	var c EpochMillis

	got, err := c.Decode(wire.String("1700000000123"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if want := time.Date(2023, 11, 14, 22, 13, 20, 123_000_000, time.UTC); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	v, _ := c.Encode(got)
	if s, _ := v.Str(); s != "1700000000123" {
		t.Fatalf("got %q", s)
	}
}

func TestEpoch_Failures(t *testing.T) {
	tests := []struct {
		name string
		c    Codec[time.Time]
		in   wire.Value
		kind error
	}{
		{"number", EpochSeconds{}, wire.Uint(0), ErrInvalidType},
		{"null", EpochMillis{}, wire.Null(), ErrInvalidType},
		{"text", EpochSeconds{}, wire.String("yesterday"), ErrInvalidValue},
		{"fraction", EpochSeconds{}, wire.String("1.5"), ErrInvalidValue},
		{"beyond int64", EpochMillis{}, wire.String("99999999999999999999"), ErrInvalidValue},
		{"after max", EpochSeconds{}, wire.String("9223372036854775807"), ErrOutOfRange},
		{"after max is invalid", EpochSeconds{}, wire.String("9223372036854775807"), ErrInvalidValue},
		{"before min", EpochMillis{}, wire.String("-9223372036854775808"), ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.c.Decode(tt.in)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("want %v, got %v", tt.kind, err)
			}
		})
	}
}

func TestEpoch_RangeEdges(t *testing.T) {
	got, err := EpochSeconds{}.Decode(wire.String("8210266876799"))
	if err != nil {
		t.Fatalf("max instant: %v", err)
	}
	if got.Year() != 262142 {
		t.Fatalf("got year %d", got.Year())
	}
	if _, err := (EpochSeconds{}).Decode(wire.String("8210266876800")); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("one past max: want ErrOutOfRange, got %v", err)
	}
}
