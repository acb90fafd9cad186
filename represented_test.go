package fieldcodec

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/google/uuid"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

func TestRepresented_Addr(t *testing.T) {
	var c Represented[netip.Addr, *netip.Addr]

	got, err := c.Decode(wire.String("192.0.2.1"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != netip.MustParseAddr("192.0.2.1") {
		t.Fatalf("got %v", got)
	}

	v, err := c.Encode(netip.MustParseAddr("2001:db8::1"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if s, _ := v.Str(); s != "2001:db8::1" {
		t.Fatalf("got %q", s)
	}
}

func TestRepresented_ParserMessage(t *testing.T) {
	var c Represented[netip.Addr, *netip.Addr]

	_, err := c.Decode(wire.String("not-an-ip"))
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("want ErrInvalidValue, got %v", err)
	}
	_, parseErr := netip.ParseAddr("not-an-ip")
	if err.Error() != parseErr.Error() {
		t.Fatalf("message should be the parser's own:\n got %q\nwant %q", err.Error(), parseErr.Error())
	}

	if _, err := c.Decode(wire.Uint(1)); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("want ErrInvalidType, got %v", err)
	}
}

func TestRepresented_UUID(t *testing.T) {
	var c Represented[uuid.UUID, *uuid.UUID]

	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	v, err := c.Encode(id)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := c.Decode(v)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back != id {
		t.Fatalf("got %v, want %v", back, id)
	}

	if _, err := c.Decode(wire.String("6ba7b810")); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("want ErrInvalidValue, got %v", err)
	}
}

type opaque struct{}

func (*opaque) MarshalText() ([]byte, error) { return nil, errors.New("no text form") }
func (*opaque) UnmarshalText([]byte) error   { return nil }

func TestRepresented_EncodeFailure(t *testing.T) {
	_, err := Represented[opaque, *opaque]{}.Encode(opaque{})
	if !errors.Is(err, ErrUnrepresentable) {
		t.Fatalf("want ErrUnrepresentable, got %v", err)
	}
}
