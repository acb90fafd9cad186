package fieldcodec

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

func TestRangeOf(t *testing.T) {
	var c RangeOf[int64, Number[int64]]

	got, err := c.Decode(wire.Sequence(wire.Integer(-5), wire.Integer(10)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(Range[int64]{Start: -5, End: 10}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	v, err := c.Encode(got)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	elems, _ := v.Collect()
	if len(elems) != 2 || elems[0].String() != "integer -5" || elems[1].String() != "integer 10" {
		t.Fatalf("got %v", elems)
	}
}

func TestRangeOf_Length(t *testing.T) {
	var c RangeOf[int64, Number[int64]]

	_, err := c.Decode(wire.Sequence(wire.Integer(1)))
	if !errors.Is(err, ErrInvalidLength) || !strings.Contains(err.Error(), "1 elements") {
		t.Fatalf("short: got %v", err)
	}

	pulled := 0
	long := wire.Stream(func(yield func(wire.Value, error) bool) {
		for i := range 10 {
			pulled++
			if !yield(wire.Integer(int64(i)), nil) {
				return
			}
		}
	})
	_, err = c.Decode(long)
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("long: got %v", err)
	}
	if pulled != 3 {
		t.Fatalf("pulled %d elements, want 3", pulled)
	}

	if _, err := c.Decode(wire.Integer(1)); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("scalar: got %v", err)
	}
	if c.Expecting() != "pair of integer" {
		t.Fatalf("Expecting = %q", c.Expecting())
	}
}

func TestRangeOf_ElementError(t *testing.T) {
	_, err := RangeOf[uint8, Number[uint8]]{}.Decode(wire.Sequence(wire.Uint(1), wire.Uint(300)))
	if !errors.Is(err, ErrOutOfRange) || !strings.Contains(err.Error(), "element 1") {
		t.Fatalf("got %v", err)
	}
}
