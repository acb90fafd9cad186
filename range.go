package fieldcodec

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

// Range is the half-open interval [Start, End).
type Range[T any] struct {
	Start T
	End   T
}

// RangeOf carries a Range as the two-element sequence [start, end], each
// endpoint through C.
type RangeOf[T any, C Codec[T]] struct{}

func (RangeOf[T, C]) Expecting() string {
	var c C
	return "pair of " + c.Expecting()
}

func (r RangeOf[T, C]) Decode(v wire.Value) (Range[T], error) {
	if v.Kind() != wire.KindSequence {
		return Range[T]{}, invalidType(v, r.Expecting())
	}
	var (
		c    C
		ends [2]T
		n    int
	)
	for e, err := range v.Elements() {
		if err != nil {
			return Range[T]{}, errors.Wrapf(err, "element %d", n)
		}
		if n == len(ends) {
			return Range[T]{}, invalidLength("more than 2 elements", r.Expecting())
		}
		t, err := c.Decode(e)
		if err != nil {
			return Range[T]{}, errors.Wrapf(err, "element %d", n)
		}
		ends[n] = t
		n++
	}
	if n != len(ends) {
		return Range[T]{}, invalidLength(fmt.Sprintf("%d elements", n), r.Expecting())
	}
	return Range[T]{Start: ends[0], End: ends[1]}, nil
}

func (RangeOf[T, C]) Encode(rg Range[T]) (wire.Value, error) {
	var c C
	start, err := c.Encode(rg.Start)
	if err != nil {
		return wire.Value{}, errors.Wrap(err, "range start")
	}
	end, err := c.Encode(rg.End)
	if err != nil {
		return wire.Value{}, errors.Wrap(err, "range end")
	}
	return wire.Sequence(start, end), nil
}
