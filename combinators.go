package fieldcodec

import (
	"github.com/cockroachdb/errors"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

// Optional lifts C to *T: null or absent decodes to nil without consulting C,
// anything else is C's business. nil encodes as null, which Field.IsZero
// reports so `omitzero` can drop the field instead.
type Optional[T any, C Codec[T]] struct{}

func (Optional[T, C]) Expecting() string {
	var c C
	return "optional " + c.Expecting()
}

func (Optional[T, C]) Decode(v wire.Value) (*T, error) {
	if v.IsNone() {
		return nil, nil
	}
	var c C
	t, err := c.Decode(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (Optional[T, C]) Encode(p *T) (wire.Value, error) {
	if p == nil {
		return wire.Null(), nil
	}
	var c C
	return c.Encode(*p)
}

// Sequence lifts C to []T over a wire sequence.
//
// Decoding stops at the first element that fails, whether the bridge could
// not produce it or C rejected it; no later element is read and no partial
// slice is returned. The error names the element index.
type Sequence[T any, C Codec[T]] struct{}

func (Sequence[T, C]) Expecting() string {
	var c C
	return c.Expecting() + " array"
}

func (s Sequence[T, C]) Decode(v wire.Value) ([]T, error) {
	if v.Kind() != wire.KindSequence {
		return nil, invalidType(v, s.Expecting())
	}
	var c C
	out := []T{}
	for e, err := range v.Elements() {
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", len(out))
		}
		t, err := c.Decode(e)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", len(out))
		}
		out = append(out, t)
	}
	return out, nil
}

// Encode emits the elements in order. A nil slice is an empty sequence.
func (Sequence[T, C]) Encode(ts []T) (wire.Value, error) {
	var c C
	out := make([]wire.Value, len(ts))
	for i, t := range ts {
		e, err := c.Encode(t)
		if err != nil {
			return wire.Value{}, errors.Wrapf(err, "element %d", i)
		}
		out[i] = e
	}
	return wire.Sequence(out...), nil
}
