package fieldcodec

import "github.com/unkn0wn-root/fieldcodec/wire"

// sentinel is the only negative number SentinelOptional accepts.
const sentinel = -1

// SentinelOptional is an optional unsigned integer that uses -1 instead of
// null for absence: 123 <-> &123, -1 <-> nil. Any other negative number is
// invalid.
type SentinelOptional[T Unsigned] struct{}

func (SentinelOptional[T]) Expecting() string { return "optional unsigned integer" }

func (c SentinelOptional[T]) Decode(v wire.Value) (*T, error) {
	var u uint64
	switch v.Kind() {
	case wire.KindUint:
		u, _ = v.Uint()
	case wire.KindInt:
		i, _ := v.Int()
		if i == sentinel {
			return nil, nil
		}
		if i < 0 {
			return nil, invalidValue(v, c.Expecting(), nil)
		}
		u = uint64(i)
	default:
		return nil, invalidType(v, c.Expecting())
	}
	n, ok := fromUint[T](u)
	if !ok {
		return nil, outOfRange(v, c.Expecting())
	}
	return &n, nil
}

func (SentinelOptional[T]) Encode(p *T) (wire.Value, error) {
	if p == nil {
		return wire.Int(sentinel), nil
	}
	return wire.Uint(uint64(*p)), nil
}
