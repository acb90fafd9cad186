// Package protowire bridges google.protobuf.Value (structpb) and wire values.
//
// structpb carries every number as a double. Integral doubles inside the
// exactly representable range come back as integers; everything else is a
// float.
package protowire

import (
	"math"

	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

// maxExact is the largest magnitude up to which every integer is an exact double.
const maxExact = 1 << 53

// FromProto converts a structpb value. A nil value is absent.
func FromProto(pv *structpb.Value) wire.Value {
	if pv == nil || pv.GetKind() == nil {
		return wire.Absent()
	}
	switch k := pv.GetKind().(type) {
	case *structpb.Value_NullValue:
		return wire.Null()
	case *structpb.Value_StringValue:
		return wire.String(k.StringValue)
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		if f == math.Trunc(f) && math.Abs(f) <= maxExact {
			return wire.Integer(int64(f))
		}
		return wire.Float(f)
	case *structpb.Value_ListValue:
		list := k.ListValue.GetValues()
		return wire.Stream(func(yield func(wire.Value, error) bool) {
			for _, e := range list {
				if !yield(FromProto(e), nil) {
					return
				}
			}
		})
	case *structpb.Value_BoolValue:
		if k.BoolValue {
			return wire.Unsupported("boolean true")
		}
		return wire.Unsupported("boolean false")
	case *structpb.Value_StructValue:
		return wire.Unsupported("map")
	}
	return wire.Unsupported("protobuf value")
}

// ToProto converts v. Integers that a double cannot hold exactly are
// rejected rather than rounded.
func ToProto(v wire.Value) (*structpb.Value, error) {
	switch v.Kind() {
	case wire.KindAbsent, wire.KindNull:
		return structpb.NewNullValue(), nil
	case wire.KindString:
		s, _ := v.Str()
		return structpb.NewStringValue(s), nil
	case wire.KindUint:
		u, _ := v.Uint()
		if u > maxExact {
			return nil, errors.Wrapf(wire.ErrUnencodable, "protowire: integer %d exceeds double precision", u)
		}
		return structpb.NewNumberValue(float64(u)), nil
	case wire.KindInt:
		i, _ := v.Int()
		if i < -maxExact {
			return nil, errors.Wrapf(wire.ErrUnencodable, "protowire: integer %d exceeds double precision", i)
		}
		return structpb.NewNumberValue(float64(i)), nil
	case wire.KindFloat:
		f, _ := v.Float()
		return structpb.NewNumberValue(f), nil
	case wire.KindSequence:
		list := &structpb.ListValue{}
		for e, err := range v.Elements() {
			if err != nil {
				return nil, err
			}
			pe, err := ToProto(e)
			if err != nil {
				return nil, err
			}
			list.Values = append(list.Values, pe)
		}
		return structpb.NewListValue(list), nil
	}
	return nil, errors.Wrapf(wire.ErrUnencodable, "protowire: %s", v.Describe())
}
