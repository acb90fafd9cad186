package fieldcodec

import (
	"golang.org/x/exp/constraints"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

// Codec converts one field value to and from a wire value.
//
// Implementations are zero-size struct types with no state, so they can be
// named as type arguments (Field, Optional, Sequence, RangeOf instantiate
// them through their zero value) and used from any number of goroutines.
type Codec[T any] interface {
	// Expecting names the accepted wire shape in error messages,
	// e.g. "integer string".
	Expecting() string
	Decode(wire.Value) (T, error)
	Encode(T) (wire.Value, error)
}

// Integer is any signed or unsigned integer type.
type Integer = constraints.Integer

// Unsigned is any unsigned integer type.
type Unsigned = constraints.Unsigned
