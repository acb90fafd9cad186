package codec

import (
	"github.com/cockroachdb/errors"

	"github.com/unkn0wn-root/fieldcodec"
)

// Observed logs the failures of Inner. Successful calls are silent.
//
// Decode failures are logged at Warn and encode failures at Error, with
// fields codec (Name, default "codec") and err, plus bytes on decode. When the
// failure is a field rejection, kind and got describe it.
type Observed[V any] struct {
	Inner  Codec[V]
	Name   string
	Logger fieldcodec.Logger // nil = NopLogger
}

func (o Observed[V]) Encode(v V) ([]byte, error) {
	b, err := o.Inner.Encode(v)
	if err != nil {
		o.logger().Error("fieldcodec.encode_failed", o.fields(err))
	}
	return b, err
}

func (o Observed[V]) Decode(b []byte) (V, error) {
	v, err := o.Inner.Decode(b)
	if err != nil {
		f := o.fields(err)
		f["bytes"] = len(b)
		o.logger().Warn("fieldcodec.decode_failed", f)
	}
	return v, err
}

func (o Observed[V]) logger() fieldcodec.Logger {
	if o.Logger == nil {
		return fieldcodec.NopLogger{}
	}
	return o.Logger
}

func (o Observed[V]) fields(err error) fieldcodec.Fields {
	f := fieldcodec.Fields{
		"codec": coalesce(o.Name, "codec"),
		"err":   err,
	}
	var de *fieldcodec.DecodeError
	if errors.As(err, &de) {
		f["kind"] = de.Kind.Error()
		f["got"] = de.Got
	}
	return f
}
