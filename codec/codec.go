// Package codec turns whole records into bytes. The records' fields carry
// their own wire shape through fieldcodec.Field; these codecs pick the
// container format.
package codec

// Codec encodes/decodes records V to and from []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
