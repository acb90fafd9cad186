package codec

import (
	"google.golang.org/protobuf/proto"
)

// Protobuf is a Codec for protobuf messages. Records built from field codecs
// travel as *structpb.Struct (see fieldcodec.EncodeProto).
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *structpb.Struct { return &structpb.Struct{} })
	// Deterministic orders map entries so equal messages encode to equal bytes.
	Deterministic bool
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: c.Deterministic}.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
