package codec

// Bytes is an identity codec for records that are already encoded, e.g. a
// payload forwarded unchanged. Typically wrapped in LimitCodec or Observed.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String is a trivial codec for Go string values, assumed UTF-8 and not
// validated.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
