package codec

import (
	"encoding/json"

	"github.com/tidwall/jsonc"
)

// JSON is a Codec over encoding/json. The zero value is ready to use.
//
// With AllowComments set, Decode first strips // and /* */ comments and
// trailing commas (tidwall/jsonc), so hand-written fixtures and config
// documents decode as-is. Encode always emits plain JSON.
type JSON[V any] struct {
	AllowComments bool
}

var _ Codec[struct{}] = JSON[struct{}]{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (c JSON[V]) Decode(b []byte) (V, error) {
	if c.AllowComments {
		b = jsonc.ToJSON(b)
	}
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
