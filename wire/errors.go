package wire

import "github.com/cockroachdb/errors"

// ErrUnencodable is returned by bridges asked to emit a Value their format
// cannot carry (a non-finite float in JSON, an unsupported kind anywhere).
var ErrUnencodable = errors.New("wire: value cannot be encoded")
