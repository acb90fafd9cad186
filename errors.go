package fieldcodec

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

// Failure categories. Decode errors match one of the first four with
// errors.Is; encode errors match ErrUnrepresentable.
var (
	// ErrInvalidType: the wire shape is not one the codec accepts.
	ErrInvalidType = errors.New("invalid type")
	// ErrInvalidValue: the shape is right but the text or number does not parse.
	ErrInvalidValue = errors.New("invalid value")
	// ErrOutOfRange: the number parses but does not fit the target width or
	// the decimal has too many places. Out-of-range timestamps are
	// ErrInvalidValue wrapping ErrOutOfRange, so both match.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidLength: a fixed-arity sequence has the wrong element count.
	ErrInvalidLength = errors.New("invalid length")
	// ErrUnrepresentable: a value has no wire form.
	ErrUnrepresentable = errors.New("unrepresentable value")
)

// DecodeError reports a single rejected wire value.
type DecodeError struct {
	Kind     error  // one of the Err* categories
	Got      string // description of the offending value, e.g. `string "abc"`
	Expected string // the codec's Expecting(); empty when Err carries the message
	Err      error  // underlying parser error, if any
}

func (e *DecodeError) Error() string {
	if e.Expected == "" && e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s, expected %s", e.Kind, e.Got, e.Expected)
}

func (e *DecodeError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func invalidType(got wire.Value, expected string) error {
	return &DecodeError{Kind: ErrInvalidType, Got: got.Describe(), Expected: expected}
}

func invalidValue(got wire.Value, expected string, cause error) error {
	return &DecodeError{Kind: ErrInvalidValue, Got: got.Describe(), Expected: expected, Err: cause}
}

func outOfRange(got wire.Value, expected string) error {
	return &DecodeError{Kind: ErrOutOfRange, Got: got.Describe(), Expected: expected}
}

func invalidLength(got, expected string) error {
	return &DecodeError{Kind: ErrInvalidLength, Got: got, Expected: expected}
}

func unrepresentable(format string, args ...any) error {
	return errors.Wrapf(ErrUnrepresentable, format, args...)
}
