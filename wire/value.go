// Package wire defines the format-neutral scalar unit exchanged between field
// codecs and a host serialization format.
//
// A Value is a small tagged union. Host bridges (jsonwire, cborwire,
// msgpackwire, yamlwire, protowire) translate their native representation to
// and from Values; codecs only ever inspect or build single Values.
package wire

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindAbsent is the zero Kind: the field was not present at all.
	KindAbsent Kind = iota
	KindNull
	KindString
	KindUint
	KindInt
	KindFloat
	KindSequence
	// KindUnsupported covers host shapes no codec accepts (booleans, maps,
	// byte strings). It only exists so the shape can be reported.
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindUint:
		return "unsigned integer"
	case KindInt:
		return "integer"
	case KindFloat:
		return "floating point"
	case KindSequence:
		return "sequence"
	case KindUnsupported:
		return "unsupported"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is an immutable wire value. The zero Value is absent.
type Value struct {
	kind Kind
	s    string // string payload, float literal text, or unsupported description
	u    uint64
	i    int64
	f    float64
	seq  []Value
	src  iter.Seq2[Value, error] // streamed sequence; nil when seq is materialized
}

func Absent() Value { return Value{} }

func Null() Value { return Value{kind: KindNull} }

func String(s string) Value { return Value{kind: KindString, s: s} }

func Uint(u uint64) Value { return Value{kind: KindUint, u: u} }

func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Integer classifies a signed integer the way the bridges do: non-negative
// values are KindUint, negative values KindInt.
func Integer(i int64) Value {
	if i >= 0 {
		return Uint(uint64(i))
	}
	return Int(i)
}

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// FloatLiteral is a float that remembers the exact text it was parsed from.
// Codecs that need the decimal digits (ExactRatio) read Literal instead of
// reformatting the already rounded float.
func FloatLiteral(f float64, text string) Value {
	return Value{kind: KindFloat, f: f, s: text}
}

// Sequence builds a materialized sequence. The slice is not copied.
func Sequence(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindSequence, seq: elems}
}

// Stream builds a sequence whose elements are produced on demand. src must
// stop after yielding a non-nil error.
func Stream(src iter.Seq2[Value, error]) Value {
	return Value{kind: KindSequence, src: src}
}

// Unsupported wraps a host shape that has no wire equivalent, e.g. "boolean true".
func Unsupported(desc string) Value { return Value{kind: KindUnsupported, s: desc} }

func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether v is null or absent.
func (v Value) IsNone() bool { return v.kind == KindNull || v.kind == KindAbsent }

func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

func (v Value) Uint() (uint64, bool) {
	if v.kind != KindUint {
		return 0, false
	}
	return v.u, true
}

func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// Literal returns the source text of a float, if the bridge kept it.
func (v Value) Literal() (string, bool) {
	if v.kind != KindFloat || v.s == "" {
		return "", false
	}
	return v.s, true
}

// Elements iterates the elements of a sequence in order. Iteration over a
// non-sequence yields nothing. A streamed source may yield an error, after
// which iteration ends.
func (v Value) Elements() iter.Seq2[Value, error] {
	if v.kind != KindSequence {
		return func(func(Value, error) bool) {}
	}
	if v.src != nil {
		return v.src
	}
	return func(yield func(Value, error) bool) {
		for _, e := range v.seq {
			if !yield(e, nil) {
				return
			}
		}
	}
}

// Collect drains a sequence into a slice, stopping at the first element error.
func (v Value) Collect() ([]Value, error) {
	if v.kind != KindSequence {
		return nil, errors.Newf("wire: collect on %s", v.kind)
	}
	if v.src == nil {
		return v.seq, nil
	}
	var out []Value
	for e, err := range v.src {
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Describe renders v for "invalid type/value" messages, e.g. `string "abc"`.
func (v Value) Describe() string {
	switch v.kind {
	case KindAbsent:
		return "absent value"
	case KindNull:
		return "null"
	case KindString:
		return "string " + strconv.Quote(v.s)
	case KindUint:
		return "integer " + strconv.FormatUint(v.u, 10)
	case KindInt:
		return "integer " + strconv.FormatInt(v.i, 10)
	case KindFloat:
		if v.s != "" {
			return "floating point " + v.s
		}
		return "floating point " + strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindSequence:
		return "sequence"
	case KindUnsupported:
		return v.s
	}
	return v.kind.String()
}

func (v Value) String() string { return v.Describe() }
