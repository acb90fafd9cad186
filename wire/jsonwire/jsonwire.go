// Package jsonwire bridges JSON text and wire values.
//
// Numbers keep their literal text, so a decimal like 0.10 reaches codecs
// exactly as written instead of through a rounded float64.
package jsonwire

import (
	"bytes"
	"encoding/json"
	"iter"
	"math"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

// Parse converts one JSON value to a wire value. Arrays are streamed: their
// elements are parsed only as the consumer pulls them.
func Parse(data []byte) (wire.Value, error) {
	raw, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return wire.Value{}, errors.Wrap(err, "jsonwire: parse")
	}
	switch typ {
	case jsonparser.Null:
		return wire.Null(), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return wire.Value{}, errors.Wrap(err, "jsonwire: string")
		}
		return wire.String(s), nil
	case jsonparser.Number:
		return parseNumber(raw)
	case jsonparser.Array:
		return wire.Stream(elements(raw)), nil
	case jsonparser.Boolean:
		return wire.Unsupported("boolean " + string(raw)), nil
	case jsonparser.Object:
		return wire.Unsupported("map"), nil
	}
	return wire.Value{}, errors.Newf("jsonwire: unexpected token %q", raw)
}

func parseNumber(raw []byte) (wire.Value, error) {
	text := string(raw)
	if !bytes.ContainsAny(raw, ".eE") {
		if raw[0] == '-' {
			if i, err := strconv.ParseInt(text, 10, 64); err == nil {
				return wire.Integer(i), nil
			}
		} else if u, err := strconv.ParseUint(text, 10, 64); err == nil {
			return wire.Uint(u), nil
		}
		// integers wider than 64 bits fall through to float
	}
	f, err := jsonparser.ParseFloat(raw)
	if err != nil {
		return wire.Value{}, errors.Wrapf(err, "jsonwire: number %s", text)
	}
	return wire.FloatLiteral(f, text), nil
}

// elements walks a JSON array one element at a time. jsonparser.ArrayEach has
// no way to stop early, so the walk uses encoding/json's token stream and
// hands each raw element back to Parse.
func elements(arr []byte) iter.Seq2[wire.Value, error] {
	return func(yield func(wire.Value, error) bool) {
		dec := json.NewDecoder(bytes.NewReader(arr))
		dec.UseNumber()
		if _, err := dec.Token(); err != nil {
			yield(wire.Value{}, errors.Wrap(err, "jsonwire: array"))
			return
		}
		for dec.More() {
			var elem json.RawMessage
			if err := dec.Decode(&elem); err != nil {
				yield(wire.Value{}, errors.Wrap(err, "jsonwire: array element"))
				return
			}
			v, err := Parse(elem)
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Marshal renders v as JSON. Absent renders as null; hosts that can omit a
// field should check for it first.
func Marshal(v wire.Value) ([]byte, error) {
	return Append(nil, v)
}

// Append appends the JSON encoding of v to dst.
func Append(dst []byte, v wire.Value) ([]byte, error) {
	switch v.Kind() {
	case wire.KindAbsent, wire.KindNull:
		return append(dst, "null"...), nil
	case wire.KindString:
		s, _ := v.Str()
		b, err := json.Marshal(s)
		if err != nil {
			return dst, errors.Wrap(err, "jsonwire: string")
		}
		return append(dst, b...), nil
	case wire.KindUint:
		u, _ := v.Uint()
		return strconv.AppendUint(dst, u, 10), nil
	case wire.KindInt:
		i, _ := v.Int()
		return strconv.AppendInt(dst, i, 10), nil
	case wire.KindFloat:
		if lit, ok := v.Literal(); ok {
			return append(dst, lit...), nil
		}
		f, _ := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return dst, errors.Wrapf(wire.ErrUnencodable, "jsonwire: %v", f)
		}
		return strconv.AppendFloat(dst, f, 'f', -1, 64), nil
	case wire.KindSequence:
		dst = append(dst, '[')
		first := true
		for e, err := range v.Elements() {
			if err != nil {
				return dst, err
			}
			if !first {
				dst = append(dst, ',')
			}
			first = false
			if dst, err = Append(dst, e); err != nil {
				return dst, err
			}
		}
		return append(dst, ']'), nil
	}
	return dst, errors.Wrapf(wire.ErrUnencodable, "jsonwire: %s", v.Describe())
}
