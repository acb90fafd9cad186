// Package fieldcodec implements bidirectional codecs for single record fields.
//
// A codec converts a typed Go value to and from a wire.Value (string,
// integer, float, sequence, null, absent) under a fixed format contract.
// Host formats reach the codecs through the bridges under wire/ and through
// Field, which implements the JSON, CBOR, MessagePack and YAML marshaling
// interfaces for one field.
//
// Base codecs:
//   - IntegerStr: integer carried as a decimal string.
//   - IntegerOrStr: accepts a string or a bare integer, always emits a string.
//   - Represented: any TextMarshaler/TextUnmarshaler type as a string.
//   - ExactRatio: decimal number as an exact numerator / 10^d fraction.
//   - EpochSeconds, EpochMillis: UTC time as an epoch offset string.
//   - SentinelOptional: unsigned integer where -1 means absent.
//   - Number, Text: plain integers and strings.
//
// Combinators lift any base codec: Optional (null/absent => nil),
// Sequence (fail-fast element decoding), RangeOf (two-element [start, end)).
//
// Usage:
//
//	type Order struct {
//		ID     fieldcodec.Field[uint64, fieldcodec.IntegerStr[uint64]]                       `json:"id"`
//		Price  fieldcodec.Field[fieldcodec.Ratio[int64], fieldcodec.ExactRatio[int64]]      `json:"price"`
//		Filled fieldcodec.Field[*time.Time, fieldcodec.Optional[time.Time, fieldcodec.EpochMillis]] `json:"filled,omitzero"`
//	}
package fieldcodec
