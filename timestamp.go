package fieldcodec

import (
	"strconv"
	"time"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

// Instants outside this range are rejected on decode as an invalid value
// caused by ErrOutOfRange. It matches the proleptic Gregorian range most date
// libraries agree on.
var (
	minInstant = time.Date(-262143, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxInstant = time.Date(262142, time.December, 31, 23, 59, 59, 999_999_999, time.UTC)
)

// EpochSeconds carries a UTC time as a string of seconds since the Unix
// epoch: "1700000000". Sub-second precision is dropped on encode.
type EpochSeconds struct{}

func (EpochSeconds) Expecting() string { return "epoch second string" }

func (c EpochSeconds) Decode(v wire.Value) (time.Time, error) {
	sec, err := epochOffset(v, c.Expecting())
	if err != nil {
		return time.Time{}, err
	}
	if sec < minInstant.Unix() || sec > maxInstant.Unix() {
		return time.Time{}, invalidValue(v, c.Expecting(), ErrOutOfRange)
	}
	return time.Unix(sec, 0).UTC(), nil
}

func (EpochSeconds) Encode(t time.Time) (wire.Value, error) {
	return wire.String(strconv.FormatInt(t.Unix(), 10)), nil
}

// EpochMillis carries a UTC time as a string of milliseconds since the Unix
// epoch: "1700000000123".
type EpochMillis struct{}

func (EpochMillis) Expecting() string { return "epoch millisecond string" }

func (c EpochMillis) Decode(v wire.Value) (time.Time, error) {
	ms, err := epochOffset(v, c.Expecting())
	if err != nil {
		return time.Time{}, err
	}
	if ms < minInstant.UnixMilli() || ms > maxInstant.UnixMilli() {
		return time.Time{}, invalidValue(v, c.Expecting(), ErrOutOfRange)
	}
	return time.UnixMilli(ms).UTC(), nil
}

func (EpochMillis) Encode(t time.Time) (wire.Value, error) {
	return wire.String(strconv.FormatInt(t.UnixMilli(), 10)), nil
}

func epochOffset(v wire.Value, expected string) (int64, error) {
	s, ok := v.Str()
	if !ok {
		return 0, invalidType(v, expected)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, invalidValue(v, expected, err)
	}
	return n, nil
}
