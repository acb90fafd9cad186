package fieldcodec

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/unkn0wn-root/fieldcodec/wire"
)

// RatioInt is the numerator/denominator type of a Ratio.
type RatioInt interface {
	int64 | uint64
}

// Ratio is an exact fraction Numer/Denom. Ratios produced by ExactRatio have
// Denom = 10^d, where d is the number of decimal places in the source text,
// and are never reduced: 0.10 decodes to 10/100.
type Ratio[N RatioInt] struct {
	Numer N
	Denom N
}

// Float64 returns the nearest float64. ok is false when Denom is zero.
func (r Ratio[N]) Float64() (f float64, ok bool) {
	if r.Denom == 0 {
		return 0, false
	}
	f, _ = new(big.Rat).SetFrac(bigInt(r.Numer), bigInt(r.Denom)).Float64()
	return f, true
}

func (r Ratio[N]) String() string {
	return formatInteger(r.Numer) + "/" + formatInteger(r.Denom)
}

func bigInt[N RatioInt](n N) *big.Int {
	if signed[N]() {
		return big.NewInt(int64(n))
	}
	return new(big.Int).SetUint64(uint64(n))
}

// ExactRatio decodes a decimal number without going through binary floating
// point: -0.1372897 becomes -1372897/10000000 exactly.
//
// Decode reads the literal text when the bridge kept it (JSON, YAML) and the
// shortest round-trip formatting of the float otherwise. Exponent notation,
// NaN and infinities do not parse. Encode is lossy: it emits the nearest
// float64.
type ExactRatio[N RatioInt] struct{}

func (ExactRatio[N]) Expecting() string {
	if signed[N]() {
		return "i64 ratio"
	}
	return "u64 ratio"
}

func (c ExactRatio[N]) Decode(v wire.Value) (Ratio[N], error) {
	text, ok := decimalText(v)
	if !ok {
		return Ratio[N]{}, invalidType(v, c.Expecting())
	}

	digits, places := text, 0
	if i := strings.IndexByte(text, '.'); i >= 0 {
		places = len(text) - i - 1
		digits = text[:i] + text[i+1:]
	}
	if places > maxPlaces[N]() {
		return Ratio[N]{}, outOfRange(v, c.Expecting())
	}

	numer, err := parseInteger[N](digits)
	if err != nil {
		return Ratio[N]{}, invalidValue(v, c.Expecting(), err)
	}
	return Ratio[N]{Numer: numer, Denom: pow10[N](places)}, nil
}

func (c ExactRatio[N]) Encode(r Ratio[N]) (wire.Value, error) {
	f, ok := r.Float64()
	if !ok {
		return wire.Value{}, unrepresentable("%s %s cannot be represented as f64", c.Expecting(), r)
	}
	return wire.Float(f), nil
}

func decimalText(v wire.Value) (string, bool) {
	switch v.Kind() {
	case wire.KindFloat:
		if lit, ok := v.Literal(); ok {
			return lit, true
		}
		f, _ := v.Float()
		return strconv.FormatFloat(f, 'f', -1, 64), true
	case wire.KindUint:
		u, _ := v.Uint()
		return strconv.FormatUint(u, 10), true
	case wire.KindInt:
		i, _ := v.Int()
		return strconv.FormatInt(i, 10), true
	}
	return "", false
}

// maxPlaces is the largest d with 10^d representable in N.
func maxPlaces[N RatioInt]() int {
	if signed[N]() {
		return 18
	}
	return 19
}

func pow10[N RatioInt](d int) N {
	p := N(1)
	for range d {
		p *= 10
	}
	return p
}
