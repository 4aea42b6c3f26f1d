package expr

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind reports whether a Value is an exact integer or a float.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
)

// Value is the result of an evaluation. Integers are exact and unbounded;
// floats are IEEE 754 doubles. Values are immutable.
type Value struct {
	kind Kind
	i    *big.Int
	f    float64
}

func Int(i int64) Value { return Value{kind: KindInt, i: big.NewInt(i)} }

// BigInt wraps i. The caller must not modify i afterwards.
func BigInt(i *big.Int) Value { return Value{kind: KindInt, i: i} }

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsInt() bool { return v.kind == KindInt }

func (v Value) IsFloat() bool { return v.kind == KindFloat }

// Float64 converts v to a float64. Integers outside the float64 range fail
// with ErrOverflow.
func (v Value) Float64() (float64, error) {
	switch v.kind {
	case KindInt:
		f, _ := new(big.Float).SetInt(v.i).Float64()
		if math.IsInf(f, 0) {
			return 0, overflowf("integer too large to convert to float")
		}
		return f, nil
	case KindFloat:
		return v.f, nil
	}
	return 0, unsupportedf("invalid value")
}

func (v Value) isZero() bool {
	switch v.kind {
	case KindInt:
		return v.i.Sign() == 0
	case KindFloat:
		return v.f == 0
	}
	return false
}

// String renders integers in plain decimal and floats in their shortest
// round-trip form, always with a decimal point or exponent: 5, 2.0, 0.5,
// 1e+16, inf.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return v.i.String()
	case KindFloat:
		return formatFloat(v.f)
	}
	return ""
}

// Fixed notation is used for decimal exponents in [-4, 16).
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	if i := strings.LastIndexByte(s, 'e'); i >= 0 {
		exp, err := strconv.Atoi(s[i+1:])
		if err == nil && (exp < -4 || exp >= 16) {
			return s
		}
	}

	s = strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
