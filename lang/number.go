package lang

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric value that is either an integer or a floating-point
// number.
//
// Arithmetic on two integers yields an integer unless the result overflows
// int64, in which case it is computed in float64. Any float operand promotes
// the result to float.
type Number struct {
	i     int64
	f     float64
	float bool
}

// Int returns an integer Number.
func Int(i int64) Number { return Number{i: i} }

// Float returns a floating-point Number.
func Float(f float64) Number { return Number{f: f, float: true} }

// IsInt reports whether n holds an integer.
func (n Number) IsInt() bool { return !n.float }

// Int64 returns the integer value of n, truncating a float toward zero.
func (n Number) Int64() int64 {
	if n.float {
		return int64(n.f)
	}

	return n.i
}

// Float64 returns n as a float64.
func (n Number) Float64() float64 {
	if n.float {
		return n.f
	}

	return float64(n.i)
}

// Any returns n as an int64 or float64.
func (n Number) Any() any {
	if n.float {
		return n.f
	}

	return n.i
}

// LogValue implements slog.LogValuer.
func (n Number) LogValue() slog.Value {
	if n.float {
		return slog.Float64Value(n.f)
	}

	return slog.Int64Value(n.i)
}

// String returns the textual form of n.
//
// Integers are printed in decimal. Floats are printed with the fewest digits
// that round-trip, always with a fractional part or exponent, using exponent
// form when the magnitude is below 1e-4 or at least 1e16.
func (n Number) String() string {
	if !n.float {
		return strconv.FormatInt(n.i, 10)
	}

	return formatFloat(n.f)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}

		return "0.0"
	}

	if abs := math.Abs(f); abs < 1e-4 || abs >= 1e16 {
		// Shortest digits, exponent with at least two digits: 1e+16, 2.5e-05.
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// add returns a + b.
func add(a, b Number) Number {
	if a.float || b.float {
		return Float(a.Float64() + b.Float64())
	}

	s := a.i + b.i
	// Overflow iff both operands have the same sign and the result differs.
	if (a.i >= 0) == (b.i >= 0) && (s >= 0) != (a.i >= 0) {
		return Float(float64(a.i) + float64(b.i))
	}

	return Int(s)
}

// sub returns a - b.
func sub(a, b Number) Number {
	if a.float || b.float {
		return Float(a.Float64() - b.Float64())
	}

	d := a.i - b.i
	if (a.i >= 0) != (b.i >= 0) && (d >= 0) != (a.i >= 0) {
		return Float(float64(a.i) - float64(b.i))
	}

	return Int(d)
}

// mul returns a * b.
func mul(a, b Number) Number {
	if a.float || b.float {
		return Float(a.Float64() * b.Float64())
	}

	if a.i == 0 || b.i == 0 {
		return Int(0)
	}

	p := a.i * b.i
	if p/b.i != a.i || (a.i == -1 && b.i == math.MinInt64) ||
		(b.i == -1 && a.i == math.MinInt64) {
		return Float(float64(a.i) * float64(b.i))
	}

	return Int(p)
}

// absNum returns |a|.
func absNum(a Number) Number {
	if a.float {
		return Float(math.Abs(a.f))
	}

	if a.i == math.MinInt64 {
		return Float(-float64(a.i))
	}

	if a.i < 0 {
		return Int(-a.i)
	}

	return a
}

// pow returns base raised to exp.
//
// Integer operands with a non-negative exponent use exact integer
// exponentiation; everything else uses [math.Pow].
func pow(base, exp Number) Number {
	if base.float || exp.float || exp.i < 0 {
		return Float(math.Pow(base.Float64(), exp.Float64()))
	}

	result := Int(1)
	b := base

	for e := exp.i; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = mul(result, b)
			if result.float {
				return Float(math.Pow(base.Float64(), exp.Float64()))
			}
		}

		if e > 1 {
			b = mul(b, b)
			if b.float {
				return Float(math.Pow(base.Float64(), exp.Float64()))
			}
		}
	}

	return result
}

// ParseNumber parses a single numeric literal: an optionally signed integer
// ("42", "-7") or an optionally signed float of the form digits.digits
// ("3.14").
func ParseNumber(s string) (Number, error) {
	toks := Lex(s)
	if len(toks) != 1 {
		return Number{}, ErrUnknownToken.With(slog.String("token", s))
	}

	return toks[0].number()
}

// numberFromValue converts a document value to a Number.
func numberFromValue(v any) (Number, bool) {
	switch n := v.(type) {
	case int64:
		return Int(n), true
	case int:
		return Int(int64(n)), true
	case int32:
		return Int(int64(n)), true
	case float64:
		return Float(n), true
	case float32:
		return Float(float64(n)), true
	case Number:
		return n, true
	default:
		return Number{}, false
	}
}
