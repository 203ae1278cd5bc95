package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies one of the numeric types exercised by generated programs.
type Kind string

const (
	KindI32 Kind = "i32"
	KindU32 Kind = "u32"
	KindI64 Kind = "i64"
	KindU64 Kind = "u64"
	KindF64 Kind = "f64"
)

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindI32, KindU32, KindI64, KindU64, KindF64}
}

// ParseKind validates a kind spelled as text (e.g. from a fixture catalog).
func ParseKind(raw string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(raw))); k {
	case KindI32, KindU32, KindI64, KindU64, KindF64:
		return k, nil
	default:
		return "", fmt.Errorf("numeric: unknown kind %q", raw)
	}
}

// IsFloat reports whether the kind is a floating point type.
func (k Kind) IsFloat() bool { return k == KindF64 }

// IsSigned reports whether the kind is a signed integer type.
func (k Kind) IsSigned() bool { return k == KindI32 || k == KindI64 }

// IsUnsigned reports whether the kind is an unsigned integer type.
func (k Kind) IsUnsigned() bool { return k == KindU32 || k == KindU64 }

// Bits returns the width of the kind in bits.
func (k Kind) Bits() int {
	switch k {
	case KindI32, KindU32:
		return 32
	default:
		return 64
	}
}

func (k Kind) String() string { return string(k) }

// Value is a tagged variant holding exactly one numeric representation. It
// replaces overlapping storage schemes (unions, byte reinterpretation) with an
// explicit discriminant so callers can never read a representation that was
// not written.
type Value struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
}

// I32 wraps a signed 32-bit value.
func I32(v int32) Value { return Value{kind: KindI32, i: int64(v)} }

// U32 wraps an unsigned 32-bit value.
func U32(v uint32) Value { return Value{kind: KindU32, u: uint64(v)} }

// I64 wraps a signed 64-bit value.
func I64(v int64) Value { return Value{kind: KindI64, i: v} }

// U64 wraps an unsigned 64-bit value.
func U64(v uint64) Value { return Value{kind: KindU64, u: v} }

// F64 wraps a double-precision float.
func F64(v float64) Value { return Value{kind: KindF64, f: v} }

// NaN returns the float value used by fixtures that expect a non-number.
func NaN() Value { return F64(math.NaN()) }

// Inf returns positive infinity when sign >= 0 and negative infinity
// otherwise.
func Inf(sign int) Value { return F64(math.Inf(sign)) }

// Kind returns the discriminant.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether the value is the uninitialised zero Value, which
// carries no kind and must not be rendered.
func (v Value) IsZero() bool { return v.kind == "" }

// Int64 returns the signed representation. It is only meaningful for signed
// kinds.
func (v Value) Int64() int64 { return v.i }

// Uint64 returns the unsigned representation. It is only meaningful for
// unsigned kinds.
func (v Value) Uint64() uint64 { return v.u }

// Float64 returns the float representation. It is only meaningful for KindF64.
func (v Value) Float64() float64 { return v.f }

// IsNaN reports whether the value is a float NaN. Integer kinds are never NaN.
func (v Value) IsNaN() bool { return v.kind == KindF64 && math.IsNaN(v.f) }

// IsInf reports whether the value is a float infinity of any sign.
func (v Value) IsInf() bool { return v.kind == KindF64 && math.IsInf(v.f, 0) }

// Equal compares two values of the same kind. NaN compares equal to NaN so
// fixtures expecting a non-number can assert on outcomes; everything else is
// exact equality, including float bit patterns reachable through ==.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindI32, KindI64:
		return v.i == o.i
	case KindU32, KindU64:
		return v.u == o.u
	case KindF64:
		if math.IsNaN(v.f) && math.IsNaN(o.f) {
			return true
		}
		return v.f == o.f
	default:
		return false
	}
}

// String renders a neutral decimal representation: the shortest float form for
// KindF64 and plain base-10 digits for integer kinds.
func (v Value) String() string {
	switch v.kind {
	case KindI32, KindI64:
		return strconv.FormatInt(v.i, 10)
	case KindU32, KindU64:
		return strconv.FormatUint(v.u, 10)
	case KindF64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return "<invalid>"
	}
}

// Parse converts text into a Value of the requested kind. Integer kinds honor
// the base argument the way strconv does (base 0 enables prefix detection);
// the float path has no base axis, mirroring strtod, so base is ignored for
// KindF64. Trailing non-numeric characters are an error for every kind.
func Parse(kind Kind, text string, base int) (Value, error) {
	switch kind {
	case KindI32, KindI64:
		i, err := strconv.ParseInt(text, base, kind.Bits())
		if err != nil {
			return Value{}, fmt.Errorf("numeric: parse %s %q: %w", kind, text, err)
		}
		if kind == KindI32 {
			return I32(int32(i)), nil
		}
		return I64(i), nil
	case KindU32, KindU64:
		u, err := strconv.ParseUint(text, base, kind.Bits())
		if err != nil {
			return Value{}, fmt.Errorf("numeric: parse %s %q: %w", kind, text, err)
		}
		if kind == KindU32 {
			return U32(uint32(u)), nil
		}
		return U64(u), nil
	case KindF64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("numeric: parse %s %q: %w", kind, text, err)
		}
		return F64(f), nil
	default:
		return Value{}, fmt.Errorf("numeric: unknown kind %q", kind)
	}
}

// ParseExpected accepts the spellings fixture catalogs use for expected
// values: the special float names nan, inf/+inf/infinity, and -inf, then the
// regular numeric forms. Integer kinds use prefix-aware base detection so
// catalogs can state expectations in hex or octal.
func ParseExpected(kind Kind, text string) (Value, error) {
	trimmed := strings.TrimSpace(text)
	if kind.IsFloat() {
		switch strings.ToLower(trimmed) {
		case "nan":
			return NaN(), nil
		case "inf", "+inf", "infinity", "+infinity":
			return Inf(1), nil
		case "-inf", "-infinity":
			return Inf(-1), nil
		}
	}
	base := 0
	if kind.IsFloat() {
		base = 10
	}
	return Parse(kind, trimmed, base)
}
