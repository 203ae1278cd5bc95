package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-numgen/pkg/fixture"
	"github.com/goliatone/go-numgen/pkg/numeric"
	"github.com/goliatone/go-numgen/pkg/skeleton"
)

// bind builds the placeholder map for one fixture. The {type}, {value},
// {expected}, and {base} placeholders are the portable core; {parse} is
// supplied for the dialects whose string skeletons dispatch on it.
func bind(dialect skeleton.Dialect, mode skeleton.Mode, fx fixture.Fixture) (map[string]string, error) {
	typeName, err := typeSpelling(dialect, mode, fx.Kind)
	if err != nil {
		return nil, err
	}
	expected, err := expectedLiteral(dialect, fx.Expected)
	if err != nil {
		return nil, err
	}

	value := fx.Value
	if value == "" {
		// Non-finite expected values with no explicit value text: derive the
		// dialect's own spelling in literal mode and the portable lowercase
		// name in string mode.
		if mode == skeleton.ModeLiteral {
			value = expected
		} else {
			value = nonFiniteName(fx.Expected)
		}
	}

	bindings := map[string]string{
		"type":     typeName,
		"value":    value,
		"expected": expected,
	}

	if mode == skeleton.ModeString {
		base := fx.Base
		if base == 0 {
			base = 10
		}
		bindings["base"] = strconv.Itoa(base)
		bindings["parse"] = parseSpelling(dialect, fx.Kind, value, base)
	}

	return bindings, nil
}

// typeSpelling returns the dialect's name for a numeric kind. String-mode
// conversions in C, C++, and Go return 64-bit carriers, so 32-bit kinds widen
// there; Rust's from_str_radix is generic and keeps the exact width.
func typeSpelling(dialect skeleton.Dialect, mode skeleton.Mode, kind numeric.Kind) (string, error) {
	switch dialect {
	case skeleton.DialectC, skeleton.DialectCPP:
		if mode == skeleton.ModeString {
			return string(carrierKind(kind)), nil
		}
		return string(kind), nil
	case skeleton.DialectRust:
		return string(kind), nil
	case skeleton.DialectGo:
		if mode == skeleton.ModeString {
			switch {
			case kind.IsFloat():
				return "float64", nil
			case kind.IsUnsigned():
				return "uint64", nil
			default:
				return "int64", nil
			}
		}
		switch kind {
		case numeric.KindI32:
			return "int32", nil
		case numeric.KindU32:
			return "uint32", nil
		case numeric.KindI64:
			return "int64", nil
		case numeric.KindU64:
			return "uint64", nil
		case numeric.KindF64:
			return "float64", nil
		}
	}
	return "", fmt.Errorf("generator: no %s spelling for kind %s", dialect, kind)
}

func carrierKind(kind numeric.Kind) numeric.Kind {
	switch {
	case kind.IsFloat():
		return numeric.KindF64
	case kind.IsUnsigned():
		return numeric.KindU64
	default:
		return numeric.KindI64
	}
}

// parseSpelling returns the {parse} binding: a function name for C, C++, and
// Go, and a full call expression for Rust, whose integer and float parsing
// entry points have incompatible shapes.
func parseSpelling(dialect skeleton.Dialect, kind numeric.Kind, value string, base int) string {
	carrier := carrierKind(kind)
	switch dialect {
	case skeleton.DialectC, skeleton.DialectCPP:
		return "parse_" + string(carrier)
	case skeleton.DialectGo:
		switch carrier {
		case numeric.KindF64:
			return "ParseFloat"
		case numeric.KindU64:
			return "ParseUint"
		default:
			return "ParseInt"
		}
	case skeleton.DialectRust:
		if kind.IsFloat() {
			return fmt.Sprintf("%q.parse::<f64>()", value)
		}
		return fmt.Sprintf("%s::from_str_radix(%q, %d)", kind, value, base)
	default:
		return ""
	}
}

// expectedLiteral renders the expected value in the dialect's literal syntax.
func expectedLiteral(dialect skeleton.Dialect, v numeric.Value) (string, error) {
	if v.IsZero() {
		return "", fmt.Errorf("generator: expected value is required")
	}

	if v.Kind().IsFloat() {
		return floatLiteral(dialect, v.Float64())
	}

	switch dialect {
	case skeleton.DialectC, skeleton.DialectCPP:
		if v.Kind().IsUnsigned() {
			return v.String() + "ULL", nil
		}
		if v.Int64() == math.MinInt64 {
			// The positive magnitude overflows a C constant; build it from
			// the representable neighbour.
			return "(-9223372036854775807LL - 1)", nil
		}
		return v.String(), nil
	case skeleton.DialectGo, skeleton.DialectRust:
		return v.String(), nil
	default:
		return "", fmt.Errorf("generator: unknown dialect %q", dialect)
	}
}

func floatLiteral(dialect skeleton.Dialect, f float64) (string, error) {
	switch {
	case math.IsNaN(f):
		return nanLiteral(dialect)
	case math.IsInf(f, 1):
		return infLiteral(dialect, 1)
	case math.IsInf(f, -1):
		return infLiteral(dialect, -1)
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		// Integer-valued floats need a fractional part: Rust rejects a bare
		// integer literal in float position.
		s += ".0"
	}
	return s, nil
}

func nanLiteral(dialect skeleton.Dialect) (string, error) {
	switch dialect {
	case skeleton.DialectC, skeleton.DialectCPP:
		return "NAN", nil
	case skeleton.DialectGo:
		return "math.NaN()", nil
	case skeleton.DialectRust:
		return "f64::NAN", nil
	default:
		return "", fmt.Errorf("generator: unknown dialect %q", dialect)
	}
}

func infLiteral(dialect skeleton.Dialect, sign int) (string, error) {
	switch dialect {
	case skeleton.DialectC, skeleton.DialectCPP:
		if sign < 0 {
			return "-INFINITY", nil
		}
		return "INFINITY", nil
	case skeleton.DialectGo:
		return fmt.Sprintf("math.Inf(%d)", sign), nil
	case skeleton.DialectRust:
		if sign < 0 {
			return "f64::NEG_INFINITY", nil
		}
		return "f64::INFINITY", nil
	default:
		return "", fmt.Errorf("generator: unknown dialect %q", dialect)
	}
}

func nonFiniteName(v numeric.Value) string {
	switch {
	case v.IsNaN():
		return "nan"
	case math.IsInf(v.Float64(), -1):
		return "-inf"
	default:
		return "inf"
	}
}
