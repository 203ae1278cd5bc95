package fixture

import (
	"math"
	"sort"

	"github.com/goliatone/go-numgen/pkg/numeric"
	"github.com/goliatone/go-numgen/pkg/skeleton"
)

// Catalog is a read-only collection of suites keyed by id.
type Catalog struct {
	suites map[string]Suite
}

// Suite returns the suite registered under id.
func (c *Catalog) Suite(id string) (Suite, bool) {
	if c == nil {
		return Suite{}, false
	}
	suite, ok := c.suites[id]
	return suite, ok
}

// IDs returns the sorted suite ids.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.suites))
	for id := range c.suites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the catalog holds any suites.
func (c *Catalog) Empty() bool {
	return c == nil || len(c.suites) == 0
}

// Builtin returns the static fixture catalog: the decimal round-trips,
// boundary values, non-finite floats, malformed inputs, and non-decimal
// radices exercised per numeric kind.
func Builtin() *Catalog {
	return &Catalog{suites: map[string]Suite{
		"decimal-string": {
			ID:          "decimal-string",
			Title:       "Decimal strings",
			Description: "Decimal text converted to numbers at runtime.",
			Mode:        skeleton.ModeString,
			Fixtures: []Fixture{
				{Kind: numeric.KindI64, Value: "42", Base: 10, Expected: numeric.I64(42), Title: "Simple", Outcome: OutcomePass},
				{Kind: numeric.KindI64, Value: "-42", Base: 10, Expected: numeric.I64(-42), Title: "Negative", Outcome: OutcomePass},
				{Kind: numeric.KindI32, Value: "2147483647", Base: 10, Expected: numeric.I32(math.MaxInt32), Title: "Signed 32-bit upper bound", Outcome: OutcomePass},
				{Kind: numeric.KindI32, Value: "-2147483648", Base: 10, Expected: numeric.I32(math.MinInt32), Title: "Signed 32-bit lower bound", Outcome: OutcomePass},
				{Kind: numeric.KindU32, Value: "4294967295", Base: 10, Expected: numeric.U32(math.MaxUint32), Title: "Unsigned 32-bit upper bound", Outcome: OutcomePass},
				{Kind: numeric.KindI64, Value: "9223372036854775807", Base: 10, Expected: numeric.I64(math.MaxInt64), Title: "Signed 64-bit upper bound", Outcome: OutcomePass},
				{Kind: numeric.KindU64, Value: "18446744073709551615", Base: 10, Expected: numeric.U64(math.MaxUint64), Title: "Unsigned 64-bit upper bound", Outcome: OutcomePass},
				{Kind: numeric.KindF64, Value: "0.1", Expected: numeric.F64(0.1), Title: "Simple float", Outcome: OutcomePass},
				{Kind: numeric.KindF64, Value: "1e300", Expected: numeric.F64(1e300), Title: "Large exponent", Outcome: OutcomePass},
				{Kind: numeric.KindF64, Value: "nan", Expected: numeric.NaN(), Title: "Not a number", Outcome: OutcomePass},
				{Kind: numeric.KindF64, Value: "inf", Expected: numeric.Inf(1), Title: "Positive infinity", Outcome: OutcomePass},
				{Kind: numeric.KindI64, Value: "12abc", Base: 10, Expected: numeric.I64(12), Title: "Trailing characters", Flags: "t/c", Outcome: OutcomeFail},
				{Kind: numeric.KindF64, Value: "1.0.0", Expected: numeric.F64(1), Title: "Double decimal point", Flags: "t/c", Outcome: OutcomeFail},
			},
		},
		"decimal-literal": {
			ID:          "decimal-literal",
			Title:       "Decimal literals",
			Description: "Values written directly in source syntax and compiled.",
			Mode:        skeleton.ModeLiteral,
			Fixtures: []Fixture{
				{Kind: numeric.KindI64, Value: "42", Expected: numeric.I64(42), Title: "Simple", Outcome: OutcomePass},
				{Kind: numeric.KindI64, Value: "-42", Expected: numeric.I64(-42), Title: "Negative", Outcome: OutcomePass},
				{Kind: numeric.KindU32, Value: "4294967295", Expected: numeric.U32(math.MaxUint32), Title: "Unsigned 32-bit upper bound", Outcome: OutcomePass},
				{Kind: numeric.KindF64, Value: "0.1", Expected: numeric.F64(0.1), Title: "Float representation", Outcome: OutcomePass},
				{Kind: numeric.KindF64, Value: "1e300", Expected: numeric.F64(1e300), Title: "Large exponent", Outcome: OutcomePass},
				{Kind: numeric.KindF64, Expected: numeric.NaN(), Title: "Not a number", Outcome: OutcomePass},
				{Kind: numeric.KindF64, Expected: numeric.Inf(1), Title: "Positive infinity", Outcome: OutcomePass},
			},
		},
		"radix-string": {
			ID:          "radix-string",
			Title:       "Non-decimal strings",
			Description: "Hex, octal, and binary text with the base forwarded opaquely.",
			Mode:        skeleton.ModeString,
			Fixtures: []Fixture{
				{Kind: numeric.KindI64, Value: "ff", Base: 16, Expected: numeric.I64(255), Title: "Hex lowercase", Outcome: OutcomePass},
				{Kind: numeric.KindU32, Value: "777", Base: 8, Expected: numeric.U32(511), Title: "Octal", Outcome: OutcomePass},
				{Kind: numeric.KindU64, Value: "1010", Base: 2, Expected: numeric.U64(10), Title: "Binary", Outcome: OutcomePass},
				{Kind: numeric.KindI64, Value: "zz", Base: 36, Expected: numeric.I64(1295), Title: "Base 36", Outcome: OutcomePass},
				{Kind: numeric.KindI64, Value: "fg", Base: 16, Expected: numeric.I64(15), Title: "Digit outside radix", Flags: "t/c", Outcome: OutcomeFail},
			},
		},
	}}
}
