package fixture

import (
	"testing"

	"github.com/goliatone/go-numgen/pkg/numeric"
	"github.com/goliatone/go-numgen/pkg/skeleton"
)

func TestBuiltin_SuitesValidate(t *testing.T) {
	catalog := Builtin()
	if catalog.Empty() {
		t.Fatal("builtin catalog must not be empty")
	}

	for _, id := range catalog.IDs() {
		suite, ok := catalog.Suite(id)
		if !ok {
			t.Fatalf("suite %q listed but not retrievable", id)
		}
		if err := suite.Validate(); err != nil {
			t.Fatalf("suite %q invalid: %v", id, err)
		}
	}
}

func TestBuiltin_CoversSpecScenarios(t *testing.T) {
	catalog := Builtin()

	decimalString, _ := catalog.Suite("decimal-string")
	if decimalString.Mode != skeleton.ModeString {
		t.Fatal("decimal-string should be a string-mode suite")
	}

	var sawUnsignedBoundary, sawNaN, sawTrailing bool
	for _, fx := range decimalString.Fixtures {
		if fx.Kind == numeric.KindU32 && fx.Value == "4294967295" {
			sawUnsignedBoundary = true
		}
		if fx.Expected.IsNaN() {
			sawNaN = true
		}
		if fx.Value == "12abc" && fx.Outcome == OutcomeFail {
			sawTrailing = true
		}
	}
	if !sawUnsignedBoundary {
		t.Fatal("missing unsigned 32-bit boundary fixture")
	}
	if !sawNaN {
		t.Fatal("missing NaN fixture")
	}
	if !sawTrailing {
		t.Fatal("missing trailing-characters fixture")
	}

	decimalLiteral, _ := catalog.Suite("decimal-literal")
	var sawFloatLiteral bool
	for _, fx := range decimalLiteral.Fixtures {
		if fx.Kind == numeric.KindF64 && fx.Value == "0.1" {
			sawFloatLiteral = true
		}
		if fx.Base != 0 {
			t.Fatalf("literal fixture %q carries a base", fx.Title)
		}
	}
	if !sawFloatLiteral {
		t.Fatal("missing 0.1 float literal fixture")
	}
}

func TestBuiltin_RadixSuiteLeavesBaseOpaque(t *testing.T) {
	suite, ok := Builtin().Suite("radix-string")
	if !ok {
		t.Fatal("radix-string suite missing")
	}

	bases := map[int]bool{}
	for _, fx := range suite.Fixtures {
		bases[fx.Base] = true
	}
	for _, base := range []int{2, 8, 16, 36} {
		if !bases[base] {
			t.Fatalf("radix suite should exercise base %d", base)
		}
	}
}
