package fixture

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-numgen/pkg/numeric"
	"github.com/goliatone/go-numgen/pkg/skeleton"
)

// Outcome classifies how a generated program is expected to terminate when
// compiled and run by the external toolchain.
type Outcome string

const (
	// OutcomePass exits 0: the parse succeeds and the comparison holds.
	OutcomePass Outcome = "pass"
	// OutcomeFail exits 1 through the ParseError path.
	OutcomeFail Outcome = "fail"
	// OutcomeAssert aborts in the comparison: the parse succeeds but yields
	// a value other than expected.
	OutcomeAssert Outcome = "assert"
)

// ParseOutcome validates an outcome spelled as text.
func ParseOutcome(raw string) (Outcome, error) {
	switch o := Outcome(strings.ToLower(strings.TrimSpace(raw))); o {
	case OutcomePass, OutcomeFail, OutcomeAssert:
		return o, nil
	default:
		return "", fmt.Errorf("fixture: unknown outcome %q", raw)
	}
}

// Fixture binds concrete values to a skeleton's placeholders for one test
// case. Value is inserted verbatim: in literal mode it is source syntax, in
// string mode it is the text handed to the runtime conversion. An empty Value
// with a non-finite Expected asks the generator to derive the dialect's
// spelling for NaN or infinity.
type Fixture struct {
	Kind     numeric.Kind
	Value    string
	Expected numeric.Value
	// Base is the numeric base for string-mode conversions. Zero means the
	// decimal default. The range is deliberately not validated here; the
	// renderer treats it as an opaque parameter.
	Base    int
	Title   string
	Flags   string
	Outcome Outcome
}

// Validate checks the fixture is renderable on its own terms.
func (f Fixture) Validate() error {
	if _, err := numeric.ParseKind(string(f.Kind)); err != nil {
		return err
	}
	if f.Expected.IsZero() {
		return fmt.Errorf("fixture: %q has no expected value", f.Title)
	}
	if f.Expected.Kind() != f.Kind {
		return fmt.Errorf("fixture: %q expects a %s value but is declared %s", f.Title, f.Expected.Kind(), f.Kind)
	}
	if f.Value == "" && !f.Expected.IsNaN() && !f.Expected.IsInf() {
		return fmt.Errorf("fixture: %q has no value and no derivable non-finite expected", f.Title)
	}
	if f.Outcome != "" {
		if _, err := ParseOutcome(string(f.Outcome)); err != nil {
			return err
		}
	}
	return nil
}

// Suite is an ordered set of fixtures sharing a parsing mode, mirroring one
// generated test document of the upstream corpus.
type Suite struct {
	ID          string
	Title       string
	Description string
	Mode        skeleton.Mode
	Fixtures    []Fixture
}

// Validate checks the suite and every fixture in it.
func (s Suite) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("fixture: suite id is required")
	}
	if _, err := skeleton.ParseMode(string(s.Mode)); err != nil {
		return fmt.Errorf("fixture: suite %q: %w", s.ID, err)
	}
	if len(s.Fixtures) == 0 {
		return fmt.Errorf("fixture: suite %q has no fixtures", s.ID)
	}
	for i, fx := range s.Fixtures {
		if err := fx.Validate(); err != nil {
			return fmt.Errorf("fixture: suite %q entry %d: %w", s.ID, i, err)
		}
	}
	return nil
}
