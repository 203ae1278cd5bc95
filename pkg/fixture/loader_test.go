package fixture

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-numgen/pkg/numeric"
	"github.com/goliatone/go-numgen/pkg/skeleton"
)

const sampleCatalogYAML = `
suites:
  go-decimal:
    title: Go decimal strings
    description: Decimal text parsed at runtime.
    mode: string
    fixtures:
      - kind: i64
        value: "42"
        base: 10
        expected: "42"
        title: Simple
        outcome: pass
      - kind: f64
        value: nan
        expected: nan
        title: Not a number
      - kind: i64
        value: 12abc
        base: 10
        expected: "12"
        title: Trailing characters
        flags: t/c
        outcome: fail
`

func TestLoadFS_YAML(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": &fstest.MapFile{Data: []byte(sampleCatalogYAML)},
	}

	catalog, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	suite, ok := catalog.Suite("go-decimal")
	if !ok {
		t.Fatalf("suite not found; ids = %v", catalog.IDs())
	}
	if suite.Mode != skeleton.ModeString {
		t.Fatalf("mode = %s, want string", suite.Mode)
	}
	if len(suite.Fixtures) != 3 {
		t.Fatalf("got %d fixtures, want 3", len(suite.Fixtures))
	}

	first := suite.Fixtures[0]
	if first.Kind != numeric.KindI64 || !first.Expected.Equal(numeric.I64(42)) {
		t.Fatalf("first fixture = %+v", first)
	}
	if first.Outcome != OutcomePass {
		t.Fatalf("first outcome = %s, want pass", first.Outcome)
	}

	if !suite.Fixtures[1].Expected.IsNaN() {
		t.Fatal("nan expected value should parse to NaN")
	}
	if suite.Fixtures[1].Outcome != OutcomePass {
		t.Fatal("outcome should default to pass")
	}

	if suite.Fixtures[2].Outcome != OutcomeFail {
		t.Fatalf("third outcome = %s, want fail", suite.Fixtures[2].Outcome)
	}
}

func TestLoadFS_JSON(t *testing.T) {
	doc := `{
  "suites": {
    "literal-floats": {
      "title": "Float literals",
      "mode": "literal",
      "fixtures": [
        {"kind": "f64", "value": "0.1", "expected": "0.1", "title": "Simple"}
      ]
    }
  }
}`
	fsys := fstest.MapFS{
		"catalog.json": &fstest.MapFile{Data: []byte(doc)},
	}

	catalog, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	suite, ok := catalog.Suite("literal-floats")
	if !ok {
		t.Fatal("suite not found")
	}
	if suite.Mode != skeleton.ModeLiteral {
		t.Fatalf("mode = %s, want literal", suite.Mode)
	}
}

func TestLoadFS_DuplicateSuite(t *testing.T) {
	doc := `
suites:
  dup:
    mode: literal
    fixtures:
      - kind: i64
        value: "1"
        expected: "1"
`
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte(doc)},
		"b.yaml": &fstest.MapFile{Data: []byte(doc)},
	}

	_, err := LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "duplicate suite") {
		t.Fatalf("expected duplicate suite error, got %v", err)
	}
}

func TestLoadFS_EmptyFile(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.yaml": &fstest.MapFile{Data: []byte("  \n")},
	}
	if _, err := LoadFS(fsys); err == nil {
		t.Fatal("expected error for empty catalog file")
	}
}

func TestLoadFS_BadKind(t *testing.T) {
	doc := `
suites:
  bad:
    mode: string
    fixtures:
      - kind: f32
        value: "1"
        expected: "1"
`
	fsys := fstest.MapFS{"bad.yaml": &fstest.MapFile{Data: []byte(doc)}}
	if _, err := LoadFS(fsys); err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Fatalf("expected unknown kind error, got %v", err)
	}
}

func TestLoadFS_LiteralModeDropsBase(t *testing.T) {
	doc := `
suites:
  lit:
    mode: literal
    fixtures:
      - kind: i64
        value: "42"
        base: 16
        expected: "42"
`
	fsys := fstest.MapFS{"lit.yaml": &fstest.MapFile{Data: []byte(doc)}}
	catalog, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	suite, _ := catalog.Suite("lit")
	if suite.Fixtures[0].Base != 0 {
		t.Fatalf("literal fixtures must not carry a base, got %d", suite.Fixtures[0].Base)
	}
}

func TestLoadFS_IgnoresOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"README.md": &fstest.MapFile{Data: []byte("# not a catalog")},
	}
	catalog, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !catalog.Empty() {
		t.Fatal("catalog should be empty")
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	catalog, err := LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !catalog.Empty() {
		t.Fatal("nil fs should produce an empty catalog")
	}
}
