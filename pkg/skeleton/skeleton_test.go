package skeleton

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlaceholders_OrderAndDedup(t *testing.T) {
	tmpl := Template{
		Dialect: DialectC,
		Mode:    ModeLiteral,
		Body:    "{type} actual = {value};\n{type} expected = {expected};",
	}

	got := tmpl.Placeholders()
	want := []string{"type", "value", "expected"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("placeholders mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaceholders_IgnoresBlockBraces(t *testing.T) {
	tmpl := Template{
		Dialect: DialectGo,
		Mode:    ModeLiteral,
		Body:    "func main() {\n\tif x != x {\n\t\tprintln({value})\n\t}\n}\n",
	}

	got := tmpl.Placeholders()
	want := []string{"value"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("placeholders mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_VerbatimSubstitution(t *testing.T) {
	tmpl := Template{
		Dialect: DialectGo,
		Mode:    ModeLiteral,
		Body:    "var actual {type} = {value}\n",
	}

	out, err := tmpl.Render(map[string]string{
		"type":  "int64",
		"value": "-42",
		"extra": "ignored",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "var actual int64 = -42\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRender_MissingPlaceholder(t *testing.T) {
	tmpl := Template{
		Dialect: DialectC,
		Mode:    ModeString,
		Body:    "{type} actual = {parse}(\"{value}\");",
	}

	_, err := tmpl.Render(map[string]string{"type": "i64", "value": "42"})
	if err == nil {
		t.Fatal("expected missing placeholder error")
	}

	var missing *MissingPlaceholderError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingPlaceholderError, got %T: %v", err, err)
	}
	if missing.Placeholder != "parse" {
		t.Fatalf("missing placeholder = %q, want %q", missing.Placeholder, "parse")
	}
	if missing.Template != "c/string" {
		t.Fatalf("template = %q, want %q", missing.Template, "c/string")
	}
}

func TestRender_Deterministic(t *testing.T) {
	registry := MustDefaultRegistry()
	tmpl, err := registry.Get(DialectCPP, ModeString)
	if err != nil {
		t.Fatalf("get template: %v", err)
	}

	bindings := map[string]string{
		"type":     "u64",
		"parse":    "parse_u64",
		"value":    "4294967295",
		"expected": "4294967295ULL",
		"base":     "10",
	}

	first, err := tmpl.Render(bindings)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := tmpl.Render(bindings)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first != second {
		t.Fatal("renders of the same template and bindings must be byte-identical")
	}
}

func TestDefaultRegistry_FullCorpus(t *testing.T) {
	registry := MustDefaultRegistry()

	for _, dialect := range Dialects() {
		for _, mode := range Modes() {
			if !registry.Has(dialect, mode) {
				t.Fatalf("bundle is missing %s/%s", dialect, mode)
			}
		}
	}

	if got := len(registry.List()); got != len(Dialects())*len(Modes()) {
		t.Fatalf("registry holds %d templates, want %d", got, len(Dialects())*len(Modes()))
	}
}

func TestDefaultRegistry_PlaceholderVocabulary(t *testing.T) {
	registry := MustDefaultRegistry()
	known := map[string]struct{}{
		"type": {}, "value": {}, "expected": {}, "base": {}, "parse": {},
	}

	for _, dialect := range Dialects() {
		for _, mode := range Modes() {
			tmpl, err := registry.Get(dialect, mode)
			if err != nil {
				t.Fatalf("get %s/%s: %v", dialect, mode, err)
			}
			for _, name := range tmpl.Placeholders() {
				if _, ok := known[name]; !ok {
					t.Fatalf("%s/%s references unknown placeholder %q", dialect, mode, name)
				}
			}
			if mode == ModeLiteral {
				for _, name := range tmpl.Placeholders() {
					if name == "base" {
						t.Fatalf("%s/literal must not reference {base}", dialect)
					}
				}
			}
		}
	}
}

func TestParseDialect(t *testing.T) {
	got, err := ParseDialect(" CPP ")
	if err != nil {
		t.Fatalf("parse dialect: %v", err)
	}
	if got != DialectCPP {
		t.Fatalf("got %s, want cpp", got)
	}
	if _, err := ParseDialect("fortran"); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}

func TestDialectExtension(t *testing.T) {
	cases := map[Dialect]string{
		DialectC:    ".c",
		DialectCPP:  ".cpp",
		DialectGo:   ".go",
		DialectRust: ".rs",
	}
	for dialect, want := range cases {
		if got := dialect.Extension(); got != want {
			t.Fatalf("%s extension = %q, want %q", dialect, got, want)
		}
	}
}

func TestGoStringSkeleton_ParseErrorPath(t *testing.T) {
	registry := MustDefaultRegistry()
	tmpl, err := registry.Get(DialectGo, ModeString)
	if err != nil {
		t.Fatalf("get template: %v", err)
	}
	if !strings.Contains(tmpl.Body, "ParseError") {
		t.Fatal("go string skeleton must report ParseError on failed conversion")
	}
	if !strings.Contains(tmpl.Body, "expected != expected") {
		t.Fatal("go string skeleton must carry the NaN-aware comparison branch")
	}
}
