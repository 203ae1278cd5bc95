package skeleton

import (
	"fmt"
	"regexp"
	"strings"
)

// Dialect names a target language the generated programs are written in.
type Dialect string

const (
	DialectC    Dialect = "c"
	DialectCPP  Dialect = "cpp"
	DialectGo   Dialect = "go"
	DialectRust Dialect = "rust"
)

// Dialects returns every supported dialect in declaration order.
func Dialects() []Dialect {
	return []Dialect{DialectC, DialectCPP, DialectGo, DialectRust}
}

// ParseDialect validates a dialect spelled as text.
func ParseDialect(raw string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(raw))); d {
	case DialectC, DialectCPP, DialectGo, DialectRust:
		return d, nil
	default:
		return "", fmt.Errorf("skeleton: unknown dialect %q", raw)
	}
}

// Extension returns the source file extension for the dialect.
func (d Dialect) Extension() string {
	switch d {
	case DialectC:
		return ".c"
	case DialectCPP:
		return ".cpp"
	case DialectGo:
		return ".go"
	case DialectRust:
		return ".rs"
	default:
		return ""
	}
}

func (d Dialect) String() string { return string(d) }

// Mode distinguishes values compiled as source literals from values converted
// from text at runtime.
type Mode string

const (
	ModeLiteral Mode = "literal"
	ModeString  Mode = "string"
)

// Modes returns both supported modes.
func Modes() []Mode {
	return []Mode{ModeLiteral, ModeString}
}

// ParseMode validates a mode spelled as text.
func ParseMode(raw string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(raw))); m {
	case ModeLiteral, ModeString:
		return m, nil
	default:
		return "", fmt.Errorf("skeleton: unknown mode %q", raw)
	}
}

func (m Mode) String() string { return string(m) }

// placeholderPattern matches single-brace lowercase identifiers such as
// {type} or {value}. Skeleton bodies must not contain other text of this
// shape; braces opening blocks are followed by whitespace or punctuation and
// never match.
var placeholderPattern = regexp.MustCompile(`\{[a-z][a-z0-9_]*\}`)

// Template is a fixed program skeleton for one dialect/mode pair. The body
// holds compilable source text with named placeholders that Render
// substitutes verbatim.
type Template struct {
	Dialect Dialect
	Mode    Mode
	Body    string
}

// Name returns the registry key for the template, e.g. "c/literal".
func (t Template) Name() string {
	return templateName(t.Dialect, t.Mode)
}

func templateName(dialect Dialect, mode Mode) string {
	return string(dialect) + "/" + string(mode)
}

// Placeholders returns the placeholder names the body references, in order of
// first appearance with duplicates removed.
func (t Template) Placeholders() []string {
	matches := placeholderPattern.FindAllString(t.Body, -1)
	if len(matches) == 0 {
		return nil
	}

	out := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		name := strings.Trim(match, "{}")
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Render substitutes every referenced placeholder with its binding, inserting
// values verbatim. A referenced placeholder with no binding fails with a
// MissingPlaceholderError; bindings the body never references are ignored.
// Rendering is pure: the same template and bindings always produce identical
// output.
func (t Template) Render(bindings map[string]string) (string, error) {
	var missing []string
	rendered := placeholderPattern.ReplaceAllStringFunc(t.Body, func(match string) string {
		name := strings.Trim(match, "{}")
		value, ok := bindings[name]
		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})

	if len(missing) > 0 {
		return "", &MissingPlaceholderError{
			Template:    t.Name(),
			Placeholder: missing[0],
		}
	}
	return rendered, nil
}
