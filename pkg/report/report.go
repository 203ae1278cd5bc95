package report

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-numgen/pkg/fixture"
	"github.com/goliatone/go-numgen/pkg/generator"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded report templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Renderer produces static artifacts describing an emitted suite: an HTML
// index and a plain-text summary. Fixture-supplied text is sanitized before
// it lands in HTML; catalogs are data, not trusted markup.
type Renderer struct {
	engine *Engine
}

// NewRenderer constructs a Renderer over the embedded templates.
func NewRenderer() (*Renderer, error) {
	engine, err := NewEngine(TemplatesFS(), ".tpl")
	if err != nil {
		return nil, err
	}
	return &Renderer{engine: engine}, nil
}

// HTML renders the index page for an emitted suite.
func (r *Renderer) HTML(manifest generator.Manifest) ([]byte, error) {
	out, err := r.engine.RenderTemplate("index.html", contextFor(manifest, true))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Summary renders a one-line-per-program text overview.
func (r *Renderer) Summary(manifest generator.Manifest) (string, error) {
	return r.engine.RenderTemplate("summary.txt", contextFor(manifest, false))
}

func contextFor(manifest generator.Manifest, sanitize bool) map[string]any {
	clean := func(s string) string { return s }
	if sanitize {
		clean = sanitizeText
	}

	title := clean(manifest.Title)
	if title == "" {
		title = clean(manifest.Suite)
	}

	programs := make([]map[string]any, 0, len(manifest.Programs))
	counts := map[fixture.Outcome]int{}
	for _, program := range manifest.Programs {
		counts[fixture.Outcome(program.Outcome)]++
		programs = append(programs, map[string]any{
			"file":     program.File,
			"title":    clean(program.Title),
			"flags":    clean(program.Flags),
			"kind":     program.Kind,
			"value":    clean(program.Value),
			"expected": clean(program.Expected),
			"base":     program.Base,
			"outcome":  program.Outcome,
		})
	}

	return map[string]any{
		"suite":        clean(manifest.Suite),
		"title":        title,
		"description":  clean(manifest.Description),
		"dialect":      manifest.Dialect,
		"mode":         manifest.Mode,
		"programs":     programs,
		"total":        len(manifest.Programs),
		"pass_count":   counts[fixture.OutcomePass],
		"fail_count":   counts[fixture.OutcomeFail],
		"assert_count": counts[fixture.OutcomeAssert],
	}
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(textPolicy.Sanitize(trimmed))
}

// WriteArtifacts renders both artifacts into dir, next to the emitted
// programs, and returns the file names written.
func (r *Renderer) WriteArtifacts(dir string, manifest generator.Manifest) ([]string, error) {
	html, err := r.HTML(manifest)
	if err != nil {
		return nil, err
	}
	summary, err := r.Summary(manifest)
	if err != nil {
		return nil, err
	}

	artifacts := []struct {
		name string
		data []byte
	}{
		{"index.html", html},
		{"summary.txt", []byte(summary)},
	}

	names := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		if err := os.WriteFile(filepath.Join(dir, artifact.name), artifact.data, 0o644); err != nil {
			return nil, fmt.Errorf("report: write %s: %w", artifact.name, err)
		}
		names = append(names, artifact.name)
	}
	return names, nil
}
