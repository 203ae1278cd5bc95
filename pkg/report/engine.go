package report

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Engine is a small pongo2-backed template set for report artifacts. It loads
// templates from an fs.FS and caches compiled templates by path.
type Engine struct {
	mu    sync.RWMutex
	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
	ext   string
}

// NewEngine constructs an Engine reading templates from fsys. The extension
// defaults to ".tpl" and is appended to template names that lack it.
func NewEngine(fsys fs.FS, extension string) (*Engine, error) {
	if fsys == nil {
		return nil, errors.New("report: template fs is required")
	}

	ext := strings.TrimSpace(extension)
	if ext == "" {
		ext = ".tpl"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return &Engine{
		set:   pongo2.NewSet("numgen-report", pongo2.NewFSLoader(fsys)),
		cache: make(map[string]*pongo2.Template),
		ext:   ext,
	}, nil
}

// RenderTemplate executes the named template with the provided context.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("report: engine is nil")
	}

	templatePath := name
	if !strings.HasSuffix(templatePath, e.ext) {
		templatePath += e.ext
	}

	tmpl, err := e.getTemplate(templatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context(data), &buf); err != nil {
		return "", fmt.Errorf("report: execute template %q: %w", templatePath, err)
	}
	return buf.String(), nil
}

func (e *Engine) getTemplate(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[path]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: load template %q: %w", path, err)
	}

	e.cache[path] = tmpl
	return tmpl, nil
}
