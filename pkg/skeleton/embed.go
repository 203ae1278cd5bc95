package skeleton

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed templates/*/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded skeleton bundle so callers can inspect or
// extend the built-in corpus without going through a registry.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// DefaultRegistry loads every embedded skeleton into a fresh registry. The
// bundle layout is templates/<dialect>/<mode>.tpl.
func DefaultRegistry() (*Registry, error) {
	registry := NewRegistry()
	if err := registerFS(registry, embeddedTemplates); err != nil {
		return nil, err
	}
	return registry, nil
}

// MustDefaultRegistry panics when the embedded bundle cannot be loaded, which
// only happens if the bundle itself is broken at build time.
func MustDefaultRegistry() *Registry {
	registry, err := DefaultRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

func registerFS(registry *Registry, fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(filePath string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || path.Ext(filePath) != ".tpl" {
			return nil
		}

		dialect, err := ParseDialect(path.Base(path.Dir(filePath)))
		if err != nil {
			return fmt.Errorf("skeleton: bundle file %s: %w", filePath, err)
		}
		mode, err := ParseMode(strings.TrimSuffix(path.Base(filePath), ".tpl"))
		if err != nil {
			return fmt.Errorf("skeleton: bundle file %s: %w", filePath, err)
		}

		body, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("skeleton: read bundle file %s: %w", filePath, err)
		}

		return registry.Register(Template{
			Dialect: dialect,
			Mode:    mode,
			Body:    string(body),
		})
	})
}
