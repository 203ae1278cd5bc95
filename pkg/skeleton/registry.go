package skeleton

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores templates by dialect/mode, providing discovery and
// duplication safeguards. The zero value is not usable; construct with
// NewRegistry or DefaultRegistry.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]Template),
	}
}

// Register adds a template under its dialect/mode name. Duplicate names
// return an error.
func (r *Registry) Register(tmpl Template) error {
	if tmpl.Dialect == "" || tmpl.Mode == "" {
		return fmt.Errorf("skeleton: template dialect and mode are required")
	}
	if tmpl.Body == "" {
		return fmt.Errorf("skeleton: template %q has an empty body", tmpl.Name())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := tmpl.Name()
	if _, exists := r.templates[name]; exists {
		return fmt.Errorf("skeleton: template %q already registered", name)
	}

	r.templates[name] = tmpl
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(tmpl Template) {
	if err := r.Register(tmpl); err != nil {
		panic(err)
	}
}

// Get retrieves the template for a dialect/mode pair.
func (r *Registry) Get(dialect Dialect, mode Mode) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, ok := r.templates[templateName(dialect, mode)]
	if !ok {
		return Template{}, fmt.Errorf("skeleton: template %q not found", templateName(dialect, mode))
	}
	return tmpl, nil
}

// List returns the sorted names of every registered template.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a template is registered for the dialect/mode pair.
func (r *Registry) Has(dialect Dialect, mode Mode) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.templates[templateName(dialect, mode)]
	return ok
}
