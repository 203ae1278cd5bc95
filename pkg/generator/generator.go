package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-numgen/pkg/fixture"
	"github.com/goliatone/go-numgen/pkg/skeleton"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a custom skeleton registry.
func WithRegistry(registry *skeleton.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithCatalog injects a fixture catalog used to resolve suites by id.
func WithCatalog(catalog *fixture.Catalog) Option {
	return func(o *Orchestrator) {
		o.catalog = catalog
	}
}

// Orchestrator coordinates the pipeline from fixture to rendered program
// source. It applies sensible defaults (embedded skeletons, built-in catalog)
// while remaining open to dependency injection.
type Orchestrator struct {
	registry *skeleton.Registry
	catalog  *fixture.Catalog
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.registry == nil {
		o.registry = skeleton.MustDefaultRegistry()
	}
	if o.catalog == nil {
		o.catalog = fixture.Builtin()
	}
	return o
}

// Request describes the inputs required to render one conformance program.
type Request struct {
	// Dialect selects the target language of the generated program.
	Dialect skeleton.Dialect

	// Mode selects literal-in-source or string-to-number conversion.
	Mode skeleton.Mode

	// Fixture supplies the concrete type, value, expected result, and base.
	Fixture fixture.Fixture
}

// Generate renders the skeleton for the requested dialect/mode with the
// fixture's placeholder bindings and returns compilable source text. The
// output is deterministic: identical requests produce identical bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Fixture.Validate(); err != nil {
		return nil, err
	}

	tmpl, err := o.registry.Get(req.Dialect, req.Mode)
	if err != nil {
		return nil, err
	}

	bindings, err := bind(req.Dialect, req.Mode, req.Fixture)
	if err != nil {
		return nil, err
	}

	rendered, err := tmpl.Render(bindings)
	if err != nil {
		return nil, fmt.Errorf("generator: render %s/%s: %w", req.Dialect, req.Mode, err)
	}
	return []byte(rendered), nil
}

// Suite resolves a suite id against the configured catalog.
func (o *Orchestrator) Suite(id string) (fixture.Suite, error) {
	suite, ok := o.catalog.Suite(id)
	if !ok {
		return fixture.Suite{}, fmt.Errorf("generator: suite %q not found", id)
	}
	return suite, nil
}

// SuiteIDs lists the suites available through the configured catalog.
func (o *Orchestrator) SuiteIDs() []string {
	return o.catalog.IDs()
}
