package numgen

import (
	"context"

	"github.com/goliatone/go-numgen/pkg/fixture"
	"github.com/goliatone/go-numgen/pkg/generator"
	"github.com/goliatone/go-numgen/pkg/skeleton"
)

// Fixture binds concrete values to a skeleton's placeholders; alias exported
// via the root package for convenience.
type Fixture = fixture.Fixture

// Suite is an ordered set of fixtures sharing a parsing mode.
type Suite = fixture.Suite

// Request describes the inputs required to render one conformance program.
type Request = generator.Request

// Manifest records an emitted suite.
type Manifest = generator.Manifest

// Dialect names a target language of the generated programs.
type Dialect = skeleton.Dialect

// Mode distinguishes literal-in-source from string-to-number fixtures.
type Mode = skeleton.Mode

// NewOrchestrator exposes the generator constructor from the top-level
// module.
func NewOrchestrator(options ...generator.Option) *generator.Orchestrator {
	return generator.New(options...)
}

// GenerateProgram renders one conformance program for the given dialect and
// mode. It is the simplest entry point for callers that just want source
// text.
func GenerateProgram(ctx context.Context, dialect Dialect, mode Mode, fx Fixture, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, Request{
		Dialect: dialect,
		Mode:    mode,
		Fixture: fx,
	})
}

// EmitSuite renders every fixture of the suite into dir and writes a
// manifest describing the programs, delegating to the orchestrator.
func EmitSuite(ctx context.Context, dir string, dialect Dialect, suite Suite, options ...generator.Option) (Manifest, error) {
	gen := generator.New(options...)
	return gen.EmitSuite(ctx, dir, dialect, suite)
}

// WithCatalog registers a fixture catalog that can be passed to
// GenerateProgram alongside other orchestrator options.
func WithCatalog(catalog *fixture.Catalog) generator.Option {
	return generator.WithCatalog(catalog)
}

// WithRegistry registers a skeleton registry for callers that extend the
// built-in corpus.
func WithRegistry(registry *skeleton.Registry) generator.Option {
	return generator.WithRegistry(registry)
}
