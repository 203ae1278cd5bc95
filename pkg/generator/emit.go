package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-numgen/pkg/fixture"
	"github.com/goliatone/go-numgen/pkg/skeleton"
)

// ManifestName is the file written alongside emitted programs describing what
// the suite contains.
const ManifestName = "manifest.yaml"

// Manifest records an emitted suite: which programs were written, from which
// fixtures, and how each is expected to terminate.
type Manifest struct {
	Suite       string    `yaml:"suite"`
	Title       string    `yaml:"title,omitempty"`
	Description string    `yaml:"description,omitempty"`
	Dialect     string    `yaml:"dialect"`
	Mode        string    `yaml:"mode"`
	Programs    []Program `yaml:"programs"`
}

// Program describes one emitted source file.
type Program struct {
	File     string `yaml:"file"`
	Title    string `yaml:"title,omitempty"`
	Flags    string `yaml:"flags,omitempty"`
	Kind     string `yaml:"kind"`
	Value    string `yaml:"value,omitempty"`
	Expected string `yaml:"expected"`
	Base     int    `yaml:"base,omitempty"`
	Outcome  string `yaml:"outcome"`
}

// EmitSuite renders every fixture of the suite for the given dialect and
// writes the programs plus a manifest into dir, creating it if necessary.
// Files are numbered in fixture order so re-emission is stable.
func (o *Orchestrator) EmitSuite(ctx context.Context, dir string, dialect skeleton.Dialect, suite fixture.Suite) (Manifest, error) {
	if err := suite.Validate(); err != nil {
		return Manifest{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Manifest{}, fmt.Errorf("generator: create output dir: %w", err)
	}

	manifest := Manifest{
		Suite:       suite.ID,
		Title:       suite.Title,
		Description: suite.Description,
		Dialect:     string(dialect),
		Mode:        string(suite.Mode),
		Programs:    make([]Program, 0, len(suite.Fixtures)),
	}

	for i, fx := range suite.Fixtures {
		source, err := o.Generate(ctx, Request{Dialect: dialect, Mode: suite.Mode, Fixture: fx})
		if err != nil {
			return Manifest{}, fmt.Errorf("generator: suite %q entry %d: %w", suite.ID, i, err)
		}

		name := fmt.Sprintf("test_%03d%s", i, dialect.Extension())
		if err := os.WriteFile(filepath.Join(dir, name), source, 0o644); err != nil {
			return Manifest{}, fmt.Errorf("generator: write %s: %w", name, err)
		}

		outcome := fx.Outcome
		if outcome == "" {
			outcome = fixture.OutcomePass
		}
		manifest.Programs = append(manifest.Programs, Program{
			File:     name,
			Title:    fx.Title,
			Flags:    fx.Flags,
			Kind:     string(fx.Kind),
			Value:    fx.Value,
			Expected: fx.Expected.String(),
			Base:     fx.Base,
			Outcome:  string(outcome),
		})
	}

	payload, err := yaml.Marshal(manifest)
	if err != nil {
		return Manifest{}, fmt.Errorf("generator: encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), payload, 0o644); err != nil {
		return Manifest{}, fmt.Errorf("generator: write manifest: %w", err)
	}

	return manifest, nil
}
