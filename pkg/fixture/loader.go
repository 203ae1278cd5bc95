package fixture

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-numgen/pkg/numeric"
	"github.com/goliatone/go-numgen/pkg/skeleton"
)

// LoadFS walks the provided filesystem and parses JSON/YAML fixture catalog
// files. When fsys is nil or no catalog files are present, the returned
// catalog is empty. Suite ids must be unique across the whole tree.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	catalog := &Catalog{suites: make(map[string]Suite)}
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fixture: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for suiteID, raw := range doc.Suites {
			id := strings.TrimSpace(suiteID)
			if id == "" {
				return fmt.Errorf("fixture: file %s defines an empty suite id", path)
			}
			if _, exists := catalog.suites[id]; exists {
				return fmt.Errorf("fixture: duplicate suite %q (file %s)", id, path)
			}

			suite, err := normaliseSuite(raw, id, path)
			if err != nil {
				return err
			}
			catalog.suites[id] = suite
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return catalog, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

type documentFile struct {
	Suites map[string]suiteFile `json:"suites" yaml:"suites"`
}

type suiteFile struct {
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Mode        string        `json:"mode" yaml:"mode"`
	Fixtures    []fixtureFile `json:"fixtures" yaml:"fixtures"`
}

type fixtureFile struct {
	Kind     string `json:"kind" yaml:"kind"`
	Value    string `json:"value" yaml:"value"`
	Expected string `json:"expected" yaml:"expected"`
	Base     int    `json:"base" yaml:"base"`
	Title    string `json:"title" yaml:"title"`
	Flags    string `json:"flags" yaml:"flags"`
	Outcome  string `json:"outcome" yaml:"outcome"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("fixture: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("fixture: parse %s: invalid JSON or YAML", source)
}

func normaliseSuite(raw suiteFile, id, source string) (Suite, error) {
	mode, err := skeleton.ParseMode(raw.Mode)
	if err != nil {
		return Suite{}, fmt.Errorf("fixture: suite %q (file %s): %w", id, source, err)
	}

	suite := Suite{
		ID:          id,
		Title:       strings.TrimSpace(raw.Title),
		Description: strings.TrimSpace(raw.Description),
		Mode:        mode,
		Fixtures:    make([]Fixture, 0, len(raw.Fixtures)),
	}

	for i, entry := range raw.Fixtures {
		fx, err := normaliseFixture(entry, mode)
		if err != nil {
			return Suite{}, fmt.Errorf("fixture: suite %q entry %d (file %s): %w", id, i, source, err)
		}
		suite.Fixtures = append(suite.Fixtures, fx)
	}

	if err := suite.Validate(); err != nil {
		return Suite{}, fmt.Errorf("fixture: file %s: %w", source, err)
	}
	return suite, nil
}

func normaliseFixture(raw fixtureFile, mode skeleton.Mode) (Fixture, error) {
	kind, err := numeric.ParseKind(raw.Kind)
	if err != nil {
		return Fixture{}, err
	}

	if strings.TrimSpace(raw.Expected) == "" {
		return Fixture{}, fmt.Errorf("fixture: expected value is required")
	}
	expected, err := numeric.ParseExpected(kind, raw.Expected)
	if err != nil {
		return Fixture{}, err
	}

	outcome := OutcomePass
	if strings.TrimSpace(raw.Outcome) != "" {
		outcome, err = ParseOutcome(raw.Outcome)
		if err != nil {
			return Fixture{}, err
		}
	}

	base := raw.Base
	if base < 0 {
		return Fixture{}, fmt.Errorf("fixture: negative base %d", base)
	}
	if mode == skeleton.ModeLiteral {
		// Literal skeletons have no base axis; drop whatever the file says.
		base = 0
	}

	return Fixture{
		Kind:     kind,
		Value:    raw.Value,
		Expected: expected,
		Base:     base,
		Title:    strings.TrimSpace(raw.Title),
		Flags:    strings.TrimSpace(raw.Flags),
		Outcome:  outcome,
	}, nil
}
