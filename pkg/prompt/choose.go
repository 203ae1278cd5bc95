package prompt

import (
	"context"
	"fmt"

	"github.com/goliatone/go-numgen/pkg/skeleton"
)

// Selection is the result of an interactive generation setup.
type Selection struct {
	Dialect skeleton.Dialect
	SuiteID string
	Report  bool
}

// Choose walks the user through picking a dialect, a suite, and whether to
// render report artifacts. suiteIDs must be non-empty.
func Choose(ctx context.Context, driver Driver, suiteIDs []string) (Selection, error) {
	if driver == nil {
		return Selection{}, fmt.Errorf("prompt: driver is required")
	}
	if len(suiteIDs) == 0 {
		return Selection{}, fmt.Errorf("prompt: no suites to choose from")
	}

	dialects := skeleton.Dialects()
	dialectNames := make([]string, len(dialects))
	for i, dialect := range dialects {
		dialectNames[i] = string(dialect)
	}

	dialectIdx, err := driver.Select(ctx, SelectConfig{
		Message: "Target dialect:",
		Options: dialectNames,
	})
	if err != nil {
		return Selection{}, err
	}
	if dialectIdx < 0 || dialectIdx >= len(dialects) {
		return Selection{}, fmt.Errorf("prompt: dialect index %d out of range", dialectIdx)
	}

	suiteIdx, err := driver.Select(ctx, SelectConfig{
		Message: "Fixture suite:",
		Options: suiteIDs,
	})
	if err != nil {
		return Selection{}, err
	}
	if suiteIdx < 0 || suiteIdx >= len(suiteIDs) {
		return Selection{}, fmt.Errorf("prompt: suite index %d out of range", suiteIdx)
	}

	report, err := driver.Confirm(ctx, ConfirmConfig{
		Message: "Write report artifacts?",
		Default: true,
	})
	if err != nil {
		return Selection{}, err
	}

	return Selection{
		Dialect: dialects[dialectIdx],
		SuiteID: suiteIDs[suiteIdx],
		Report:  report,
	}, nil
}
