package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-numgen/pkg/skeleton"
)

// scriptedDriver replays canned answers so selection flows run without a
// terminal.
type scriptedDriver struct {
	selects  []int
	confirms []bool
	err      error
}

func (d *scriptedDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	if len(d.selects) == 0 {
		return 0, errors.New("scripted driver: out of select answers")
	}
	answer := d.selects[0]
	d.selects = d.selects[1:]
	return answer, nil
}

func (d *scriptedDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	return "", errors.New("scripted driver: unexpected input prompt")
}

func (d *scriptedDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	if len(d.confirms) == 0 {
		return false, errors.New("scripted driver: out of confirm answers")
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func TestChoose_HappyPath(t *testing.T) {
	driver := &scriptedDriver{selects: []int{2, 1}, confirms: []bool{true}}

	selection, err := Choose(context.Background(), driver, []string{"decimal-literal", "decimal-string"})
	if err != nil {
		t.Fatalf("choose: %v", err)
	}

	if selection.Dialect != skeleton.DialectGo {
		t.Fatalf("dialect = %s, want go", selection.Dialect)
	}
	if selection.SuiteID != "decimal-string" {
		t.Fatalf("suite = %s, want decimal-string", selection.SuiteID)
	}
	if !selection.Report {
		t.Fatal("report should be enabled")
	}
}

func TestChoose_Interrupted(t *testing.T) {
	driver := &scriptedDriver{err: ErrInterrupted}

	_, err := Choose(context.Background(), driver, []string{"decimal-string"})
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
}

func TestChoose_NoSuites(t *testing.T) {
	if _, err := Choose(context.Background(), &scriptedDriver{}, nil); err == nil {
		t.Fatal("expected error for empty suite list")
	}
}

func TestChoose_NilDriver(t *testing.T) {
	if _, err := Choose(context.Background(), nil, []string{"x"}); err == nil {
		t.Fatal("expected error for nil driver")
	}
}
