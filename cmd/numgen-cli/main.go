package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-numgen/pkg/fixture"
	"github.com/goliatone/go-numgen/pkg/generator"
	"github.com/goliatone/go-numgen/pkg/prompt"
	"github.com/goliatone/go-numgen/pkg/report"
	"github.com/goliatone/go-numgen/pkg/skeleton"
)

func main() {
	dialectFlag := flag.String("dialect", "go", "target dialect (c, cpp, go, rust)")
	suiteFlag := flag.String("suite", "decimal-string", "fixture suite id to emit")
	catalogFlag := flag.String("catalog", "", "directory of fixture catalog files (built-in catalog if empty)")
	outputFlag := flag.String("output", "generated", "output directory for rendered programs")
	reportFlag := flag.Bool("report", false, "write index.html and summary.txt next to the programs")
	interactiveFlag := flag.Bool("interactive", false, "pick dialect and suite through prompts")
	listFlag := flag.Bool("list", false, "list available suites and exit")
	flag.Parse()

	ctx := context.Background()

	gen := generator.New(catalogOptions(*catalogFlag)...)

	if *listFlag {
		for _, id := range gen.SuiteIDs() {
			fmt.Println(id)
		}
		return
	}

	dialect, suiteID, writeReport := *dialectFlag, *suiteFlag, *reportFlag
	if *interactiveFlag {
		selection, err := prompt.Choose(ctx, prompt.New(), gen.SuiteIDs())
		if errors.Is(err, prompt.ErrInterrupted) {
			return
		}
		if err != nil {
			log.Fatalf("Interactive selection failed: %v", err)
		}
		dialect, suiteID, writeReport = string(selection.Dialect), selection.SuiteID, selection.Report
	}

	parsedDialect, err := skeleton.ParseDialect(dialect)
	if err != nil {
		log.Fatalf("Invalid dialect: %v", err)
	}

	suite, err := gen.Suite(suiteID)
	if err != nil {
		log.Fatalf("Failed to resolve suite: %v", err)
	}

	manifest, err := gen.EmitSuite(ctx, *outputFlag, parsedDialect, suite)
	if err != nil {
		log.Fatalf("Failed to emit suite: %v", err)
	}
	fmt.Printf("Wrote %d programs to %s\n", len(manifest.Programs), *outputFlag)

	if writeReport {
		renderer, err := report.NewRenderer()
		if err != nil {
			log.Fatalf("Failed to build report renderer: %v", err)
		}
		names, err := renderer.WriteArtifacts(*outputFlag, manifest)
		if err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		for _, name := range names {
			fmt.Printf("Report written to %s/%s\n", *outputFlag, name)
		}
	}
}

func catalogOptions(dir string) []generator.Option {
	if dir == "" {
		return nil
	}
	catalog, err := fixture.LoadFS(os.DirFS(dir))
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if catalog.Empty() {
		log.Fatalf("Catalog directory %q holds no suites", dir)
	}
	return []generator.Option{generator.WithCatalog(catalog)}
}
