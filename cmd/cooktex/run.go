package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	cooktex "github.com/alnah/go-cooktex"
	"github.com/alnah/go-cooktex/internal/config"
	"github.com/alnah/go-cooktex/internal/fileutil"
	"github.com/alnah/go-cooktex/latex"
	"github.com/alnah/go-cooktex/units"
)

// Sentinel errors for CLI validation.
var (
	ErrNoCollections = errors.New("no collection directories specified")
	ErrNoTemplateDir = errors.New("template directory not specified (use --template-dir)")
	ErrNoOutputDir   = errors.New("output directory not specified (use --out-dir)")
	ErrCloneTemplate = errors.New("failed to clone template directory")
)

// run drives the whole cookbook build: clone the template tree, transpile
// every collection, and substitute the table-of-contents fragment into
// main.tex. Collection failures are warnings; only run-level problems
// return an error.
func run(flags *cliFlags, stdout, stderr io.Writer) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Merge config defaults under CLI flags (CLI wins).
	templateDir := firstNonEmpty(flags.templateDir, cfg.Template.Dir)
	outDir := firstNonEmpty(flags.outDir, cfg.Output.Dir)
	systemName := firstNonEmpty(flags.system, cfg.Units.System)
	unitsFile := firstNonEmpty(flags.unitsFile, cfg.Units.File)

	switch {
	case templateDir == "":
		return ErrNoTemplateDir
	case outDir == "":
		return ErrNoOutputDir
	case len(flags.collections) == 0:
		return ErrNoCollections
	}

	system, err := units.ParseSystem(systemName)
	if err != nil {
		return err
	}

	var unitsFiles []units.UnitsFile
	if unitsFile != "" {
		f, err := units.LoadUnitsFile(unitsFile)
		if err != nil {
			return err
		}
		unitsFiles = append(unitsFiles, f)
	}
	converter, err := units.NewConverter(unitsFiles...)
	if err != nil {
		return err
	}

	if err := fileutil.CloneDir(templateDir, outDir); err != nil {
		return fmt.Errorf("%w: %v", ErrCloneTemplate, err)
	}

	transpiler := cooktex.NewTranspiler(outDir,
		cooktex.WithSystem(system),
		cooktex.WithConverter(converter),
	)

	toc := latex.NewBuilder()
	for _, dir := range flags.collections {
		if flags.verbose {
			fmt.Fprintf(stderr, "Processing collection %s\n", dir)
		}

		result, err := transpiler.TranspileCollection(dir)
		if result != nil {
			if !flags.quiet {
				for _, d := range result.Diagnostics {
					fmt.Fprintln(stderr, d)
				}
			}
			// Failed collections still contribute their chapter heading,
			// matching the layout of a book with an empty chapter rather
			// than silently renumbering the ones that follow.
			result.AppendTOC(toc)
		}
		if err != nil {
			fmt.Fprintf(stderr, "warning: failed to process collection %s: %v\n", dir, err)
		}
	}

	if err := cooktex.WriteMainTex(outDir, toc.Build()); err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s\n", filepath.Join(outDir, "main.tex"))
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
