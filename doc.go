// Package cooktex transpiles cooklang recipes into LaTeX cookbook sources.
//
// # Quick Start
//
// Parse a recipe and render it:
//
//	recipe, warnings, err := cooklang.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	conv, err := units.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tex, err := cooktex.Render(recipe, conv)
//
// For whole cookbooks, the Transpiler processes collections (directories of
// .cook files) and produces one .tex file per recipe plus the
// table-of-contents fragment substituted into the book's main.tex:
//
//	tr := cooktex.NewTranspiler(outDir, cooktex.WithConverter(conv))
//	toc := latex.NewBuilder()
//	for _, dir := range collections {
//	    res, err := tr.TranspileCollection(dir)
//	    ...
//	    res.AppendTOC(toc)
//	}
//	err = cooktex.WriteMainTex(outDir, toc.Build())
//
// # Rendering Pipeline
//
// Each recipe flows through these stages:
//
//  1. Parsing (package cooklang): source text to the structured recipe model
//  2. Optional unit conversion (package units): in-place rewrite to a system
//  3. Ingredient aggregation: per-section, name-keyed quantity summing
//  4. LaTeX emission (package latex): commands and environments, escaped
//
// Failures are isolated per recipe: a recipe missing required metadata or
// failing to parse is skipped with a diagnostic while the rest of its
// collection still renders. A collection only fails when none of its
// recipes succeed.
//
// # Diagnostics
//
// The library never prints. Parser warnings, conversion warnings, and
// per-file failures are returned as diagnostics on the collection result;
// the cooktex command prints them to stderr.
package cooktex
