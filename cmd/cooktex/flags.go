package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	templateDir string
	outDir      string
	system      string
	unitsFile   string
	config      string
	quiet       bool
	verbose     bool
	version     bool

	collections []string // positional arguments
}

const usageHeader = `cooktex transpiles cooklang recipe collections into a LaTeX cookbook.

Usage:
  cooktex -t <template-dir> -o <out-dir> [flags] <collection-dir>...

Each collection directory becomes one chapter; every .cook file in it
becomes one recipe page. An optional intro.md per collection is rendered
before its recipes.

Flags:
`

// parseFlags parses os.Args-shaped input into cliFlags.
func parseFlags(args []string) (*cliFlags, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("cooktex", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageHeader)
		fmt.Fprintln(fs.Output(), fs.FlagUsages())
	}

	fs.StringVarP(&flags.templateDir, "template-dir", "t", "", "folder containing the LaTeX template tree")
	fs.StringVarP(&flags.outDir, "out-dir", "o", "", "folder to write the generated cookbook to")
	fs.StringVarP(&flags.system, "convert", "c", "", "convert quantities to a unit system (metric or imperial)")
	fs.StringVarP(&flags.unitsFile, "units-file", "u", "", "path to a custom units file in YAML format")
	fs.StringVar(&flags.config, "config", "", "path to a cooktex config file")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress warnings and progress output")
	fs.BoolVar(&flags.verbose, "verbose", false, "print per-collection progress")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	flags.collections = fs.Args()
	return flags, nil
}
