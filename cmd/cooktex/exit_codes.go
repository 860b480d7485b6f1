package main

import (
	"errors"
	"os"

	cooktex "github.com/alnah/go-cooktex"
	"github.com/alnah/go-cooktex/internal/config"
	"github.com/alnah/go-cooktex/units"
)

// Exit codes for the cooktex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Cookbook generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, units file, or template content
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrCloneTemplate) ||
		errors.Is(err, cooktex.ErrReadTemplate) ||
		errors.Is(err, cooktex.ErrWriteTemplate) ||
		errors.Is(err, units.ErrReadUnitsFile) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoCollections) ||
		errors.Is(err, ErrNoTemplateDir) ||
		errors.Is(err, ErrNoOutputDir) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, units.ErrUnknownSystem) ||
		errors.Is(err, units.ErrUnknownDimension) ||
		errors.Is(err, units.ErrEmptyUnitName) ||
		errors.Is(err, units.ErrInvalidFactor) ||
		errors.Is(err, cooktex.ErrInvalidCollection) ||
		errors.Is(err, cooktex.ErrPlaceholderMissing) {
		return ExitUsage
	}

	return ExitGeneral
}
