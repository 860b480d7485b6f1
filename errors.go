package cooktex

import "errors"

// Sentinel errors for rendering and transpilation.
var (
	// Required metadata validation (fatal to one recipe).
	ErrMissingTitle       = errors.New("recipe must have a title")
	ErrMissingDescription = errors.New("recipe must have a description")
	ErrMissingServings    = errors.New("recipe must define servings")

	// Collection-level failures.
	ErrInvalidCollection = errors.New("invalid collection path")
	ErrNoRecipes         = errors.New("no recipes were successfully transpiled")

	// Run-level template failures.
	ErrReadTemplate       = errors.New("failed to read main.tex template")
	ErrWriteTemplate      = errors.New("failed to write main.tex")
	ErrPlaceholderMissing = errors.New("recipes placeholder not found in main.tex")
)
