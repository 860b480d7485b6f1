package cooktex

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cooktex/cooklang"
	"github.com/alnah/go-cooktex/internal/fileutil"
	"github.com/alnah/go-cooktex/internal/mdtex"
	"github.com/alnah/go-cooktex/latex"
	"github.com/alnah/go-cooktex/units"
)

const (
	// RecipeExt is the file extension recipe sources must carry.
	RecipeExt = ".cook"
	// RecipesPlaceholder is the literal token in main.tex that the
	// table-of-contents fragment replaces.
	RecipesPlaceholder = "%{{recipes}}"

	outputExt       = ".tex"
	introSourceName = "intro.md"
	introOutputName = "intro.tex"
	mainTexName     = "main.tex"
)

// Diagnostic is one non-fatal message produced while transpiling: a parser
// warning, a conversion warning, or a skipped file. Messages carry their
// own source context; Path identifies the file for programmatic filtering.
type Diagnostic struct {
	Path    string
	Message string
}

func (d Diagnostic) String() string {
	return d.Message
}

// CollectionResult is the outcome of transpiling one collection directory.
type CollectionResult struct {
	Name        string   // collection (chapter) name
	RecipeFiles []string // slash-separated paths relative to the output root
	IntroFile   string   // rendered intro page, if the collection has one
	Diagnostics []Diagnostic
}

// AppendTOC appends this collection's table-of-contents fragment to b: the
// chapter heading, the intro page if present, and one input command per
// rendered recipe with a page break between consecutive recipes (not after
// the last).
func (r *CollectionResult) AppendTOC(b *latex.Builder) {
	b.AddSimpleCommand("chapter", latex.Escape(r.Name))
	if r.IntroFile != "" {
		b.AddSimpleCommand("input", r.IntroFile)
	}
	for i, file := range r.RecipeFiles {
		if i > 0 {
			b.AddCommand("newpage")
		}
		b.AddSimpleCommand("input", file)
	}
}

// Transpiler renders recipe collections into LaTeX files under an output
// root. It holds no per-recipe state and may be reused across collections.
type Transpiler struct {
	outDir    string
	system    units.System
	converter *units.Converter
}

// TranspilerOption configures a Transpiler.
type TranspilerOption func(*Transpiler)

// WithSystem sets the unit system recipes are converted to before
// rendering. The default performs no conversion.
func WithSystem(s units.System) TranspilerOption {
	return func(t *Transpiler) {
		t.system = s
	}
}

// WithConverter sets the unit converter, e.g. one extended by a custom
// units file.
func WithConverter(c *units.Converter) TranspilerOption {
	return func(t *Transpiler) {
		t.converter = c
	}
}

// NewTranspiler creates a Transpiler writing below outDir.
func NewTranspiler(outDir string, opts ...TranspilerOption) *Transpiler {
	t := &Transpiler{
		outDir: outDir,
		system: units.SystemNone,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.converter == nil {
		t.converter = units.Default()
	}
	return t
}

// TranspileCollection renders every recipe file in the collection
// directory. Per-file failures become diagnostics and the remaining files
// are still processed; the returned error is collection-level only: an
// unreadable directory, an invalid collection name, or zero successfully
// rendered recipes (ErrNoRecipes). The result is non-nil whenever the
// directory could be listed, so callers can surface diagnostics even for
// failed collections.
func (t *Transpiler) TranspileCollection(dir string) (*CollectionResult, error) {
	name, err := CollectionName(dir)
	if err != nil {
		return nil, err
	}

	files, err := fileutil.ListFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("reading collection %s: %w", dir, err)
	}

	res := &CollectionResult{Name: name}
	for _, file := range files {
		switch {
		case filepath.Base(file) == introSourceName:
			rel, err := t.transpileIntro(file, name)
			if err != nil {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Path:    file,
					Message: fmt.Sprintf("warning: skipping intro page %s: %v", file, err),
				})
				continue
			}
			res.IntroFile = rel

		case filepath.Ext(file) == RecipeExt:
			rel, diags, err := t.transpileRecipe(file, name)
			res.Diagnostics = append(res.Diagnostics, diags...)
			if err != nil {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Path:    file,
					Message: fmt.Sprintf("warning: skipping recipe %s: %v", file, err),
				})
				continue
			}
			res.RecipeFiles = append(res.RecipeFiles, rel)
		}
		// Other files (editor droppings, READMEs) are not recipes; ignore.
	}

	if len(res.RecipeFiles) == 0 {
		return res, fmt.Errorf("%w in collection %s", ErrNoRecipes, name)
	}
	return res, nil
}

// transpileRecipe runs one recipe through parse, optional unit conversion,
// render, and write. The returned path is relative to the output root.
func (t *Transpiler) transpileRecipe(file, collection string) (string, []Diagnostic, error) {
	contents, err := fileutil.ReadFileString(file)
	if err != nil {
		return "", nil, err
	}

	recipe, warnings, err := cooklang.Parse(contents)
	if err != nil {
		var parseErr *cooklang.ParseError
		if errors.As(err, &parseErr) {
			return "", nil, fmt.Errorf("parse failed\n%s", parseErr.Format(file, contents))
		}
		return "", nil, err
	}

	var diags []Diagnostic
	for _, w := range warnings {
		diags = append(diags, Diagnostic{Path: file, Message: w.Format(file, contents)})
	}

	if t.system != units.SystemNone {
		for _, w := range t.converter.ConvertRecipe(recipe, t.system) {
			diags = append(diags, Diagnostic{Path: file, Message: fmt.Sprintf("%s: warning: %v", file, w)})
		}
	}

	tex, err := Render(recipe, t.converter)
	if err != nil {
		return "", diags, err
	}

	stem := fileStem(file)
	if stem == "" {
		return "", diags, fmt.Errorf("invalid recipe file name: %s", file)
	}

	rel := collection + "/" + stem + outputExt
	target := filepath.Join(t.outDir, collection, stem+outputExt)
	if err := fileutil.WriteFileString(target, tex); err != nil {
		return "", diags, err
	}
	return rel, diags, nil
}

// transpileIntro converts a collection's intro.md into a LaTeX fragment.
func (t *Transpiler) transpileIntro(file, collection string) (string, error) {
	contents, err := fileutil.ReadFileString(file)
	if err != nil {
		return "", err
	}
	tex, err := mdtex.Convert([]byte(contents))
	if err != nil {
		return "", err
	}
	target := filepath.Join(t.outDir, collection, introOutputName)
	if err := fileutil.WriteFileString(target, tex); err != nil {
		return "", err
	}
	return collection + "/" + introOutputName, nil
}

// CollectionName derives the chapter name from a collection directory path.
func CollectionName(dir string) (string, error) {
	base := filepath.Base(filepath.Clean(dir))
	if base == "." || base == ".." || base == string(filepath.Separator) || base == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidCollection, dir)
	}
	return base, nil
}

// WriteMainTex substitutes the table-of-contents fragment for the
// RecipesPlaceholder token in <outDir>/main.tex. The replacement happens
// exactly once; a missing placeholder or unreadable template is fatal to
// the whole run.
func WriteMainTex(outDir, fragment string) error {
	path := filepath.Join(outDir, mainTexName)

	contents, err := fileutil.ReadFileString(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}
	if !strings.Contains(contents, RecipesPlaceholder) {
		return fmt.Errorf("%w: %s", ErrPlaceholderMissing, path)
	}

	replaced := strings.Replace(contents, RecipesPlaceholder, fragment, 1)
	if err := fileutil.WriteFileString(path, replaced); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTemplate, err)
	}
	return nil
}

// fileStem returns the file name without directory or extension.
func fileStem(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
