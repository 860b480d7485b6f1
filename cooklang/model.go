package cooklang

// Recipe is the parsed, structured representation of one recipe. Ingredients,
// cookware, timers, and inline quantities live in flat recipe-owned tables;
// step items reference them by index so entries keep stable identities for
// the whole rendering pipeline.
type Recipe struct {
	Metadata         Metadata
	Sections         []Section
	Ingredients      []Ingredient
	Cookware         []Cookware
	Timers           []Timer
	InlineQuantities []Quantity
}

// Section is a named (or unnamed) run of recipe content.
type Section struct {
	Name    string
	Content []Content
}

// Content is one section entry: either a Step or a TextBlock. The interface
// is sealed; renderers switch exhaustively over the two variants.
type Content interface {
	isContent()
}

// Step is an ordered sequence of items that together form one instruction
// sentence.
type Step struct {
	Items []Item
}

// TextBlock is free text between steps (a cooklang note paragraph).
type TextBlock struct {
	Text string
}

func (Step) isContent()      {}
func (TextBlock) isContent() {}

// Item is one positional element of a step. The interface is sealed: the
// five variants below are the only implementations, and rendering code
// switches over all of them.
type Item interface {
	isItem()
}

// TextItem is literal instruction text.
type TextItem struct {
	Value string
}

// IngredientRef points into Recipe.Ingredients.
type IngredientRef struct {
	Index int
}

// CookwareRef points into Recipe.Cookware.
type CookwareRef struct {
	Index int
}

// TimerRef points into Recipe.Timers.
type TimerRef struct {
	Index int
}

// InlineQuantityRef points into Recipe.InlineQuantities.
type InlineQuantityRef struct {
	Index int
}

func (TextItem) isItem()          {}
func (IngredientRef) isItem()     {}
func (CookwareRef) isItem()       {}
func (TimerRef) isItem()          {}
func (InlineQuantityRef) isItem() {}

// Ingredient is one mention of an ingredient in the recipe text. Repeated
// mentions of the same name produce separate table entries; aggregation
// groups them by Name, not by index.
type Ingredient struct {
	Name     string
	Alias    string // display name override from @name|alias{}
	Quantity *Quantity

	Optional  bool // @?name - flagged as optional in listings
	Hidden    bool // @-name - aggregated but never listed
	Reference bool // @&name - refers to an earlier mention
}

// DisplayName returns the name to show inside step text, preferring the
// alias when one was given.
func (i *Ingredient) DisplayName() string {
	if i.Alias != "" {
		return i.Alias
	}
	return i.Name
}

// ShouldBeListed reports whether the ingredient appears in the ingredient
// listing. Hidden ingredients are still aggregated so quantities stay
// correct, but are suppressed from display.
func (i *Ingredient) ShouldBeListed() bool {
	return !i.Hidden
}

// Cookware is one mention of a pan, bowl, or other tool.
type Cookware struct {
	Name     string
	Quantity *Quantity
}

// Timer is a named or anonymous duration. The parser guarantees at least one
// of Name and Quantity is set; a timer with neither is unrepresentable in
// well-formed input.
type Timer struct {
	Name     string
	Quantity *Quantity
}
