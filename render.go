package cooktex

import (
	"fmt"
	"strings"

	"github.com/alnah/go-cooktex/cooklang"
	"github.com/alnah/go-cooktex/latex"
	"github.com/alnah/go-cooktex/units"
)

// difficultyPlaceholder fills the fourth recipemeta argument until recipes
// carry their own difficulty metadata.
const difficultyPlaceholder = "Moderate"

// Render turns one recipe into a LaTeX document fragment. It fails when the
// title, description, or servings metadata is absent; everything else
// renders best-effort.
func Render(r *cooklang.Recipe, conv *units.Converter) (string, error) {
	title, ok := r.Metadata.Title()
	if !ok {
		return "", ErrMissingTitle
	}
	description, ok := r.Metadata.Description()
	if !ok {
		return "", ErrMissingDescription
	}
	meta, err := metaArgs(r.Metadata)
	if err != nil {
		return "", err
	}

	content := latex.NewBuilder()
	content.AddEnv("ingredients", ingredientList(IngredientsBySection(r, conv)))
	content.AddEnv("instructions", instructionList(r))

	doc := latex.NewBuilder()
	doc.AddSimpleCommand("recipeheader", latex.Escape(title)).
		AddSimpleCommand("recipedesc", latex.Escape(description)).
		AddCommand("recipemeta", meta...).
		AddEnv("recipe", content)

	return doc.Build(), nil
}

// metaArgs builds the four positional recipemeta arguments: servings,
// prep time, cook time, difficulty. Missing times render as empty strings
// so the command always has exactly four arguments.
func metaArgs(meta cooklang.Metadata) ([]latex.Arg, error) {
	servings, ok := meta.Servings()
	if !ok {
		return nil, ErrMissingServings
	}

	var prep, cook string
	if m, ok := meta.PrepTimeMinutes(); ok {
		prep = FormatMinutes(m)
	}
	if m, ok := meta.CookTimeMinutes(); ok {
		cook = FormatMinutes(m)
	}

	return []latex.Arg{
		latex.Required(latex.Escape(servings)),
		latex.Required(prep),
		latex.Required(cook),
		latex.Required(difficultyPlaceholder),
	}, nil
}

// ingredientList emits the ingredients environment body: an optional
// section heading per named section, then one \ingredient command per
// listed group.
func ingredientList(sections []SectionIngredients) *latex.Builder {
	b := latex.NewBuilder()

	for _, section := range sections {
		if section.Name != "" {
			b.AddSimpleCommand("ingredientsection", latex.Escape(section.Name))
		}

		for _, group := range section.Groups {
			if !group.Ingredient.ShouldBeListed() {
				continue
			}

			var parts []string
			if quantities := group.Quantity.Quantities(); len(quantities) > 0 {
				formatted := make([]string, len(quantities))
				for i, q := range quantities {
					formatted[i] = FormatQuantity(q)
				}
				parts = append(parts, strings.Join(formatted, ", "))
			}
			parts = append(parts, group.Ingredient.Name)

			args := []latex.Arg{latex.Required(latex.Escape(strings.Join(parts, " ")))}
			if group.Ingredient.Optional {
				args = append(args, latex.Optional(`\BooleanTrue`))
			}
			b.AddCommand("ingredient", args...)
		}
	}

	return b
}

// instructionList emits the instructions environment body. Section headings
// appear only when the recipe has more than one section and the section is
// named.
func instructionList(r *cooklang.Recipe) *latex.Builder {
	b := latex.NewBuilder()

	for _, section := range r.Sections {
		if len(r.Sections) > 1 && section.Name != "" {
			b.AddSimpleCommand("instructionsection", latex.Escape(section.Name))
		}

		for _, content := range section.Content {
			var instruction string
			switch c := content.(type) {
			case cooklang.Step:
				instruction = stepText(r, c)
			case cooklang.TextBlock:
				instruction = c.Text
			default:
				panic(fmt.Sprintf("cooktex: unhandled content type %T", content))
			}
			b.AddSimpleCommand("step", latex.Escape(instruction))
		}
	}

	return b
}

// stepText reconstructs one instruction sentence by concatenating the
// step's items in order. Ingredients use their display name; no aggregation
// happens here.
func stepText(r *cooklang.Recipe, step cooklang.Step) string {
	var sb strings.Builder
	for _, item := range step.Items {
		switch it := item.(type) {
		case cooklang.TextItem:
			sb.WriteString(it.Value)
		case cooklang.IngredientRef:
			sb.WriteString(r.Ingredients[it.Index].DisplayName())
		case cooklang.CookwareRef:
			sb.WriteString(r.Cookware[it.Index].Name)
		case cooklang.TimerRef:
			timer := r.Timers[it.Index]
			sb.WriteString(FormatTimer(timer.Quantity, timer.Name))
		case cooklang.InlineQuantityRef:
			sb.WriteString(FormatQuantity(r.InlineQuantities[it.Index]))
		default:
			panic(fmt.Sprintf("cooktex: unhandled step item type %T", item))
		}
	}
	return sb.String()
}
