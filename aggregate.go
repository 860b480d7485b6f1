package cooktex

import (
	"sort"

	"github.com/alnah/go-cooktex/cooklang"
	"github.com/alnah/go-cooktex/units"
)

// GroupedIngredient is the deduplicated, quantity-summed view of one
// ingredient name within one section. It is derived fresh for each render
// and discarded afterwards.
type GroupedIngredient struct {
	// Index is the ingredient-table index of the first mention, which
	// fixes the group's position in the listing.
	Index      int
	Ingredient *cooklang.Ingredient
	Quantity   units.GroupedQuantity
}

// SectionIngredients pairs a section's name with its grouped ingredients.
type SectionIngredients struct {
	Name   string
	Groups []GroupedIngredient
}

// IngredientsBySection aggregates ingredient mentions per section. Within a
// section, mentions sharing a name collapse into one group whose quantities
// are summed through the converter; groups are ordered by first occurrence,
// never alphabetically. Sections are aggregated independently and never
// merge.
func IngredientsBySection(r *cooklang.Recipe, conv *units.Converter) []SectionIngredients {
	result := make([]SectionIngredients, 0, len(r.Sections))

	for _, section := range r.Sections {
		byName := map[string]int{} // ingredient name -> position in groups
		var groups []GroupedIngredient

		for _, content := range section.Content {
			step, ok := content.(cooklang.Step)
			if !ok {
				continue
			}
			for _, item := range step.Items {
				ref, ok := item.(cooklang.IngredientRef)
				if !ok {
					continue
				}
				ingredient := &r.Ingredients[ref.Index]

				pos, seen := byName[ingredient.Name]
				if !seen {
					pos = len(groups)
					byName[ingredient.Name] = pos
					groups = append(groups, GroupedIngredient{
						Index:      ref.Index,
						Ingredient: ingredient,
					})
				}
				if ingredient.Quantity != nil {
					groups[pos].Quantity.Add(*ingredient.Quantity, conv)
				}
			}
		}

		// First-occurrence table indices are already monotonic with mention
		// order; the explicit sort keeps the listing deterministic even for
		// hand-built recipes whose tables are not in mention order.
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Index < groups[j].Index
		})

		result = append(result, SectionIngredients{Name: section.Name, Groups: groups})
	}

	return result
}
