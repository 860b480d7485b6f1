package units

import (
	"fmt"

	"github.com/alnah/go-cooktex/cooklang"
)

// Warning reports a quantity that survived a conversion pass unchanged.
// Conversion warnings are advisory: the recipe still renders with the
// original quantity.
type Warning struct {
	Quantity cooklang.Quantity
	Err      error
}

func (w Warning) String() string {
	return fmt.Sprintf("cannot convert %q: %v", FormatPlain(w.Quantity), w.Err)
}

// FormatPlain renders a quantity as "<value> <unit>" for diagnostics.
func FormatPlain(q cooklang.Quantity) string {
	if q.HasUnit() {
		return q.Value.String() + " " + q.Unit
	}
	return q.Value.String()
}

// ConvertRecipe rewrites every quantity in the recipe to the target unit
// system, in place. This is the only mutation of a parsed recipe and runs
// once, before rendering. It returns one warning per quantity that could
// not be converted.
func (c *Converter) ConvertRecipe(r *cooklang.Recipe, target System) []Warning {
	var warnings []Warning

	convert := func(q *cooklang.Quantity) {
		converted, err := c.Convert(*q, target)
		if err != nil {
			warnings = append(warnings, Warning{Quantity: *q, Err: err})
			return
		}
		*q = converted
	}

	for i := range r.Ingredients {
		if r.Ingredients[i].Quantity != nil {
			convert(r.Ingredients[i].Quantity)
		}
	}
	for i := range r.Cookware {
		if r.Cookware[i].Quantity != nil {
			convert(r.Cookware[i].Quantity)
		}
	}
	for i := range r.Timers {
		if r.Timers[i].Quantity != nil {
			convert(r.Timers[i].Quantity)
		}
	}
	for i := range r.InlineQuantities {
		convert(&r.InlineQuantities[i])
	}

	return warnings
}
