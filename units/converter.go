package units

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alnah/go-cooktex/cooklang"
)

// Converter resolves unit names and converts quantities between systems.
// It is immutable after construction and safe for reuse across recipes.
type Converter struct {
	byAlias map[string]*Unit
	byDim   map[Dimension][]*Unit // sorted by descending factor
}

// NewConverter builds a converter from the bundled unit table plus any
// custom units files. Later definitions override earlier ones, so a units
// file can redefine a bundled unit.
func NewConverter(files ...UnitsFile) (*Converter, error) {
	byName := map[string]*Unit{}
	order := []*Unit{}

	register := func(u Unit) {
		key := normalizeUnit(u.Name)
		if existing, ok := byName[key]; ok {
			*existing = u
			return
		}
		copied := u
		byName[key] = &copied
		order = append(order, &copied)
	}

	for _, u := range builtinUnits {
		register(u)
	}
	for _, f := range files {
		for _, entry := range f.Units {
			u, err := entry.toUnit()
			if err != nil {
				return nil, err
			}
			register(u)
		}
	}

	c := &Converter{
		byAlias: map[string]*Unit{},
		byDim:   map[Dimension][]*Unit{},
	}
	for _, u := range order {
		c.byAlias[normalizeUnit(u.Name)] = u
		for _, alias := range u.Aliases {
			c.byAlias[normalizeUnit(alias)] = u
		}
		c.byDim[u.Dim] = append(c.byDim[u.Dim], u)
	}
	for dim := range c.byDim {
		sort.SliceStable(c.byDim[dim], func(i, j int) bool {
			return c.byDim[dim][i].Factor > c.byDim[dim][j].Factor
		})
	}
	return c, nil
}

// Default returns a converter for the bundled unit table alone. It panics
// on error, which cannot happen for the bundled units.
func Default() *Converter {
	c, err := NewConverter()
	if err != nil {
		panic("units: bundled unit table is invalid: " + err.Error())
	}
	return c
}

func normalizeUnit(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup resolves a unit name or alias.
func (c *Converter) Lookup(name string) (*Unit, bool) {
	u, ok := c.byAlias[normalizeUnit(name)]
	return u, ok
}

// Compatible reports whether two unit names are known and measure the same
// physical quantity, i.e. whether quantities in them can be summed.
func (c *Converter) Compatible(a, b string) bool {
	ua, ok := c.Lookup(a)
	if !ok {
		return false
	}
	ub, ok := c.Lookup(b)
	if !ok {
		return false
	}
	return ua.Dim == ub.Dim
}

// ConvertValue converts a numeric value between two known units of the same
// dimension.
func (c *Converter) ConvertValue(v float64, from, to *Unit) float64 {
	base := v*from.Factor + from.Offset
	return (base - to.Offset) / to.Factor
}

// Convert rewrites a quantity into the target system, picking the best
// fitting unit. Quantities with text values or without a unit pass through
// unchanged. An unknown unit is an error; callers downgrade it to a
// warning.
func (c *Converter) Convert(q cooklang.Quantity, target System) (cooklang.Quantity, error) {
	if target == SystemNone || !q.HasUnit() || q.Value.IsText() {
		return q, nil
	}

	from, ok := c.Lookup(q.Unit)
	if !ok {
		return q, fmt.Errorf("%w: %q", ErrUnknownUnit, q.Unit)
	}

	to := c.bestUnit(from, q.Value.Number(), target)
	if to == from {
		return q, nil
	}

	converted := c.ConvertValue(q.Value.Number(), from, to)
	return cooklang.Quantity{
		Value: cooklang.NumberValue(roundQuantity(converted)),
		Unit:  to.Name,
	}, nil
}

// bestUnit picks the target-system unit that keeps the converted value at
// or above one, preferring the largest such unit. Temperatures have exactly
// one unit per system, so they are matched on system alone.
func (c *Converter) bestUnit(from *Unit, value float64, target System) *Unit {
	candidates := make([]*Unit, 0, len(c.byDim[from.Dim]))
	for _, u := range c.byDim[from.Dim] {
		if u.System == target || u.System == SystemNone {
			candidates = append(candidates, u)
		}
	}
	if len(candidates) == 0 {
		return from
	}

	if from.Dim == Temperature {
		return candidates[0]
	}

	base := value*from.Factor + from.Offset
	for _, u := range candidates {
		if math.Abs(base)/u.Factor >= 1 {
			return u // candidates are sorted largest first
		}
	}
	return candidates[len(candidates)-1]
}

// roundQuantity trims float noise from converted values to three decimals,
// enough for kitchen measures.
func roundQuantity(v float64) float64 {
	return math.Round(v*1000) / 1000
}
