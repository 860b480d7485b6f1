package units

import (
	"strings"

	"github.com/alnah/go-cooktex/cooklang"
)

// GroupedQuantity accumulates zero or more quantities for one ingredient.
// Compatible quantities are summed into a single bucket; incompatible ones
// (different dimensions, unknown units, text values) stay as separate
// buckets in insertion order, to be listed side by side.
type GroupedQuantity struct {
	buckets []cooklang.Quantity
}

// Add merges q into the group. The first bucket q is compatible with
// absorbs it, converting units when needed; otherwise q starts a new
// bucket.
func (g *GroupedQuantity) Add(q cooklang.Quantity, c *Converter) {
	for i := range g.buckets {
		if g.merge(&g.buckets[i], q, c) {
			return
		}
	}
	g.buckets = append(g.buckets, q)
}

// merge tries to fold q into bucket b.
func (g *GroupedQuantity) merge(b *cooklang.Quantity, q cooklang.Quantity, c *Converter) bool {
	if b.Value.IsText() || q.Value.IsText() {
		return false
	}

	// Identical unit spellings (including both unitless) add directly.
	if strings.EqualFold(strings.TrimSpace(b.Unit), strings.TrimSpace(q.Unit)) {
		b.Value = cooklang.NumberValue(b.Value.Number() + q.Value.Number())
		return true
	}

	if !b.HasUnit() || !q.HasUnit() {
		return false
	}

	// Different spellings of convertible units: convert into the bucket's
	// unit and add.
	from, ok := c.Lookup(q.Unit)
	if !ok {
		return false
	}
	to, ok := c.Lookup(b.Unit)
	if !ok || from.Dim != to.Dim {
		return false
	}

	converted := c.ConvertValue(q.Value.Number(), from, to)
	b.Value = cooklang.NumberValue(roundQuantity(b.Value.Number() + converted))
	return true
}

// IsEmpty reports whether no quantity was ever added.
func (g *GroupedQuantity) IsEmpty() bool {
	return len(g.buckets) == 0
}

// Quantities returns the buckets in insertion order.
func (g *GroupedQuantity) Quantities() []cooklang.Quantity {
	return g.buckets
}
