package units_test

import (
	"testing"

	"github.com/alnah/go-cooktex/cooklang"
	"github.com/alnah/go-cooktex/units"
)

func TestGroupedQuantityAdd(t *testing.T) {
	t.Parallel()

	conv := units.Default()

	tests := []struct {
		name string
		in   []cooklang.Quantity
		want []cooklang.Quantity
	}{
		{
			name: "same unit adds directly",
			in:   []cooklang.Quantity{qty(1, "cup"), qty(2, "cups")},
			want: []cooklang.Quantity{qty(3, "cup")},
		},
		{
			name: "convertible units merge into first bucket",
			in:   []cooklang.Quantity{qty(1, "tsp"), qty(1, "tbsp")},
			want: []cooklang.Quantity{qty(4, "tsp")},
		},
		{
			name: "unitless counts add",
			in:   []cooklang.Quantity{qty(2, ""), qty(3, "")},
			want: []cooklang.Quantity{qty(5, "")},
		},
		{
			name: "unitless and unit stay separate",
			in:   []cooklang.Quantity{qty(2, ""), qty(100, "g")},
			want: []cooklang.Quantity{qty(2, ""), qty(100, "g")},
		},
		{
			name: "different dimensions stay separate",
			in:   []cooklang.Quantity{qty(1, "cup"), qty(100, "g")},
			want: []cooklang.Quantity{qty(1, "cup"), qty(100, "g")},
		},
		{
			name: "unknown unit stays separate even from itself spelled differently",
			in:   []cooklang.Quantity{qty(1, "handful"), qty(2, "handfuls")},
			want: []cooklang.Quantity{qty(1, "handful"), qty(2, "handfuls")},
		},
		{
			name: "identical unknown unit spellings still add",
			in:   []cooklang.Quantity{qty(1, "handful"), qty(2, "handful")},
			want: []cooklang.Quantity{qty(3, "handful")},
		},
		{
			name: "text value never merges",
			in: []cooklang.Quantity{
				{Value: cooklang.TextValue("a pinch")},
				{Value: cooklang.TextValue("a pinch")},
			},
			want: []cooklang.Quantity{
				{Value: cooklang.TextValue("a pinch")},
				{Value: cooklang.TextValue("a pinch")},
			},
		},
		{
			name: "later quantity skips incompatible bucket and finds a match",
			in:   []cooklang.Quantity{qty(100, "g"), qty(1, "cup"), qty(50, "grams")},
			want: []cooklang.Quantity{qty(150, "g"), qty(1, "cup")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			var g units.GroupedQuantity
			for _, q := range tt.in {
				g.Add(q, conv)
			}

			got := g.Quantities()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d buckets (%v), want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("bucket %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGroupedQuantityIsEmpty(t *testing.T) {
	t.Parallel()

	var g units.GroupedQuantity
	if !g.IsEmpty() {
		t.Error("IsEmpty() = false for fresh group, want true")
	}

	g.Add(qty(1, "cup"), units.Default())
	if g.IsEmpty() {
		t.Error("IsEmpty() = true after Add, want false")
	}
}
