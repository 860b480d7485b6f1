package units_test

import (
	"errors"
	"testing"

	"github.com/alnah/go-cooktex/cooklang"
	"github.com/alnah/go-cooktex/units"
)

func qty(n float64, unit string) cooklang.Quantity {
	return cooklang.Quantity{Value: cooklang.NumberValue(n), Unit: unit}
}

// ---------------------------------------------------------------------------
// TestLookup - Alias resolution
// ---------------------------------------------------------------------------

func TestLookup(t *testing.T) {
	t.Parallel()

	conv := units.Default()

	tests := []struct {
		name     string
		input    string
		wantName string
	}{
		{name: "canonical name", input: "tsp", wantName: "tsp"},
		{name: "plural alias", input: "tablespoons", wantName: "tbsp"},
		{name: "case insensitive", input: "Cups", wantName: "cup"},
		{name: "whitespace trimmed", input: " ml ", wantName: "ml"},
		{name: "temperature letter alias", input: "F", wantName: "°F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			u, ok := conv.Lookup(tt.input)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.input)
			}
			if u.Name != tt.wantName {
				t.Errorf("Lookup(%q).Name = %q, want %q", tt.input, u.Name, tt.wantName)
			}
		})
	}

	t.Run("unknown unit", func(t *testing.T) {
		t.Parallel()

		if _, ok := conv.Lookup("handful"); ok {
			t.Error("Lookup(handful) found, want miss")
		}
	})
}

// ---------------------------------------------------------------------------
// TestCompatible
// ---------------------------------------------------------------------------

func TestCompatible(t *testing.T) {
	t.Parallel()

	conv := units.Default()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "same dimension different system", a: "tsp", b: "ml", want: true},
		{name: "volume vs mass", a: "cup", b: "g", want: false},
		{name: "unknown unit", a: "handful", b: "ml", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			if got := conv.Compatible(tt.a, tt.b); got != tt.want {
				t.Errorf("Compatible(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvert - Best-unit selection per system
// ---------------------------------------------------------------------------

func TestConvert(t *testing.T) {
	t.Parallel()

	conv := units.Default()

	tests := []struct {
		name   string
		in     cooklang.Quantity
		target units.System
		want   cooklang.Quantity
	}{
		{
			name:   "tsp to metric picks ml",
			in:     qty(3, "tsp"),
			target: units.SystemMetric,
			want:   qty(14.787, "ml"),
		},
		{
			name:   "large volume to metric picks litres",
			in:     qty(2, "quarts"),
			target: units.SystemMetric,
			want:   qty(1.893, "l"),
		},
		{
			name:   "grams to imperial picks pounds",
			in:     qty(500, "g"),
			target: units.SystemImperial,
			want:   qty(1.102, "lb"),
		},
		{
			name:   "time normalizes to hours",
			in:     qty(90, "minutes"),
			target: units.SystemMetric,
			want:   qty(1.5, "hours"),
		},
		{
			name:   "fahrenheit to celsius",
			in:     qty(350, "°F"),
			target: units.SystemMetric,
			want:   qty(176.667, "°C"),
		},
		{
			name:   "no conversion target leaves quantity alone",
			in:     qty(3, "tsp"),
			target: units.SystemNone,
			want:   qty(3, "tsp"),
		},
		{
			name:   "unitless quantity passes through",
			in:     qty(2, ""),
			target: units.SystemMetric,
			want:   qty(2, ""),
		},
		{
			name:   "already best unit stays as written",
			in:     qty(250, "ml"),
			target: units.SystemMetric,
			want:   qty(250, "ml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			got, err := conv.Convert(tt.in, tt.target)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Convert(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}

	t.Run("unknown unit is an error", func(t *testing.T) {
		t.Parallel()

		_, err := conv.Convert(qty(1, "handful"), units.SystemMetric)
		if !errors.Is(err, units.ErrUnknownUnit) {
			t.Errorf("Convert() error = %v, want ErrUnknownUnit", err)
		}
	})

	t.Run("text value passes through", func(t *testing.T) {
		t.Parallel()

		in := cooklang.Quantity{Value: cooklang.TextValue("a splash"), Unit: "ml"}
		got, err := conv.Convert(in, units.SystemMetric)
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if got != in {
			t.Errorf("Convert() = %+v, want unchanged", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestConvertRecipe - In-place pass with warnings
// ---------------------------------------------------------------------------

func TestConvertRecipe(t *testing.T) {
	t.Parallel()

	conv := units.Default()

	water := qty(2, "cups")
	weird := qty(1, "handful")
	timer := qty(120, "minutes")
	oven := qty(350, "°F")

	r := &cooklang.Recipe{
		Ingredients: []cooklang.Ingredient{
			{Name: "water", Quantity: &water},
			{Name: "herbs", Quantity: &weird},
			{Name: "salt"},
		},
		Timers:           []cooklang.Timer{{Name: "simmer", Quantity: &timer}},
		InlineQuantities: []cooklang.Quantity{oven},
	}

	warnings := conv.ConvertRecipe(r, units.SystemMetric)

	if len(warnings) != 1 {
		t.Fatalf("got %d warnings (%v), want 1", len(warnings), warnings)
	}
	if !errors.Is(warnings[0].Err, units.ErrUnknownUnit) {
		t.Errorf("warning error = %v, want ErrUnknownUnit", warnings[0].Err)
	}

	if got := *r.Ingredients[0].Quantity; got != qty(473.176, "ml") {
		t.Errorf("water = %+v, want 473.176 ml", got)
	}
	if got := *r.Ingredients[1].Quantity; got != qty(1, "handful") {
		t.Errorf("herbs = %+v, want unchanged", got)
	}
	if got := *r.Timers[0].Quantity; got != qty(2, "hours") {
		t.Errorf("timer = %+v, want 2 hours", got)
	}
	if got := r.InlineQuantities[0]; got != qty(176.667, "°C") {
		t.Errorf("oven = %+v, want 176.667 °C", got)
	}
}
