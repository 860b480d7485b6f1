package cooklang_test

import (
	"testing"

	"github.com/alnah/go-cooktex/cooklang"
)

func TestMetadataGet(t *testing.T) {
	t.Parallel()

	meta := cooklang.Metadata{}
	meta.Set("Prep_Time", " 15 ")

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "exact key", key: "prep time", want: "15"},
		{name: "underscore spelling", key: "prep_time", want: "15"},
		{name: "mixed case", key: "Prep Time", want: "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			got, ok := meta.Get(tt.key)
			if !ok || got != tt.want {
				t.Errorf("Get(%q) = %q, %v, want %q, true", tt.key, got, ok, tt.want)
			}
		})
	}
}

func TestMetadataAccessors(t *testing.T) {
	t.Parallel()

	t.Run("required keys absent", func(t *testing.T) {
		t.Parallel()

		meta := cooklang.Metadata{}
		if _, ok := meta.Title(); ok {
			t.Error("Title() ok = true, want false")
		}
		if _, ok := meta.Description(); ok {
			t.Error("Description() ok = true, want false")
		}
		if _, ok := meta.Servings(); ok {
			t.Error("Servings() ok = true, want false")
		}
	})

	t.Run("empty value counts as absent", func(t *testing.T) {
		t.Parallel()

		meta := cooklang.Metadata{}
		meta.Set("title", "   ")
		if _, ok := meta.Title(); ok {
			t.Error("Title() ok = true for blank value, want false")
		}
	})

	t.Run("non-integer time is absent", func(t *testing.T) {
		t.Parallel()

		meta := cooklang.Metadata{}
		meta.Set("cook time", "about an hour")
		if _, ok := meta.CookTimeMinutes(); ok {
			t.Error("CookTimeMinutes() ok = true for text value, want false")
		}
	})

	t.Run("integer times parse", func(t *testing.T) {
		t.Parallel()

		meta := cooklang.Metadata{}
		meta.Set("prep time", "90")
		if mins, ok := meta.PrepTimeMinutes(); !ok || mins != 90 {
			t.Errorf("PrepTimeMinutes() = %d, %v, want 90, true", mins, ok)
		}
	})
}

func TestValueString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value cooklang.Value
		want  string
	}{
		{name: "integer", value: cooklang.NumberValue(2), want: "2"},
		{name: "decimal keeps shortest form", value: cooklang.NumberValue(0.5), want: "0.5"},
		{name: "fraction result", value: cooklang.NumberValue(1.0 / 4.0), want: "0.25"},
		{name: "text verbatim", value: cooklang.TextValue("a pinch"), want: "a pinch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
