package cooktex

import (
	"fmt"

	"github.com/alnah/go-cooktex/cooklang"
)

// FormatQuantity renders a quantity as "<value> <unit>", or just the value
// when no unit is present. Values use their default textual form; the
// result contains no LaTeX-reserved characters by construction, so it needs
// no escaping.
func FormatQuantity(q cooklang.Quantity) string {
	if q.HasUnit() {
		return q.Value.String() + " " + q.Unit
	}
	return q.Value.String()
}

// FormatTimer renders a timer as "<quantity> (<name>)", falling back to
// whichever of the two is present. A timer with neither is a programming
// error: the parser never produces one, so FormatTimer panics instead of
// guessing.
func FormatTimer(quantity *cooklang.Quantity, name string) string {
	switch {
	case quantity != nil && name != "":
		return fmt.Sprintf("%s (%s)", FormatQuantity(*quantity), name)
	case quantity != nil:
		return FormatQuantity(*quantity)
	case name != "":
		return name
	default:
		panic("cooktex: timer must have either quantity or name")
	}
}

// FormatMinutes renders a duration of whole minutes as "N mins",
// "H hrs", or "H hrs M mins".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d mins", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d hrs", hours)
	}
	return fmt.Sprintf("%d hrs %d mins", hours, mins)
}
