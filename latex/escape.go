package latex

import "strings"

// escaper prefixes the LaTeX-reserved characters that are safe to escape
// with a plain backslash. Characters needing a command form (~, ^, \) are
// not expected in recipe text.
var escaper = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
)

// Escape backslash-prefixes LaTeX-reserved characters in free text. It must
// be applied to every user-supplied string (titles, descriptions, ingredient
// names, instruction text) before the string is added to a Builder.
func Escape(s string) string {
	return escaper.Replace(s)
}
