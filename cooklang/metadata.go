package cooklang

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-cooktex/internal/yamlutil"
)

// Well-known metadata keys. Lookups are case-insensitive and accept both
// space- and underscore-separated spellings.
const (
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyServings    = "servings"
	KeyPrepTime    = "prep time"
	KeyCookTime    = "cook time"
)

// Metadata maps normalized keys to raw string values. It holds both YAML
// front matter entries and ">> key: value" lines.
type Metadata map[string]string

// normalizeKey lowercases a key and folds underscores to spaces so
// "Prep_Time", "prep_time", and "prep time" all address the same entry.
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(key, "_", " ")
}

// Get looks up a metadata value by key.
func (m Metadata) Get(key string) (string, bool) {
	v, ok := m[normalizeKey(key)]
	return v, ok
}

// Set stores a metadata value under the normalized key.
func (m Metadata) Set(key, value string) {
	m[normalizeKey(key)] = strings.TrimSpace(value)
}

// Title returns the recipe title.
func (m Metadata) Title() (string, bool) {
	return m.nonEmpty(KeyTitle)
}

// Description returns the recipe description.
func (m Metadata) Description() (string, bool) {
	return m.nonEmpty(KeyDescription)
}

// Servings returns the servings value as written (it may be "4" or
// "4 portions"; rendering stringifies it either way).
func (m Metadata) Servings() (string, bool) {
	return m.nonEmpty(KeyServings)
}

// PrepTimeMinutes returns the preparation time in whole minutes. Values
// that are not plain non-negative integers are treated as absent.
func (m Metadata) PrepTimeMinutes() (int, bool) {
	return m.minutes(KeyPrepTime)
}

// CookTimeMinutes returns the cooking time in whole minutes.
func (m Metadata) CookTimeMinutes() (int, bool) {
	return m.minutes(KeyCookTime)
}

func (m Metadata) nonEmpty(key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (m Metadata) minutes(key string) (int, bool) {
	v, ok := m.nonEmpty(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// parseFrontMatter extracts a YAML front matter block delimited by "---"
// lines at the top of src. It returns the metadata, the remaining source,
// and the number of lines consumed (so parser warnings keep absolute line
// numbers).
func parseFrontMatter(src string) (Metadata, string, int, error) {
	meta := Metadata{}

	rest, found := strings.CutPrefix(src, "---\n")
	if !found {
		if src == "---" {
			return meta, "", 1, nil
		}
		return meta, src, 0, nil
	}

	block, body, found := strings.Cut(rest, "\n---")
	if !found {
		return nil, "", 0, fmt.Errorf("unterminated front matter block")
	}
	// Drop the rest of the closing delimiter line.
	if _, after, ok := strings.Cut(body, "\n"); ok {
		body = after
	} else {
		body = ""
	}

	var raw map[string]any
	if err := yamlutil.Unmarshal([]byte(block), &raw); err != nil {
		return nil, "", 0, fmt.Errorf("invalid front matter: %w", err)
	}

	for key, value := range raw {
		meta.Set(key, stringifyMetaValue(value))
	}

	consumed := strings.Count(src, "\n") - strings.Count(body, "\n")
	return meta, body, consumed, nil
}

// stringifyMetaValue flattens a YAML scalar into its textual form. Numbers
// keep their shortest representation so "servings: 4" round-trips as "4".
func stringifyMetaValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case uint64:
		return strconv.FormatUint(t, 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
