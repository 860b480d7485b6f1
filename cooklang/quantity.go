package cooklang

import (
	"strconv"
	"strings"
)

// Value is a quantity amount: either a number or free text ("a pinch").
// Only numeric values participate in unit-aware addition; text values are
// carried through verbatim and never merged.
type Value struct {
	number float64
	text   string
	isText bool
}

// NumberValue returns a numeric Value.
func NumberValue(n float64) Value {
	return Value{number: n}
}

// TextValue returns a free-text Value.
func TextValue(s string) Value {
	return Value{text: s, isText: true}
}

// IsText reports whether the value is free text rather than a number.
func (v Value) IsText() bool {
	return v.isText
}

// Number returns the numeric amount. Valid only when IsText is false.
func (v Value) Number() float64 {
	return v.number
}

// String renders the value in its default textual form: free text verbatim,
// numbers with the shortest exact decimal representation (no custom
// rounding).
func (v Value) String() string {
	if v.isText {
		return v.text
	}
	return strconv.FormatFloat(v.number, 'f', -1, 64)
}

// Quantity is an amount with an optional unit.
type Quantity struct {
	Value Value
	Unit  string
}

// HasUnit reports whether the quantity carries a unit.
func (q Quantity) HasUnit() bool {
	return q.Unit != ""
}

// parseValue interprets a raw amount string as a decimal, a fraction like
// "1/2", or free text when neither applies.
func parseValue(raw string) Value {
	raw = strings.TrimSpace(raw)

	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return NumberValue(n)
	}

	if num, den, ok := strings.Cut(raw, "/"); ok {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN == nil && errD == nil && d != 0 {
			return NumberValue(n / d)
		}
	}

	return TextValue(raw)
}
