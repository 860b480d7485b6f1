// Package cooklang parses cooklang recipe sources into the structured
// recipe model consumed by the rendering pipeline.
//
// The supported surface covers the cooklang language plus the extensions
// the pipeline relies on: YAML front matter and ">> key: value" metadata,
// "= name" section headers, "> " note paragraphs, "--" line and "[- -]"
// block comments, ingredient modifiers (@? optional, @- hidden, @& reference),
// display-name aliases (@name|alias{}), cookware (#), timers (~), and
// inline temperature quantities (180°C).
package cooklang

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse parses cooklang source into a Recipe. Non-fatal problems (empty
// component names, malformed metadata lines) are returned as warnings;
// syntax errors abort the parse.
func Parse(src string) (*Recipe, []Warning, error) {
	src = strings.ReplaceAll(src, "\r\n", "\n")

	meta, body, offset, err := parseFrontMatter(src)
	if err != nil {
		return nil, nil, &ParseError{Line: 1, Message: err.Error()}
	}

	p := &parser{
		recipe: &Recipe{Metadata: meta},
		line:   offset,
	}

	if err := p.run(stripBlockComments(body)); err != nil {
		return nil, nil, err
	}

	return p.recipe, p.warnings, nil
}

// parser accumulates recipe state during a single line-oriented pass.
type parser struct {
	recipe   *Recipe
	warnings []Warning

	line     int      // current absolute 1-based line number
	section  Section  // section being filled
	para     []string // pending paragraph lines
	paraLine int      // line the pending paragraph started on

	items []Item // step items being assembled by parseStep
}

func (p *parser) run(body string) error {
	for _, raw := range strings.Split(body, "\n") {
		p.line++

		line := stripLineComment(raw)
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			if err := p.flushParagraph(); err != nil {
				return err
			}

		case strings.HasPrefix(trimmed, ">>"):
			if err := p.flushParagraph(); err != nil {
				return err
			}
			p.parseMetaLine(trimmed)

		case strings.HasPrefix(trimmed, "="):
			if err := p.flushParagraph(); err != nil {
				return err
			}
			p.startSection(strings.TrimSpace(strings.Trim(trimmed, "=")))

		default:
			if len(p.para) == 0 {
				p.paraLine = p.line
			}
			p.para = append(p.para, trimmed)
		}
	}

	if err := p.flushParagraph(); err != nil {
		return err
	}
	p.endSection()
	return nil
}

func (p *parser) warnf(line int, format string, args ...any) {
	p.warnings = append(p.warnings, Warning{Line: line, Message: fmt.Sprintf(format, args...)})
}

// parseMetaLine handles a ">> key: value" metadata line.
func (p *parser) parseMetaLine(line string) {
	content := strings.TrimPrefix(line, ">>")
	key, value, found := strings.Cut(content, ":")
	if !found || strings.TrimSpace(key) == "" {
		p.warnf(p.line, "malformed metadata line, expected \">> key: value\"")
		return
	}
	p.recipe.Metadata.Set(key, value)
}

// startSection closes the current section and begins a new named one.
func (p *parser) startSection(name string) {
	p.endSection()
	p.section = Section{Name: name}
}

// endSection appends the current section to the recipe unless it is the
// implicit leading section and still empty.
func (p *parser) endSection() {
	if p.section.Name != "" || len(p.section.Content) > 0 {
		p.recipe.Sections = append(p.recipe.Sections, p.section)
	}
	p.section = Section{}
}

// flushParagraph turns the pending paragraph into a Step or, for "> "
// paragraphs, a TextBlock.
func (p *parser) flushParagraph() error {
	if len(p.para) == 0 {
		return nil
	}
	lines := p.para
	p.para = nil

	if strings.HasPrefix(lines[0], ">") {
		for i, l := range lines {
			lines[i] = strings.TrimSpace(strings.TrimPrefix(l, ">"))
		}
		p.section.Content = append(p.section.Content, TextBlock{Text: strings.Join(lines, " ")})
		return nil
	}

	step, err := p.parseStep(strings.Join(lines, " "), p.paraLine)
	if err != nil {
		return err
	}
	p.section.Content = append(p.section.Content, step)
	return nil
}

// parseStep scans one step paragraph for @ingredient, #cookware, and ~timer
// components, collecting everything else as positional text.
func (p *parser) parseStep(text string, line int) (Step, error) {
	p.items = nil
	var plain strings.Builder

	flushText := func() {
		if plain.Len() > 0 {
			p.appendText(plain.String())
			plain.Reset()
		}
	}

	i := 0
	for i < len(text) {
		c := text[i]
		if c == '@' || c == '#' || c == '~' {
			item, end, err := p.parseComponent(text, i, line)
			if err != nil {
				return Step{}, err
			}
			if item != nil {
				flushText()
				p.items = append(p.items, item)
				i = end
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		plain.WriteString(text[i : i+size])
		i += size
	}
	flushText()

	return Step{Items: p.items}, nil
}

// tempRe matches inline temperatures like "180°C" or "350 ºF".
var tempRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[°º]([CF])`)

// appendText adds a text item, splitting out inline temperature quantities
// into the recipe's inline quantity table.
func (p *parser) appendText(s string) {
	for {
		loc := tempRe.FindStringSubmatchIndex(s)
		if loc == nil {
			break
		}
		if before := s[:loc[0]]; before != "" {
			p.items = append(p.items, TextItem{Value: before})
		}
		amount := s[loc[2]:loc[3]]
		unit := "°" + s[loc[4]:loc[5]]
		p.recipe.InlineQuantities = append(p.recipe.InlineQuantities, Quantity{
			Value: parseValue(amount),
			Unit:  unit,
		})
		p.items = append(p.items, InlineQuantityRef{Index: len(p.recipe.InlineQuantities) - 1})
		s = s[loc[1]:]
	}
	if s != "" {
		p.items = append(p.items, TextItem{Value: s})
	}
}

// parseComponent parses one @/#/~ component starting at text[start]. It
// returns a nil item when the marker does not introduce a well-formed
// component, in which case the caller keeps the marker as literal text.
func (p *parser) parseComponent(text string, start int, line int) (Item, int, error) {
	marker := text[start]
	i := start + 1

	var optional, hidden, reference bool
	if marker == '@' {
	modifiers:
		for i < len(text) {
			switch text[i] {
			case '?':
				optional = true
			case '-':
				hidden = true
			case '&':
				reference = true
			default:
				break modifiers
			}
			i++
		}
	}

	name, rawQty, end, long := scanComponentBody(text, i)

	var qty *Quantity
	if long {
		var warn string
		qty, warn = parseQuantity(rawQty)
		if warn != "" {
			p.warnf(line, "%s", warn)
		}
	}

	switch marker {
	case '@':
		name, alias, _ := strings.Cut(name, "|")
		if name == "" {
			if long {
				p.warnf(line, "ingredient has empty name")
			}
			return nil, 0, nil
		}
		p.recipe.Ingredients = append(p.recipe.Ingredients, Ingredient{
			Name:      name,
			Alias:     alias,
			Quantity:  qty,
			Optional:  optional,
			Hidden:    hidden,
			Reference: reference,
		})
		return IngredientRef{Index: len(p.recipe.Ingredients) - 1}, end, nil

	case '#':
		if name == "" {
			if long {
				p.warnf(line, "cookware has empty name")
			}
			return nil, 0, nil
		}
		p.recipe.Cookware = append(p.recipe.Cookware, Cookware{Name: name, Quantity: qty})
		return CookwareRef{Index: len(p.recipe.Cookware) - 1}, end, nil

	default: // '~'
		if name == "" && qty == nil {
			if !long {
				return nil, 0, nil // bare "~" in text
			}
			return nil, 0, &ParseError{Line: line, Message: "timer must have a name or a duration"}
		}
		p.recipe.Timers = append(p.recipe.Timers, Timer{Name: name, Quantity: qty})
		return TimerRef{Index: len(p.recipe.Timers) - 1}, end, nil
	}
}

// scanComponentBody reads a component name starting at text[i], in either
// the long form "multi word name{...}" or the bare one-word form. It
// returns the name, the raw brace content (long form only), the index just
// past the component, and whether the long form was used.
func scanComponentBody(text string, i int) (name, rawQty string, end int, long bool) {
	// Long form: a "{" ahead with no other component marker or sentence
	// punctuation before it.
	if open := strings.IndexByte(text[i:], '{'); open >= 0 {
		between := text[i : i+open]
		if !strings.ContainsAny(between, "@#~}.,;:!?()") {
			if closing := strings.IndexByte(text[i+open:], '}'); closing >= 0 {
				name = strings.TrimSpace(between)
				rawQty = text[i+open+1 : i+open+closing]
				return name, rawQty, i + open + closing + 1, true
			}
		}
	}

	// Bare form: a single word of letters and digits.
	end = i
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		end += size
	}
	return text[i:end], "", end, false
}

// parseQuantity interprets brace content as "amount%unit" or "amount".
// Empty content means no quantity. A unit without an amount is dropped with
// a warning.
func parseQuantity(raw string) (*Quantity, string) {
	amount, unit, _ := strings.Cut(raw, "%")
	amount = strings.TrimSpace(amount)
	unit = strings.TrimSpace(unit)

	if amount == "" {
		if unit != "" {
			return nil, fmt.Sprintf("quantity has unit %q but no amount", unit)
		}
		return nil, ""
	}

	return &Quantity{Value: parseValue(amount), Unit: unit}, ""
}

// stripLineComment removes a "--" comment from a line.
func stripLineComment(line string) string {
	if idx := strings.Index(line, "--"); idx >= 0 {
		return line[:idx]
	}
	return line
}

// stripBlockComments blanks out "[- ... -]" block comments while keeping
// newlines so line numbers in diagnostics stay accurate.
func stripBlockComments(src string) string {
	var sb strings.Builder
	for {
		open := strings.Index(src, "[-")
		if open < 0 {
			sb.WriteString(src)
			return sb.String()
		}
		closing := strings.Index(src[open:], "-]")
		if closing < 0 {
			sb.WriteString(src)
			return sb.String()
		}
		sb.WriteString(src[:open])
		for _, r := range src[open : open+closing+2] {
			if r == '\n' {
				sb.WriteByte('\n')
			}
		}
		src = src[open+closing+2:]
	}
}
