// Package latex builds LaTeX source as an ordered sequence of commands and
// environments. The Builder is append-only and has no knowledge of recipes:
// callers are responsible for escaping free text (see Escape) before adding
// it, since arguments are emitted verbatim.
package latex

import "strings"

// Arg is a single command argument, rendered as {value} when required or
// [value] when optional.
type Arg struct {
	value    string
	optional bool
}

// Required returns an argument rendered as {value}.
func Required(value string) Arg {
	return Arg{value: value}
}

// Optional returns an argument rendered as [value].
func Optional(value string) Arg {
	return Arg{value: value, optional: true}
}

// Builder accumulates LaTeX source line by line. The zero value is ready to
// use. Methods return the receiver for chaining.
type Builder struct {
	lines []string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddCommand appends one line: a backslash, the command name, and each
// argument in order. Command names are not validated; malformed names pass
// through unchanged.
func (b *Builder) AddCommand(name string, args ...Arg) *Builder {
	var sb strings.Builder
	sb.WriteByte('\\')
	sb.WriteString(name)
	for _, arg := range args {
		if arg.optional {
			sb.WriteByte('[')
			sb.WriteString(arg.value)
			sb.WriteByte(']')
		} else {
			sb.WriteByte('{')
			sb.WriteString(arg.value)
			sb.WriteByte('}')
		}
	}
	b.lines = append(b.lines, sb.String())
	return b
}

// AddSimpleCommand appends \name{text}.
func (b *Builder) AddSimpleCommand(name, text string) *Builder {
	return b.AddCommand(name, Required(text))
}

// AddEnv appends \begin{name}, splices in the body's lines verbatim, and
// appends \end{name}. Bodies may themselves contain environments.
func (b *Builder) AddEnv(name string, body *Builder) *Builder {
	b.AddSimpleCommand("begin", name)
	b.AddBuilder(body)
	return b.AddSimpleCommand("end", name)
}

// AddBuilder splices all of other's lines into b in order.
func (b *Builder) AddBuilder(other *Builder) *Builder {
	b.lines = append(b.lines, other.lines...)
	return b
}

// Len reports the number of accumulated lines.
func (b *Builder) Len() int {
	return len(b.lines)
}

// Build joins all accumulated lines with newlines. It does not mutate the
// builder and may be called repeatedly.
func (b *Builder) Build() string {
	return strings.Join(b.lines, "\n")
}
