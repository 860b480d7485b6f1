// Package mdtex converts Markdown collection intro pages into LaTeX
// fragments. It parses with goldmark and walks the AST directly instead of
// going through HTML, emitting starred sectioning commands so intro pages
// never disturb chapter numbering.
//
// The supported subset covers what intro pages actually use: headings,
// paragraphs, emphasis, inline code, links, block quotes, lists, and code
// blocks. Anything else degrades to its plain text content.
package mdtex

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-cooktex/latex"
)

// Convert renders Markdown source as a LaTeX fragment.
func Convert(src []byte) (string, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	r := &renderer{src: src}
	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		if err := r.renderBlock(block); err != nil {
			return "", err
		}
	}
	return strings.TrimRight(r.out.String(), "\n") + "\n", nil
}

type renderer struct {
	src []byte
	out strings.Builder
}

func (r *renderer) renderBlock(n ast.Node) error {
	switch b := n.(type) {
	case *ast.Heading:
		r.out.WriteString(headingCommand(b.Level))
		r.out.WriteByte('{')
		r.renderInline(b)
		r.out.WriteString("}\n\n")

	case *ast.Paragraph, *ast.TextBlock:
		r.renderInline(n)
		r.out.WriteString("\n\n")

	case *ast.List:
		env := "itemize"
		if b.IsOrdered() {
			env = "enumerate"
		}
		fmt.Fprintf(&r.out, "\\begin{%s}\n", env)
		for item := b.FirstChild(); item != nil; item = item.NextSibling() {
			r.out.WriteString("\\item ")
			for c := item.FirstChild(); c != nil; c = c.NextSibling() {
				r.renderInline(c)
			}
			r.out.WriteByte('\n')
		}
		fmt.Fprintf(&r.out, "\\end{%s}\n\n", env)

	case *ast.Blockquote:
		r.out.WriteString("\\begin{quote}\n")
		for c := b.FirstChild(); c != nil; c = c.NextSibling() {
			if err := r.renderBlock(c); err != nil {
				return err
			}
		}
		r.out.WriteString("\\end{quote}\n\n")

	case *ast.FencedCodeBlock:
		r.renderVerbatim(b.BaseBlock)
	case *ast.CodeBlock:
		r.renderVerbatim(b.BaseBlock)

	case *ast.ThematicBreak:
		r.out.WriteString("\\bigskip\n\n")

	default:
		// Unknown block kinds degrade to their inline text.
		r.renderInline(n)
		r.out.WriteString("\n\n")
	}
	return nil
}

// headingCommand maps Markdown heading levels onto starred LaTeX
// sectioning commands.
func headingCommand(level int) string {
	switch level {
	case 1:
		return "\\section*"
	case 2:
		return "\\subsection*"
	default:
		return "\\subsubsection*"
	}
}

func (r *renderer) renderVerbatim(b ast.BaseBlock) {
	r.out.WriteString("\\begin{verbatim}\n")
	lines := b.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		r.out.Write(seg.Value(r.src))
	}
	r.out.WriteString("\\end{verbatim}\n\n")
}

func (r *renderer) renderInline(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch i := c.(type) {
		case *ast.Text:
			r.out.WriteString(latex.Escape(string(i.Segment.Value(r.src))))
			if i.HardLineBreak() {
				r.out.WriteString("\\\\\n")
			} else if i.SoftLineBreak() {
				r.out.WriteByte(' ')
			}

		case *ast.Emphasis:
			cmd := "\\emph{"
			if i.Level >= 2 {
				cmd = "\\textbf{"
			}
			r.out.WriteString(cmd)
			r.renderInline(i)
			r.out.WriteByte('}')

		case *ast.CodeSpan:
			r.out.WriteString("\\texttt{")
			r.out.WriteString(latex.Escape(string(codeSpanText(i, r.src))))
			r.out.WriteByte('}')

		case *ast.Link:
			r.out.WriteString("\\href{")
			r.out.WriteString(latex.Escape(string(i.Destination)))
			r.out.WriteString("}{")
			r.renderInline(i)
			r.out.WriteByte('}')

		case *ast.AutoLink:
			r.out.WriteString("\\url{")
			r.out.WriteString(latex.Escape(string(i.URL(r.src))))
			r.out.WriteByte('}')

		case *ast.Image:
			// Intro pages are text-only; render the alt text.
			r.renderInline(i)

		case *ast.RawHTML, *ast.HTMLBlock:
			// Dropped: there is no safe LaTeX rendering for raw HTML.

		default:
			r.renderInline(c)
		}
	}
}

// codeSpanText collects the literal text of a code span's segments.
func codeSpanText(n *ast.CodeSpan, src []byte) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
		}
	}
	return buf.Bytes()
}
