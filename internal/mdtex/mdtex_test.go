package mdtex_test

import (
	"testing"

	"github.com/alnah/go-cooktex/internal/mdtex"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "heading and paragraph",
			src:  "# Soups\n\nWarm bowls for cold days.\n",
			want: "\\section*{Soups}\n\nWarm bowls for cold days.\n",
		},
		{
			name: "heading levels",
			src:  "## Stocks\n\n### Brown stock\n",
			want: "\\subsection*{Stocks}\n\n\\subsubsection*{Brown stock}\n",
		},
		{
			name: "emphasis and strong",
			src:  "Use *fresh* herbs, **never** dried.\n",
			want: "Use \\emph{fresh} herbs, \\textbf{never} dried.\n",
		},
		{
			name: "inline code",
			src:  "Run `cooktex` first.\n",
			want: "Run \\texttt{cooktex} first.\n",
		},
		{
			name: "reserved characters escaped",
			src:  "Use 100% butter & salt.\n",
			want: "Use 100\\% butter \\& salt.\n",
		},
		{
			name: "unordered list",
			src:  "- stock\n- bones\n",
			want: "\\begin{itemize}\n\\item stock\n\\item bones\n\\end{itemize}\n",
		},
		{
			name: "ordered list",
			src:  "1. simmer\n2. strain\n",
			want: "\\begin{enumerate}\n\\item simmer\n\\item strain\n\\end{enumerate}\n",
		},
		{
			name: "block quote",
			src:  "> Soup is liquid comfort.\n",
			want: "\\begin{quote}\nSoup is liquid comfort.\n\n\\end{quote}\n",
		},
		{
			name: "fenced code block",
			src:  "```\n1 cup stock\n```\n",
			want: "\\begin{verbatim}\n1 cup stock\n\\end{verbatim}\n",
		},
		{
			name: "link",
			src:  "See [the guide](https://example.com/guide).\n",
			want: "See \\href{https://example.com/guide}{the guide}.\n",
		},
		{
			name: "thematic break",
			src:  "before\n\n---\n\nafter\n",
			want: "before\n\n\\bigskip\n\nafter\n",
		},
		{
			name: "soft line break collapses to a space",
			src:  "first line\nsecond line\n",
			want: "first line second line\n",
		},
		{
			name: "empty input",
			src:  "",
			want: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			got, err := mdtex.Convert([]byte(tt.src))
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}
