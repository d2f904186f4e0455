package site

import (
	"bytes"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/ziadkadry99/animdocs/internal/catalog"
	"github.com/ziadkadry99/animdocs/internal/view"
)

// Highlighter renders recipe sources as highlighted, line-numbered HTML.
// Token colours come from class names so one rendering serves both themes;
// CodeCSS supplies the palette for each.
type Highlighter struct {
	md goldmark.Markdown
}

// NewHighlighter creates a Highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{
		md: goldmark.New(
			goldmark.WithExtensions(
				highlighting.NewHighlighting(
					highlighting.WithStyle(view.LightCodeStyle),
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(true),
						chromahtml.WithLineNumbers(true),
					),
				),
			),
		),
	}
}

// Render highlights source as lang.
func (h *Highlighter) Render(source string, lang catalog.Language) (string, error) {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(fenced(source, lang)), &buf); err != nil {
		return "", fmt.Errorf("highlighting %s source: %w", lang, err)
	}
	return buf.String(), nil
}

// fenced wraps source in a code fence that no backtick run inside it can close.
func fenced(source string, lang catalog.Language) string {
	longest, run := 0, 0
	for _, r := range source {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	fence := strings.Repeat("`", max(3, longest+1))

	var b strings.Builder
	b.WriteString(fence)
	b.WriteString(lang.Extension())
	b.WriteByte('\n')
	b.WriteString(source)
	if !strings.HasSuffix(source, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(fence)
	b.WriteByte('\n')
	return b.String()
}

// CodeCSS returns the token stylesheet for both themes, each scoped under its
// theme class.
func CodeCSS() (string, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true), chromahtml.WithLineNumbers(true))

	var out strings.Builder
	for _, theme := range []view.Theme{{Dark: false}, {Dark: true}} {
		style := styles.Get(theme.CodeStyle())
		var buf bytes.Buffer
		if err := formatter.WriteCSS(&buf, style); err != nil {
			return "", fmt.Errorf("writing %s code css: %w", theme.CodeStyle(), err)
		}
		out.WriteString(scopeCSS(buf.String(), "."+theme.ClassName()))
	}
	return out.String(), nil
}

// scopeCSS prefixes every rule selector with scope. Chroma emits one rule per
// line, each preceded by a comment naming the token type.
func scopeCSS(css, scope string) string {
	var b strings.Builder
	for _, line := range strings.Split(css, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rule := line
		comment := ""
		if i := strings.Index(line, "*/"); i >= 0 {
			comment = line[:i+2]
			rule = strings.TrimLeft(line[i+2:], " ")
		}
		if comment != "" {
			b.WriteString(comment)
			b.WriteByte(' ')
		}
		if strings.HasPrefix(rule, ".") {
			b.WriteString(scope)
			b.WriteByte(' ')
		}
		b.WriteString(rule)
		b.WriteByte('\n')
	}
	return b.String()
}
