package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed content/intro.md
var defaultIntro []byte

// DefaultIntro returns the built-in home page introduction.
func DefaultIntro() []byte {
	return append([]byte(nil), defaultIntro...)
}

// renderIntro converts intro markdown to HTML. Operator-supplied intros may
// carry raw HTML, so the output is passed through a UGC policy.
func renderIntro(markdown []byte) (template.HTML, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	var buf bytes.Buffer
	if err := md.Convert(markdown, &buf); err != nil {
		return "", fmt.Errorf("converting intro: %w", err)
	}

	policy := bluemonday.UGCPolicy()
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}
