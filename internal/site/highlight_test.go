package site

import (
	"strings"
	"testing"

	"github.com/ziadkadry99/animdocs/internal/catalog"
)

func TestFencedUsesLongerFenceThanSource(t *testing.T) {
	tests := []struct {
		source string
		fence  string
	}{
		{"const a = 1;", "```"},
		{"const s = `x`;", "```"},
		{"// ``` inside a comment", "````"},
		{"const s = `````;", "``````"},
	}
	for _, tt := range tests {
		got := fenced(tt.source, catalog.TypeScript)
		if !strings.HasPrefix(got, tt.fence+"tsx\n") {
			t.Errorf("fenced(%q) opens with %q", tt.source, strings.SplitN(got, "\n", 2)[0])
		}
		if !strings.HasSuffix(got, "\n"+tt.fence+"\n") {
			t.Errorf("fenced(%q) does not close with %q", tt.source, tt.fence)
		}
	}
}

func TestFencedLanguageInfo(t *testing.T) {
	got := fenced("x\n", catalog.JavaScript)
	if got != "```jsx\nx\n```\n" {
		t.Errorf("fenced = %q", got)
	}
}

func TestHighlighterRender(t *testing.T) {
	h := NewHighlighter()
	out, err := h.Render("export const Box = (): JSX.Element => <View style={styles.box} />;\n", catalog.TypeScript)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, `class="chroma"`) {
		t.Errorf("expected chroma wrapper, got:\n%s", out)
	}
	if strings.Contains(out, "<View") {
		t.Error("source markup must be escaped")
	}
	if strings.Contains(out, "```") {
		t.Error("fence leaked into output")
	}
}

func TestScopeCSS(t *testing.T) {
	in := "/* Background */ .bg { color: #000 }\n/* PreWrapper */ .chroma { background-color: #fff; }\n\n"
	want := "/* Background */ .theme-dark .bg { color: #000 }\n/* PreWrapper */ .theme-dark .chroma { background-color: #fff; }\n"
	if got := scopeCSS(in, ".theme-dark"); got != want {
		t.Errorf("scopeCSS =\n%s\nwant\n%s", got, want)
	}
}

func TestCodeCSSCoversBothThemes(t *testing.T) {
	css, err := CodeCSS()
	if err != nil {
		t.Fatalf("CodeCSS: %v", err)
	}
	for _, scope := range []string{".theme-light .chroma", ".theme-dark .chroma"} {
		if !strings.Contains(css, scope) {
			t.Errorf("missing %q rules", scope)
		}
	}
	for _, line := range strings.Split(strings.TrimSpace(css), "\n") {
		if !strings.Contains(line, ".theme-light ") && !strings.Contains(line, ".theme-dark ") {
			t.Errorf("unscoped rule: %s", line)
		}
	}
}

func TestRenderIntroSanitizes(t *testing.T) {
	md := "# Welcome\n\n<script>alert(1)</script>\n\nSee [the docs](https://example.com/docs).\n"
	out, err := renderIntro([]byte(md))
	if err != nil {
		t.Fatalf("renderIntro: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "<h1") {
		t.Errorf("expected heading, got %s", s)
	}
	if strings.Contains(s, "<script") {
		t.Error("script survived sanitizing")
	}
	if !strings.Contains(s, `target="_blank"`) {
		t.Errorf("external link should open in a new tab: %s", s)
	}
}

func TestDefaultIntro(t *testing.T) {
	out, err := renderIntro(DefaultIntro())
	if err != nil {
		t.Fatalf("renderIntro: %v", err)
	}
	for _, want := range []string{"Why Use These Animations?", "Getting Started", "Reanimated"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("default intro missing %q", want)
		}
	}
}
