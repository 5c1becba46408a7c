package markdown

import (
	"strings"
	"testing"
)

func TestToHTML_Markdown(t *testing.T) {
	out, err := ToHTML("# Hello\n\nSome *emphasis* here.")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, "<h1") {
		t.Errorf("expected rendered heading, got %q", out)
	}
	if !strings.Contains(out, "<em>emphasis</em>") {
		t.Errorf("expected rendered emphasis, got %q", out)
	}
}

func TestToHTML_RawHTMLPassthrough(t *testing.T) {
	src := "<h2>Introduction</h2>\n<p>Already <strong>HTML</strong>.</p>"
	out, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, "<h2>Introduction</h2>") {
		t.Errorf("raw HTML block not passed through: %q", out)
	}
	if !strings.Contains(out, "<strong>HTML</strong>") {
		t.Errorf("inline raw HTML not passed through: %q", out)
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "strips tags",
			content: "<h2>Title</h2><p>Body text.</p>",
			want:    "Title Body text.",
		},
		{
			name:    "collapses whitespace",
			content: "<p>one</p>\n\n  <p>two</p>",
			want:    "one two",
		},
		{
			name:    "plain input unchanged",
			content: "no markup at all",
			want:    "no markup at all",
		},
		{
			name:    "empty",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.content); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	content := "<p>" + strings.Repeat("word ", 100) + "</p>"

	got := Excerpt(content, 40)
	if len([]rune(got)) > 41 { // 40 runes + ellipsis
		t.Errorf("excerpt too long: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected truncation marker, got %q", got)
	}

	short := Excerpt("<p>short</p>", 40)
	if short != "short" {
		t.Errorf("short content should be untruncated, got %q", short)
	}
}
