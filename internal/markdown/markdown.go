// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown renders article content for the public site using
// goldmark. Article bodies may be Markdown or raw rich-text HTML; unsafe
// pass-through keeps existing HTML content rendering unchanged. It also
// provides plain-text extraction for derived excerpts.
package markdown

import (
	"bytes"
	"regexp"
	"strings"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
			highlighting.WithFormatOptions(),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(), // Raw HTML from the rich-text editor passes through unchanged.
	),
)

// ToHTML converts article content into HTML. Content that is already raw
// HTML survives the conversion byte-for-byte inside the output, so both
// Markdown and rich-text articles render the same way.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var (
	// htmlTag matches a single HTML tag.
	htmlTag = regexp.MustCompile(`<[^>]*>`)
	// spaceRun collapses whitespace left behind by removed tags.
	spaceRun = regexp.MustCompile(`\s+`)
)

// PlainText strips markup from article content, leaving readable text.
func PlainText(content string) string {
	text := htmlTag.ReplaceAllString(content, " ")
	text = spaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Excerpt derives a short plain-text excerpt from article content,
// truncated at a rune boundary. Used when an article has no explicit
// excerpt.
func Excerpt(content string, maxRunes int) string {
	text := PlainText(content)
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return strings.TrimSpace(string(runes[:maxRunes])) + "…"
}
