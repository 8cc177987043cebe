package digest

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// RenderHTML converts digest markdown into HTML for local previewing. The
// engine mirrors common GFM rendering: tables, strikethrough, linkified
// URLs, task lists, auto heading IDs, and raw HTML passthrough (the digest
// relies on <br> hard breaks).
func RenderHTML(markdown []byte) ([]byte, error) {
	engine := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("digest: render html: %w", err)
	}
	return buf.Bytes(), nil
}
