// Package markdown renders generated Markdown articles to HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// renderer is safe for concurrent use. Raw HTML in the input is omitted.
var renderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ToHTML converts GitHub-flavored Markdown to an HTML fragment.
func ToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
