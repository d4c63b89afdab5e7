package utils

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// renderer handles the pipe tables the run summaries use.
var renderer = goldmark.New(goldmark.WithExtensions(extension.Table))

// MarkdownToHTML renders a markdown document (run summaries) to HTML.
func MarkdownToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
