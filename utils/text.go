package utils

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
)

const DefaultTruncateLength = 100

// TruncateText cuts text to maxLength runes and appends "..." when it was
// longer.
func TruncateText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}

// RenderMarkdown converts a Markdown paragraph to HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
