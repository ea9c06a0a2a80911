package tableio

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// MarkdownToHTML renders a GitHub-style pipe table as HTML so it can go
// through the HTML annotator. The header row becomes <th> cells.
func MarkdownToHTML(input string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(StripFence(input)), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// StripFence removes an outer ``` code fence, as left by copy-pasting a
// table out of a chat or a README.
func StripFence(input string) string {
	cleaned := strings.TrimSpace(input)
	if !strings.HasPrefix(cleaned, "```") || !strings.HasSuffix(cleaned, "```") || len(cleaned) < 6 {
		return cleaned
	}
	cleaned = strings.TrimSuffix(cleaned[3:], "```")
	// drop the info string (```markdown)
	if i := strings.IndexByte(cleaned, '\n'); i >= 0 {
		cleaned = cleaned[i+1:]
	}
	return strings.TrimSpace(cleaned)
}
