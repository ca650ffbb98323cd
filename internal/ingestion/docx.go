package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// extractDocx pulls paragraph text out of a DOCX (or legacy DOC saved in the
// same container) and joins paragraphs with newlines.
func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	paragraphs := paragraphsFromDocumentXML(content)
	return strings.Join(paragraphs, "\n"), nil
}

// paragraphsFromDocumentXML splits raw document.xml content on paragraph
// boundaries and strips the remaining tags, leaving one string per
// non-empty paragraph.
func paragraphsFromDocumentXML(content string) []string {
	parts := strings.Split(content, "</w:p>")
	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		text := strings.TrimSpace(stripTags(part))
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs
}

// stripTags removes XML tags, keeping only character data.
func stripTags(s string) string {
	var sb strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
