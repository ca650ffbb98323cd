// Package ingestion turns uploaded resume documents into plain text.
package ingestion

import (
	"log"
	"path/filepath"
	"strings"
)

// ExtractText extracts plain text from an uploaded document based on its
// file extension. The extension check is case-insensitive. Unsupported
// extensions and extraction failures both yield "" so the caller can fall
// through to its no-text path; extraction never fails loudly.
func ExtractText(filename string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		text, err := extractPDF(data)
		if err != nil {
			log.Printf("[ingestion] pdf extraction failed for %s: %v", filename, err)
			return ""
		}
		return text
	case ".docx", ".doc":
		text, err := extractDocx(data)
		if err != nil {
			log.Printf("[ingestion] docx extraction failed for %s: %v", filename, err)
			return ""
		}
		return text
	default:
		log.Printf("[ingestion] unsupported file type %q for %s", ext, filename)
		return ""
	}
}
