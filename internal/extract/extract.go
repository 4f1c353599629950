// Package extract turns uploaded file bytes into text the cleaning pipeline
// can consume. PDF extraction is best-effort text-layer only: scanned
// image-only PDFs yield empty text, which callers surface as a soft warning
// rather than an error.
package extract

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported input format.
type Format string

const (
	FormatText    Format = "txt"
	FormatPDF     Format = "pdf"
	FormatUnknown Format = ""
)

// DetectFormat classifies a filename by extension.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return FormatText
	case ".pdf":
		return FormatPDF
	default:
		return FormatUnknown
	}
}

// DecodeText decodes raw bytes as UTF-8, substituting the replacement
// character for invalid sequences. Downstream cleaning and segmentation
// assume valid UTF-8.
func DecodeText(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
