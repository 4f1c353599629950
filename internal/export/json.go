// Package export serializes document records to their interchange formats:
// JSON (the full record), Markdown with YAML front matter, plain text, and
// ZIP bundles of any combination.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/foliokit/folio/internal/document"
)

// JSON renders the full record as 2-space-indented UTF-8 JSON. HTML escaping
// is disabled so titles and body text round-trip byte for byte.
func JSON(doc *document.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}
