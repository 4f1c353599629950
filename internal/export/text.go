package export

import (
	"fmt"
	"strings"

	"github.com/foliokit/folio/internal/document"
)

// PlainText renders just the document body: chapter blocks (title, blank
// line, content) when chapters exist, otherwise the flat full text.
func PlainText(doc *document.Document) string {
	if len(doc.Content.Chapters) == 0 {
		return doc.Content.FullText
	}

	var b strings.Builder
	for _, ch := range doc.Content.Chapters {
		title := ch.Title
		if title == "" {
			title = fmt.Sprintf("Chapter %d", ch.Number)
		}
		b.WriteString(title)
		b.WriteString("\n\n")
		b.WriteString(ch.Content)
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n ") + "\n"
}
