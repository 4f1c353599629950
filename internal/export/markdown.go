package export

import (
	"fmt"
	"strings"

	"github.com/foliokit/folio/internal/document"
)

// yamlEscape quotes a scalar for the front matter block using single-quote
// YAML escaping: embedded single quotes are doubled.
func yamlEscape(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Markdown renders a record as a Markdown file: a YAML front matter block of
// the key bibliographic fields followed by the body. When chapters exist the
// body is ##-titled sections in chapter order; otherwise the flat full text.
func Markdown(doc *document.Document) string {
	year := ""
	if doc.Data.Year != nil {
		year = fmt.Sprintf("%d", *doc.Data.Year)
	}

	lines := []string{
		"---",
		"title: " + yamlEscape(doc.Data.Title),
		"type: " + yamlEscape(doc.Data.PublicationType),
		"language: " + yamlEscape(doc.Data.Language),
		"year: " + year,
		"publication_date: " + yamlEscape(doc.PublicationDetails.PublicationDate),
		"publisher: " + yamlEscape(doc.PublicationDetails.Publisher),
	}

	if doc.JournalInfo != nil {
		lines = append(lines,
			"journal: "+yamlEscape(doc.JournalInfo.JournalTitle),
			"volume: "+yamlEscape(doc.PublicationDetails.Volume),
			"issue: "+yamlEscape(doc.PublicationDetails.Issue),
		)
	}

	if doc.Identifiers.ISBN != nil {
		lines = append(lines, "isbn: "+yamlEscape(*doc.Identifiers.ISBN))
	}

	lines = append(lines,
		"pages: "+yamlEscape(strings.TrimSpace(doc.PublicationDetails.Pages.Range)),
		"authors:",
	)
	if len(doc.Authorship.Authors) > 0 {
		for _, a := range doc.Authorship.Authors {
			lines = append(lines, "  - "+yamlEscape(strings.TrimSpace(a.Name)))
		}
	} else {
		lines = append(lines, "  - ")
	}

	// Subjects stand in for tags when none are set.
	tags := doc.Classification.Tags
	if len(tags) == 0 {
		tags = doc.Classification.Subjects
	}
	lines = append(lines, "tags:")
	if len(tags) > 0 {
		for _, t := range tags {
			lines = append(lines, "  - "+yamlEscape(t))
		}
	} else {
		lines = append(lines, "  - ")
	}

	lines = append(lines,
		"identifiers:",
		"  doi: "+yamlEscape(doc.Identifiers.DOI),
		"  url: "+yamlEscape(doc.Identifiers.URL),
		"  local_id: "+yamlEscape(doc.Identifiers.LocalID),
		"---",
		"",
	)

	body := doc.Content.FullText
	if len(doc.Content.Chapters) > 0 {
		var parts []string
		for _, ch := range doc.Content.Chapters {
			title := ch.Title
			if title == "" {
				title = fmt.Sprintf("Chapter %d", ch.Number)
			}
			parts = append(parts, fmt.Sprintf("\n\n## %s\n\n%s", title, ch.Content))
		}
		body = strings.TrimLeft(strings.Join(parts, ""), "\n")
	}

	return strings.Join(lines, "\n") + body
}
