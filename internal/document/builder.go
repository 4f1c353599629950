package document

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	underscoreRun = regexp.MustCompile(`[_]+`)
	spaceRun      = regexp.MustCompile(`\s{2,}`)
	yearToken     = regexp.MustCompile(`(1[6-9]\d{2}|20\d{2})`)
)

// GuessTitle derives a document title from a filename: the stem with
// underscore runs turned into single spaces.
func GuessTitle(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	title := underscoreRun.ReplaceAllString(strings.TrimSpace(stem), " ")
	return spaceRun.ReplaceAllString(title, " ")
}

// GuessYear extracts a publication year from a filename. The last 4-digit
// token in the range 1600-2099 wins; nil when none is present.
func GuessYear(name string) *int {
	matches := yearToken.FindAllString(name, -1)
	if len(matches) == 0 {
		return nil
	}
	year := 0
	for _, ch := range matches[len(matches)-1] {
		year = year*10 + int(ch-'0')
	}
	return &year
}

// ParseAuthors splits a comma-separated author string into author entries.
func ParseAuthors(s string) []Author {
	authors := []Author{}
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			authors = append(authors, Author{Name: name})
		}
	}
	return authors
}

// ParseSubjects splits a comma-separated subject string into a list.
func ParseSubjects(s string) []string {
	subjects := []string{}
	for _, sub := range strings.Split(s, ",") {
		sub = strings.TrimSpace(sub)
		if sub != "" {
			subjects = append(subjects, sub)
		}
	}
	return subjects
}

// mimeTypeFor maps a file extension (without dot, lowercase) to a MIME type.
func mimeTypeFor(ext string) string {
	switch ext {
	case "txt":
		return "text/plain"
	case "pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Build assembles a document record from cleaned text plus file facts.
// Filename-derived guesses (title, year) are computed first; overlay fields
// then override them unconditionally field by field when set. Chapters are
// not handled here; callers segment separately and attach via SetChapters.
func Build(cleanedText, filename, pubType string, fileSize int64, overlay *Overlay) *Document {
	doc := Skeleton(pubType)

	doc.Data.Title = GuessTitle(filename)
	doc.Data.Year = GuessYear(filename)

	if overlay != nil {
		overlay.apply(doc)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	doc.DigitalFormat = DigitalFormat{
		Filename:   filename,
		FileFormat: ext,
		FileSize:   fileSize,
		MimeType:   mimeTypeFor(ext),
	}

	doc.Identifiers.DocID = uuid.New().String()
	doc.Identifiers.LocalID = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	doc.Content.FullText = cleanedText

	return doc
}
