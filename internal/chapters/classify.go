package chapters

import (
	"regexp"
	"strings"
	"unicode"
)

// pageNumberPatterns match lines that are stray folios rather than content:
// bare page numbers, titles annotated with a page number, or a page number
// followed by a running title.
var pageNumberPatterns = []*regexp.Regexp{
	// Just a page number: "1", "23", "456"
	regexp.MustCompile(`^\s*(\d{1,3})\s*$`),
	// Title with trailing page number: "Some Title - 23", "Some Title / 45"
	regexp.MustCompile(`^(.+?)\s*[-/]\s*(\d{1,3})\s*$`),
	// Page number then title: "23 Some Title"
	regexp.MustCompile(`^(\d{1,3})\s+(.+)$`),
	// Chapter folio with Roman numeral: "Chapter IV - 42"
	regexp.MustCompile(`(?i)^(chapter\s+[ivxlcdm]+)\s*[-/]\s*(\d{1,3})\s*$`),
}

// IsRunningTitle reports whether a line is a repeat of the document's own
// title, typically a running header set in capitals. Matches on case-folded
// equality, or on a substantially uppercase line sharing more than 70% of the
// title's word set.
func IsRunningTitle(line, title string) bool {
	lineClean := strings.TrimSpace(line)
	titleClean := strings.TrimSpace(title)
	if titleClean == "" {
		return false
	}

	if strings.EqualFold(lineClean, titleClean) {
		return true
	}

	if isUpper(lineClean) && len(lineClean) > 5 {
		lineWords := wordSet(lineClean)
		titleWords := wordSet(titleClean)
		if len(titleWords) == 0 {
			return false
		}
		overlap := 0
		for w := range lineWords {
			if titleWords[w] {
				overlap++
			}
		}
		if float64(overlap)/float64(len(titleWords)) > 0.7 {
			return true
		}
	}

	return false
}

// IsPageNumberLine reports whether a line is a bare page number or a
// page-annotated heading line.
func IsPageNumberLine(line string) bool {
	lineClean := strings.TrimSpace(line)
	for _, p := range pageNumberPatterns {
		if p.MatchString(lineClean) {
			return true
		}
	}
	return false
}

// isUpper reports whether s contains at least one cased letter and no
// lowercase letters.
func isUpper(s string) bool {
	hasLetter := false
	for _, ch := range s {
		if unicode.IsLower(ch) {
			return false
		}
		if unicode.IsUpper(ch) {
			hasLetter = true
		}
	}
	return hasLetter
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}
