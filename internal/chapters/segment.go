// Package chapters partitions cleaned document text into titled chapters.
// Detection is line-oriented and heuristic: a primary heading pattern
// (overridable per document), a secondary heuristic for page-annotated
// headings, and classifiers that suppress running titles and stray folios.
package chapters

import (
	"fmt"
	"regexp"
	"strings"
)

// Chapter is one segmented chapter. Immutable once created; owned by the
// document record it ends up in.
type Chapter struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DefaultHeadingPattern recognizes "chapter"/"chap." followed by an Arabic or
// Roman numeral, optionally a separator and a free-text title.
var DefaultHeadingPattern = regexp.MustCompile(`(?i)^\s*(?:chapter|chap\.?)\s+([ivxlcdm]+|\d+)\b(?:[\s:.\-—–]+(.+))?$`)

// chapterToken finds an embedded "chapter N" token inside title-like text.
var chapterToken = regexp.MustCompile(`(?i)(?:chapter|chap\.?)\s+([ivxlcdm]+|\d+)`)

// CompileHeadingPattern compiles a caller-supplied heading expression. The
// expression is matched case-insensitively and anchored at the start of the
// line, like the default. An empty expression returns the default pattern; an
// invalid one also returns the default, along with the compile error so the
// caller can surface a warning. Never fails hard.
func CompileHeadingPattern(expr string) (*regexp.Regexp, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return DefaultHeadingPattern, nil
	}
	re, err := regexp.Compile(`(?i)^(?:` + expr + `)`)
	if err != nil {
		return DefaultHeadingPattern, fmt.Errorf("invalid heading pattern %q: %w", expr, err)
	}
	return re, nil
}

// hit records a heading found while scanning: the line it sits on, the parsed
// chapter number (0 when unparseable) and the heading title.
type hit struct {
	line   int
	number int
	title  string
}

// Split scans cleaned text line by line and slices it into chapters. title is
// the document's own title, used to filter running headers. A nil pattern
// means DefaultHeadingPattern. Returns nil when no headings match, signaling
// the caller to treat the document as unsegmented.
//
// Output order is heading-encounter order in the source, not sorted by parsed
// number: a document with out-of-order or repeated headings keeps its physical
// order.
func Split(text string, pattern *regexp.Regexp, title string) []Chapter {
	if pattern == nil {
		pattern = DefaultHeadingPattern
	}

	lines := strings.Split(text, "\n")
	var hits []hit

	for i, line := range lines {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}
		if IsRunningTitle(clean, title) {
			continue
		}

		// Folio-shaped lines are noise unless they carry an embedded
		// chapter token ("Chapter IV - 42" is a heading, "42" is not).
		if IsPageNumberLine(clean) {
			if h, ok := pageAnnotatedHeading(clean, i); ok {
				hits = append(hits, h)
			}
			continue
		}

		if m := pattern.FindStringSubmatch(clean); m != nil {
			raw := ""
			if len(m) > 1 {
				raw = m[1]
			}
			headingTitle := ""
			if len(m) > 2 {
				headingTitle = strings.TrimSpace(m[2])
			}
			if headingTitle == "" {
				if raw != "" {
					headingTitle = "Chapter " + raw
				} else {
					headingTitle = clean
				}
			}
			hits = append(hits, hit{line: i, number: ParseNumber(raw), title: headingTitle})
		}
	}

	if len(hits) == 0 {
		return nil
	}

	// Sentinel hit closes the final chapter's span.
	hits = append(hits, hit{line: len(lines)})

	chapters := make([]Chapter, 0, len(hits)-1)
	for idx := 0; idx < len(hits)-1; idx++ {
		start, end := hits[idx].line, hits[idx+1].line

		var content []string
		for li := start + 1; li < end; li++ {
			clean := strings.TrimSpace(lines[li])
			if IsRunningTitle(clean, title) || IsPageNumberLine(clean) {
				continue
			}
			content = append(content, lines[li])
		}

		number := hits[idx].number
		if number == 0 {
			number = idx + 1
		}

		chapters = append(chapters, Chapter{
			Number:  number,
			Title:   hits[idx].title,
			Content: strings.TrimSpace(strings.Join(content, "\n")),
		})
	}

	return chapters
}

// pageAnnotatedHeading applies the secondary heading heuristic to a line that
// already matched a page-number shape: "<title> - <page>" counts as a heading
// when the title part looks like a chapter title and contains a parseable
// chapter token.
func pageAnnotatedHeading(clean string, lineIdx int) (hit, bool) {
	for _, p := range pageNumberPatterns {
		m := p.FindStringSubmatch(clean)
		if m == nil || len(m) != 3 {
			continue
		}
		potential := strings.TrimSpace(m[1])
		if len(potential) <= 3 || isDigits(potential) {
			continue
		}
		lower := strings.ToLower(potential)
		if !strings.Contains(lower, "chapter") && !strings.Contains(lower, "part") && !strings.Contains(lower, "section") {
			continue
		}
		if tok := chapterToken.FindStringSubmatch(potential); tok != nil {
			return hit{line: lineIdx, number: ParseNumber(tok[1]), title: potential}, true
		}
	}
	return hit{}, false
}
