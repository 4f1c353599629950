package chapters

import (
	"strings"
	"testing"
)

func TestSplitTwoChapters(t *testing.T) {
	text := "Chapter 1\nHello\nChapter II\nWorld"

	got := Split(text, nil, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(got))
	}

	want := []Chapter{
		{Number: 1, Title: "Chapter 1", Content: "Hello"},
		{Number: 2, Title: "Chapter II", Content: "World"},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chapter %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSplitNoHeadings(t *testing.T) {
	got := Split("Just some prose.\nNothing chapter-like here.", nil, "")
	if got != nil {
		t.Errorf("expected nil for text without headings, got %d chapters", len(got))
	}
}

func TestSplitHeadingWithTitle(t *testing.T) {
	text := "Chapter 1: The Beginning\nIt was a dark night.\nChapter 2 - The End\nDawn broke."

	got := Split(text, nil, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(got))
	}
	if got[0].Title != "The Beginning" {
		t.Errorf("title = %q, want %q", got[0].Title, "The Beginning")
	}
	if got[1].Title != "The End" {
		t.Errorf("title = %q, want %q", got[1].Title, "The End")
	}
	if got[1].Number != 2 {
		t.Errorf("number = %d, want 2", got[1].Number)
	}
}

func TestSplitPhysicalOrderPreserved(t *testing.T) {
	text := "Chapter 5\nfive\nChapter 2\ntwo\nChapter 5\nfive again"

	got := Split(text, nil, "")
	if len(got) != 3 {
		t.Fatalf("expected 3 chapters, got %d", len(got))
	}
	numbers := []int{got[0].Number, got[1].Number, got[2].Number}
	if numbers[0] != 5 || numbers[1] != 2 || numbers[2] != 5 {
		t.Errorf("numbers = %v, want [5 2 5]", numbers)
	}
}

func TestSplitRunningTitleFiltered(t *testing.T) {
	title := "My Great Adventure"
	text := "Chapter 1\nfirst line\nMY GREAT ADVENTURE\nsecond line"

	got := Split(text, nil, title)
	if len(got) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(got))
	}
	if strings.Contains(got[0].Content, "ADVENTURE") {
		t.Errorf("running title leaked into body: %q", got[0].Content)
	}
	if got[0].Content != "first line\nsecond line" {
		t.Errorf("content = %q", got[0].Content)
	}
}

func TestSplitBarePageNumberNeverEmitted(t *testing.T) {
	text := "Chapter 1\nsome text\n42\nmore text\nChapter 2\nbody"

	got := Split(text, nil, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(got))
	}
	for _, ch := range got {
		if strings.Contains(ch.Content, "42") {
			t.Errorf("bare page number leaked into body: %q", ch.Content)
		}
		if ch.Title == "42" {
			t.Errorf("bare page number emitted as heading")
		}
	}
}

func TestSplitPageAnnotatedHeading(t *testing.T) {
	text := "Chapter IV - 42\nbody of chapter four\nChapter V - 57\nbody of chapter five"

	got := Split(text, nil, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(got))
	}
	if got[0].Number != 4 || got[0].Title != "Chapter IV" {
		t.Errorf("first chapter = %+v, want number 4 title %q", got[0], "Chapter IV")
	}
	if got[1].Number != 5 {
		t.Errorf("second chapter number = %d, want 5", got[1].Number)
	}
	if got[0].Content != "body of chapter four" {
		t.Errorf("content = %q", got[0].Content)
	}
}

func TestSplitPositionalFallbackNumbering(t *testing.T) {
	pattern, err := CompileHeadingPattern(`PART [A-Z]+`)
	if err != nil {
		t.Fatalf("CompileHeadingPattern error = %v", err)
	}

	text := "PART ONE\nalpha\nPART TWO\nbeta"
	got := Split(text, pattern, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(got))
	}
	if got[0].Number != 1 || got[1].Number != 2 {
		t.Errorf("numbers = [%d %d], want [1 2]", got[0].Number, got[1].Number)
	}
	if got[0].Title != "PART ONE" || got[1].Title != "PART TWO" {
		t.Errorf("titles = [%q %q], want matched lines", got[0].Title, got[1].Title)
	}
}

func TestSplitCaseInsensitiveHeadings(t *testing.T) {
	text := "CHAPTER 1\nupper\nchapter 2\nlower\nChap. 3\nabbrev"

	got := Split(text, nil, "")
	if len(got) != 3 {
		t.Fatalf("expected 3 chapters, got %d", len(got))
	}
}

func TestCompileHeadingPattern(t *testing.T) {
	t.Run("empty returns default", func(t *testing.T) {
		p, err := CompileHeadingPattern("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p != DefaultHeadingPattern {
			t.Error("expected default pattern for empty expression")
		}
	})

	t.Run("invalid falls back to default", func(t *testing.T) {
		p, err := CompileHeadingPattern("[unclosed")
		if err == nil {
			t.Error("expected compile error for invalid expression")
		}
		if p != DefaultHeadingPattern {
			t.Error("expected default pattern fallback")
		}
	})

	t.Run("valid anchors at line start", func(t *testing.T) {
		p, err := CompileHeadingPattern(`section \d+`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.MatchString("Section 3") {
			t.Error("expected case-insensitive match")
		}
		if p.MatchString("see section 3") {
			t.Error("expected match anchored to line start")
		}
	})
}
