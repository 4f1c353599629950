package textclean

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "curly quotes become straight",
			input: "‘Hello,’ she said. “Quite so.”",
			want:  `'Hello,' she said. "Quite so."`,
		},
		{
			name:  "ellipsis glyph expands",
			input: "and then…",
			want:  "and then...",
		},
		{
			name:  "vulgar fractions",
			input: "add ½ cup and ¼ teaspoon",
			want:  "add 1/2 cup and 1/4 teaspoon",
		},
		{
			name:  "common misreads",
			input: "tbe man saw tbat tbis was wbat he wanted",
			want:  "the man saw that this was what he wanted",
		},
		{
			name:  "contractions restored",
			input: "I cant say they wont, but youre sure",
			want:  "I can't say they won't, but you're sure",
		},
		{
			name:  "lowercase ill untouched",
			input: "he fell ill that winter",
			want:  "he fell ill that winter",
		},
		{
			name:  "Ill becomes I'll",
			input: "Ill see you there",
			want:  "I'll see you there",
		},
		{
			name:  "zero for o confusions",
			input: "a matter 0f life, t0 be sure, 0r not",
			want:  "a matter of life, to be sure, or not",
		},
		{
			name:  "merged function words",
			input: "the king ofthe hill andthe queen inthe garden",
			want:  "the king of the hill and the queen in the garden",
		},
		{
			name:  "eol hyphenation rejoined",
			input: "a remark-\nable thing",
			want:  "a remarkable thing",
		},
		{
			name:  "inword hyphen with spaces",
			input: "a remark- able thing",
			want:  "a remarkable thing",
		},
		{
			name:  "simple wrap joined",
			input: "the quick brown fox,\njumped over",
			want:  "the quick brown fox, jumped over",
		},
		{
			name:  "space before punctuation removed",
			input: "wait , what ?",
			want:  "wait, what?",
		},
		{
			name:  "missing space after sentence",
			input: "It was over.Then it began.",
			want:  "It was over. Then it began.",
		},
		{
			name:  "period runs collapse",
			input: "and so on.......",
			want:  "and so on...",
		},
		{
			name:  "em dash normalized",
			input: "one—two",
			want:  "one - two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"‘Hello,’ she said… It was ½ past nine.",
		"tbe man cant say wbat he saw 0f it",
		"a remark-\nable thing happened inthe night",
		"Paragraph one.\n\n\n\n\n\nParagraph two.",
		"wait , what ?It was over.......",
		"The\nquick brown fox",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q:\n once: %q\ntwice: %q", in, once, twice)
		}
	}
}

func TestCleanBlankLineCollapse(t *testing.T) {
	// Sentence boundary keeps the wrap-join rules out of the way.
	got := Clean("one.\n\n\n\n\n\n\nTwo.")
	if got != "one.\n\nTwo." {
		t.Errorf("expected blank run collapsed to one blank line, got %q", got)
	}

	// Short runs are preserved.
	got = Clean("one.\n\nTwo.")
	if got != "one.\n\nTwo." {
		t.Errorf("expected single blank line preserved, got %q", got)
	}
}

func TestCleanPeriodRuns(t *testing.T) {
	for _, in := range []string{"x....", "x..........", "x... more....... text....."} {
		got := Clean(in)
		if strings.Contains(got, "....") {
			t.Errorf("Clean(%q) = %q, contains a run of 4+ periods", in, got)
		}
	}
}

func TestCleanSingleWordLine(t *testing.T) {
	got := Clean("The\nquick brown fox")
	if got != "The quick brown fox" {
		t.Errorf("expected stranded word rejoined, got %q", got)
	}
}

func TestCleanTrimsResult(t *testing.T) {
	got := Clean("   \n text body \n\n  ")
	if got != "text body" {
		t.Errorf("expected trimmed result, got %q", got)
	}
}

func TestStagesOrder(t *testing.T) {
	names := []string{"normalize", "misreads", "contractions", "confusions", "merged", "hyphens_wrap", "whitespace"}
	if len(Stages) != len(names) {
		t.Fatalf("expected %d stages, got %d", len(names), len(Stages))
	}
	for i, want := range names {
		if Stages[i].Name != want {
			t.Errorf("stage %d = %q, want %q", i, Stages[i].Name, want)
		}
	}
}
