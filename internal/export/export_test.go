package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/foliokit/folio/internal/chapters"
	"github.com/foliokit/folio/internal/document"
)

func sampleBook(t *testing.T) *document.Document {
	t.Helper()
	doc := document.Build("It was the best of times & the worst of times.",
		"tale_of_two_cities_1859.txt", document.TypeBook, 2048, &document.Overlay{
			Title:  "A Tale of Two Cities",
			Author: "Charles Dickens",
		})
	return doc
}

func TestJSON(t *testing.T) {
	doc := sampleBook(t)
	data, err := JSON(doc)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	t.Run("no html escaping", func(t *testing.T) {
		if bytes.Contains(data, []byte(`\u0026`)) {
			t.Error("ampersand was HTML-escaped")
		}
		if !bytes.Contains(data, []byte("times & the worst")) {
			t.Error("expected literal ampersand in output")
		}
	})

	t.Run("key order follows record layout", func(t *testing.T) {
		s := string(data)
		iData := strings.Index(s, `"data"`)
		iAuth := strings.Index(s, `"authorship"`)
		iContent := strings.Index(s, `"content"`)
		if iData == -1 || iAuth == -1 || iContent == -1 {
			t.Fatal("expected top-level sections present")
		}
		if !(iData < iAuth && iAuth < iContent) {
			t.Error("top-level key order does not follow record layout")
		}
	})

	t.Run("round trips", func(t *testing.T) {
		var back document.Document
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if back.Data.Title != "A Tale of Two Cities" {
			t.Errorf("title = %q", back.Data.Title)
		}
	})

	t.Run("empty slices serialize as arrays", func(t *testing.T) {
		if bytes.Contains(data, []byte(`"editors": null`)) {
			t.Error("expected [] for empty editors, got null")
		}
	})

	t.Run("book keeps empty isbn", func(t *testing.T) {
		if !bytes.Contains(data, []byte(`"isbn"`)) {
			t.Error("expected isbn field on book record")
		}
	})

	t.Run("article omits isbn", func(t *testing.T) {
		art := document.Build("x", "paper.txt", document.TypeArticle, 1, nil)
		artData, err := JSON(art)
		if err != nil {
			t.Fatalf("JSON() error = %v", err)
		}
		if bytes.Contains(artData, []byte(`"isbn"`)) {
			t.Error("article record should not carry isbn")
		}
		if !bytes.Contains(artData, []byte(`"journal_info"`)) {
			t.Error("expected journal_info on article record")
		}
	})
}

func TestMarkdown(t *testing.T) {
	doc := sampleBook(t)
	md := Markdown(doc)

	t.Run("front matter delimited", func(t *testing.T) {
		if !strings.HasPrefix(md, "---\n") {
			t.Error("expected leading front matter delimiter")
		}
		if !strings.Contains(md, "\n---\n") {
			t.Error("expected closing front matter delimiter")
		}
	})

	t.Run("scalars single quoted", func(t *testing.T) {
		if !strings.Contains(md, "title: 'A Tale of Two Cities'") {
			t.Errorf("title line missing or unquoted:\n%s", md)
		}
		if !strings.Contains(md, "type: 'book'") {
			t.Error("type line missing")
		}
	})

	t.Run("embedded quotes doubled", func(t *testing.T) {
		q := document.Build("x", "f.txt", document.TypeBook, 1, &document.Overlay{
			Title: "The King's Speech",
		})
		got := Markdown(q)
		if !strings.Contains(got, "title: 'The King''s Speech'") {
			t.Errorf("expected doubled quote, got:\n%s", got)
		}
	})

	t.Run("authors listed", func(t *testing.T) {
		if !strings.Contains(md, "authors:\n  - 'Charles Dickens'") {
			t.Errorf("authors block missing:\n%s", md)
		}
	})

	t.Run("full text body", func(t *testing.T) {
		if !strings.HasSuffix(md, "It was the best of times & the worst of times.") {
			t.Errorf("body missing:\n%s", md)
		}
	})

	t.Run("chapter sections", func(t *testing.T) {
		ch := sampleBook(t)
		ch.SetChapters([]chapters.Chapter{
			{Number: 1, Title: "Chapter 1", Content: "one body"},
			{Number: 2, Title: "Chapter 2", Content: "two body"},
		})
		got := Markdown(ch)
		if !strings.Contains(got, "## Chapter 1\n\none body") {
			t.Errorf("first section missing:\n%s", got)
		}
		if !strings.Contains(got, "## Chapter 2\n\ntwo body") {
			t.Error("second section missing")
		}
		if strings.Contains(got, "best of times") {
			t.Error("full text should not appear when chapters exist")
		}
	})

	t.Run("journal block only for article", func(t *testing.T) {
		art := document.Build("x", "p.txt", document.TypeArticle, 1, &document.Overlay{
			Journal: "Nature", Volume: "171",
		})
		got := Markdown(art)
		if !strings.Contains(got, "journal: 'Nature'") {
			t.Error("expected journal line on article")
		}
		if strings.Contains(md, "journal:") {
			t.Error("book front matter should not carry journal line")
		}
	})
}

func TestPlainText(t *testing.T) {
	t.Run("full text passthrough", func(t *testing.T) {
		doc := sampleBook(t)
		if got := PlainText(doc); got != doc.Content.FullText {
			t.Errorf("got %q", got)
		}
	})

	t.Run("chapter blocks", func(t *testing.T) {
		doc := sampleBook(t)
		doc.SetChapters([]chapters.Chapter{
			{Number: 1, Title: "Chapter 1", Content: "one"},
			{Number: 2, Title: "Chapter 2", Content: "two"},
		})
		got := PlainText(doc)
		want := "Chapter 1\n\none\n\nChapter 2\n\ntwo\n"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

func zipNames(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestSingleZip(t *testing.T) {
	var buf bytes.Buffer
	err := SingleZip(&buf, Entry{Name: "tale", Doc: sampleBook(t)}, Formats{Markdown: true, Text: true})
	if err != nil {
		t.Fatalf("SingleZip() error = %v", err)
	}

	names := zipNames(t, &buf)
	want := map[string]bool{"tale.json": true, "tale.md": true, "tale.txt": true}
	if len(names) != len(want) {
		t.Fatalf("archive files = %v", names)
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected archive member %q", n)
		}
	}
}

func TestFormatZip(t *testing.T) {
	entries := []Entry{
		{Name: "a", Doc: sampleBook(t)},
		{Name: "b", Doc: sampleBook(t)},
	}

	var buf bytes.Buffer
	if err := FormatZip(&buf, entries, "markdown"); err != nil {
		t.Fatalf("FormatZip() error = %v", err)
	}
	names := zipNames(t, &buf)
	if len(names) != 2 || names[0] != "a.md" || names[1] != "b.md" {
		t.Errorf("archive files = %v", names)
	}

	var bad bytes.Buffer
	if err := FormatZip(&bad, entries, "docx"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestCompleteZip(t *testing.T) {
	entries := []Entry{
		{Name: "a", Doc: sampleBook(t)},
		{Name: "b", Doc: sampleBook(t)},
	}

	var buf bytes.Buffer
	if err := CompleteZip(&buf, entries, Formats{Markdown: true}); err != nil {
		t.Fatalf("CompleteZip() error = %v", err)
	}

	names := zipNames(t, &buf)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"json/a.json", "json/b.json", "markdown/a.md", "markdown/b.md"} {
		if !seen[want] {
			t.Errorf("missing archive member %q in %v", want, names)
		}
	}
	if seen["text/a.txt"] {
		t.Error("text format was not selected but appears in archive")
	}
}
