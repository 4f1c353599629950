// Package batch runs the full conversion pipeline over a set of files.
// Documents are independent, so items fan out across a bounded worker pool;
// one bad file never aborts the batch; its result is marked failed and the
// rest continue.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/foliokit/folio/internal/chapters"
	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/extract"
	"github.com/foliokit/folio/internal/textclean"
)

// Item is one file to convert: the raw bytes are fully materialized before
// processing starts.
type Item struct {
	Filename string
	Data     []byte
}

// Options controls how a batch is processed.
type Options struct {
	PublicationType string            // record type tag (default "book")
	CleanText       bool              // apply the cleaning pipeline
	SplitChapters   bool              // segment into chapters
	ChapterPattern  string            // custom heading pattern; empty = default
	Overlay         *document.Overlay // common metadata for every file
	Workers         int               // parallel workers; <=0 = NumCPU
	Logger          *slog.Logger      // optional progress logging
}

// Result is the outcome for one item. Err is set only for hard failures;
// recoverable conditions (bad custom pattern, empty PDF text) land in
// Warnings on an otherwise successful result.
type Result struct {
	Filename      string
	Doc           *document.Document
	ChaptersFound int
	Warnings      []string
	Err           error
}

// Summary aggregates batch results for reporting.
type Summary struct {
	Total     int `json:"total" yaml:"total"`
	Succeeded int `json:"succeeded" yaml:"succeeded"`
	Failed    int `json:"failed" yaml:"failed"`
	Chapters  int `json:"chapters" yaml:"chapters"`
}

// Summarize tallies results into a Summary.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Succeeded++
		s.Chapters += r.ChaptersFound
	}
	return s
}

// Process converts every item and returns results in item order. Items run
// concurrently on opts.Workers goroutines. Respects ctx cancellation between
// items; items already in flight finish.
func Process(ctx context.Context, items []Item, opts Options) []Result {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if opts.PublicationType == "" {
		opts.PublicationType = document.TypeBook
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(items) {
		workers = len(items)
	}

	results := make([]Result, len(items))
	idx := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				results[i] = processOne(items[i], opts, log)
			}
		}()
	}

	sent := len(items)
dispatch:
	for i := range items {
		if ctx.Err() != nil {
			sent = i
			break
		}
		select {
		case <-ctx.Done():
			sent = i
			break dispatch
		case idx <- i:
		}
	}
	close(idx)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for j := sent; j < len(items); j++ {
			results[j] = Result{Filename: items[j].Filename, Err: err}
		}
	}
	return results
}

// processOne runs the pipeline for a single file. Panics are contained here
// so a malformed input can only fail its own item.
func processOne(item Item, opts Options, log *slog.Logger) (res Result) {
	res.Filename = item.Filename

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic while processing document", "file", item.Filename, "panic", r)
			res.Doc = nil
			res.Err = fmt.Errorf("internal error processing %s: %v", item.Filename, r)
		}
	}()

	var rawText string
	var pageTotal *int

	switch extract.DetectFormat(item.Filename) {
	case extract.FormatText:
		rawText = extract.DecodeText(item.Data)
	case extract.FormatPDF:
		text, err := extract.PDFText(item.Data)
		if err != nil {
			// Soft condition: proceed with empty text.
			res.Warnings = append(res.Warnings, fmt.Sprintf("pdf extraction failed: %v", err))
		}
		rawText = text
		if strings.TrimSpace(rawText) == "" {
			res.Warnings = append(res.Warnings, "no text extracted; PDF may be image-only")
		}
		if count, err := extract.PageCount(item.Data); err == nil {
			pageTotal = &count
		}
	default:
		res.Err = fmt.Errorf("unsupported file type: %s", item.Filename)
		return res
	}

	cleaned := rawText
	if opts.CleanText {
		cleaned = textclean.Clean(rawText)
	}

	doc := document.Build(cleaned, item.Filename, opts.PublicationType, int64(len(item.Data)), opts.Overlay)
	if pageTotal != nil {
		doc.PublicationDetails.Pages.Total = pageTotal
	}

	if opts.SplitChapters && strings.TrimSpace(cleaned) != "" {
		pattern, err := chapters.CompileHeadingPattern(opts.ChapterPattern)
		if err != nil {
			log.Warn("invalid chapter pattern, using default", "file", item.Filename, "error", err)
			res.Warnings = append(res.Warnings, err.Error())
		}
		chs := chapters.Split(cleaned, pattern, doc.Data.Title)
		if len(chs) > 0 {
			doc.SetChapters(chs)
			res.ChaptersFound = len(chs)
		}
	}

	res.Doc = doc
	return res
}
