package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFText extracts the embedded text layer from PDF bytes, one extracted
// page per line group joined with newlines. Pages that fail to decode are
// skipped. Returns an error only when the file itself cannot be parsed;
// callers treat that (and empty output) as a soft warning, not a hard
// failure.
func PDFText(data []byte) (text string, err error) {
	// The parser is known to panic on damaged xref tables; contain it so a
	// bad file never takes down a batch.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	fonts := make(map[string]*pdf.Font)
	var pages []string

	for i := 1; i <= reader.NumPage(); i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := p.Font(name)
				fonts[name] = &f
			}
		}
		pageText, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			continue
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n"), nil
}

// PageCount returns the number of pages in a PDF, used to fill the record's
// page total. Best-effort like PDFText.
func PageCount(data []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count pdf pages: %w", err)
	}
	return count, nil
}
