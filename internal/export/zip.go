package export

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/foliokit/folio/internal/document"
)

// Entry pairs an output basename (no extension) with its record.
type Entry struct {
	Name string
	Doc  *document.Document
}

// Formats selects which optional formats go into a bundle. JSON is always
// included.
type Formats struct {
	Markdown bool
	Text     bool
}

// writeFile adds one file to the archive.
func writeFile(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s in archive: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// writeEntry writes one record's selected formats. With nested set, files go
// into json/, markdown/ and text/ subdirectories.
func writeEntry(zw *zip.Writer, e Entry, formats Formats, nested bool) error {
	jsonName := e.Name + ".json"
	mdName := e.Name + ".md"
	txtName := e.Name + ".txt"
	if nested {
		jsonName = "json/" + jsonName
		mdName = "markdown/" + mdName
		txtName = "text/" + txtName
	}

	data, err := JSON(e.Doc)
	if err != nil {
		return err
	}
	if err := writeFile(zw, jsonName, data); err != nil {
		return err
	}
	if formats.Markdown {
		if err := writeFile(zw, mdName, []byte(Markdown(e.Doc))); err != nil {
			return err
		}
	}
	if formats.Text {
		if err := writeFile(zw, txtName, []byte(PlainText(e.Doc))); err != nil {
			return err
		}
	}
	return nil
}

// SingleZip writes one record in all selected formats as a flat archive.
func SingleZip(w io.Writer, e Entry, formats Formats) error {
	zw := zip.NewWriter(w)
	defer zw.Close()
	if err := writeEntry(zw, e, formats, false); err != nil {
		return err
	}
	return nil
}

// FormatZip writes every entry in exactly one format as a flat archive.
// format is "json", "markdown" or "text".
func FormatZip(w io.Writer, entries []Entry, format string) error {
	zw := zip.NewWriter(w)
	defer zw.Close()

	for _, e := range entries {
		switch format {
		case "json":
			data, err := JSON(e.Doc)
			if err != nil {
				return err
			}
			if err := writeFile(zw, e.Name+".json", data); err != nil {
				return err
			}
		case "markdown":
			if err := writeFile(zw, e.Name+".md", []byte(Markdown(e.Doc))); err != nil {
				return err
			}
		case "text":
			if err := writeFile(zw, e.Name+".txt", []byte(PlainText(e.Doc))); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown zip format: %s", format)
		}
	}
	return nil
}

// CompleteZip writes every entry in every selected format, grouped into
// json/, markdown/ and text/ subdirectories.
func CompleteZip(w io.Writer, entries []Entry, formats Formats) error {
	zw := zip.NewWriter(w)
	defer zw.Close()

	for _, e := range entries {
		if err := writeEntry(zw, e, formats, true); err != nil {
			return err
		}
	}
	return nil
}
