package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/foliokit/folio/internal/api"
	"github.com/foliokit/folio/internal/batch"
	"github.com/foliokit/folio/internal/config"
	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/export"
)

var (
	convertType    string
	convertClean   bool
	convertSplit   bool
	convertPattern string
	convertMD      bool
	convertText    bool
	convertZip     bool
	convertZipFmt  string
	convertOut     string
	convertWorkers int

	metaTitle     string
	metaAuthor    string
	metaPublisher string
	metaDate      string
	metaYear      int
	metaLanguage  string
	metaSeries    string
	metaJournal   string
	metaVolume    string
	metaIssue     string
	metaISBN      string
	metaEdition   string
	metaSubjects  string
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert documents to structured records",
	Long: `Convert one or more TXT or PDF files to structured JSON records,
optionally with Markdown and plain-text exports.

Metadata flags apply to every file in the batch and override values
guessed from filenames. Chapter splitting detects "Chapter N" headings
(Arabic or Roman numerals); --chapter-pattern supplies a custom
expression, falling back to the default if it does not compile.

Examples:
  folio convert book.pdf
  folio convert --split-chapters --markdown *.txt
  folio convert --type article --journal "Nature" --year 1987 paper.pdf
  folio convert --zip --text --markdown scans/*.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()
		applyConfigDefaults(cmd, cfg)
		if convertZipFmt != "" {
			convertZip = true
		}

		if !validPublicationType(convertType) {
			return fmt.Errorf("unknown publication type %q (valid: %s)",
				convertType, strings.Join(document.PublicationTypes, ", "))
		}

		items := make([]batch.Item, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			items = append(items, batch.Item{Filename: filepath.Base(path), Data: data})
		}

		opts := batch.Options{
			PublicationType: convertType,
			CleanText:       convertClean,
			SplitChapters:   convertSplit,
			ChapterPattern:  convertPattern,
			Overlay:         overlayFromFlags(cmd),
			Workers:         convertWorkers,
			Logger:          logger,
		}

		results := batch.Process(cmd.Context(), items, opts)

		if err := os.MkdirAll(convertOut, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		formats := export.Formats{Markdown: convertMD, Text: convertText}
		for _, r := range results {
			for _, w := range r.Warnings {
				logger.Warn(w, "file", r.Filename)
			}
			if r.Err != nil {
				logger.Error("conversion failed", "file", r.Filename, "error", r.Err)
				continue
			}
			if !convertZip {
				if err := writeResult(convertOut, r, formats); err != nil {
					return err
				}
			}
		}

		if convertZip {
			if err := writeZip(convertOut, results, formats); err != nil {
				return err
			}
		}

		return api.Output(batch.Summarize(results))
	},
}

// applyConfigDefaults fills flag values from config for flags the user did
// not set explicitly.
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("type") {
		convertType = cfg.Defaults.PublicationType
	}
	if !flags.Changed("clean") {
		convertClean = cfg.Defaults.CleanText
	}
	if !flags.Changed("split-chapters") {
		convertSplit = cfg.Defaults.SplitChapters
	}
	if !flags.Changed("chapter-pattern") {
		convertPattern = cfg.Defaults.ChapterPattern
	}
	if !flags.Changed("markdown") {
		convertMD = cfg.Export.Markdown
	}
	if !flags.Changed("text") {
		convertText = cfg.Export.Text
	}
	if !flags.Changed("zip") {
		convertZip = cfg.Export.Zip
	}
	if !flags.Changed("out") {
		convertOut = cfg.Export.OutputDir
	}
	if !flags.Changed("workers") {
		convertWorkers = cfg.Batch.Workers
	}
	if !flags.Changed("language") {
		metaLanguage = cfg.Defaults.Language
	}
}

// overlayFromFlags builds the common metadata overlay from whichever
// metadata flags were set.
func overlayFromFlags(cmd *cobra.Command) *document.Overlay {
	o := &document.Overlay{
		Title:           metaTitle,
		Author:          metaAuthor,
		Publisher:       metaPublisher,
		PublicationDate: metaDate,
		Series:          metaSeries,
		Journal:         metaJournal,
		Volume:          metaVolume,
		Issue:           metaIssue,
		ISBN:            metaISBN,
		Edition:         metaEdition,
		Subjects:        metaSubjects,
	}
	if cmd.Flags().Changed("year") {
		year := metaYear
		o.Year = &year
	}
	// Language "en" is the record default already; only non-default
	// languages need the overlay.
	if metaLanguage != "" && metaLanguage != "en" {
		o.Language = metaLanguage
	}
	return o
}

// validPublicationType reports whether t is a known publication type tag.
func validPublicationType(t string) bool {
	for _, pt := range document.PublicationTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// stem strips the extension from a filename.
func stem(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// writeResult writes one record's selected formats as individual files.
func writeResult(dir string, r batch.Result, formats export.Formats) error {
	base := filepath.Join(dir, stem(r.Filename))

	data, err := export.JSON(r.Doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(base+".json", data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s.json: %w", base, err)
	}
	if formats.Markdown {
		if err := os.WriteFile(base+".md", []byte(export.Markdown(r.Doc)), 0o644); err != nil {
			return fmt.Errorf("failed to write %s.md: %w", base, err)
		}
	}
	if formats.Text {
		if err := os.WriteFile(base+".txt", []byte(export.PlainText(r.Doc)), 0o644); err != nil {
			return fmt.Errorf("failed to write %s.txt: %w", base, err)
		}
	}
	return nil
}

// writeZip bundles all successful results into a single archive: a flat
// all-formats zip for one file, a json/markdown/text tree for many.
func writeZip(dir string, results []batch.Result, formats export.Formats) error {
	var entries []export.Entry
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		entries = append(entries, export.Entry{Name: stem(r.Filename), Doc: r.Doc})
	}
	if len(entries) == 0 {
		return nil
	}

	name := "documents.zip"
	switch {
	case convertZipFmt != "":
		name = "documents_" + convertZipFmt + ".zip"
	case len(entries) == 1:
		name = entries[0].Name + "_all_formats.zip"
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer f.Close()

	if convertZipFmt != "" {
		return export.FormatZip(f, entries, convertZipFmt)
	}
	if len(entries) == 1 {
		return export.SingleZip(f, entries[0], formats)
	}
	return export.CompleteZip(f, entries, formats)
}

func init() {
	flags := convertCmd.Flags()
	flags.StringVarP(&convertType, "type", "t", "book", "publication type")
	flags.BoolVar(&convertClean, "clean", true, "apply text cleaning rules")
	flags.BoolVar(&convertSplit, "split-chapters", false, "detect and split chapters")
	flags.StringVar(&convertPattern, "chapter-pattern", "", "custom chapter heading pattern")
	flags.BoolVar(&convertMD, "markdown", false, "export Markdown with YAML front matter")
	flags.BoolVar(&convertText, "text", false, "export plain text")
	flags.BoolVar(&convertZip, "zip", false, "bundle exports into a ZIP archive")
	flags.StringVar(&convertZipFmt, "zip-format", "", "bundle only one format: json, markdown or text")
	flags.StringVar(&convertOut, "out", ".", "output directory")
	flags.IntVar(&convertWorkers, "workers", 0, "parallel workers (0 = one per CPU)")

	flags.StringVar(&metaTitle, "title", "", "document title (overrides filename-derived title)")
	flags.StringVar(&metaAuthor, "author", "", "author names, comma-separated")
	flags.StringVar(&metaPublisher, "publisher", "", "publisher name")
	flags.StringVar(&metaDate, "date", "", "publication date (ISO 8601)")
	flags.IntVar(&metaYear, "year", 0, "publication year (overrides filename-derived year)")
	flags.StringVar(&metaLanguage, "language", "en", "ISO 639-1 language code")
	flags.StringVar(&metaSeries, "series", "", "series or collection title (books)")
	flags.StringVar(&metaJournal, "journal", "", "journal title (articles)")
	flags.StringVar(&metaVolume, "volume", "", "journal volume")
	flags.StringVar(&metaIssue, "issue", "", "journal issue")
	flags.StringVar(&metaISBN, "isbn", "", "ISBN (books)")
	flags.StringVar(&metaEdition, "edition", "", "edition")
	flags.StringVar(&metaSubjects, "subjects", "", "subjects/keywords, comma-separated")
}
