package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/foliokit/folio/internal/batch"
	"github.com/foliokit/folio/internal/config"
	"github.com/foliokit/folio/internal/export"
	"github.com/foliokit/folio/internal/extract"
	"github.com/foliokit/folio/internal/home"
)

var watchOut string

// settleDelay gives writers time to finish before a new file is read.
const settleDelay = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and convert arriving documents",
	Long: `Watch a directory for new TXT and PDF files and convert each one as
it arrives, using the defaults from the config file. Config changes are
picked up without a restart. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cm.OnChange(func(cfg *config.Config) {
			logger.Info("config reloaded",
				"split_chapters", cfg.Defaults.SplitChapters,
				"markdown", cfg.Export.Markdown,
				"text", cfg.Export.Text)
		})
		cm.WatchConfig()

		if err := resolveWatchOut(cmd, cm.Get(), logger); err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer watcher.Close()

		dir := args[0]
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		logger.Info("watching for documents", "dir", dir, "out", watchOut)

		seen := make(map[string]time.Time)
		for {
			select {
			case <-cmd.Context().Done():
				logger.Info("shutting down watcher")
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				if extract.DetectFormat(event.Name) == extract.FormatUnknown {
					continue
				}
				// Writers fire multiple events per file; only convert
				// again if the last conversion was a while ago.
				if t, dup := seen[event.Name]; dup && time.Since(t) < 2*time.Second {
					continue
				}
				seen[event.Name] = time.Now()

				time.Sleep(settleDelay)
				convertArrival(cmd, event.Name, cm.Get(), logger)

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Error("watch error", "error", err)
			}
		}
	},
}

// resolveWatchOut picks the output directory: the --out flag, then the config
// file, then the home exports directory.
func resolveWatchOut(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	if !cmd.Flags().Changed("out") {
		if cfg.Export.OutputDir != "" && cfg.Export.OutputDir != "." {
			watchOut = cfg.Export.OutputDir
		} else {
			dir, err := home.New(homeDir)
			if err != nil {
				return err
			}
			if !dir.Exists() {
				logger.Info("creating folio home", "path", dir.Path())
			}
			if err := dir.EnsureExists(); err != nil {
				return fmt.Errorf("failed to create home directory: %w", err)
			}
			watchOut = dir.ExportsPath()
		}
	}
	if err := os.MkdirAll(watchOut, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// convertArrival converts one file using the current config snapshot, so a
// reloaded config applies to the next arrival.
func convertArrival(cmd *cobra.Command, path string, cfg *config.Config, logger *slog.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read file", "file", path, "error", err)
		return
	}

	opts := batch.Options{
		PublicationType: cfg.Defaults.PublicationType,
		CleanText:       cfg.Defaults.CleanText,
		SplitChapters:   cfg.Defaults.SplitChapters,
		ChapterPattern:  cfg.Defaults.ChapterPattern,
		Logger:          logger,
	}
	formats := export.Formats{Markdown: cfg.Export.Markdown, Text: cfg.Export.Text}

	items := []batch.Item{{Filename: filepath.Base(path), Data: data}}
	results := batch.Process(cmd.Context(), items, opts)
	r := results[0]
	for _, w := range r.Warnings {
		logger.Warn(w, "file", r.Filename)
	}
	if r.Err != nil {
		logger.Error("conversion failed", "file", r.Filename, "error", r.Err)
		return
	}
	if err := writeResult(watchOut, r, formats); err != nil {
		logger.Error("failed to write outputs", "file", r.Filename, "error", err)
		return
	}
	logger.Info("converted",
		"file", r.Filename,
		"title", r.Doc.Data.Title,
		"chapters", r.ChaptersFound)
}

func init() {
	watchCmd.Flags().StringVar(&watchOut, "out", "", "output directory (default: <home>/exports)")
}
