package config

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsCfg{
			PublicationType: "book",
			Language:        "en",
			CleanText:       true,
			SplitChapters:   false,
			ChapterPattern:  "",
		},
		Export: ExportCfg{
			Markdown:  false,
			Text:      false,
			Zip:       false,
			OutputDir: ".",
		},
		Batch: BatchCfg{
			Workers: 0,
		},
	}
}
