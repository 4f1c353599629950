package config

// Config is the folio configuration schema.
// Stored at: ./config.yaml or ~/.folio/config.yaml
type Config struct {
	Defaults DefaultsCfg `mapstructure:"defaults" yaml:"defaults"`
	Export   ExportCfg   `mapstructure:"export" yaml:"export"`
	Batch    BatchCfg    `mapstructure:"batch" yaml:"batch"`
}

// DefaultsCfg holds per-document processing defaults, overridable per run
// from the command line.
type DefaultsCfg struct {
	PublicationType string `mapstructure:"publication_type" yaml:"publication_type"`
	Language        string `mapstructure:"language" yaml:"language"`
	CleanText       bool   `mapstructure:"clean_text" yaml:"clean_text"`
	SplitChapters   bool   `mapstructure:"split_chapters" yaml:"split_chapters"`
	ChapterPattern  string `mapstructure:"chapter_pattern" yaml:"chapter_pattern"`
}

// ExportCfg selects which formats conversion writes alongside JSON.
type ExportCfg struct {
	Markdown  bool   `mapstructure:"markdown" yaml:"markdown"`
	Text      bool   `mapstructure:"text" yaml:"text"`
	Zip       bool   `mapstructure:"zip" yaml:"zip"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// BatchCfg controls batch execution.
type BatchCfg struct {
	// Workers is the number of files converted in parallel. 0 means one
	// worker per CPU.
	Workers int `mapstructure:"workers" yaml:"workers"`
}
