// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionBackend identifies the PDF conversion engine.
// Per prd002-conversion R5.1.
type ConversionBackend string

const (
	// BackendStructure is the layout-aware engine producing Markdown.
	BackendStructure ConversionBackend = "structure"

	// BackendPlaintext is the simpler per-page text engine.
	BackendPlaintext ConversionBackend = "plaintext"
)

// ConversionConfig holds settings for the conversion stage.
type ConversionConfig struct {
	// Backend selects the engine: structure or plaintext.
	Backend ConversionBackend `mapstructure:"backend" yaml:"backend"`

	// Accurate is the initial state of the accurate-mode toggle.
	Accurate bool `mapstructure:"accurate" yaml:"accurate"`
}

// SaveConfig holds settings for writing converted output to disk.
type SaveConfig struct {
	// ChunkSize bounds individual writes during save (default 1 MiB). The
	// written bytes are identical to an unchunked write.
	ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`
}

// LoggingConfig holds settings for the diagnostic log.
type LoggingConfig struct {
	// File is the log file path (default converter.log in the working
	// directory). Lines are timestamped; the file is appended to.
	File string `mapstructure:"file" yaml:"file"`
}

// HistoryConfig holds settings for the conversion history store.
// Per prd005-history R2.1-R2.2.
type HistoryConfig struct {
	// Path is the SQLite database file (default paperdesk.db).
	Path string `mapstructure:"path" yaml:"path"`

	// MaxEntries caps the number of retained records (default 200).
	MaxEntries int `mapstructure:"max_entries" yaml:"max_entries"`
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width  float32 `mapstructure:"width" yaml:"width"`
	Height float32 `mapstructure:"height" yaml:"height"`
}

// AppConfig groups all application configuration.
type AppConfig struct {
	Conversion ConversionConfig `mapstructure:"conversion" yaml:"conversion"`
	Save       SaveConfig       `mapstructure:"save" yaml:"save"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	History    HistoryConfig    `mapstructure:"history" yaml:"history"`
	Window     WindowConfig     `mapstructure:"window" yaml:"window"`
}
