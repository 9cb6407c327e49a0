package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Source SourceConfig      `yaml:"source"`
	Output OutputConfig      `yaml:"output"`
	SQLite SQLiteConfig      `yaml:"sqlite"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Source.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	ErrorLog string     `yaml:"error_log"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ErrorLog, validation.Required),
	)
}

// SourceConfig holds the path to the exported Markdown tree.
type SourceConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the source configuration. The directory itself is not
// checked here; a missing tree is reported by the importer.
func (c *SourceConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// OutputConfig holds the CSV destination.
type OutputConfig struct {
	CSVPath string `yaml:"csv_path"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.CSVPath, validation.Required),
	)
}

// SQLiteConfig holds the optional SQLite load target. An empty Path disables it.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Enabled reports whether records should also be loaded into SQLite.
func (c *SQLiteConfig) Enabled() bool {
	return c.Path != ""
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			ErrorLog: "import_errors.log",
		},
		Output: OutputConfig{
			CSVPath: "prompts.csv",
		},
	}
}
