// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when neither the config file nor the environment sets a
// value.
const (
	DefaultDatabasePath = "resumes.db"
	DefaultServerAddr   = ":8080"
	DefaultTopN         = 5
	DefaultProjectTopN  = 3
	DefaultMaxProjects  = 3
)

// Config is the application configuration. Every field is optional; missing
// values fall back to defaults, and environment variables override the file.
type Config struct {
	// DatabasePath locates the SQLite profile and analytics database.
	DatabasePath string `json:"database_path,omitempty"`

	// VocabPath points to a custom skill vocabulary file. Empty means the
	// built-in vocabulary.
	VocabPath string `json:"vocab_path,omitempty"`

	// OutputDir is where generated resumes are written.
	OutputDir string `json:"output_dir,omitempty"`

	// ServerAddr is the listen address for serve mode.
	ServerAddr string `json:"server_addr,omitempty"`

	// Selection limits.
	TopN        int `json:"top_n,omitempty" validate:"gte=0,lte=50"`
	ProjectTopN int `json:"project_top_n,omitempty" validate:"gte=0,lte=50"`
	MaxProjects int `json:"max_projects,omitempty" validate:"gte=0,lte=20"`

	// Verbose prints boxed stage summaries during generation.
	Verbose bool `json:"verbose,omitempty"`
}

var validate = validator.New()

// Load reads configuration from an optional JSON file, applies environment
// overrides, fills defaults, and validates the result. An empty path skips
// the file and uses environment plus defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides file values with environment variables. godotenv.Load
// in the CLI entrypoint makes .env files visible here.
func (c *Config) applyEnv() {
	if v := os.Getenv("RESUMES_DB_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("RESUMES_VOCAB_PATH"); v != "" {
		c.VocabPath = v
	}
	if v := os.Getenv("RESUMES_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("RESUMES_SERVER_ADDR"); v != "" {
		c.ServerAddr = v
	}
}

func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = DefaultDatabasePath
	}
	if c.ServerAddr == "" {
		c.ServerAddr = DefaultServerAddr
	}
	if c.TopN == 0 {
		c.TopN = DefaultTopN
	}
	if c.ProjectTopN == 0 {
		c.ProjectTopN = DefaultProjectTopN
	}
	if c.MaxProjects == 0 {
		c.MaxProjects = DefaultMaxProjects
	}
}

// Validate checks field ranges and that referenced files exist.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.VocabPath != "" {
		if _, err := os.Stat(c.VocabPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.VocabPath)
		}
	}
	return nil
}
