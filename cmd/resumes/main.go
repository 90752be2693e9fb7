// Package main provides the resumes CLI: a resume tailoring engine driven
// by a local profile database and job-description analysis.
package main

import (
	"fmt"
	"os"

	"github.com/GOPIVARDHAN1965/resumes/internal/config"
	"github.com/GOPIVARDHAN1965/resumes/internal/store"
	"github.com/GOPIVARDHAN1965/resumes/internal/vocab"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
)

var rootCmd = &cobra.Command{
	Use:   "resumes",
	Short: "Tailor resumes to job descriptions",
	Long: `Resumes scores your experience bullets against a job description,
selects the strongest ones per role, and reports ATS keyword coverage.
Every run can feed keyword and performance analytics back into the
local database to sharpen future selections.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (overrides config)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	return cfg, nil
}

// openStore opens the profile database named by the configuration.
func openStore(cfg *config.Config) (*store.Store, error) {
	s, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.DatabasePath, err)
	}
	return s, nil
}

// loadVocabulary returns the custom vocabulary when configured, otherwise
// the built-in one.
func loadVocabulary(cfg *config.Config) (*vocab.Vocabulary, error) {
	if cfg.VocabPath == "" {
		return vocab.Default(), nil
	}
	return vocab.LoadFile(cfg.VocabPath)
}
