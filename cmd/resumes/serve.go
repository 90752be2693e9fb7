package main

import (
	"fmt"

	"github.com/GOPIVARDHAN1965/resumes/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing resume generation and keyword analytics endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ServerAddr = serveAddr
	}

	v, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Addr:         cfg.ServerAddr,
		DatabasePath: cfg.DatabasePath,
		Vocab:        v,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
