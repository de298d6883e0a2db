package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thapanirajan/ResumeEZ-backend/internal/config"
	"github.com/thapanirajan/ResumeEZ-backend/internal/server"
)

var (
	servePort       int
	serveConfigFile string
	serveOntology   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for skill extraction, matching, scoring and roadmap generation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveOntology, "ontology", "", "Path to ontology seed file (alternative to DATABASE_URL)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	// Flags win over config file and environment
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveOntology != "" {
		cfg.OntologyFile = serveOntology
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" && cfg.OntologyFile == "" {
		return fmt.Errorf("an ontology source is required (set DATABASE_URL or use --ontology)")
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		DatabaseURL:    cfg.DatabaseURL,
		OntologyFile:   cfg.OntologyFile,
		FuzzyThreshold: cfg.FuzzyThreshold,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
