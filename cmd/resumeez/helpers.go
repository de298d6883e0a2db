package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/thapanirajan/ResumeEZ-backend/internal/ontology"
)

// loadSnapshot builds an ontology cache for a one-shot CLI command. The
// seed file path comes from the flag, falling back to ONTOLOGY_FILE.
func loadSnapshot(ctx context.Context, path string) (*ontology.Cache, error) {
	if path == "" {
		path = os.Getenv("ONTOLOGY_FILE")
	}
	if path == "" {
		return nil, fmt.Errorf("ontology file is required (use --ontology or set ONTOLOGY_FILE)")
	}

	store := ontology.NewStore()
	if err := store.Load(ctx, ontology.FileSource{Path: path}); err != nil {
		return nil, fmt.Errorf("failed to load ontology: %w", err)
	}
	return store.Snapshot(), nil
}

// writeJSONOutput marshals v with indentation to the output file, or to
// stdout when path is empty.
func writeJSONOutput(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}

// readJSONInput reads and decodes a JSON input file into v.
func readJSONInput(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse input file %s: %w", path, err)
	}
	return nil
}
