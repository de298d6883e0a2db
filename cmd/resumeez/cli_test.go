package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "resumeez")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resumeez ./cmd/resumeez'", binaryPath)
	}

	return binaryPath
}

const cliOntology = `{
	"skills": [
		{"id": "python", "canonical_name": "Python", "category": "language", "base_weight": 1.0},
		{"id": "docker", "canonical_name": "Docker", "category": "tool", "base_weight": 0.9}
	]
}`

func writeCLIFixtures(t *testing.T) (ontologyPath, jdPath, resumePath string) {
	t.Helper()
	dir := t.TempDir()

	ontologyPath = filepath.Join(dir, "ontology.json")
	require.NoError(t, os.WriteFile(ontologyPath, []byte(cliOntology), 0o644))

	jdPath = filepath.Join(dir, "jd.txt")
	require.NoError(t, os.WriteFile(jdPath, []byte("Requirements:\nPython and Docker."), 0o644))

	resumePath = filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(resumePath, []byte(`{"skills": ["Python"]}`), 0o644))

	return ontologyPath, jdPath, resumePath
}

func TestExtractJDCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)
	ontologyPath, jdPath, _ := writeCLIFixtures(t)
	outPath := filepath.Join(t.TempDir(), "extraction.json")

	cmd := exec.Command(binaryPath, "extract-jd",
		"--in", jdPath, "--out", outPath, "--ontology", ontologyPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var extraction map[string]any
	require.NoError(t, json.Unmarshal(data, &extraction))
	assert.Len(t, extraction["jd_hash"], 64)
	assert.Len(t, extraction["canonical_skills"], 2)
}

func TestExtractJDCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract-jd")
	output, err := cmd.CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestAnalyzeCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)
	ontologyPath, jdPath, resumePath := writeCLIFixtures(t)
	outPath := filepath.Join(t.TempDir(), "analysis.json")

	cmd := exec.Command(binaryPath, "analyze",
		"--jd", jdPath, "--resume", resumePath, "--out", outPath, "--ontology", ontologyPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "Match:")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var analysis map[string]any
	require.NoError(t, json.Unmarshal(data, &analysis))

	missing := analysis["missing_skills"].([]any)
	require.Len(t, missing, 1)
	assert.Equal(t, "Docker", missing[0].(map[string]any)["name"])
}

func TestRoadmapCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)
	ontologyPath, _, _ := writeCLIFixtures(t)

	dir := t.TempDir()
	missingPath := filepath.Join(dir, "missing.json")
	require.NoError(t, os.WriteFile(missingPath, []byte(`[
		{"name": "Docker", "canonical_id": "docker", "category": "tool", "computed_weight": 1.35, "base_weight": 0.9}
	]`), 0o644))
	outPath := filepath.Join(dir, "roadmap.json")

	cmd := exec.Command(binaryPath, "roadmap",
		"--in", missingPath, "--out", outPath, "--ontology", ontologyPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var roadmap map[string]any
	require.NoError(t, json.Unmarshal(data, &roadmap))
	assert.Contains(t, roadmap, "phase_1_core")
	assert.Len(t, roadmap["phase_2_primary"], 1)
}

func TestServeCommand_RequiresSource(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "serve")
	cmd.Env = append(os.Environ(), "DATABASE_URL=", "ONTOLOGY_FILE=")
	output, err := cmd.CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "ontology")
}
