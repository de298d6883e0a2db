package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"database_url": "postgres://localhost/skills",
		"port": 9090,
		"fuzzy_threshold": 85
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/skills", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 85, cfg.FuzzyThreshold)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "config path is empty")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"port": `)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestLoadConfig_RelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"port": 8081}`), 0o644))
	t.Chdir(dir)

	cfg, err := LoadConfig("config.json")
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/skills")
	t.Setenv("ONTOLOGY_FILE", "/tmp/ontology.json")
	t.Setenv("PORT", "9999")

	cfg := FromEnv()
	assert.Equal(t, "postgres://localhost/skills", cfg.DatabaseURL)
	assert.Equal(t, "/tmp/ontology.json", cfg.OntologyFile)
	assert.Equal(t, 9999, cfg.Port)
}

func TestFromEnv_BadPortIgnored(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ONTOLOGY_FILE", "")
	t.Setenv("PORT", "not-a-number")

	cfg := FromEnv()
	assert.Zero(t, cfg.Port)
}

func TestValidate(t *testing.T) {
	ontologyPath := writeConfigFile(t, `{}`)

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Config{}},
		{name: "valid", cfg: Config{Port: 8080, FuzzyThreshold: 82, OntologyFile: ontologyPath}},
		{name: "port too high", cfg: Config{Port: 70000}, wantErr: "'port' must be between"},
		{name: "negative port", cfg: Config{Port: -1}, wantErr: "'port' must be between"},
		{name: "threshold too high", cfg: Config{FuzzyThreshold: 101}, wantErr: "'fuzzy_threshold' must be between"},
		{name: "missing ontology file", cfg: Config{OntologyFile: "/no/such/file.json"}, wantErr: "ontology file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}
	defaults := Config{
		DatabaseURL:    "postgres://localhost/skills",
		OntologyFile:   "/tmp/ontology.json",
		Port:           8080,
		FuzzyThreshold: 82,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "postgres://localhost/skills", merged.DatabaseURL)
	assert.Equal(t, "/tmp/ontology.json", merged.OntologyFile)
	assert.Equal(t, 82, merged.FuzzyThreshold)
}

func TestMergeWithDefaults_SetFieldsWin(t *testing.T) {
	cfg := Config{DatabaseURL: "postgres://prod/skills", FuzzyThreshold: 90}
	merged := cfg.MergeWithDefaults(Config{DatabaseURL: "postgres://dev/skills", FuzzyThreshold: 82})

	assert.Equal(t, "postgres://prod/skills", merged.DatabaseURL)
	assert.Equal(t, 90, merged.FuzzyThreshold)
}
