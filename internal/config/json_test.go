package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"database_path": "/data/pop.db",
		"export_dir":    "/data/exports",
		"log_level":     "warn",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "/data/pop.db", cfg.DatabasePath)
		assert.Equal(t, "/data/exports", cfg.ExportDir)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("no config flag leaves values unchanged", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DatabasePath: "keep.db", ExportDir: "keep"}
		parseJson(cfg)

		assert.Equal(t, "keep.db", cfg.DatabasePath)
		assert.Equal(t, "keep", cfg.ExportDir)
	})

	t.Run("empty JSON fields do not override", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"export_dir": "/only/exports",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{DatabasePath: "keep.db", ExportDir: "old"}
		parseJson(cfg)

		assert.Equal(t, "keep.db", cfg.DatabasePath)
		assert.Equal(t, "/only/exports", cfg.ExportDir)
	})
}

func TestLoadConfig_DefaultsThenOverrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-e", "/override/exports"}

	cfg := LoadConfig()

	assert.Equal(t, "pop.db", cfg.DatabasePath)
	assert.Equal(t, "/override/exports", cfg.ExportDir)
}
