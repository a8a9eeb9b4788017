package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the loader from an empty directory so stray config files
// on the machine cannot leak into the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestInitializeConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "database", cfg.Storage.Directory)
	assert.Equal(t, 25, cfg.Parser.HeaderScanWindow)
	assert.Equal(t, "generic", cfg.Parser.DefaultMapping)
	assert.Equal(t, ',', cfg.DelimiterRune())
	assert.False(t, cfg.AI.Enabled)
}

func TestInitializeConfig_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BANKSTMT_LOG_LEVEL", "debug")
	t.Setenv("BANKSTMT_STORAGE_BACKEND", BackendSQLite)
	t.Setenv("BANKSTMT_PARSER_DEFAULT_MAPPING", "sbi")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "sbi", cfg.Parser.DefaultMapping)
}

func TestInitializeConfig_GeminiKeyUnprefixed(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	isolate(t)
	data := "log:\n  level: warn\nstorage:\n  backend: memory\n"
	require.NoError(t, os.WriteFile(filepath.Join(".", "config.yaml"), []byte(data), 0600))

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
}

func TestInitializeConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown backend", "BANKSTMT_STORAGE_BACKEND", "redis"},
		{"unknown log level", "BANKSTMT_LOG_LEVEL", "verbose"},
		{"multi-char delimiter", "BANKSTMT_CSV_DELIMITER", ";;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)
			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}
