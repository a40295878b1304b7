package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{
	"YOUTUBE_API_KEY", "GOOGLE_API_KEY", "YOUTUBE_API_ENDPOINT", "LOG_DIR",
	"SEARCH_PAGE_SIZE", "RELATED_LIMIT", "COMMENTS_PAGE_SIZE", "YOUTUBE_MAX_QPS",
	"HTTP_TIMEOUT", "SEARCH_DEBOUNCE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range configVars {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.YouTubeAPIKey)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, int64(20), cfg.SearchPageSize)
	assert.Equal(t, int64(5), cfg.RelatedLimit)
	assert.Equal(t, int64(20), cfg.CommentsPageSize)
	assert.Equal(t, 5.0, cfg.MaxQPS)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 400*time.Millisecond, cfg.SearchDebounce)

	err = cfg.Validate()
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "fallback-key")
	t.Setenv("YOUTUBE_API_ENDPOINT", "http://localhost:9999/")
	t.Setenv("SEARCH_PAGE_SIZE", "10")
	t.Setenv("YOUTUBE_MAX_QPS", "2.5")
	t.Setenv("SEARCH_DEBOUNCE", "1s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "fallback-key", cfg.YouTubeAPIKey)
	assert.Equal(t, "http://localhost:9999/", cfg.YouTubeEndpoint)
	assert.Equal(t, int64(10), cfg.SearchPageSize)
	assert.Equal(t, 2.5, cfg.MaxQPS)
	assert.Equal(t, time.Second, cfg.SearchDebounce)
	assert.NoError(t, cfg.Validate())

	t.Setenv("YOUTUBE_API_KEY", "primary-key")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "primary-key", cfg.YouTubeAPIKey)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name, value string
	}{
		{"SEARCH_PAGE_SIZE", "abc"},
		{"RELATED_LIMIT", "0"},
		{"COMMENTS_PAGE_SIZE", "-3"},
		{"YOUTUBE_MAX_QPS", "fast"},
		{"HTTP_TIMEOUT", "15"},
		{"SEARCH_DEBOUNCE", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.name, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_DIR=from-env-file\nRELATED_LIMIT=3\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("RELATED_LIMIT=7\n"), 0644))
	t.Setenv("SEARCH_PAGE_SIZE", "12")
	// godotenv treats a variable set to "" as present, so these must be truly unset.
	for _, name := range []string{"LOG_DIR", "RELATED_LIMIT"} {
		require.NoError(t, os.Unsetenv(name))
	}

	loaded, err := LoadDotEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{".env.local", ".env"}, loaded)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env-file", cfg.LogDir)
	assert.Equal(t, int64(7), cfg.RelatedLimit)
	assert.Equal(t, int64(12), cfg.SearchPageSize)
}

func TestLoadDotEnv_ReportsMalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("RELATED_LIMIT=\"unterminated\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_DIR=from-env-file\n"), 0644))
	for _, name := range []string{"LOG_DIR", "RELATED_LIMIT"} {
		require.NoError(t, os.Unsetenv(name))
	}

	loaded, err := LoadDotEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env.local")
	assert.Equal(t, []string{".env"}, loaded)

	// the valid file is still applied
	assert.Equal(t, "from-env-file", os.Getenv("LOG_DIR"))
}
