package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"X4_DATA_DIRS", "X4_LANGUAGE", "X4_GAME_CONFIG", "X4_STORE_LANGUAGE", "X4_CACHE_DIR"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	assert.Equal(t, []string{"data"}, cfg.DataDirs)
	assert.Zero(t, cfg.LanguageOverride)
	assert.Empty(t, cfg.GameConfigPath)
	assert.Empty(t, cfg.StoreLanguage)
	assert.Equal(t, filepath.Join("data", "csv_cache"), cfg.CacheDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("X4_DATA_DIRS", "/srv/x4/base"+string(os.PathListSeparator)+"/srv/x4/split")
	t.Setenv("X4_LANGUAGE", "49")
	t.Setenv("X4_STORE_LANGUAGE", "german")
	t.Setenv("X4_CACHE_DIR", "/tmp/x4cache")

	cfg := Load()

	assert.Equal(t, []string{"/srv/x4/base", "/srv/x4/split"}, cfg.DataDirs)
	assert.Equal(t, 49, cfg.LanguageOverride)
	assert.Equal(t, "german", cfg.StoreLanguage)
	assert.Equal(t, "/tmp/x4cache", cfg.CacheDir)
}

func TestLoadBadValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("X4_LANGUAGE", "not-a-number")
	t.Setenv("X4_DATA_DIRS", "  "+string(os.PathListSeparator)+" ")

	cfg := Load()

	assert.Zero(t, cfg.LanguageOverride)
	assert.Equal(t, []string{"data"}, cfg.DataDirs)
}
