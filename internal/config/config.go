package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// DataDirs are the candidate root directories holding extracted game
	// XML files, searched in order. Separated by the OS path list
	// separator in the environment.
	DataDirs []string
	// LanguageOverride pins the language id; 0 means auto-detect.
	LanguageOverride int
	// GameConfigPath points at the game's config.xml, consulted for the
	// in-game language setting when no override is set.
	GameConfigPath string
	// StoreLanguage is the platform store language preference, by name
	// (e.g. "english", "schinese").
	StoreLanguage string
	// CacheDir is where CSV snapshots and the sqlite cache are written.
	CacheDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		DataDirs:         getEnvPaths("X4_DATA_DIRS", []string{"data"}),
		LanguageOverride: getEnvInt("X4_LANGUAGE", 0),
		GameConfigPath:   getEnv("X4_GAME_CONFIG", ""),
		StoreLanguage:    getEnv("X4_STORE_LANGUAGE", ""),
		CacheDir:         getEnv("X4_CACHE_DIR", filepath.Join("data", "csv_cache")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvPaths(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var dirs []string
	for _, d := range strings.Split(v, string(os.PathListSeparator)) {
		if d = strings.TrimSpace(d); d != "" {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) == 0 {
		return fallback
	}
	return dirs
}
