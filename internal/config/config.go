// Package config reads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings for a trawler session.
type Config struct {
	LogLevel  string
	LogFormat string

	// Seed drives every random choice in the hull (leak sites, board variants).
	Seed int64

	MapFile  string // file name under assets/hulls
	Leaks    bool   // ambient leaks enabled
	WeakHull bool   // leaks spring twice as often
	Audio    bool
	Language string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Seed:      time.Now().UnixNano(),
		MapFile:   "trawler_hull.json",
		Leaks:     true,
		WeakHull:  false,
		Audio:     true,
		Language:  "en",
	}
}

// Load reads envFile (if it exists) into the environment, then builds a
// Config from the environment on top of Default.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables on top of Default.
func FromEnv() (Config, error) {
	cfg := Default()

	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv("TRAWLER_MAP"); ok && v != "" {
		cfg.MapFile = v
	}
	if v, ok := os.LookupEnv("TRAWLER_LANG"); ok && v != "" {
		cfg.Language = v
	}

	if v, ok := os.LookupEnv("TRAWLER_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("TRAWLER_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	var err error
	if cfg.Leaks, err = envBool("TRAWLER_LEAKS", cfg.Leaks); err != nil {
		return Config{}, err
	}
	if cfg.WeakHull, err = envBool("TRAWLER_WEAK_HULL", cfg.WeakHull); err != nil {
		return Config{}, err
	}
	if cfg.Audio, err = envBool("TRAWLER_AUDIO", cfg.Audio); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
