package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys read by LoadEnv
const (
	EnvSeed       = "STARCATCH_SEED"
	EnvWinScore   = "STARCATCH_WIN_SCORE"
	EnvFullscreen = "STARCATCH_FULLSCREEN"
	EnvDebug      = "STARCATCH_DEBUG"
)

// LoadEnv loads the given .env files (or ./.env when none are given) and
// overlays the STARCATCH_* variables onto the defaults. A missing file is not
// an error.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}

	C.Seed = getEnvInt64(EnvSeed, C.Seed)
	C.Fullscreen = getEnvBool(EnvFullscreen, C.Fullscreen)
	SetWinScore(getEnvInt64(EnvWinScore, int64(Score.WinScore)), EnvWinScore)
	if getEnvBool(EnvDebug, false) {
		Debug.Inspector = true
		Debug.Colliders = true
	}
	return nil
}

// SetWinScore sets the score that ends a round. Values below 1 are logged
// and leave the current score in place.
func SetWinScore(n int64, source string) bool {
	if n < 1 {
		log.Printf("Warning: ignoring %s=%d: win score must be at least 1", source, n)
		return false
	}
	Score.WinScore = int(n)
	return true
}

func getEnvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("Warning: ignoring %s=%q: %v", key, v, err)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: ignoring %s=%q: %v", key, v, err)
		return def
	}
	return b
}
