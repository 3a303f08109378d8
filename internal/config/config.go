package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	DBPath            string
	LogLevel          string
	TranslateBaseURL  string
	TranslateTimeout  int // seconds
	WorkerCount       int
	QueueSize         int
	SeedStarterWords  bool
	DefaultNativeLang string
	DefaultTargetLang string
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:              envOr("ADDR", ":8080"),
		DBPath:            envOr("DB_PATH", "file:linguaflash.db"),
		LogLevel:          envOr("LOG_LEVEL", "INFO"),
		TranslateBaseURL:  envOr("TRANSLATE_BASE_URL", "https://api.mymemory.translated.net"),
		TranslateTimeout:  envIntOr("TRANSLATE_TIMEOUT_SECONDS", 10),
		WorkerCount:       envIntOr("WORKER_COUNT", 2),
		QueueSize:         envIntOr("QUEUE_SIZE", 64),
		SeedStarterWords:  envBoolOr("SEED_STARTER_WORDS", true),
		DefaultNativeLang: envOr("DEFAULT_NATIVE_LANG", "uk"),
		DefaultTargetLang: envOr("DEFAULT_TARGET_LANG", "en"),
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.TranslateBaseURL == "" {
		return fmt.Errorf("TRANSLATE_BASE_URL cannot be empty")
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be at least 1")
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("QUEUE_SIZE must be at least 1")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
