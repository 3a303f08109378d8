package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingualearn/linguaflash/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:              ":8080",
		DBPath:            "test.db",
		LogLevel:          "INFO",
		TranslateBaseURL:  "https://api.mymemory.translated.net",
		TranslateTimeout:  10,
		WorkerCount:       2,
		QueueSize:         64,
		DefaultNativeLang: "uk",
		DefaultTargetLang: "en",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_BadWorkerCount(t *testing.T) {
	cfg := validConfig()
	cfg.WorkerCount = 0

	assert.Error(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:linguaflash.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 2, cfg.WorkerCount)
	assert.True(t, cfg.SeedStarterWords)
	assert.Equal(t, "uk", cfg.DefaultNativeLang)
	assert.Equal(t, "en", cfg.DefaultTargetLang)
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Clearenv()
	t.Setenv("ADDR", ":9090")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("SEED_STARTER_WORDS", "false")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 8, cfg.WorkerCount)
	assert.False(t, cfg.SeedStarterWords)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	os.Clearenv()
	t.Setenv("QUEUE_SIZE", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, 64, cfg.QueueSize)
}
