package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lingualearn/linguaflash/internal/api"
	"github.com/lingualearn/linguaflash/internal/config"
	"github.com/lingualearn/linguaflash/internal/db"
	"github.com/lingualearn/linguaflash/internal/jobs"
	"github.com/lingualearn/linguaflash/internal/logger"
	"github.com/lingualearn/linguaflash/internal/repository/sqlite"
	"github.com/lingualearn/linguaflash/internal/services"
	"github.com/lingualearn/linguaflash/internal/speech"
	"github.com/lingualearn/linguaflash/internal/translate"
	"github.com/lingualearn/linguaflash/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("LinguaFlash Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("translate_base_url=%s", cfg.TranslateBaseURL)
	log.Debug("worker_count=%d", cfg.WorkerCount)
	log.Debug("queue_size=%d", cfg.QueueSize)
	log.Debug("seed_starter_words=%t", cfg.SeedStarterWords)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	wordRepo := sqlite.NewWordRepository(database)
	progressRepo := sqlite.NewProgressRepository(database)
	settingsRepo := sqlite.NewSettingsRepository(database)
	translationRepo := sqlite.NewTranslationRepository(database)

	translator := translate.New(
		translate.WithBaseURL(cfg.TranslateBaseURL),
		translate.WithTimeout(time.Duration(cfg.TranslateTimeout)*time.Second),
	)

	pool := worker.NewPool(cfg.WorkerCount, cfg.QueueSize)

	progressService := services.NewProgressService(progressRepo)
	reviewService := services.NewReviewService(wordRepo, progressService)
	wordService := services.NewWordService(wordRepo, translationRepo, settingsRepo, progressService, translator, pool)
	gameService := services.NewGameService(wordRepo, reviewService, progressService, func() *rand.Rand {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	})
	translateService := services.NewTranslateService(translationRepo, settingsRepo, translator)
	settingsService := services.NewSettingsService(settingsRepo)

	srv := &api.Server{
		Words:        wordService,
		Reviews:      reviewService,
		Progress:     progressService,
		Games:        gameService,
		Translations: translateService,
		Settings:     settingsService,
		Speaker:      speech.NoopSpeaker{},
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	if cfg.SeedStarterWords {
		if n, err := wordService.SeedStarterWords(ctx, "default"); err != nil {
			log.Warn("failed to seed starter words: %v", err)
		} else if n > 0 {
			log.Info("seeded %d starter words", n)
		}
	}

	// Clean out stale cached translations on startup.
	pool.Submit(&jobs.CachePurgeJob{Cache: translationRepo})

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	pool.Stop()

	log.Info("===========================================")
	log.Info("LinguaFlash Server Stopped")
	log.Info("===========================================")
}
