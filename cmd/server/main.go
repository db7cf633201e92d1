package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rogue-engine/internal/agent"
	"rogue-engine/internal/config"
	"rogue-engine/internal/engine"
	"rogue-engine/internal/infrastructure/storage"
	"rogue-engine/internal/server"
	"rogue-engine/internal/version"
	"rogue-engine/pkg/logger"
	"rogue-engine/pkg/utils"

	"github.com/joho/godotenv"
)

func main() {
	// .env до логгера: LOG_LEVEL и LOG_FORMAT могут прийти оттуда
	envErr := godotenv.Load()
	logger.Init()
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Log.WithError(envErr).Warn("Failed to load .env")
	}

	// 1. Парсинг конфигурации
	var configPath, slot string
	var seed int64
	var bots, botTurns int
	flag.StringVar(&configPath, "config", "config.yaml", "Path to YAML config file")
	// Читаем флаг -seed. По умолчанию 0 (значит взять из конфига или от времени).
	flag.Int64Var(&seed, "seed", 0, "Master seed (overrides config)")
	flag.StringVar(&slot, "slot", "", "Save slot prefix (overrides config)")
	flag.IntVar(&bots, "bots", 0, "Number of headless bot sessions to run (soak testing)")
	flag.IntVar(&botTurns, "bot-turns", 500, "Turns each bot plays before saving and leaving")
	flag.Parse()

	logger.Log.Info("Starting rogue engine...")
	logger.Log.Info(version.String())

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}
	if seed != 0 {
		cfg.Game.Seed = seed
	}
	if slot != "" {
		cfg.Storage.Slot = slot
	}
	if cfg.Game.Seed != 0 {
		logger.Log.Infof("Using master seed: %d", cfg.Game.Seed)
	} else {
		logger.Log.Info("Using time-based seeds")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Хранилище сохранений
	store, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to open save storage")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Log.WithError(err).Warn("Failed to close save storage")
		}
	}()

	// 3. Инициализация ядра
	opts, err := engine.OptionsFromConfig(cfg.Game)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load spawn tables")
	}
	gameService := engine.NewService(opts, store, cfg.Game.Seed, cfg.Storage.Slot)
	gameService.Start(ctx)

	for i := 0; i < bots; i++ {
		bot := agent.NewBot(utils.NewToken(), gameService, botTurns)
		go bot.Run(ctx)
	}
	if bots > 0 {
		logger.Log.Infof("Started %d headless bots", bots)
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 4. Запуск сервера
	srv := server.New(gameService, cfg.Server.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.WithError(err).Fatal("Server start error")
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Warn("HTTP shutdown error")
	}
	cancel()

	// Сохраняем все живые партии
	if err := gameService.SaveAll(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Autosave failed")
	}

	logger.Log.Info("Done.")
}
