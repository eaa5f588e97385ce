package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"crawl-server/internal/engine"
	"crawl-server/internal/infrastructure/storage"
	"crawl-server/internal/network"
	"crawl-server/internal/server"
	"crawl-server/internal/version"
	"crawl-server/pkg/dungeon"
	"crawl-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var genConfigPath string
	var replayPath string
	flag.Int64Var(&seed, "seed", 0, "Dungeon seed (0 for random per session)")
	flag.StringVar(&genConfigPath, "config", "", "Path to YAML generation config")
	flag.StringVar(&replayPath, "replay", "", "Path to .dcrl replay file to simulate")
	flag.Parse()

	logger.Log.Info("Starting Dungeon Crawl...")
	logger.Log.Info(version.String())

	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.Fatal("Failed to load config:", err)
	}
	// Флаги перекрывают окружение
	if seed != 0 {
		cfg.Seed = seed
	}
	if genConfigPath != "" {
		cfg.GenConfigPath = genConfigPath
	}

	genCfg := dungeon.DefaultConfig()
	if cfg.GenConfigPath != "" {
		genCfg, err = dungeon.LoadConfig(cfg.GenConfigPath)
		if err != nil {
			logger.Log.Fatal("Failed to load generation config:", err)
		}
	}

	replays := storage.NewReplayService(cfg.SaveDir)

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Replay Simulation")

		replay, err := replays.Load(replayPath)
		if err != nil {
			logger.Log.Fatal("Failed to load replay:", err)
		}

		session, err := engine.Playback(replay, genCfg)
		if err != nil {
			logger.Log.Fatal("Failed to simulate replay:", err)
		}

		logger.Log.WithFields(logrus.Fields{
			"seed":  session.Seed,
			"turn":  session.Game.Turn,
			"score": session.Game.Score,
			"state": session.State().String(),
		}).Info("Simulation finished")
		return
	}

	if cfg.Seed != 0 {
		logger.Log.Infof("🎲 Using fixed dungeon seed: %d", cfg.Seed)
	}

	// 2. Инициализация
	registry := network.NewRegistry()
	srv := server.New(cfg, genCfg, registry, replays)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Сохраняем повторы всех живых партий
	registry.Each(func(s *engine.Session) {
		if len(s.Replay.Actions) == 0 {
			return
		}
		if _, err := replays.Save(s.Replay); err != nil {
			logger.Log.WithError(err).Warn("failed to save replay on shutdown")
		}
	})

	logger.Log.Info("Done.")
}
