// Package main is the entry point for the interactive black hole visualizer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/chen-qingyu/black-hole/internal/config"
	"github.com/chen-qingyu/black-hole/internal/game"
	"github.com/chen-qingyu/black-hole/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Black Hole ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	runErr := g.Run()
	g.Close()
	if runErr != nil {
		logger.Error("visualizer error", zap.Error(runErr))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("closed normally")
}
