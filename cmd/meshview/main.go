// Package main is the entry point for the meshview viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/app"
	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== meshview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	// Meshes named on the command line are loaded before the first frame.
	a.LoadStartupMeshes(config.MeshArgs())

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
