package main

import (
	"context"
	"log"
	"os"

	"ticketwatch/internal/config"
	"ticketwatch/internal/datastore"
	"ticketwatch/internal/logger"
	"ticketwatch/internal/monitor"
	"ticketwatch/internal/notifier"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load configuration: %v", err)
	}
	if flags.StateFile != "" {
		gCfg.StorageConfig.StateFilePath = flags.StateFile
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	n, err := notifier.NewFromConfig(gCfg.NotificationConfig, zLogger, nil)
	if err != nil {
		zLogger.Error().Err(err).Msg("Could not initialize notifier")
		os.Exit(1)
	}

	stateStore := datastore.NewStateStore(gCfg.StorageConfig.StateFilePath, zLogger)

	var history *datastore.HistoryStore
	if gCfg.StorageConfig.HistoryDBPath != "" {
		history, err = datastore.NewHistoryStore(gCfg.StorageConfig.HistoryDBPath, zLogger)
		if err != nil {
			zLogger.Error().Err(err).Msg("Could not open check-history database")
			os.Exit(1)
		}
		defer history.Close()
	}

	coordinator := monitor.NewRunCoordinator(gCfg, zLogger, n, stateStore, history)
	if err := coordinator.Run(context.Background()); err != nil {
		zLogger.Error().Err(err).Msg("Poll cycle failed")
		os.Exit(1)
	}
}
