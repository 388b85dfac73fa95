package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"mission-stats/src/config"
	datasource "mission-stats/src/data_source"
	"mission-stats/src/logger"
	"mission-stats/src/missions"
	"mission-stats/src/models"
	"mission-stats/src/server"
)

// -----------------------------------------------------------------------------

func main() {
	// 1. Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	envPath := flag.String("env", ".env", "optional dotenv file with overrides")
	flag.Parse()

	// 2. Load config
	conf, err := config.NewConfig(*configPath, *envPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// 3. Setup Logger
	appLogger := logger.NewLogger(conf, conf.Name)

	// 4. Setup Components
	networkManager := setupNetwork(conf.MConfig)
	multiSource, err := setupDataSources(conf.MConfig, appLogger, networkManager)
	if err != nil {
		appLogger.Critical("Failed to set up data sources: %v", err)
	}
	registry := missions.NewRegistry(conf.Missions)
	srv := server.NewAPIServer(conf.MConfig, multiSource, registry, logger.NewLogger(conf, "APIServer"))

	// 5. Start Servers
	grpcServer := startServers(srv, multiSource, registry, conf, appLogger, networkManager)

	// 6. Poll current stats (Push Model)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	updatesChan := make(chan models.MLatestData, 16)

	interval := time.Duration(conf.StatsAPI.UpdateIntervalSeconds) * time.Second
	poller := datasource.NewPoller(multiSource, interval, logger.NewLogger(conf, "Poller"))
	if err := poller.Start(ctx, updatesChan, &wg); err != nil {
		appLogger.Critical("Failed to start poller: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	appLogger.Info("Starting data loop (Push Model)...")

	for {
		select {
		case update := <-updatesChan:
			appLogger.Info("Received %s snapshot from %s with %d videos", update.Type, update.Source, len(update.Videos))
			srv.Broadcast(update)

		case <-quit:
			appLogger.Info("Shutting down...")
			cancel()  // Signal poller to stop
			wg.Wait() // Wait for poller to exit
			if grpcServer != nil {
				grpcServer.GracefulStop()
			}
			if err := srv.Stop(); err != nil {
				appLogger.Error("Server shutdown failed: %v", err)
			}
			appLogger.Info("Shutdown complete.")
			return
		}
	}
}
