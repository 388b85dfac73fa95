package main

import (
	datasource "mission-stats/src/data_source"
	"mission-stats/src/data_source/api"
	"mission-stats/src/data_source/static"
	"mission-stats/src/helpers"
	"mission-stats/src/interfaces"
	"mission-stats/src/logger"
	"mission-stats/src/models"
	"mission-stats/src/network"
)

// -----------------------------------------------------------------------------

func setupNetwork(cfg *models.MConfig) interfaces.INetworkManager {
	return network.NewAsyncNetworkManager(cfg, logger.NewLogger(cfg, "Network"))
}

// -----------------------------------------------------------------------------

// setupDataSources orders the upstream API first and the bundled data second
func setupDataSources(cfg *models.MConfig, appLogger *logger.Logger, netMgr interfaces.INetworkManager) (*datasource.MultiSourceManager, error) {
	var sources []interfaces.IStatsSource

	if cfg.StatsAPI.BaseURL != "" {
		sources = append(sources, api.NewStatsAPISource(cfg, netMgr, logger.NewLogger(cfg, "StatsAPI")))
		appLogger.Info("Using stats API at %s", cfg.StatsAPI.BaseURL)
	}

	if cfg.StatsAPI.FallbackEnabled {
		staticSource, err := static.NewStaticSource()
		if err != nil {
			return nil, err
		}
		sources = append(sources, staticSource)
		appLogger.Info("Bundled statistics enabled as fallback")
	}

	if len(sources) == 0 {
		return nil, helpers.NewConfigurationError("no stats source: set stats_api.base_url or enable fallback")
	}

	return datasource.NewMultiSourceManager(sources, logger.NewLogger(cfg, "MultiSourceManager")), nil
}
