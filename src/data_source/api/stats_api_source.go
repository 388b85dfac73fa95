package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"mission-stats/src/helpers"
	"mission-stats/src/interfaces"
	"mission-stats/src/logger"
	"mission-stats/src/models"
)

// SourceName identifies the upstream API in snapshots and logs.
const SourceName = "stats-api"

// StatsAPISource reads statistics from the upstream stats API.
type StatsAPISource struct {
	Config  *models.MConfig
	Network interfaces.INetworkManager
	Logger  *logger.Logger
	baseURL string
	name    string
}

// -----------------------------------------------------------------------------

func NewStatsAPISource(cfg *models.MConfig, netMgr interfaces.INetworkManager, log *logger.Logger) *StatsAPISource {
	return &StatsAPISource{
		Config:  cfg,
		Network: netMgr,
		Logger:  log,
		baseURL: strings.TrimSuffix(cfg.StatsAPI.BaseURL, "/"),
		name:    SourceName,
	}
}

// WithName renames the source so several API mirrors can be registered side
// by side. An empty name keeps the current one.
func (s *StatsAPISource) WithName(name string) *StatsAPISource {
	if name != "" {
		s.name = name
	}
	return s
}

// -----------------------------------------------------------------------------

func (s *StatsAPISource) Name() string {
	return s.name
}

// -----------------------------------------------------------------------------

// FetchCurrentStats calls GET {base}/stats/current
func (s *StatsAPISource) FetchCurrentStats(ctx context.Context) (models.MCurrentStats, error) {
	var stats models.MCurrentStats

	body, err := s.Network.Get(ctx, s.baseURL+"/stats/current", nil)
	if err != nil {
		return stats, fmt.Errorf("fetch current stats: %w", err)
	}

	if err := json.Unmarshal(body, &stats); err != nil {
		return stats, helpers.NewDataSourceError(err, "decode current stats")
	}
	stats.Source = s.name

	s.Logger.Debug("Fetched current stats for %d videos", len(stats.Videos))
	return stats, nil
}

// -----------------------------------------------------------------------------

// HistoryEndpoint maps a mode to its upstream path segment.
func HistoryEndpoint(mode string) (string, error) {
	switch mode {
	case models.ModeView:
		return "views/with-recent", nil
	case models.ModeLike:
		return "likes", nil
	default:
		return "", helpers.NewInvalidArgument("unknown history mode %q (want %q or %q)", mode, models.ModeView, models.ModeLike)
	}
}

// -----------------------------------------------------------------------------

// FetchVideoHistory calls GET {base}/history/{endpoint}/{videoID}?dates=a,b,c
func (s *StatsAPISource) FetchVideoHistory(ctx context.Context, videoID, mode string, dates []string) (models.MVideoHistory, error) {
	var history models.MVideoHistory

	endpoint, err := HistoryEndpoint(mode)
	if err != nil {
		return history, err
	}
	if videoID == "" {
		return history, helpers.NewInvalidArgument("video id is required")
	}

	reqURL := fmt.Sprintf("%s/history/%s/%s", s.baseURL, endpoint, url.PathEscape(videoID))
	params := map[string]string{"dates": strings.Join(dates, ",")}

	body, err := s.Network.Get(ctx, reqURL, params)
	if err != nil {
		return history, fmt.Errorf("fetch %s history for %s: %w", mode, videoID, err)
	}

	if err := json.Unmarshal(body, &history); err != nil {
		return history, helpers.NewDataSourceError(err, "decode %s history for %s", mode, videoID)
	}
	if history.VideoID == "" {
		history.VideoID = videoID
	}
	if history.Mode == "" {
		history.Mode = mode
	}
	return history, nil
}
