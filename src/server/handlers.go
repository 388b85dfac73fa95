package server

import (
	"net/http"
	"strconv"

	"mission-stats/src/dates"
	"mission-stats/src/helpers"
	"mission-stats/src/missions"
	"mission-stats/src/models"

	"github.com/gin-gonic/gin"
)

// videoView is a video row with its display label.
type videoView struct {
	models.MVideoStat
	UpdatedLabel string `json:"updated_label"`
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *APIServer) getHealth(c *gin.Context) {
	s.stateMutex.RLock()
	timestamp := s.latestState.Timestamp
	source := s.latestState.Source
	s.stateMutex.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"connections":   s.connections.Load(),
		"latest_update": timestamp,
		"source":        source,
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"missions":                s.Missions.All(),
		"window":                  s.Config.Window,
		"update_interval_seconds": s.Config.StatsAPI.UpdateIntervalSeconds,
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"routes": s.Missions.Routes()})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getSnapshots(c *gin.Context) {
	n, err := intQuery(c, "n", 10)
	if err != nil {
		s.writeError(c, err)
		return
	}

	type summary struct {
		Type      string `json:"type"`
		UpdatedAt string `json:"updated_at"`
		Timestamp int64  `json:"timestamp"`
		Source    string `json:"source"`
		Videos    int    `json:"videos"`
	}
	list := s.snapshots.GetLatest(n)
	out := make([]summary, 0, len(list))
	for _, snap := range list {
		out = append(out, summary{snap.Type, snap.UpdatedAt, snap.Timestamp, snap.Source, len(snap.Videos)})
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": out})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getWindow(c *gin.Context) {
	days, err := intQuery(c, "days", s.Config.Window.DefaultDays)
	if err != nil {
		s.writeError(c, err)
		return
	}
	days = s.capDays(days)
	anchor := c.Query("anchor")

	window, err := s.Window.GenerateWindow(anchor, days)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"anchor": anchor,
		"days":   days,
		"dates":  window,
		"window": s.Calendar.Annotate(window),
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getFormat(c *gin.Context) {
	labels, err := dates.FormatLabels(c.Query("ts"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, labels)
}

// -----------------------------------------------------------------------------

func (s *APIServer) getMissionVideos(c *gin.Context) {
	mission, err := s.Missions.Get(c.Param("mission"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	stats, err := s.Source.FetchCurrentStats(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}

	videos := missions.FilterVideos(stats.Videos, mission.Slug)
	views := make([]videoView, 0, len(videos))
	for _, v := range videos {
		views = append(views, videoView{MVideoStat: v, UpdatedLabel: shortLabel(v.UpdatedAt, dates.FormatDateTimeShort)})
	}

	c.JSON(http.StatusOK, gin.H{
		"mission":       mission,
		"updated_at":    stats.UpdatedAt,
		"updated_label": shortLabel(stats.UpdatedAt, dates.FormatDateTimeShort),
		"source":        stats.Source,
		"videos":        views,
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getVideoHistory(c *gin.Context) {
	mission, err := s.Missions.Get(c.Param("mission"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	mode := c.DefaultQuery("mode", models.ModeView)
	if !models.ValidMode(mode) {
		s.writeError(c, helpers.NewInvalidArgument("mode must be %q or %q, got %q", models.ModeView, models.ModeLike, mode))
		return
	}

	defaultDays := mission.WindowDays
	if defaultDays <= 0 {
		defaultDays = s.Config.Window.DefaultDays
	}
	days, err := intQuery(c, "days", defaultDays)
	if err != nil {
		s.writeError(c, err)
		return
	}

	window, err := s.Window.GenerateWindow(c.Query("date"), s.capDays(days))
	if err != nil {
		s.writeError(c, err)
		return
	}

	videoID := c.Param("videoId")
	if len(window) == 0 {
		// Anchor lies entirely in the future; nothing to chart
		c.JSON(http.StatusOK, models.MChartData{
			Mission: mission.Slug,
			VideoID: videoID,
			Mode:    mode,
			Window:  []models.MWindowDay{},
			Points:  []models.MChartPoint{},
		})
		return
	}

	history, err := s.Source.FetchVideoHistory(c.Request.Context(), videoID, mode, window)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MChartData{
		Mission: mission.Slug,
		VideoID: videoID,
		Mode:    mode,
		Window:  s.Calendar.Annotate(window),
		Points:  chartPoints(history.Points),
		Recent:  chartPoints(history.Recent),
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) capDays(days int) int {
	if s.Config.Window.MaxDays > 0 && days > s.Config.Window.MaxDays {
		return s.Config.Window.MaxDays
	}
	return days
}

// -----------------------------------------------------------------------------

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, helpers.NewInvalidInput(err, "%s must be an integer, got %q", key, raw)
	}
	return n, nil
}
