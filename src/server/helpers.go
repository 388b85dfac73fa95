package server

import (
	"errors"
	"net/http"

	"mission-stats/src/dates"
	"mission-stats/src/helpers"
	"mission-stats/src/missions"
	"mission-stats/src/models"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------

// writeError maps domain errors to HTTP statuses
func (s *APIServer) writeError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	switch {
	case helpers.IsClientError(err):
		status = http.StatusBadRequest
	case errors.Is(err, missions.ErrMissionNotFound):
		status = http.StatusNotFound
	default:
		s.Logger.Error("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// -----------------------------------------------------------------------------

// shortLabel formats ts for display; unparseable values give an empty label.
func shortLabel(ts string, format func(string) (string, error)) string {
	if ts == "" {
		return ""
	}
	label, err := format(ts)
	if err != nil {
		return ""
	}
	return label
}

// -----------------------------------------------------------------------------

// chartPoints labels history points. The date label comes from the point's
// day and the time label from when it was recorded.
func chartPoints(points []models.MHistoryPoint) []models.MChartPoint {
	if points == nil {
		return nil
	}
	out := make([]models.MChartPoint, 0, len(points))
	for _, p := range points {
		cp := models.MChartPoint{MHistoryPoint: p}
		if p.RecordedAt != "" {
			cp.DateLabel = shortLabel(p.RecordedAt, dates.FormatDateShort)
			cp.TimeLabel = shortLabel(p.RecordedAt, dates.FormatTimeShort)
		}
		if cp.DateLabel == "" {
			cp.DateLabel = shortLabel(p.Date, dates.FormatDateShort)
		}
		out = append(out, cp)
	}
	return out
}

// -----------------------------------------------------------------------------

// filterFor returns the part of a snapshot a client subscribed to
func filterFor(data models.MLatestData, mission string) models.MLatestData {
	if mission == "" {
		return data
	}
	data.Mission = mission
	data.Videos = missions.FilterVideos(data.Videos, mission)
	return data
}
