package missions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-stats/src/models"
)

func TestBuiltinRoutes(t *testing.T) {
	r := NewRegistry(Builtin())

	routes := r.Routes()
	require.Len(t, routes, 7)
	assert.Equal(t, models.MRoute{Name: "home", Path: "/", Page: "home"}, routes[0])

	byName := make(map[string]models.MRoute)
	for _, rt := range routes {
		byName[rt.Name] = rt
	}
	assert.Equal(t, "/dance-film", byName["dance-film-list"].Path)
	assert.Equal(t, "/dance-film/video/:videoId", byName["dance-film-chart"].Path)
	assert.Equal(t, "/api-mission/video/:videoId", byName["api-mission-chart"].Path)
	assert.Equal(t, "/crew-cheer", byName["crew-cheer-list"].Path)
	assert.Equal(t, "crew-cheer", byName["crew-cheer-chart"].Mission)
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry(Builtin())

	m, err := r.Get("api-mission")
	require.NoError(t, err)
	assert.Equal(t, "API MISSION", m.Title)
	assert.Equal(t, 3, m.WindowDays)

	_, err = r.Get("unknown")
	assert.Error(t, err)
}

func TestFillRoutesKeepsExplicitPaths(t *testing.T) {
	m := models.MMission{Slug: "x", ListRoute: "/custom/"}
	FillRoutes(&m)
	assert.Equal(t, "/custom/", m.ListRoute)
	assert.Equal(t, "/custom/video/:videoId", m.ChartRoute)
}

func TestFilterVideos(t *testing.T) {
	videos := []models.MVideoStat{
		{VideoID: "a", Mission: "dance-film"},
		{VideoID: "b", Mission: "crew-cheer"},
		{VideoID: "c", Mission: "dance-film"},
	}

	got := FilterVideos(videos, "dance-film")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].VideoID)
	assert.Equal(t, "c", got[1].VideoID)

	assert.Len(t, FilterVideos(videos, ""), 3)
	assert.Empty(t, FilterVideos(videos, "api-mission"))
}
