package static

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-stats/src/helpers"
	"mission-stats/src/models"
)

func TestBundledData(t *testing.T) {
	s, err := NewStaticSource()
	require.NoError(t, err)

	stats, err := s.FetchCurrentStats(context.Background())
	require.NoError(t, err)
	assert.Len(t, stats.Videos, 4)
	assert.Equal(t, SourceName, stats.Source)

	missions := make(map[string]bool)
	for _, v := range stats.Videos {
		missions[v.Mission] = true
	}
	assert.Equal(t, map[string]bool{"dance-film": true, "api-mission": true, "crew-cheer": true}, missions)
}

func TestFetchVideoHistory_FiltersToDates(t *testing.T) {
	s, err := NewStaticSource()
	require.NoError(t, err)

	h, err := s.FetchVideoHistory(context.Background(), "dF-001", models.ModeView, []string{"2025-06-08", "2025-06-09", "2025-06-10"})
	require.NoError(t, err)
	require.Len(t, h.Points, 3)
	assert.Equal(t, "2025-06-08", h.Points[0].Date)
	assert.Equal(t, "2025-06-10", h.Points[2].Date)
	assert.Len(t, h.Recent, 2)

	h, err = s.FetchVideoHistory(context.Background(), "dF-001", models.ModeLike, []string{"2025-06-01"})
	require.NoError(t, err)
	assert.Empty(t, h.Points)
	assert.Nil(t, h.Recent)
}

func TestFetchVideoHistory_UnknownVideo(t *testing.T) {
	s, err := NewStaticSource()
	require.NoError(t, err)

	h, err := s.FetchVideoHistory(context.Background(), "nope", models.ModeLike, []string{"2025-06-10"})
	require.NoError(t, err)
	assert.Equal(t, "nope", h.VideoID)
	assert.Empty(t, h.Points)
}

func TestFetchVideoHistory_BadMode(t *testing.T) {
	s, err := NewStaticSource()
	require.NoError(t, err)

	_, err = s.FetchVideoHistory(context.Background(), "dF-001", "share", nil)
	assert.True(t, helpers.IsClientError(err))
}

func TestCurrentStatsAreCopied(t *testing.T) {
	s, err := NewStaticSource()
	require.NoError(t, err)

	first, _ := s.FetchCurrentStats(context.Background())
	first.Videos[0].ViewCount = -1

	second, _ := s.FetchCurrentStats(context.Background())
	assert.NotEqual(t, int64(-1), second.Videos[0].ViewCount)
}

func TestNewStaticSourceFS_BrokenFile(t *testing.T) {
	fsys := fstest.MapFS{
		"d/current.json": {Data: []byte(`{"videos":[]}`)},
		"d/history.json": {Data: []byte(`{`)},
	}
	_, err := NewStaticSourceFS(fsys, "d")
	assert.Error(t, err)
}
