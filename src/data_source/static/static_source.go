package static

import (
	"context"
	"embed"
	"encoding/json"
	"io/fs"

	"mission-stats/src/helpers"
	"mission-stats/src/models"
)

// SourceName identifies the bundled data in snapshots and logs.
const SourceName = "static"

//go:embed data/*.json
var bundled embed.FS

type modeHistory struct {
	Points []models.MHistoryPoint `json:"points"`
	Recent []models.MHistoryPoint `json:"recent"`
}

// StaticSource serves statistics from JSON files bundled with the binary.
type StaticSource struct {
	current models.MCurrentStats
	history map[string]map[string]modeHistory // video -> mode -> series
}

// -----------------------------------------------------------------------------

// NewStaticSource loads the bundled data set.
func NewStaticSource() (*StaticSource, error) {
	return NewStaticSourceFS(bundled, "data")
}

// NewStaticSourceFS loads current.json and history.json from dir in fsys.
func NewStaticSourceFS(fsys fs.FS, dir string) (*StaticSource, error) {
	s := &StaticSource{}

	if err := readJSON(fsys, dir+"/current.json", &s.current); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, dir+"/history.json", &s.history); err != nil {
		return nil, err
	}
	s.current.Source = SourceName
	return s, nil
}

func readJSON(fsys fs.FS, path string, v interface{}) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return helpers.NewDataSourceError(err, "read %s", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return helpers.NewDataSourceError(err, "decode %s", path)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (s *StaticSource) Name() string {
	return SourceName
}

// -----------------------------------------------------------------------------

func (s *StaticSource) FetchCurrentStats(ctx context.Context) (models.MCurrentStats, error) {
	out := s.current
	out.Videos = append([]models.MVideoStat(nil), s.current.Videos...)
	return out, nil
}

// -----------------------------------------------------------------------------

// FetchVideoHistory returns the bundled points whose date is in dates, in the
// order of dates. Unknown videos yield an empty history.
func (s *StaticSource) FetchVideoHistory(ctx context.Context, videoID, mode string, dates []string) (models.MVideoHistory, error) {
	if !models.ValidMode(mode) {
		return models.MVideoHistory{}, helpers.NewInvalidArgument("unknown history mode %q", mode)
	}
	if videoID == "" {
		return models.MVideoHistory{}, helpers.NewInvalidArgument("video id is required")
	}

	series := s.history[videoID][mode]
	history := models.MVideoHistory{
		VideoID: videoID,
		Mode:    mode,
		Points:  pick(series.Points, dates),
	}
	if mode == models.ModeView {
		history.Recent = pick(series.Recent, dates)
	}
	return history, nil
}

func pick(points []models.MHistoryPoint, dates []string) []models.MHistoryPoint {
	byDate := make(map[string][]models.MHistoryPoint)
	for _, p := range points {
		byDate[p.Date] = append(byDate[p.Date], p)
	}

	out := make([]models.MHistoryPoint, 0, len(dates))
	for _, d := range dates {
		out = append(out, byDate[d]...)
	}
	return out
}
