package models

// Stat modes understood by the history endpoints.
const (
	ModeView = "view"
	ModeLike = "like"
)

// MVideoStat is the current view/like count of one video.
type MVideoStat struct {
	VideoID   string `json:"video_id"`
	Mission   string `json:"mission"`
	Title     string `json:"title"`
	Channel   string `json:"channel,omitempty"`
	ViewCount int64  `json:"view_count"`
	LikeCount int64  `json:"like_count"`
	UpdatedAt string `json:"updated_at"`
}

// MCurrentStats is the payload of GET /stats/current.
type MCurrentStats struct {
	Videos    []MVideoStat `json:"videos"`
	UpdatedAt string       `json:"updated_at"`
	Source    string       `json:"-"` // name of the source that served it
}

// MHistoryPoint is one recorded count.
type MHistoryPoint struct {
	Date       string `json:"date"`
	RecordedAt string `json:"recorded_at"`
	Count      int64  `json:"count"`
}

// MVideoHistory is the payload of the history endpoints.
type MVideoHistory struct {
	VideoID string          `json:"video_id"`
	Mode    string          `json:"mode"`
	Points  []MHistoryPoint `json:"points"`
	// Recent holds the latest intra-day samples (views/with-recent only).
	Recent []MHistoryPoint `json:"recent,omitempty"`
}

// ValidMode reports whether mode names a history series.
func ValidMode(mode string) bool {
	return mode == ModeView || mode == ModeLike
}
