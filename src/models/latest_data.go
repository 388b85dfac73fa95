package models

// -----------------------------------------------------------------------------
// Server State Structure
// -----------------------------------------------------------------------------

type MLatestData struct {
	Type      string       `json:"type"` // "INITIAL" or "UPDATE"
	Mission   string       `json:"mission,omitempty"`
	Videos    []MVideoStat `json:"videos"`
	UpdatedAt string       `json:"updated_at"`
	Timestamp int64        `json:"timestamp"`
	Source    string       `json:"source"`
}

// -----------------------------------------------------------------------------
// SubscribeCommand for client messages
// -----------------------------------------------------------------------------

type MSubscribeCommand struct {
	Command string `json:"command"`
	Mission string `json:"mission"`
}

// -----------------------------------------------------------------------------
// Chart payloads
// -----------------------------------------------------------------------------

// MWindowDay annotates one date of a window.
type MWindowDay struct {
	Date        string `json:"date"`
	Label       string `json:"label"`
	Weekday     string `json:"weekday"`
	BusinessDay bool   `json:"business_day"`
}

// MChartPoint is a history point with display labels.
type MChartPoint struct {
	MHistoryPoint
	DateLabel string `json:"date_label"`
	TimeLabel string `json:"time_label,omitempty"`
}

// MChartData is the response of the chart endpoint.
type MChartData struct {
	Mission string        `json:"mission"`
	VideoID string        `json:"video_id"`
	Mode    string        `json:"mode"`
	Window  []MWindowDay  `json:"window"`
	Points  []MChartPoint `json:"points"`
	Recent  []MChartPoint `json:"recent,omitempty"`
}
