package models

// MMission is one mission category with its list and chart pages.
type MMission struct {
	Slug       string `yaml:"slug" json:"slug"`
	Title      string `yaml:"title" json:"title"`
	ListRoute  string `yaml:"list_route" json:"list_route"`
	ChartRoute string `yaml:"chart_route" json:"chart_route"`
	WindowDays int    `yaml:"window_days" json:"window_days"`
}

// MRoute is an entry of the page route table.
type MRoute struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Mission string `json:"mission,omitempty"`
	Page    string `json:"page"` // "home", "list" or "chart"
}
