package models

// MConfig Structure
type MConfig struct {
	Name     string          `yaml:"name"`
	Host     string          `yaml:"host"`
	Port     int             `yaml:"port"`
	LogLevel string          `yaml:"log_level"`
	GrpcHost string          `yaml:"grpc_host"`
	GrpcPort int             `yaml:"grpc_port"`
	Network  MNetworkConfig  `yaml:"network"`
	StatsAPI MStatsAPIConfig `yaml:"stats_api"`
	Window   MWindowConfig   `yaml:"window"`
	Missions []MMission      `yaml:"missions"`
}

// GetLogLevel lets the logger pick up the configured level.
func (c *MConfig) GetLogLevel() string {
	return c.LogLevel
}

type MNetworkConfig struct {
	RequestTimeout int    `yaml:"timeout"`
	MaxRetries     int    `yaml:"retries"`
	UserAgent      string `yaml:"user_agent"`
}

type MStatsAPIConfig struct {
	BaseURL               string `yaml:"base_url"`
	FallbackEnabled       bool   `yaml:"fallback_enabled"`
	UpdateIntervalSeconds int    `yaml:"update_interval_seconds"`
}

type MWindowConfig struct {
	DefaultDays int `yaml:"default_days" json:"default_days"`
	MaxDays     int `yaml:"max_days" json:"max_days"`
}
