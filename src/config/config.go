package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"mission-stats/src/missions"
	"mission-stats/src/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides, read after the optional .env file is loaded.
const (
	EnvAPIBaseURL = "MISSION_STATS_API_BASE_URL"
	EnvLogLevel   = "MISSION_STATS_LOG_LEVEL"
	EnvPort       = "MISSION_STATS_PORT"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new Config from a YAML file and an optional .env file
func NewConfig(configPath, envPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}

	// 3. Environment overrides (.env first, real env wins)
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file '%s': %w", envPath, err)
		}
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	config.applyDefaults()

	// 4. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		c.StatsAPI.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvPort, v, err)
		}
		c.Port = port
	}
	return nil
}

// -----------------------------------------------------------------------------

func (c *Config) applyDefaults() {
	if c.Window.DefaultDays == 0 {
		c.Window.DefaultDays = 3
	}
	if c.Window.MaxDays == 0 {
		c.Window.MaxDays = 90
	}
	if len(c.Missions) == 0 {
		c.Missions = missions.Builtin()
	}
	for i := range c.Missions {
		missions.FillRoutes(&c.Missions[i])
		if c.Missions[i].WindowDays == 0 {
			c.Missions[i].WindowDays = c.Window.DefaultDays
		}
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}
	if c.GrpcPort != 0 && (c.GrpcPort <= 1024 || c.GrpcPort > 65535) {
		return fmt.Errorf("invalid grpc port number: %d (must be between 1025 and 65535)", c.GrpcPort)
	}

	// Network
	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}
	if c.Network.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative")
	}

	// Stats API
	if c.StatsAPI.BaseURL == "" && !c.StatsAPI.FallbackEnabled {
		return fmt.Errorf("stats api base url is required when the static fallback is disabled")
	}
	if c.StatsAPI.UpdateIntervalSeconds <= 0 {
		return fmt.Errorf("update interval must be greater than 0")
	}

	// Window
	if c.Window.DefaultDays <= 0 || c.Window.DefaultDays > c.Window.MaxDays {
		return fmt.Errorf("default window days %d must be between 1 and max_days (%d)", c.Window.DefaultDays, c.Window.MaxDays)
	}

	// Missions
	if len(c.Missions) == 0 {
		return fmt.Errorf("at least one mission must be configured")
	}
	seen := make(map[string]bool)
	for i, m := range c.Missions {
		if m.Slug == "" {
			return fmt.Errorf("mission %d must have a slug", i)
		}
		if seen[m.Slug] {
			return fmt.Errorf("duplicate mission slug '%s'", m.Slug)
		}
		seen[m.Slug] = true
		if m.WindowDays <= 0 || m.WindowDays > c.Window.MaxDays {
			return fmt.Errorf("mission '%s' window days %d out of range", m.Slug, m.WindowDays)
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
