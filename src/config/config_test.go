package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
name: mission-stats
host: 127.0.0.1
port: 8080
network:
  timeout: 5
  retries: 1
stats_api:
  base_url: http://upstream.local
  update_interval_seconds: 30
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewConfig_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", minimalYAML)

	cfg, err := NewConfig(path, "")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Window.DefaultDays)
	assert.Equal(t, 90, cfg.Window.MaxDays)
	require.Len(t, cfg.Missions, 3)
	assert.Equal(t, "dance-film", cfg.Missions[0].Slug)
	assert.Equal(t, "/dance-film/video/:videoId", cfg.Missions[0].ChartRoute)
}

func TestNewConfig_EnvFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", minimalYAML)
	envPath := writeFile(t, dir, ".env", EnvAPIBaseURL+"=https://env.example/api\n"+EnvPort+"=9999\n")

	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvPort, "")
	os.Unsetenv(EnvAPIBaseURL)
	os.Unsetenv(EnvPort)

	cfg, err := NewConfig(path, envPath)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example/api", cfg.StatsAPI.BaseURL)
	assert.Equal(t, 9999, cfg.Port)
}

func TestNewConfig_MissingEnvFileIsIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", minimalYAML)

	_, err := NewConfig(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
}

func TestNewConfig_ProcessEnvWins(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", minimalYAML)
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg, err := NewConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"low port", `
name: a
host: h
port: 80
network: {timeout: 1}
stats_api: {base_url: x, update_interval_seconds: 1}
`},
		{"no base url without fallback", `
name: a
host: h
port: 8080
network: {timeout: 1}
stats_api: {update_interval_seconds: 1}
`},
		{"default days above max", `
name: a
host: h
port: 8080
network: {timeout: 1}
stats_api: {base_url: x, update_interval_seconds: 1}
window: {default_days: 10, max_days: 5}
`},
		{"duplicate missions", `
name: a
host: h
port: 8080
network: {timeout: 1}
stats_api: {base_url: x, update_interval_seconds: 1}
missions:
  - {slug: one}
  - {slug: one}
`},
		{"zero timeout", `
name: a
host: h
port: 8080
stats_api: {base_url: x, update_interval_seconds: 1}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.yaml", tt.yaml)
			_, err := NewConfig(path, "")
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg, err := NewConfig(writeFile(t, dir, "config.yaml", minimalYAML), "")
	require.NoError(t, err)

	out := filepath.Join(dir, "saved.yaml")
	require.NoError(t, cfg.Save(out))

	again, err := NewConfig(out, "")
	require.NoError(t, err)
	assert.Equal(t, cfg.MConfig, again.MConfig)
}
