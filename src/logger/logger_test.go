package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

type levelConfig string

func (c levelConfig) GetLogLevel() string { return string(c) }

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"DEBUG", log.DebugLevel},
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{" WARNING ", log.WarnLevel},
		{"Error", log.ErrorLevel},
		{"critical", log.ErrorLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLoggerWithWriter_FiltersByConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(levelConfig("WARNING"), "poller", &buf)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	assert.Empty(t, buf.String())

	l.Warning("fetch failed after %d attempts", 3)
	assert.Contains(t, buf.String(), "fetch failed after 3 attempts")
	assert.Contains(t, buf.String(), "poller")
	assert.Equal(t, "poller", l.Name())
}

func TestNewLoggerWithWriter_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(nil, "server", &buf)

	l.Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	l.Info("listening on %s", ":8080")
	assert.Contains(t, buf.String(), "listening on :8080")
}
