package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// -----------------------------------------------------------------------------

// LevelProvider is satisfied by configs that carry a log level.
type LevelProvider interface {
	GetLogLevel() string
}

// -----------------------------------------------------------------------------

// Logger provides leveled logging with a per-component prefix
type Logger struct {
	name   string
	logger *log.Logger
	config interface{}
}

// -----------------------------------------------------------------------------

// NewLogger creates a new Logger instance
func NewLogger(config interface{}, name string) *Logger {
	return NewLoggerWithWriter(config, name, os.Stdout)
}

// -----------------------------------------------------------------------------

// NewLoggerWithWriter is NewLogger with an explicit destination.
func NewLoggerWithWriter(config interface{}, name string, w io.Writer) *Logger {
	level := log.InfoLevel
	if lp, ok := config.(LevelProvider); ok {
		level = ParseLevel(lp.GetLogLevel())
	}

	l := &Logger{
		name: name,
		logger: log.NewWithOptions(w, log.Options{
			Prefix:          name,
			ReportTimestamp: true,
			TimeFormat:      time.Stamp,
			Level:           level,
		}),
		config: config,
	}
	return l
}

// -----------------------------------------------------------------------------

// ParseLevel maps config levels (DEBUG, INFO, WARNING, ERROR) to charm levels.
func ParseLevel(level string) log.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return log.DebugLevel
	case "WARN", "WARNING":
		return log.WarnLevel
	case "ERROR", "CRITICAL":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// -----------------------------------------------------------------------------

// Name returns the component name used as prefix
func (l *Logger) Name() string {
	return l.name
}

// -----------------------------------------------------------------------------

// Debug logs diagnostic messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// -----------------------------------------------------------------------------

// Warning logs recoverable problems
func (l *Logger) Warning(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

// -----------------------------------------------------------------------------

// Info logs informational messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

// -----------------------------------------------------------------------------

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

// -----------------------------------------------------------------------------

// Critical logs critical errors and exits the application
func (l *Logger) Critical(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf("CRITICAL: "+format, args...))
	os.Exit(1)
}
