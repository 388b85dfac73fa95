package datasource

import (
	"context"
	"fmt"
	"sync"

	"mission-stats/src/helpers"
	"mission-stats/src/interfaces"
	"mission-stats/src/logger"
	"mission-stats/src/models"
)

// MultiSourceManager queries its sources in priority order and falls back to
// the next one when a source fails.
type MultiSourceManager struct {
	sources []interfaces.IStatsSource
	Logger  *logger.Logger
	Errors  *helpers.ErrorHandler
	mu      sync.RWMutex
}

var _ interfaces.IStatsSource = (*MultiSourceManager)(nil)

// -----------------------------------------------------------------------------

func NewMultiSourceManager(sources []interfaces.IStatsSource, log *logger.Logger) *MultiSourceManager {
	return &MultiSourceManager{
		sources: append([]interfaces.IStatsSource(nil), sources...),
		Logger:  log,
		Errors:  helpers.NewErrorHandler(log),
	}
}

// -----------------------------------------------------------------------------

// AddSource appends a source with the lowest priority
func (m *MultiSourceManager) AddSource(source interfaces.IStatsSource) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sources {
		if s.Name() == source.Name() {
			return fmt.Errorf("source %s already exists", source.Name())
		}
	}
	m.sources = append(m.sources, source)
	m.Logger.Info("Added source: %s", source.Name())
	return nil
}

// -----------------------------------------------------------------------------

// RemoveSource drops a source by name
func (m *MultiSourceManager) RemoveSource(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.sources {
		if s.Name() == name {
			m.sources = append(m.sources[:i], m.sources[i+1:]...)
			m.Logger.Info("Removed source: %s", name)
			return nil
		}
	}
	return fmt.Errorf("source %s not found", name)
}

// -----------------------------------------------------------------------------

// GetSource retrieves a source by name
func (m *MultiSourceManager) GetSource(name string) (interfaces.IStatsSource, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.sources {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("source %s not found", name)
}

// -----------------------------------------------------------------------------

// GetAllSources returns the sources in priority order
func (m *MultiSourceManager) GetAllSources() []interfaces.IStatsSource {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]interfaces.IStatsSource, len(m.sources))
	copy(list, m.sources)
	return list
}

// -----------------------------------------------------------------------------

// Name returns "MultiSourceManager"
func (m *MultiSourceManager) Name() string {
	return "MultiSourceManager"
}

// -----------------------------------------------------------------------------

// FetchCurrentStats returns the first successful answer
func (m *MultiSourceManager) FetchCurrentStats(ctx context.Context) (models.MCurrentStats, error) {
	var result models.MCurrentStats
	err := m.each(ctx, "fetch current stats", func(s interfaces.IStatsSource) error {
		var err error
		result, err = s.FetchCurrentStats(ctx)
		return err
	})
	return result, err
}

// -----------------------------------------------------------------------------

// FetchVideoHistory returns the first successful answer
func (m *MultiSourceManager) FetchVideoHistory(ctx context.Context, videoID, mode string, dates []string) (models.MVideoHistory, error) {
	var result models.MVideoHistory
	err := m.each(ctx, "fetch "+mode+" history", func(s interfaces.IStatsSource) error {
		var err error
		result, err = s.FetchVideoHistory(ctx, videoID, mode, dates)
		return err
	})
	return result, err
}

// -----------------------------------------------------------------------------

// each runs fn against the sources until one succeeds. Caller errors and
// cancellation are returned without trying further sources.
func (m *MultiSourceManager) each(ctx context.Context, operation string, fn func(interfaces.IStatsSource) error) error {
	sources := m.GetAllSources()
	if len(sources) == 0 {
		return helpers.NewDataSourceError(nil, "%s: no sources configured", operation)
	}

	var lastErr error
	for i, s := range sources {
		err := fn(s)
		if err == nil {
			if i > 0 {
				m.Logger.Warning("%s served by fallback source %s", operation, s.Name())
			}
			return nil
		}
		if helpers.IsClientError(err) || ctx.Err() != nil {
			return err
		}
		lastErr = m.Errors.Handle(err, fmt.Sprintf("%s (%s)", operation, s.Name()))
	}
	return helpers.NewDataSourceError(lastErr, "%s: all sources failed", operation)
}
