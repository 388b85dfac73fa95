package datasource

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"mission-stats/src/interfaces"
	"mission-stats/src/logger"
	"mission-stats/src/models"
)

// Poller periodically fetches current statistics and pushes every changed
// snapshot to an output channel.
type Poller struct {
	Source     interfaces.IStatsSource
	Interval   time.Duration
	Logger     *logger.Logger
	Clock      func() time.Time
	cancelFunc context.CancelFunc
	isRunning  atomic.Bool
	mu         sync.Mutex
}

var _ interfaces.IStatsPublisher = (*Poller)(nil)

// -----------------------------------------------------------------------------

func NewPoller(source interfaces.IStatsSource, interval time.Duration, log *logger.Logger) *Poller {
	return &Poller{
		Source:   source,
		Interval: interval,
		Logger:   log,
		Clock:    time.Now,
	}
}

// -----------------------------------------------------------------------------

// Start begins the polling loop. wg is released when the loop exits.
func (p *Poller) Start(parentCtx context.Context, outputChan chan<- models.MLatestData, wg *sync.WaitGroup) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning.Load() {
		return fmt.Errorf("poller for %s is already running", p.Source.Name())
	}
	if p.Interval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", p.Interval)
	}

	ctx, cancel := context.WithCancel(parentCtx)
	p.cancelFunc = cancel
	p.isRunning.Store(true)

	wg.Add(1)
	go p.runLoop(ctx, outputChan, wg)
	p.Logger.Info("Started poller for %s (every %v)", p.Source.Name(), p.Interval)
	return nil
}

// -----------------------------------------------------------------------------

// Stop signals the run loop to exit
func (p *Poller) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isRunning.Load() {
		return fmt.Errorf("poller for %s is not running", p.Source.Name())
	}
	p.cancelFunc()
	p.isRunning.Store(false)
	return nil
}

// -----------------------------------------------------------------------------

func (p *Poller) runLoop(ctx context.Context, outputChan chan<- models.MLatestData, wg *sync.WaitGroup) {
	defer wg.Done()
	defer p.isRunning.Store(false)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	lastUpdate := ""
	snapshotType := "INITIAL"

	poll := func() bool {
		stats, err := p.Source.FetchCurrentStats(ctx)
		if err != nil {
			p.Logger.Warning("Error fetching current stats: %v", err)
			return true
		}

		// Dedup unchanged snapshots
		if stats.UpdatedAt != "" && stats.UpdatedAt == lastUpdate {
			return true
		}
		lastUpdate = stats.UpdatedAt

		snapshot := models.MLatestData{
			Type:      snapshotType,
			Videos:    stats.Videos,
			UpdatedAt: stats.UpdatedAt,
			Timestamp: p.Clock().Unix(),
			Source:    stats.Source,
		}
		snapshotType = "UPDATE"

		select {
		case outputChan <- snapshot:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if !poll() {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !poll() {
				return
			}
		}
	}
}
