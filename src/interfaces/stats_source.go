package interfaces

import (
	"context"
	"sync"

	"mission-stats/src/models"
)

// -----------------------------------------------------------------------------
// IStatsSource defines the contract for fetching video statistics.
// -----------------------------------------------------------------------------

type IStatsSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// FetchCurrentStats retrieves the latest view/like counts of every video.
	FetchCurrentStats(ctx context.Context) (models.MCurrentStats, error)

	// -----------------------------------------------------------------------------

	// FetchVideoHistory retrieves the view or like history of one video for
	// the given YYYY-MM-DD dates.
	FetchVideoHistory(ctx context.Context, videoID, mode string, dates []string) (models.MVideoHistory, error)
}

// -----------------------------------------------------------------------------
// IStatsPublisher pushes current statistics snapshots until ctx is cancelled.
// -----------------------------------------------------------------------------

type IStatsPublisher interface {
	Start(ctx context.Context, outputChan chan<- models.MLatestData, wg *sync.WaitGroup) error
}
