package interfaces

import "mission-stats/src/models"

// -----------------------------------------------------------------------------
// IDataExchanger shares current statistics with connected clients.
// -----------------------------------------------------------------------------

type IDataExchanger interface {
	// -----------------------------------------------------------------------------
	// Broadcast pushes a snapshot to every connected client and stores it.
	Broadcast(payload models.MLatestData)

	// -----------------------------------------------------------------------------
	// UpdateAllDatas updates the internal state without broadcasting
	UpdateAllDatas(data models.MLatestData)

	// -----------------------------------------------------------------------------
	// Start the server
	Start() error

	// -----------------------------------------------------------------------------
	// Stop the server gracefully
	Stop() error
}
