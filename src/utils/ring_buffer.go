package utils

import (
	"sync"

	"mission-stats/src/models"
)

// -----------------------------------------------------------------------------
// RingBuffer is a fixed-size circular buffer of stats snapshots.
// -----------------------------------------------------------------------------

type RingBuffer struct {
	data     []models.MLatestData
	capacity int
	index    int // Next write position
	size     int
	mu       sync.RWMutex
}

// -----------------------------------------------------------------------------

// NewRingBuffer creates a new buffer with fixed capacity
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 32
	}
	return &RingBuffer{
		data:     make([]models.MLatestData, capacity),
		capacity: capacity,
	}
}

// -----------------------------------------------------------------------------

// Append stores a snapshot, overwriting the oldest one when full
func (rb *RingBuffer) Append(item models.MLatestData) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.data[rb.index] = item
	rb.index = (rb.index + 1) % rb.capacity
	if rb.size < rb.capacity {
		rb.size++
	}
}

// -----------------------------------------------------------------------------

// Latest returns the newest snapshot
func (rb *RingBuffer) Latest() (models.MLatestData, bool) {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	if rb.size == 0 {
		return models.MLatestData{}, false
	}
	return rb.data[(rb.index-1+rb.capacity)%rb.capacity], true
}

// -----------------------------------------------------------------------------

// GetLatest returns up to n newest snapshots, oldest first
func (rb *RingBuffer) GetLatest(n int) []models.MLatestData {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	if rb.size == 0 || n <= 0 {
		return []models.MLatestData{}
	}
	count := min(n, rb.size)

	result := make([]models.MLatestData, count)
	startIdx := (rb.index - count + rb.capacity) % rb.capacity
	for i := 0; i < count; i++ {
		result[i] = rb.data[(startIdx+i)%rb.capacity]
	}
	return result
}

// -----------------------------------------------------------------------------

// Size returns current number of elements
func (rb *RingBuffer) Size() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.size
}

// -----------------------------------------------------------------------------

// Capacity returns buffer capacity (fixed)
func (rb *RingBuffer) Capacity() int {
	return rb.capacity
}
