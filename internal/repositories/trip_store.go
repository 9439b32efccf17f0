package repositories

import (
	"context"
	"sync"

	"tripconcierge/internal/models/trip_models"
)

// TripStore is the durability boundary for trip history. Load returns the
// full history in insertion order; Save replaces it wholesale. No core
// invariant depends on store latency.
type TripStore interface {
	Load(ctx context.Context) ([]trip_models.Trip, error)
	Save(ctx context.Context, trips []trip_models.Trip) error
}

// MemoryTripStore keeps history in process memory. Used by tests and as the
// default when no storage backend is configured.
type MemoryTripStore struct {
	mu    sync.RWMutex
	trips []trip_models.Trip
}

func NewMemoryTripStore() *MemoryTripStore {
	return &MemoryTripStore{}
}

func (s *MemoryTripStore) Load(_ context.Context) ([]trip_models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]trip_models.Trip, len(s.trips))
	copy(out, s.trips)
	return out, nil
}

func (s *MemoryTripStore) Save(_ context.Context, trips []trip_models.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = make([]trip_models.Trip, len(trips))
	copy(s.trips, trips)
	return nil
}
