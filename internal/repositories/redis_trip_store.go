package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"tripconcierge/internal/models/trip_models"
)

const tripHistoryKey = "tripconcierge:trip_history"

// RedisTripStore persists the whole history as one JSON document under a
// single key. Matches the store contract exactly: load everything, save
// everything.
type RedisTripStore struct {
	client *redis.Client
}

func NewRedisTripStore(client *redis.Client) *RedisTripStore {
	return &RedisTripStore{client: client}
}

func (s *RedisTripStore) Load(ctx context.Context) ([]trip_models.Trip, error) {
	raw, err := s.client.Get(ctx, tripHistoryKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load trip history: %w", err)
	}

	var trips []trip_models.Trip
	if err := json.Unmarshal([]byte(raw), &trips); err != nil {
		return nil, fmt.Errorf("decode trip history: %w", err)
	}
	return trips, nil
}

func (s *RedisTripStore) Save(ctx context.Context, trips []trip_models.Trip) error {
	payload, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("encode trip history: %w", err)
	}
	if err := s.client.Set(ctx, tripHistoryKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("write trip history: %w", err)
	}
	return nil
}
