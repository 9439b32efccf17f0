package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tripconcierge/internal/models/trip_models"
)

// RemotePlannerClient drives delegated planning: a single round trip to the
// planner backend that returns a complete itinerary. Wire format is
// snake_case JSON with ISO-8601 dates on both sides. No fallback and no
// partial acceptance; any non-200 status or undecodable body fails the run.
type RemotePlannerClient struct {
	baseURL string
	http    *http.Client
}

func NewRemotePlannerClient(baseURL string) *RemotePlannerClient {
	return &RemotePlannerClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *RemotePlannerClient) PlanTrip(ctx context.Context, req trip_models.TripRequest) (*trip_models.Itinerary, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode trip request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/plan-trip", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build plan-trip request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("plan-trip round trip: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("plan-trip returned status %d", resp.StatusCode)
	}

	var itinerary trip_models.Itinerary
	if err := json.NewDecoder(resp.Body).Decode(&itinerary); err != nil {
		return nil, fmt.Errorf("decode itinerary: %w", err)
	}
	return &itinerary, nil
}
