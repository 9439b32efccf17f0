package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"tripconcierge/internal/models/trip_models"
)

func TestRemotePlannerClientPlanTrip(t *testing.T) {
	want := trip_models.Itinerary{
		ID:       uuid.New(),
		Currency: "USD",
		Flights: []trip_models.FlightOption{
			{ID: uuid.New(), Airline: "Delta Air Lines", Price: 1200, IsSelected: true},
		},
		TotalCost: 3000,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/plan-trip" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req trip_models.TripRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Destination != "Lisbon" {
			t.Errorf("destination = %q, want Lisbon", req.Destination)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(want)
	}))
	defer server.Close()

	client := NewRemotePlannerClient(server.URL)
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	got, err := client.PlanTrip(context.Background(), trip_models.TripRequest{
		DepartureLocation: "Boston",
		Destination:       "Lisbon",
		StartDate:         start,
		EndDate:           start.AddDate(0, 0, 5),
		NumberOfTravelers: 2,
	})
	if err != nil {
		t.Fatalf("PlanTrip: %v", err)
	}
	if got.ID != want.ID || got.TotalCost != want.TotalCost || len(got.Flights) != 1 {
		t.Errorf("itinerary = %+v, want %+v", got, want)
	}
}

func TestRemotePlannerClientErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "planner worker crashed", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewRemotePlannerClient(server.URL)
		if _, err := client.PlanTrip(context.Background(), trip_models.TripRequest{}); err == nil {
			t.Fatal("expected error on 500 response")
		}
	})

	t.Run("undecodable body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>gateway timeout</html>"))
		}))
		defer server.Close()

		client := NewRemotePlannerClient(server.URL)
		if _, err := client.PlanTrip(context.Background(), trip_models.TripRequest{}); err == nil {
			t.Fatal("expected error on non-JSON body")
		}
	})

	t.Run("unreachable backend", func(t *testing.T) {
		client := NewRemotePlannerClient("http://127.0.0.1:1")
		if _, err := client.PlanTrip(context.Background(), trip_models.TripRequest{}); err == nil {
			t.Fatal("expected error on connection failure")
		}
	})
}
