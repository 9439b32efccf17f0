package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripconcierge/internal/models/trip_models"
	"tripconcierge/internal/providers"
	"tripconcierge/pkg/utils"
)

func plannerTestRequest() trip_models.TripRequest {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return trip_models.TripRequest{
		DepartureLocation: "Boston",
		Destination:       "Lisbon",
		StartDate:         start,
		EndDate:           start.AddDate(0, 0, 5),
		NumberOfTravelers: 2,
		Preferences:       trip_models.DefaultPreferences(),
	}
}

func TestPlanTripLocal(t *testing.T) {
	planner := NewPlannerService(providers.NewStaticProvider(), nil)
	req := plannerTestRequest()

	it, err := planner.PlanTrip(context.Background(), req, StrategyLocal)
	if err != nil {
		t.Fatalf("PlanTrip: %v", err)
	}

	if len(it.Flights) != 3 {
		t.Errorf("flights = %d, want 3", len(it.Flights))
	}
	if len(it.Hotels) != 3 {
		t.Errorf("hotels = %d, want 3", len(it.Hotels))
	}
	if len(it.Activities) != 8 {
		t.Errorf("activities = %d, want 8", len(it.Activities))
	}
	if len(it.Transportation) != 3 {
		t.Errorf("transportation = %d, want 3", len(it.Transportation))
	}
	if len(it.DailySchedule) != 5 {
		t.Errorf("daily schedule = %d days, want 5", len(it.DailySchedule))
	}

	if it.SelectedFlight() == nil {
		t.Error("no flight pre-selected")
	}
	if it.SelectedHotel() == nil {
		t.Error("no hotel pre-selected")
	}
	if got := len(it.SelectedActivities()); got != 2 {
		t.Errorf("pre-selected activities = %d, want 2", got)
	}

	want := SynthesisTotal(it, req.NumberOfTravelers, req.Duration())
	if it.TotalCost != want {
		t.Errorf("TotalCost = %v, want %v", it.TotalCost, want)
	}

	// A finished run leaves no progress behind.
	if _, active := planner.Progress(); active {
		t.Error("progress still active after a completed run")
	}
}

// failAfter wraps the static provider and fails a chosen stage.
type failAfter struct {
	inner     providers.CandidateSource
	failStage string
}

func (f *failAfter) SearchFlights(ctx context.Context, req trip_models.TripRequest) ([]trip_models.FlightOption, error) {
	if f.failStage == "flights" {
		return nil, errors.New("upstream timeout")
	}
	return f.inner.SearchFlights(ctx, req)
}

func (f *failAfter) SearchHotels(ctx context.Context, req trip_models.TripRequest) ([]trip_models.HotelOption, error) {
	if f.failStage == "hotels" {
		return nil, errors.New("upstream timeout")
	}
	return f.inner.SearchHotels(ctx, req)
}

func (f *failAfter) SearchActivities(ctx context.Context, req trip_models.TripRequest) ([]trip_models.ActivityOption, error) {
	if f.failStage == "activities" {
		return nil, errors.New("upstream timeout")
	}
	return f.inner.SearchActivities(ctx, req)
}

func (f *failAfter) SearchTransportation(ctx context.Context, req trip_models.TripRequest) ([]trip_models.TransportationOption, error) {
	if f.failStage == "transportation" {
		return nil, errors.New("upstream timeout")
	}
	return f.inner.SearchTransportation(ctx, req)
}

func TestPlanTripStageFailureAborts(t *testing.T) {
	stages := []string{"flights", "hotels", "activities", "transportation"}
	for _, stage := range stages {
		t.Run(stage, func(t *testing.T) {
			source := &failAfter{inner: providers.NewStaticProvider(), failStage: stage}
			planner := NewPlannerService(source, nil)

			it, err := planner.PlanTrip(context.Background(), plannerTestRequest(), StrategyLocal)
			if !errors.Is(err, utils.ErrProviderFailure) {
				t.Errorf("error = %v, want ErrProviderFailure", err)
			}
			if it != nil {
				t.Error("partial itinerary returned from an aborted run")
			}
			if _, active := planner.Progress(); active {
				t.Error("progress not reset after an aborted run")
			}
		})
	}
}

func TestPlanTripValidatesBeforeProviderCalls(t *testing.T) {
	budget := -100.0
	base := plannerTestRequest()

	tests := []struct {
		name   string
		mutate func(*trip_models.TripRequest)
	}{
		{"empty destination", func(r *trip_models.TripRequest) { r.Destination = "" }},
		{"empty departure", func(r *trip_models.TripRequest) { r.DepartureLocation = "" }},
		{"end before start", func(r *trip_models.TripRequest) { r.EndDate = r.StartDate.AddDate(0, 0, -1) }},
		{"zero travelers", func(r *trip_models.TripRequest) { r.NumberOfTravelers = 0 }},
		{"negative budget", func(r *trip_models.TripRequest) { r.Budget = &budget }},
	}

	// Any provider call on an invalid request is a bug.
	source := &failAfter{inner: providers.NewStaticProvider(), failStage: "flights"}
	planner := NewPlannerService(source, nil)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			tc.mutate(&req)
			_, err := planner.PlanTrip(context.Background(), req, StrategyLocal)
			if !errors.Is(err, utils.ErrInvalidTripRequest) {
				t.Errorf("error = %v, want ErrInvalidTripRequest", err)
			}
		})
	}
}

type stubRemote struct {
	itinerary *trip_models.Itinerary
	err       error
}

func (s stubRemote) PlanTrip(context.Context, trip_models.TripRequest) (*trip_models.Itinerary, error) {
	return s.itinerary, s.err
}

func TestPlanTripDelegated(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		want := testItinerary()
		planner := NewPlannerService(providers.NewStaticProvider(), stubRemote{itinerary: want})
		got, err := planner.PlanTrip(context.Background(), plannerTestRequest(), StrategyDelegated)
		if err != nil {
			t.Fatalf("PlanTrip: %v", err)
		}
		if got != want {
			t.Error("delegated itinerary not passed through unchanged")
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		planner := NewPlannerService(providers.NewStaticProvider(), stubRemote{err: errors.New("503")})
		_, err := planner.PlanTrip(context.Background(), plannerTestRequest(), StrategyDelegated)
		if !errors.Is(err, utils.ErrProviderFailure) {
			t.Errorf("error = %v, want ErrProviderFailure", err)
		}
	})

	t.Run("no backend configured", func(t *testing.T) {
		planner := NewPlannerService(providers.NewStaticProvider(), nil)
		_, err := planner.PlanTrip(context.Background(), plannerTestRequest(), StrategyDelegated)
		if !errors.Is(err, utils.ErrProviderFailure) {
			t.Errorf("error = %v, want ErrProviderFailure", err)
		}
	})
}

func TestProgressSubscription(t *testing.T) {
	planner := NewPlannerService(providers.NewStaticProvider(), nil)
	ch, cancel := planner.SubscribeProgress()
	defer cancel()

	if _, err := planner.PlanTrip(context.Background(), plannerTestRequest(), StrategyLocal); err != nil {
		t.Fatalf("PlanTrip: %v", err)
	}

	var fractions []float64
	for {
		select {
		case ev := <-ch:
			fractions = append(fractions, ev.Fraction)
			// Reset publishes a zero event after the final stage.
			if len(fractions) >= 2 && ev.Fraction == 0 {
				if prev := fractions[len(fractions)-2]; prev != 1.0 {
					t.Errorf("fraction before reset = %v, want 1.0", prev)
				}
				if fractions[0] != 0.0 {
					t.Errorf("first fraction = %v, want 0.0", fractions[0])
				}
				for i := 1; i < len(fractions)-1; i++ {
					if fractions[i] < fractions[i-1] {
						t.Errorf("fractions not monotonic: %v", fractions)
						break
					}
				}
				return
			}
		default:
			t.Fatalf("subscription ended early, got %v", fractions)
		}
	}
}

func TestProgressStaleGenerationDropped(t *testing.T) {
	tracker := NewProgressTracker()
	stale := tracker.Begin()
	fresh := tracker.Begin()

	tracker.Publish(fresh, 0.4, "Finding accommodations...")
	tracker.Publish(stale, 0.9, "Creating daily itinerary...")

	ev, active := tracker.Snapshot()
	if !active {
		t.Fatal("tracker should be active")
	}
	if ev.Fraction != 0.4 {
		t.Errorf("fraction = %v, want 0.4 (stale publish must be dropped)", ev.Fraction)
	}

	tracker.Reset(stale)
	if _, active := tracker.Snapshot(); !active {
		t.Error("stale reset must not end the active run")
	}

	tracker.Reset(fresh)
	if _, active := tracker.Snapshot(); active {
		t.Error("tracker still active after reset")
	}
}
