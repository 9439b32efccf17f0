package providers

import (
	"context"
	"testing"
	"time"

	"tripconcierge/internal/models/trip_models"
)

func staticTestRequest() trip_models.TripRequest {
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

func TestStaticProviderCatalog(t *testing.T) {
	ctx := context.Background()
	provider := NewStaticProvider()
	req := staticTestRequest()

	flights, err := provider.SearchFlights(ctx, req)
	if err != nil {
		t.Fatalf("SearchFlights: %v", err)
	}
	if len(flights) != 3 {
		t.Fatalf("len(flights) = %d, want 3", len(flights))
	}
	var selectedFlights int
	for _, f := range flights {
		if f.IsSelected {
			selectedFlights++
		}
		if f.DepartureAirport != "BOS" || f.ArrivalAirport != "LIS" {
			t.Errorf("airports = %s-%s, want BOS-LIS", f.DepartureAirport, f.ArrivalAirport)
		}
	}
	if selectedFlights != 1 {
		t.Errorf("pre-selected flights = %d, want 1", selectedFlights)
	}

	hotels, err := provider.SearchHotels(ctx, req)
	if err != nil {
		t.Fatalf("SearchHotels: %v", err)
	}
	if len(hotels) != 3 {
		t.Fatalf("len(hotels) = %d, want 3", len(hotels))
	}
	var selectedHotels int
	for _, h := range hotels {
		if h.IsSelected {
			selectedHotels++
		}
		// Five nights at the per-night rate.
		if want := h.PricePerNight * 5; h.TotalPrice != want {
			t.Errorf("%s TotalPrice = %v, want %v", h.Name, h.TotalPrice, want)
		}
	}
	if selectedHotels != 1 {
		t.Errorf("pre-selected hotels = %d, want 1", selectedHotels)
	}

	activities, err := provider.SearchActivities(ctx, req)
	if err != nil {
		t.Fatalf("SearchActivities: %v", err)
	}
	if len(activities) != 8 {
		t.Fatalf("len(activities) = %d, want 8", len(activities))
	}
	var selectedActivities int
	for _, a := range activities {
		if a.IsSelected {
			selectedActivities++
		}
	}
	if selectedActivities != 2 {
		t.Errorf("pre-selected activities = %d, want 2", selectedActivities)
	}

	transport, err := provider.SearchTransportation(ctx, req)
	if err != nil {
		t.Fatalf("SearchTransportation: %v", err)
	}
	if len(transport) != 3 {
		t.Fatalf("len(transport) = %d, want 3", len(transport))
	}
	var selectedTransport int
	for _, tr := range transport {
		if tr.IsSelected {
			selectedTransport++
		}
	}
	if selectedTransport != 1 {
		t.Errorf("pre-selected transportation = %d, want 1", selectedTransport)
	}
}

func TestAirportCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Boston", "BOS"},
		{"lisbon", "LIS"},
		{"NY", "NY"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := airportCode(tc.in); got != tc.want {
			t.Errorf("airportCode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
