package services

import (
	"testing"

	"github.com/google/uuid"

	"tripconcierge/internal/models/trip_models"
)

func testItinerary() *trip_models.Itinerary {
	return &trip_models.Itinerary{
		ID: uuid.New(),
		Flights: []trip_models.FlightOption{
			{ID: uuid.New(), Airline: "Delta Air Lines", Price: 1200, IsSelected: true, SeatAvailability: 9},
			{ID: uuid.New(), Airline: "United Airlines", Price: 1100, SeatAvailability: 9},
		},
		Hotels: []trip_models.HotelOption{
			{ID: uuid.New(), Name: "Grand Palace Hotel", PricePerNight: 250, TotalPrice: 1250, IsSelected: true},
			{ID: uuid.New(), Name: "Station Boutique", PricePerNight: 200, TotalPrice: 1000},
		},
		Activities: []trip_models.ActivityOption{
			{ID: uuid.New(), Name: "Food Tour", Price: 50, IsSelected: true},
			{ID: uuid.New(), Name: "Day Trip", Price: 120, IsSelected: true},
			{ID: uuid.New(), Name: "Museum Pass", Price: 40},
		},
		Transportation: []trip_models.TransportationOption{
			{ID: uuid.New(), Mode: trip_models.ModeTaxi, Price: 80, IsSelected: true},
			{ID: uuid.New(), Mode: trip_models.ModePublicTransport, Price: 20},
		},
		Currency: "USD",
	}
}

func TestSelectionTotal(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*trip_models.Itinerary)
		travelers int
		want      float64
	}{
		{
			name:      "base selection two travelers",
			mutate:    func(*trip_models.Itinerary) {},
			travelers: 2,
			// 1200*2 + 1250 + 50 + 120 + 80
			want: 3900,
		},
		{
			name: "flight swap scales by travelers",
			mutate: func(it *trip_models.Itinerary) {
				it.Flights[0].IsSelected = false
				it.Flights[1].IsSelected = true
			},
			travelers: 2,
			// 1100*2 + 1250 + 50 + 120 + 80
			want: 3700,
		},
		{
			name: "activity counted once regardless of travelers",
			mutate: func(it *trip_models.Itinerary) {
				it.Activities[2].IsSelected = true
			},
			travelers: 3,
			// 1200*3 + 1250 + 50 + 120 + 40 + 80
			want: 5140,
		},
		{
			name: "no flight selected",
			mutate: func(it *trip_models.Itinerary) {
				it.Flights[0].IsSelected = false
			},
			travelers: 2,
			want:      1500,
		},
		{
			name:      "traveler count clamped to one",
			mutate:    func(*trip_models.Itinerary) {},
			travelers: 0,
			// 1200*1 + 1250 + 50 + 120 + 80
			want: 2700,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it := testItinerary()
			tc.mutate(it)
			got := SelectionTotal(it, tc.travelers)
			if got != tc.want {
				t.Errorf("SelectionTotal() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelectionTotalNilItinerary(t *testing.T) {
	if got := SelectionTotal(nil, 2); got != 0 {
		t.Errorf("SelectionTotal(nil) = %v, want 0", got)
	}
}

func TestSynthesisTotal(t *testing.T) {
	it := testItinerary()

	// 1200*2 + 1250 + (50+120)*2 + 80 + 60*2*5
	got := SynthesisTotal(it, 2, 5)
	if want := 4670.0; got != want {
		t.Errorf("SynthesisTotal() = %v, want %v", got, want)
	}

	// Meals scale with days even with nothing selected.
	empty := &trip_models.Itinerary{}
	if got := SynthesisTotal(empty, 2, 3); got != 360 {
		t.Errorf("SynthesisTotal(empty) = %v, want 360", got)
	}

	if got := SynthesisTotal(it, 2, 0); got != 4070 {
		t.Errorf("SynthesisTotal(zero days) = %v, want 4070", got)
	}
}

func TestBuildPricingBreakdown(t *testing.T) {
	it := testItinerary()
	it.TotalCost = SelectionTotal(it, 2)

	bd := BuildPricingBreakdown(it, 2, 5)
	if bd.Flights != 2400 {
		t.Errorf("Flights = %v, want 2400", bd.Flights)
	}
	if bd.Hotels != 1250 {
		t.Errorf("Hotels = %v, want 1250", bd.Hotels)
	}
	if bd.Activities != 170 {
		t.Errorf("Activities = %v, want 170", bd.Activities)
	}
	if bd.Transportation != 80 {
		t.Errorf("Transportation = %v, want 80", bd.Transportation)
	}
	if bd.Total != 3900 {
		t.Errorf("Total = %v, want 3900", bd.Total)
	}
	if bd.PerPerson != 1950 {
		t.Errorf("PerPerson = %v, want 1950", bd.PerPerson)
	}
	if bd.PerDay != 780 {
		t.Errorf("PerDay = %v, want 780", bd.PerDay)
	}
	if bd.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", bd.Currency)
	}
}
