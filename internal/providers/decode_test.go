package providers

import (
	"testing"
	"time"

	"tripconcierge/internal/models/trip_models"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `[{"airline":"Delta"}]`, `[{"airline":"Delta"}]`},
		{"fenced", "```json\n[{\"airline\":\"Delta\"}]\n```", `[{"airline":"Delta"}]`},
		{"fence without language", "```\n[]\n```", `[]`},
		{"surrounding whitespace", "  \n[]\n  ", `[]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanJSONResponse(tc.in); got != tc.want {
				t.Errorf("cleanJSONResponse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseWireTime(t *testing.T) {
	fallback := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-06-01T09:00:00Z", time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)},
		{"2026-06-01T09:00:00", time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)},
		{"2026-06-01", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"next tuesday", fallback},
		{"", fallback},
	}
	for _, tc := range tests {
		if got := parseWireTime(tc.in, fallback); !got.Equal(tc.want) {
			t.Errorf("parseWireTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDecodeFlightCandidates(t *testing.T) {
	req := trip_models.TripRequest{
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	raw := "```json\n" + `[
		{"airline":"Delta Air Lines","flight_number":"DL123","departure_time":"2026-06-01T08:00:00Z",
		 "arrival_time":"2026-06-01T14:00:00Z","price":1200,"class":"economy","duration":360,
		 "stops":0,"is_selected":false,"seat_availability":9},
		{"airline":"United Airlines","flight_number":"UA456","departure_time":"bad",
		 "arrival_time":"2026-06-01","price":1100,"class":"economy","duration":390,
		 "stops":1,"is_selected":false,"seat_availability":4}
	]` + "\n```"

	flights, err := decodeFlightCandidates(raw, req)
	if err != nil {
		t.Fatalf("decodeFlightCandidates: %v", err)
	}
	if len(flights) != 2 {
		t.Fatalf("len(flights) = %d, want 2", len(flights))
	}
	if flights[0].ID == flights[1].ID {
		t.Error("ids not unique")
	}
	// Neither candidate was marked selected; the first wins.
	if !flights[0].IsSelected || flights[1].IsSelected {
		t.Errorf("selection = %v/%v, want first selected only",
			flights[0].IsSelected, flights[1].IsSelected)
	}
	// An unparseable departure falls back to the trip start date.
	if !flights[1].DepartureTime.Equal(req.StartDate) {
		t.Errorf("fallback DepartureTime = %v, want %v", flights[1].DepartureTime, req.StartDate)
	}
}

func TestDecodeFlightCandidatesRejectsProse(t *testing.T) {
	_, err := decodeFlightCandidates("Sure! Here are some flights you might like.", trip_models.TripRequest{})
	if err == nil {
		t.Fatal("expected decode error for non-JSON payload")
	}
}

func TestNormalizeSelection(t *testing.T) {
	t.Run("multiple selected flights collapse to one", func(t *testing.T) {
		flights := normalizeFlightSelection([]trip_models.FlightOption{
			{Airline: "A", IsSelected: true},
			{Airline: "B", IsSelected: true},
			{Airline: "C"},
		})
		var count int
		for _, f := range flights {
			if f.IsSelected {
				count++
			}
		}
		if count != 1 {
			t.Errorf("selected = %d, want 1", count)
		}
	})

	t.Run("activities default to first two", func(t *testing.T) {
		activities := normalizeActivitySelection([]trip_models.ActivityOption{
			{Name: "A"}, {Name: "B"}, {Name: "C"},
		})
		if !activities[0].IsSelected || !activities[1].IsSelected || activities[2].IsSelected {
			t.Errorf("selection = %v/%v/%v, want first two",
				activities[0].IsSelected, activities[1].IsSelected, activities[2].IsSelected)
		}
	})

	t.Run("transportation one per mode", func(t *testing.T) {
		transport := normalizeTransportationSelection([]trip_models.TransportationOption{
			{Mode: trip_models.ModeTaxi, IsSelected: true},
			{Mode: trip_models.ModeTaxi, IsSelected: true},
			{Mode: trip_models.ModePublicTransport},
		})
		var taxi, public int
		for _, tr := range transport {
			if !tr.IsSelected {
				continue
			}
			switch tr.Mode {
			case trip_models.ModeTaxi:
				taxi++
			case trip_models.ModePublicTransport:
				public++
			}
		}
		if taxi != 1 {
			t.Errorf("selected taxis = %d, want 1", taxi)
		}
		if public != 0 {
			t.Errorf("selected public transport = %d, want 0", public)
		}
	})

	t.Run("transportation none selected defaults to first", func(t *testing.T) {
		transport := normalizeTransportationSelection([]trip_models.TransportationOption{
			{Mode: trip_models.ModeTaxi},
			{Mode: trip_models.ModePublicTransport},
		})
		if !transport[0].IsSelected || transport[1].IsSelected {
			t.Errorf("selection = %v/%v, want first only",
				transport[0].IsSelected, transport[1].IsSelected)
		}
	})

	t.Run("empty slices pass through", func(t *testing.T) {
		if got := normalizeFlightSelection(nil); len(got) != 0 {
			t.Errorf("normalizeFlightSelection(nil) = %v", got)
		}
		if got := normalizeHotelSelection(nil); len(got) != 0 {
			t.Errorf("normalizeHotelSelection(nil) = %v", got)
		}
	})
}
