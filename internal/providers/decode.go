package providers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripconcierge/internal/models/trip_models"
)

// Wire shapes for model-generated candidates. Ids are assigned locally; an
// LLM cannot be trusted to mint stable identifiers.
type flightCandidate struct {
	Airline          string  `json:"airline"`
	FlightNumber     string  `json:"flight_number"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	DepartureAirport string  `json:"departure_airport"`
	ArrivalAirport   string  `json:"arrival_airport"`
	Price            float64 `json:"price"`
	Class            string  `json:"class"`
	Duration         int     `json:"duration"`
	Stops            int     `json:"stops"`
	IsSelected       bool    `json:"is_selected"`
	SeatAvailability int     `json:"seat_availability"`
}

type hotelCandidate struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	StarRating    int      `json:"star_rating"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	RoomType      string   `json:"room_type"`
	TotalPrice    float64  `json:"total_price"`
	IsSelected    bool     `json:"is_selected"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
}

type activityCandidate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Location    string  `json:"location"`
	IsSelected  bool    `json:"is_selected"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
}

type transportationCandidate struct {
	Mode       string  `json:"mode"`
	Provider   string  `json:"provider"`
	Price      float64 `json:"price"`
	Duration   int     `json:"duration"`
	IsSelected bool    `json:"is_selected"`
}

// cleanJSONResponse strips markdown fences and whitespace that chat models
// wrap around JSON payloads.
func cleanJSONResponse(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

func parseWireTime(s string, fallback time.Time) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return fallback
}

func decodeFlightCandidates(raw string, req trip_models.TripRequest) ([]trip_models.FlightOption, error) {
	var wire []flightCandidate
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &wire); err != nil {
		return nil, fmt.Errorf("decode flight candidates: %w", err)
	}
	out := make([]trip_models.FlightOption, 0, len(wire))
	for _, c := range wire {
		out = append(out, trip_models.FlightOption{
			ID:               uuid.New(),
			Airline:          c.Airline,
			FlightNumber:     c.FlightNumber,
			DepartureTime:    parseWireTime(c.DepartureTime, req.StartDate),
			ArrivalTime:      parseWireTime(c.ArrivalTime, req.StartDate),
			DepartureAirport: c.DepartureAirport,
			ArrivalAirport:   c.ArrivalAirport,
			Price:            c.Price,
			Currency:         "USD",
			Class:            trip_models.FlightClass(c.Class),
			DurationMinutes:  c.Duration,
			Stops:            c.Stops,
			IsSelected:       c.IsSelected,
			SeatAvailability: c.SeatAvailability,
		})
	}
	return normalizeFlightSelection(out), nil
}

func decodeHotelCandidates(raw string, req trip_models.TripRequest) ([]trip_models.HotelOption, error) {
	var wire []hotelCandidate
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &wire); err != nil {
		return nil, fmt.Errorf("decode hotel candidates: %w", err)
	}
	nights := req.Duration()
	out := make([]trip_models.HotelOption, 0, len(wire))
	for _, c := range wire {
		total := c.TotalPrice
		if total == 0 && nights > 0 {
			total = c.PricePerNight * float64(nights)
		}
		out = append(out, trip_models.HotelOption{
			ID:            uuid.New(),
			Name:          c.Name,
			Address:       c.Address,
			StarRating:    c.StarRating,
			PricePerNight: c.PricePerNight,
			Currency:      "USD",
			Amenities:     c.Amenities,
			RoomType:      c.RoomType,
			CheckInDate:   req.StartDate,
			CheckOutDate:  req.EndDate,
			TotalPrice:    total,
			IsSelected:    c.IsSelected,
			Rating:        c.Rating,
			ReviewCount:   c.ReviewCount,
		})
	}
	return normalizeHotelSelection(out), nil
}

func decodeActivityCandidates(raw string) ([]trip_models.ActivityOption, error) {
	var wire []activityCandidate
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &wire); err != nil {
		return nil, fmt.Errorf("decode activity candidates: %w", err)
	}
	out := make([]trip_models.ActivityOption, 0, len(wire))
	for _, c := range wire {
		out = append(out, trip_models.ActivityOption{
			ID:            uuid.New(),
			Name:          c.Name,
			Description:   c.Description,
			Category:      trip_models.ActivityCategory(c.Category),
			Price:         c.Price,
			Currency:      "USD",
			DurationHours: c.Duration,
			Location:      c.Location,
			IsSelected:    c.IsSelected,
			Rating:        c.Rating,
			ReviewCount:   c.ReviewCount,
		})
	}
	return normalizeActivitySelection(out), nil
}

func decodeTransportationCandidates(raw string) ([]trip_models.TransportationOption, error) {
	var wire []transportationCandidate
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &wire); err != nil {
		return nil, fmt.Errorf("decode transportation candidates: %w", err)
	}
	out := make([]trip_models.TransportationOption, 0, len(wire))
	for _, c := range wire {
		out = append(out, trip_models.TransportationOption{
			ID:              uuid.New(),
			Mode:            trip_models.TransportMode(c.Mode),
			Provider:        c.Provider,
			Price:           c.Price,
			Currency:        "USD",
			DurationMinutes: c.Duration,
			IsSelected:      c.IsSelected,
		})
	}
	return normalizeTransportationSelection(out), nil
}

// normalizeFlightSelection guarantees exactly one selected flight so the
// selection machine starts from a valid state.
func normalizeFlightSelection(flights []trip_models.FlightOption) []trip_models.FlightOption {
	selected := -1
	for i := range flights {
		if flights[i].IsSelected {
			if selected == -1 {
				selected = i
			} else {
				flights[i].IsSelected = false
			}
		}
	}
	if selected == -1 && len(flights) > 0 {
		flights[0].IsSelected = true
	}
	return flights
}

func normalizeHotelSelection(hotels []trip_models.HotelOption) []trip_models.HotelOption {
	selected := -1
	for i := range hotels {
		if hotels[i].IsSelected {
			if selected == -1 {
				selected = i
			} else {
				hotels[i].IsSelected = false
			}
		}
	}
	if selected == -1 && len(hotels) > 0 {
		hotels[0].IsSelected = true
	}
	return hotels
}

func normalizeActivitySelection(activities []trip_models.ActivityOption) []trip_models.ActivityOption {
	for _, a := range activities {
		if a.IsSelected {
			return activities
		}
	}
	for i := range activities {
		if i == 2 {
			break
		}
		activities[i].IsSelected = true
	}
	return activities
}

// normalizeTransportationSelection keeps at most one selected option per
// mode and selects the first option when the provider marked none.
func normalizeTransportationSelection(transport []trip_models.TransportationOption) []trip_models.TransportationOption {
	seen := make(map[trip_models.TransportMode]bool)
	any := false
	for i := range transport {
		if !transport[i].IsSelected {
			continue
		}
		if seen[transport[i].Mode] {
			transport[i].IsSelected = false
			continue
		}
		seen[transport[i].Mode] = true
		any = true
	}
	if !any && len(transport) > 0 {
		transport[0].IsSelected = true
	}
	return transport
}
