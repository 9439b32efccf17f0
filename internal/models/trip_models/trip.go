package trip_models

import (
	"time"

	"github.com/google/uuid"
)

type TripStatus string

const (
	StatusPlanning  TripStatus = "planning"
	StatusPlanned   TripStatus = "planned"
	StatusBooked    TripStatus = "booked"
	StatusCompleted TripStatus = "completed"
	StatusCancelled TripStatus = "cancelled"
)

type FlightClass string

const (
	ClassEconomy        FlightClass = "economy"
	ClassPremiumEconomy FlightClass = "premium_economy"
	ClassBusiness       FlightClass = "business"
	ClassFirst          FlightClass = "first"
)

type TripPreferences struct {
	FlightClass           FlightClass `json:"flight_class"`
	HotelStarRating       int         `json:"hotel_star_rating"`
	IncludeActivities     bool        `json:"include_activities"`
	IncludeTransportation bool        `json:"include_transportation"`
	DietaryRestrictions   []string    `json:"dietary_restrictions"`
	AccessibilityNeeds    []string    `json:"accessibility_needs"`
	PreferredAirlines     []string    `json:"preferred_airlines"`
	PreferredHotelChains  []string    `json:"preferred_hotel_chains"`
}

func DefaultPreferences() TripPreferences {
	return TripPreferences{
		FlightClass:           ClassEconomy,
		HotelStarRating:       3,
		IncludeActivities:     true,
		IncludeTransportation: true,
	}
}

// TripRequest is immutable once handed to the planner for a run.
type TripRequest struct {
	DepartureLocation string          `json:"departure_location"`
	Destination       string          `json:"destination"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	NumberOfTravelers int             `json:"number_of_travelers"`
	Budget            *float64        `json:"budget,omitempty"`
	Preferences       TripPreferences `json:"preferences"`
}

// Duration is the trip length in whole days.
func (r TripRequest) Duration() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// BudgetOrDefault is used when composing provider briefs. $5000 is assumed
// when no budget was given.
func (r TripRequest) BudgetOrDefault() float64 {
	if r.Budget != nil && *r.Budget > 0 {
		return *r.Budget
	}
	return 5000
}

type Trip struct {
	ID        uuid.UUID   `json:"id"`
	Request   TripRequest `json:"request"`
	Status    TripStatus  `json:"status"`
	Itinerary *Itinerary  `json:"itinerary,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

func NewTrip(req TripRequest) *Trip {
	return &Trip{
		ID:        uuid.New(),
		Request:   req,
		Status:    StatusPlanning,
		CreatedAt: time.Now().UTC(),
	}
}
