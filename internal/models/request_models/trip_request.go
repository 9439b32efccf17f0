package request_models

import (
	"time"

	"tripconcierge/internal/models/trip_models"
)

type PlanTripRequest struct {
	DepartureLocation string                       `json:"departure_location" binding:"required"`
	Destination       string                       `json:"destination" binding:"required"`
	StartDate         time.Time                    `json:"start_date" binding:"required"`
	EndDate           time.Time                    `json:"end_date" binding:"required"`
	NumberOfTravelers int                          `json:"number_of_travelers" binding:"required,min=1"`
	Budget            *float64                     `json:"budget"`
	Preferences       *trip_models.TripPreferences `json:"preferences"`
	Strategy          string                       `json:"strategy"`
}

// ToTripRequest converts the wire shape to the domain request, filling in
// defaults for anything the client left out.
func (r PlanTripRequest) ToTripRequest() trip_models.TripRequest {
	prefs := trip_models.DefaultPreferences()
	if r.Preferences != nil {
		prefs = *r.Preferences
	}
	return trip_models.TripRequest{
		DepartureLocation: r.DepartureLocation,
		Destination:       r.Destination,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		NumberOfTravelers: r.NumberOfTravelers,
		Budget:            r.Budget,
		Preferences:       prefs,
	}
}

type SelectOptionRequest struct {
	OptionID string `json:"option_id" binding:"required,uuid"`
}

type BookTripRequest struct {
	Travelers []trip_models.TravelerDetail `json:"travelers" binding:"required,min=1,dive"`
}

type DateRangeRequest struct {
	From time.Time `form:"from" binding:"required"`
	To   time.Time `form:"to" binding:"required"`
}
