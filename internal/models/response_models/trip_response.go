package response_models

import (
	"time"

	"github.com/google/uuid"

	"tripconcierge/internal/models/trip_models"
)

type ProgressResponse struct {
	Active   bool    `json:"active"`
	Fraction float64 `json:"fraction"`
	Label    string  `json:"label"`
}

type TripSummaryResponse struct {
	ID                uuid.UUID              `json:"id"`
	DepartureLocation string                 `json:"departure_location"`
	Destination       string                 `json:"destination"`
	StartDate         time.Time              `json:"start_date"`
	EndDate           time.Time              `json:"end_date"`
	NumberOfTravelers int                    `json:"number_of_travelers"`
	Status            trip_models.TripStatus `json:"status"`
	TotalCost         float64                `json:"total_cost"`
	Currency          string                 `json:"currency"`
}

func ToTripSummary(t trip_models.Trip) TripSummaryResponse {
	out := TripSummaryResponse{
		ID:                t.ID,
		DepartureLocation: t.Request.DepartureLocation,
		Destination:       t.Request.Destination,
		StartDate:         t.Request.StartDate,
		EndDate:           t.Request.EndDate,
		NumberOfTravelers: t.Request.NumberOfTravelers,
		Status:            t.Status,
	}
	if t.Itinerary != nil {
		out.TotalCost = t.Itinerary.TotalCost
		out.Currency = t.Itinerary.Currency
	}
	return out
}

func ToTripSummaries(trips []trip_models.Trip) []TripSummaryResponse {
	out := make([]TripSummaryResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, ToTripSummary(t))
	}
	return out
}

type TripStatsResponse struct {
	TripCount              int     `json:"trip_count"`
	TotalSpent             float64 `json:"total_spent"`
	AverageTripCost        float64 `json:"average_trip_cost"`
	MostVisitedDestination string  `json:"most_visited_destination"`
	UpcomingTripCount      int     `json:"upcoming_trip_count"`
}

type AlternativesResponse struct {
	Options []trip_models.Option `json:"options"`
}
