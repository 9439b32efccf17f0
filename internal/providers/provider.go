package providers

import (
	"context"
	"fmt"
	"strings"

	"tripconcierge/internal/models/trip_models"
	"tripconcierge/pkg/utils"
)

// CandidateSource is the category-mode planning capability: one call per
// category, each returning provider-chosen candidates with pre-selection
// flags already applied. Real and mock implementations are interchangeable;
// the orchestrator never branches on which one it holds.
type CandidateSource interface {
	SearchFlights(ctx context.Context, req trip_models.TripRequest) ([]trip_models.FlightOption, error)
	SearchHotels(ctx context.Context, req trip_models.TripRequest) ([]trip_models.HotelOption, error)
	SearchActivities(ctx context.Context, req trip_models.TripRequest) ([]trip_models.ActivityOption, error)
	SearchTransportation(ctx context.Context, req trip_models.TripRequest) ([]trip_models.TransportationOption, error)
}

func flightBrief(req trip_models.TripRequest) string {
	return fmt.Sprintf(
		"Search for flights from %s to %s for %d travelers from %s to %s.\n"+
			"Requirements:\n- Flight class: %s\n- Budget consideration: $%.0f\n- Preferred airlines: %s\n"+
			"Return 3-5 flight options with realistic prices, airlines, and schedules.",
		req.DepartureLocation, req.Destination, req.NumberOfTravelers,
		utils.FormatISODate(req.StartDate), utils.FormatISODate(req.EndDate),
		req.Preferences.FlightClass, req.BudgetOrDefault(),
		strings.Join(req.Preferences.PreferredAirlines, ", "))
}

func hotelBrief(req trip_models.TripRequest) string {
	return fmt.Sprintf(
		"Search for hotels in %s for %d travelers from %s to %s.\n"+
			"Requirements:\n- Star rating: %d stars\n- Budget consideration: $%.0f\n- Preferred chains: %s\n"+
			"Return 3-5 hotel options with realistic prices, amenities, and ratings.",
		req.Destination, req.NumberOfTravelers,
		utils.FormatISODate(req.StartDate), utils.FormatISODate(req.EndDate),
		req.Preferences.HotelStarRating, req.BudgetOrDefault(),
		strings.Join(req.Preferences.PreferredHotelChains, ", "))
}

func activityBrief(req trip_models.TripRequest) string {
	return fmt.Sprintf(
		"Search for activities and attractions in %s for a %d-day trip.\n"+
			"Requirements:\n- Number of travelers: %d\n- Include various categories: sightseeing, culture, food, adventure\n"+
			"- Budget consideration: $%.0f\n"+
			"Return 8-12 activity options with realistic prices and descriptions.",
		req.Destination, req.Duration(), req.NumberOfTravelers, req.BudgetOrDefault())
}

func transportationBrief(req trip_models.TripRequest) string {
	return fmt.Sprintf(
		"Search for local transportation options in %s for %d travelers.\n"+
			"Requirements:\n- Duration: %d days\n- Include: airport transfers, local transport, car rentals\n"+
			"- Budget consideration: $%.0f\n"+
			"Return 3-5 transportation options with realistic prices and providers.",
		req.Destination, req.NumberOfTravelers, req.Duration(), req.BudgetOrDefault())
}
