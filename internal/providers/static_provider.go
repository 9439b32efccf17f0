package providers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tripconcierge/internal/models/trip_models"
)

// StaticProvider serves a fixed candidate catalog. It backs local
// development and tests, and is the fallback when no model API key is
// configured. Candidates mirror what the real providers return: one
// pre-selected flight and hotel, two pre-selected activities, one
// pre-selected transportation option.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (s *StaticProvider) SearchFlights(_ context.Context, req trip_models.TripRequest) ([]trip_models.FlightOption, error) {
	depart := req.StartDate
	mk := func(airline, number string, offsetH int, price float64, stops int, selected bool) trip_models.FlightOption {
		return trip_models.FlightOption{
			ID:               uuid.New(),
			Airline:          airline,
			FlightNumber:     number,
			DepartureTime:    depart.Add(time.Duration(offsetH) * time.Hour),
			ArrivalTime:      depart.Add(time.Duration(offsetH+6) * time.Hour),
			DepartureAirport: airportCode(req.DepartureLocation),
			ArrivalAirport:   airportCode(req.Destination),
			Price:            price,
			Currency:         "USD",
			Class:            req.Preferences.FlightClass,
			DurationMinutes:  360,
			Stops:            stops,
			IsSelected:       selected,
			SeatAvailability: 9,
		}
	}
	return []trip_models.FlightOption{
		mk("Delta Air Lines", "DL123", 0, 1200, 0, true),
		mk("United Airlines", "UA456", 2, 1100, 1, false),
		mk("American Airlines", "AA789", 4, 1300, 0, false),
	}, nil
}

func (s *StaticProvider) SearchHotels(_ context.Context, req trip_models.TripRequest) ([]trip_models.HotelOption, error) {
	nights := req.Duration()
	mk := func(name, address, room string, stars int, perNight, rating float64, reviews int, amenities []string, selected bool) trip_models.HotelOption {
		return trip_models.HotelOption{
			ID:            uuid.New(),
			Name:          name,
			Address:       address,
			StarRating:    stars,
			PricePerNight: perNight,
			Currency:      "USD",
			Amenities:     amenities,
			RoomType:      room,
			CheckInDate:   req.StartDate,
			CheckOutDate:  req.EndDate,
			TotalPrice:    perNight * float64(nights),
			IsSelected:    selected,
			Rating:        rating,
			ReviewCount:   reviews,
		}
	}
	return []trip_models.HotelOption{
		mk("Grand Palace Hotel", "1 Central Plaza, "+req.Destination, "Deluxe Room", 4, 250, 4.5, 1250,
			[]string{"WiFi", "Pool", "Gym", "Restaurant"}, true),
		mk("Riverside Suites", "44 Harbor Road, "+req.Destination, "Executive Room", 4, 280, 4.3, 980,
			[]string{"WiFi", "Spa", "Gym", "Restaurant"}, false),
		mk("Station Boutique", "9 Old Quarter, "+req.Destination, "Standard Room", 3, 200, 4.2, 1200,
			[]string{"WiFi", "Restaurant", "Bar"}, false),
	}, nil
}

func (s *StaticProvider) SearchActivities(_ context.Context, req trip_models.TripRequest) ([]trip_models.ActivityOption, error) {
	mk := func(name, desc string, cat trip_models.ActivityCategory, price float64, hours int, rating float64, reviews int, selected bool) trip_models.ActivityOption {
		return trip_models.ActivityOption{
			ID:            uuid.New(),
			Name:          name,
			Description:   desc,
			Category:      cat,
			Price:         price,
			Currency:      "USD",
			DurationHours: hours,
			Location:      req.Destination,
			IsSelected:    selected,
			Rating:        rating,
			ReviewCount:   reviews,
		}
	}
	return []trip_models.ActivityOption{
		mk("Old Market Food Tour", "Guided tasting walk through the historic market", trip_models.ActivityFood, 50, 3, 4.7, 450, true),
		mk("Scenic Day Trip", "Full-day excursion to the area's signature landmark", trip_models.ActivitySightseeing, 120, 8, 4.8, 320, true),
		mk("Heritage Temple Visit", "Oldest temple district with a local guide", trip_models.ActivityCulture, 25, 2, 4.5, 890, false),
		mk("River Kayaking", "Small-group paddle with all equipment included", trip_models.ActivityAdventure, 75, 4, 4.6, 210, false),
		mk("City Museum Pass", "Two-day access to the main museum circuit", trip_models.ActivityCulture, 40, 3, 4.4, 615, false),
		mk("Night Food Stalls", "Evening street-food crawl", trip_models.ActivityNightlife, 35, 3, 4.6, 380, false),
		mk("Craft Quarter Shopping", "Artisan workshops and boutiques", trip_models.ActivityShopping, 0, 2, 4.2, 150, false),
		mk("Hot Spring Afternoon", "Entry and towel service at the spring baths", trip_models.ActivityRelaxation, 60, 4, 4.7, 540, false),
	}, nil
}

func (s *StaticProvider) SearchTransportation(_ context.Context, req trip_models.TripRequest) ([]trip_models.TransportationOption, error) {
	mk := func(mode trip_models.TransportMode, provider string, price float64, minutes int, selected bool) trip_models.TransportationOption {
		return trip_models.TransportationOption{
			ID:              uuid.New(),
			Mode:            mode,
			Provider:        provider,
			Price:           price,
			Currency:        "USD",
			DurationMinutes: minutes,
			IsSelected:      selected,
		}
	}
	return []trip_models.TransportationOption{
		mk(trip_models.ModeTaxi, "City Taxi Co.", 80, 60, true),
		mk(trip_models.ModePublicTransport, "Metro Day Pass", 20, 90, false),
		mk(trip_models.ModeRentalCar, "Premier Rent a Car", 150, 60, false),
	}, nil
}

// airportCode derives a display code when the request carries a city name
// rather than an IATA code.
func airportCode(location string) string {
	trimmed := []rune(location)
	if len(trimmed) >= 3 {
		return string([]rune{upper(trimmed[0]), upper(trimmed[1]), upper(trimmed[2])})
	}
	return location
}

func upper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
