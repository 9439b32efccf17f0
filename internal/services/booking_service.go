package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripconcierge/internal/models/trip_models"
	"tripconcierge/pkg/utils"
)

type BookingServiceInterface interface {
	BookTrip(ctx context.Context, session *PlanningSession, travelers []trip_models.TravelerDetail) (*trip_models.Booking, error)
}

type BookingService struct{}

func NewBookingService() BookingServiceInterface {
	return &BookingService{}
}

// BookTrip validates the session's current trip, issues a booking reference
// and per-option confirmation numbers, and marks the trip booked.
func (b *BookingService) BookTrip(ctx context.Context, session *PlanningSession, travelers []trip_models.TravelerDetail) (*trip_models.Booking, error) {
	trip := session.CurrentTrip()
	if trip == nil {
		return nil, utils.ErrNoCurrentTrip
	}
	if err := validateBookable(trip); err != nil {
		return nil, err
	}

	it := trip.Itinerary
	booking := &trip_models.Booking{
		ID:              uuid.New(),
		TripID:          trip.ID,
		Reference:       newBookingReference(),
		TravelerDetails: travelers,
		TotalAmount:     it.TotalCost,
		Currency:        it.Currency,
		Status:          trip_models.BookingConfirmed,
		CreatedAt:       time.Now(),
	}

	if f := it.SelectedFlight(); f != nil {
		booking.ConfirmationNumbers = append(booking.ConfirmationNumbers, "FL-"+confirmationCode())
	}
	if h := it.SelectedHotel(); h != nil {
		booking.ConfirmationNumbers = append(booking.ConfirmationNumbers, "HT-"+confirmationCode())
	}
	for range it.SelectedActivities() {
		booking.ConfirmationNumbers = append(booking.ConfirmationNumbers, "AC-"+confirmationCode())
	}

	if err := session.MarkAsBooked(ctx); err != nil {
		return nil, err
	}
	return booking, nil
}

func validateBookable(trip *trip_models.Trip) error {
	req := trip.Request
	if strings.TrimSpace(req.DepartureLocation) == "" || strings.TrimSpace(req.Destination) == "" {
		return fmt.Errorf("%w: departure and destination are required", utils.ErrInvalidItinerary)
	}
	if !req.StartDate.Before(req.EndDate) {
		return fmt.Errorf("%w: trip dates are not in order", utils.ErrInvalidItinerary)
	}
	if req.NumberOfTravelers <= 0 {
		return fmt.Errorf("%w: at least one traveler is required", utils.ErrInvalidItinerary)
	}

	it := trip.Itinerary
	if it == nil {
		return fmt.Errorf("%w: trip has no itinerary", utils.ErrInvalidItinerary)
	}
	flight := it.SelectedFlight()
	if flight == nil {
		return fmt.Errorf("%w: no flight selected", utils.ErrInvalidItinerary)
	}
	if it.SelectedHotel() == nil {
		return fmt.Errorf("%w: no hotel selected", utils.ErrInvalidItinerary)
	}
	if it.TotalCost <= 0 {
		return fmt.Errorf("%w: itinerary total is not positive", utils.ErrInvalidItinerary)
	}
	if flight.SeatAvailability < req.NumberOfTravelers {
		return fmt.Errorf("%w: only %d seats left on %s %s", utils.ErrUnavailable,
			flight.SeatAvailability, flight.Airline, flight.FlightNumber)
	}
	return nil
}

// newBookingReference returns a reference like TC-20260115-4K7Q2M.
func newBookingReference() string {
	return fmt.Sprintf("TC-%s-%s", time.Now().Format("20060102"), confirmationCode())
}

const confirmationAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func confirmationCode() string {
	var sb strings.Builder
	max := big.NewInt(int64(len(confirmationAlphabet)))
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform is broken; fall back
			// to a fixed character rather than panic during booking.
			sb.WriteByte('X')
			continue
		}
		sb.WriteByte(confirmationAlphabet[n.Int64()])
	}
	return sb.String()
}
