package trip_models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingFailed    BookingStatus = "failed"
	BookingCancelled BookingStatus = "cancelled"
)

type TravelerDetail struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type Booking struct {
	ID                  uuid.UUID        `json:"id"`
	TripID              uuid.UUID        `json:"trip_id"`
	Reference           string           `json:"reference"`
	TravelerDetails     []TravelerDetail `json:"traveler_details"`
	TotalAmount         float64          `json:"total_amount"`
	Currency            string           `json:"currency"`
	Status              BookingStatus    `json:"status"`
	ConfirmationNumbers []string         `json:"confirmation_numbers"`
	CreatedAt           time.Time        `json:"created_at"`
}
