package trip_models

import (
	"time"

	"github.com/google/uuid"
)

type OptionCategory string

const (
	CategoryFlight         OptionCategory = "flight"
	CategoryHotel          OptionCategory = "hotel"
	CategoryActivity       OptionCategory = "activity"
	CategoryTransportation OptionCategory = "transportation"
)

type ActivityCategory string

const (
	ActivitySightseeing ActivityCategory = "sightseeing"
	ActivityAdventure   ActivityCategory = "adventure"
	ActivityFood        ActivityCategory = "food"
	ActivityCulture     ActivityCategory = "culture"
	ActivityRelaxation  ActivityCategory = "relaxation"
	ActivityShopping    ActivityCategory = "shopping"
	ActivityNightlife   ActivityCategory = "nightlife"
	ActivitySports      ActivityCategory = "sports"
)

type TransportMode string

const (
	ModeTaxi            TransportMode = "taxi"
	ModeRideshare       TransportMode = "rideshare"
	ModePublicTransport TransportMode = "public_transport"
	ModeRentalCar       TransportMode = "rental_car"
	ModeShuttle         TransportMode = "shuttle"
	ModeTrain           TransportMode = "train"
	ModeBus             TransportMode = "bus"
)

type FlightOption struct {
	ID               uuid.UUID   `json:"id"`
	Airline          string      `json:"airline"`
	FlightNumber     string      `json:"flight_number"`
	DepartureTime    time.Time   `json:"departure_time"`
	ArrivalTime      time.Time   `json:"arrival_time"`
	DepartureAirport string      `json:"departure_airport"`
	ArrivalAirport   string      `json:"arrival_airport"`
	Price            float64     `json:"price"`
	Currency         string      `json:"currency"`
	Class            FlightClass `json:"class"`
	DurationMinutes  int         `json:"duration"`
	Stops            int         `json:"stops"`
	IsSelected       bool        `json:"is_selected"`
	BookingLink      string      `json:"booking_link,omitempty"`
	SeatAvailability int         `json:"seat_availability,omitempty"`
}

type HotelOption struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	StarRating    int       `json:"star_rating"`
	PricePerNight float64   `json:"price_per_night"`
	Currency      string    `json:"currency"`
	Amenities     []string  `json:"amenities"`
	RoomType      string    `json:"room_type"`
	CheckInDate   time.Time `json:"check_in_date"`
	CheckOutDate  time.Time `json:"check_out_date"`
	TotalPrice    float64   `json:"total_price"`
	IsSelected    bool      `json:"is_selected"`
	BookingLink   string    `json:"booking_link,omitempty"`
	Rating        float64   `json:"rating,omitempty"`
	ReviewCount   int       `json:"review_count,omitempty"`
}

type ActivityOption struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Category      ActivityCategory `json:"category"`
	Price         float64          `json:"price"`
	Currency      string           `json:"currency"`
	DurationHours int              `json:"duration"`
	Location      string           `json:"location"`
	IsSelected    bool             `json:"is_selected"`
	BookingLink   string           `json:"booking_link,omitempty"`
	Rating        float64          `json:"rating,omitempty"`
	ReviewCount   int              `json:"review_count,omitempty"`
}

type TransportationOption struct {
	ID              uuid.UUID     `json:"id"`
	Mode            TransportMode `json:"mode"`
	Provider        string        `json:"provider"`
	Price           float64       `json:"price"`
	Currency        string        `json:"currency"`
	DurationMinutes int           `json:"duration"`
	IsSelected      bool          `json:"is_selected"`
	BookingLink     string        `json:"booking_link,omitempty"`
}

// Option is the tagged variant over the four bookable kinds. Exactly one
// payload pointer is set, matching Category.
type Option struct {
	Category       OptionCategory        `json:"category"`
	Flight         *FlightOption         `json:"flight,omitempty"`
	Hotel          *HotelOption          `json:"hotel,omitempty"`
	Activity       *ActivityOption       `json:"activity,omitempty"`
	Transportation *TransportationOption `json:"transportation,omitempty"`
}

func WrapFlight(f FlightOption) Option {
	return Option{Category: CategoryFlight, Flight: &f}
}

func WrapHotel(h HotelOption) Option {
	return Option{Category: CategoryHotel, Hotel: &h}
}

func WrapActivity(a ActivityOption) Option {
	return Option{Category: CategoryActivity, Activity: &a}
}

func WrapTransportation(t TransportationOption) Option {
	return Option{Category: CategoryTransportation, Transportation: &t}
}

func (o Option) ID() uuid.UUID {
	switch o.Category {
	case CategoryFlight:
		return o.Flight.ID
	case CategoryHotel:
		return o.Hotel.ID
	case CategoryActivity:
		return o.Activity.ID
	case CategoryTransportation:
		return o.Transportation.ID
	}
	return uuid.Nil
}

func (o Option) Price() float64 {
	switch o.Category {
	case CategoryFlight:
		return o.Flight.Price
	case CategoryHotel:
		return o.Hotel.TotalPrice
	case CategoryActivity:
		return o.Activity.Price
	case CategoryTransportation:
		return o.Transportation.Price
	}
	return 0
}

func (o Option) Selected() bool {
	switch o.Category {
	case CategoryFlight:
		return o.Flight.IsSelected
	case CategoryHotel:
		return o.Hotel.IsSelected
	case CategoryActivity:
		return o.Activity.IsSelected
	case CategoryTransportation:
		return o.Transportation.IsSelected
	}
	return false
}
