package trip_models

import (
	"time"

	"github.com/google/uuid"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

type Meal struct {
	ID            uuid.UUID `json:"id"`
	Type          MealType  `json:"type"`
	EstimatedCost float64   `json:"estimated_cost"`
	Currency      string    `json:"currency"`
	Time          time.Time `json:"time"`
}

type ScheduledActivity struct {
	ID        uuid.UUID      `json:"id"`
	Activity  ActivityOption `json:"activity"`
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	Location  string         `json:"location"`
}

type DaySchedule struct {
	ID             uuid.UUID              `json:"id"`
	Date           time.Time              `json:"date"`
	Activities     []ScheduledActivity    `json:"activities"`
	Meals          []Meal                 `json:"meals"`
	Transportation []TransportationOption `json:"transportation"`
	Notes          string                 `json:"notes,omitempty"`
}

type Itinerary struct {
	ID             uuid.UUID              `json:"id"`
	Flights        []FlightOption         `json:"flights"`
	Hotels         []HotelOption          `json:"hotels"`
	Activities     []ActivityOption       `json:"activities"`
	Transportation []TransportationOption `json:"transportation"`
	DailySchedule  []DaySchedule          `json:"daily_schedule"`
	TotalCost      float64                `json:"total_cost"`
	Currency       string                 `json:"currency"`
	CreatedAt      time.Time              `json:"created_at"`
}

func (it *Itinerary) SelectedFlight() *FlightOption {
	for i := range it.Flights {
		if it.Flights[i].IsSelected {
			return &it.Flights[i]
		}
	}
	return nil
}

func (it *Itinerary) SelectedHotel() *HotelOption {
	for i := range it.Hotels {
		if it.Hotels[i].IsSelected {
			return &it.Hotels[i]
		}
	}
	return nil
}

// Alternatives returns every unselected option across all four categories,
// wrapped in the tagged variant so clients get one uniform list.
func (it *Itinerary) Alternatives() []Option {
	var out []Option
	for _, f := range it.Flights {
		if !f.IsSelected {
			out = append(out, WrapFlight(f))
		}
	}
	for _, h := range it.Hotels {
		if !h.IsSelected {
			out = append(out, WrapHotel(h))
		}
	}
	for _, a := range it.Activities {
		if !a.IsSelected {
			out = append(out, WrapActivity(a))
		}
	}
	for _, t := range it.Transportation {
		if !t.IsSelected {
			out = append(out, WrapTransportation(t))
		}
	}
	return out
}

func (it *Itinerary) SelectedActivities() []ActivityOption {
	var out []ActivityOption
	for _, a := range it.Activities {
		if a.IsSelected {
			out = append(out, a)
		}
	}
	return out
}

func (it *Itinerary) SelectedTransportation() []TransportationOption {
	var out []TransportationOption
	for _, t := range it.Transportation {
		if t.IsSelected {
			out = append(out, t)
		}
	}
	return out
}
