package services

import (
	"time"

	"github.com/google/uuid"

	"tripconcierge/internal/models/trip_models"
	"tripconcierge/pkg/utils"
)

const (
	scheduleFirstSlotHour = 9
	scheduleSlotHours     = 3
	maxActivitiesPerDay   = 2

	breakfastCost = 15.0
	lunchCost     = 25.0
	dinnerCost    = 35.0
)

// BuildDailySchedule lays out one DaySchedule per trip day. Selected
// activities fill 3-hour slots from 09:00 in input order, capped at two per
// day; every day carries the fixed three-meal set and every currently
// selected transportation option. Output is deterministic for a given
// selection apart from generated ids.
func BuildDailySchedule(
	trip *trip_models.Trip,
	activities []trip_models.ActivityOption,
	transportation []trip_models.TransportationOption,
	currency string,
) []trip_models.DaySchedule {
	duration := trip.Request.Duration()
	if duration <= 0 {
		return []trip_models.DaySchedule{}
	}

	var dayActivities []trip_models.ActivityOption
	for _, a := range activities {
		if !a.IsSelected {
			continue
		}
		dayActivities = append(dayActivities, a)
		if len(dayActivities) == maxActivitiesPerDay {
			break
		}
	}

	var dayTransport []trip_models.TransportationOption
	for _, t := range transportation {
		if t.IsSelected {
			dayTransport = append(dayTransport, t)
		}
	}

	schedule := make([]trip_models.DaySchedule, 0, duration)
	for dayIndex := 0; dayIndex < duration; dayIndex++ {
		date := utils.DayStart(trip.Request.StartDate).AddDate(0, 0, dayIndex)

		scheduled := make([]trip_models.ScheduledActivity, 0, len(dayActivities))
		for slot, a := range dayActivities {
			startHour := scheduleFirstSlotHour + slot*scheduleSlotHours
			scheduled = append(scheduled, trip_models.ScheduledActivity{
				ID:        uuid.New(),
				Activity:  a,
				StartTime: utils.AtHour(date, startHour, 0),
				EndTime:   utils.AtHour(date, startHour+scheduleSlotHours, 0),
				Location:  a.Location,
			})
		}

		schedule = append(schedule, trip_models.DaySchedule{
			ID:             uuid.New(),
			Date:           date,
			Activities:     scheduled,
			Meals:          mealsForDay(date, currency),
			Transportation: dayTransport,
		})
	}
	return schedule
}

func mealsForDay(date time.Time, currency string) []trip_models.Meal {
	return []trip_models.Meal{
		{ID: uuid.New(), Type: trip_models.MealBreakfast, EstimatedCost: breakfastCost, Currency: currency, Time: utils.AtHour(date, 8, 0)},
		{ID: uuid.New(), Type: trip_models.MealLunch, EstimatedCost: lunchCost, Currency: currency, Time: utils.AtHour(date, 13, 0)},
		{ID: uuid.New(), Type: trip_models.MealDinner, EstimatedCost: dinnerCost, Currency: currency, Time: utils.AtHour(date, 19, 0)},
	}
}
