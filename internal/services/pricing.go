package services

import (
	"tripconcierge/internal/models/response_models"
	"tripconcierge/internal/models/trip_models"
)

// MealCostPerTravelerDay is the fixed meal estimate baked into an itinerary
// at synthesis time. It is never re-applied on selection edits.
const MealCostPerTravelerDay = 60.0

// SelectionTotal is the per-edit cost rule: selected flight price scaled by
// traveler count, the selected hotel's total price, every selected activity
// at face value and every selected transportation option. Pure and
// deterministic over the itinerary's selection flags.
func SelectionTotal(it *trip_models.Itinerary, travelers int) float64 {
	if it == nil {
		return 0
	}
	travelers = clampMin(travelers, 1)

	var total float64
	if f := it.SelectedFlight(); f != nil {
		total += f.Price * float64(travelers)
	}
	if h := it.SelectedHotel(); h != nil {
		total += h.TotalPrice
	}
	for _, a := range it.SelectedActivities() {
		total += a.Price
	}
	for _, t := range it.SelectedTransportation() {
		total += t.Price
	}
	return total
}

// SynthesisTotal is the initial-build cost rule: like SelectionTotal but
// activities are per traveler and the fixed meal estimate is added for the
// whole stay.
func SynthesisTotal(it *trip_models.Itinerary, travelers, days int) float64 {
	if it == nil {
		return 0
	}
	travelers = clampMin(travelers, 1)
	days = clampMin(days, 0)

	var total float64
	if f := it.SelectedFlight(); f != nil {
		total += f.Price * float64(travelers)
	}
	if h := it.SelectedHotel(); h != nil {
		total += h.TotalPrice
	}
	for _, a := range it.SelectedActivities() {
		total += a.Price * float64(travelers)
	}
	for _, t := range it.SelectedTransportation() {
		total += t.Price
	}
	total += MealCostPerTravelerDay * float64(travelers) * float64(days)
	return total
}

// BuildPricingBreakdown computes per-category subtotals over the current
// selection, plus per-person and per-day figures with clamped divisors.
func BuildPricingBreakdown(it *trip_models.Itinerary, travelers, days int) response_models.PricingBreakdown {
	bd := response_models.PricingBreakdown{Currency: "USD"}
	if it == nil {
		return bd
	}
	bd.Currency = it.Currency

	if f := it.SelectedFlight(); f != nil {
		bd.Flights = f.Price * float64(clampMin(travelers, 1))
	}
	if h := it.SelectedHotel(); h != nil {
		bd.Hotels = h.TotalPrice
	}
	for _, a := range it.SelectedActivities() {
		bd.Activities += a.Price
	}
	for _, t := range it.SelectedTransportation() {
		bd.Transportation += t.Price
	}
	bd.Total = it.TotalCost
	bd.PerPerson = bd.Total / float64(clampMin(travelers, 1))
	bd.PerDay = bd.Total / float64(clampMin(days, 1))
	return bd
}

func clampMin(n, min int) int {
	if n < min {
		return min
	}
	return n
}
