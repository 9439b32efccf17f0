package trip_models

// Clone deep-copies an itinerary so holders of a snapshot never observe a
// later mutation.
func (it *Itinerary) Clone() *Itinerary {
	if it == nil {
		return nil
	}
	out := *it
	out.Flights = append([]FlightOption(nil), it.Flights...)
	out.Hotels = make([]HotelOption, len(it.Hotels))
	for i, h := range it.Hotels {
		h.Amenities = append([]string(nil), h.Amenities...)
		out.Hotels[i] = h
	}
	out.Activities = append([]ActivityOption(nil), it.Activities...)
	out.Transportation = append([]TransportationOption(nil), it.Transportation...)
	out.DailySchedule = make([]DaySchedule, len(it.DailySchedule))
	for i, day := range it.DailySchedule {
		day.Activities = append([]ScheduledActivity(nil), day.Activities...)
		day.Meals = append([]Meal(nil), day.Meals...)
		day.Transportation = append([]TransportationOption(nil), day.Transportation...)
		out.DailySchedule[i] = day
	}
	return &out
}

func (t *Trip) Clone() *Trip {
	if t == nil {
		return nil
	}
	out := *t
	out.Request.Preferences.DietaryRestrictions = append([]string(nil), t.Request.Preferences.DietaryRestrictions...)
	out.Request.Preferences.AccessibilityNeeds = append([]string(nil), t.Request.Preferences.AccessibilityNeeds...)
	out.Request.Preferences.PreferredAirlines = append([]string(nil), t.Request.Preferences.PreferredAirlines...)
	out.Request.Preferences.PreferredHotelChains = append([]string(nil), t.Request.Preferences.PreferredHotelChains...)
	out.Itinerary = t.Itinerary.Clone()
	return &out
}
