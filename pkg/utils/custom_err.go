package utils

import "errors"

var (
	ErrInvalidTripRequest = errors.New("invalid trip request")
	ErrProviderFailure    = errors.New("planning provider failure")
	ErrTripNotFound       = errors.New("trip not found")
	ErrNoCurrentTrip      = errors.New("no current trip in session")
	ErrInvalidItinerary   = errors.New("invalid itinerary selection")
	ErrUnavailable        = errors.New("selection unavailable")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
