package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripconcierge/internal/models/trip_models"
	"tripconcierge/internal/repositories"
	"tripconcierge/pkg/utils"
)

// PlanningSession owns the current trip for one active planning session and
// is the only writer of Itinerary.TotalCost. Every operation runs to
// completion under the lock, recomputes the total from the post-mutation
// selection, and writes the trip back into history. Selection targets that
// do not exist are silent no-ops: the caller's view is derived from the
// itinerary itself, so a stale id is transient, not fatal.
type PlanningSession struct {
	mu      sync.Mutex
	store   repositories.TripStore
	current *trip_models.Trip
	history []trip_models.Trip
}

func NewPlanningSession(ctx context.Context, store repositories.TripStore) (*PlanningSession, error) {
	history, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load trip history: %v", utils.ErrDatabaseError, err)
	}
	return &PlanningSession{store: store, history: history}, nil
}

// StartTrip makes req the session's current trip in planning state.
func (s *PlanningSession) StartTrip(ctx context.Context, req trip_models.TripRequest) (*trip_models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = trip_models.NewTrip(req)
	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return s.current.Clone(), nil
}

// AttachItinerary hands a freshly planned itinerary to the session. The
// planner never touches it again after this point.
func (s *PlanningSession) AttachItinerary(ctx context.Context, itinerary *trip_models.Itinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	s.current.Itinerary = itinerary
	s.current.Status = trip_models.StatusPlanned
	return s.persistLocked(ctx)
}

func (s *PlanningSession) CurrentTrip() *trip_models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

func (s *PlanningSession) ClearCurrentTrip() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// SelectFlight deselects every other flight and selects the target.
// Unknown ids still trigger recompute and persist.
func (s *PlanningSession) SelectFlight(ctx context.Context, flightID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.currentItineraryLocked()
	if it == nil {
		return nil
	}
	for i := range it.Flights {
		it.Flights[i].IsSelected = it.Flights[i].ID == flightID
	}
	return s.recomputeAndPersistLocked(ctx)
}

func (s *PlanningSession) SelectHotel(ctx context.Context, hotelID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.currentItineraryLocked()
	if it == nil {
		return nil
	}
	for i := range it.Hotels {
		it.Hotels[i].IsSelected = it.Hotels[i].ID == hotelID
	}
	return s.recomputeAndPersistLocked(ctx)
}

// ToggleActivity flips the target's flag; activities are independent.
func (s *PlanningSession) ToggleActivity(ctx context.Context, activityID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.currentItineraryLocked()
	if it == nil {
		return nil
	}
	for i := range it.Activities {
		if it.Activities[i].ID == activityID {
			it.Activities[i].IsSelected = !it.Activities[i].IsSelected
			break
		}
	}
	return s.recomputeAndPersistLocked(ctx)
}

// SelectTransportation enforces exclusivity only within the target's mode;
// other modes keep their own selection.
func (s *PlanningSession) SelectTransportation(ctx context.Context, transportID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.currentItineraryLocked()
	if it == nil {
		return nil
	}
	var target *trip_models.TransportationOption
	for i := range it.Transportation {
		if it.Transportation[i].ID == transportID {
			target = &it.Transportation[i]
			break
		}
	}
	if target != nil {
		for i := range it.Transportation {
			if it.Transportation[i].Mode == target.Mode {
				it.Transportation[i].IsSelected = false
			}
		}
		target.IsSelected = true
	}
	return s.recomputeAndPersistLocked(ctx)
}

// Status transitions are unguarded: any state is reachable from any state
// and the last write wins.
func (s *PlanningSession) MarkAsBooked(ctx context.Context) error {
	return s.setStatus(ctx, trip_models.StatusBooked)
}

func (s *PlanningSession) MarkAsCompleted(ctx context.Context) error {
	return s.setStatus(ctx, trip_models.StatusCompleted)
}

func (s *PlanningSession) Cancel(ctx context.Context) error {
	return s.setStatus(ctx, trip_models.StatusCancelled)
}

func (s *PlanningSession) setStatus(ctx context.Context, status trip_models.TripStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	s.current.Status = status
	return s.persistLocked(ctx)
}

func (s *PlanningSession) DeleteTrip(ctx context.Context, tripID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.ID == tripID {
		s.current = nil
	}
	kept := s.history[:0]
	for _, t := range s.history {
		if t.ID != tripID {
			kept = append(kept, t)
		}
	}
	s.history = kept
	if err := s.store.Save(ctx, s.history); err != nil {
		return fmt.Errorf("%w: save trip history: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

// History returns the full history in insertion order.
func (s *PlanningSession) History() []trip_models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyHistoryLocked()
}

func (s *PlanningSession) SearchTrips(query string) []trip_models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	if query == "" {
		return s.copyHistoryLocked()
	}
	q := strings.ToLower(query)
	var out []trip_models.Trip
	for _, t := range s.history {
		if strings.Contains(strings.ToLower(t.Request.DepartureLocation), q) ||
			strings.Contains(strings.ToLower(t.Request.Destination), q) {
			out = append(out, *t.Clone())
		}
	}
	return out
}

func (s *PlanningSession) FilterTripsByStatus(status trip_models.TripStatus) []trip_models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []trip_models.Trip
	for _, t := range s.history {
		if t.Status == status {
			out = append(out, *t.Clone())
		}
	}
	return out
}

func (s *PlanningSession) FilterTripsByDateRange(from, to time.Time) []trip_models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []trip_models.Trip
	for _, t := range s.history {
		if !t.Request.StartDate.Before(from) && !t.Request.EndDate.After(to) {
			out = append(out, *t.Clone())
		}
	}
	return out
}

// TotalSpent sums the itinerary totals of completed trips.
func (s *PlanningSession) TotalSpent() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalSpentLocked()
}

func (s *PlanningSession) totalSpentLocked() float64 {
	var total float64
	for _, t := range s.history {
		if t.Status == trip_models.StatusCompleted && t.Itinerary != nil {
			total += t.Itinerary.TotalCost
		}
	}
	return total
}

func (s *PlanningSession) AverageTripCost() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var completed int
	for _, t := range s.history {
		if t.Status == trip_models.StatusCompleted {
			completed++
		}
	}
	if completed == 0 {
		return 0
	}
	return s.totalSpentLocked() / float64(completed)
}

func (s *PlanningSession) MostVisitedDestination() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, t := range s.history {
		if t.Status == trip_models.StatusCompleted {
			counts[t.Request.Destination]++
		}
	}
	var best string
	var bestCount int
	for dest, n := range counts {
		if n > bestCount || (n == bestCount && best != "" && dest < best) {
			best, bestCount = dest, n
		}
	}
	return best
}

func (s *PlanningSession) UpcomingTrips() []trip_models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var out []trip_models.Trip
	for _, t := range s.history {
		if t.Request.StartDate.After(now) && t.Status == trip_models.StatusBooked {
			out = append(out, *t.Clone())
		}
	}
	return out
}

func (s *PlanningSession) TripCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

func (s *PlanningSession) currentItineraryLocked() *trip_models.Itinerary {
	if s.current == nil {
		return nil
	}
	return s.current.Itinerary
}

func (s *PlanningSession) recomputeAndPersistLocked(ctx context.Context) error {
	it := s.current.Itinerary
	it.TotalCost = SelectionTotal(it, s.current.Request.NumberOfTravelers)
	return s.persistLocked(ctx)
}

// persistLocked upserts the current trip into history, preserving insertion
// order on replace, then saves the whole history.
func (s *PlanningSession) persistLocked(ctx context.Context) error {
	if s.current != nil {
		replaced := false
		for i := range s.history {
			if s.history[i].ID == s.current.ID {
				s.history[i] = *s.current.Clone()
				replaced = true
				break
			}
		}
		if !replaced {
			s.history = append(s.history, *s.current.Clone())
		}
	}
	if err := s.store.Save(ctx, s.history); err != nil {
		return fmt.Errorf("%w: save trip history: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *PlanningSession) copyHistoryLocked() []trip_models.Trip {
	out := make([]trip_models.Trip, 0, len(s.history))
	for _, t := range s.history {
		out = append(out, *t.Clone())
	}
	return out
}
