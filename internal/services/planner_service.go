package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"tripconcierge/internal/models/trip_models"
	"tripconcierge/internal/providers"
	"tripconcierge/pkg/utils"
)

type PlanStrategy string

const (
	StrategyLocal     PlanStrategy = "local"
	StrategyDelegated PlanStrategy = "delegated"
)

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, req trip_models.TripRequest, strategy PlanStrategy) (*trip_models.Itinerary, error)
	Progress() (ProgressEvent, bool)
	SubscribeProgress() (<-chan ProgressEvent, func())
}

// PlannerService runs the staged planning pipeline. Stages are strictly
// sequential; any failure aborts the whole run and discards everything
// fetched so far. No retries happen here.
type PlannerService struct {
	source   providers.CandidateSource
	remote   RemotePlanner
	progress *ProgressTracker
}

// RemotePlanner is the delegated-mode capability: one round trip, full
// itinerary back.
type RemotePlanner interface {
	PlanTrip(ctx context.Context, req trip_models.TripRequest) (*trip_models.Itinerary, error)
}

func NewPlannerService(source providers.CandidateSource, remote RemotePlanner) PlannerServiceInterface {
	return &PlannerService{
		source:   source,
		remote:   remote,
		progress: NewProgressTracker(),
	}
}

func (p *PlannerService) Progress() (ProgressEvent, bool) {
	return p.progress.Snapshot()
}

func (p *PlannerService) SubscribeProgress() (<-chan ProgressEvent, func()) {
	return p.progress.Subscribe()
}

func (p *PlannerService) PlanTrip(ctx context.Context, req trip_models.TripRequest, strategy PlanStrategy) (*trip_models.Itinerary, error) {
	// Fail fast, before any provider call.
	if err := validateTripRequest(req); err != nil {
		return nil, err
	}

	if strategy == StrategyDelegated {
		return p.planDelegated(ctx, req)
	}
	return p.planLocal(ctx, req)
}

func (p *PlannerService) planDelegated(ctx context.Context, req trip_models.TripRequest) (*trip_models.Itinerary, error) {
	if p.remote == nil {
		return nil, fmt.Errorf("%w: no planner backend configured", utils.ErrProviderFailure)
	}

	gen := p.progress.Begin()
	p.progress.Publish(gen, 0.0, "Analyzing trip requirements...")

	itinerary, err := p.remote.PlanTrip(ctx, req)
	if err != nil {
		p.progress.Reset(gen)
		return nil, fmt.Errorf("%w: delegated planning: %v", utils.ErrProviderFailure, err)
	}

	p.progress.Publish(gen, 1.0, "Finalizing itinerary...")
	p.progress.Reset(gen)
	return itinerary, nil
}

func (p *PlannerService) planLocal(ctx context.Context, req trip_models.TripRequest) (*trip_models.Itinerary, error) {
	gen := p.progress.Begin()
	fail := func(stage string, err error) (*trip_models.Itinerary, error) {
		log.Printf("planning run aborted at %s: %v", stage, err)
		p.progress.Reset(gen)
		return nil, fmt.Errorf("%w: %s: %v", utils.ErrProviderFailure, stage, err)
	}

	p.progress.Publish(gen, 0.0, "Analyzing trip requirements...")

	p.progress.Publish(gen, 0.2, "Searching for flights...")
	flights, err := p.source.SearchFlights(ctx, req)
	if err != nil {
		return fail("search flights", err)
	}

	p.progress.Publish(gen, 0.4, "Finding accommodations...")
	hotels, err := p.source.SearchHotels(ctx, req)
	if err != nil {
		return fail("search hotels", err)
	}

	p.progress.Publish(gen, 0.6, "Discovering activities...")
	activities, err := p.source.SearchActivities(ctx, req)
	if err != nil {
		return fail("search activities", err)
	}

	p.progress.Publish(gen, 0.8, "Planning local transportation...")
	transportation, err := p.source.SearchTransportation(ctx, req)
	if err != nil {
		return fail("search transportation", err)
	}

	p.progress.Publish(gen, 0.9, "Creating daily itinerary...")
	trip := &trip_models.Trip{Request: req}
	schedule := BuildDailySchedule(trip, activities, transportation, "USD")

	p.progress.Publish(gen, 1.0, "Finalizing itinerary...")
	itinerary := &trip_models.Itinerary{
		ID:             uuid.New(),
		Flights:        flights,
		Hotels:         hotels,
		Activities:     activities,
		Transportation: transportation,
		DailySchedule:  schedule,
		Currency:       "USD",
		CreatedAt:      time.Now().UTC(),
	}
	itinerary.TotalCost = SynthesisTotal(itinerary, req.NumberOfTravelers, req.Duration())

	p.progress.Reset(gen)
	return itinerary, nil
}

func validateTripRequest(req trip_models.TripRequest) error {
	if req.DepartureLocation == "" || req.Destination == "" {
		return fmt.Errorf("%w: departure and destination are required", utils.ErrInvalidTripRequest)
	}
	if !req.StartDate.Before(req.EndDate) {
		return fmt.Errorf("%w: end date must be after start date", utils.ErrInvalidTripRequest)
	}
	if req.NumberOfTravelers < 1 {
		return fmt.Errorf("%w: number of travelers must be positive", utils.ErrInvalidTripRequest)
	}
	if req.Budget != nil && *req.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive", utils.ErrInvalidTripRequest)
	}
	return nil
}
