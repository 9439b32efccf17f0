package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripconcierge/internal/models/request_models"
	"tripconcierge/internal/models/response_models"
	"tripconcierge/internal/models/trip_models"
	"tripconcierge/internal/providers"
	"tripconcierge/internal/services"
	"tripconcierge/pkg/utils"
)

type TripController struct {
	sessions *services.SessionManager
	source   providers.CandidateSource
}

func NewTripController(sessions *services.SessionManager, source providers.CandidateSource) *TripController {
	return &TripController{sessions: sessions, source: source}
}

func (t *TripController) session(c *gin.Context) (*services.PlanningSession, bool) {
	session, err := t.sessions.GetOrCreate(c.Request.Context(), sessionIDFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return nil, false
	}
	return session, true
}

// bindOptionID parses the selection payload shared by all selection routes.
func bindOptionID(c *gin.Context) (uuid.UUID, bool) {
	var req request_models.SelectOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.OptionID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "option_id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// CurrentTrip godoc
// @Summary Current trip
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/current [get]
func (t *TripController) CurrentTrip(c *gin.Context) {
	session, ok := t.session(c)
	if !ok {
		return
	}
	trip := session.CurrentTrip()
	if trip == nil {
		utils.HandleServiceError(c, utils.ErrNoCurrentTrip)
		return
	}
	utils.RespondSuccess(c, trip, "")
}

// ClearCurrentTrip godoc
// @Summary Clear the current trip without deleting it from history
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trips/current [delete]
func (t *TripController) ClearCurrentTrip(c *gin.Context) {
	session, ok := t.session(c)
	if !ok {
		return
	}
	session.ClearCurrentTrip()
	utils.RespondSuccess(c, nil, "Current trip cleared")
}

// SelectFlight godoc
// @Summary Select a flight on the current itinerary
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SelectOptionRequest true "Selection payload"
// @Success 200 {object} utils.APIResponse
// @Router /trips/current/flights/select [post]
func (t *TripController) SelectFlight(c *gin.Context) {
	session, ok := t.session(c)
	if !ok {
		return
	}
	id, ok := bindOptionID(c)
	if !ok {
		return
	}
	if err := session.SelectFlight(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session.CurrentTrip(), "Flight selection updated")
}

// SelectHotel godoc
// @Summary Select a hotel on the current itinerary
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SelectOptionRequest true "Selection payload"
// @Success 200 {object} utils.APIResponse
// @Router /trips/current/hotels/select [post]
func (t *TripController) SelectHotel(c *gin.Context) {
	session, ok := t.session(c)
	if !ok {
		return
	}
	id, ok := bindOptionID(c)
	if !ok {
		return
	}
	if err := session.SelectHotel(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session.CurrentTrip(), "Hotel selection updated")
}

// ToggleActivity godoc
// @Summary Toggle an activity on the current itinerary
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SelectOptionRequest true "Selection payload"
// @Success 200 {object} utils.APIResponse
// @Router /trips/current/activities/toggle [post]
func (t *TripController) ToggleActivity(c *gin.Context) {
	session, ok := t.session(c)
	if !ok {
		return
	}
	id, ok := bindOptionID(c)
	if !ok {
		return
	}
	if err := session.ToggleActivity(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session.CurrentTrip(), "Activity selection updated")
}

// SelectTransportation godoc
// @Summary Select a transportation option on the current itinerary
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SelectOptionRequest true "Selection payload"
// @Success 200 {object} utils.APIResponse
// @Router /trips/current/transportation/select [post]
func (t *TripController) SelectTransportation(c *gin.Context) {
	session, ok := t.session(c)
	if !ok {
		return
	}
	id, ok := bindOptionID(c)
	if !ok {
		return
	}
	if err := session.SelectTransportation(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session.CurrentTrip(), "Transportation selection updated")
}

// Alternatives godoc
// @Summary Alternative options for the current trip
// @Description Without a category, the unselected options already on the itinerary; with one, fresh candidates from the planning provider
// @Tags Trips
// @Produce json
// @Param category query string false "One of flight, hotel, activity, transportation"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/current/alternatives [get]
func (t *TripController) Alternatives(c *gin.Context) {
	session, ok := t.session(c)
	if !ok {
		return
	}
	trip := session.CurrentTrip()
	if trip == nil || trip.Itinerary == nil {
		utils.HandleServiceError(c, utils.ErrNoCurrentTrip)
		return
	}

	category := c.Query("category")
	if category == "" {
		utils.RespondSuccess(c, response_models.AlternativesResponse{
			Options: trip.Itinerary.Alternatives(),
		}, "")
		return
	}

	options, err := t.freshAlternatives(c, trip.Request, trip_models.OptionCategory(category))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.AlternativesResponse{Options: options}, "")
}

// freshAlternatives asks the planning provider for new candidates in one
// category. Pre-selection flags from the provider are cleared; these are
// suggestions, not a new itinerary.
func (t *TripController) freshAlternatives(c *gin.Context, req trip_models.TripRequest, category trip_models.OptionCategory) ([]trip_models.Option, error) {
	ctx := c.Request.Context()
	var out []trip_models.Option
	switch category {
	case trip_models.CategoryFlight:
		flights, err := t.source.SearchFlights(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("%w: search flights: %v", utils.ErrProviderFailure, err)
		}
		for _, f := range flights {
			f.IsSelected = false
			out = append(out, trip_models.WrapFlight(f))
		}
	case trip_models.CategoryHotel:
		hotels, err := t.source.SearchHotels(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("%w: search hotels: %v", utils.ErrProviderFailure, err)
		}
		for _, h := range hotels {
			h.IsSelected = false
			out = append(out, trip_models.WrapHotel(h))
		}
	case trip_models.CategoryActivity:
		activities, err := t.source.SearchActivities(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("%w: search activities: %v", utils.ErrProviderFailure, err)
		}
		for _, a := range activities {
			a.IsSelected = false
			out = append(out, trip_models.WrapActivity(a))
		}
	case trip_models.CategoryTransportation:
		transport, err := t.source.SearchTransportation(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("%w: search transportation: %v", utils.ErrProviderFailure, err)
		}
		for _, tr := range transport {
			tr.IsSelected = false
			out = append(out, trip_models.WrapTransportation(tr))
		}
	default:
		return nil, fmt.Errorf("%w: unknown category %q", utils.ErrInvalidTripRequest, category)
	}
	return out, nil
}

// Pricing godoc
// @Summary Pricing breakdown for the current itinerary
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/current/pricing [get]
func (t *TripController) Pricing(c *gin.Context) {
	session, ok := t.session(c)
	if !ok {
		return
	}
	trip := session.CurrentTrip()
	if trip == nil || trip.Itinerary == nil {
		utils.HandleServiceError(c, utils.ErrNoCurrentTrip)
		return
	}
	breakdown := services.BuildPricingBreakdown(trip.Itinerary, trip.Request.NumberOfTravelers, trip.Request.Duration())
	utils.RespondSuccess(c, breakdown, "")
}

// UpdateStatus godoc
// @Summary Update the current trip's status
// @Tags Trips
// @Produce json
// @Param action path string true "One of book, complete, cancel"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips/current/status/{action} [post]
func (t *TripController) UpdateStatus(c *gin.Context) {
	session, ok := t.session(c)
	if !ok {
		return
	}

	var err error
	switch c.Param("action") {
	case "book":
		err = session.MarkAsBooked(c.Request.Context())
	case "complete":
		err = session.MarkAsCompleted(c.Request.Context())
	case "cancel":
		err = session.Cancel(c.Request.Context())
	default:
		utils.RespondError(c, http.StatusBadRequest, "Unknown status action")
		return
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session.CurrentTrip(), "Trip status updated")
}

// History godoc
// @Summary Trip history
// @Description Full history, optionally filtered by search query or status
// @Tags Trips
// @Produce json
// @Param q query string false "Match against departure or destination"
// @Param status query string false "Filter by trip status"
// @Success 200 {object} utils.APIResponse
// @Router /trips/history [get]
func (t *TripController) History(c *gin.Context) {
	session, ok := t.session(c)
	if !ok {
		return
	}

	var trips []trip_models.Trip
	switch {
	case c.Query("status") != "":
		trips = session.FilterTripsByStatus(trip_models.TripStatus(c.Query("status")))
	case c.Query("q") != "":
		trips = session.SearchTrips(c.Query("q"))
	default:
		trips = session.History()
	}
	utils.RespondSuccess(c, response_models.ToTripSummaries(trips), "")
}

// HistoryByDateRange godoc
// @Summary Trips fully inside a date range
// @Tags Trips
// @Produce json
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339)"
// @Success 200 {object} utils.APIResponse
// @Router /trips/history/range [get]
func (t *TripController) HistoryByDateRange(c *gin.Context) {
	session, ok := t.session(c)
	if !ok {
		return
	}
	var req request_models.DateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "from and to must be RFC 3339 timestamps")
		return
	}
	trips := session.FilterTripsByDateRange(req.From, req.To)
	utils.RespondSuccess(c, response_models.ToTripSummaries(trips), "")
}

// Stats godoc
// @Summary Aggregate statistics over the trip history
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trips/stats [get]
func (t *TripController) Stats(c *gin.Context) {
	session, ok := t.session(c)
	if !ok {
		return
	}
	utils.RespondSuccess(c, response_models.TripStatsResponse{
		TripCount:              session.TripCount(),
		TotalSpent:             session.TotalSpent(),
		AverageTripCost:        session.AverageTripCost(),
		MostVisitedDestination: session.MostVisitedDestination(),
		UpcomingTripCount:      len(session.UpcomingTrips()),
	}, "")
}

// DeleteTrip godoc
// @Summary Delete a trip from history
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	session, ok := t.session(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Trip id must be a UUID")
		return
	}
	if err := session.DeleteTrip(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted")
}
