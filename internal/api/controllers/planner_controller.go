package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripconcierge/internal/models/request_models"
	"tripconcierge/internal/models/response_models"
	"tripconcierge/internal/services"
	"tripconcierge/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
	sessions       *services.SessionManager
}

func NewPlannerController(plannerService services.PlannerServiceInterface, sessions *services.SessionManager) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
		sessions:       sessions,
	}
}

func sessionIDFrom(c *gin.Context) string {
	return c.GetHeader("X-Session-ID")
}

// PlanTrip godoc
// @Summary Plan a trip
// @Description Run the staged planner and attach the resulting itinerary to the session's current trip
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.PlanTripRequest true "Trip planning payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /trips/plan [post]
func (p *PlannerController) PlanTrip(c *gin.Context) {
	var req request_models.PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := p.sessions.GetOrCreate(c.Request.Context(), sessionIDFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	strategy := services.StrategyLocal
	if req.Strategy == string(services.StrategyDelegated) {
		strategy = services.StrategyDelegated
	}

	tripReq := req.ToTripRequest()
	itinerary, err := p.plannerService.PlanTrip(c.Request.Context(), tripReq, strategy)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if _, err := session.StartTrip(c.Request.Context(), tripReq); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if err := session.AttachItinerary(c.Request.Context(), itinerary); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session.CurrentTrip(), "Trip planned successfully")
}

// Progress godoc
// @Summary Current planning progress
// @Description Latest progress event of an in-flight planning run, if any
// @Tags Planner
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trips/plan/progress [get]
func (p *PlannerController) Progress(c *gin.Context) {
	event, active := p.plannerService.Progress()
	utils.RespondSuccess(c, response_models.ProgressResponse{
		Active:   active,
		Fraction: event.Fraction,
		Label:    event.Label,
	}, "")
}
