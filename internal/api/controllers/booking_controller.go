package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripconcierge/internal/models/request_models"
	"tripconcierge/internal/services"
	"tripconcierge/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
	sessions       *services.SessionManager
}

func NewBookingController(bookingService services.BookingServiceInterface, sessions *services.SessionManager) *BookingController {
	return &BookingController{
		bookingService: bookingService,
		sessions:       sessions,
	}
}

// BookTrip godoc
// @Summary Book the current trip
// @Description Validate the current itinerary, confirm the booking and mark the trip booked
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.BookTripRequest true "Traveler details"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /bookings [post]
func (b *BookingController) BookTrip(c *gin.Context) {
	var req request_models.BookTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := b.sessions.GetOrCreate(c.Request.Context(), sessionIDFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	booking, err := b.bookingService.BookTrip(c.Request.Context(), session, req.Travelers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Trip booked successfully")
}
