package booking_fx

import (
	"go.uber.org/fx"

	"tripconcierge/internal/services"
)

var Module = fx.Provide(
	services.NewBookingService)
