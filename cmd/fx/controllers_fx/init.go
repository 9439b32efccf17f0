package controllers_fx

import (
	"go.uber.org/fx"

	"tripconcierge/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewBookingController))
