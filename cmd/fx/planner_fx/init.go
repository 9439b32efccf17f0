package planner_fx

import (
	"go.uber.org/fx"

	"tripconcierge/internal/providers"
	"tripconcierge/internal/services"
)

var Module = fx.Provide(
	providePlannerService)

func providePlannerService(source providers.CandidateSource, remote services.RemotePlanner) services.PlannerServiceInterface {
	return services.NewPlannerService(source, remote)
}
