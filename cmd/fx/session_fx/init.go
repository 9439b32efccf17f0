package session_fx

import (
	"go.uber.org/fx"

	"tripconcierge/internal/repositories"
	"tripconcierge/internal/services"
)

var Module = fx.Provide(
	provideSessionManager)

func provideSessionManager(store repositories.TripStore) *services.SessionManager {
	return services.NewSessionManager(store)
}
