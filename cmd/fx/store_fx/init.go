package store_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripconcierge/internal/infra"
	"tripconcierge/internal/repositories"
)

var Module = fx.Provide(
	provideTripStore)

// provideTripStore picks the history backend from the environment:
// POSTGRES_URL wins, then REDIS_URL, then in-memory.
func provideTripStore() repositories.TripStore {
	if os.Getenv("POSTGRES_URL") != "" {
		store, err := repositories.NewPostgresTripStore(infra.InitPostgresql())
		if err != nil {
			log.Fatalf("Failed to initialize postgres trip store: %v", err)
		}
		log.Println("Trip history backed by postgres")
		return store
	}
	if os.Getenv("REDIS_URL") != "" {
		log.Println("Trip history backed by redis")
		return repositories.NewRedisTripStore(infra.InitRedis())
	}
	log.Println("Trip history backed by process memory")
	return repositories.NewMemoryTripStore()
}
