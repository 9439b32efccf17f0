package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripconcierge/cmd/fx/booking_fx"
	"tripconcierge/cmd/fx/controllers_fx"
	"tripconcierge/cmd/fx/planner_fx"
	"tripconcierge/cmd/fx/provider_fx"
	"tripconcierge/cmd/fx/session_fx"
	"tripconcierge/cmd/fx/store_fx"
	"tripconcierge/internal/api/controllers"
	"tripconcierge/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		store_fx.Module,
		provider_fx.Module,
		planner_fx.Module,
		session_fx.Module,
		booking_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	tripController *controllers.TripController,
	bookingController *controllers.BookingController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterRoutes(r, plannerController, tripController, bookingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	tripController *controllers.TripController,
	bookingController *controllers.BookingController) {

	trips := r.Group("/trips")
	trips.POST("/plan", plannerController.PlanTrip)
	trips.GET("/plan/progress", plannerController.Progress)

	trips.GET("/current", tripController.CurrentTrip)
	trips.DELETE("/current", tripController.ClearCurrentTrip)
	trips.POST("/current/flights/select", tripController.SelectFlight)
	trips.POST("/current/hotels/select", tripController.SelectHotel)
	trips.POST("/current/activities/toggle", tripController.ToggleActivity)
	trips.POST("/current/transportation/select", tripController.SelectTransportation)
	trips.GET("/current/alternatives", tripController.Alternatives)
	trips.GET("/current/pricing", tripController.Pricing)
	trips.POST("/current/status/:action", tripController.UpdateStatus)

	trips.GET("/history", tripController.History)
	trips.GET("/history/range", tripController.HistoryByDateRange)
	trips.GET("/stats", tripController.Stats)
	trips.DELETE("/:id", tripController.DeleteTrip)

	bookings := r.Group("/bookings")
	bookings.POST("", bookingController.BookTrip)
}
