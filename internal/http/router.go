// README: HTTP router registration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fareline/internal/http/handlers"
	"fareline/internal/http/middleware"
	"fareline/internal/modules/landmark"
	"fareline/internal/modules/negotiation"
	"fareline/internal/modules/plan"
	"fareline/internal/modules/weather"
)

type RouterDeps struct {
	Negotiation *negotiation.Service
	Weather     *weather.Service
	Directory   *landmark.Directory
	Places      *landmark.PlacesService // optional
	Plans       *plan.Service
	Logger      *slog.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.Logging(deps.Logger),
		middleware.Metrics(),
	)

	negotiationHandler := handlers.NewNegotiationHandler(deps.Negotiation)
	weatherHandler := handlers.NewWeatherHandler(deps.Weather)
	landmarkHandler := handlers.NewLandmarkHandler(deps.Directory, deps.Places, deps.Logger)
	planHandler := handlers.NewPlanHandler(deps.Plans)

	api := r.Group("/api")
	{
		api.POST("/negotiations", negotiationHandler.Create)
		api.GET("/negotiations/:id", negotiationHandler.Get)
		api.PATCH("/negotiations/:id/respond", negotiationHandler.Respond)
		api.PATCH("/negotiations/:id/accept-counter", negotiationHandler.AcceptCounter)
		// history lives under the ride: gin cannot mix a static "ride"
		// segment with the :id wildcard above
		api.GET("/rides/:rideId/negotiations", negotiationHandler.ListByRide)

		api.GET("/weather/current/:location", weatherHandler.Current)
		api.GET("/weather/forecast/:location", weatherHandler.Forecast)
		api.GET("/weather/adjustment/:condition", weatherHandler.Adjustment)

		api.GET("/landmarks/search", landmarkHandler.Search)
		api.GET("/landmarks/nearby", landmarkHandler.Nearby)

		api.GET("/plans", planHandler.List)
		api.POST("/plans/subscribe", planHandler.Subscribe)
		api.GET("/plans/subscription/:riderId", planHandler.GetSubscription)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
