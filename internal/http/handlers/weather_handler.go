// README: Weather handlers for current/forecast/adjustment.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fareline/internal/modules/weather"
)

type WeatherHandler struct {
	weather *weather.Service
}

func NewWeatherHandler(svc *weather.Service) *WeatherHandler {
	return &WeatherHandler{weather: svc}
}

func (h *WeatherHandler) Current(c *gin.Context) {
	reading, err := h.weather.Current(c.Request.Context(), c.Param("location"))
	if err != nil {
		writeWeatherError(c, err)
		return
	}
	c.JSON(http.StatusOK, reading)
}

func (h *WeatherHandler) Forecast(c *gin.Context) {
	entries, err := h.weather.Forecast(c.Request.Context(), c.Param("location"))
	if err != nil {
		writeWeatherError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": c.Param("location"), "forecast": entries})
}

// Adjustment always succeeds: unknown conditions get the default multiplier.
func (h *WeatherHandler) Adjustment(c *gin.Context) {
	condition := c.Param("condition")
	c.JSON(http.StatusOK, gin.H{
		"condition":  condition,
		"adjustment": weather.Adjustment(condition),
	})
}
