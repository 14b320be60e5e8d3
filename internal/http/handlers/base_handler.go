// README: Base handler utilities (response envelope, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fareline/internal/modules/negotiation"
	"fareline/internal/modules/plan"
	"fareline/internal/modules/weather"
)

type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeFailure(c *gin.Context, status int, msg string) {
	c.JSON(status, failureResponse{Success: false, Message: msg})
}

// writeNegotiationError maps the negotiation error taxonomy onto HTTP codes.
// Validation and state errors keep their messages; anything unexpected gets a
// generic body so internals never leak.
func writeNegotiationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, negotiation.ErrValidation):
		writeFailure(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, negotiation.ErrNotFound):
		writeFailure(c, http.StatusNotFound, err.Error())
	case errors.Is(err, negotiation.ErrConflict), errors.Is(err, negotiation.ErrInvalidState):
		writeFailure(c, http.StatusConflict, err.Error())
	default:
		writeFailure(c, http.StatusInternalServerError, "internal error")
	}
}

func writeWeatherError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, weather.ErrNotFound):
		writeFailure(c, http.StatusNotFound, err.Error())
	case errors.Is(err, weather.ErrUpstream):
		writeFailure(c, http.StatusInternalServerError, "weather service unavailable")
	default:
		writeFailure(c, http.StatusInternalServerError, "internal error")
	}
}

func writePlanError(c *gin.Context, err error) {
	if errors.Is(err, plan.ErrNotFound) {
		writeFailure(c, http.StatusNotFound, err.Error())
		return
	}
	writeFailure(c, http.StatusInternalServerError, "internal error")
}
