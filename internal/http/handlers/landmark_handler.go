// README: Landmark handlers for search and nearby lookups.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fareline/internal/modules/landmark"
	"fareline/internal/types"
)

type LandmarkHandler struct {
	directory *landmark.Directory
	places    *landmark.PlacesService // nil when no Maps API key is set
	logger    *slog.Logger
}

func NewLandmarkHandler(directory *landmark.Directory, places *landmark.PlacesService, logger *slog.Logger) *LandmarkHandler {
	return &LandmarkHandler{directory: directory, places: places, logger: logger}
}

func (h *LandmarkHandler) Search(c *gin.Context) {
	query := c.Query("q")
	results := h.directory.Search(query)

	if h.places != nil && query != "" {
		remote, err := h.places.Search(c.Request.Context(), query)
		if err != nil {
			// degrade to local-only results
			h.logger.Warn("places search failed", "error", err)
		} else {
			results = append(results, remote...)
		}
	}
	if results == nil {
		results = []landmark.Landmark{}
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "landmarks": results})
}

func (h *LandmarkHandler) Nearby(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		writeFailure(c, http.StatusBadRequest, "lat and lng are required")
		return
	}
	radiusKm := 2.0
	if raw := c.Query("radius_km"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil || r <= 0 {
			writeFailure(c, http.StatusBadRequest, "radius_km must be a positive number")
			return
		}
		radiusKm = r
	}

	results := h.directory.Nearby(types.Point{Lat: lat, Lng: lng}, radiusKm)
	if results == nil {
		results = []landmark.Landmark{}
	}
	c.JSON(http.StatusOK, gin.H{"radius_km": radiusKm, "landmarks": results})
}
