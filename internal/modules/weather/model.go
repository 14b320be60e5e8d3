// README: Weather reading and forecast entry definitions.
package weather

import (
	"errors"
	"time"
)

var (
	ErrUpstream = errors.New("weather provider unavailable")
	ErrNotFound = errors.New("unknown location")
)

// Reading is one observed set of conditions for a location.
type Reading struct {
	Location    string    `json:"location"`
	Condition   string    `json:"condition"`
	Temperature float64   `json:"temperature"` // Celsius
	Humidity    float64   `json:"humidity"`    // percent
	WindSpeed   float64   `json:"wind_speed"`  // km/h
	RecordedAt  time.Time `json:"recorded_at"`
}

type ForecastEntry struct {
	Time        time.Time `json:"time"`
	Condition   string    `json:"condition"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
}
