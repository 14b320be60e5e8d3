// README: Weather-based fare adjustment lookup.
package weather

import "strings"

// Adjustment maps a condition to a fare multiplier. Total over all inputs:
// unknown or empty conditions fall through to 1.00.
func Adjustment(condition string) float64 {
	switch strings.ToLower(strings.TrimSpace(condition)) {
	case "rain", "drizzle":
		return 1.20
	case "snow":
		return 1.35
	case "thunderstorm":
		return 1.50
	case "fog", "mist":
		return 1.15
	default:
		return 1.00
	}
}
