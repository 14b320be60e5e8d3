// README: In-memory landmark directory with substring search and radius filter.
package landmark

import (
	"math"
	"strings"

	"fareline/internal/types"
)

// Directory holds the full landmark list in insertion order. The data is
// immutable after construction, so lookups need no locking.
type Directory struct {
	landmarks []Landmark
}

func NewDirectory(landmarks []Landmark) *Directory {
	rows := make([]Landmark, len(landmarks))
	copy(rows, landmarks)
	return &Directory{landmarks: rows}
}

// All returns the directory contents in insertion order.
func (d *Directory) All() []Landmark {
	out := make([]Landmark, len(d.landmarks))
	copy(out, d.landmarks)
	return out
}

// Search matches query case-insensitively against name, category and address.
// A blank query yields no results.
func (d *Directory) Search(query string) []Landmark {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Landmark
	for _, l := range d.landmarks {
		if strings.Contains(strings.ToLower(l.Name), q) ||
			strings.Contains(strings.ToLower(string(l.Category)), q) ||
			strings.Contains(strings.ToLower(l.Address), q) {
			out = append(out, l)
		}
	}
	return out
}

// Nearby filters by Euclidean distance over degree deltas scaled to km.
// Good enough for city-scale radii; not a geodesic distance.
func (d *Directory) Nearby(p types.Point, radiusKm float64) []Landmark {
	if radiusKm <= 0 {
		return nil
	}
	var out []Landmark
	for _, l := range d.landmarks {
		if euclideanKm(p, l.Position) <= radiusKm {
			out = append(out, l)
		}
	}
	return out
}

// degrees-to-km scale at the equator; the approximation ignores latitude
// compression, matching the documented behaviour.
const kmPerDegree = 111.0

func euclideanKm(a, b types.Point) float64 {
	dLat := (a.Lat - b.Lat) * kmPerDegree
	dLng := (a.Lng - b.Lng) * kmPerDegree
	return math.Sqrt(dLat*dLat + dLng*dLng)
}
