// README: Optional Google Places enrichment for landmark search.
package landmark

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"fareline/internal/types"
)

// placesResultCap bounds how many remote results augment a local search.
const placesResultCap = 5

// PlacesService resolves landmark queries against the Google Places API.
// It is optional: when no API key is configured the directory serves local
// results only.
type PlacesService struct {
	client *maps.Client
}

func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Search runs a text search and maps results into landmarks. Result categories
// come from the place types Google reports; anything unrecognized is "other".
func (s *PlacesService) Search(ctx context.Context, query string) ([]Landmark, error) {
	if query == "" {
		return nil, nil
	}
	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Landmark
	for _, r := range resp.Results {
		results = append(results, Landmark{
			ID:      types.ID("place_" + r.PlaceID),
			Name:    r.Name,
			Address: r.FormattedAddress,
			Position: types.Point{
				Lat: r.Geometry.Location.Lat,
				Lng: r.Geometry.Location.Lng,
			},
			Category: categoryFromTypes(r.Types),
		})
		if len(results) >= placesResultCap {
			break
		}
	}
	return results, nil
}

func categoryFromTypes(placeTypes []string) Category {
	for _, t := range placeTypes {
		switch t {
		case "shopping_mall":
			return CategoryMall
		case "restaurant", "cafe", "food":
			return CategoryRestaurant
		case "lodging":
			return CategoryHotel
		case "park":
			return CategoryPark
		case "train_station", "subway_station", "transit_station", "bus_station":
			return CategoryStation
		}
	}
	return CategoryOther
}
