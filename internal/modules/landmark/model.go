// README: Landmark reference data definitions.
package landmark

import "fareline/internal/types"

type Category string

const (
	CategoryMall       Category = "mall"
	CategoryRestaurant Category = "restaurant"
	CategoryHotel      Category = "hotel"
	CategoryPark       Category = "park"
	CategoryStation    Category = "station"
	CategoryOther      Category = "other"
)

// Landmark is an immutable point of interest.
type Landmark struct {
	ID          types.ID `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Position    types.Point `json:"position"`
	Category    Category `json:"category"`
	Description string   `json:"description,omitempty"`
}
