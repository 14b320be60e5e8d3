// README: Subscription plan catalog definitions.
package plan

import (
	"time"

	"fareline/internal/types"
)

type Plan struct {
	ID           types.ID    `json:"id"`
	Name         string      `json:"name"`
	MonthlyPrice types.Money `json:"monthly_price"`
	RideCredits  int         `json:"ride_credits"`
	Perks        []string    `json:"perks"`
}

type Subscription struct {
	RiderID   types.ID  `json:"rider_id"`
	PlanID    types.ID  `json:"plan_id"`
	StartedAt time.Time `json:"started_at"`
}

// Catalog is the static plan list served by the API.
func Catalog() []Plan {
	return []Plan{
		{
			ID:           "basic",
			Name:         "Basic",
			MonthlyPrice: types.Money{Amount: 0, Currency: "USD"},
			RideCredits:  0,
			Perks:        []string{"standard matching"},
		},
		{
			ID:           "commuter",
			Name:         "Commuter",
			MonthlyPrice: types.Money{Amount: 1500, Currency: "USD"},
			RideCredits:  20,
			Perks:        []string{"priority matching", "fare lock on weekdays"},
		},
		{
			ID:           "unlimited",
			Name:         "Unlimited",
			MonthlyPrice: types.Money{Amount: 4900, Currency: "USD"},
			RideCredits:  -1,
			Perks:        []string{"priority matching", "fare lock", "airport pickups included"},
		},
	}
}
