// README: Landmark loading from PostgreSQL, with a built-in seed fallback.
package landmark

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fareline/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadAll reads the landmark table in insertion (id) order.
func (s *Store) LoadAll(ctx context.Context) ([]Landmark, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, address, lat, lng, category, COALESCE(description, '')
		FROM landmarks
		ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Landmark
	for rows.Next() {
		var l Landmark
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Position.Lat, &l.Position.Lng, &l.Category, &l.Description); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Seed is the built-in directory used when no database is configured. The
// rows match the migration seed.
func Seed() []Landmark {
	return []Landmark{
		{ID: "lm_1", Name: "Central Mall", Address: "11 Market Street", Position: types.Point{Lat: 25.0330, Lng: 121.5654}, Category: CategoryMall, Description: "Flagship downtown shopping centre"},
		{ID: "lm_2", Name: "Riverside Park", Address: "2 Embankment Road", Position: types.Point{Lat: 25.0402, Lng: 121.5430}, Category: CategoryPark},
		{ID: "lm_3", Name: "Grand Terrace Hotel", Address: "88 Harbour View Avenue", Position: types.Point{Lat: 25.0512, Lng: 121.5720}, Category: CategoryHotel, Description: "Conference and business hotel"},
		{ID: "lm_4", Name: "Union Station", Address: "1 Railway Square", Position: types.Point{Lat: 25.0478, Lng: 121.5170}, Category: CategoryStation},
		{ID: "lm_5", Name: "Harbour Lights Restaurant", Address: "5 Pier Lane", Position: types.Point{Lat: 25.0559, Lng: 121.5601}, Category: CategoryRestaurant, Description: "Seafood by the waterfront"},
	}
}
