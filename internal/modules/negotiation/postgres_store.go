// README: Negotiation store backed by PostgreSQL.
package negotiation

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fareline/internal/types"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create relies on the partial unique index over live rows (see migration
// 0001) so two concurrent creates for one ride resolve to a single winner.
func (s *PostgresStore) Create(ctx context.Context, n *Negotiation) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO negotiations (
			id, ride_id, rider_id, driver_id,
			rider_offer, counter_offer, currency,
			status, status_version, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10, $11
		)`,
		string(n.ID),
		string(n.RideID),
		string(n.RiderID),
		idPtr(n.DriverID),
		n.RiderOffer.Amount,
		moneyPtr(n.DriverCounterOffer),
		n.RiderOffer.Currency,
		string(n.Status),
		n.StatusVersion,
		n.CreatedAt,
		n.UpdatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	return err
}

func (s *PostgresStore) Get(ctx context.Context, id types.ID) (*Negotiation, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, ride_id, rider_id, driver_id,
		       rider_offer, counter_offer, currency,
		       status, status_version, created_at, updated_at
		FROM negotiations
		WHERE id = $1`, string(id),
	)
	return scanNegotiation(row)
}

func (s *PostgresStore) ListByRide(ctx context.Context, rideID types.ID) ([]*Negotiation, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, ride_id, rider_id, driver_id,
		       rider_offer, counter_offer, currency,
		       status, status_version, created_at, updated_at
		FROM negotiations
		WHERE ride_id = $1
		ORDER BY created_at ASC`, string(rideID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Negotiation
	for rows.Next() {
		n, err := scanNegotiation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// UpdateStatus performs the guarded transition. The WHERE clause on status and
// status_version makes two racing transitions resolve to a single winner.
func (s *PostgresStore) UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, upd Update) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE negotiations
		SET status = $1,
		    status_version = status_version + 1,
		    driver_id = COALESCE($2, driver_id),
		    counter_offer = COALESCE($3, counter_offer),
		    updated_at = NOW()
		WHERE id = $4 AND status = $5 AND status_version = $6`,
		string(to),
		idPtr(upd.DriverID),
		moneyPtr(upd.CounterOffer),
		string(id),
		string(from),
		version,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *PostgresStore) AppendEvent(ctx context.Context, e *Event) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO negotiation_events (
			negotiation_id, from_status, to_status, actor_type, actor_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		string(e.NegotiationID),
		string(e.FromStatus),
		string(e.ToStatus),
		e.ActorType,
		idPtr(e.ActorID),
		e.CreatedAt,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNegotiation(row rowScanner) (*Negotiation, error) {
	var n Negotiation
	var driverID sql.NullString
	var counter sql.NullInt64
	var currency string
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&n.ID, &n.RideID, &n.RiderID, &driverID,
		&n.RiderOffer.Amount, &counter, &currency,
		&n.Status, &n.StatusVersion, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	n.RiderOffer.Currency = currency
	if driverID.Valid {
		d := types.ID(driverID.String)
		n.DriverID = &d
	}
	if counter.Valid {
		m := types.Money{Amount: counter.Int64, Currency: currency}
		n.DriverCounterOffer = &m
	}
	n.CreatedAt = createdAt
	n.UpdatedAt = updatedAt
	return &n, nil
}

func idPtr(v *types.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func moneyPtr(v *types.Money) *int64 {
	if v == nil {
		return nil
	}
	n := v.Amount
	return &n
}
