// README: Negotiation store interface; Postgres and in-memory implementations.
package negotiation

import (
	"context"

	"fareline/internal/types"
)

// Update carries the optional column changes applied together with a status
// transition. Nil fields leave the stored value untouched.
type Update struct {
	DriverID     *types.ID
	CounterOffer *types.Money
}

// Store persists negotiations.
//
// Create must refuse a new row while the ride already has a live (pending or
// countered) negotiation and report that as ErrConflict, atomically with the
// insert. UpdateStatus must be a conditional write: it succeeds only when the
// stored row still matches (from, version), which serializes concurrent
// transitions against the same negotiation.
type Store interface {
	Create(ctx context.Context, n *Negotiation) error
	Get(ctx context.Context, id types.ID) (*Negotiation, error)
	ListByRide(ctx context.Context, rideID types.ID) ([]*Negotiation, error)
	UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, upd Update) (bool, error)
	AppendEvent(ctx context.Context, e *Event) error
}
