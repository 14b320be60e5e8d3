// README: In-memory negotiation store for tests and DB-less local runs.
package negotiation

import (
	"context"
	"sort"
	"sync"
	"time"

	"fareline/internal/types"
)

// MemoryStore keeps negotiations in a mutex-guarded map. UpdateStatus applies
// the same (status, version) guard as the Postgres store, so the one-winner
// property of concurrent transitions holds here too.
type MemoryStore struct {
	mu     sync.Mutex
	rows   map[types.ID]*Negotiation
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[types.ID]*Negotiation)}
}

func (s *MemoryStore) Create(ctx context.Context, n *Negotiation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.RideID == n.RideID && IsLive(row.Status) {
			return ErrConflict
		}
	}
	cp := *n
	s.rows[n.ID] = &cp
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id types.ID) (*Negotiation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (s *MemoryStore) ListByRide(ctx context.Context, rideID types.ID) ([]*Negotiation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Negotiation
	for _, n := range s.rows {
		if n.RideID == rideID {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, upd Update) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.rows[id]
	if !ok || n.Status != from || n.StatusVersion != version {
		return false, nil
	}
	n.Status = to
	n.StatusVersion++
	if upd.DriverID != nil {
		d := *upd.DriverID
		n.DriverID = &d
	}
	if upd.CounterOffer != nil {
		m := *upd.CounterOffer
		n.DriverCounterOffer = &m
	}
	n.UpdatedAt = time.Now()
	return true, nil
}

func (s *MemoryStore) AppendEvent(ctx context.Context, e *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *e
	cp.ID = int64(len(s.events) + 1)
	s.events = append(s.events, cp)
	return nil
}

// Events returns a snapshot of the appended event log (test helper).
func (s *MemoryStore) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
