// README: Subscription plan service over an injected store.
package plan

import (
	"context"
	"errors"
	"sync"
	"time"

	"fareline/internal/types"
)

var ErrNotFound = errors.New("plan or subscription not found")

// Store keeps at most one subscription per rider.
type Store interface {
	Put(ctx context.Context, sub Subscription) error
	Get(ctx context.Context, riderID types.ID) (Subscription, bool, error)
}

type Service struct {
	store Store
	plans map[types.ID]Plan
	order []Plan
}

func NewService(store Store) *Service {
	catalog := Catalog()
	plans := make(map[types.ID]Plan, len(catalog))
	for _, p := range catalog {
		plans[p.ID] = p
	}
	return &Service{store: store, plans: plans, order: catalog}
}

func (s *Service) ListPlans(ctx context.Context) []Plan {
	out := make([]Plan, len(s.order))
	copy(out, s.order)
	return out
}

// Subscribe replaces any existing subscription for the rider.
func (s *Service) Subscribe(ctx context.Context, riderID, planID types.ID) (Subscription, error) {
	if riderID == "" {
		return Subscription{}, ErrNotFound
	}
	if _, ok := s.plans[planID]; !ok {
		return Subscription{}, ErrNotFound
	}
	sub := Subscription{RiderID: riderID, PlanID: planID, StartedAt: time.Now()}
	if err := s.store.Put(ctx, sub); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

func (s *Service) GetSubscription(ctx context.Context, riderID types.ID) (Subscription, error) {
	sub, ok, err := s.store.Get(ctx, riderID)
	if err != nil {
		return Subscription{}, err
	}
	if !ok {
		return Subscription{}, ErrNotFound
	}
	return sub, nil
}

// MemoryStore is the mock-data store behind the plans surface.
type MemoryStore struct {
	mu   sync.Mutex
	rows map[types.ID]Subscription
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[types.ID]Subscription)}
}

func (s *MemoryStore) Put(ctx context.Context, sub Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[sub.RiderID] = sub
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, riderID types.ID) (Subscription, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.rows[riderID]
	return sub, ok, nil
}
