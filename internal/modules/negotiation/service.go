// README: Negotiation service implements state transitions and persistence.
package negotiation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math"
	"time"

	"fareline/internal/types"
)

var (
	ErrValidation   = errors.New("invalid negotiation request")
	ErrConflict     = errors.New("a live negotiation already exists for this ride")
	ErrInvalidState = errors.New("invalid negotiation state transition")
	ErrNotFound     = errors.New("negotiation not found")
)

// Decision is the driver's answer to a pending offer.
type Decision string

const (
	DecisionAccepted  Decision = "accepted"
	DecisionRejected  Decision = "rejected"
	DecisionCountered Decision = "countered"
)

// Publisher receives negotiation lifecycle events after they are persisted.
// Implementations must tolerate being nil-checked by the caller.
type Publisher interface {
	PublishTransition(ctx context.Context, e Event) error
}

// Config bounds the rider's opening offer relative to the estimated fare.
// The band applies only at creation and only when an estimate is supplied.
type Config struct {
	MinOfferRatio float64
	MaxOfferRatio float64
}

func DefaultConfig() Config {
	return Config{MinOfferRatio: 0.70, MaxOfferRatio: 1.10}
}

type Service struct {
	store  Store
	events Publisher
	cfg    Config
}

func NewService(store Store, events Publisher, cfg Config) *Service {
	if cfg.MinOfferRatio <= 0 || cfg.MaxOfferRatio <= 0 {
		cfg = DefaultConfig()
	}
	return &Service{store: store, events: events, cfg: cfg}
}

type CreateCommand struct {
	RideID        types.ID
	RiderID       types.ID
	Offer         types.Money
	EstimatedFare *types.Money
}

type RespondCommand struct {
	NegotiationID types.ID
	DriverID      types.ID
	Decision      Decision
	CounterOffer  *types.Money
}

type AcceptCounterCommand struct {
	NegotiationID types.ID
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Negotiation, error) {
	if cmd.RideID == "" || cmd.RiderID == "" {
		return nil, ErrValidation
	}
	if cmd.Offer.Amount < 0 {
		return nil, ErrValidation
	}
	if cmd.EstimatedFare != nil && !s.offerWithinBand(cmd.Offer, *cmd.EstimatedFare) {
		return nil, ErrValidation
	}

	now := time.Now()
	n := &Negotiation{
		ID:            newID(),
		RideID:        cmd.RideID,
		RiderID:       cmd.RiderID,
		RiderOffer:    cmd.Offer,
		Status:        StatusPending,
		StatusVersion: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	// the store enforces the one-live-negotiation-per-ride invariant
	if err := s.store.Create(ctx, n); err != nil {
		return nil, err
	}
	s.recordTransition(ctx, Event{
		NegotiationID: n.ID,
		FromStatus:    StatusNone,
		ToStatus:      StatusPending,
		ActorType:     "rider",
		ActorID:       &cmd.RiderID,
		CreatedAt:     now,
	})
	return n, nil
}

func (s *Service) Respond(ctx context.Context, cmd RespondCommand) (*Negotiation, error) {
	var to Status
	switch cmd.Decision {
	case DecisionAccepted:
		to = StatusAccepted
	case DecisionRejected:
		to = StatusRejected
	case DecisionCountered:
		to = StatusCountered
	default:
		return nil, ErrValidation
	}
	if cmd.DriverID == "" {
		return nil, ErrValidation
	}
	if cmd.Decision == DecisionCountered {
		if cmd.CounterOffer == nil || cmd.CounterOffer.Amount < 0 {
			return nil, ErrValidation
		}
	}

	n, err := s.store.Get(ctx, cmd.NegotiationID)
	if err != nil {
		return nil, err
	}
	if n.Status != StatusPending || !CanTransition(n.Status, to) {
		return nil, ErrInvalidState
	}

	upd := Update{DriverID: &cmd.DriverID}
	if cmd.Decision == DecisionCountered {
		counter := *cmd.CounterOffer
		if counter.Currency == "" {
			counter.Currency = n.RiderOffer.Currency
		}
		upd.CounterOffer = &counter
	}
	ok, err := s.store.UpdateStatus(ctx, n.ID, n.Status, to, n.StatusVersion, upd)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost the conditional write: another transition landed first.
		return nil, ErrInvalidState
	}
	s.recordTransition(ctx, Event{
		NegotiationID: n.ID,
		FromStatus:    StatusPending,
		ToStatus:      to,
		ActorType:     "driver",
		ActorID:       &cmd.DriverID,
		CreatedAt:     time.Now(),
	})
	return s.store.Get(ctx, n.ID)
}

func (s *Service) AcceptCounter(ctx context.Context, cmd AcceptCounterCommand) (*Negotiation, error) {
	n, err := s.store.Get(ctx, cmd.NegotiationID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(n.Status, StatusCounterAccepted) {
		return nil, ErrInvalidState
	}
	ok, err := s.store.UpdateStatus(ctx, n.ID, n.Status, StatusCounterAccepted, n.StatusVersion, Update{})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidState
	}
	s.recordTransition(ctx, Event{
		NegotiationID: n.ID,
		FromStatus:    StatusCountered,
		ToStatus:      StatusCounterAccepted,
		ActorType:     "rider",
		ActorID:       &n.RiderID,
		CreatedAt:     time.Now(),
	})
	return s.store.Get(ctx, n.ID)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Negotiation, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListByRide(ctx context.Context, rideID types.ID) ([]*Negotiation, error) {
	return s.store.ListByRide(ctx, rideID)
}

func (s *Service) offerWithinBand(offer, estimate types.Money) bool {
	if estimate.Amount <= 0 {
		return true
	}
	lo := int64(math.Floor(float64(estimate.Amount) * s.cfg.MinOfferRatio))
	hi := int64(math.Ceil(float64(estimate.Amount) * s.cfg.MaxOfferRatio))
	return offer.Amount >= lo && offer.Amount <= hi
}

// recordTransition appends to the persistent event log and, when a publisher
// is wired, emits the event to the bus. Both are best effort: the guarded
// status write is the source of truth.
func (s *Service) recordTransition(ctx context.Context, e Event) {
	_ = s.store.AppendEvent(ctx, &e)
	if s.events != nil {
		_ = s.events.PublishTransition(ctx, e)
	}
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
