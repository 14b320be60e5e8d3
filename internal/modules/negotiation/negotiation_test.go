// README: Negotiation service tests (flow + invalid requests).
package negotiation

import (
	"context"
	"errors"
	"testing"

	"fareline/internal/types"
)

// TestCanTransition verifies the state machine transition table.
func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		// driver responses to a pending offer
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCountered, true},
		{StatusPending, StatusExpired, true},
		// rider resolution of a counter-offer
		{StatusCountered, StatusCounterAccepted, true},
		{StatusCountered, StatusRejected, true},
		{StatusCountered, StatusExpired, true},
		// terminal states have no outgoing transitions
		{StatusAccepted, StatusPending, false},
		{StatusAccepted, StatusCountered, false},
		{StatusRejected, StatusPending, false},
		{StatusCounterAccepted, StatusRejected, false},
		{StatusExpired, StatusPending, false},
		// invalid shortcuts
		{StatusPending, StatusCounterAccepted, false},
		{StatusCountered, StatusAccepted, false},
		{StatusCountered, StatusCountered, false},
		{StatusNone, StatusAccepted, false},
	}
	for _, tc := range cases {
		got := CanTransition(tc.from, tc.to)
		if got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []Status{StatusAccepted, StatusRejected, StatusCounterAccepted, StatusExpired} {
		if !IsTerminal(s) {
			t.Errorf("expected %s to be terminal", s)
		}
	}
	for _, s := range []Status{StatusPending, StatusCountered} {
		if IsTerminal(s) {
			t.Errorf("expected %s to be non-terminal", s)
		}
		if !IsLive(s) {
			t.Errorf("expected %s to be live", s)
		}
	}
}

func TestCounterOfferFlow(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil, DefaultConfig())
	ctx := context.Background()

	n, err := svc.Create(ctx, CreateCommand{
		RideID:  "r1",
		RiderID: "rider1",
		Offer:   types.Money{Amount: 40, Currency: "USD"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if n.Status != StatusPending {
		t.Fatalf("expected pending, got %s", n.Status)
	}

	counter := types.Money{Amount: 45, Currency: "USD"}
	n, err = svc.Respond(ctx, RespondCommand{
		NegotiationID: n.ID,
		DriverID:      "driver1",
		Decision:      DecisionCountered,
		CounterOffer:  &counter,
	})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if n.Status != StatusCountered {
		t.Fatalf("expected countered, got %s", n.Status)
	}
	if n.DriverCounterOffer == nil || n.DriverCounterOffer.Amount != 45 {
		t.Fatalf("expected counter offer 45, got %+v", n.DriverCounterOffer)
	}
	if n.DriverID == nil || *n.DriverID != "driver1" {
		t.Fatalf("expected driver id set on first response, got %+v", n.DriverID)
	}

	n, err = svc.AcceptCounter(ctx, AcceptCounterCommand{NegotiationID: n.ID})
	if err != nil {
		t.Fatalf("accept counter: %v", err)
	}
	if n.Status != StatusCounterAccepted {
		t.Fatalf("expected counter_accepted, got %s", n.Status)
	}

	// terminal: every further transition fails
	if _, err := svc.Respond(ctx, RespondCommand{NegotiationID: n.ID, DriverID: "driver1", Decision: DecisionAccepted}); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("respond after terminal: got %v, want ErrInvalidState", err)
	}
	if _, err := svc.AcceptCounter(ctx, AcceptCounterCommand{NegotiationID: n.ID}); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("accept-counter after terminal: got %v, want ErrInvalidState", err)
	}
}

func TestDirectAccept(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil, DefaultConfig())
	ctx := context.Background()

	n, err := svc.Create(ctx, CreateCommand{RideID: "r_accept", RiderID: "rider1", Offer: types.Money{Amount: 30, Currency: "USD"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	n, err = svc.Respond(ctx, RespondCommand{NegotiationID: n.ID, DriverID: "d1", Decision: DecisionAccepted})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if n.Status != StatusAccepted {
		t.Fatalf("expected accepted, got %s", n.Status)
	}
	if n.DriverCounterOffer != nil {
		t.Fatalf("counter offer must stay unset on direct accept, got %+v", n.DriverCounterOffer)
	}
}

func TestCounterWithoutAmountFails(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil, DefaultConfig())
	ctx := context.Background()

	n, err := svc.Create(ctx, CreateCommand{RideID: "r_counter", RiderID: "rider1", Offer: types.Money{Amount: 30, Currency: "USD"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = svc.Respond(ctx, RespondCommand{NegotiationID: n.ID, DriverID: "d1", Decision: DecisionCountered})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("counter without amount: got %v, want ErrValidation", err)
	}

	bad := types.Money{Amount: -5, Currency: "USD"}
	_, err = svc.Respond(ctx, RespondCommand{NegotiationID: n.ID, DriverID: "d1", Decision: DecisionCountered, CounterOffer: &bad})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("negative counter: got %v, want ErrValidation", err)
	}

	// the failed responses must not have moved the record
	got, err := svc.Get(ctx, n.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusPending {
		t.Fatalf("expected still pending, got %s", got.Status)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil, DefaultConfig())
	ctx := context.Background()
	est := types.Money{Amount: 100, Currency: "USD"}

	cases := []struct {
		name string
		cmd  CreateCommand
		want error
	}{
		{"negative offer", CreateCommand{RideID: "r", RiderID: "p", Offer: types.Money{Amount: -1}}, ErrValidation},
		{"missing ride", CreateCommand{RiderID: "p", Offer: types.Money{Amount: 10}}, ErrValidation},
		{"missing rider", CreateCommand{RideID: "r", Offer: types.Money{Amount: 10}}, ErrValidation},
		{"below band", CreateCommand{RideID: "r", RiderID: "p", Offer: types.Money{Amount: 60}, EstimatedFare: &est}, ErrValidation},
		{"above band", CreateCommand{RideID: "r", RiderID: "p", Offer: types.Money{Amount: 120}, EstimatedFare: &est}, ErrValidation},
		{"band floor", CreateCommand{RideID: "r_floor", RiderID: "p", Offer: types.Money{Amount: 70}, EstimatedFare: &est}, nil},
		{"band ceiling", CreateCommand{RideID: "r_ceil", RiderID: "p", Offer: types.Money{Amount: 110}, EstimatedFare: &est}, nil},
		{"no estimate, any offer", CreateCommand{RideID: "r_free", RiderID: "p", Offer: types.Money{Amount: 1}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.cmd)
			if !errors.Is(err, tc.want) && !(tc.want == nil && err == nil) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCreateConflictOnLiveNegotiation(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil, DefaultConfig())
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateCommand{RideID: "r_live", RiderID: "rider1", Offer: types.Money{Amount: 40, Currency: "USD"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Create(ctx, CreateCommand{RideID: "r_live", RiderID: "rider1", Offer: types.Money{Amount: 42, Currency: "USD"}})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("second create over pending: got %v, want ErrConflict", err)
	}

	// countered still blocks
	counter := types.Money{Amount: 50, Currency: "USD"}
	if _, err := svc.Respond(ctx, RespondCommand{NegotiationID: first.ID, DriverID: "d1", Decision: DecisionCountered, CounterOffer: &counter}); err != nil {
		t.Fatalf("respond: %v", err)
	}
	_, err = svc.Create(ctx, CreateCommand{RideID: "r_live", RiderID: "rider1", Offer: types.Money{Amount: 42, Currency: "USD"}})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("create over countered: got %v, want ErrConflict", err)
	}

	// a ride with only terminal negotiations accepts a new one
	if _, err := svc.AcceptCounter(ctx, AcceptCounterCommand{NegotiationID: first.ID}); err != nil {
		t.Fatalf("accept counter: %v", err)
	}
	if _, err := svc.Create(ctx, CreateCommand{RideID: "r_live", RiderID: "rider1", Offer: types.Money{Amount: 42, Currency: "USD"}}); err != nil {
		t.Fatalf("create after terminal: %v", err)
	}
}

func TestListByRideOrdered(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, nil, DefaultConfig())
	ctx := context.Background()

	var ids []types.ID
	for i := 0; i < 3; i++ {
		n, err := svc.Create(ctx, CreateCommand{RideID: "r_hist", RiderID: "rider1", Offer: types.Money{Amount: int64(40 + i), Currency: "USD"}})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, n.ID)
		if _, err := svc.Respond(ctx, RespondCommand{NegotiationID: n.ID, DriverID: "d1", Decision: DecisionRejected}); err != nil {
			t.Fatalf("reject %d: %v", i, err)
		}
	}

	hist, err := svc.ListByRide(ctx, "r_hist")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(hist) != 3 {
		t.Fatalf("expected 3 records, got %d", len(hist))
	}
	for i, n := range hist {
		if n.ID != ids[i] {
			t.Fatalf("history out of order at %d: got %s, want %s", i, n.ID, ids[i])
		}
	}
}

func TestGetUnknownNegotiation(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil, DefaultConfig())
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestTransitionEventLog(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, nil, DefaultConfig())
	ctx := context.Background()

	n, err := svc.Create(ctx, CreateCommand{RideID: "r_events", RiderID: "rider1", Offer: types.Money{Amount: 40, Currency: "USD"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	counter := types.Money{Amount: 45, Currency: "USD"}
	if _, err := svc.Respond(ctx, RespondCommand{NegotiationID: n.ID, DriverID: "d1", Decision: DecisionCountered, CounterOffer: &counter}); err != nil {
		t.Fatalf("respond: %v", err)
	}
	if _, err := svc.AcceptCounter(ctx, AcceptCounterCommand{NegotiationID: n.ID}); err != nil {
		t.Fatalf("accept counter: %v", err)
	}

	events := store.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	want := []struct {
		from, to Status
		actor    string
	}{
		{StatusNone, StatusPending, "rider"},
		{StatusPending, StatusCountered, "driver"},
		{StatusCountered, StatusCounterAccepted, "rider"},
	}
	for i, w := range want {
		e := events[i]
		if e.FromStatus != w.from || e.ToStatus != w.to || e.ActorType != w.actor {
			t.Fatalf("event %d = %s→%s by %s, want %s→%s by %s", i, e.FromStatus, e.ToStatus, e.ActorType, w.from, w.to, w.actor)
		}
	}
}
