// README: Subscription plan service tests.
package plan

import (
	"context"
	"errors"
	"testing"
)

func TestListPlans(t *testing.T) {
	svc := NewService(NewMemoryStore())
	plans := svc.ListPlans(context.Background())
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	if plans[0].ID != "basic" {
		t.Fatalf("catalog order changed: first plan %s", plans[0].ID)
	}
}

func TestSubscribeAndGet(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, "rider1", "commuter")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if sub.PlanID != "commuter" {
		t.Fatalf("got plan %s", sub.PlanID)
	}

	got, err := svc.GetSubscription(ctx, "rider1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PlanID != "commuter" {
		t.Fatalf("got plan %s", got.PlanID)
	}

	// re-subscribing replaces the current plan
	if _, err := svc.Subscribe(ctx, "rider1", "unlimited"); err != nil {
		t.Fatalf("resubscribe: %v", err)
	}
	got, err = svc.GetSubscription(ctx, "rider1")
	if err != nil {
		t.Fatalf("get after resubscribe: %v", err)
	}
	if got.PlanID != "unlimited" {
		t.Fatalf("expected unlimited, got %s", got.PlanID)
	}
}

func TestSubscribeUnknownPlan(t *testing.T) {
	svc := NewService(NewMemoryStore())
	if _, err := svc.Subscribe(context.Background(), "rider1", "platinum"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestGetSubscriptionMissing(t *testing.T) {
	svc := NewService(NewMemoryStore())
	if _, err := svc.GetSubscription(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
