// README: Weather service cache-window tests with a fake provider.
package weather

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeProvider struct {
	calls   int
	reading Reading
	err     error
}

func (f *fakeProvider) Current(ctx context.Context, location string) (Reading, error) {
	f.calls++
	if f.err != nil {
		return Reading{}, f.err
	}
	r := f.reading
	r.Location = location
	return r, nil
}

func (f *fakeProvider) Forecast(ctx context.Context, location string) ([]ForecastEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	entries := make([]ForecastEntry, forecastEntries)
	for i := range entries {
		entries[i] = ForecastEntry{Condition: "Clouds", Temperature: 20}
	}
	return entries, nil
}

func TestCurrentUsesCacheWithinWindow(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	provider := &fakeProvider{reading: Reading{Condition: "Rain", Temperature: 18, RecordedAt: base}}

	svc := NewService(provider, NewMemoryCache(), 30*time.Minute)
	now := base
	svc.now = func() time.Time { return now }

	first, err := svc.Current(ctx, "Taipei")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", provider.calls)
	}

	// 29 minutes later: still inside the freshness window
	now = base.Add(29 * time.Minute)
	second, err := svc.Current(ctx, "Taipei")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("expected cached reading, upstream calls = %d", provider.calls)
	}
	if second != first {
		t.Fatalf("cached reading differs: %+v vs %+v", second, first)
	}

	// 31 minutes later: the window has passed, a fresh fetch is required
	now = base.Add(31 * time.Minute)
	if _, err := svc.Current(ctx, "Taipei"); err != nil {
		t.Fatalf("third call: %v", err)
	}
	if provider.calls != 2 {
		t.Fatalf("expected fresh fetch after window, upstream calls = %d", provider.calls)
	}
}

func TestCurrentCacheIsPerLocation(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{reading: Reading{Condition: "Clear", RecordedAt: time.Now()}}
	svc := NewService(provider, NewMemoryCache(), 30*time.Minute)

	if _, err := svc.Current(ctx, "Taipei"); err != nil {
		t.Fatalf("taipei: %v", err)
	}
	if _, err := svc.Current(ctx, "Kaohsiung"); err != nil {
		t.Fatalf("kaohsiung: %v", err)
	}
	if provider.calls != 2 {
		t.Fatalf("expected one fetch per location, got %d", provider.calls)
	}
}

func TestCurrentUpstreamFailure(t *testing.T) {
	provider := &fakeProvider{err: ErrUpstream}
	svc := NewService(provider, NewMemoryCache(), 30*time.Minute)

	_, err := svc.Current(context.Background(), "Taipei")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("got %v, want ErrUpstream", err)
	}
}

func TestCurrentEmptyLocation(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewService(provider, NewMemoryCache(), 30*time.Minute)

	if _, err := svc.Current(context.Background(), "  "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if provider.calls != 0 {
		t.Fatalf("blank location must not reach the provider")
	}
}

func TestForecastNotCached(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{}
	svc := NewService(provider, NewMemoryCache(), 30*time.Minute)

	entries, err := svc.Forecast(ctx, "Taipei")
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if len(entries) != forecastEntries {
		t.Fatalf("expected %d entries, got %d", forecastEntries, len(entries))
	}
	if _, err := svc.Forecast(ctx, "Taipei"); err != nil {
		t.Fatalf("forecast again: %v", err)
	}
	if provider.calls != 2 {
		t.Fatalf("forecast must hit the provider every time, calls = %d", provider.calls)
	}
}
