// README: Weather service; serves cached readings and provider lookups.
package weather

import (
	"context"
	"strings"
	"time"

	"fareline/internal/observability"
)

// Provider is the upstream weather source.
type Provider interface {
	Current(ctx context.Context, location string) (Reading, error)
	Forecast(ctx context.Context, location string) ([]ForecastEntry, error)
}

// Cache stores recent readings. A stale or missing entry is a miss.
type Cache interface {
	Get(ctx context.Context, location string) (Reading, bool, error)
	Put(ctx context.Context, location string, r Reading) error
}

const DefaultFreshness = 30 * time.Minute

type Service struct {
	provider  Provider
	cache     Cache
	freshness time.Duration

	now func() time.Time // overridable in tests
}

func NewService(provider Provider, cache Cache, freshness time.Duration) *Service {
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	return &Service{provider: provider, cache: cache, freshness: freshness, now: time.Now}
}

// Current returns the cached reading for location when it is younger than the
// freshness window, otherwise fetches from the provider and caches the result.
// Cache failures are treated as misses; a negotiation must not fail because
// Redis is down.
func (s *Service) Current(ctx context.Context, location string) (Reading, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Reading{}, ErrNotFound
	}

	if r, ok, err := s.cache.Get(ctx, location); err == nil && ok {
		if s.now().Sub(r.RecordedAt) < s.freshness {
			observability.WeatherCacheHits.Inc()
			return r, nil
		}
	}

	r, err := s.provider.Current(ctx, location)
	if err != nil {
		return Reading{}, err
	}
	observability.WeatherFetches.Inc()
	_ = s.cache.Put(ctx, location, r)
	return r, nil
}

// Forecast is served straight from the provider, uncached.
func (s *Service) Forecast(ctx context.Context, location string) ([]ForecastEntry, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrNotFound
	}
	return s.provider.Forecast(ctx, location)
}
