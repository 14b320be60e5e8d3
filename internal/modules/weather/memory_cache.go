// README: In-memory reading cache for tests and cache-less local runs.
package weather

import (
	"context"
	"strings"
	"sync"
)

// MemoryCache never evicts; the service's own RecordedAt age check handles
// freshness, so behaviour matches the TTL-bearing Redis cache.
type MemoryCache struct {
	mu   sync.Mutex
	rows map[string]Reading
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{rows: make(map[string]Reading)}
}

func (c *MemoryCache) Get(ctx context.Context, location string) (Reading, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.rows[strings.ToLower(strings.TrimSpace(location))]
	return r, ok, nil
}

func (c *MemoryCache) Put(ctx context.Context, location string, r Reading) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows[strings.ToLower(strings.TrimSpace(location))] = r
	return nil
}
