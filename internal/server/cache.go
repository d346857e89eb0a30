package server

import (
	"context"
	"sync"
	"time"

	"github.com/mj1618/organizer-cli/internal/model"
)

// lister enumerates matching windows.
type lister interface {
	ListWindows(ctx context.Context) []model.MatchedWindow
}

// WindowCache provides a TTL-based cache for window enumerations.
type WindowCache struct {
	mu        sync.Mutex
	windows   []model.MatchedWindow
	timestamp time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewWindowCache creates a new cache. A ttl of 0 disables caching.
func NewWindowCache(ttl time.Duration) *WindowCache {
	return &WindowCache{ttl: ttl, now: time.Now}
}

// ListWindows returns the cached list if within TTL, otherwise enumerates
// fresh.
func (c *WindowCache) ListWindows(ctx context.Context, src lister) []model.MatchedWindow {
	if c.ttl == 0 {
		return src.ListWindows(ctx)
	}

	c.mu.Lock()
	if !c.timestamp.IsZero() && c.now().Sub(c.timestamp) < c.ttl {
		windows := c.windows
		c.mu.Unlock()
		return windows
	}
	c.mu.Unlock()

	windows := src.ListWindows(ctx)

	c.mu.Lock()
	c.windows = windows
	c.timestamp = c.now()
	c.mu.Unlock()

	return windows
}

// Invalidate drops the cached list.
func (c *WindowCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.windows = nil
	c.timestamp = time.Time{}
}
