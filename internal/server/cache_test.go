package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mj1618/organizer-cli/internal/model"
)

type countingLister struct {
	calls int
}

func (l *countingLister) ListWindows(context.Context) []model.MatchedWindow {
	l.calls++
	return []model.MatchedWindow{{Handle: model.Handle(l.calls)}}
}

func TestWindowCacheTTL(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewWindowCache(500 * time.Millisecond)
	c.now = func() time.Time { return now }
	src := &countingLister{}
	ctx := context.Background()

	first := c.ListWindows(ctx, src)
	second := c.ListWindows(ctx, src)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, first, second)

	now = now.Add(time.Second)
	third := c.ListWindows(ctx, src)
	assert.Equal(t, 2, src.calls)
	assert.Equal(t, model.Handle(2), third[0].Handle)

	c.Invalidate()
	c.ListWindows(ctx, src)
	assert.Equal(t, 3, src.calls)
}

func TestWindowCacheDisabled(t *testing.T) {
	c := NewWindowCache(0)
	src := &countingLister{}
	for i := 0; i < 3; i++ {
		c.ListWindows(context.Background(), src)
	}
	assert.Equal(t, 3, src.calls)
}
