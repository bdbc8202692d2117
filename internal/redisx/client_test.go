package redisx_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanlaundrydahej/laundry-app/internal/redisx"
)

// memCmdable implements just SetNX; any other command panics.
type memCmdable struct {
	redis.Cmdable

	mu   sync.Mutex
	keys map[string]time.Duration
	err  error
}

func (m *memCmdable) SetNX(ctx context.Context, key string, _ interface{}, exp time.Duration) *redis.BoolCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return redis.NewBoolResult(false, m.err)
	}
	if _, ok := m.keys[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	m.keys[key] = exp
	return redis.NewBoolResult(true, nil)
}

func TestDeduper_FirstSeen(t *testing.T) {
	mem := &memCmdable{keys: map[string]time.Duration{}}
	d := &redisx.Deduper{Client: mem, Service: "notifier"}
	ctx := context.Background()

	first, err := d.FirstSeen(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := d.FirstSeen(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, again)

	other, err := d.FirstSeen(ctx, "evt-2")
	require.NoError(t, err)
	assert.True(t, other)

	assert.Equal(t, redisx.TTLDedup, mem.keys["dedup:notifier:evt-1"])
}

func TestDeduper_CustomTTLAndError(t *testing.T) {
	mem := &memCmdable{keys: map[string]time.Duration{}}
	d := &redisx.Deduper{Client: mem, Service: "svc", TTL: time.Minute}

	_, err := d.FirstSeen(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mem.keys["dedup:svc:x"])

	mem.err = errors.New("dial tcp: connection refused")
	_, err = d.FirstSeen(context.Background(), "y")
	assert.Error(t, err)
}
