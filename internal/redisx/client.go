package redisx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

// Deduper remembers which events a service already handled.
type Deduper struct {
	Client  redis.Cmdable
	Service string
	TTL     time.Duration
}

// FirstSeen marks id as handled and reports whether this call was the first
// to do so. SETNX keeps concurrent consumers from both winning.
func (d *Deduper) FirstSeen(ctx context.Context, id string) (bool, error) {
	ttl := d.TTL
	if ttl <= 0 {
		ttl = TTLDedup
	}
	return d.Client.SetNX(ctx, fmt.Sprintf(KeyDedup, d.Service, id), "1", ttl).Result()
}
