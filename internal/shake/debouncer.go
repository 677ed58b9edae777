// Package shake rate-limits shakes per chat so a burst of /shake commands
// yields a single answer.
package shake

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultWindow is the minimum gap between two shakes in the same chat.
const DefaultWindow = 500 * time.Millisecond

// Debouncer decides whether a shake may go through.
type Debouncer interface {
	// Allow reports whether a shake in chatID is outside the window of the
	// previous accepted one, and records it if so.
	Allow(ctx context.Context, chatID int64) (bool, error)
}

// MemoryDebouncer tracks the last accepted shake of each chat in memory.
type MemoryDebouncer struct {
	window time.Duration
	now    func() time.Time
	last   map[int64]time.Time
	mu     sync.Mutex
}

// NewMemoryDebouncer creates a debouncer with the given window. A zero window
// allows every shake.
func NewMemoryDebouncer(window time.Duration) *MemoryDebouncer {
	return &MemoryDebouncer{
		window: window,
		now:    time.Now,
		last:   make(map[int64]time.Time),
	}
}

// WithClock replaces the time source, for tests.
func (d *MemoryDebouncer) WithClock(now func() time.Time) *MemoryDebouncer {
	d.now = now
	return d
}

func (d *MemoryDebouncer) Allow(_ context.Context, chatID int64) (bool, error) {
	if d.window <= 0 {
		return true, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if prev, ok := d.last[chatID]; ok && now.Sub(prev) < d.window {
		return false, nil
	}
	d.last[chatID] = now
	return true, nil
}

// RedisDebouncer shares shake windows between bot replicas through Redis.
type RedisDebouncer struct {
	client *redis.Client
	window time.Duration
	prefix string
}

// NewRedisDebouncer creates a debouncer storing one expiring key per chat.
func NewRedisDebouncer(client *redis.Client, window time.Duration) *RedisDebouncer {
	return &RedisDebouncer{
		client: client,
		window: window,
		prefix: "eightball:shake:",
	}
}

func (d *RedisDebouncer) key(chatID int64) string {
	return d.prefix + strconv.FormatInt(chatID, 10)
}

func (d *RedisDebouncer) Allow(ctx context.Context, chatID int64) (bool, error) {
	if d.window <= 0 {
		return true, nil
	}

	ok, err := d.client.SetNX(ctx, d.key(chatID), time.Now().UnixMilli(), d.window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record shake: %w", err)
	}
	return ok, nil
}
