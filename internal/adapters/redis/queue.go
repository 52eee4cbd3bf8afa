package redisad

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"skideal/internal/domain"
)

// LeadQueue appends handoff leads to a Redis list read by the sales team's
// inbox worker.
type LeadQueue struct {
	c   *redis.Client
	key string
}

func New(addr, pass string, db int, key string) *LeadQueue {
	return &LeadQueue{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		key: key,
	}
}

var _ domain.LeadSink = (*LeadQueue)(nil)

func (q *LeadQueue) Publish(ctx context.Context, l domain.Lead) error {
	b, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshal lead: %w", err)
	}
	if err := q.c.RPush(ctx, q.key, b).Err(); err != nil {
		return fmt.Errorf("rpush %s: %w", q.key, err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (q *LeadQueue) Ping(ctx context.Context) error { return q.c.Ping(ctx).Err() }

func (q *LeadQueue) Close() error { return q.c.Close() }
