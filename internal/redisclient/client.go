package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client mirrors on-hand inventory counts into Redis for external
// dashboards. The mirror is write-only and best effort: the engine never
// reads it back and failures are only logged by callers.
type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// SetOnHand writes the current balance for one product
func (c *Client) SetOnHand(ctx context.Context, productID int64, quantity int) error {
	key := fmt.Sprintf("inventory:%d", productID)
	return c.rdb.HSet(ctx, key, "on_hand", quantity).Err()
}

// MirrorSnapshot writes all balances in one pipeline
func (c *Client) MirrorSnapshot(ctx context.Context, onHand map[int64]int) error {
	pipe := c.rdb.Pipeline()
	for productID, quantity := range onHand {
		key := fmt.Sprintf("inventory:%d", productID)
		pipe.HSet(ctx, key, "on_hand", quantity)
	}

	_, err := pipe.Exec(ctx)
	return err
}
