// Package realtime announces ledger collection changes over Redis pub/sub.
package realtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/bizportal/backend/internal/application/adapter"
)

const channelPrefix = "ledger:changed:"

// RedisNotifier implements adapter.ChangeNotifier with Redis pub/sub.
type RedisNotifier struct {
	client *redis.Client
}

// NewRedisNotifier creates a new Redis change notifier.
func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

// Publish announces a change of collection to every subscriber.
func (n *RedisNotifier) Publish(ctx context.Context, collection adapter.LedgerCollection) error {
	if err := n.client.Publish(ctx, channelName(collection), "changed").Err(); err != nil {
		return fmt.Errorf("failed to publish %s change: %w", collection, err)
	}
	return nil
}

// Subscribe returns a channel that ticks on every change of collection. Bursts
// of changes collapse into a single pending tick. The channel is closed when
// ctx is done.
func (n *RedisNotifier) Subscribe(ctx context.Context, collection adapter.LedgerCollection) (<-chan struct{}, error) {
	pubsub := n.client.Subscribe(ctx, channelName(collection))

	// Wait for the subscription to be confirmed so no publish is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s changes: %w", collection, err)
	}

	ticks := make(chan struct{}, 1)
	messages := pubsub.Channel()

	go func() {
		defer close(ticks)
		defer func() {
			if err := pubsub.Close(); err != nil {
				slog.Warn("Failed to close ledger subscription", "collection", collection, "error", err)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-messages:
				if !ok {
					return
				}
				select {
				case ticks <- struct{}{}:
				default:
				}
			}
		}
	}()

	return ticks, nil
}

func channelName(collection adapter.LedgerCollection) string {
	return channelPrefix + string(collection)
}

// Ensure RedisNotifier implements adapter.ChangeNotifier.
var _ adapter.ChangeNotifier = (*RedisNotifier)(nil)
