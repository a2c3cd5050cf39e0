package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AttemptedCollective/Airbox/internal/domain"
	"github.com/AttemptedCollective/Airbox/pkg/e"
)

// LocationQueue is the Redis list the API pushes location-update events to
// and the webhook sender drains.
type LocationQueue struct {
	client *redis.Client
	key    string
}

func NewLocationQueue(client *redis.Client, key string) *LocationQueue {
	return &LocationQueue{client: client, key: key}
}

func (q *LocationQueue) Enqueue(ctx context.Context, event domain.LocationEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

// BRPop blocks up to timeout waiting for the next event. e.ErrQueueEmpty is
// returned when the wait expires with nothing queued.
func (q *LocationQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.LocationEvent, error) {
	var event domain.LocationEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return event, e.ErrQueueEmpty
		}
		return event, err
	}
	if len(res) < 2 {
		return event, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &event); err != nil {
		return event, err
	}
	return event, nil
}
