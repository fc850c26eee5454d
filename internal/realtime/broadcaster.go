package realtime

import (
	"context"
	"encoding/json"

	"github.com/SirTuppy/route-setter-scheduler/internal/events"

	"github.com/redis/go-redis/v9"
)

// Broadcaster fans a cell update out to every API instance.
type Broadcaster interface {
	Broadcast(ctx context.Context, update events.CellUpdate) error
}

type redisBroadcaster struct {
	rdb     *redis.Client
	channel string
}

func NewRedisBroadcaster(rdb *redis.Client) Broadcaster {
	return &redisBroadcaster{rdb: rdb, channel: events.ScheduleFanoutChannel}
}

func (b *redisBroadcaster) Broadcast(ctx context.Context, update events.CellUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, payload).Err()
}
