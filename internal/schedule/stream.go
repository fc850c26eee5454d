package schedule

import (
	"context"
	"net/http"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const streamKeepAlive = 25 * time.Second

// Subscriber delivers raw messages published on a channel until ctx ends
// or the returned close func is called.
type Subscriber interface {
	Subscribe(ctx context.Context, channel string) (<-chan []byte, func() error, error)
}

type redisSubscriber struct {
	rdb *redis.Client
}

func NewRedisSubscriber(rdb *redis.Client) Subscriber {
	return &redisSubscriber{rdb: rdb}
}

func (s *redisSubscriber) Subscribe(ctx context.Context, channel string) (<-chan []byte, func() error, error) {
	ps := s.rdb.Subscribe(ctx, channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, err
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for msg := range ps.Channel() {
			select {
			case out <- []byte(msg.Payload):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, ps.Close, nil
}

// Stream relays cell updates to the browser as server-sent events.
func (h *Handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	updates, closeFn, err := h.subscriber.Subscribe(ctx, events.ScheduleFanoutChannel)
	if err != nil {
		h.logger.Error("subscribe schedule changes failed", zap.Error(err))
		h.writeServiceError(c, err)
		return
	}
	defer closeFn()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ping := time.NewTicker(streamKeepAlive)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-updates:
			if !ok {
				return
			}
			c.SSEvent("cell", string(msg))
		case <-ping.C:
			c.SSEvent("ping", "")
		}
		c.Writer.Flush()
	}
}
