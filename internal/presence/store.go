package presence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type Store interface {
	Track(ctx context.Context, cellID string, rec Record) (Snapshot, error)
	Untrack(ctx context.Context, cellID, userID string) (Snapshot, error)
	Snapshot(ctx context.Context, cellID string) (Snapshot, error)
	Subscribe(ctx context.Context, cellID string) (<-chan Snapshot, func() error, error)
}

// redisStore keeps each cell as a hash of user id to record and publishes
// the whole snapshot after every change.
type redisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Store {
	l := zap.L().Named("presence.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("presence.store")
	}
	if ttl <= 0 {
		ttl = 2 * DefaultActivityTimeout
	}
	return &redisStore{rdb: rdb, ttl: ttl, logger: l}
}

func (s *redisStore) Track(ctx context.Context, cellID string, rec Record) (Snapshot, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}

	key := Channel(cellID)
	if err := s.rdb.HSet(ctx, key, rec.UserID, data).Err(); err != nil {
		return nil, err
	}
	if err := s.rdb.Expire(ctx, key, s.ttl).Err(); err != nil {
		return nil, err
	}
	return s.sync(ctx, cellID)
}

func (s *redisStore) Untrack(ctx context.Context, cellID, userID string) (Snapshot, error) {
	if err := s.rdb.HDel(ctx, Channel(cellID), userID).Err(); err != nil {
		return nil, err
	}
	return s.sync(ctx, cellID)
}

func (s *redisStore) Snapshot(ctx context.Context, cellID string) (Snapshot, error) {
	raw, err := s.rdb.HGetAll(ctx, Channel(cellID)).Result()
	if err != nil {
		return nil, err
	}

	snap := make(Snapshot, len(raw))
	for userID, v := range raw {
		var rec Record
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			s.logger.Warn("skip malformed presence record",
				zap.String("cell_id", cellID),
				zap.String("user_id", userID),
				zap.Error(err),
			)
			continue
		}
		snap[userID] = rec
	}
	return snap, nil
}

// sync reads the current state and broadcasts it to subscribers.
func (s *redisStore) sync(ctx context.Context, cellID string) (Snapshot, error) {
	snap, err := s.Snapshot(ctx, cellID)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Publish(ctx, Channel(cellID), data).Err(); err != nil {
		s.logger.Warn("publish presence sync failed", zap.String("cell_id", cellID), zap.Error(err))
	}
	return snap, nil
}

func (s *redisStore) Subscribe(ctx context.Context, cellID string) (<-chan Snapshot, func() error, error) {
	ps := s.rdb.Subscribe(ctx, Channel(cellID))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, err
	}

	out := make(chan Snapshot)
	go func() {
		defer close(out)
		for msg := range ps.Channel() {
			var snap Snapshot
			if err := json.Unmarshal([]byte(msg.Payload), &snap); err != nil {
				continue
			}
			select {
			case out <- snap:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, ps.Close, nil
}
