package presence

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	presenceerrors "github.com/SirTuppy/route-setter-scheduler/internal/presence/errors"

	"go.uber.org/zap"
)

const storeCallTimeout = 5 * time.Second

// Session is one client's hold on one cell. While focused it re-tracks the
// caller's record every heartbeat until the client stops touching it for
// longer than the activity timeout.
type Session struct {
	store  Store
	actor  domain.Actor
	cellID string
	policy Policy
	logger *zap.Logger

	mu        sync.Mutex
	focused   bool
	since     time.Time
	lastTouch time.Time
	stop      chan struct{}
	done      chan struct{}
}

func NewSession(store Store, actor domain.Actor, cellID string, policy Policy, logger ...*zap.Logger) *Session {
	l := zap.L().Named("presence.session")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("presence.session")
	}
	return &Session{
		store:  store,
		actor:  actor,
		cellID: cellID,
		policy: policy,
		logger: l.With(zap.String("cell_id", cellID), zap.String("user_id", actor.UserID)),
	}
}

func (s *Session) CellID() string { return s.cellID }

func (s *Session) Focused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused
}

// Focus claims the cell. It fails when another user holds a live lock,
// unless the actor may override soft locks.
func (s *Session) Focus(ctx context.Context) (Snapshot, error) {
	snap, err := s.store.Snapshot(ctx, s.cellID)
	if err != nil {
		return nil, err
	}

	now := s.policy.now()
	if holder, locked := snap.LockedByOther(s.actor.UserID, now, s.policy.timeout()); locked {
		if !s.actor.CanOverride() {
			return snap, presenceerrors.ErrCellLocked.WithDetails(map[string]any{
				"user_id":   holder.UserID,
				"user_name": holder.UserName,
			})
		}
		s.logger.Info("soft lock overridden", zap.String("holder_id", holder.UserID))
	}

	s.mu.Lock()
	if !s.focused {
		s.since = now
	}
	s.lastTouch = now
	s.mu.Unlock()

	snap, err = s.track(ctx, now)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if !s.focused {
		s.focused = true
		s.stop = make(chan struct{})
		s.done = make(chan struct{})
		go s.heartbeat(s.stop, s.done)
	}
	s.mu.Unlock()

	return snap, nil
}

// Touch records client activity and re-broadcasts the record.
func (s *Session) Touch(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if !s.focused {
		s.mu.Unlock()
		return nil, presenceerrors.ErrNotFocused
	}
	now := s.policy.now()
	s.lastTouch = now
	s.mu.Unlock()

	return s.track(ctx, now)
}

// Blur releases the cell. Blurring an unfocused session only untracks.
func (s *Session) Blur(ctx context.Context) (Snapshot, error) {
	s.stopHeartbeat()
	return s.store.Untrack(ctx, s.cellID, s.actor.UserID)
}

func (s *Session) Close(ctx context.Context) error {
	if !s.Focused() {
		return nil
	}
	_, err := s.Blur(ctx)
	return err
}

func (s *Session) stopHeartbeat() {
	s.mu.Lock()
	if !s.focused {
		s.mu.Unlock()
		return
	}
	s.focused = false
	stop, done := s.stop, s.done
	s.mu.Unlock()

	close(stop)
	<-done
}

func (s *Session) heartbeat(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.policy.heartbeat())
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		now := s.policy.now()
		s.mu.Lock()
		idle := now.Sub(s.lastTouch)
		s.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), storeCallTimeout)
		if idle >= s.policy.timeout() {
			s.mu.Lock()
			s.focused = false
			s.mu.Unlock()
			if _, err := s.store.Untrack(ctx, s.cellID, s.actor.UserID); err != nil {
				s.logger.Warn("release idle presence failed", zap.Error(err))
			}
			cancel()
			s.logger.Info("presence released after inactivity", zap.Duration("idle", idle))
			return
		}
		if _, err := s.track(ctx, now); err != nil {
			s.logger.Warn("presence heartbeat failed", zap.Error(err))
		}
		cancel()
	}
}

func (s *Session) track(ctx context.Context, now time.Time) (Snapshot, error) {
	s.mu.Lock()
	since := s.since
	s.mu.Unlock()

	return s.store.Track(ctx, s.cellID, Record{
		UserID:       s.actor.UserID,
		UserName:     displayName(s.actor),
		Timestamp:    since,
		LastActivity: now,
		IsEditing:    true,
	})
}

func displayName(actor domain.Actor) string {
	if actor.Name != "" {
		return actor.Name
	}
	if local, _, ok := strings.Cut(actor.Email, "@"); ok && local != "" {
		return local
	}
	return "Unknown User"
}
