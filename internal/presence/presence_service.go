package presence

import (
	"context"
	"sync"

	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	presenceerrors "github.com/SirTuppy/route-setter-scheduler/internal/presence/errors"
	"github.com/SirTuppy/route-setter-scheduler/internal/schedule"
	scheduleerrors "github.com/SirTuppy/route-setter-scheduler/internal/schedule/errors"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/dateutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=presence_service.go -destination=mock/presence_service_mock.go -package=mock
type Service interface {
	Focus(ctx context.Context, actor domain.Actor, cell string) (View, error)
	Heartbeat(ctx context.Context, actor domain.Actor, cell string) (View, error)
	Blur(ctx context.Context, actor domain.Actor, cell string) (View, error)
	Presence(ctx context.Context, actor domain.Actor, cell string) (View, error)
	Watch(ctx context.Context, actor domain.Actor, cell string) (<-chan View, func() error, error)
	Close(ctx context.Context) error
}

type service struct {
	store    Store
	calendar *dateutil.Calendar
	policy   Policy
	logger   *zap.Logger

	mu      sync.Mutex
	clients map[string]*ActiveCell
}

func NewService(store Store, calendar *dateutil.Calendar, policy Policy, logger ...*zap.Logger) Service {
	l := zap.L().Named("presence.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("presence.service")
	}
	return &service{
		store:    store,
		calendar: calendar,
		policy:   policy,
		logger:   l,
		clients:  make(map[string]*ActiveCell),
	}
}

func (s *service) Focus(ctx context.Context, actor domain.Actor, cell string) (View, error) {
	cellID, holiday, err := s.parseCell(cell)
	if err != nil {
		return View{}, err
	}
	if holiday {
		return View{}, scheduleerrors.ErrHolidayReadOnly
	}

	active := s.client(actor.UserID)
	if cur := active.Current(); cur != nil && cur.CellID() == cellID {
		snap, err := cur.Touch(ctx)
		if err != nil {
			return View{}, err
		}
		return s.view(cellID, actor, snap, false), nil
	}

	session := NewSession(s.store, actor, cellID, s.policy, s.logger)
	snap, err := active.Focus(ctx, session)
	if err != nil {
		return View{}, err
	}
	s.logger.Debug("cell focused", zap.String("cell_id", cellID), zap.String("user_id", actor.UserID))
	return s.view(cellID, actor, snap, false), nil
}

func (s *service) Heartbeat(ctx context.Context, actor domain.Actor, cell string) (View, error) {
	cellID, _, err := s.parseCell(cell)
	if err != nil {
		return View{}, err
	}

	cur := s.client(actor.UserID).Current()
	if cur == nil || cur.CellID() != cellID {
		return View{}, presenceerrors.ErrNotFocused
	}
	snap, err := cur.Touch(ctx)
	if err != nil {
		return View{}, err
	}
	return s.view(cellID, actor, snap, false), nil
}

// Blur always untracks the caller, so a client that lost its session can
// still clear a record it left behind.
func (s *service) Blur(ctx context.Context, actor domain.Actor, cell string) (View, error) {
	cellID, holiday, err := s.parseCell(cell)
	if err != nil {
		return View{}, err
	}

	snap, released, err := s.client(actor.UserID).Blur(ctx, cellID)
	if err != nil {
		return View{}, err
	}
	if !released {
		snap, err = s.store.Untrack(ctx, cellID, actor.UserID)
		if err != nil {
			return View{}, err
		}
	}
	return s.view(cellID, actor, snap, holiday), nil
}

func (s *service) Presence(ctx context.Context, actor domain.Actor, cell string) (View, error) {
	cellID, holiday, err := s.parseCell(cell)
	if err != nil {
		return View{}, err
	}
	snap, err := s.store.Snapshot(ctx, cellID)
	if err != nil {
		return View{}, err
	}
	return s.view(cellID, actor, snap, holiday), nil
}

// Watch streams actor's view of a cell, starting with the current state and
// then once per presence change, until ctx ends or the close func is called.
func (s *service) Watch(ctx context.Context, actor domain.Actor, cell string) (<-chan View, func() error, error) {
	cellID, holiday, err := s.parseCell(cell)
	if err != nil {
		return nil, nil, err
	}

	// Subscribe first so no change between the read and the subscription is lost.
	snaps, closeFn, err := s.store.Subscribe(ctx, cellID)
	if err != nil {
		s.logger.Error("subscribe presence failed", zap.String("cell_id", cellID), zap.Error(err))
		return nil, nil, err
	}
	current, err := s.store.Snapshot(ctx, cellID)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}

	out := make(chan View, 1)
	out <- s.view(cellID, actor, current, holiday)
	go func() {
		defer close(out)
		for snap := range snaps {
			select {
			case out <- s.view(cellID, actor, snap, holiday):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, closeFn, nil
}

// Close releases every cell held through this instance.
func (s *service) Close(ctx context.Context) error {
	s.mu.Lock()
	clients := s.clients
	s.clients = make(map[string]*ActiveCell)
	s.mu.Unlock()

	var firstErr error
	for _, c := range clients {
		if err := c.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *service) client(userID string) *ActiveCell {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[userID]
	if !ok {
		c = &ActiveCell{}
		s.clients[userID] = c
	}
	return c
}

// parseCell accepts "{gymId}-{dateKey}" or "{gymId}-{YYYY-MM-DD}" and
// returns the canonical cell id.
func (s *service) parseCell(cell string) (string, bool, error) {
	gymID, rawDate, ok := schedule.CellKey(cell).Split()
	if !ok || gymID == "" {
		return "", false, presenceerrors.ErrInvalidCell
	}
	d, err := dateutil.ParseKey(rawDate)
	if err != nil {
		return "", false, presenceerrors.ErrInvalidCell
	}
	return CellID(gymID, dateutil.Key(d)), s.calendar.IsHoliday(d), nil
}

func (s *service) view(cellID string, actor domain.Actor, snap Snapshot, readOnly bool) View {
	now := s.policy.now()
	v := View{
		CellID:    cellID,
		State:     snap.State(actor.UserID, now, s.policy.timeout()),
		Border:    snap.Border(actor.UserID),
		ReadOnly:  readOnly,
		Occupants: make([]Occupant, 0, len(snap)),
	}
	if holder, locked := snap.LockedByOther(actor.UserID, now, s.policy.timeout()); locked {
		v.Locked = !actor.CanOverride()
		v.LockedBy = &holder
	}
	for _, r := range snap.sorted() {
		v.Occupants = append(v.Occupants, Occupant{Record: r, Color: UserColor(r.UserID)})
	}
	return v
}
