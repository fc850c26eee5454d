package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/events"
	"github.com/SirTuppy/route-setter-scheduler/internal/schedule"
	scheduleerrors "github.com/SirTuppy/route-setter-scheduler/internal/schedule/errors"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/dateutil"

	"go.uber.org/zap"
)

const (
	DefaultDebounce = 500 * time.Millisecond
	fetchTimeout    = 5 * time.Second
)

// EntryFetcher loads the current state of a schedule entry.
type EntryFetcher interface {
	GetEntry(ctx context.Context, id string) (schedule.Cell, error)
}

// Debouncer coalesces bursts of change events per entry. Once an entry has
// been quiet for the delay, its latest state is fetched and broadcast.
// Deletions skip the delay.
type Debouncer struct {
	delay   time.Duration
	fetcher EntryFetcher
	out     Broadcaster
	logger  *zap.Logger

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
}

func NewDebouncer(fetcher EntryFetcher, out Broadcaster, delay time.Duration, logger ...*zap.Logger) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	l := zap.L().Named("realtime.debouncer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("realtime.debouncer")
	}
	return &Debouncer{
		delay:   delay,
		fetcher: fetcher,
		out:     out,
		logger:  l,
		timers:  make(map[string]*time.Timer),
	}
}

func (d *Debouncer) Submit(evt events.ScheduleChangedEvent) {
	if evt.EntryID == "" {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.submitLocked(evt)
}

func (d *Debouncer) submitLocked(evt events.ScheduleChangedEvent) {
	if d.stopped {
		return
	}

	if t, ok := d.timers[evt.EntryID]; ok {
		t.Stop()
		delete(d.timers, evt.EntryID)
	}

	if evt.EventType == events.ChangeDelete {
		go d.broadcastRemoval(evt.EntryID, evt.GymID, evt.ScheduleDate)
		return
	}

	// A fired timer may still be waiting on mu while a newer one replaces
	// it, so each callback only clears its own slot.
	var self *time.Timer
	self = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.timers[evt.EntryID] == self {
			delete(d.timers, evt.EntryID)
		}
		d.mu.Unlock()
		d.flush(evt)
	})
	d.timers[evt.EntryID] = self
}

// Pending reports how many entries are waiting for their quiet period.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

// Stop cancels every pending flush. Later submissions are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for id, t := range d.timers {
		t.Stop()
		delete(d.timers, id)
	}
}

func (d *Debouncer) flush(evt events.ScheduleChangedEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	cell, err := d.fetcher.GetEntry(ctx, evt.EntryID)
	if err != nil {
		if errors.Is(err, scheduleerrors.ErrEntryNotFound) {
			d.broadcastRemoval(evt.EntryID, evt.GymID, evt.ScheduleDate)
			return
		}
		d.logger.Error("refetch schedule entry failed",
			zap.String("entry_id", evt.EntryID),
			zap.Error(err),
		)
		return
	}

	raw, err := json.Marshal(cell)
	if err != nil {
		d.logger.Error("encode schedule cell failed", zap.String("entry_id", evt.EntryID), zap.Error(err))
		return
	}

	d.send(ctx, events.CellUpdate{
		EventType: evt.EventType,
		EntryID:   evt.EntryID,
		GymID:     cell.GymID,
		DateKey:   cell.DateKey,
		Entry:     raw,
	})
}

func (d *Debouncer) broadcastRemoval(entryID, gymID, date string) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	update := events.CellUpdate{
		EventType: events.ChangeDelete,
		EntryID:   entryID,
		GymID:     gymID,
	}
	if t, err := dateutil.ParseDBDate(date); err == nil {
		update.DateKey = dateutil.Key(t)
	}
	d.send(ctx, update)
}

func (d *Debouncer) send(ctx context.Context, update events.CellUpdate) {
	if err := d.out.Broadcast(ctx, update); err != nil {
		d.logger.Error("broadcast cell update failed",
			zap.String("entry_id", update.EntryID),
			zap.String("event_type", update.EventType),
			zap.Error(err),
		)
		return
	}
	d.logger.Debug("cell update broadcast",
		zap.String("entry_id", update.EntryID),
		zap.String("event_type", update.EventType),
	)
}
