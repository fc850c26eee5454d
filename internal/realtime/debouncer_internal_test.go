package realtime

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/events"
	"github.com/SirTuppy/route-setter-scheduler/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingFetcher struct {
	mu    sync.Mutex
	calls int
}

func (f *countingFetcher) GetEntry(ctx context.Context, id string) (schedule.Cell, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return schedule.Cell{EntryID: id, GymID: "denton"}, nil
}

func (f *countingFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type discardBroadcaster struct{}

func (discardBroadcaster) Broadcast(ctx context.Context, update events.CellUpdate) error { return nil }

func TestDebouncer_FiredTimerKeepsReplacement(t *testing.T) {
	const delay = 50 * time.Millisecond
	fetcher := &countingFetcher{}
	d := NewDebouncer(fetcher, discardBroadcaster{}, delay, zap.NewNop())
	evt := events.ScheduleChangedEvent{EventType: events.ChangeUpdate, EntryID: "e-1", GymID: "denton", ScheduleDate: "2025-06-09"}

	d.Submit(evt)

	// Hold the lock past the first deadline so its callback queues behind a
	// resubmission of the same entry.
	d.mu.Lock()
	time.Sleep(3 * delay)
	d.submitLocked(evt)
	d.mu.Unlock()

	require.Eventually(t, func() bool { return fetcher.count() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, 1, d.Pending())

	d.Stop()
	time.Sleep(3 * delay)
	assert.Equal(t, 1, fetcher.count())
}
