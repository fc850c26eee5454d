package presence_test

import (
	"context"
	"sync"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/presence"
)

// memStore is an in-process Store for session tests.
type memStore struct {
	mu     sync.Mutex
	cells  map[string]presence.Snapshot
	subs   map[string][]chan presence.Snapshot
	tracks int
}

func newMemStore() *memStore {
	return &memStore{
		cells: make(map[string]presence.Snapshot),
		subs:  make(map[string][]chan presence.Snapshot),
	}
}

func (m *memStore) Track(ctx context.Context, cellID string, rec presence.Record) (presence.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cells[cellID] == nil {
		m.cells[cellID] = presence.Snapshot{}
	}
	m.cells[cellID][rec.UserID] = rec
	m.tracks++
	m.publish(cellID)
	return m.copy(cellID), nil
}

func (m *memStore) Untrack(ctx context.Context, cellID, userID string) (presence.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cells[cellID], userID)
	m.publish(cellID)
	return m.copy(cellID), nil
}

func (m *memStore) Snapshot(ctx context.Context, cellID string) (presence.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copy(cellID), nil
}

func (m *memStore) Subscribe(ctx context.Context, cellID string) (<-chan presence.Snapshot, func() error, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan presence.Snapshot, 8)
	m.subs[cellID] = append(m.subs[cellID], ch)

	var once sync.Once
	return ch, func() error {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			subs := m.subs[cellID]
			for i, c := range subs {
				if c == ch {
					m.subs[cellID] = append(subs[:i], subs[i+1:]...)
					break
				}
			}
			close(ch)
		})
		return nil
	}, nil
}

// publish must be called with mu held.
func (m *memStore) publish(cellID string) {
	for _, ch := range m.subs[cellID] {
		select {
		case ch <- m.copy(cellID):
		default:
		}
	}
}

func (m *memStore) trackCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tracks
}

func (m *memStore) copy(cellID string) presence.Snapshot {
	out := presence.Snapshot{}
	for k, v := range m.cells[cellID] {
		out[k] = v
	}
	return out
}

// fakeClock is a settable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
