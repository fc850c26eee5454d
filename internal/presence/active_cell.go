package presence

import (
	"context"
	"sync"
)

// ActiveCell is the one cell a client is focused on. Focusing another cell
// blurs the previous one first.
type ActiveCell struct {
	mu      sync.Mutex
	current *Session
}

func (a *ActiveCell) Current() *Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current != nil && !a.current.Focused() {
		a.current = nil
	}
	return a.current
}

func (a *ActiveCell) Focus(ctx context.Context, next *Session) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if prev := a.current; prev != nil && prev != next {
		if _, err := prev.Blur(ctx); err != nil {
			return nil, err
		}
		a.current = nil
	}

	snap, err := next.Focus(ctx)
	if err != nil {
		return snap, err
	}
	a.current = next
	return snap, nil
}

// Blur releases cellID if it is the active cell.
func (a *ActiveCell) Blur(ctx context.Context, cellID string) (Snapshot, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil || a.current.CellID() != cellID {
		return nil, false, nil
	}
	snap, err := a.current.Blur(ctx)
	a.current = nil
	return snap, true, err
}

func (a *ActiveCell) Close(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return nil
	}
	err := a.current.Close(ctx)
	a.current = nil
	return err
}
