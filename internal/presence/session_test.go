package presence_test

import (
	"context"
	"testing"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	"github.com/SirTuppy/route-setter-scheduler/internal/presence"
	presenceerrors "github.com/SirTuppy/route-setter-scheduler/internal/presence/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = domain.Actor{UserID: "alice", Email: "alice@gym.test", Role: domain.RoleSetter}
	bob   = domain.Actor{UserID: "bob", Name: "Bob", Role: domain.RoleSetter}
	head  = domain.Actor{UserID: "hank", Name: "Hank", Role: domain.RoleHeadSetter}
)

func testPolicy(clock *fakeClock, heartbeat time.Duration) presence.Policy {
	return presence.Policy{
		ActivityTimeout: time.Minute,
		Heartbeat:       heartbeat,
		Now:             clock.Now,
	}
}

func TestSession_Focus(t *testing.T) {
	ctx := context.Background()
	const cell = "denton-2025-06-02T06:00:00.000Z"

	t.Run("second user is rejected while the lock is live", func(t *testing.T) {
		store := newMemStore()
		clock := &fakeClock{now: time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)}

		first := presence.NewSession(store, alice, cell, testPolicy(clock, time.Hour))
		defer first.Close(ctx)
		snap, err := first.Focus(ctx)
		require.NoError(t, err)
		assert.Equal(t, "alice", snap["alice"].UserName)

		second := presence.NewSession(store, bob, cell, testPolicy(clock, time.Hour))
		_, err = second.Focus(ctx)
		assert.ErrorIs(t, err, presenceerrors.ErrCellLocked)
		assert.False(t, second.Focused())
	})

	t.Run("lock expires after the activity timeout", func(t *testing.T) {
		store := newMemStore()
		clock := &fakeClock{now: time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)}

		first := presence.NewSession(store, alice, cell, testPolicy(clock, time.Hour))
		_, err := first.Focus(ctx)
		require.NoError(t, err)

		clock.Advance(61 * time.Second)

		second := presence.NewSession(store, bob, cell, testPolicy(clock, time.Hour))
		defer second.Close(ctx)
		_, err = second.Focus(ctx)
		assert.NoError(t, err)
		first.Close(ctx)
	})

	t.Run("head setter overrides", func(t *testing.T) {
		store := newMemStore()
		clock := &fakeClock{now: time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)}

		first := presence.NewSession(store, alice, cell, testPolicy(clock, time.Hour))
		defer first.Close(ctx)
		_, err := first.Focus(ctx)
		require.NoError(t, err)

		override := presence.NewSession(store, head, cell, testPolicy(clock, time.Hour))
		defer override.Close(ctx)
		snap, err := override.Focus(ctx)
		require.NoError(t, err)
		assert.Len(t, snap, 2)
	})
}

func TestSession_Heartbeat(t *testing.T) {
	ctx := context.Background()

	t.Run("re-tracks while touched", func(t *testing.T) {
		store := newMemStore()
		clock := &fakeClock{now: time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)}
		s := presence.NewSession(store, alice, "c1", testPolicy(clock, 5*time.Millisecond))

		_, err := s.Focus(ctx)
		require.NoError(t, err)

		assert.Eventually(t, func() bool { return store.trackCount() >= 3 }, time.Second, 5*time.Millisecond)

		_, err = s.Blur(ctx)
		require.NoError(t, err)
		assert.False(t, s.Focused())

		snap, _ := store.Snapshot(ctx, "c1")
		assert.Empty(t, snap)
	})

	t.Run("idle session releases itself", func(t *testing.T) {
		store := newMemStore()
		clock := &fakeClock{now: time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)}
		s := presence.NewSession(store, alice, "c1", testPolicy(clock, 5*time.Millisecond))

		_, err := s.Focus(ctx)
		require.NoError(t, err)
		clock.Advance(2 * time.Minute)

		assert.Eventually(t, func() bool { return !s.Focused() }, time.Second, 5*time.Millisecond)
		assert.Eventually(t, func() bool {
			snap, _ := store.Snapshot(ctx, "c1")
			return len(snap) == 0
		}, time.Second, 5*time.Millisecond)

		_, err = s.Touch(ctx)
		assert.ErrorIs(t, err, presenceerrors.ErrNotFocused)
	})
}

func TestActiveCell(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	clock := &fakeClock{now: time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)}

	var active presence.ActiveCell
	first := presence.NewSession(store, alice, "c1", testPolicy(clock, time.Hour))
	second := presence.NewSession(store, alice, "c2", testPolicy(clock, time.Hour))

	_, err := active.Focus(ctx, first)
	require.NoError(t, err)
	_, err = active.Focus(ctx, second)
	require.NoError(t, err)

	assert.False(t, first.Focused())
	assert.Same(t, second, active.Current())
	c1, _ := store.Snapshot(ctx, "c1")
	assert.Empty(t, c1)

	_, released, err := active.Blur(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, released)

	_, released, err = active.Blur(ctx, "c2")
	require.NoError(t, err)
	assert.True(t, released)
	assert.Nil(t, active.Current())
}
