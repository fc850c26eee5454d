package presence_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/presence"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Track(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := presence.NewRedisStore(rdb, 2*time.Minute)

	cellID := presence.CellID("denton", "2025-06-02T06:00:00.000Z")
	key := presence.Channel(cellID)
	at := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)
	rec := presence.Record{UserID: "alice", UserName: "alice", Timestamp: at, LastActivity: at, IsEditing: true}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	snapJSON, err := json.Marshal(presence.Snapshot{"alice": rec})
	require.NoError(t, err)

	mock.ExpectHSet(key, "alice", data).SetVal(1)
	mock.ExpectExpire(key, 2*time.Minute).SetVal(true)
	mock.ExpectHGetAll(key).SetVal(map[string]string{"alice": string(data)})
	mock.ExpectPublish(key, snapJSON).SetVal(1)

	snap, err := store.Track(context.Background(), cellID, rec)

	require.NoError(t, err)
	assert.Equal(t, rec, snap["alice"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Untrack(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := presence.NewRedisStore(rdb, time.Minute)

	key := presence.Channel("denton-x")
	mock.ExpectHDel(key, "alice").SetVal(1)
	mock.ExpectHGetAll(key).SetVal(map[string]string{})
	mock.ExpectPublish(key, []byte("{}")).SetVal(0)

	snap, err := store.Untrack(context.Background(), "denton-x", "alice")

	require.NoError(t, err)
	assert.Empty(t, snap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Snapshot(t *testing.T) {
	t.Run("skips malformed records", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := presence.NewRedisStore(rdb, time.Minute)

		mock.ExpectHGetAll(presence.Channel("c1")).SetVal(map[string]string{
			"alice": `{"user_id":"alice","isEditing":true}`,
			"bob":   `not json`,
		})

		snap, err := store.Snapshot(context.Background(), "c1")

		require.NoError(t, err)
		assert.Len(t, snap, 1)
		assert.True(t, snap["alice"].IsEditing)
	})

	t.Run("redis error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := presence.NewRedisStore(rdb, time.Minute)

		mock.ExpectHGetAll(presence.Channel("c1")).SetErr(errors.New("connection refused"))

		_, err := store.Snapshot(context.Background(), "c1")
		assert.Error(t, err)
	})
}
