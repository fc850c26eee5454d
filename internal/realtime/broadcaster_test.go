package realtime_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SirTuppy/route-setter-scheduler/internal/events"
	"github.com/SirTuppy/route-setter-scheduler/internal/realtime"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBroadcaster(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	b := realtime.NewRedisBroadcaster(rdb)

	update := events.CellUpdate{EventType: events.ChangeDelete, EntryID: "e-1", GymID: "denton", DateKey: "2025-06-09"}
	payload, err := json.Marshal(update)
	require.NoError(t, err)

	mock.ExpectPublish(events.ScheduleFanoutChannel, payload).SetVal(2)
	require.NoError(t, b.Broadcast(context.Background(), update))

	mock.ExpectPublish(events.ScheduleFanoutChannel, payload).SetErr(assert.AnError)
	assert.ErrorIs(t, b.Broadcast(context.Background(), update), assert.AnError)

	assert.NoError(t, mock.ExpectationsWereMet())
}
