package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/SirTuppy/route-setter-scheduler/internal/events"
	"github.com/SirTuppy/route-setter-scheduler/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type scriptedReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	if m.Value == nil {
		return kafkago.Message{}, errors.New("transient fetch error")
	}
	return m, nil
}

func (r *scriptedReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type recordingSink struct {
	got []events.ScheduleChangedEvent
}

func (s *recordingSink) Submit(evt events.ScheduleChangedEvent) {
	s.got = append(s.got, evt)
}

func TestConsumeScheduleChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	valid, err := json.Marshal(events.ScheduleChangedEvent{
		EventType:    events.ChangeUpdate,
		EntryID:      "e-1",
		GymID:        "denton",
		ScheduleDate: "2025-06-09",
	})
	require.NoError(t, err)

	reader := &scriptedReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Offset: 1, Value: valid},
			{Offset: 2},
			{Offset: 3, Value: []byte("not json")},
			{Offset: 4, Value: []byte(`{"event_type":"UPDATE"}`)},
		},
	}
	sink := &recordingSink{}

	consumer.ConsumeScheduleChanges(ctx, reader, sink, zap.NewNop())

	require.Len(t, sink.got, 1)
	assert.Equal(t, "e-1", sink.got[0].EntryID)
	assert.Equal(t, []int64{1, 3, 4}, reader.committed)
}
