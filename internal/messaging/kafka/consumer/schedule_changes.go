package consumer

import (
	"context"
	"encoding/json"

	"github.com/SirTuppy/route-setter-scheduler/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Reader is the part of *kafkago.Reader the consumers use.
type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ChangeSink receives decoded schedule changes.
type ChangeSink interface {
	Submit(evt events.ScheduleChangedEvent)
}

// ConsumeScheduleChanges feeds schedule change events into sink until ctx
// is done. Undecodable messages are committed and skipped.
func ConsumeScheduleChanges(
	ctx context.Context,
	reader Reader,
	sink ChangeSink,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.schedule_changes")
	log.Info("schedule changes consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("schedule changes consumer stopped")
				return
			}
			log.Error("fetch schedule change message failed", zap.Error(err))
			continue
		}

		var event events.ScheduleChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil || event.EntryID == "" {
			log.Error("decode schedule change event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		sink.Submit(event)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit schedule change message failed", zap.Error(err))
			continue
		}

		log.Debug("schedule change accepted",
			zap.String("entry_id", event.EntryID),
			zap.String("event_type", event.EventType),
			zap.String("gym_id", event.GymID),
		)
	}
}
