package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SirTuppy/route-setter-scheduler/internal/config"
	"github.com/SirTuppy/route-setter-scheduler/internal/events"
	"github.com/SirTuppy/route-setter-scheduler/internal/messaging/kafka"
	"github.com/SirTuppy/route-setter-scheduler/internal/messaging/kafka/producer"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays outbox rows to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	conns, err := Connect(cfg, false)
	if err != nil {
		return err
	}
	defer conns.Close()

	if err := connection.EnsureTopics(cfg.KafkaBroker, events.ScheduleChangesTopic, events.TimeOffChangesTopic); err != nil {
		logger.Warn("ensure kafka topics failed", zap.Error(err))
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(conns.SQLDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		cfg.Scheduler.Realtime.PollInterval,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
