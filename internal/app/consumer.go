package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SirTuppy/route-setter-scheduler/internal/config"
	"github.com/SirTuppy/route-setter-scheduler/internal/events"
	"github.com/SirTuppy/route-setter-scheduler/internal/gym"
	"github.com/SirTuppy/route-setter-scheduler/internal/messaging/kafka/consumer"
	"github.com/SirTuppy/route-setter-scheduler/internal/realtime"
	"github.com/SirTuppy/route-setter-scheduler/internal/schedule"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/dateutil"
	"github.com/SirTuppy/route-setter-scheduler/internal/user"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const scheduleChangesGroup = "route-setter-scheduler-realtime"

// RunConsumer turns the schedule change feed into debounced cell updates on
// Redis until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	conns, err := Connect(cfg, true)
	if err != nil {
		return err
	}
	defer conns.Close()

	calendar, err := dateutil.NewCalendar(cfg.Scheduler.Holidays)
	if err != nil {
		return err
	}

	gymService := gym.NewService(conns.SQLDB, gym.NewRepository(conns.GormDB), conns.Redis, logger)
	userService := user.NewService(user.NewRepository(conns.GormDB), logger)
	scheduleService := schedule.NewService(
		conns.SQLDB,
		schedule.NewRepository(conns.GormDB),
		gymService,
		userService,
		calendar,
		nil,
		logger,
	)

	debouncer := realtime.NewDebouncer(
		scheduleService,
		realtime.NewRedisBroadcaster(conns.Redis),
		cfg.Scheduler.Realtime.Debounce,
		logger,
	)
	defer debouncer.Stop()

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.ScheduleChangesTopic,
		GroupID:        scheduleChangesGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.LastOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeScheduleChanges(ctx, reader, debouncer, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
