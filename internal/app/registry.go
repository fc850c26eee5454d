package app

import (
	"github.com/SirTuppy/route-setter-scheduler/internal/config"
	"github.com/SirTuppy/route-setter-scheduler/internal/crew"
	"github.com/SirTuppy/route-setter-scheduler/internal/export"
	"github.com/SirTuppy/route-setter-scheduler/internal/gym"
	"github.com/SirTuppy/route-setter-scheduler/internal/messaging/kafka"
	"github.com/SirTuppy/route-setter-scheduler/internal/middleware"
	"github.com/SirTuppy/route-setter-scheduler/internal/presence"
	"github.com/SirTuppy/route-setter-scheduler/internal/rbac"
	"github.com/SirTuppy/route-setter-scheduler/internal/rbac/infra"
	"github.com/SirTuppy/route-setter-scheduler/internal/schedule"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/dateutil"
	"github.com/SirTuppy/route-setter-scheduler/internal/timeoff"
	"github.com/SirTuppy/route-setter-scheduler/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	conns *Infra,
	logger *zap.Logger,
) error {
	db, gormDB, rdb := conns.SQLDB, conns.GormDB, conns.Redis

	calendar, err := dateutil.NewCalendar(cfg.Scheduler.Holidays)
	if err != nil {
		return err
	}

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return err
	}

	// --- Repositories ---
	gymRepo := gym.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	crewRepo := crew.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	timeoffRepo := timeoff.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	gymService := gym.NewService(db, gymRepo, rdb, logger)
	userService := user.NewService(userRepo, logger)
	crewService := crew.NewService(db, crewRepo, userService, logger)
	scheduleService := schedule.NewService(db, scheduleRepo, gymService, userService, calendar, outboxRepo, logger)
	timeoffService := timeoff.NewService(db, timeoffRepo, scheduleService, crewService, calendar, outboxRepo, logger)
	exportService := export.NewService(gymService, scheduleRepo, logger)

	policy := presence.DefaultPolicy()
	if cfg.Scheduler.Presence.ActivityTimeout > 0 {
		policy.ActivityTimeout = cfg.Scheduler.Presence.ActivityTimeout
	}
	if cfg.Scheduler.Presence.Heartbeat > 0 {
		policy.Heartbeat = cfg.Scheduler.Presence.Heartbeat
	}
	presenceStore := presence.NewRedisStore(rdb, cfg.Scheduler.Presence.KeyTTL, logger)
	presenceService := presence.NewService(presenceStore, calendar, policy, logger)

	// --- Handlers ---
	gymHandler := gym.NewHandler(gymService, logger)
	userHandler := user.NewHandler(userService, logger)
	crewHandler := crew.NewHandler(crewService, logger)
	scheduleHandler := schedule.NewHandler(scheduleService, schedule.NewRedisSubscriber(rdb), logger)
	presenceHandler := presence.NewHandler(presenceService, logger)
	timeoffHandler := timeoff.NewHandler(timeoffService, rdb, logger)
	exportHandler := export.NewHandler(exportService, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.ContextLogger(logger))
	{
		gym.RegisterRoutes(api, gymHandler, rbacService)
		user.RegisterRoutes(api, userHandler, rbacService)
		crew.RegisterRoutes(api, crewHandler, rbacService)
		schedule.RegisterRoutes(api, scheduleHandler, rbacService)
		presence.RegisterRoutes(api, presenceHandler, rbacService)
		timeoff.RegisterRoutes(api, timeoffHandler, rbacService, rdb)
		export.RegisterRoutes(api, exportHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
