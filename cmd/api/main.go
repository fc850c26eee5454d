package main

import (
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/app"
	"github.com/SirTuppy/route-setter-scheduler/internal/bootstrap"
	"github.com/SirTuppy/route-setter-scheduler/internal/config"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/logging"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.New(cfg.Env)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	infra, err := app.BuildApp(r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer infra.Close()

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:        cfg.Port,
			ReadTimeout: 5 * time.Second,
			// zero so the schedule event stream is not cut off
			WriteTimeout: 0,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewZapAuditLogger(logger),
	)
}
