package main

import (
	"github.com/SirTuppy/route-setter-scheduler/internal/app"
	"github.com/SirTuppy/route-setter-scheduler/internal/config"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/logging"

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

	if err := app.RunWorker(cfg); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
