package app

import (
	"database/sql"

	"github.com/SirTuppy/route-setter-scheduler/internal/config"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// Infra holds the shared connections every binary opens.
type Infra struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.SQLDB != nil {
		_ = i.SQLDB.Close()
	}
}

// Connect opens Postgres and, when withRedis is set, Redis.
func Connect(cfg *config.Config, withRedis bool) (*Infra, error) {
	log := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, connectRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	infra := &Infra{GormDB: gormDB, SQLDB: sqlDB}
	if !withRedis {
		return infra, nil
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		infra.Close()
		return nil, err
	}
	infra.Redis = rdb
	log.Info("redis connection established")

	return infra, nil
}

// BuildApp connects the infrastructure and mounts every module on router.
// The returned Infra must be closed by the caller.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (*Infra, error) {
	infra, err := Connect(cfg, true)
	if err != nil {
		return nil, err
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	if err := registerModules(router, cfg, infra, logger); err != nil {
		infra.Close()
		return nil, err
	}
	return infra, nil
}
