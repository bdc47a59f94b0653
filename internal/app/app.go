package app

import (
	"database/sql"

	"go-ats/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the stores, migrates when enabled and mounts every module
// on router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, db, rdb, err := connectStores(cfg)
	if err != nil {
		return nil, err
	}
	cleanup := func() {
		_ = rdb.Close()
		_ = db.Close()
	}

	if cfg.AutoMigrate {
		if err := migrate(gormDB, logger); err != nil {
			cleanup()
			return nil, err
		}
		if err := seedTenant(gormDB, cfg, logger); err != nil {
			cleanup()
			return nil, err
		}
	}

	svc, err := buildServices(cfg, db, gormDB, rdb, logger)
	if err != nil {
		cleanup()
		return nil, err
	}
	registerModules(router, cfg, svc, rdb, logger)

	return cleanup, nil
}

func connectStores(cfg Config) (*gorm.DB, *sql.DB, *redis.Client, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		cfg.ConnectRetries,
	)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := gormDB.DB()
	if err != nil {
		return nil, nil, nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}
	return gormDB, db, rdb, nil
}
