package app

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go-integration/internal/config"
	"go-integration/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the wired container and the optional infrastructure behind it.
type App struct {
	cfg       *config.Config
	container *container
	db        *gorm.DB
	rdb       *redis.Client
	logger    *zap.Logger

	wg      sync.WaitGroup
	closers []io.Closer
}

// BuildApp connects optional infrastructure, wires every module and
// registers its routes on router.
func BuildApp(ctx context.Context, cfg *config.Config, router *gin.Engine, logger *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger.Named("app")}

	if cfg.DB.Enabled() {
		db, err := connection.ConnectGORMWithRetry(cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := migrate(db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		a.db = db
		a.logger.Info("rules and audit trail persisted in postgres")
	} else {
		a.logger.Info("DB_HOST not set, rules and audit trail kept in memory")
	}

	if cfg.Redis.Enabled() {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.rdb = rdb
	}

	c, err := newContainer(ctx, cfg, a.db, a.rdb, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.container = c

	registerModules(router, c, cfg, a.rdb, logger)
	return a, nil
}

// Start launches the background loops. They stop when ctx is cancelled;
// Wait blocks until they have.
func (a *App) Start(ctx context.Context) {
	if a.cfg.Hub.MetricsInterval > 0 {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			a.container.dashboard.Run(ctx, a.cfg.Hub.MetricsInterval)
		}()
	}

	if a.cfg.Kafka.Enabled() {
		a.closers = append(a.closers, startConsumers(ctx, &a.wg, a.cfg.Kafka, a.container, a.logger)...)
	}
}

func (a *App) Wait() {
	a.wg.Wait()
}

// Close releases connections and readers. Safe to call more than once.
func (a *App) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("close kafka reader failed", zap.Error(err))
		}
	}
	a.closers = nil

	if a.container != nil && a.container.unsubscribeRules != nil {
		a.container.unsubscribeRules()
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Warn("close redis failed", zap.Error(err))
		}
		a.rdb = nil
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		a.db = nil
	}
}
