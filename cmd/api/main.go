package main

import (
	"context"
	"os/signal"
	"syscall"

	"go-integration/internal/app"
	"go-integration/internal/bootstrap"
	"go-integration/internal/config"
	"go-integration/internal/shared/apperror"

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

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// build dependency + routes
	a, err := app.BuildApp(ctx, cfg, r, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer a.Close()
	a.Start(ctx)

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)
	srv := bootstrap.NewServer(r, cfg.Server, auditLogger, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error("http server stopped", zap.Error(err))
		stop()
	}

	a.Wait()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
