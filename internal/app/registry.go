package app

import (
	"context"
	"fmt"

	"go-integration/internal/audit"
	"go-integration/internal/capacity"
	"go-integration/internal/competency"
	"go-integration/internal/config"
	"go-integration/internal/dashboard"
	"go-integration/internal/eventbus"
	"go-integration/internal/finance"
	"go-integration/internal/logistics"
	"go-integration/internal/middleware"
	"go-integration/internal/payroll"
	"go-integration/internal/rule"
	"go-integration/internal/training"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const apiPrefix = "/api/v1/integration"

type container struct {
	bus        eventbus.Bus
	audit      audit.Service
	rules      rule.Service
	trainings  training.Service
	finance    finance.Service
	payroll    payroll.Service
	capacity   capacity.Service
	logistics  logistics.Service
	competency competency.Service
	dashboard  dashboard.Service

	unsubscribeRules func()
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&rule.Rule{}, &audit.Entry{})
}

func newContainer(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *redis.Client, logger *zap.Logger) (*container, error) {
	// --- Repositories ---
	var (
		ruleRepo  rule.Repository
		auditRepo audit.Repository
	)
	if db != nil {
		ruleRepo = rule.NewRepository(db)
		auditRepo = audit.NewRepository(db)
	} else {
		ruleRepo = rule.NewMemoryRepository()
		auditRepo = audit.NewMemoryRepository(cfg.Hub.AuditRetention)
	}

	// --- Core ---
	bus := eventbus.NewBus(cfg.Hub.EventQueueLimit, logger)
	auditService := audit.NewService(auditRepo, logger)
	ruleService := rule.NewService(ruleRepo, logger)

	if err := seedRules(ctx, ruleService, cfg.Hub.RulesFile, logger); err != nil {
		return nil, err
	}

	// --- Workflows ---
	financeService := finance.NewService(finance.NewMemoryRepository(), logger)
	trainingService := training.NewService(training.NewMemoryRepository(), bus, auditService, logger)
	payrollService := payroll.NewService(payroll.NewMemoryRepository(), financeService, bus, auditService, logger)
	capacityService := capacity.NewService(capacity.NewMemoryRepository(), bus, auditService, logger)
	logisticsService := logistics.NewService(logistics.NewMemoryRepository(), financeService, bus, auditService, logger)
	competencyService := competency.NewService(competency.NewMemoryRepository(), trainingService, bus, auditService, logger)

	dashboardService := dashboard.NewService(
		dashboard.Sources{
			Trainings:    trainingService,
			Payroll:      payrollService,
			Finance:      financeService,
			Capacity:     capacityService,
			Competencies: competencyService,
			Bus:          bus,
			Rules:        ruleService,
			Audit:        auditService,
		},
		dashboard.Options{
			HistoryLimit:  cfg.Hub.MetricsHistoryLimit,
			MonthlyBudget: cfg.Hub.MonthlyBudget,
		},
		rdb,
		logger,
	)

	return &container{
		bus:              bus,
		audit:            auditService,
		rules:            ruleService,
		trainings:        trainingService,
		finance:          financeService,
		payroll:          payrollService,
		capacity:         capacityService,
		logistics:        logisticsService,
		competency:       competencyService,
		dashboard:        dashboardService,
		unsubscribeRules: bus.Subscribe(eventbus.Wildcard, ruleService.Subscriber()),
	}, nil
}

func seedRules(ctx context.Context, svc rule.Service, rulesFile string, logger *zap.Logger) error {
	reqs := rule.DefaultRules()
	if rulesFile != "" {
		extra, err := rule.LoadSeedFile(rulesFile)
		if err != nil {
			return err
		}
		reqs = append(reqs, extra...)
	}

	created, err := svc.Seed(ctx, reqs)
	if err != nil {
		return fmt.Errorf("seed rules: %w", err)
	}
	logger.Named("app").Info("integration rules seeded", zap.Int("created", created), zap.Int("requested", len(reqs)))
	return nil
}

func registerModules(router *gin.Engine, c *container, cfg *config.Config, rdb *redis.Client, logger *zap.Logger) {
	// --- Handlers ---
	eventbusHandler := eventbus.NewHandler(c.bus, logger)
	auditHandler := audit.NewHandler(c.audit, logger)
	ruleHandler := rule.NewHandler(c.rules, logger)
	trainingHandler := training.NewHandler(c.trainings, logger)
	financeHandler := finance.NewHandler(c.finance, logger)
	payrollHandler := payroll.NewHandler(c.payroll, logger)
	capacityHandler := capacity.NewHandler(c.capacity, logger)
	logisticsHandler := logistics.NewHandler(c.logistics, logger)
	competencyHandler := competency.NewHandler(c.competency, logger)
	dashboardHandler := dashboard.NewHandler(c.dashboard, logger)

	router.Use(middleware.RequestID())

	// --- Routes Registration ---
	api := router.Group(apiPrefix)
	api.Use(middleware.RateLimitByIP(rate.Limit(50), 100))
	if cfg.Auth.Enabled() {
		api.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))
		api.Use(middleware.RateLimitByUser(rate.Limit(20), 40))
	}
	api.Use(middleware.ContextLogger(logger))
	{
		eventbus.RegisterRoutes(api, eventbusHandler)
		audit.RegisterRoutes(api, auditHandler)
		rule.RegisterRoutes(api, ruleHandler)
		training.RegisterRoutes(api, trainingHandler)
		finance.RegisterRoutes(api, financeHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
		capacity.RegisterRoutes(api, capacityHandler)
		logistics.RegisterRoutes(api, logisticsHandler)
		competency.RegisterRoutes(api, competencyHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}
}
