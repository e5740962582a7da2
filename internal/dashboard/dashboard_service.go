package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-integration/internal/domain"
	"go-integration/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	LatestMetricsKey    = "dashboard:metrics:latest"
	latestMetricsTTL    = 5 * time.Minute
	DefaultHistoryQuery = 50
)

// Modules served by a built-in workflow are always reported connected.
var builtinModules = map[domain.Module]bool{
	domain.ModuleHR:         true,
	domain.ModuleHSE:        true,
	domain.ModulePayroll:    true,
	domain.ModuleFinance:    true,
	domain.ModuleFreelancer: true,
	domain.ModuleLogistics:  true,
	domain.ModuleLMS:        true,
	domain.ModuleDashboard:  true,
}

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	// Aggregate derives a fresh snapshot, appends it to the history and
	// refreshes the cache.
	Aggregate(ctx context.Context) (Metrics, error)
	// GetHistory returns the last limit snapshots, oldest first.
	GetHistory(limit int) []Metrics
	GetLatest(ctx context.Context) (Metrics, error)
	Status(ctx context.Context) (IntegrationStatus, error)
	// Run aggregates every interval until ctx is done.
	Run(ctx context.Context, interval time.Duration)
}

type Options struct {
	HistoryLimit  int
	MonthlyBudget float64
}

type service struct {
	src     Sources
	opts    Options
	history *history
	rdb     *redis.Client
	sf      *singleflight.Group
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(src Sources, opts Options, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		src:     src,
		opts:    opts,
		history: newHistory(opts.HistoryLimit),
		rdb:     rdb,
		sf:      &singleflight.Group{},
		now:     time.Now,
		logger:  l,
	}
}

func (s *service) Aggregate(ctx context.Context) (Metrics, error) {
	snap, err := s.src.collect(ctx)
	if err != nil {
		return Metrics{}, err
	}

	m := derive(snap, s.now().UTC(), s.opts.MonthlyBudget)
	s.history.append(m)
	s.cache(ctx, m)
	return m, nil
}

func (s *service) cache(ctx context.Context, m Metrics) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(m)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, LatestMetricsKey, data, latestMetricsTTL).Err(); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("failed to cache dashboard metrics", zap.Error(err))
	}
}

func (s *service) GetHistory(limit int) []Metrics {
	if limit <= 0 {
		limit = DefaultHistoryQuery
	}
	return s.history.last(limit)
}

// GetLatest prefers the shared cache, then local history. With neither, one
// aggregation runs no matter how many callers are waiting.
func (s *service) GetLatest(ctx context.Context) (Metrics, error) {
	if s.rdb != nil {
		data, err := s.rdb.Get(ctx, LatestMetricsKey).Bytes()
		switch {
		case err == nil:
			var m Metrics
			if err := json.Unmarshal(data, &m); err == nil {
				return m, nil
			}
		case !errors.Is(err, redis.Nil):
			contextutil.GetLogger(ctx, s.logger).Warn("dashboard cache lookup failed", zap.Error(err))
		}
	}

	if m, ok := s.history.latest(); ok {
		return m, nil
	}

	v, err, _ := s.sf.Do(LatestMetricsKey, func() (any, error) {
		return s.Aggregate(ctx)
	})
	if err != nil {
		return Metrics{}, err
	}
	return v.(Metrics), nil
}

func (s *service) Status(ctx context.Context) (IntegrationStatus, error) {
	stats := s.src.Bus.Stats()

	rules, err := s.src.Rules.GetAll(ctx)
	if err != nil {
		return IntegrationStatus{}, err
	}
	summary, err := s.src.Audit.GetSummary(ctx)
	if err != nil {
		return IntegrationStatus{}, err
	}

	connected := make(map[domain.Module]bool, len(builtinModules))
	for m := range builtinModules {
		connected[m] = true
	}
	active := 0
	for _, r := range rules {
		if !r.Enabled {
			continue
		}
		active++
		connected[r.SourceModule] = true
		connected[r.TargetModule] = true
	}

	modules := make([]ModuleStatus, 0, len(domain.AllModules()))
	for _, m := range domain.AllModules() {
		modules = append(modules, ModuleStatus{Name: m, Connected: connected[m]})
	}

	return IntegrationStatus{
		EventsProcessed: stats.Delivered,
		PendingEvents:   stats.Pending,
		ActiveRules:     active,
		AuditEntries:    summary.TotalEntries,
		Modules:         modules,
	}, nil
}

func (s *service) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Aggregate(ctx); err != nil {
				s.logger.Warn("periodic dashboard aggregation failed", zap.Error(err))
			}
		}
	}
}
