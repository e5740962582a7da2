package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-integration/internal/audit"
	"go-integration/internal/capacity"
	"go-integration/internal/competency"
	"go-integration/internal/dashboard"
	"go-integration/internal/domain"
	"go-integration/internal/eventbus"
	"go-integration/internal/events"
	"go-integration/internal/finance"
	"go-integration/internal/payroll"
	"go-integration/internal/rule"
	"go-integration/internal/training"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type hub struct {
	sources  dashboard.Sources
	training training.Service
	payroll  payroll.Service
}

func setupHub(t *testing.T) hub {
	t.Helper()
	log := zap.NewNop()

	bus := eventbus.NewBus(100, log)
	auditSvc := audit.NewService(audit.NewMemoryRepository(100), log)
	financeSvc := finance.NewService(finance.NewMemoryRepository(), log)
	trainingSvc := training.NewService(training.NewMemoryRepository(), bus, auditSvc, log)
	payrollSvc := payroll.NewService(payroll.NewMemoryRepository(), financeSvc, bus, auditSvc, log)
	ruleSvc := rule.NewService(rule.NewMemoryRepository(), log)

	_, err := ruleSvc.Seed(context.Background(), rule.DefaultRules())
	assert.NoError(t, err)

	return hub{
		sources: dashboard.Sources{
			Trainings:    trainingSvc,
			Payroll:      payrollSvc,
			Finance:      financeSvc,
			Capacity:     capacity.NewService(capacity.NewMemoryRepository(), bus, auditSvc, log),
			Competencies: competency.NewService(competency.NewMemoryRepository(), trainingSvc, bus, auditSvc, log),
			Bus:          bus,
			Rules:        ruleSvc,
			Audit:        auditSvc,
		},
		training: trainingSvc,
		payroll:  payrollSvc,
	}
}

func newDashboard(h hub, rdb *redis.Client) dashboard.Service {
	return dashboard.NewService(h.sources, dashboard.Options{HistoryLimit: 3, MonthlyBudget: 100000}, rdb, zap.NewNop())
}

func TestDashboardService_Aggregate(t *testing.T) {
	ctx := context.Background()
	h := setupHub(t)
	svc := newDashboard(h, nil)

	_, err := h.training.TriggerOnboarding(ctx, events.EmployeeOnboardingEvent{
		EmployeeID: "EMP-1",
		Department: "office",
		StartDate:  time.Now(),
	})
	assert.NoError(t, err)
	_, err = h.payroll.SyncSalary(ctx, events.SalaryChangeEvent{EmployeeID: "EMP-2", NewSalary: 6000, Currency: "RON"})
	assert.NoError(t, err)

	m, err := svc.Aggregate(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 2, m.HR.TotalEmployees)
	assert.Equal(t, 6000.0, m.Finance.MonthlyPayroll)
	assert.Equal(t, 1, m.Finance.PendingPayments)
	assert.Equal(t, 6.0, m.Finance.BudgetUtilization)
	assert.Positive(t, m.HR.PendingOnboarding)

	t.Run("history is bounded", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			_, _ = svc.Aggregate(ctx)
		}
		assert.Len(t, svc.GetHistory(0), 3)
		assert.Len(t, svc.GetHistory(2), 2)
	})
}

func TestDashboardService_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregate writes the latest snapshot", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		svc := newDashboard(setupHub(t), db)
		mock.Regexp().ExpectSet(dashboard.LatestMetricsKey, `.*`, 5*time.Minute).SetVal("OK")

		_, err := svc.Aggregate(ctx)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("latest served from cache", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		svc := newDashboard(setupHub(t), db)

		cached, _ := json.Marshal(dashboard.Metrics{HR: dashboard.HRMetrics{TotalEmployees: 42}})
		mock.ExpectGet(dashboard.LatestMetricsKey).SetVal(string(cached))

		m, err := svc.GetLatest(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 42, m.HR.TotalEmployees)
		assert.Empty(t, svc.GetHistory(0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss aggregates once", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		svc := newDashboard(setupHub(t), db)
		mock.ExpectGet(dashboard.LatestMetricsKey).RedisNil()
		mock.Regexp().ExpectSet(dashboard.LatestMetricsKey, `.*`, 5*time.Minute).SetVal("OK")

		_, err := svc.GetLatest(ctx)

		assert.NoError(t, err)
		assert.Len(t, svc.GetHistory(0), 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDashboardService_Status(t *testing.T) {
	ctx := context.Background()
	h := setupHub(t)
	svc := newDashboard(h, nil)

	_, err := h.sources.Bus.Publish(ctx, eventbus.Draft{Type: "hr.employee.onboarded", SourceModule: domain.ModuleHR})
	assert.NoError(t, err)

	st, err := svc.Status(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, st.EventsProcessed)
	assert.Equal(t, 3, st.ActiveRules)
	assert.Len(t, st.Modules, len(domain.AllModules()))
	for _, m := range st.Modules {
		if m.Name == domain.ModuleCompliance {
			assert.False(t, m.Connected)
		} else {
			assert.True(t, m.Connected, string(m.Name))
		}
	}
}

func TestDashboardHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newDashboard(setupHub(t), nil)

	r := gin.New()
	dashboard.RegisterRoutes(r.Group("/api/v1/integration"), dashboard.NewHandler(svc, zap.NewNop()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/integration/dashboard/metrics", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"risk_level":"low"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/integration/dashboard/metrics/latest", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/integration/dashboard/metrics/history?limit=10", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/integration/dashboard/metrics/history?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/integration/status", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active_rules":3`)
}
