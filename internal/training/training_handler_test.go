package training_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-integration/internal/audit"
	"go-integration/internal/eventbus"
	"go-integration/internal/training"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupHandlerTest(t *testing.T) (*gin.Engine, eventbus.Bus, training.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bus := eventbus.NewBus(100, zap.NewNop())
	auditSvc := audit.NewService(audit.NewMemoryRepository(100), zap.NewNop())
	svc := training.NewService(training.NewMemoryRepository(), bus, auditSvc, zap.NewNop())

	r := gin.New()
	training.RegisterRoutes(r.Group("/api/v1/integration"), training.NewHandler(svc, zap.NewNop()))
	return r, bus, svc
}

func TestTrainingHandler_TriggerOnboarding(t *testing.T) {
	r, bus, _ := setupHandlerTest(t)

	t.Run("created", func(t *testing.T) {
		body := `{"employee_id":"EMP-9","employee_name":"Dan","department":"logistics","start_date":"2026-05-01T00:00:00Z"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/integration/workflows/onboarding", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Defensive Driving")
		assert.Contains(t, w.Body.String(), `"total":6`)
		assert.Equal(t, 1, bus.Stats().Total)
	})

	t.Run("missing department", func(t *testing.T) {
		body := `{"employee_id":"EMP-9","start_date":"2026-05-01T00:00:00Z"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/integration/workflows/onboarding", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTrainingHandler_Assignments(t *testing.T) {
	r, _, svc := setupHandlerTest(t)
	assignments, err := svc.TriggerOnboarding(context.Background(), onboarding("office"))
	assert.NoError(t, err)

	t.Run("list by employee", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/integration/trainings?employee_id=EMP-001", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":5`)
	})

	t.Run("update status", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/integration/trainings/"+assignments[0].ID+"/status", strings.NewReader(`{"status":"completed"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/integration/trainings/"+assignments[0].ID+"/status", strings.NewReader(`{"status":"archived"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown assignment", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/integration/trainings/missing/status", strings.NewReader(`{"status":"completed"}`)))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
