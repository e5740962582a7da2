package payroll_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-integration/internal/events"
	"go-integration/internal/payroll"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body=%s)", err, rec.Body.String())
	}
	return env
}

type fakePayrollService struct {
	syncFn    func(ctx context.Context, event events.SalaryChangeEvent) (payroll.Entry, error)
	entriesFn func(ctx context.Context, employeeID string) ([]payroll.Entry, error)
	entryFn   func(ctx context.Context, id string) (payroll.Entry, bool, error)
}

func (f *fakePayrollService) SyncSalary(ctx context.Context, event events.SalaryChangeEvent) (payroll.Entry, error) {
	return f.syncFn(ctx, event)
}

func (f *fakePayrollService) GetEntries(ctx context.Context, employeeID string) ([]payroll.Entry, error) {
	return f.entriesFn(ctx, employeeID)
}

func (f *fakePayrollService) GetEntry(ctx context.Context, id string) (payroll.Entry, bool, error) {
	return f.entryFn(ctx, id)
}

func setupRouter(svc payroll.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	payroll.RegisterRoutes(r.Group("/api/v1/integration"), payroll.NewHandler(svc, zap.NewNop()))
	return r
}

func TestPayrollHandler_SyncSalary(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var got events.SalaryChangeEvent
		svc := &fakePayrollService{
			syncFn: func(_ context.Context, ev events.SalaryChangeEvent) (payroll.Entry, error) {
				got = ev
				return payroll.Entry{ID: "pay-1", EmployeeID: ev.EmployeeID, NetSalary: 3510}, nil
			},
		}

		body := `{"employee_id":"EMP-002","previous_salary":5000,"new_salary":6000,"currency":"RON","reason":"review"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/integration/workflows/salary-change", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		setupRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		env := mustDecodeEnvelope(t, rec)
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"pay-1"`)
		assert.Equal(t, 6000.0, got.NewSalary)
	})

	t.Run("missing currency", func(t *testing.T) {
		svc := &fakePayrollService{}
		body := `{"employee_id":"EMP-002","new_salary":6000}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/integration/workflows/salary-change", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		setupRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := mustDecodeEnvelope(t, rec)
		assert.False(t, env.Ok)
	})
}

func TestPayrollHandler_GetEntries(t *testing.T) {
	var employee string
	svc := &fakePayrollService{
		entriesFn: func(_ context.Context, employeeID string) ([]payroll.Entry, error) {
			employee = employeeID
			return []payroll.Entry{{ID: "pay-1"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/integration/payroll/entries?employee_id=EMP-002", nil)
	rec := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EMP-002", employee)
}

func TestPayrollHandler_DownloadPayslip(t *testing.T) {
	t.Run("pdf", func(t *testing.T) {
		svc := &fakePayrollService{
			entryFn: func(_ context.Context, id string) (payroll.Entry, bool, error) {
				return payroll.Entry{
					ID:          id,
					EmployeeID:  "EMP-(2)",
					Period:      payroll.Period{Month: 3, Year: 2026},
					GrossSalary: 6000,
					NetSalary:   3510,
					Currency:    "RON",
				}, true, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/integration/payroll/entries/pay-1/payslip", nil)
		rec := httptest.NewRecorder()

		setupRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "payslip-EMP-(2)-2026-03.pdf")
		body := rec.Body.String()
		assert.True(t, strings.HasPrefix(body, "%PDF-"))
		assert.Contains(t, body, `EMP-\(2\)`)
		assert.Contains(t, body, "3510.00 RON")
		assert.Contains(t, body, `Impozit \(10%\)`)
		assert.True(t, strings.HasSuffix(strings.TrimSpace(body), "%%EOF"))
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakePayrollService{
			entryFn: func(context.Context, string) (payroll.Entry, bool, error) {
				return payroll.Entry{}, false, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/integration/payroll/entries/missing/payslip", nil)
		rec := httptest.NewRecorder()

		setupRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := mustDecodeEnvelope(t, rec)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}
