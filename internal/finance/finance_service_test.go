package finance_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-integration/internal/domain"
	"go-integration/internal/finance"
	financeerrors "go-integration/internal/finance/errors"
	financeMock "go-integration/internal/finance/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestFinanceService_CreateTransaction(t *testing.T) {
	svc := finance.NewService(finance.NewMemoryRepository(), zap.NewNop())
	ctx := context.Background()

	t.Run("pending on creation", func(t *testing.T) {
		tx, err := svc.CreateTransaction(ctx, finance.NewTransaction{
			Type:         finance.TypePayroll,
			Amount:       6000,
			Currency:     "RON",
			Category:     "Salaries",
			SourceModule: domain.ModulePayroll,
			ReferenceID:  "pay-1",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, tx.ID)
		assert.Equal(t, finance.StatusPending, tx.Status)
		assert.False(t, tx.Date.IsZero())
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := svc.CreateTransaction(ctx, finance.NewTransaction{Type: "gift", SourceModule: domain.ModuleFinance})
		assert.ErrorIs(t, err, financeerrors.ErrInvalidTransactionType)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := svc.CreateTransaction(ctx, finance.NewTransaction{Type: finance.TypeExpense, Amount: -1, SourceModule: domain.ModuleLogistics})
		assert.ErrorIs(t, err, financeerrors.ErrInvalidAmount)
	})
}

func TestFinanceService_GetAndPost(t *testing.T) {
	svc := finance.NewService(finance.NewMemoryRepository(), zap.NewNop())
	ctx := context.Background()

	_, _ = svc.CreateTransaction(ctx, finance.NewTransaction{Type: finance.TypePayroll, Amount: 10, SourceModule: domain.ModulePayroll, ReferenceID: "pay-1"})
	_, _ = svc.CreateTransaction(ctx, finance.NewTransaction{Type: finance.TypeExpense, Amount: 5, SourceModule: domain.ModuleLogistics, ReferenceID: "exp-1"})

	all, err := svc.GetTransactions(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	logistics, _ := svc.GetTransactions(ctx, domain.ModuleLogistics)
	assert.Len(t, logistics, 1)
	assert.Equal(t, "exp-1", logistics[0].ReferenceID)

	ok, err := svc.PostByReference(ctx, "exp-1")
	assert.NoError(t, err)
	assert.True(t, ok)

	logistics, _ = svc.GetTransactions(ctx, domain.ModuleLogistics)
	assert.Equal(t, finance.StatusPosted, logistics[0].Status)

	ok, _ = svc.PostByReference(ctx, "unknown")
	assert.False(t, ok)
}

func TestFinanceService_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := financeMock.NewMockRepository(ctrl)
	svc := finance.NewService(repo, zap.NewNop())

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.CreateTransaction(context.Background(), finance.NewTransaction{Type: finance.TypeTax, SourceModule: domain.ModuleFinance})
	assert.Error(t, err)
}

func TestFinanceHandler_GetTransactions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := financeMock.NewMockService(ctrl)

	r := gin.New()
	finance.RegisterRoutes(r.Group("/api/v1/integration"), finance.NewHandler(svc, zap.NewNop()))

	t.Run("filter by module", func(t *testing.T) {
		svc.EXPECT().GetTransactions(gomock.Any(), domain.ModulePayroll).Return([]finance.Transaction{{ID: "t-1"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/integration/finance/transactions?module=payroll", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"t-1"`)
	})

	t.Run("invalid module", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/integration/finance/transactions?module=bank", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
