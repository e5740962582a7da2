package payroll_test

import (
	"context"
	"errors"
	"testing"

	"go-integration/internal/audit"
	auditMock "go-integration/internal/audit/mock"
	"go-integration/internal/domain"
	"go-integration/internal/eventbus"
	eventbusMock "go-integration/internal/eventbus/mock"
	"go-integration/internal/events"
	"go-integration/internal/finance"
	"go-integration/internal/payroll"
	payrollerrors "go-integration/internal/payroll/errors"
	payrollMock "go-integration/internal/payroll/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCalculateDeductions(t *testing.T) {
	tests := []struct {
		name    string
		gross   float64
		cas     float64
		cass    float64
		impozit float64
		net     float64
	}{
		{"6000 RON", 6000, 1500, 600, 390, 3510},
		{"10000 RON", 10000, 2500, 1000, 650, 5850},
		{"zero", 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, net := payroll.CalculateDeductions(tt.gross)

			assert.Equal(t, tt.cas, d.CAS)
			assert.Equal(t, tt.cass, d.CASS)
			assert.Equal(t, tt.impozit, d.Impozit)
			assert.Zero(t, d.Other)
			assert.Equal(t, tt.net, net)
		})
	}
}

func TestCalculateDeductions_Unrounded(t *testing.T) {
	for _, gross := range []float64{4321.87, 3333.33, 0.01} {
		d, net := payroll.CalculateDeductions(gross)

		cas := gross * 0.25
		cass := gross * 0.10
		impozit := (gross - cas - cass) * 0.10

		assert.Equal(t, cas, d.CAS)
		assert.Equal(t, cass, d.CASS)
		assert.Equal(t, impozit, d.Impozit)
		assert.Equal(t, gross-cas-cass-impozit, net)
	}
}

type serviceDeps struct {
	service   payroll.Service
	finance   finance.Service
	publisher *eventbusMock.MockPublisher
	auditor   *auditMock.MockRecorder
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	financeSvc := finance.NewService(finance.NewMemoryRepository(), zap.NewNop())
	publisher := eventbusMock.NewMockPublisher(ctrl)
	auditor := auditMock.NewMockRecorder(ctrl)

	return &serviceDeps{
		service:   payroll.NewService(payroll.NewMemoryRepository(), financeSvc, publisher, auditor, zap.NewNop()),
		finance:   financeSvc,
		publisher: publisher,
		auditor:   auditor,
	}
}

func salaryChange() events.SalaryChangeEvent {
	return events.SalaryChangeEvent{
		EmployeeID:     "EMP-002",
		PreviousSalary: 5000,
		NewSalary:      6000,
		Currency:       "RON",
		Reason:         "annual review",
	}
}

func TestPayrollService_SyncSalary(t *testing.T) {
	ctx := context.Background()

	t.Run("creates entry, transaction, event and audit", func(t *testing.T) {
		deps := setupServiceTest(t)

		var published eventbus.Draft
		deps.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d eventbus.Draft) (string, error) {
				published = d
				return "evt-1", nil
			})

		var recorded audit.Entry
		deps.auditor.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e audit.Entry) audit.Entry {
				recorded = e
				return e
			})

		entry, err := deps.service.SyncSalary(ctx, salaryChange())

		assert.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, payroll.StatusDraft, entry.Status)
		assert.InDelta(t, 3510, entry.NetSalary, 0.001)
		assert.Equal(t, "RON", entry.Currency)
		assert.NotZero(t, entry.Period.Month)

		txs, _ := deps.finance.GetTransactions(ctx, domain.ModulePayroll)
		if assert.Len(t, txs, 1) {
			assert.Equal(t, finance.TypePayroll, txs[0].Type)
			assert.Equal(t, "Salaries", txs[0].Category)
			assert.Equal(t, entry.ID, txs[0].ReferenceID)
			assert.Equal(t, 6000.0, txs[0].Amount)
			assert.Equal(t, finance.StatusPending, txs[0].Status)
		}

		assert.Equal(t, events.TypeSalarySynced, published.Type)
		assert.Equal(t, domain.ModuleHR, published.SourceModule)
		assert.Equal(t, []domain.Module{domain.ModulePayroll, domain.ModuleFinance}, published.TargetModules)
		assert.Equal(t, entry.ID, published.Payload["payrollEntryId"])
		assert.Equal(t, txs[0].ID, published.Payload["transactionId"])

		assert.Equal(t, "evt-1", recorded.EventID)
		assert.Equal(t, domain.ModuleFinance, recorded.TargetModule)
		assert.Equal(t, "PayrollEntry", recorded.EntityType)
		assert.Equal(t, []audit.Change{{Field: "salary", OldValue: 5000.0, NewValue: 6000.0}}, recorded.Changes)
		assert.Equal(t, "annual review", recorded.Metadata["reason"])
	})

	t.Run("each call creates a new entry", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return("evt", nil).Times(2)
		deps.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(audit.Entry{}).Times(2)

		first, _ := deps.service.SyncSalary(ctx, salaryChange())
		second, _ := deps.service.SyncSalary(ctx, salaryChange())

		assert.NotEqual(t, first.ID, second.ID)
		entries, _ := deps.service.GetEntries(ctx, "EMP-002")
		assert.Len(t, entries, 2)
		txs, _ := deps.finance.GetTransactions(ctx, "")
		assert.Len(t, txs, 2)
	})

	t.Run("rejects non positive salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		ev := salaryChange()
		ev.NewSalary = 0

		_, err := deps.service.SyncSalary(ctx, ev)

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidSalary)
	})

	t.Run("publish failure skips audit", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return("", errors.New("bus down"))

		_, err := deps.service.SyncSalary(ctx, salaryChange())

		assert.Error(t, err)
	})
}

func TestPayrollService_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := payrollMock.NewMockRepository(ctrl)
	svc := payroll.NewService(
		repo,
		finance.NewService(finance.NewMemoryRepository(), zap.NewNop()),
		eventbusMock.NewMockPublisher(ctrl),
		auditMock.NewMockRecorder(ctrl),
		zap.NewNop(),
	)

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.SyncSalary(context.Background(), salaryChange())
	assert.EqualError(t, err, "disk full")
}

func TestPayrollService_GetEntry(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return("evt", nil)
	deps.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(audit.Entry{})

	entry, _ := deps.service.SyncSalary(ctx, salaryChange())

	got, ok, err := deps.service.GetEntry(ctx, entry.ID)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entry, got)

	_, ok, err = deps.service.GetEntry(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, ok)
}
