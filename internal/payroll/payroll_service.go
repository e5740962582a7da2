package payroll

import (
	"context"
	"time"

	"go-integration/internal/audit"
	"go-integration/internal/domain"
	"go-integration/internal/eventbus"
	"go-integration/internal/events"
	"go-integration/internal/finance"
	payrollerrors "go-integration/internal/payroll/errors"
	"go-integration/internal/shared/apperror"
	"go-integration/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	// SyncSalary creates exactly one payroll entry and one finance
	// transaction per call.
	SyncSalary(ctx context.Context, event events.SalaryChangeEvent) (Entry, error)
	GetEntries(ctx context.Context, employeeID string) ([]Entry, error)
	GetEntry(ctx context.Context, id string) (Entry, bool, error)
}

type service struct {
	repo      Repository
	finance   finance.Service
	publisher eventbus.Publisher
	auditor   audit.Recorder
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	financeService finance.Service,
	publisher eventbus.Publisher,
	auditor audit.Recorder,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		repo:      repo,
		finance:   financeService,
		publisher: publisher,
		auditor:   auditor,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) SyncSalary(ctx context.Context, event events.SalaryChangeEvent) (Entry, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if event.EmployeeID == "" {
		return Entry{}, apperror.RequiredField("employee_id")
	}
	if event.NewSalary <= 0 {
		return Entry{}, payrollerrors.ErrInvalidSalary
	}

	now := s.now()
	deductions, net := CalculateDeductions(event.NewSalary)

	entry := Entry{
		ID:          uuid.NewString(),
		EmployeeID:  event.EmployeeID,
		Period:      Period{Month: int(now.Month()), Year: now.Year()},
		GrossSalary: event.NewSalary,
		NetSalary:   net,
		Deductions:  deductions,
		Currency:    event.Currency,
		Status:      StatusDraft,
	}

	if err := s.repo.Save(ctx, entry); err != nil {
		log.Error("failed to save payroll entry", zap.String("employee_id", event.EmployeeID), zap.Error(err))
		return Entry{}, err
	}

	tx, err := s.finance.CreateTransaction(ctx, financeRequest(entry))
	if err != nil {
		log.Error("failed to create finance transaction",
			zap.String("payroll_entry_id", entry.ID),
			zap.Error(err),
		)
		return Entry{}, err
	}

	eventID, err := s.publisher.Publish(ctx, eventbus.Draft{
		Type:          events.TypeSalarySynced,
		SourceModule:  domain.ModuleHR,
		TargetModules: []domain.Module{domain.ModulePayroll, domain.ModuleFinance},
		Payload: map[string]any{
			"employeeId":     entry.EmployeeID,
			"payrollEntryId": entry.ID,
			"transactionId":  tx.ID,
			"grossSalary":    entry.GrossSalary,
			"netSalary":      entry.NetSalary,
			"currency":       entry.Currency,
		},
		Metadata: eventbus.Metadata{Priority: domain.PriorityNormal},
	})
	if err != nil {
		return Entry{}, err
	}

	s.auditor.Record(ctx, audit.Entry{
		EventID:      eventID,
		EventType:    events.TypeSalarySynced,
		SourceModule: domain.ModuleHR,
		TargetModule: domain.ModuleFinance,
		Action:       "create",
		EntityType:   "PayrollEntry",
		EntityID:     entry.ID,
		Changes: []audit.Change{
			{Field: "salary", OldValue: event.PreviousSalary, NewValue: event.NewSalary},
		},
		Metadata: map[string]any{"reason": event.Reason},
		Status:   audit.StatusSuccess,
	})

	log.Info("salary synced to payroll and finance",
		zap.String("employee_id", entry.EmployeeID),
		zap.String("payroll_entry_id", entry.ID),
		zap.String("transaction_id", tx.ID),
		zap.Float64("gross_salary", entry.GrossSalary),
		zap.Float64("net_salary", entry.NetSalary),
	)

	return entry, nil
}

func (s *service) GetEntries(ctx context.Context, employeeID string) ([]Entry, error) {
	return s.repo.FindByEmployee(ctx, employeeID)
}

func (s *service) GetEntry(ctx context.Context, id string) (Entry, bool, error) {
	return s.repo.FindByID(ctx, id)
}
