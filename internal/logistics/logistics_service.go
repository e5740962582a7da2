package logistics

import (
	"context"
	"fmt"
	"math"
	"time"

	"go-integration/internal/audit"
	"go-integration/internal/domain"
	"go-integration/internal/eventbus"
	"go-integration/internal/events"
	"go-integration/internal/finance"
	logisticserrors "go-integration/internal/logistics/errors"
	"go-integration/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const inventoryCurrency = "RON"

//go:generate mockgen -source=logistics_service.go -destination=mock/logistics_service_mock.go -package=mock
type Service interface {
	RecordExpense(ctx context.Context, req CreateExpenseRequest) (Expense, finance.Transaction, error)
	// ApproveExpense returns false when the expense is unknown or no longer
	// pending.
	ApproveExpense(ctx context.Context, id, approvedBy string) (bool, error)
	// RecordInventoryCostUpdate returns a nil transaction when the value did
	// not change.
	RecordInventoryCostUpdate(ctx context.Context, req CreateCostUpdateRequest) (InventoryCostUpdate, *finance.Transaction, error)
	GetExpenses(ctx context.Context, filter ExpenseFilter) ([]Expense, error)
	GetExpense(ctx context.Context, id string) (Expense, bool, error)
	GetInventoryCostUpdates(ctx context.Context, itemID string) ([]InventoryCostUpdate, error)
	GetFinanceSummary(ctx context.Context) (FinanceSummary, error)
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
	l := zap.L().Named("logistics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("logistics.service")
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

func (s *service) RecordExpense(ctx context.Context, req CreateExpenseRequest) (Expense, finance.Transaction, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if !req.Type.Valid() {
		return Expense{}, finance.Transaction{}, logisticserrors.ErrInvalidExpenseType
	}

	expense := Expense{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		VehicleID:   req.VehicleID,
		RouteID:     req.RouteID,
		OrderID:     req.OrderID,
		Date:        req.Date,
		Status:      ExpensePending,
		CostCenter:  req.CostCenter,
	}
	if expense.Date.IsZero() {
		expense.Date = s.now().UTC()
	}

	if err := s.repo.SaveExpense(ctx, expense); err != nil {
		return Expense{}, finance.Transaction{}, err
	}

	category := ExpenseCategory(expense.Type)
	tx, err := s.finance.CreateTransaction(ctx, finance.NewTransaction{
		Type:         finance.TypeExpense,
		Amount:       expense.Amount,
		Currency:     expense.Currency,
		Category:     category,
		Description:  expense.Description,
		SourceModule: domain.ModuleLogistics,
		ReferenceID:  expense.ID,
	})
	if err != nil {
		log.Error("failed to create expense transaction", zap.String("expense_id", expense.ID), zap.Error(err))
		return Expense{}, finance.Transaction{}, err
	}

	eventID, err := s.publisher.Publish(ctx, eventbus.Draft{
		Type:          events.TypeExpenseRecorded,
		SourceModule:  domain.ModuleLogistics,
		TargetModules: []domain.Module{domain.ModuleFinance},
		CorrelationID: uuid.NewString(),
		Payload: map[string]any{
			"expenseId":     expense.ID,
			"transactionId": tx.ID,
			"type":          string(expense.Type),
			"amount":        expense.Amount,
			"currency":      expense.Currency,
			"vehicleId":     expense.VehicleID,
			"routeId":       expense.RouteID,
		},
		Metadata: eventbus.Metadata{Priority: domain.PriorityNormal},
	})
	if err != nil {
		return Expense{}, finance.Transaction{}, err
	}

	s.auditor.Record(ctx, audit.Entry{
		EventID:      eventID,
		EventType:    events.TypeExpenseRecorded,
		SourceModule: domain.ModuleLogistics,
		TargetModule: domain.ModuleFinance,
		Action:       "create",
		EntityType:   "LogisticsExpense",
		EntityID:     expense.ID,
		Changes: []audit.Change{
			{Field: "amount", OldValue: nil, NewValue: expense.Amount},
			{Field: "type", OldValue: nil, NewValue: string(expense.Type)},
		},
		Metadata: map[string]any{"category": category},
		Status:   audit.StatusSuccess,
	})

	log.Info("logistics expense recorded",
		zap.String("expense_id", expense.ID),
		zap.String("type", string(expense.Type)),
		zap.Float64("amount", expense.Amount),
		zap.String("currency", expense.Currency),
	)

	return expense, tx, nil
}

func (s *service) ApproveExpense(ctx context.Context, id, approvedBy string) (bool, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if approvedBy == "" {
		return false, logisticserrors.ErrApproverRequired
	}

	expense, ok, err := s.repo.FindExpense(ctx, id)
	if err != nil || !ok || expense.Status != ExpensePending {
		return false, err
	}

	expense.Status = ExpenseApproved
	expense.ApprovedBy = approvedBy
	if err := s.repo.SaveExpense(ctx, expense); err != nil {
		return false, err
	}

	posted, err := s.finance.PostByReference(ctx, id)
	if err != nil {
		return false, err
	}
	if !posted {
		log.Warn("no finance transaction linked to expense", zap.String("expense_id", id))
	}

	eventID, err := s.publisher.Publish(ctx, eventbus.Draft{
		Type:          events.TypeExpenseApproved,
		SourceModule:  domain.ModuleLogistics,
		TargetModules: []domain.Module{domain.ModuleFinance},
		CorrelationID: uuid.NewString(),
		Payload: map[string]any{
			"expenseId":  id,
			"approvedBy": approvedBy,
			"amount":     expense.Amount,
		},
		Metadata: eventbus.Metadata{UserID: approvedBy, Priority: domain.PriorityNormal},
	})
	if err != nil {
		return false, err
	}

	s.auditor.Record(ctx, audit.Entry{
		EventID:      eventID,
		EventType:    events.TypeExpenseApproved,
		SourceModule: domain.ModuleLogistics,
		TargetModule: domain.ModuleFinance,
		Action:       "update",
		EntityType:   "LogisticsExpense",
		EntityID:     id,
		UserID:       approvedBy,
		Changes: []audit.Change{
			{Field: "status", OldValue: string(ExpensePending), NewValue: string(ExpenseApproved)},
		},
		Status: audit.StatusSuccess,
	})

	log.Info("logistics expense approved", zap.String("expense_id", id), zap.String("approved_by", approvedBy))
	return true, nil
}

func (s *service) RecordInventoryCostUpdate(ctx context.Context, req CreateCostUpdateRequest) (InventoryCostUpdate, *finance.Transaction, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if !req.MovementType.Valid() {
		return InventoryCostUpdate{}, nil, logisticserrors.ErrInvalidMovementType
	}

	update := InventoryCostUpdate{
		ID:             uuid.NewString(),
		ItemID:         req.ItemID,
		ItemSKU:        req.ItemSKU,
		ItemName:       req.ItemName,
		PreviousValue:  req.PreviousValue,
		NewValue:       req.NewValue,
		QuantityChange: req.QuantityChange,
		MovementType:   req.MovementType,
		Reason:         req.Reason,
		Date:           s.now().UTC(),
	}

	if err := s.repo.SaveCostUpdate(ctx, update); err != nil {
		return InventoryCostUpdate{}, nil, err
	}

	diff := update.Difference()
	var tx *finance.Transaction
	if diff != 0 {
		txType := finance.TypeExpense
		if diff < 0 {
			txType = finance.TypeRevenue
		}
		created, err := s.finance.CreateTransaction(ctx, finance.NewTransaction{
			Type:     txType,
			Amount:   math.Abs(diff),
			Currency: inventoryCurrency,
			Category: MovementCategory(update.MovementType),
			Description: fmt.Sprintf("%s - %s (%s) - Qty: %v",
				update.MovementType, update.ItemName, update.ItemSKU, update.QuantityChange),
			SourceModule: domain.ModuleLogistics,
			ReferenceID:  update.ID,
		})
		if err != nil {
			log.Error("failed to create inventory transaction", zap.String("update_id", update.ID), zap.Error(err))
			return InventoryCostUpdate{}, nil, err
		}
		tx = &created
	}

	payload := map[string]any{
		"updateId":       update.ID,
		"itemId":         update.ItemID,
		"itemSku":        update.ItemSKU,
		"movementType":   string(update.MovementType),
		"previousValue":  update.PreviousValue,
		"newValue":       update.NewValue,
		"costDifference": diff,
	}
	if tx != nil {
		payload["transactionId"] = tx.ID
	}

	eventID, err := s.publisher.Publish(ctx, eventbus.Draft{
		Type:          events.TypeInventoryCostUpdated,
		SourceModule:  domain.ModuleLogistics,
		TargetModules: []domain.Module{domain.ModuleFinance},
		CorrelationID: uuid.NewString(),
		Payload:       payload,
		Metadata:      eventbus.Metadata{Priority: domain.PriorityNormal},
	})
	if err != nil {
		return InventoryCostUpdate{}, nil, err
	}

	s.auditor.Record(ctx, audit.Entry{
		EventID:      eventID,
		EventType:    events.TypeInventoryCostUpdated,
		SourceModule: domain.ModuleLogistics,
		TargetModule: domain.ModuleFinance,
		Action:       "update",
		EntityType:   "InventoryCost",
		EntityID:     update.ItemID,
		Changes: []audit.Change{
			{Field: "value", OldValue: update.PreviousValue, NewValue: update.NewValue},
			{Field: "quantity", OldValue: nil, NewValue: update.QuantityChange},
		},
		Metadata: map[string]any{"movementType": string(update.MovementType), "reason": update.Reason},
		Status:   audit.StatusSuccess,
	})

	log.Info("inventory cost updated",
		zap.String("item_sku", update.ItemSKU),
		zap.String("movement_type", string(update.MovementType)),
		zap.Float64("cost_difference", diff),
	)

	return update, tx, nil
}

func (s *service) GetExpenses(ctx context.Context, filter ExpenseFilter) ([]Expense, error) {
	return s.repo.FindExpenses(ctx, filter)
}

func (s *service) GetExpense(ctx context.Context, id string) (Expense, bool, error) {
	return s.repo.FindExpense(ctx, id)
}

func (s *service) GetInventoryCostUpdates(ctx context.Context, itemID string) ([]InventoryCostUpdate, error) {
	return s.repo.FindCostUpdates(ctx, itemID)
}

// GetFinanceSummary values inventory as the sum of the latest recorded value
// per item. COGS counts shipment value drops since the start of the month.
func (s *service) GetFinanceSummary(ctx context.Context) (FinanceSummary, error) {
	expenses, err := s.repo.FindExpenses(ctx, ExpenseFilter{})
	if err != nil {
		return FinanceSummary{}, err
	}
	updates, err := s.repo.FindCostUpdates(ctx, "")
	if err != nil {
		return FinanceSummary{}, err
	}

	summary := FinanceSummary{ExpensesByType: make(map[ExpenseType]float64)}
	for _, e := range expenses {
		summary.TotalExpenses += e.Amount
		summary.ExpensesByType[e.Type] += e.Amount
		if e.Status == ExpensePending {
			summary.PendingApprovals++
		}
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	latest := make(map[string]float64)
	for _, u := range updates {
		latest[u.ItemID] = u.NewValue
		if u.MovementType == MovementShipment && !u.Date.Before(monthStart) {
			summary.COGSThisMonth += u.PreviousValue - u.NewValue
		}
	}
	for _, v := range latest {
		summary.InventoryValue += v
	}

	return summary, nil
}
