package logistics

import (
	"time"

	logisticserrors "go-integration/internal/logistics/errors"
)

type CreateExpenseRequest struct {
	Type        ExpenseType `json:"type" binding:"required"`
	Amount      float64     `json:"amount" binding:"required,gt=0"`
	Currency    string      `json:"currency" binding:"required,len=3"`
	Description string      `json:"description"`
	VehicleID   string      `json:"vehicle_id"`
	RouteID     string      `json:"route_id"`
	OrderID     string      `json:"order_id"`
	Date        time.Time   `json:"date"`
	CostCenter  string      `json:"cost_center"`
}

type CreateCostUpdateRequest struct {
	ItemID         string       `json:"item_id" binding:"required"`
	ItemSKU        string       `json:"item_sku" binding:"required"`
	ItemName       string       `json:"item_name"`
	PreviousValue  float64      `json:"previous_value" binding:"gte=0"`
	NewValue       float64      `json:"new_value" binding:"gte=0"`
	QuantityChange float64      `json:"quantity_change"`
	MovementType   MovementType `json:"movement_type" binding:"required"`
	Reason         string       `json:"reason"`
}

type ApproveExpenseRequest struct {
	ApprovedBy string `json:"approved_by"`
}

type ExpenseQuery struct {
	Type      ExpenseType   `form:"type"`
	Status    ExpenseStatus `form:"status"`
	VehicleID string        `form:"vehicle_id"`
	StartDate string        `form:"start_date"`
	EndDate   string        `form:"end_date"`
}

func parseDate(v string, endOfDay bool) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil, logisticserrors.ErrInvalidDate
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func (q ExpenseQuery) toFilter() (ExpenseFilter, error) {
	if q.Type != "" && !q.Type.Valid() {
		return ExpenseFilter{}, logisticserrors.ErrInvalidExpenseType
	}

	start, err := parseDate(q.StartDate, false)
	if err != nil {
		return ExpenseFilter{}, err
	}
	end, err := parseDate(q.EndDate, true)
	if err != nil {
		return ExpenseFilter{}, err
	}

	return ExpenseFilter{
		Type:      q.Type,
		Status:    q.Status,
		VehicleID: q.VehicleID,
		StartDate: start,
		EndDate:   end,
	}, nil
}

type RecordExpenseResponse struct {
	Expense       Expense `json:"expense"`
	TransactionID string  `json:"transaction_id"`
}

type RecordCostUpdateResponse struct {
	Update        InventoryCostUpdate `json:"update"`
	TransactionID string              `json:"transaction_id,omitempty"`
}
