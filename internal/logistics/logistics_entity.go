package logistics

import "time"

type ExpenseType string

const (
	ExpenseShipping    ExpenseType = "shipping"
	ExpenseFuel        ExpenseType = "fuel"
	ExpenseMaintenance ExpenseType = "maintenance"
	ExpenseTolls       ExpenseType = "tolls"
	ExpenseParking     ExpenseType = "parking"
	ExpenseCustoms     ExpenseType = "customs"
	ExpenseWarehousing ExpenseType = "warehousing"
	ExpenseOther       ExpenseType = "other"
)

func (t ExpenseType) Valid() bool {
	_, ok := expenseCategories[t]
	return ok
}

type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
	ExpensePaid     ExpenseStatus = "paid"
)

type Expense struct {
	ID          string        `json:"id"`
	Type        ExpenseType   `json:"type"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	Description string        `json:"description"`
	VehicleID   string        `json:"vehicle_id,omitempty"`
	RouteID     string        `json:"route_id,omitempty"`
	OrderID     string        `json:"order_id,omitempty"`
	Date        time.Time     `json:"date"`
	Status      ExpenseStatus `json:"status"`
	ApprovedBy  string        `json:"approved_by,omitempty"`
	CostCenter  string        `json:"cost_center,omitempty"`
}

type MovementType string

const (
	MovementReceipt    MovementType = "receipt"
	MovementShipment   MovementType = "shipment"
	MovementAdjustment MovementType = "adjustment"
	MovementReturn     MovementType = "return"
	MovementWriteOff   MovementType = "write_off"
)

func (m MovementType) Valid() bool {
	_, ok := movementCategories[m]
	return ok
}

type InventoryCostUpdate struct {
	ID             string       `json:"id"`
	ItemID         string       `json:"item_id"`
	ItemSKU        string       `json:"item_sku"`
	ItemName       string       `json:"item_name"`
	PreviousValue  float64      `json:"previous_value"`
	NewValue       float64      `json:"new_value"`
	QuantityChange float64      `json:"quantity_change"`
	MovementType   MovementType `json:"movement_type"`
	Reason         string       `json:"reason,omitempty"`
	Date           time.Time    `json:"date"`
}

// Difference is positive when the stock value grew.
func (u InventoryCostUpdate) Difference() float64 {
	return u.NewValue - u.PreviousValue
}

// ExpenseFilter fields are conjunctive; zero values are ignored.
type ExpenseFilter struct {
	Type      ExpenseType
	Status    ExpenseStatus
	VehicleID string
	StartDate *time.Time
	EndDate   *time.Time
}

func (f ExpenseFilter) matches(e Expense) bool {
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.VehicleID != "" && e.VehicleID != f.VehicleID {
		return false
	}
	if f.StartDate != nil && e.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && e.Date.After(*f.EndDate) {
		return false
	}
	return true
}

type FinanceSummary struct {
	TotalExpenses    float64                 `json:"total_expenses"`
	ExpensesByType   map[ExpenseType]float64 `json:"expenses_by_type"`
	PendingApprovals int                     `json:"pending_approvals"`
	InventoryValue   float64                 `json:"inventory_value"`
	COGSThisMonth    float64                 `json:"cogs_this_month"`
}
