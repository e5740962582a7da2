package finance

import (
	"time"

	"go-integration/internal/domain"
)

type TransactionType string

const (
	TypePayroll  TransactionType = "payroll"
	TypeExpense  TransactionType = "expense"
	TypeRevenue  TransactionType = "revenue"
	TypeTax      TransactionType = "tax"
	TypeTransfer TransactionType = "transfer"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypePayroll, TypeExpense, TypeRevenue, TypeTax, TypeTransfer:
		return true
	}
	return false
}

type TransactionStatus string

const (
	StatusPending    TransactionStatus = "pending"
	StatusPosted     TransactionStatus = "posted"
	StatusReconciled TransactionStatus = "reconciled"
)

type Transaction struct {
	ID           string            `json:"id"`
	Type         TransactionType   `json:"type"`
	Amount       float64           `json:"amount"`
	Currency     string            `json:"currency"`
	Category     string            `json:"category"`
	Description  string            `json:"description"`
	SourceModule domain.Module     `json:"source_module"`
	ReferenceID  string            `json:"reference_id"`
	Date         time.Time         `json:"date"`
	Status       TransactionStatus `json:"status"`
}

// NewTransaction is the caller-supplied part of a transaction; id, date and
// status are assigned on creation.
type NewTransaction struct {
	Type         TransactionType
	Amount       float64
	Currency     string
	Category     string
	Description  string
	SourceModule domain.Module
	ReferenceID  string
}
