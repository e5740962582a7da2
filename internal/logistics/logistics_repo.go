package logistics

import (
	"context"
	"sync"
)

//go:generate mockgen -source=logistics_repo.go -destination=mock/logistics_repo_mock.go -package=mock
type Repository interface {
	SaveExpense(ctx context.Context, e Expense) error
	FindExpense(ctx context.Context, id string) (Expense, bool, error)
	FindExpenses(ctx context.Context, filter ExpenseFilter) ([]Expense, error)
	SaveCostUpdate(ctx context.Context, u InventoryCostUpdate) error
	// FindCostUpdates returns every update, oldest first, when itemID is empty.
	FindCostUpdates(ctx context.Context, itemID string) ([]InventoryCostUpdate, error)
}

type memoryRepository struct {
	mu          sync.RWMutex
	expenses    []Expense
	costUpdates []InventoryCostUpdate
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) SaveExpense(_ context.Context, e Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.expenses {
		if r.expenses[i].ID == e.ID {
			r.expenses[i] = e
			return nil
		}
	}
	r.expenses = append(r.expenses, e)
	return nil
}

func (r *memoryRepository) FindExpense(_ context.Context, id string) (Expense, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.expenses {
		if e.ID == id {
			return e, true, nil
		}
	}
	return Expense{}, false, nil
}

func (r *memoryRepository) FindExpenses(_ context.Context, filter ExpenseFilter) ([]Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		if filter.matches(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memoryRepository) SaveCostUpdate(_ context.Context, u InventoryCostUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.costUpdates = append(r.costUpdates, u)
	return nil
}

func (r *memoryRepository) FindCostUpdates(_ context.Context, itemID string) ([]InventoryCostUpdate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]InventoryCostUpdate, 0, len(r.costUpdates))
	for _, u := range r.costUpdates {
		if itemID == "" || u.ItemID == itemID {
			out = append(out, u)
		}
	}
	return out, nil
}
