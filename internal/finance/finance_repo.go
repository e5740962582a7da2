package finance

import (
	"context"
	"sync"

	"go-integration/internal/domain"
)

//go:generate mockgen -source=finance_repo.go -destination=mock/finance_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, tx Transaction) error
	// FindByModule returns every transaction when module is empty.
	FindByModule(ctx context.Context, module domain.Module) ([]Transaction, error)
	// SetStatusByReference updates the first transaction carrying referenceID.
	SetStatusByReference(ctx context.Context, referenceID string, status TransactionStatus) (bool, error)
}

type memoryRepository struct {
	mu           sync.RWMutex
	transactions []Transaction
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Save(_ context.Context, tx Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = append(r.transactions, tx)
	return nil
}

func (r *memoryRepository) FindByModule(_ context.Context, module domain.Module) ([]Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		if module == "" || tx.SourceModule == module {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *memoryRepository) SetStatusByReference(_ context.Context, referenceID string, status TransactionStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.transactions {
		if r.transactions[i].ReferenceID == referenceID {
			r.transactions[i].Status = status
			return true, nil
		}
	}
	return false, nil
}
