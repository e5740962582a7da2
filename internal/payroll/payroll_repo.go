package payroll

import (
	"context"
	"sync"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, entry Entry) error
	// FindByEmployee returns every entry when employeeID is empty.
	FindByEmployee(ctx context.Context, employeeID string) ([]Entry, error)
	FindByID(ctx context.Context, id string) (Entry, bool, error)
}

type memoryRepository struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Save(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	return nil
}

func (r *memoryRepository) FindByEmployee(_ context.Context, employeeID string) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if employeeID == "" || e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.ID == id {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}
