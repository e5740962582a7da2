package competency

import (
	"context"
	"sync"
)

//go:generate mockgen -source=competency_repo.go -destination=mock/competency_repo_mock.go -package=mock
type Repository interface {
	AppendUpdates(ctx context.Context, updates []Update) error
	// FindUpdates returns the employee's history, oldest first.
	FindUpdates(ctx context.Context, employeeID string) ([]Update, error)
	SaveCompletion(ctx context.Context, c Completion) error
	FindCompletions(ctx context.Context) ([]Completion, error)
}

type memoryRepository struct {
	mu          sync.RWMutex
	updates     map[string][]Update
	completions []Completion
}

func NewMemoryRepository() Repository {
	return &memoryRepository{updates: make(map[string][]Update)}
}

func (r *memoryRepository) AppendUpdates(_ context.Context, updates []Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range updates {
		r.updates[u.EmployeeID] = append(r.updates[u.EmployeeID], u)
	}
	return nil
}

func (r *memoryRepository) FindUpdates(_ context.Context, employeeID string) ([]Update, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Update(nil), r.updates[employeeID]...), nil
}

func (r *memoryRepository) SaveCompletion(_ context.Context, c Completion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.completions = append(r.completions, c)
	return nil
}

func (r *memoryRepository) FindCompletions(_ context.Context) ([]Completion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Completion(nil), r.completions...), nil
}
