package training

import (
	"context"
	"sync"
)

//go:generate mockgen -source=training_repo.go -destination=mock/training_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, assignments []Assignment) error
	// FindByEmployee returns every assignment when employeeID is empty.
	FindByEmployee(ctx context.Context, employeeID string) ([]Assignment, error)
	// UpdateStatus reports false when the id is unknown.
	UpdateStatus(ctx context.Context, id string, status Status) (bool, error)
}

type memoryRepository struct {
	mu          sync.RWMutex
	order       []string
	assignments map[string]Assignment
}

func NewMemoryRepository() Repository {
	return &memoryRepository{assignments: make(map[string]Assignment)}
}

func (r *memoryRepository) Save(_ context.Context, assignments []Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range assignments {
		if _, exists := r.assignments[a.ID]; !exists {
			r.order = append(r.order, a.ID)
		}
		r.assignments[a.ID] = a
	}
	return nil
}

func (r *memoryRepository) FindByEmployee(_ context.Context, employeeID string) ([]Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Assignment, 0)
	for _, id := range r.order {
		a := r.assignments[id]
		if employeeID == "" || a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memoryRepository) UpdateStatus(_ context.Context, id string, status Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.assignments[id]
	if !ok {
		return false, nil
	}
	a.Status = status
	r.assignments[id] = a
	return true, nil
}
