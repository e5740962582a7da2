package capacity

import (
	"context"
	"sync"
)

//go:generate mockgen -source=capacity_repo.go -destination=mock/capacity_repo_mock.go -package=mock
type Repository interface {
	// SaveAvailability replaces an existing record in place, keeping the
	// freelancer's original registration position.
	SaveAvailability(ctx context.Context, a Availability) error
	// FindAvailability returns every record when freelancerID is empty.
	FindAvailability(ctx context.Context, freelancerID string) ([]Availability, error)
	SaveRequest(ctx context.Context, r Request) error
	// FindRequests returns every request when status is empty.
	FindRequests(ctx context.Context, status RequestStatus) ([]Request, error)
	FindRequest(ctx context.Context, id string) (Request, bool, error)
}

type memoryRepository struct {
	mu           sync.RWMutex
	availability []Availability
	requests     []Request
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func cloneAvailability(a Availability) Availability {
	a.Skills = append([]string(nil), a.Skills...)
	return a
}

func cloneRequest(r Request) Request {
	r.RequiredSkills = append([]string(nil), r.RequiredSkills...)
	r.MatchedFreelancers = append([]string(nil), r.MatchedFreelancers...)
	return r
}

func (r *memoryRepository) SaveAvailability(_ context.Context, a Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a = cloneAvailability(a)
	for i := range r.availability {
		if r.availability[i].FreelancerID == a.FreelancerID {
			r.availability[i] = a
			return nil
		}
	}
	r.availability = append(r.availability, a)
	return nil
}

func (r *memoryRepository) FindAvailability(_ context.Context, freelancerID string) ([]Availability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Availability, 0, len(r.availability))
	for _, a := range r.availability {
		if freelancerID == "" || a.FreelancerID == freelancerID {
			out = append(out, cloneAvailability(a))
		}
	}
	return out, nil
}

func (r *memoryRepository) SaveRequest(_ context.Context, req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req = cloneRequest(req)
	for i := range r.requests {
		if r.requests[i].ID == req.ID {
			r.requests[i] = req
			return nil
		}
	}
	r.requests = append(r.requests, req)
	return nil
}

func (r *memoryRepository) FindRequests(_ context.Context, status RequestStatus) ([]Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Request, 0, len(r.requests))
	for _, req := range r.requests {
		if status == "" || req.Status == status {
			out = append(out, cloneRequest(req))
		}
	}
	return out, nil
}

func (r *memoryRepository) FindRequest(_ context.Context, id string) (Request, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.ID == id {
			return cloneRequest(req), true, nil
		}
	}
	return Request{}, false, nil
}
