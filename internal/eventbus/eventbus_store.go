package eventbus

import (
	"sync"

	"go-integration/internal/domain"
)

// eventStore keeps published events in publish order, evicting the oldest
// once limit is exceeded.
type eventStore struct {
	mu     sync.RWMutex
	limit  int
	order  []string
	events map[string]*IntegrationEvent
}

func newEventStore(limit int) *eventStore {
	return &eventStore{
		limit:  limit,
		events: make(map[string]*IntegrationEvent),
	}
}

func (s *eventStore) add(event IntegrationEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := event.clone()
	s.events[e.ID] = &e
	s.order = append(s.order, e.ID)

	for len(s.order) > s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.events, oldest)
	}
}

func (s *eventStore) setStatus(id string, status Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return false
	}
	e.Status = status
	return true
}

func (s *eventStore) get(id string) (IntegrationEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return IntegrationEvent{}, false
	}
	return e.clone(), true
}

// byModule returns events whose source or targets include m, newest first.
func (s *eventStore) byModule(m domain.Module, limit int) []IntegrationEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]IntegrationEvent, 0)
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		e := s.events[s.order[i]]
		if e.SourceModule == m || e.Targets(m) {
			out = append(out, e.clone())
		}
	}
	return out
}

func (s *eventStore) withStatus(status Status) []IntegrationEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]IntegrationEvent, 0)
	for _, id := range s.order {
		if e := s.events[id]; e.Status == status {
			out = append(out, e.clone())
		}
	}
	return out
}

func (s *eventStore) stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Total: len(s.order)}
	for _, e := range s.events {
		switch e.Status {
		case StatusPending:
			st.Pending++
		case StatusDelivered:
			st.Delivered++
		case StatusFailed:
			st.Failed++
		}
	}
	return st
}
