package eventbus

import "sync"

type subscription struct {
	id      uint64
	pattern string
	handler HandlerFunc
}

// registry holds subscriptions in registration order.
type registry struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscription
}

func (r *registry) add(pattern string, handler HandlerFunc) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.subs = append(r.subs, subscription{id: r.nextID, pattern: pattern, handler: handler})
	return r.nextID
}

func (r *registry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subs {
		if s.id == id {
			r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
			return
		}
	}
}

// matching snapshots the subscriptions that receive eventType.
func (r *registry) matching(eventType string) []subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]subscription, 0, len(r.subs))
	for _, s := range r.subs {
		if patternMatches(s.pattern, eventType) {
			out = append(out, s)
		}
	}
	return out
}

func (r *registry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

func patternMatches(pattern, eventType string) bool {
	return pattern == Wildcard || pattern == eventType
}
