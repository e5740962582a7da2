package dashboard

import "sync"

const DefaultHistoryLimit = 100

// history is a bounded ring of snapshots, oldest first.
type history struct {
	mu    sync.RWMutex
	limit int
	items []Metrics
}

func newHistory(limit int) *history {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &history{limit: limit}
}

func (h *history) append(m Metrics) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = append(h.items, m)
	if over := len(h.items) - h.limit; over > 0 {
		h.items = append([]Metrics(nil), h.items[over:]...)
	}
}

func (h *history) last(n int) []Metrics {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n <= 0 || n > len(h.items) {
		n = len(h.items)
	}
	return append([]Metrics(nil), h.items[len(h.items)-n:]...)
}

func (h *history) latest() (Metrics, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.items) == 0 {
		return Metrics{}, false
	}
	return h.items[len(h.items)-1], true
}
