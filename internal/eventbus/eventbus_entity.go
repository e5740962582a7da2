package eventbus

import (
	"slices"
	"time"

	"go-integration/internal/domain"
)

// Wildcard subscribes to every event type.
const Wildcard = "*"

type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

const DefaultMaxRetries = 3

type Metadata struct {
	UserID     string          `json:"user_id,omitempty"`
	TenantID   string          `json:"tenant_id,omitempty"`
	Priority   domain.Priority `json:"priority"`
	RetryCount int             `json:"retry_count"`
	MaxRetries int             `json:"max_retries"`
}

// IntegrationEvent is immutable once stored, except for Status.
type IntegrationEvent struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	SourceModule  domain.Module   `json:"source_module"`
	TargetModules []domain.Module `json:"target_modules"`
	CorrelationID string          `json:"correlation_id"`
	CausationID   string          `json:"causation_id,omitempty"`
	Payload       map[string]any  `json:"payload"`
	Metadata      Metadata        `json:"metadata"`
	Timestamp     time.Time       `json:"timestamp"`
	Status        Status          `json:"status"`
}

// Targets reports whether m is one of the event's target modules.
func (e IntegrationEvent) Targets(m domain.Module) bool {
	for _, t := range e.TargetModules {
		if t == m {
			return true
		}
	}
	return false
}

// Draft is what publishers hand to the bus; id, timestamp and status are
// assigned on publish.
type Draft struct {
	Type          string
	SourceModule  domain.Module
	TargetModules []domain.Module
	CorrelationID string
	CausationID   string
	Payload       map[string]any
	Metadata      Metadata
}

// Stats summarises the event store.
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}

// clone returns a copy sharing no maps or slices with e.
func (e IntegrationEvent) clone() IntegrationEvent {
	out := e
	out.TargetModules = slices.Clone(e.TargetModules)
	out.Payload = clonePayload(e.Payload)
	return out
}

func clonePayload(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return clonePayload(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return slices.Clone(t)
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, item := range t {
			out[i] = clonePayload(item)
		}
		return out
	default:
		return v
	}
}
