package eventbus

import "go-integration/internal/domain"

type PublishEventRequest struct {
	Type          string         `json:"type" binding:"required"`
	SourceModule  string         `json:"source_module" binding:"required"`
	TargetModules []string       `json:"target_modules"`
	CorrelationID string         `json:"correlation_id"`
	CausationID   string         `json:"causation_id"`
	Payload       map[string]any `json:"payload"`
	Priority      string         `json:"priority" binding:"omitempty,oneof=low normal high critical"`
	UserID        string         `json:"user_id"`
	TenantID      string         `json:"tenant_id"`
}

type PublishEventResponse struct {
	ID string `json:"id"`
}

// toDraft resolves module names case-insensitively; unknown names are kept
// verbatim so the bus rejects them.
func (r PublishEventRequest) toDraft() Draft {
	source, ok := domain.ParseModule(r.SourceModule)
	if !ok {
		source = domain.Module(r.SourceModule)
	}

	targets := make([]domain.Module, 0, len(r.TargetModules))
	for _, t := range r.TargetModules {
		m, ok := domain.ParseModule(t)
		if !ok {
			m = domain.Module(t)
		}
		targets = append(targets, m)
	}

	return Draft{
		Type:          r.Type,
		SourceModule:  source,
		TargetModules: targets,
		CorrelationID: r.CorrelationID,
		CausationID:   r.CausationID,
		Payload:       r.Payload,
		Metadata: Metadata{
			UserID:   r.UserID,
			TenantID: r.TenantID,
			Priority: domain.Priority(r.Priority),
		},
	}
}
