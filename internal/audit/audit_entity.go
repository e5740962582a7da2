package audit

import (
	"time"

	"go-integration/internal/domain"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusPartial Status = "partial"
)

type Change struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

// Entry is append-only; nothing updates or deletes it once recorded.
type Entry struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	Timestamp    time.Time      `json:"timestamp" gorm:"index"`
	EventID      string         `json:"event_id"`
	EventType    string         `json:"event_type"`
	SourceModule domain.Module  `json:"source_module" gorm:"index"`
	TargetModule domain.Module  `json:"target_module" gorm:"index"`
	Action       string         `json:"action"`
	EntityType   string         `json:"entity_type" gorm:"index:idx_audit_entity"`
	EntityID     string         `json:"entity_id" gorm:"index:idx_audit_entity"`
	UserID       string         `json:"user_id,omitempty"`
	TenantID     string         `json:"tenant_id,omitempty"`
	Changes      []Change       `json:"changes,omitempty" gorm:"serializer:json"`
	Metadata     map[string]any `json:"metadata,omitempty" gorm:"serializer:json"`
	Status       Status         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

func (Entry) TableName() string {
	return "audit_entries"
}

// Filter fields are conjunctive; zero values are ignored. Date bounds are
// inclusive.
type Filter struct {
	SourceModule domain.Module
	TargetModule domain.Module
	EntityType   string
	EntityID     string
	StartDate    *time.Time
	EndDate      *time.Time
}

func (f Filter) matches(e Entry) bool {
	if f.SourceModule != "" && e.SourceModule != f.SourceModule {
		return false
	}
	if f.TargetModule != "" && e.TargetModule != f.TargetModule {
		return false
	}
	if f.EntityType != "" && e.EntityType != f.EntityType {
		return false
	}
	if f.EntityID != "" && e.EntityID != f.EntityID {
		return false
	}
	if f.StartDate != nil && e.Timestamp.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && e.Timestamp.After(*f.EndDate) {
		return false
	}
	return true
}

type Summary struct {
	TotalEntries   int            `json:"total_entries"`
	BySourceModule map[string]int `json:"by_source_module"`
	ByStatus       map[string]int `json:"by_status"`
	RecentActivity []Entry        `json:"recent_activity"`
}
