package audit

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

const DefaultRetention = 1000

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Append(ctx context.Context, entry Entry) error
	// Find returns matching entries oldest first.
	Find(ctx context.Context, filter Filter) ([]Entry, error)
}

// memoryRepository keeps the most recent `retention` entries.
type memoryRepository struct {
	mu        sync.RWMutex
	retention int
	entries   []Entry
}

func NewMemoryRepository(retention int) Repository {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &memoryRepository{retention: retention}
}

func (r *memoryRepository) Append(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	if over := len(r.entries) - r.retention; over > 0 {
		r.entries = append([]Entry(nil), r.entries[over:]...)
	}
	return nil
}

func (r *memoryRepository) Find(_ context.Context, filter Filter) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0)
	for _, e := range r.entries {
		if filter.matches(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, entry Entry) error {
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *repository) Find(ctx context.Context, filter Filter) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Scopes(filterScope(filter)).
		Order("timestamp ASC").
		Find(&entries).Error
	return entries, err
}

func filterScope(f Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.SourceModule != "" {
			db = db.Where("source_module = ?", f.SourceModule)
		}
		if f.TargetModule != "" {
			db = db.Where("target_module = ?", f.TargetModule)
		}
		if f.EntityType != "" {
			db = db.Where("entity_type = ?", f.EntityType)
		}
		if f.EntityID != "" {
			db = db.Where("entity_id = ?", f.EntityID)
		}
		if f.StartDate != nil {
			db = db.Where("timestamp >= ?", *f.StartDate)
		}
		if f.EndDate != nil {
			db = db.Where("timestamp <= ?", *f.EndDate)
		}
		return db
	}
}
