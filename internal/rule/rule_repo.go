package rule

import (
	"context"
	"sort"
	"sync"

	ruleerrors "go-integration/internal/rule/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rule_repo.go -destination=mock/rule_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, rule *Rule) error
	// FindAll returns rules by priority, highest first.
	FindAll(ctx context.Context) ([]Rule, error)
	FindByID(ctx context.Context, id string) (*Rule, error)
	Update(ctx context.Context, rule *Rule) error
	Delete(ctx context.Context, id string) error
}

type memoryRepository struct {
	mu    sync.RWMutex
	order []string
	rules map[string]Rule
}

func NewMemoryRepository() Repository {
	return &memoryRepository{rules: make(map[string]Rule)}
}

func (r *memoryRepository) Create(_ context.Context, rule *Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rules {
		if existing.Name == rule.Name {
			return ruleerrors.ErrRuleNameExists
		}
	}

	r.rules[rule.ID] = cloneRule(*rule)
	r.order = append(r.order, rule.ID)
	return nil
}

func (r *memoryRepository) FindAll(_ context.Context) ([]Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Rule, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneRule(r.rules[id]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[id]
	if !ok {
		return nil, ruleerrors.ErrRuleNotFound
	}
	out := cloneRule(rule)
	return &out, nil
}

func (r *memoryRepository) Update(_ context.Context, rule *Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rules[rule.ID]; !ok {
		return ruleerrors.ErrRuleNotFound
	}
	for id, existing := range r.rules {
		if id != rule.ID && existing.Name == rule.Name {
			return ruleerrors.ErrRuleNameExists
		}
	}
	r.rules[rule.ID] = cloneRule(*rule)
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rules[id]; !ok {
		return ruleerrors.ErrRuleNotFound
	}
	delete(r.rules, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// cloneRule copies the slices so callers never alias stored state.
func cloneRule(r Rule) Rule {
	r.Conditions = append([]Condition(nil), r.Conditions...)
	r.Actions = append([]Action(nil), r.Actions...)
	return r
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rule *Rule) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(rule).Error)
}

func (r *repository) FindAll(ctx context.Context) ([]Rule, error) {
	var rules []Rule
	err := r.db.WithContext(ctx).
		Order("priority DESC").
		Order("created_at ASC").
		Find(&rules).Error
	return rules, mapRepositoryError(err)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Rule, error) {
	var rule Rule
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rule).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &rule, nil
}

func (r *repository) Update(ctx context.Context, rule *Rule) error {
	res := r.db.WithContext(ctx).
		Model(&Rule{}).
		Where("id = ?", rule.ID).
		Select("*").
		Updates(rule)
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ruleerrors.ErrRuleNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Rule{})
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ruleerrors.ErrRuleNotFound
	}
	return nil
}
