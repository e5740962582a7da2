package rule

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-integration/internal/domain"
	"go-integration/internal/eventbus"
	ruleerrors "go-integration/internal/rule/errors"
	"go-integration/internal/shared/apperror"
	"go-integration/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rule_service.go -destination=mock/rule_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRuleRequest) (Rule, error)
	// GetByID, Update and Delete report an unknown id as ok == false with a
	// nil error.
	GetByID(ctx context.Context, id string) (Rule, bool, error)
	GetAll(ctx context.Context) ([]Rule, error)
	Update(ctx context.Context, id string, req UpdateRuleRequest) (Rule, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Seed(ctx context.Context, reqs []CreateRuleRequest) (int, error)
	ApplicableRules(ctx context.Context, event eventbus.IntegrationEvent) ([]Rule, error)
	Subscriber() eventbus.HandlerFunc
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("rule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rule.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateRuleRequest) (Rule, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	source, target, err := validateCreate(req)
	if err != nil {
		return Rule{}, err
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	now := time.Now().UTC()
	rule := &Rule{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		SourceModule: source,
		TargetModule: target,
		TriggerEvent: strings.TrimSpace(req.TriggerEvent),
		Enabled:      enabled,
		Conditions:   nonNilConditions(req.Conditions),
		Actions:      nonNilActions(req.Actions),
		Priority:     req.Priority,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, rule); err != nil {
		log.Warn("failed to create rule", zap.String("name", rule.Name), zap.Error(err))
		return Rule{}, err
	}

	log.Info("rule created",
		zap.String("rule_id", rule.ID),
		zap.String("name", rule.Name),
		zap.String("trigger_event", rule.TriggerEvent),
		zap.Int("priority", rule.Priority),
	)
	return *rule, nil
}

func (s *service) GetByID(ctx context.Context, id string) (Rule, bool, error) {
	rule, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ruleerrors.ErrRuleNotFound) {
		return Rule{}, false, nil
	}
	if err != nil {
		return Rule{}, false, err
	}
	return *rule, true, nil
}

func (s *service) GetAll(ctx context.Context) ([]Rule, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRuleRequest) (Rule, bool, error) {
	rule, ok, err := s.GetByID(ctx, id)
	if err != nil || !ok {
		return Rule{}, ok, err
	}

	if err := applyUpdate(&rule, req); err != nil {
		return Rule{}, true, err
	}

	now := time.Now().UTC()
	if !now.After(rule.UpdatedAt) {
		now = rule.UpdatedAt.Add(time.Microsecond)
	}
	rule.UpdatedAt = now

	err = s.repo.Update(ctx, &rule)
	if errors.Is(err, ruleerrors.ErrRuleNotFound) {
		return Rule{}, false, nil
	}
	if err != nil {
		return Rule{}, true, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("rule updated", zap.String("rule_id", rule.ID))
	return rule, true, nil
}

func (s *service) Delete(ctx context.Context, id string) (bool, error) {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ruleerrors.ErrRuleNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("rule deleted", zap.String("rule_id", id))
	return true, nil
}

// Seed creates each rule whose name is not yet taken and reports how many
// were created.
func (s *service) Seed(ctx context.Context, reqs []CreateRuleRequest) (int, error) {
	created := 0
	for _, req := range reqs {
		_, err := s.Create(ctx, req)
		if errors.Is(err, ruleerrors.ErrRuleNameExists) {
			s.logger.Debug("rule already seeded", zap.String("name", req.Name))
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *service) ApplicableRules(ctx context.Context, event eventbus.IntegrationEvent) ([]Rule, error) {
	rules, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Rule, 0)
	for _, r := range rules {
		if !r.Enabled || r.SourceModule != event.SourceModule || r.TriggerEvent != event.Type {
			continue
		}
		if r.Matches(event.Payload) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Subscriber returns a bus handler that resolves the rules an event fires
// and logs their actions.
func (s *service) Subscriber() eventbus.HandlerFunc {
	return func(ctx context.Context, event eventbus.IntegrationEvent) error {
		rules, err := s.ApplicableRules(ctx, event)
		if err != nil {
			return err
		}

		log := contextutil.GetLogger(ctx, s.logger)
		for _, r := range rules {
			for _, action := range r.Actions {
				log.Info("rule action fired",
					zap.String("rule_id", r.ID),
					zap.String("rule_name", r.Name),
					zap.String("event_id", event.ID),
					zap.String("event_type", event.Type),
					zap.String("action_type", string(action.Type)),
					zap.String("action_target", action.Target),
					zap.String("target_module", string(r.TargetModule)),
				)
			}
		}
		return nil
	}
}

func validateCreate(req CreateRuleRequest) (domain.Module, domain.Module, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", "", apperror.RequiredField("name")
	}
	if strings.TrimSpace(req.TriggerEvent) == "" {
		return "", "", apperror.RequiredField("trigger_event")
	}
	source, ok := domain.ParseModule(req.SourceModule)
	if !ok {
		return "", "", apperror.InvalidField("source_module")
	}
	target, ok := domain.ParseModule(req.TargetModule)
	if !ok {
		return "", "", apperror.InvalidField("target_module")
	}
	if err := validateParts(req.Conditions, req.Actions); err != nil {
		return "", "", err
	}
	return source, target, nil
}

func validateParts(conditions []Condition, actions []Action) error {
	for _, c := range conditions {
		if strings.TrimSpace(c.Field) == "" {
			return apperror.RequiredField("conditions.field")
		}
		if !c.Operator.Valid() {
			return ruleerrors.ErrInvalidOperator
		}
	}
	for _, a := range actions {
		if !a.Type.Valid() {
			return ruleerrors.ErrInvalidActionType
		}
	}
	return nil
}

func applyUpdate(rule *Rule, req UpdateRuleRequest) error {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return apperror.RequiredField("name")
		}
		rule.Name = name
	}
	if req.Description != nil {
		rule.Description = *req.Description
	}
	if req.SourceModule != nil {
		m, ok := domain.ParseModule(*req.SourceModule)
		if !ok {
			return apperror.InvalidField("source_module")
		}
		rule.SourceModule = m
	}
	if req.TargetModule != nil {
		m, ok := domain.ParseModule(*req.TargetModule)
		if !ok {
			return apperror.InvalidField("target_module")
		}
		rule.TargetModule = m
	}
	if req.TriggerEvent != nil {
		trigger := strings.TrimSpace(*req.TriggerEvent)
		if trigger == "" {
			return apperror.RequiredField("trigger_event")
		}
		rule.TriggerEvent = trigger
	}
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}
	if req.Conditions != nil {
		if err := validateParts(*req.Conditions, nil); err != nil {
			return err
		}
		rule.Conditions = nonNilConditions(*req.Conditions)
	}
	if req.Actions != nil {
		if err := validateParts(nil, *req.Actions); err != nil {
			return err
		}
		rule.Actions = nonNilActions(*req.Actions)
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	return nil
}

func nonNilConditions(c []Condition) []Condition {
	if c == nil {
		return []Condition{}
	}
	return c
}

func nonNilActions(a []Action) []Action {
	if a == nil {
		return []Action{}
	}
	return a
}
