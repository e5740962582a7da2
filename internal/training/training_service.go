package training

import (
	"context"
	"time"

	"go-integration/internal/audit"
	"go-integration/internal/domain"
	"go-integration/internal/eventbus"
	"go-integration/internal/events"
	"go-integration/internal/shared/apperror"
	"go-integration/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=training_service.go -destination=mock/training_service_mock.go -package=mock
type Service interface {
	TriggerOnboarding(ctx context.Context, event events.EmployeeOnboardingEvent) ([]Assignment, error)
	GetAssignments(ctx context.Context, employeeID string) ([]Assignment, error)
	UpdateStatus(ctx context.Context, id string, status Status) (bool, error)
	// CompleteByTraining marks the employee's assignments for trainingID
	// completed and returns how many changed.
	CompleteByTraining(ctx context.Context, employeeID, trainingID string) (int, error)
}

type service struct {
	repo      Repository
	publisher eventbus.Publisher
	auditor   audit.Recorder
	logger    *zap.Logger
}

func NewService(repo Repository, publisher eventbus.Publisher, auditor audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("training.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("training.service")
	}
	return &service{repo: repo, publisher: publisher, auditor: auditor, logger: l}
}

func (s *service) TriggerOnboarding(ctx context.Context, event events.EmployeeOnboardingEvent) ([]Assignment, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if event.EmployeeID == "" {
		return nil, apperror.RequiredField("employee_id")
	}
	if event.StartDate.IsZero() {
		return nil, apperror.RequiredField("start_date")
	}

	now := time.Now().UTC()
	due := event.StartDate.Add(DueWindow)

	courses := coursesFor(event.Department, event.RequiredTrainings)
	assignments := make([]Assignment, 0, len(courses))
	for _, c := range courses {
		assignments = append(assignments, Assignment{
			ID:           uuid.NewString(),
			EmployeeID:   event.EmployeeID,
			TrainingID:   c.id,
			TrainingName: c.name,
			Category:     c.category,
			DueDate:      due,
			AssignedDate: now,
			Status:       StatusAssigned,
			Priority:     PriorityMandatory,
		})
	}

	if err := s.repo.Save(ctx, assignments); err != nil {
		log.Error("failed to save training assignments", zap.String("employee_id", event.EmployeeID), zap.Error(err))
		return nil, err
	}

	summary := make([]map[string]any, 0, len(assignments))
	changes := make([]audit.Change, 0, len(assignments))
	for _, a := range assignments {
		summary = append(summary, map[string]any{"id": a.ID, "training": a.TrainingName})
		changes = append(changes, audit.Change{Field: "training", NewValue: a.TrainingName})
	}

	eventID, err := s.publisher.Publish(ctx, eventbus.Draft{
		Type:          events.TypeTrainingAssigned,
		SourceModule:  domain.ModuleHR,
		TargetModules: []domain.Module{domain.ModuleHSE, domain.ModuleLMS},
		Payload: map[string]any{
			"employeeId":       event.EmployeeID,
			"employeeName":     event.EmployeeName,
			"department":       event.Department,
			"assignmentsCount": len(assignments),
			"assignments":      summary,
		},
		Metadata: eventbus.Metadata{
			UserID:   event.EmployeeID,
			Priority: domain.PriorityHigh,
		},
	})
	if err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, audit.Entry{
		EventID:      eventID,
		EventType:    events.TypeTrainingAssigned,
		SourceModule: domain.ModuleHR,
		TargetModule: domain.ModuleHSE,
		Action:       "create",
		EntityType:   "TrainingAssignment",
		EntityID:     event.EmployeeID,
		Changes:      changes,
		Metadata:     map[string]any{"department": event.Department},
		Status:       audit.StatusSuccess,
	})

	log.Info("training assigned",
		zap.String("employee_id", event.EmployeeID),
		zap.String("department", event.Department),
		zap.Int("assignments", len(assignments)),
	)

	return assignments, nil
}

func (s *service) GetAssignments(ctx context.Context, employeeID string) ([]Assignment, error) {
	return s.repo.FindByEmployee(ctx, employeeID)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (bool, error) {
	if !status.Valid() {
		return false, nil
	}
	ok, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil || !ok {
		return false, err
	}

	contextutil.GetLogger(ctx, s.logger).Debug("training status updated",
		zap.String("assignment_id", id),
		zap.String("status", string(status)),
	)
	return true, nil
}

func (s *service) CompleteByTraining(ctx context.Context, employeeID, trainingID string) (int, error) {
	assignments, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, a := range assignments {
		if a.TrainingID != trainingID || a.Status == StatusCompleted {
			continue
		}
		ok, err := s.repo.UpdateStatus(ctx, a.ID, StatusCompleted)
		if err != nil {
			return completed, err
		}
		if ok {
			completed++
		}
	}
	return completed, nil
}
