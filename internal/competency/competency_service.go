package competency

import (
	"context"
	"sync"
	"time"

	"go-integration/internal/audit"
	"go-integration/internal/domain"
	"go-integration/internal/eventbus"
	"go-integration/internal/events"
	"go-integration/internal/shared/apperror"
	"go-integration/internal/shared/contextutil"
	"go-integration/internal/training"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=competency_service.go -destination=mock/competency_service_mock.go -package=mock
type Service interface {
	ProcessCourseCompletion(ctx context.Context, event events.CourseCompletionEvent) ([]Update, error)
	GetUpdates(ctx context.Context, employeeID string) ([]Update, error)
	GetMatrix(ctx context.Context, employeeID string) ([]MatrixEntry, error)
	GetCompletions(ctx context.Context) ([]Completion, error)
}

type service struct {
	// mu keeps the previous-level lookup and the append atomic.
	mu        sync.Mutex
	repo      Repository
	trainings training.Service
	publisher eventbus.Publisher
	auditor   audit.Recorder
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	trainings training.Service,
	publisher eventbus.Publisher,
	auditor audit.Recorder,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("competency.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("competency.service")
	}
	return &service{
		repo:      repo,
		trainings: trainings,
		publisher: publisher,
		auditor:   auditor,
		logger:    l,
	}
}

func (s *service) ProcessCourseCompletion(ctx context.Context, event events.CourseCompletionEvent) ([]Update, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if event.EmployeeID == "" {
		return nil, apperror.RequiredField("employee_id")
	}

	evidence := event.CertificateID
	if evidence == "" {
		evidence = event.CourseID
	}
	level := LevelForScore(event.Score)
	now := time.Now().UTC()

	s.mu.Lock()
	history, err := s.repo.FindUpdates(ctx, event.EmployeeID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	current := make(map[string]int)
	for _, m := range buildMatrix(history) {
		current[m.Competency] = m.Level
	}

	updates := make([]Update, 0, len(event.Skills))
	for _, skill := range event.Skills {
		updates = append(updates, Update{
			EmployeeID:     event.EmployeeID,
			CompetencyID:   competencyID(skill),
			CompetencyName: skill,
			PreviousLevel:  current[skill],
			NewLevel:       level,
			Source:         SourceCourse,
			EvidenceID:     evidence,
			UpdatedDate:    now,
		})
		current[skill] = level
	}

	err = s.repo.AppendUpdates(ctx, updates)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	completed := event.CompletedDate
	if completed.IsZero() {
		completed = now
	}
	if err := s.repo.SaveCompletion(ctx, Completion{
		EmployeeID:    event.EmployeeID,
		CourseID:      event.CourseID,
		CourseName:    event.CourseName,
		Score:         event.Score,
		CertificateID: event.CertificateID,
		ValidUntil:    event.ValidUntil,
		CompletedDate: completed,
	}); err != nil {
		log.Warn("failed to store course completion", zap.String("course_id", event.CourseID), zap.Error(err))
	}

	summaries := make([]map[string]any, 0, len(updates))
	changes := make([]audit.Change, 0, len(updates))
	for _, u := range updates {
		summaries = append(summaries, map[string]any{
			"competency":    u.CompetencyName,
			"previousLevel": u.PreviousLevel,
			"newLevel":      u.NewLevel,
		})
		changes = append(changes, audit.Change{Field: u.CompetencyName, OldValue: u.PreviousLevel, NewValue: u.NewLevel})
	}

	eventID, err := s.publisher.Publish(ctx, eventbus.Draft{
		Type:          events.TypeCompetencyUpdated,
		SourceModule:  domain.ModuleLMS,
		TargetModules: []domain.Module{domain.ModuleHR},
		CorrelationID: uuid.NewString(),
		Payload: map[string]any{
			"employeeId":        event.EmployeeID,
			"courseId":          event.CourseID,
			"courseName":        event.CourseName,
			"competencyUpdates": summaries,
		},
		Metadata: eventbus.Metadata{Priority: domain.PriorityNormal},
	})
	if err != nil {
		return nil, err
	}

	completedCount, err := s.trainings.CompleteByTraining(ctx, event.EmployeeID, event.CourseID)
	if err != nil {
		log.Warn("failed to complete training assignments",
			zap.String("employee_id", event.EmployeeID),
			zap.String("course_id", event.CourseID),
			zap.Error(err),
		)
	}

	s.auditor.Record(ctx, audit.Entry{
		EventID:      eventID,
		EventType:    events.TypeCompetencyUpdated,
		SourceModule: domain.ModuleLMS,
		TargetModule: domain.ModuleHR,
		Action:       "update",
		EntityType:   "Competency",
		EntityID:     event.EmployeeID,
		Changes:      changes,
		Metadata:     map[string]any{"courseId": event.CourseID},
		Status:       audit.StatusSuccess,
	})

	log.Info("competencies updated from course completion",
		zap.String("employee_id", event.EmployeeID),
		zap.String("course_id", event.CourseID),
		zap.Int("competencies", len(updates)),
		zap.Int("trainings_completed", completedCount),
	)

	return updates, nil
}

func (s *service) GetUpdates(ctx context.Context, employeeID string) ([]Update, error) {
	return s.repo.FindUpdates(ctx, employeeID)
}

func (s *service) GetMatrix(ctx context.Context, employeeID string) ([]MatrixEntry, error) {
	updates, err := s.repo.FindUpdates(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return buildMatrix(updates), nil
}

func (s *service) GetCompletions(ctx context.Context) ([]Completion, error) {
	return s.repo.FindCompletions(ctx)
}
