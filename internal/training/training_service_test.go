package training_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-integration/internal/audit"
	auditMock "go-integration/internal/audit/mock"
	"go-integration/internal/domain"
	"go-integration/internal/eventbus"
	eventbusMock "go-integration/internal/eventbus/mock"
	"go-integration/internal/events"
	"go-integration/internal/training"
	trainingMock "go-integration/internal/training/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type serviceDeps struct {
	service   training.Service
	repo      training.Repository
	publisher *eventbusMock.MockPublisher
	auditor   *auditMock.MockRecorder
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	repo := training.NewMemoryRepository()
	publisher := eventbusMock.NewMockPublisher(ctrl)
	auditor := auditMock.NewMockRecorder(ctrl)

	return &serviceDeps{
		service:   training.NewService(repo, publisher, auditor, zap.NewNop()),
		repo:      repo,
		publisher: publisher,
		auditor:   auditor,
	}
}

func onboarding(department string, extra ...string) events.EmployeeOnboardingEvent {
	return events.EmployeeOnboardingEvent{
		EmployeeID:        "EMP-001",
		EmployeeName:      "Ana Pop",
		Department:        department,
		Position:          "Operator",
		StartDate:         time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		RequiredTrainings: extra,
	}
}

func trainingNames(assignments []training.Assignment) []string {
	out := make([]string, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, a.TrainingName)
	}
	return out
}

func TestTrainingService_TriggerOnboarding(t *testing.T) {
	ctx := context.Background()

	t.Run("warehouse employee gets six trainings", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d eventbus.Draft) (string, error) {
				assert.Equal(t, events.TypeTrainingAssigned, d.Type)
				assert.Equal(t, domain.ModuleHR, d.SourceModule)
				assert.Equal(t, []domain.Module{domain.ModuleHSE, domain.ModuleLMS}, d.TargetModules)
				assert.Equal(t, domain.PriorityHigh, d.Metadata.Priority)
				assert.Equal(t, 6, d.Payload["assignmentsCount"])
				return "evt-1", nil
			})
		deps.auditor.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e audit.Entry) audit.Entry {
				assert.Equal(t, "evt-1", e.EventID)
				assert.Equal(t, domain.ModuleHR, e.SourceModule)
				assert.Equal(t, domain.ModuleHSE, e.TargetModule)
				assert.Equal(t, "TrainingAssignment", e.EntityType)
				assert.Equal(t, "EMP-001", e.EntityID)
				assert.Len(t, e.Changes, 6)
				return e
			})

		assignments, err := deps.service.TriggerOnboarding(ctx, onboarding("Warehouse"))

		assert.NoError(t, err)
		assert.Equal(t, []string{
			"General Safety Orientation",
			"Fire Safety & Evacuation",
			"Basic First Aid",
			"GDPR Data Protection",
			"Forklift Operation",
			"Manual Handling",
		}, trainingNames(assignments))

		due := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
		for _, a := range assignments {
			assert.Equal(t, training.StatusAssigned, a.Status)
			assert.Equal(t, training.PriorityMandatory, a.Priority)
			assert.True(t, due.Equal(a.DueDate))
		}

		stored, _ := deps.service.GetAssignments(ctx, "EMP-001")
		assert.Len(t, stored, 6)
	})

	t.Run("unknown department gets mandatory only", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return("evt", nil)
		deps.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(audit.Entry{})

		assignments, err := deps.service.TriggerOnboarding(ctx, onboarding("Finance"))

		assert.NoError(t, err)
		assert.Len(t, assignments, 4)
	})

	t.Run("extra required trainings are appended once", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return("evt", nil)
		deps.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(audit.Entry{})

		assignments, err := deps.service.TriggerOnboarding(ctx, onboarding("it", "Basic First Aid", "Cloud Fundamentals", "cloud fundamentals"))

		assert.NoError(t, err)
		assert.Len(t, assignments, 6)
		last := assignments[len(assignments)-1]
		assert.Equal(t, "Cloud Fundamentals", last.TrainingName)
		assert.Equal(t, "cloud-fundamentals", last.TrainingID)
		assert.Equal(t, training.CategoryOnboarding, last.Category)
	})

	t.Run("missing employee id", func(t *testing.T) {
		deps := setupServiceTest(t)
		ev := onboarding("it")
		ev.EmployeeID = ""

		_, err := deps.service.TriggerOnboarding(ctx, ev)
		assert.Error(t, err)
	})

	t.Run("publish failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return("", errors.New("invalid draft"))

		_, err := deps.service.TriggerOnboarding(ctx, onboarding("it"))
		assert.Error(t, err)
	})
}

func TestTrainingService_UpdateStatus(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return("evt", nil)
	deps.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(audit.Entry{})

	assignments, _ := deps.service.TriggerOnboarding(ctx, onboarding("office"))
	id := assignments[0].ID

	ok, err := deps.service.UpdateStatus(ctx, id, training.StatusInProgress)
	assert.NoError(t, err)
	assert.True(t, ok)

	stored, _ := deps.service.GetAssignments(ctx, "EMP-001")
	assert.Equal(t, training.StatusInProgress, stored[0].Status)

	ok, _ = deps.service.UpdateStatus(ctx, "missing", training.StatusCompleted)
	assert.False(t, ok)

	ok, _ = deps.service.UpdateStatus(ctx, id, training.Status("archived"))
	assert.False(t, ok)
}

func TestTrainingService_CompleteByTraining(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return("evt", nil)
	deps.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(audit.Entry{})

	_, _ = deps.service.TriggerOnboarding(ctx, onboarding("warehouse"))

	n, err := deps.service.CompleteByTraining(ctx, "EMP-001", "forklift")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	n, _ = deps.service.CompleteByTraining(ctx, "EMP-001", "forklift")
	assert.Equal(t, 0, n)

	n, _ = deps.service.CompleteByTraining(ctx, "EMP-002", "forklift")
	assert.Equal(t, 0, n)
}

func TestTrainingService_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := trainingMock.NewMockRepository(ctrl)
	svc := training.NewService(repo, eventbusMock.NewMockPublisher(ctrl), auditMock.NewMockRecorder(ctrl), zap.NewNop())

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("store full"))

	_, err := svc.TriggerOnboarding(context.Background(), onboarding("it"))
	assert.Error(t, err)
}

func TestAssignment_Overdue(t *testing.T) {
	now := time.Now()
	a := training.Assignment{DueDate: now.Add(-time.Hour), Status: training.StatusAssigned}
	assert.True(t, a.Overdue(now))

	a.Status = training.StatusCompleted
	assert.False(t, a.Overdue(now))

	a = training.Assignment{DueDate: now.Add(time.Hour), Status: training.StatusAssigned}
	assert.False(t, a.Overdue(now))
}
