package competency_test

import (
	"context"
	"errors"
	"testing"

	"go-integration/internal/audit"
	auditMock "go-integration/internal/audit/mock"
	"go-integration/internal/competency"
	"go-integration/internal/domain"
	"go-integration/internal/eventbus"
	eventbusMock "go-integration/internal/eventbus/mock"
	"go-integration/internal/events"
	trainingMock "go-integration/internal/training/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func score(v float64) *float64 { return &v }

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		name  string
		score *float64
		want  int
	}{
		{"no score", nil, 1},
		{"zero", score(0), 1},
		{"95", score(95), 5},
		{"90 boundary", score(90), 5},
		{"85", score(85), 4},
		{"65", score(65), 3},
		{"40 boundary", score(40), 2},
		{"39.9", score(39.9), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, competency.LevelForScore(tt.score))
		})
	}
}

type serviceDeps struct {
	service   competency.Service
	trainings *trainingMock.MockService
	publisher *eventbusMock.MockPublisher
	auditor   *auditMock.MockRecorder
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	trainings := trainingMock.NewMockService(ctrl)
	publisher := eventbusMock.NewMockPublisher(ctrl)
	auditor := auditMock.NewMockRecorder(ctrl)

	return &serviceDeps{
		service:   competency.NewService(competency.NewMemoryRepository(), trainings, publisher, auditor, zap.NewNop()),
		trainings: trainings,
		publisher: publisher,
		auditor:   auditor,
	}
}

func (d *serviceDeps) allowSideEffects() {
	d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return("evt", nil).AnyTimes()
	d.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(audit.Entry{}).AnyTimes()
	d.trainings.EXPECT().CompleteByTraining(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
}

func completion(courseID string, s *float64, skills ...string) events.CourseCompletionEvent {
	return events.CourseCompletionEvent{
		EmployeeID: "EMP-003",
		CourseID:   courseID,
		CourseName: "Course " + courseID,
		Score:      s,
		Skills:     skills,
	}
}

func TestCompetencyService_ProcessCourseCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("one update per skill with side effects", func(t *testing.T) {
		deps := setupServiceTest(t)

		var published eventbus.Draft
		deps.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d eventbus.Draft) (string, error) {
				published = d
				return "evt-1", nil
			})
		deps.trainings.EXPECT().CompleteByTraining(gomock.Any(), "EMP-003", "fire-safety").Return(1, nil)
		var recorded audit.Entry
		deps.auditor.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e audit.Entry) audit.Entry {
				recorded = e
				return e
			})

		ev := completion("fire-safety", score(95), "Fire Safety", "Evacuation")
		ev.CertificateID = "CERT-1"
		updates, err := deps.service.ProcessCourseCompletion(ctx, ev)

		assert.NoError(t, err)
		assert.Len(t, updates, 2)
		assert.Equal(t, "comp-fire-safety", updates[0].CompetencyID)
		assert.Equal(t, 0, updates[0].PreviousLevel)
		assert.Equal(t, 5, updates[0].NewLevel)
		assert.Equal(t, "CERT-1", updates[0].EvidenceID)
		assert.Equal(t, competency.SourceCourse, updates[1].Source)

		assert.Equal(t, events.TypeCompetencyUpdated, published.Type)
		assert.Equal(t, domain.ModuleLMS, published.SourceModule)
		assert.Equal(t, []domain.Module{domain.ModuleHR}, published.TargetModules)

		assert.Equal(t, "evt-1", recorded.EventID)
		assert.Equal(t, "Competency", recorded.EntityType)
		assert.Equal(t, "EMP-003", recorded.EntityID)
		assert.Len(t, recorded.Changes, 2)
	})

	t.Run("previous level is the current matrix level", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.allowSideEffects()

		_, _ = deps.service.ProcessCourseCompletion(ctx, completion("c1", score(65), "Forklift"))
		_, _ = deps.service.ProcessCourseCompletion(ctx, completion("c2", score(85), "Forklift"))
		updates, err := deps.service.ProcessCourseCompletion(ctx, completion("c3", score(95), "Forklift"))

		assert.NoError(t, err)
		assert.Equal(t, 4, updates[0].PreviousLevel)
		assert.Equal(t, 5, updates[0].NewLevel)
		assert.Equal(t, "c3", updates[0].EvidenceID)
	})

	t.Run("no skills still completes trainings and audits", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d eventbus.Draft) (string, error) {
				assert.Equal(t, events.TypeCompetencyUpdated, d.Type)
				assert.Empty(t, d.Payload["competencyUpdates"])
				return "evt", nil
			})
		deps.trainings.EXPECT().CompleteByTraining(gomock.Any(), "EMP-003", "c1").Return(1, nil)
		deps.auditor.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e audit.Entry) audit.Entry {
				assert.Equal(t, "evt", e.EventID)
				assert.Empty(t, e.Changes)
				return e
			})

		updates, err := deps.service.ProcessCourseCompletion(ctx, completion("c1", score(95)))

		assert.NoError(t, err)
		assert.NotNil(t, updates)
		assert.Empty(t, updates)
	})

	t.Run("training failure does not fail the workflow", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return("evt", nil)
		deps.trainings.EXPECT().CompleteByTraining(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("boom"))
		deps.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(audit.Entry{})

		updates, err := deps.service.ProcessCourseCompletion(ctx, completion("c1", nil, "Packing"))

		assert.NoError(t, err)
		assert.Equal(t, 1, updates[0].NewLevel)
	})
}

func TestCompetencyService_GetMatrix(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	deps.allowSideEffects()

	_, _ = deps.service.ProcessCourseCompletion(ctx, completion("c1", score(65), "Forklift", "Safety"))
	_, _ = deps.service.ProcessCourseCompletion(ctx, completion("c2", score(45), "Forklift"))

	matrix, err := deps.service.GetMatrix(ctx, "EMP-003")

	assert.NoError(t, err)
	if assert.Len(t, matrix, 2) {
		assert.Equal(t, "Forklift", matrix[0].Competency)
		assert.Equal(t, 2, matrix[0].Level)
		assert.Equal(t, "Safety", matrix[1].Competency)
		assert.Equal(t, 3, matrix[1].Level)
	}

	history, _ := deps.service.GetUpdates(ctx, "EMP-003")
	assert.Len(t, history, 3)

	empty, _ := deps.service.GetMatrix(ctx, "nobody")
	assert.Empty(t, empty)

	completions, _ := deps.service.GetCompletions(ctx)
	assert.Len(t, completions, 2)
}
