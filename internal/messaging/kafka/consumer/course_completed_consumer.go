package consumer

import (
	"context"

	"go-integration/internal/competency"
	"go-integration/internal/events"

	"go.uber.org/zap"
)

func ConsumeCourseCompleted(
	ctx context.Context,
	reader Reader,
	competencyService competency.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.course_completed")

	consume(ctx, reader, log, func(ctx context.Context, event events.CourseCompletionEvent) error {
		updates, err := competencyService.ProcessCourseCompletion(ctx, event)
		if err != nil {
			return err
		}
		log.Info("competencies updated from course completion",
			zap.String("employee_id", event.EmployeeID),
			zap.String("course_id", event.CourseID),
			zap.Int("updates", len(updates)),
		)
		return nil
	})
}
