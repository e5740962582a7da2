package consumer

import (
	"context"

	"go-integration/internal/events"
	"go-integration/internal/training"

	"go.uber.org/zap"
)

func ConsumeEmployeeOnboarded(
	ctx context.Context,
	reader Reader,
	trainingService training.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_onboarded")

	consume(ctx, reader, log, func(ctx context.Context, event events.EmployeeOnboardingEvent) error {
		assignments, err := trainingService.TriggerOnboarding(ctx, event)
		if err != nil {
			return err
		}
		log.Info("onboarding trainings assigned",
			zap.String("employee_id", event.EmployeeID),
			zap.Int("assignments", len(assignments)),
		)
		return nil
	})
}
