package app

import (
	"context"
	"io"
	"sync"

	"go-integration/internal/config"
	"go-integration/internal/events"
	"go-integration/internal/messaging/kafka/consumer"

	"go.uber.org/zap"
)

// startConsumers runs one reader per workflow trigger topic and returns the
// readers so they can be closed on shutdown.
func startConsumers(ctx context.Context, wg *sync.WaitGroup, cfg config.KafkaConfig, c *container, logger *zap.Logger) []io.Closer {
	onboarded := consumer.NewReader(cfg.Broker, cfg.GroupID, events.EmployeeOnboardedTopic)
	salary := consumer.NewReader(cfg.Broker, cfg.GroupID, events.SalaryChangedTopic)
	courses := consumer.NewReader(cfg.Broker, cfg.GroupID, events.CourseCompletedTopic)

	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	run(func() { consumer.ConsumeEmployeeOnboarded(ctx, onboarded, c.trainings, logger) })
	run(func() { consumer.ConsumeSalaryChanged(ctx, salary, c.payroll, logger) })
	run(func() { consumer.ConsumeCourseCompleted(ctx, courses, c.competency, logger) })

	logger.Named("app").Info("kafka consumers started",
		zap.String("broker", cfg.Broker),
		zap.String("group_id", cfg.GroupID),
	)
	return []io.Closer{onboarded, salary, courses}
}
