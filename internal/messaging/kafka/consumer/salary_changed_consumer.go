package consumer

import (
	"context"

	"go-integration/internal/events"
	"go-integration/internal/payroll"

	"go.uber.org/zap"
)

func ConsumeSalaryChanged(
	ctx context.Context,
	reader Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_changed")

	consume(ctx, reader, log, func(ctx context.Context, event events.SalaryChangeEvent) error {
		entry, err := payrollService.SyncSalary(ctx, event)
		if err != nil {
			return err
		}
		log.Info("salary synced to payroll",
			zap.String("employee_id", event.EmployeeID),
			zap.String("payroll_entry_id", entry.ID),
		)
		return nil
	})
}
