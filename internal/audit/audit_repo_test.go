package audit_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-integration/internal/audit"
	"go-integration/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupGormRepo(t *testing.T) (audit.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	return audit.NewRepository(gormDB), mock
}

func TestAuditRepository_Append(t *testing.T) {
	repo, mock := setupGormRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "audit_entries"`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Append(context.Background(), audit.Entry{
		ID:           "2f1c9a57-6a55-4a43-9c1e-8d0f0c6a1a11",
		Timestamp:    time.Now().UTC(),
		SourceModule: domain.ModuleHR,
		TargetModule: domain.ModuleHSE,
		EntityType:   "TrainingAssignment",
		Changes:      []audit.Change{{Field: "training", NewValue: "Basic First Aid"}},
		Status:       audit.StatusSuccess,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_Find(t *testing.T) {
	repo, mock := setupGormRepo(t)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "timestamp", "source_module", "target_module", "entity_type", "entity_id", "changes", "status"}).
		AddRow("a1", start.Add(time.Hour), "HR", "Finance", "PayrollEntry", "EMP-1", `[{"field":"salary","old_value":5000,"new_value":6000}]`, "success")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "audit_entries" WHERE source_module = $1 AND entity_id = $2 AND timestamp >= $3 ORDER BY timestamp ASC`)).
		WithArgs(domain.ModuleHR, "EMP-1", start).
		WillReturnRows(rows)

	entries, err := repo.Find(context.Background(), audit.Filter{
		SourceModule: domain.ModuleHR,
		EntityID:     "EMP-1",
		StartDate:    &start,
	})

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, domain.ModuleFinance, entries[0].TargetModule)
	assert.Len(t, entries[0].Changes, 1)
	assert.Equal(t, "salary", entries[0].Changes[0].Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}
