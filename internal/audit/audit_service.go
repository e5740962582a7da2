package audit

import (
	"context"
	"sort"
	"time"

	"go-integration/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recentActivitySize = 10

// Recorder is what workflows depend on to write the trail.
//
//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Recorder interface {
	Record(ctx context.Context, entry Entry) Entry
}

type Service interface {
	Recorder
	GetTrail(ctx context.Context, filter Filter) ([]Entry, error)
	GetSummary(ctx context.Context) (Summary, error)
}

type service struct {
	repo   Repository
	sink   *zap.Logger
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	base := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		base = logger[0]
	}
	return &service{
		repo:   repo,
		sink:   base.Named("audit"),
		logger: base.Named("audit.service"),
	}
}

// Record stamps and stores the entry. A storage failure is logged and the
// stamped entry is still returned; the audit trail never fails a workflow.
func (s *service) Record(ctx context.Context, entry Entry) Entry {
	entry.ID = uuid.NewString()
	entry.Timestamp = time.Now().UTC()
	if entry.EventID == "" {
		entry.EventID = uuid.NewString()
	}
	if entry.Status == "" {
		entry.Status = StatusSuccess
	}
	if entry.UserID == "" {
		entry.UserID = contextutil.GetUserID(ctx)
	}
	if entry.TenantID == "" {
		entry.TenantID = contextutil.GetTenantID(ctx)
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to persist audit entry",
			zap.String("audit_id", entry.ID),
			zap.String("entity_type", entry.EntityType),
			zap.Error(err),
		)
	}

	s.sink.Info("audit event",
		zap.String("audit_id", entry.ID),
		zap.String("event_id", entry.EventID),
		zap.String("event_type", entry.EventType),
		zap.String("source_module", string(entry.SourceModule)),
		zap.String("target_module", string(entry.TargetModule)),
		zap.String("action", entry.Action),
		zap.String("entity_type", entry.EntityType),
		zap.String("entity_id", entry.EntityID),
		zap.String("status", string(entry.Status)),
		zap.Int("changes", len(entry.Changes)),
	)

	return entry
}

func (s *service) GetTrail(ctx context.Context, filter Filter) ([]Entry, error) {
	return s.repo.Find(ctx, filter)
}

func (s *service) GetSummary(ctx context.Context) (Summary, error) {
	entries, err := s.repo.Find(ctx, Filter{})
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		TotalEntries:   len(entries),
		BySourceModule: make(map[string]int),
		ByStatus:       make(map[string]int),
	}
	for _, e := range entries {
		sum.BySourceModule[string(e.SourceModule)]++
		sum.ByStatus[string(e.Status)]++
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	start := len(entries) - recentActivitySize
	if start < 0 {
		start = 0
	}
	sum.RecentActivity = entries[start:]

	return sum, nil
}
