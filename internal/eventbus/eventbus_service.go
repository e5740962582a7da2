package eventbus

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go-integration/internal/domain"
	eventbuserrors "go-integration/internal/eventbus/errors"
	"go-integration/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultQueueLimit  = 1000
	DefaultModuleLimit = 100
)

// HandlerFunc receives a published event. A returned error (or a panic) is
// logged and does not stop delivery to the remaining subscribers.
type HandlerFunc func(ctx context.Context, event IntegrationEvent) error

// Publisher is the narrow surface workflows need.
//
//go:generate mockgen -source=eventbus_service.go -destination=mock/eventbus_service_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, draft Draft) (string, error)
}

type Bus interface {
	Publisher
	GetEvent(id string) (IntegrationEvent, bool)
	GetEventsByModule(module domain.Module, limit int) []IntegrationEvent
	GetEventQueue() []IntegrationEvent
	Subscribe(pattern string, handler HandlerFunc) (unsubscribe func())
	Stats() Stats
}

type bus struct {
	store    *eventStore
	registry *registry
	metrics  *busMetrics
	logger   *zap.Logger
}

func NewBus(queueLimit int, logger ...*zap.Logger) Bus {
	l := zap.L().Named("eventbus.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("eventbus.service")
	}
	if queueLimit <= 0 {
		queueLimit = DefaultQueueLimit
	}
	return &bus{
		store:    newEventStore(queueLimit),
		registry: &registry{},
		metrics:  newBusMetrics(),
		logger:   l,
	}
}

func (b *bus) Publish(ctx context.Context, draft Draft) (string, error) {
	if err := validateDraft(draft); err != nil {
		return "", err
	}

	event := IntegrationEvent{
		ID:            uuid.NewString(),
		Type:          draft.Type,
		SourceModule:  draft.SourceModule,
		TargetModules: slices.Clone(draft.TargetModules),
		CorrelationID: draft.CorrelationID,
		CausationID:   draft.CausationID,
		Payload:       clonePayload(draft.Payload),
		Metadata:      draft.Metadata,
		Timestamp:     time.Now().UTC(),
		Status:        StatusPending,
	}
	if event.CorrelationID == "" {
		event.CorrelationID = uuid.NewString()
	}
	if event.Payload == nil {
		event.Payload = map[string]any{}
	}
	if event.Metadata.UserID == "" {
		event.Metadata.UserID = contextutil.GetUserID(ctx)
	}
	if event.Metadata.TenantID == "" {
		event.Metadata.TenantID = contextutil.GetTenantID(ctx)
	}
	if event.Metadata.Priority == "" {
		event.Metadata.Priority = domain.PriorityNormal
	}
	if event.Metadata.MaxRetries == 0 {
		event.Metadata.MaxRetries = DefaultMaxRetries
	}

	b.store.add(event)
	b.metrics.recordPublish(ctx, event)

	log := contextutil.GetLogger(ctx, b.logger)
	log.Debug("event published",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("event_id", event.ID),
		zap.String("event_type", event.Type),
		zap.String("source_module", string(event.SourceModule)),
	)

	failed := 0
	subs := b.registry.matching(event.Type)
	for _, sub := range subs {
		err := invoke(ctx, sub.handler, event.clone())
		b.metrics.recordDelivery(ctx, event, err)
		if err != nil {
			failed++
			log.Error("event subscriber failed",
				zap.String("event_id", event.ID),
				zap.String("event_type", event.Type),
				zap.String("pattern", sub.pattern),
				zap.Error(err),
			)
		}
	}

	status := StatusDelivered
	if failed > 0 {
		status = StatusFailed
	}
	b.store.setStatus(event.ID, status)

	log.Info("event processed",
		zap.String("event_id", event.ID),
		zap.String("event_type", event.Type),
		zap.Int("subscribers", len(subs)),
		zap.Int("failed", failed),
	)

	return event.ID, nil
}

// invoke isolates a single handler call, converting a panic into an error.
func invoke(ctx context.Context, handler HandlerFunc, event IntegrationEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("subscriber panic: %v", r)
		}
	}()
	return handler(ctx, event)
}

func (b *bus) GetEvent(id string) (IntegrationEvent, bool) {
	return b.store.get(id)
}

func (b *bus) GetEventsByModule(module domain.Module, limit int) []IntegrationEvent {
	if limit <= 0 {
		limit = DefaultModuleLimit
	}
	return b.store.byModule(module, limit)
}

func (b *bus) GetEventQueue() []IntegrationEvent {
	return b.store.withStatus(StatusPending)
}

func (b *bus) Subscribe(pattern string, handler HandlerFunc) func() {
	id := b.registry.add(pattern, handler)
	b.logger.Debug("subscription added", zap.String("pattern", pattern), zap.Uint64("subscription_id", id))

	return func() {
		b.registry.remove(id)
	}
}

func (b *bus) Stats() Stats {
	return b.store.stats()
}

func validateDraft(draft Draft) error {
	if draft.Type == "" {
		return eventbuserrors.ErrEventTypeRequired
	}
	if !draft.SourceModule.Valid() {
		return eventbuserrors.ErrInvalidSourceModule
	}
	for _, m := range draft.TargetModules {
		if !m.Valid() {
			return eventbuserrors.ErrInvalidTargetModule
		}
	}
	if draft.Metadata.Priority != "" && !draft.Metadata.Priority.Valid() {
		return eventbuserrors.ErrInvalidPriority
	}
	return nil
}
