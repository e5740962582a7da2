package capacity

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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=capacity_service.go -destination=mock/capacity_service_mock.go -package=mock
type Service interface {
	RegisterAvailability(ctx context.Context, a Availability) (Availability, error)
	CreateRequest(ctx context.Context, in CreateRequestInput) (Request, error)
	// ConfirmAssignment returns false without changing anything when the
	// request is unknown or freelancerID is not a matched candidate.
	ConfirmAssignment(ctx context.Context, requestID, freelancerID string) (bool, error)
	// CloseUnfulfilled returns false unless the request exists and is open.
	CloseUnfulfilled(ctx context.Context, requestID string) (bool, error)
	GetAvailability(ctx context.Context, freelancerID string) ([]Availability, error)
	GetRequests(ctx context.Context, status RequestStatus) ([]Request, error)
	GetRequest(ctx context.Context, id string) (Request, bool, error)
}

type service struct {
	// mu serialises state transitions; reads go straight to the repository.
	mu        sync.Mutex
	repo      Repository
	publisher eventbus.Publisher
	auditor   audit.Recorder
	logger    *zap.Logger
}

func NewService(repo Repository, publisher eventbus.Publisher, auditor audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("capacity.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("capacity.service")
	}
	return &service{repo: repo, publisher: publisher, auditor: auditor, logger: l}
}

func (s *service) RegisterAvailability(ctx context.Context, a Availability) (Availability, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if a.FreelancerID == "" {
		return Availability{}, apperror.RequiredField("freelancer_id")
	}

	s.mu.Lock()
	if err := s.repo.SaveAvailability(ctx, a); err != nil {
		s.mu.Unlock()
		return Availability{}, err
	}
	matched, err := s.matchOpenRequests(ctx)
	s.mu.Unlock()
	if err != nil {
		return Availability{}, err
	}

	log.Info("freelancer availability registered",
		zap.String("freelancer_id", a.FreelancerID),
		zap.Int("requests_matched", len(matched)),
	)

	s.announceMatches(ctx, matched)
	return a, nil
}

func (s *service) CreateRequest(ctx context.Context, in CreateRequestInput) (Request, error) {
	if len(in.RequiredSkills) == 0 {
		return Request{}, apperror.RequiredField("required_skills")
	}
	if in.Location == "" {
		return Request{}, apperror.RequiredField("location")
	}

	req := Request{
		ID:                 uuid.NewString(),
		RequestDate:        time.Now().UTC(),
		RequiredDate:       in.RequiredDate,
		RequiredSkills:     in.RequiredSkills,
		Location:           in.Location,
		EstimatedHours:     in.EstimatedHours,
		VehicleRequired:    in.VehicleRequired,
		VehicleType:        in.VehicleType,
		Status:             StatusOpen,
		MatchedFreelancers: []string{},
	}

	s.mu.Lock()
	if err := s.repo.SaveRequest(ctx, req); err != nil {
		s.mu.Unlock()
		return Request{}, err
	}
	matched, err := s.matchOpenRequests(ctx)
	s.mu.Unlock()
	if err != nil {
		return Request{}, err
	}

	for _, m := range matched {
		if m.ID == req.ID {
			req = m
		}
	}

	s.announceMatches(ctx, matched)
	return req, nil
}

// matchOpenRequests runs the matcher over a snapshot of every open request
// and stores those that found candidates. Callers hold s.mu.
func (s *service) matchOpenRequests(ctx context.Context) ([]Request, error) {
	pool, err := s.repo.FindAvailability(ctx, "")
	if err != nil {
		return nil, err
	}
	open, err := s.repo.FindRequests(ctx, StatusOpen)
	if err != nil {
		return nil, err
	}

	var matched []Request
	for _, req := range open {
		ids := candidates(pool, req)
		if len(ids) == 0 {
			continue
		}
		req.MatchedFreelancers = ids
		req.Status = StatusMatched
		if err := s.repo.SaveRequest(ctx, req); err != nil {
			return matched, err
		}
		matched = append(matched, req)
	}
	return matched, nil
}

func (s *service) announceMatches(ctx context.Context, matched []Request) {
	log := contextutil.GetLogger(ctx, s.logger)

	for _, req := range matched {
		_, err := s.publisher.Publish(ctx, eventbus.Draft{
			Type:          events.TypeCapacityMatched,
			SourceModule:  domain.ModuleFreelancer,
			TargetModules: []domain.Module{domain.ModuleLogistics},
			CorrelationID: uuid.NewString(),
			Payload: map[string]any{
				"requestId":          req.ID,
				"matchedFreelancers": req.MatchedFreelancers,
				"matchCount":         len(req.MatchedFreelancers),
			},
			Metadata: eventbus.Metadata{Priority: domain.PriorityNormal},
		})
		if err != nil {
			log.Warn("failed to publish capacity match", zap.String("request_id", req.ID), zap.Error(err))
			continue
		}

		log.Info("freelancers matched to capacity request",
			zap.String("request_id", req.ID),
			zap.Int("match_count", len(req.MatchedFreelancers)),
		)
	}
}

func (s *service) ConfirmAssignment(ctx context.Context, requestID, freelancerID string) (bool, error) {
	s.mu.Lock()
	req, ok, err := s.repo.FindRequest(ctx, requestID)
	if err != nil || !ok || req.Status != StatusMatched || !req.hasMatched(freelancerID) {
		s.mu.Unlock()
		return false, err
	}

	req.Status = StatusConfirmed
	req.MatchedFreelancers = []string{freelancerID}
	err = s.repo.SaveRequest(ctx, req)
	s.mu.Unlock()
	if err != nil {
		return false, err
	}

	s.auditor.Record(ctx, audit.Entry{
		EventType:    events.TypeFreelancerConfirmed,
		SourceModule: domain.ModuleLogistics,
		TargetModule: domain.ModuleFreelancer,
		Action:       "update",
		EntityType:   "CapacityRequest",
		EntityID:     requestID,
		Changes: []audit.Change{
			{Field: "status", OldValue: string(StatusMatched), NewValue: string(StatusConfirmed)},
			{Field: "assignedFreelancer", OldValue: nil, NewValue: freelancerID},
		},
		Status: audit.StatusSuccess,
	})

	contextutil.GetLogger(ctx, s.logger).Info("freelancer assignment confirmed",
		zap.String("request_id", requestID),
		zap.String("freelancer_id", freelancerID),
	)
	return true, nil
}

func (s *service) CloseUnfulfilled(ctx context.Context, requestID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok, err := s.repo.FindRequest(ctx, requestID)
	if err != nil || !ok || req.Status != StatusOpen {
		return false, err
	}

	req.Status = StatusUnfulfilled
	if err := s.repo.SaveRequest(ctx, req); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) GetAvailability(ctx context.Context, freelancerID string) ([]Availability, error) {
	return s.repo.FindAvailability(ctx, freelancerID)
}

func (s *service) GetRequests(ctx context.Context, status RequestStatus) ([]Request, error) {
	return s.repo.FindRequests(ctx, status)
}

func (s *service) GetRequest(ctx context.Context, id string) (Request, bool, error) {
	return s.repo.FindRequest(ctx, id)
}
