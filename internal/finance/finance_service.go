package finance

import (
	"context"
	"time"

	"go-integration/internal/domain"
	financeerrors "go-integration/internal/finance/errors"
	"go-integration/internal/shared/apperror"
	"go-integration/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=finance_service.go -destination=mock/finance_service_mock.go -package=mock
type Service interface {
	CreateTransaction(ctx context.Context, req NewTransaction) (Transaction, error)
	GetTransactions(ctx context.Context, module domain.Module) ([]Transaction, error)
	// PostByReference marks the transaction linked to referenceID as posted.
	PostByReference(ctx context.Context, referenceID string) (bool, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("finance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("finance.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) CreateTransaction(ctx context.Context, req NewTransaction) (Transaction, error) {
	if !req.Type.Valid() {
		return Transaction{}, financeerrors.ErrInvalidTransactionType
	}
	if req.Amount < 0 {
		return Transaction{}, financeerrors.ErrInvalidAmount
	}
	if !req.SourceModule.Valid() {
		return Transaction{}, apperror.InvalidField("source_module")
	}

	tx := Transaction{
		ID:           uuid.NewString(),
		Type:         req.Type,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Category:     req.Category,
		Description:  req.Description,
		SourceModule: req.SourceModule,
		ReferenceID:  req.ReferenceID,
		Date:         time.Now().UTC(),
		Status:       StatusPending,
	}

	if err := s.repo.Save(ctx, tx); err != nil {
		return Transaction{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("finance transaction created",
		zap.String("transaction_id", tx.ID),
		zap.String("type", string(tx.Type)),
		zap.Float64("amount", tx.Amount),
		zap.String("currency", tx.Currency),
		zap.String("reference_id", tx.ReferenceID),
	)
	return tx, nil
}

func (s *service) GetTransactions(ctx context.Context, module domain.Module) ([]Transaction, error) {
	return s.repo.FindByModule(ctx, module)
}

func (s *service) PostByReference(ctx context.Context, referenceID string) (bool, error) {
	ok, err := s.repo.SetStatusByReference(ctx, referenceID, StatusPosted)
	if err != nil {
		return false, err
	}
	if ok {
		contextutil.GetLogger(ctx, s.logger).Debug("finance transaction posted", zap.String("reference_id", referenceID))
	}
	return ok, nil
}
