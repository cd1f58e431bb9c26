package subscription

import (
	"context"
	"errors"

	"github.com/anygymuk/anygymAPI/internal/metrics"
)

var ErrInvalidTier = errors.New("invalid subscription tier")

type Service interface {
	Purchase(ctx context.Context, memberID int, req PurchaseRequest) (*Subscription, error)
	GetActive(ctx context.Context, memberID int) (*Subscription, error)
	Cancel(ctx context.Context, memberID int) error
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) Service {
	return &service{repo: repo}
}

func (s *service) Purchase(ctx context.Context, memberID int, req PurchaseRequest) (*Subscription, error) {
	tier := Tier(req.Tier)
	if !tier.IsValid() {
		return nil, ErrInvalidTier
	}

	sub, err := s.repo.Create(ctx, memberID, tier)
	if err != nil {
		return nil, err
	}

	metrics.RecordSubscription(string(tier))
	return sub, nil
}

func (s *service) GetActive(ctx context.Context, memberID int) (*Subscription, error) {
	return s.repo.GetActiveForMember(ctx, memberID)
}

func (s *service) Cancel(ctx context.Context, memberID int) error {
	return s.repo.Cancel(ctx, memberID)
}
