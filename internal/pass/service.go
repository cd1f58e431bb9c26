package pass

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/anygymuk/anygymAPI/internal/audit"
	"github.com/anygymuk/anygymAPI/internal/gym"
	"github.com/anygymuk/anygymAPI/internal/logger"
	"github.com/anygymuk/anygymAPI/internal/member"
	"github.com/anygymuk/anygymAPI/internal/metrics"
	"github.com/anygymuk/anygymAPI/internal/staff"
)

const (
	maxCodeAttempts = 3
	notifyTimeout   = 5 * time.Second
)

type Service interface {
	IssuePass(ctx context.Context, memberID, gymID int) (*Pass, error)
	CheckEntitlement(ctx context.Context, memberID, gymID int) (*Entitlement, error)
	FindActivePass(ctx context.Context, memberID int) (*Pass, error)
	FindPassHistory(ctx context.Context, memberID int) ([]Pass, error)
	CheckIn(ctx context.Context, acct staff.Account, presentedCode string) (*PassView, error)
	ListForStaff(ctx context.Context, acct staff.Account) ([]PassWithDetails, error)
	SweepExpiredPasses(ctx context.Context) (int64, error)
}

type service struct {
	repo       Repository
	gymRepo    gym.Repository
	memberRepo member.Repository
	prices     PriceStore
	chains     ChainResolver
	notifier   Notifier
	audit      audit.Writer

	now func() time.Time
}

func NewService(
	repo Repository,
	gymRepo gym.Repository,
	memberRepo member.Repository,
	prices PriceStore,
	chains ChainResolver,
	notifier Notifier,
	auditLog audit.Writer,
) Service {
	return &service{
		repo:       repo,
		gymRepo:    gymRepo,
		memberRepo: memberRepo,
		prices:     prices,
		chains:     chains,
		notifier:   notifier,
		audit:      auditLog,
		now:        time.Now,
	}
}

// checkEntitlement runs the issuance checks against a transaction that holds
// the member's subscription row locked. Check order: subscription, quota,
// duplicate pass, gym, tier, price.
func (s *service) checkEntitlement(ctx context.Context, tx Tx, memberID, gymID int) (*Entitlement, *gym.Gym, error) {
	sub, err := tx.ActiveSubscriptionForUpdate(ctx, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNoActiveSubscription
		}
		return nil, nil, fmt.Errorf("loading subscription: %w", err)
	}

	if sub.VisitsUsed >= sub.MonthlyLimit {
		return nil, nil, &QuotaExceededError{Used: sub.VisitsUsed, Limit: sub.MonthlyLimit}
	}

	hasActive, err := tx.HasActivePass(ctx, memberID)
	if err != nil {
		return nil, nil, fmt.Errorf("checking active passes: %w", err)
	}
	if hasActive {
		return nil, nil, ErrDuplicateActivePass
	}

	g, err := s.gymRepo.GetGymByID(ctx, gymID)
	if err != nil {
		return nil, nil, err
	}
	if g.Status != gym.StatusActive {
		return nil, nil, ErrGymInactive
	}

	if !sub.Tier.Meets(g.RequiredTier) {
		return nil, nil, &TierNotAllowedError{SubscriptionTier: sub.Tier, RequiredTier: g.RequiredTier}
	}

	costCents, err := s.prices.GetTierPrice(ctx, sub.Tier)
	if err != nil {
		// Pricing is a non-critical lookup: absent or unavailable means a
		// zero-cost pass, never a failed issuance.
		logger.Warnf("No price for tier %s, defaulting pass cost to 0: %v", sub.Tier, err)
		costCents = 0
	}

	return &Entitlement{
		SubscriptionID: sub.ID,
		Tier:           sub.Tier,
		MonthlyLimit:   sub.MonthlyLimit,
		VisitsUsed:     sub.VisitsUsed,
		CostCents:      costCents,
	}, g, nil
}

func (s *service) CheckEntitlement(ctx context.Context, memberID, gymID int) (*Entitlement, error) {
	var ent *Entitlement
	err := s.repo.InTransaction(ctx, func(tx Tx) error {
		e, _, err := s.checkEntitlement(ctx, tx, memberID, gymID)
		ent = e
		return err
	})
	if err != nil {
		return nil, err
	}
	return ent, nil
}

// IssuePass runs the entitlement checks, the pass insert and the quota
// increment inside one transaction. The FOR UPDATE lock on the subscription
// row guarantees two concurrent calls for the same member cannot both pass
// the duplicate and quota checks.
func (s *service) IssuePass(ctx context.Context, memberID, gymID int) (*Pass, error) {
	var (
		issued *Pass
		ent    *Entitlement
		target *gym.Gym
	)

	err := s.repo.InTransaction(ctx, func(tx Tx) error {
		e, g, err := s.checkEntitlement(ctx, tx, memberID, gymID)
		if err != nil {
			return err
		}
		ent, target = e, g

		validUntil := s.now().Add(ValidityWindow)
		for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
			p, err := tx.InsertPass(ctx, &Pass{
				MemberID:   memberID,
				GymID:      gymID,
				Code:       NewCode(),
				Status:     StatusActive,
				Tier:       ent.Tier,
				CostCents:  ent.CostCents,
				ValidUntil: &validUntil,
			})
			if err != nil {
				if IsUniqueViolation(err) && attempt < maxCodeAttempts {
					logger.Warnf("Pass code collision on attempt %d, regenerating", attempt)
					continue
				}
				return fmt.Errorf("inserting pass: %w", err)
			}
			issued = p
			break
		}

		return tx.IncrementVisits(ctx, ent.SubscriptionID)
	})
	if err != nil {
		metrics.RecordPassDenied(denialReason(err))
		return nil, err
	}

	metrics.RecordPassIssued(string(ent.Tier))
	s.notifyIssued(issued, target)
	s.appendIssueAudit(ctx, issued, target)

	return issued, nil
}

// notifyIssued queues the confirmation without tying the issuance result to
// the outcome. Runs on its own goroutine with a bounded deadline.
func (s *service) notifyIssued(p *Pass, g *gym.Gym) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		m, err := s.memberRepo.FindByID(ctx, p.MemberID)
		if err != nil {
			logger.Errorf("Failed to load member %d for pass confirmation: %v", p.MemberID, err)
			return
		}

		if err := s.notifier.SendPassIssued(ctx, m.Email, m.Name, g.Name, g.Location, p.Code, *p.ValidUntil); err != nil {
			logger.Errorf("Failed to queue pass confirmation for member %d: %v", p.MemberID, err)
		}
	}()
}

func (s *service) appendIssueAudit(ctx context.Context, p *Pass, g *gym.Gym) {
	gymID := g.ID
	chainID := g.ChainID
	if err := s.audit.Append(ctx, audit.Event{
		ActorType:  audit.ActorMember,
		ActorID:    p.MemberID,
		Action:     "pass.issue",
		TargetType: "gym_pass",
		TargetID:   p.ID,
		GymID:      &gymID,
		ChainID:    &chainID,
		Details:    fmt.Sprintf("issued pass %s for gym %s", p.Code, g.Name),
	}); err != nil {
		logger.Errorf("Failed to append audit event for pass issue: %v", err)
	}
}

func (s *service) FindActivePass(ctx context.Context, memberID int) (*Pass, error) {
	return s.repo.FindActive(ctx, memberID)
}

func (s *service) FindPassHistory(ctx context.Context, memberID int) ([]Pass, error) {
	return s.repo.History(ctx, memberID)
}

func (s *service) ListForStaff(ctx context.Context, acct staff.Account) ([]PassWithDetails, error) {
	return s.repo.ListInScope(ctx, staff.ScopeFor(acct))
}

func (s *service) SweepExpiredPasses(ctx context.Context) (int64, error) {
	expired, err := s.repo.ExpireOverdue(ctx)
	metrics.RecordSweep(expired, err)
	return expired, err
}

func denialReason(err error) string {
	var quotaErr *QuotaExceededError
	var tierErr *TierNotAllowedError

	switch {
	case errors.Is(err, ErrNoActiveSubscription):
		return "no_subscription"
	case errors.As(err, &quotaErr):
		return "quota_exceeded"
	case errors.Is(err, ErrDuplicateActivePass):
		return "duplicate_pass"
	case errors.Is(err, gym.ErrGymNotFound):
		return "gym_not_found"
	case errors.Is(err, ErrGymInactive):
		return "gym_inactive"
	case errors.As(err, &tierErr):
		return "tier_not_allowed"
	default:
		return "internal"
	}
}
