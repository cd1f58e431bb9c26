package gym

import (
	"context"
	"errors"
	"fmt"

	"github.com/anygymuk/anygymAPI/internal/audit"
	"github.com/anygymuk/anygymAPI/internal/logger"
	"github.com/anygymuk/anygymAPI/internal/staff"
	"github.com/anygymuk/anygymAPI/internal/subscription"
)

var (
	ErrForbidden   = errors.New("insufficient permissions for this gym")
	ErrInvalidTier = errors.New("invalid required tier")
)

type Service interface {
	ListActive(ctx context.Context) ([]Gym, error)
	ListForStaff(ctx context.Context, acct staff.Account) ([]Gym, error)
	GetForStaff(ctx context.Context, acct staff.Account, gymID int) (*Gym, error)
	Create(ctx context.Context, acct staff.Account, req CreateGymRequest) (*Gym, error)
	Update(ctx context.Context, acct staff.Account, gymID int, req UpdateGymRequest) (*Gym, error)
}

type service struct {
	repo  Repository
	audit audit.Writer
}

func NewService(repo Repository, auditLog audit.Writer) Service {
	return &service{repo: repo, audit: auditLog}
}

func (s *service) ListActive(ctx context.Context) ([]Gym, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) ListForStaff(ctx context.Context, acct staff.Account) ([]Gym, error) {
	return s.repo.ListInScope(ctx, staff.ScopeFor(acct))
}

// GetForStaff returns a gym only if it is inside the account's scope.
// Out-of-scope gyms are indistinguishable from missing ones.
func (s *service) GetForStaff(ctx context.Context, acct staff.Account, gymID int) (*Gym, error) {
	g, err := s.repo.GetGymByID(ctx, gymID)
	if err != nil {
		return nil, err
	}

	scope := staff.ScopeFor(acct)
	switch scope.Kind {
	case staff.ChainScope:
		if g.ChainID != scope.ChainID {
			return nil, ErrGymNotFound
		}
	case staff.GymSetScope:
		if !scope.ContainsGym(g.ID) {
			return nil, ErrGymNotFound
		}
	default:
		return nil, ErrGymNotFound
	}

	return g, nil
}

// Create is chain_admin only, and only within the admin's own chain.
func (s *service) Create(ctx context.Context, acct staff.Account, req CreateGymRequest) (*Gym, error) {
	scope := staff.ScopeFor(acct)
	if acct.Role != staff.RoleChainAdmin || scope.Kind != staff.ChainScope {
		return nil, ErrForbidden
	}

	if !subscription.Tier(req.RequiredTier).IsValid() {
		return nil, ErrInvalidTier
	}

	g, err := s.repo.Create(ctx, scope.ChainID, req.Name, req.Location, req.Latitude, req.Longitude, req.RequiredTier)
	if err != nil {
		return nil, err
	}

	s.appendAudit(ctx, acct, "gym.create", g, fmt.Sprintf("created gym %s", g.Name))
	return g, nil
}

// Update applies the per-action write rule on top of the scope: gym_staff may
// never write, a gym_admin may only write its assigned gyms, a chain_admin
// only within its own chain.
func (s *service) Update(ctx context.Context, acct staff.Account, gymID int, req UpdateGymRequest) (*Gym, error) {
	if acct.Role == staff.RoleGymStaff {
		return nil, ErrForbidden
	}

	g, err := s.GetForStaff(ctx, acct, gymID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Location != nil {
		g.Location = *req.Location
	}
	if req.Latitude != nil {
		g.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		g.Longitude = *req.Longitude
	}
	if req.RequiredTier != nil {
		if !subscription.Tier(*req.RequiredTier).IsValid() {
			return nil, ErrInvalidTier
		}
		g.RequiredTier = subscription.Tier(*req.RequiredTier)
	}
	if req.Status != nil {
		if *req.Status != StatusActive && *req.Status != StatusInactive {
			return nil, errors.New("invalid gym status")
		}
		g.Status = *req.Status
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}

	s.appendAudit(ctx, acct, "gym.update", g, fmt.Sprintf("updated gym %s", g.Name))
	return g, nil
}

func (s *service) appendAudit(ctx context.Context, acct staff.Account, action string, g *Gym, details string) {
	gymID := g.ID
	chainID := g.ChainID
	if err := s.audit.Append(ctx, audit.Event{
		ActorType:  audit.ActorStaff,
		ActorID:    acct.ID,
		Action:     action,
		TargetType: "gym",
		TargetID:   g.ID,
		GymID:      &gymID,
		ChainID:    &chainID,
		Details:    details,
	}); err != nil {
		logger.Errorf("Failed to append audit event for %s: %v", action, err)
	}
}
