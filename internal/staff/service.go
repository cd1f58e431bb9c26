package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/anygymuk/anygymAPI/internal/audit"
	"github.com/anygymuk/anygymAPI/internal/auth"
	"github.com/anygymuk/anygymAPI/internal/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidRole        = errors.New("invalid staff role")
	ErrForbidden          = errors.New("insufficient permissions for this action")
	ErrNoChain            = errors.New("account does not resolve to a chain")
	ErrNoGymsAssigned     = errors.New("at least one gym must be assigned")
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Account, string, string, error)
	GetByID(ctx context.Context, id int) (*Account, error)
	CreateAccount(ctx context.Context, creator Account, req CreateAccountRequest) (*Account, error)
	// ResolveChain maps an account to the single chain it operates in.
	// Gym-scoped accounts resolve through the owning chain of their gyms.
	ResolveChain(ctx context.Context, acct Account) (int, error)
}

type service struct {
	repo      Repository
	gyms      GymDirectory
	audit     audit.Writer
	jwtSecret string
}

func NewService(repo Repository, gyms GymDirectory, auditLog audit.Writer, jwtSecret string) Service {
	return &service{
		repo:      repo,
		gyms:      gyms,
		audit:     auditLog,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Account, string, string, error) {
	acct, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(acct.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		acct.ID,
		acct.Email,
		string(acct.Role),
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", err
	}

	return acct, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Account, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateAccount applies the per-action rules on top of the creator's scope:
// gym_staff may never create accounts, a gym_admin may only assign a subset
// of its own gyms, and a chain_admin may only create accounts inside its own
// chain.
func (s *service) CreateAccount(ctx context.Context, creator Account, req CreateAccountRequest) (*Account, error) {
	if creator.Role == RoleGymStaff {
		return nil, ErrForbidden
	}

	role := Role(req.Role)
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	scope := ScopeFor(creator)
	if scope.IsEmpty() {
		return nil, ErrForbidden
	}

	var chainID *int
	var gymIDs []int

	switch creator.Role {
	case RoleChainAdmin:
		if role == RoleChainAdmin {
			if req.ChainID != nil && *req.ChainID != scope.ChainID {
				return nil, ErrForbidden
			}
			ownChain := scope.ChainID
			chainID = &ownChain
		} else {
			if len(req.GymIDs) == 0 {
				return nil, ErrNoGymsAssigned
			}
			owningChain, err := s.gyms.ChainIDForGyms(ctx, req.GymIDs)
			if err != nil {
				return nil, fmt.Errorf("resolving chain for assigned gyms: %w", err)
			}
			if owningChain != scope.ChainID {
				return nil, ErrForbidden
			}
			gymIDs = req.GymIDs
		}
	case RoleGymAdmin:
		if role == RoleChainAdmin {
			return nil, ErrForbidden
		}
		if len(req.GymIDs) == 0 {
			return nil, ErrNoGymsAssigned
		}
		if !scope.Covers(req.GymIDs) {
			return nil, ErrForbidden
		}
		gymIDs = req.GymIDs
	default:
		return nil, ErrForbidden
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	acct, err := s.repo.Create(ctx, req.Name, req.Email, passwordHash, role, chainID, gymIDs)
	if err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, audit.Event{
		ActorType:  audit.ActorStaff,
		ActorID:    creator.ID,
		Action:     "staff_account.create",
		TargetType: "staff_account",
		TargetID:   acct.ID,
		ChainID:    chainID,
		Details:    fmt.Sprintf("created %s account %s", role, acct.Email),
	}); err != nil {
		logger.Errorf("Failed to append audit event for staff creation: %v", err)
	}

	return acct, nil
}

func (s *service) ResolveChain(ctx context.Context, acct Account) (int, error) {
	scope := ScopeFor(acct)
	switch scope.Kind {
	case ChainScope:
		return scope.ChainID, nil
	case GymSetScope:
		chainID, err := s.gyms.ChainIDForGyms(ctx, scope.GymIDs)
		if err != nil {
			return 0, fmt.Errorf("resolving chain for gym set: %w", err)
		}
		return chainID, nil
	default:
		return 0, ErrNoChain
	}
}
