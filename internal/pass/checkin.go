package pass

import (
	"context"
	"errors"

	"github.com/anygymuk/anygymAPI/internal/logger"
	"github.com/anygymuk/anygymAPI/internal/metrics"
	"github.com/anygymuk/anygymAPI/internal/staff"
)

// CheckIn resolves a presented code for front-desk verification. The
// authorization is chain-scoped: the staff account's chain must own the gym
// the pass was issued for. Pass status is never written here; the check-in
// trail is recorded separately.
func (s *service) CheckIn(ctx context.Context, acct staff.Account, presentedCode string) (*PassView, error) {
	code, err := NormalizeCode(presentedCode)
	if err != nil {
		metrics.RecordCheckIn("invalid_code")
		return nil, err
	}

	view, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrPassNotFound) {
			metrics.RecordCheckIn("not_found")
		}
		return nil, err
	}

	chainID, err := s.chains.ResolveChain(ctx, acct)
	if err != nil {
		// An account with no resolvable chain sees nothing: fail closed.
		metrics.RecordCheckIn("chain_mismatch")
		return nil, ErrChainMismatch
	}

	if chainID != view.ChainID {
		metrics.RecordCheckIn("chain_mismatch")
		return nil, ErrChainMismatch
	}

	if err := s.repo.RecordCheckIn(ctx, view.ID, acct.ID); err != nil {
		logger.Errorf("Failed to record check-in for pass %d: %v", view.ID, err)
	}

	metrics.RecordCheckIn("ok")
	return view, nil
}
