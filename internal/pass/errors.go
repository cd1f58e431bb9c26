package pass

import (
	"errors"
	"fmt"

	"github.com/anygymuk/anygymAPI/internal/subscription"
)

var (
	ErrPassNotFound         = errors.New("pass not found")
	ErrNoActiveSubscription = errors.New("member has no active subscription")
	ErrDuplicateActivePass  = errors.New("member already holds an active pass")
	ErrGymInactive          = errors.New("gym is not accepting passes")
	ErrChainMismatch        = errors.New("pass was issued for a gym outside your chain")
	ErrEmptyCode            = errors.New("pass code is empty")
)

// QuotaExceededError reports both sides of the quota so callers can render
// "N of M visits used".
type QuotaExceededError struct {
	Used  int
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly visit limit reached: %d of %d visits used", e.Used, e.Limit)
}

type TierNotAllowedError struct {
	SubscriptionTier subscription.Tier
	RequiredTier     subscription.Tier
}

func (e *TierNotAllowedError) Error() string {
	return fmt.Sprintf("subscription tier %q does not grant access to a %q gym", e.SubscriptionTier, e.RequiredTier)
}
