package pass

import (
	"context"
	"time"

	"github.com/anygymuk/anygymAPI/internal/staff"
	"github.com/anygymuk/anygymAPI/internal/subscription"
)

// Tx is the transaction-scoped view of the store used by the issuance
// critical section. The subscription row returned by
// ActiveSubscriptionForUpdate stays locked until the transaction ends, which
// serializes concurrent issuance for the same member.
type Tx interface {
	ActiveSubscriptionForUpdate(ctx context.Context, memberID int) (*subscription.Subscription, error)
	HasActivePass(ctx context.Context, memberID int) (bool, error)
	InsertPass(ctx context.Context, p *Pass) (*Pass, error)
	IncrementVisits(ctx context.Context, subscriptionID int) error
}

type Repository interface {
	InTransaction(ctx context.Context, fn func(Tx) error) error
	GetByCode(ctx context.Context, code string) (*PassView, error)
	FindActive(ctx context.Context, memberID int) (*Pass, error)
	History(ctx context.Context, memberID int) ([]Pass, error)
	ExpireOverdue(ctx context.Context) (int64, error)
	ListInScope(ctx context.Context, scope staff.Scope) ([]PassWithDetails, error)
	RecordCheckIn(ctx context.Context, passID, staffAccountID int) error
}

// Notifier queues the pass confirmation for asynchronous delivery.
type Notifier interface {
	SendPassIssued(ctx context.Context, email, name, gymName, gymLocation, passCode string, validUntil time.Time) error
}

// PriceStore looks up the pass cost for a tier.
type PriceStore interface {
	GetTierPrice(ctx context.Context, tier subscription.Tier) (int64, error)
}

// ChainResolver maps a staff account to the single chain it operates in.
type ChainResolver interface {
	ResolveChain(ctx context.Context, acct staff.Account) (int, error)
}
