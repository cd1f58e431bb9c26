package subscription

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrActiveSubscriptionExists = errors.New("member already has an active subscription")
	ErrPriceNotFound            = errors.New("no price configured for tier")
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new active subscription. At most one active subscription
// per member is enforced here, in the write path: the member's existing
// active rows are locked and checked inside the same transaction.
func (r *Repository) Create(ctx context.Context, memberID int, tier Tier) (*Subscription, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var existingID int
	err = tx.GetContext(ctx, &existingID, `
		SELECT id
		FROM subscriptions
		WHERE member_id = $1 AND status = 'active'
		FOR UPDATE
	`, memberID)
	if err == nil {
		return nil, ErrActiveSubscriptionExists
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	now := time.Now()
	periodEnd := now.AddDate(0, 1, 0)

	sub := &Subscription{}
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO subscriptions (member_id, tier, status, monthly_limit, visits_used, guest_passes_limit, guest_passes_used, period_start, period_end)
		VALUES ($1, $2, 'active', $3, 0, $4, 0, $5, $6)
		RETURNING id, member_id, tier, status, monthly_limit, visits_used, guest_passes_limit, guest_passes_used, period_start, period_end, created_at, updated_at
	`, memberID, tier, MonthlyLimitFor(tier), GuestPassLimitFor(tier), now, periodEnd).StructScan(sub)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return sub, nil
}

func (r *Repository) GetActiveForMember(ctx context.Context, memberID int) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.GetContext(ctx, sub, `
		SELECT id, member_id, tier, status, monthly_limit, visits_used, guest_passes_limit, guest_passes_used, period_start, period_end, created_at, updated_at
		FROM subscriptions
		WHERE member_id = $1
		  AND status = 'active'
		ORDER BY created_at DESC
		LIMIT 1
	`, memberID)
	return sub, err
}

func (r *Repository) Cancel(ctx context.Context, memberID int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET status = 'cancelled',
		    updated_at = NOW()
		WHERE member_id = $1 AND status = 'active'
	`, memberID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// GetTierPrice looks up the pass cost for a tier. A missing row is reported
// as ErrPriceNotFound; callers treat that as a zero-cost pass, not a failure.
func (r *Repository) GetTierPrice(ctx context.Context, tier Tier) (int64, error) {
	var priceCents int64
	err := r.db.GetContext(ctx, &priceCents, `
		SELECT price_cents
		FROM tier_prices
		WHERE tier = $1
	`, tier)
	if err == sql.ErrNoRows {
		return 0, ErrPriceNotFound
	}
	if err != nil {
		return 0, err
	}

	return priceCents, nil
}
