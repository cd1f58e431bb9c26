package pass

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/anygymuk/anygymAPI/internal/staff"
	"github.com/anygymuk/anygymAPI/internal/subscription"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation, the signal the issuance loop retries pass-code generation on.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) InTransaction(ctx context.Context, fn func(Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(&sqlTx{tx: tx}); err != nil {
		return err
	}

	return tx.Commit()
}

type sqlTx struct {
	tx *sqlx.Tx
}

func (t *sqlTx) ActiveSubscriptionForUpdate(ctx context.Context, memberID int) (*subscription.Subscription, error) {
	sub := &subscription.Subscription{}
	err := t.tx.GetContext(ctx, sub, `
		SELECT id, member_id, tier, status, monthly_limit, visits_used, guest_passes_limit, guest_passes_used, period_start, period_end, created_at, updated_at
		FROM subscriptions
		WHERE member_id = $1
		  AND status = 'active'
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE
	`, memberID)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (t *sqlTx) HasActivePass(ctx context.Context, memberID int) (bool, error) {
	var exists bool
	err := t.tx.GetContext(ctx, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM gym_passes
			WHERE member_id = $1 AND valid_until > NOW()
		)
	`, memberID)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (t *sqlTx) InsertPass(ctx context.Context, p *Pass) (*Pass, error) {
	query := `
		INSERT INTO gym_passes (member_id, gym_id, code, status, tier, cost_cents, valid_until)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, member_id, gym_id, code, status, tier, cost_cents, valid_until, created_at
	`

	var inserted Pass
	err := t.tx.GetContext(ctx, &inserted, query,
		p.MemberID, p.GymID, p.Code, p.Status, p.Tier, p.CostCents, p.ValidUntil)
	if err != nil {
		return nil, err
	}

	return &inserted, nil
}

func (t *sqlTx) IncrementVisits(ctx context.Context, subscriptionID int) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE subscriptions
		SET visits_used = visits_used + 1,
		    updated_at = NOW()
		WHERE id = $1
	`, subscriptionID)
	return err
}

func (r *repository) GetByCode(ctx context.Context, code string) (*PassView, error) {
	query := `
		SELECT
			p.id,
			p.member_id,
			p.gym_id,
			p.code,
			p.status,
			p.tier,
			p.cost_cents,
			p.valid_until,
			p.created_at,
			g.name AS gym_name,
			g.location AS gym_location,
			g.chain_id,
			m.name AS member_name,
			m.email AS member_email,
			c.checked_in_at
		FROM gym_passes p
		JOIN gyms g ON p.gym_id = g.id
		JOIN members m ON p.member_id = m.id
		LEFT JOIN (
			SELECT pass_id, MAX(created_at) AS checked_in_at
			FROM check_ins
			GROUP BY pass_id
		) c ON c.pass_id = p.id
		WHERE p.code = $1
	`

	var view PassView
	err := r.db.GetContext(ctx, &view, query, code)
	if err == sql.ErrNoRows {
		return nil, ErrPassNotFound
	}
	if err != nil {
		return nil, err
	}

	view.Redeemed = view.CheckedInAt != nil
	return &view, nil
}

func (r *repository) FindActive(ctx context.Context, memberID int) (*Pass, error) {
	query := `
		SELECT id, member_id, gym_id, code, status, tier, cost_cents, valid_until, created_at
		FROM gym_passes
		WHERE member_id = $1
		  AND status = 'active'
		  AND valid_until > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var p Pass
	err := r.db.GetContext(ctx, &p, query, memberID)
	if err == sql.ErrNoRows {
		return nil, ErrPassNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) History(ctx context.Context, memberID int) ([]Pass, error) {
	query := `
		SELECT id, member_id, gym_id, code, status, tier, cost_cents, valid_until, created_at
		FROM gym_passes
		WHERE member_id = $1
		ORDER BY created_at DESC
	`

	passes := []Pass{}
	err := r.db.SelectContext(ctx, &passes, query, memberID)
	return passes, err
}

// ExpireOverdue is the sweeper's single bulk transition. Running it twice in
// a row affects zero rows the second time.
func (r *repository) ExpireOverdue(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE gym_passes
		SET status = 'expired'
		WHERE status = 'active' AND valid_until <= NOW()
	`)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *repository) ListInScope(ctx context.Context, scope staff.Scope) ([]PassWithDetails, error) {
	base := `
		SELECT
			p.id,
			p.member_id,
			p.gym_id,
			p.code,
			p.status,
			p.tier,
			p.cost_cents,
			p.valid_until,
			p.created_at,
			g.name AS gym_name,
			g.location AS gym_location,
			g.chain_id,
			m.name AS member_name,
			m.email AS member_email
		FROM gym_passes p
		JOIN gyms g ON p.gym_id = g.id
		JOIN members m ON p.member_id = m.id
	`

	switch scope.Kind {
	case staff.ChainScope:
		passes := []PassWithDetails{}
		err := r.db.SelectContext(ctx, &passes, base+`
		WHERE g.chain_id = $1
		ORDER BY p.created_at DESC
	`, scope.ChainID)
		return passes, err
	case staff.GymSetScope:
		query, args, err := sqlx.In(base+`
		WHERE p.gym_id IN (?)
		ORDER BY p.created_at DESC
	`, scope.GymIDs)
		if err != nil {
			return nil, err
		}

		passes := []PassWithDetails{}
		err = r.db.SelectContext(ctx, &passes, r.db.Rebind(query), args...)
		return passes, err
	default:
		return []PassWithDetails{}, nil
	}
}

func (r *repository) RecordCheckIn(ctx context.Context, passID, staffAccountID int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO check_ins (pass_id, staff_account_id)
		VALUES ($1, $2)
	`, passID, staffAccountID)
	return err
}
