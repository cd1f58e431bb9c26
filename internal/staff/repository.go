package staff

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrAccountNotFound = errors.New("staff account not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, passwordHash string, role Role, chainID *int, gymIDs []int) (*Account, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO staff_accounts (name, email, password_hash, role, chain_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, password_hash, role, chain_id, created_at
	`

	var acct Account
	if err := tx.GetContext(ctx, &acct, query, name, email, passwordHash, role, chainID); err != nil {
		return nil, err
	}

	for _, gymID := range gymIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO staff_gym_assignments (staff_account_id, gym_id)
			VALUES ($1, $2)
		`, acct.ID, gymID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	acct.GymIDs = append([]int(nil), gymIDs...)
	return &acct, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	query := `
		SELECT id, name, email, password_hash, role, chain_id, created_at
		FROM staff_accounts
		WHERE email = $1
	`

	var acct Account
	if err := r.db.GetContext(ctx, &acct, query, email); err != nil {
		return nil, err
	}

	if err := r.loadGymAssignments(ctx, &acct); err != nil {
		return nil, err
	}

	return &acct, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Account, error) {
	query := `
		SELECT id, name, email, password_hash, role, chain_id, created_at
		FROM staff_accounts
		WHERE id = $1
	`

	var acct Account
	if err := r.db.GetContext(ctx, &acct, query, id); err != nil {
		return nil, err
	}

	if err := r.loadGymAssignments(ctx, &acct); err != nil {
		return nil, err
	}

	return &acct, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM staff_accounts WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) loadGymAssignments(ctx context.Context, acct *Account) error {
	gymIDs := []int{}
	err := r.db.SelectContext(ctx, &gymIDs, `
		SELECT gym_id
		FROM staff_gym_assignments
		WHERE staff_account_id = $1
		ORDER BY gym_id
	`, acct.ID)
	if err != nil {
		return err
	}

	acct.GymIDs = gymIDs
	return nil
}
