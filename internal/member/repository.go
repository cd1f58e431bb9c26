package member

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/anygymuk/anygymAPI/internal/staff"
)

var ErrMemberNotFound = errors.New("member not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, passwordHash string) (*Member, error) {
	query := `
		INSERT INTO members (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password_hash, created_at
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, name, email, passwordHash)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Member, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM members
		WHERE email = $1
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, email)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Member, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM members
		WHERE id = $1
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM members WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// ListInScope returns the members visible to a staff scope: those holding at
// least one pass issued for a gym inside the scope.
func (r *repository) ListInScope(ctx context.Context, scope staff.Scope) ([]Member, error) {
	switch scope.Kind {
	case staff.ChainScope:
		members := []Member{}
		err := r.db.SelectContext(ctx, &members, `
			SELECT DISTINCT m.id, m.name, m.email, m.password_hash, m.created_at
			FROM members m
			JOIN gym_passes p ON p.member_id = m.id
			JOIN gyms g ON g.id = p.gym_id
			WHERE g.chain_id = $1
			ORDER BY m.id
		`, scope.ChainID)
		return members, err
	case staff.GymSetScope:
		query, args, err := sqlx.In(`
			SELECT DISTINCT m.id, m.name, m.email, m.password_hash, m.created_at
			FROM members m
			JOIN gym_passes p ON p.member_id = m.id
			WHERE p.gym_id IN (?)
			ORDER BY m.id
		`, scope.GymIDs)
		if err != nil {
			return nil, err
		}

		members := []Member{}
		err = r.db.SelectContext(ctx, &members, r.db.Rebind(query), args...)
		return members, err
	default:
		return []Member{}, nil
	}
}
