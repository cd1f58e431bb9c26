package gym

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/anygymuk/anygymAPI/internal/staff"
)

var (
	ErrGymNotFound    = errors.New("gym not found")
	ErrGymsSpanChains = errors.New("gyms do not belong to a single chain")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetGymByID(ctx context.Context, id int) (*Gym, error) {
	query := `
		SELECT id, chain_id, name, location, latitude, longitude, required_tier, status, created_at
		FROM gyms
		WHERE id = $1
	`

	var g Gym
	err := r.db.GetContext(ctx, &g, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrGymNotFound
	}
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *repository) ListActive(ctx context.Context) ([]Gym, error) {
	query := `
		SELECT id, chain_id, name, location, latitude, longitude, required_tier, status, created_at
		FROM gyms
		WHERE status = 'active'
		ORDER BY name
	`

	gyms := []Gym{}
	err := r.db.SelectContext(ctx, &gyms, query)
	return gyms, err
}

func (r *repository) ListInScope(ctx context.Context, scope staff.Scope) ([]Gym, error) {
	switch scope.Kind {
	case staff.ChainScope:
		gyms := []Gym{}
		err := r.db.SelectContext(ctx, &gyms, `
			SELECT id, chain_id, name, location, latitude, longitude, required_tier, status, created_at
			FROM gyms
			WHERE chain_id = $1
			ORDER BY name
		`, scope.ChainID)
		return gyms, err
	case staff.GymSetScope:
		query, args, err := sqlx.In(`
			SELECT id, chain_id, name, location, latitude, longitude, required_tier, status, created_at
			FROM gyms
			WHERE id IN (?)
			ORDER BY name
		`, scope.GymIDs)
		if err != nil {
			return nil, err
		}

		gyms := []Gym{}
		err = r.db.SelectContext(ctx, &gyms, r.db.Rebind(query), args...)
		return gyms, err
	default:
		return []Gym{}, nil
	}
}

func (r *repository) Create(ctx context.Context, chainID int, name, location string, latitude, longitude float64, requiredTier string) (*Gym, error) {
	query := `
		INSERT INTO gyms (chain_id, name, location, latitude, longitude, required_tier, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'active')
		RETURNING id, chain_id, name, location, latitude, longitude, required_tier, status, created_at
	`

	var g Gym
	err := r.db.GetContext(ctx, &g, query, chainID, name, location, latitude, longitude, requiredTier)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *repository) Update(ctx context.Context, g *Gym) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE gyms
		SET name = $1,
		    location = $2,
		    latitude = $3,
		    longitude = $4,
		    required_tier = $5,
		    status = $6
		WHERE id = $7
	`, g.Name, g.Location, g.Latitude, g.Longitude, g.RequiredTier, g.Status, g.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrGymNotFound
	}

	return nil
}

// ChainIDForGyms resolves a set of gyms to their single owning chain.
func (r *repository) ChainIDForGyms(ctx context.Context, gymIDs []int) (int, error) {
	if len(gymIDs) == 0 {
		return 0, ErrGymNotFound
	}

	query, args, err := sqlx.In(`
		SELECT DISTINCT chain_id
		FROM gyms
		WHERE id IN (?)
	`, gymIDs)
	if err != nil {
		return 0, err
	}

	chainIDs := []int{}
	if err := r.db.SelectContext(ctx, &chainIDs, r.db.Rebind(query), args...); err != nil {
		return 0, err
	}

	if len(chainIDs) == 0 {
		return 0, ErrGymNotFound
	}
	if len(chainIDs) > 1 {
		return 0, ErrGymsSpanChains
	}

	return chainIDs[0], nil
}
