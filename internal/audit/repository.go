package audit

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Writer is the append-only surface handed to services that record privileged
// actions.
type Writer interface {
	Append(ctx context.Context, event Event) error
}

type Repository interface {
	Writer
	ListForChain(ctx context.Context, chainID int, limit int) ([]Event, error)
	ListForGyms(ctx context.Context, gymIDs []int, limit int) ([]Event, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, event Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_events (actor_type, actor_id, action, target_type, target_id, gym_id, chain_id, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, event.ActorType, event.ActorID, event.Action, event.TargetType, event.TargetID, event.GymID, event.ChainID, event.Details)
	return err
}

func (r *repository) ListForChain(ctx context.Context, chainID int, limit int) ([]Event, error) {
	events := []Event{}
	err := r.db.SelectContext(ctx, &events, `
		SELECT id, actor_type, actor_id, action, target_type, target_id, gym_id, chain_id, details, created_at
		FROM audit_events
		WHERE chain_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, chainID, limit)
	return events, err
}

func (r *repository) ListForGyms(ctx context.Context, gymIDs []int, limit int) ([]Event, error) {
	if len(gymIDs) == 0 {
		return []Event{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, actor_type, actor_id, action, target_type, target_id, gym_id, chain_id, details, created_at
		FROM audit_events
		WHERE gym_id IN (?)
		ORDER BY created_at DESC
		LIMIT ?
	`, gymIDs, limit)
	if err != nil {
		return nil, err
	}

	events := []Event{}
	err = r.db.SelectContext(ctx, &events, r.db.Rebind(query), args...)
	return events, err
}
