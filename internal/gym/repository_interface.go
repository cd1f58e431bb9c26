package gym

import (
	"context"

	"github.com/anygymuk/anygymAPI/internal/staff"
)

type Repository interface {
	GetGymByID(ctx context.Context, id int) (*Gym, error)
	ListActive(ctx context.Context) ([]Gym, error)
	ListInScope(ctx context.Context, scope staff.Scope) ([]Gym, error)
	Create(ctx context.Context, chainID int, name, location string, latitude, longitude float64, requiredTier string) (*Gym, error)
	Update(ctx context.Context, g *Gym) error
	ChainIDForGyms(ctx context.Context, gymIDs []int) (int, error)
}
