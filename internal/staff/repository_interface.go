package staff

import "context"

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash string, role Role, chainID *int, gymIDs []int) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id int) (*Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// GymDirectory is the slice of the gym store the staff service needs: it
// resolves a set of gym ids to their single owning chain.
type GymDirectory interface {
	ChainIDForGyms(ctx context.Context, gymIDs []int) (int, error)
}
