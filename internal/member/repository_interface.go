package member

import (
	"context"

	"github.com/anygymuk/anygymAPI/internal/staff"
)

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*Member, error)
	FindByEmail(ctx context.Context, email string) (*Member, error)
	FindByID(ctx context.Context, id int) (*Member, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListInScope(ctx context.Context, scope staff.Scope) ([]Member, error)
}
