package staff

import "time"

type Role string

const (
	RoleChainAdmin Role = "chain_admin"
	RoleGymAdmin   Role = "gym_admin"
	RoleGymStaff   Role = "gym_staff"
)

// IsValid reports whether r is one of the three recognized staff roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleChainAdmin, RoleGymAdmin, RoleGymStaff:
		return true
	}
	return false
}

type Account struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	ChainID      *int      `db:"chain_id" json:"chain_id,omitempty"`
	GymIDs       []int     `db:"-" json:"gym_ids,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateAccountRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
	ChainID  *int   `json:"chain_id"`
	GymIDs   []int  `json:"gym_ids"`
}
