package gym

import (
	"time"

	"github.com/anygymuk/anygymAPI/internal/subscription"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Chain struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Gym struct {
	ID           int               `db:"id" json:"id"`
	ChainID      int               `db:"chain_id" json:"chain_id"`
	Name         string            `db:"name" json:"name"`
	Location     string            `db:"location" json:"location"`
	Latitude     float64           `db:"latitude" json:"latitude"`
	Longitude    float64           `db:"longitude" json:"longitude"`
	RequiredTier subscription.Tier `db:"required_tier" json:"required_tier"`
	Status       string            `db:"status" json:"status"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
}

type CreateGymRequest struct {
	Name         string  `json:"name" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RequiredTier string  `json:"required_tier" binding:"required"`
}

type UpdateGymRequest struct {
	Name         *string  `json:"name"`
	Location     *string  `json:"location"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	RequiredTier *string  `json:"required_tier"`
	Status       *string  `json:"status"`
}
