package pass

import (
	"time"

	"github.com/anygymuk/anygymAPI/internal/subscription"
)

const (
	StatusActive  = "active"
	StatusExpired = "expired"

	// ValidityWindow is the fixed lifetime of a pass from issuance.
	ValidityWindow = 2 * time.Hour

	// CodePrefix is the canonical pass-code prefix shown to members and
	// prepended during check-in normalization.
	CodePrefix = "GP-"
)

type Pass struct {
	ID         int               `db:"id" json:"id"`
	MemberID   int               `db:"member_id" json:"member_id"`
	GymID      int               `db:"gym_id" json:"gym_id"`
	Code       string            `db:"code" json:"code"`
	Status     string            `db:"status" json:"status"`
	Tier       subscription.Tier `db:"tier" json:"tier"`
	CostCents  int64             `db:"cost_cents" json:"cost_cents"`
	ValidUntil *time.Time        `db:"valid_until" json:"valid_until"`
	CreatedAt  time.Time         `db:"created_at" json:"created_at"`
}

type PassWithDetails struct {
	Pass
	GymName     string `db:"gym_name" json:"gym_name"`
	GymLocation string `db:"gym_location" json:"gym_location"`
	ChainID     int    `db:"chain_id" json:"chain_id"`
	MemberName  string `db:"member_name" json:"member_name"`
	MemberEmail string `db:"member_email" json:"member_email"`
}

// PassView is what the front desk sees on check-in. Redeemed is a query-time
// classification derived from the check-in trail; it is not a pass status.
type PassView struct {
	PassWithDetails
	CheckedInAt *time.Time `db:"checked_in_at" json:"checked_in_at,omitempty"`
	Redeemed    bool       `db:"-" json:"redeemed"`
}

// Entitlement is the outcome of the issuance checks: the tier and cost that
// will be snapshotted onto the new pass.
type Entitlement struct {
	SubscriptionID int               `json:"subscription_id"`
	Tier           subscription.Tier `json:"tier"`
	MonthlyLimit   int               `json:"monthly_limit"`
	VisitsUsed     int               `json:"visits_used"`
	CostCents      int64             `json:"cost_cents"`
}

type CheckInRequest struct {
	Code string `json:"code" binding:"required"`
}
