package subscription

import "time"

// Tier is the ordered subscription level gating which gyms a pass may be
// issued for: standard < premium < elite.
type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
	TierElite    Tier = "elite"
)

// Level ranks a member's tier. Unknown tiers rank with standard so a
// malformed subscription never gains access it should not have.
func (t Tier) Level() int {
	switch t {
	case TierElite:
		return 3
	case TierPremium:
		return 2
	default:
		return 1
	}
}

// RequiredLevel ranks a gym's required tier. Unknown tiers rank above elite
// so a gym with a malformed requirement blocks all access.
func RequiredLevel(t Tier) int {
	switch t {
	case TierStandard:
		return 1
	case TierPremium:
		return 2
	case TierElite:
		return 3
	default:
		return 4
	}
}

// Meets reports whether this tier grants access to a gym requiring the given
// tier.
func (t Tier) Meets(required Tier) bool {
	return t.Level() >= RequiredLevel(required)
}

func (t Tier) IsValid() bool {
	switch t {
	case TierStandard, TierPremium, TierElite:
		return true
	}
	return false
}

// MonthlyLimitFor is the per-billing-period pass allowance of each tier.
func MonthlyLimitFor(t Tier) int {
	switch t {
	case TierElite:
		return 30
	case TierPremium:
		return 10
	default:
		return 5
	}
}

// GuestPassLimitFor is the per-period guest pass allowance of each tier.
func GuestPassLimitFor(t Tier) int {
	switch t {
	case TierElite:
		return 4
	case TierPremium:
		return 2
	default:
		return 0
	}
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

type Subscription struct {
	ID               int       `db:"id" json:"id"`
	MemberID         int       `db:"member_id" json:"member_id"`
	Tier             Tier      `db:"tier" json:"tier"`
	Status           Status    `db:"status" json:"status"`
	MonthlyLimit     int       `db:"monthly_limit" json:"monthly_limit"`
	VisitsUsed       int       `db:"visits_used" json:"visits_used"`
	GuestPassesLimit int       `db:"guest_passes_limit" json:"guest_passes_limit"`
	GuestPassesUsed  int       `db:"guest_passes_used" json:"guest_passes_used"`
	PeriodStart      time.Time `db:"period_start" json:"period_start"`
	PeriodEnd        time.Time `db:"period_end" json:"period_end"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type PurchaseRequest struct {
	Tier string `json:"tier" binding:"required"`
}
