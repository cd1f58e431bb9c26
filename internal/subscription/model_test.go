package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierLevel(t *testing.T) {
	assert.Equal(t, 1, TierStandard.Level())
	assert.Equal(t, 2, TierPremium.Level())
	assert.Equal(t, 3, TierElite.Level())

	// A malformed member tier ranks with standard.
	assert.Equal(t, 1, Tier("platinum").Level())
	assert.Equal(t, 1, Tier("").Level())
}

func TestRequiredLevel(t *testing.T) {
	assert.Equal(t, 1, RequiredLevel(TierStandard))
	assert.Equal(t, 2, RequiredLevel(TierPremium))
	assert.Equal(t, 3, RequiredLevel(TierElite))

	// A malformed gym requirement blocks all tiers.
	assert.Equal(t, 4, RequiredLevel(Tier("platinum")))
	assert.Equal(t, 4, RequiredLevel(Tier("")))
}

func TestTierMeets(t *testing.T) {
	tests := []struct {
		member   Tier
		required Tier
		want     bool
	}{
		{TierStandard, TierStandard, true},
		{TierStandard, TierPremium, false},
		{TierStandard, TierElite, false},
		{TierPremium, TierStandard, true},
		{TierPremium, TierPremium, true},
		{TierPremium, TierElite, false},
		{TierElite, TierStandard, true},
		{TierElite, TierPremium, true},
		{TierElite, TierElite, true},
		{Tier("unknown"), TierStandard, true},
		{TierElite, Tier("unknown"), false},
		{Tier("unknown"), Tier("unknown"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.member.Meets(tt.required),
			"member=%q required=%q", tt.member, tt.required)
	}
}

func TestTierIsValid(t *testing.T) {
	assert.True(t, TierStandard.IsValid())
	assert.True(t, TierPremium.IsValid())
	assert.True(t, TierElite.IsValid())
	assert.False(t, Tier("platinum").IsValid())
	assert.False(t, Tier("").IsValid())
}

func TestTierLimits(t *testing.T) {
	assert.Equal(t, 5, MonthlyLimitFor(TierStandard))
	assert.Equal(t, 10, MonthlyLimitFor(TierPremium))
	assert.Equal(t, 30, MonthlyLimitFor(TierElite))

	assert.Equal(t, 0, GuestPassLimitFor(TierStandard))
	assert.Equal(t, 2, GuestPassLimitFor(TierPremium))
	assert.Equal(t, 4, GuestPassLimitFor(TierElite))
}
