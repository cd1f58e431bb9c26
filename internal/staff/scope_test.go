package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestScopeFor(t *testing.T) {
	tests := []struct {
		name string
		acct Account
		want Scope
	}{
		{
			name: "chain admin resolves to its chain",
			acct: Account{Role: RoleChainAdmin, ChainID: intPtr(5)},
			want: Scope{Kind: ChainScope, ChainID: 5},
		},
		{
			name: "chain admin without a chain is empty",
			acct: Account{Role: RoleChainAdmin},
			want: Scope{Kind: EmptyScope},
		},
		{
			name: "chain admin with zero chain is empty",
			acct: Account{Role: RoleChainAdmin, ChainID: intPtr(0)},
			want: Scope{Kind: EmptyScope},
		},
		{
			name: "gym admin resolves to its gym set",
			acct: Account{Role: RoleGymAdmin, GymIDs: []int{10, 11}},
			want: Scope{Kind: GymSetScope, GymIDs: []int{10, 11}},
		},
		{
			name: "gym staff resolves to its gym set",
			acct: Account{Role: RoleGymStaff, GymIDs: []int{3}},
			want: Scope{Kind: GymSetScope, GymIDs: []int{3}},
		},
		{
			name: "gym admin without gyms is empty",
			acct: Account{Role: RoleGymAdmin},
			want: Scope{Kind: EmptyScope},
		},
		{
			name: "gym staff without gyms is empty",
			acct: Account{Role: RoleGymStaff, GymIDs: []int{}},
			want: Scope{Kind: EmptyScope},
		},
		{
			name: "unrecognized role is empty",
			acct: Account{Role: Role("superuser"), ChainID: intPtr(1), GymIDs: []int{1}},
			want: Scope{Kind: EmptyScope},
		},
		{
			name: "blank role is empty",
			acct: Account{},
			want: Scope{Kind: EmptyScope},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScopeFor(tt.acct))
		})
	}
}

func TestScopeFor_CopiesGymIDs(t *testing.T) {
	ids := []int{1, 2}
	scope := ScopeFor(Account{Role: RoleGymAdmin, GymIDs: ids})

	ids[0] = 99
	assert.Equal(t, []int{1, 2}, scope.GymIDs)
}

func TestScopeIsEmpty(t *testing.T) {
	assert.True(t, Scope{Kind: EmptyScope}.IsEmpty())
	assert.False(t, Scope{Kind: ChainScope, ChainID: 1}.IsEmpty())
	assert.False(t, Scope{Kind: GymSetScope, GymIDs: []int{1}}.IsEmpty())
}

func TestScopeContainsGym(t *testing.T) {
	scope := Scope{Kind: GymSetScope, GymIDs: []int{10, 11}}

	assert.True(t, scope.ContainsGym(10))
	assert.True(t, scope.ContainsGym(11))
	assert.False(t, scope.ContainsGym(12))

	// Chain scopes are resolved through the gym's chain, not the id set.
	assert.False(t, Scope{Kind: ChainScope, ChainID: 1}.ContainsGym(10))
	assert.False(t, Scope{Kind: EmptyScope}.ContainsGym(10))
}

func TestScopeCovers(t *testing.T) {
	scope := Scope{Kind: GymSetScope, GymIDs: []int{10, 11, 12}}

	assert.True(t, scope.Covers([]int{10}))
	assert.True(t, scope.Covers([]int{10, 12}))
	assert.True(t, scope.Covers(nil))
	assert.False(t, scope.Covers([]int{10, 13}))
	assert.False(t, Scope{Kind: GymSetScope}.Covers([]int{1}))
}
