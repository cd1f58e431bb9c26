package staff

// ScopeKind tags the closed set of data-visibility scopes a staff account can
// resolve to.
type ScopeKind int

const (
	// EmptyScope is the fail-closed default: every read resolves to zero
	// results, never to an error and never to everything.
	EmptyScope ScopeKind = iota
	// ChainScope covers every gym, member, pass and event inside one chain.
	ChainScope
	// GymSetScope covers an explicit set of assigned gyms.
	GymSetScope
)

type Scope struct {
	Kind    ScopeKind
	ChainID int
	GymIDs  []int
}

// ScopeFor maps a staff account's role and assignments to its data scope.
// Pure and total: unrecognized roles, a chain_admin without a chain, and a
// gym role without assigned gyms all resolve to EmptyScope.
func ScopeFor(acct Account) Scope {
	switch acct.Role {
	case RoleChainAdmin:
		if acct.ChainID == nil || *acct.ChainID == 0 {
			return Scope{Kind: EmptyScope}
		}
		return Scope{Kind: ChainScope, ChainID: *acct.ChainID}
	case RoleGymAdmin, RoleGymStaff:
		if len(acct.GymIDs) == 0 {
			return Scope{Kind: EmptyScope}
		}
		ids := make([]int, len(acct.GymIDs))
		copy(ids, acct.GymIDs)
		return Scope{Kind: GymSetScope, GymIDs: ids}
	default:
		return Scope{Kind: EmptyScope}
	}
}

func (s Scope) IsEmpty() bool {
	return s.Kind == EmptyScope
}

// ContainsGym reports whether a gym id is inside a GymSetScope. Chain scopes
// are resolved against the gym's chain by the consumer, not here.
func (s Scope) ContainsGym(gymID int) bool {
	if s.Kind != GymSetScope {
		return false
	}
	for _, id := range s.GymIDs {
		if id == gymID {
			return true
		}
	}
	return false
}

// Covers reports whether every gym id in ids is inside this GymSetScope.
// Used by the subordinate-creation rule for gym admins.
func (s Scope) Covers(ids []int) bool {
	set := make(map[int]struct{}, len(s.GymIDs))
	for _, id := range s.GymIDs {
		set[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
