package audit

import "time"

// Event is an immutable record of a privileged action. Events are appended as
// a side effect of writes and never read back by the write paths.
type Event struct {
	ID         int64     `db:"id" json:"id"`
	ActorType  string    `db:"actor_type" json:"actor_type"`
	ActorID    int       `db:"actor_id" json:"actor_id"`
	Action     string    `db:"action" json:"action"`
	TargetType string    `db:"target_type" json:"target_type"`
	TargetID   int       `db:"target_id" json:"target_id"`
	GymID      *int      `db:"gym_id" json:"gym_id,omitempty"`
	ChainID    *int      `db:"chain_id" json:"chain_id,omitempty"`
	Details    string    `db:"details" json:"details"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

const (
	ActorMember = "member"
	ActorStaff  = "staff"
	ActorSystem = "system"
)
