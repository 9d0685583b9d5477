package model

import "time"

// UserAction is one row of the append-only audit log.
type UserAction struct {
	ID         int64     `json:"id"`
	UserEmail  string    `json:"user_email"`
	ActionDate time.Time `json:"action_date"`
	ActionType string    `json:"action_type"`
	EntityType string    `json:"entity_type,omitempty"`
	Details    string    `json:"action_details,omitempty"`
	IPAddress  string    `json:"ip_address,omitempty"`
}

// Action types. Every mutating operation logs exactly one of these.
const (
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionDelete = "delete"
	ActionLogin  = "login"
	ActionLogout = "logout"
)

// Entity type labels used in audit entries.
const (
	EntityEnsemble    = "ensemble"
	EntityMusician    = "musician"
	EntityComposition = "composition"
	EntityRecord      = "record"
	EntityMembership  = "ensemble member"
	EntityPerformance = "performance"
	EntityTrack       = "record track"
	EntityUser        = "user"
)
