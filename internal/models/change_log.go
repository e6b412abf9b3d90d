package models

import (
	"encoding/json"
	"time"
)

type ChangeOperation string

const (
	ChangeCreate ChangeOperation = "CREATE"
	ChangeUpdate ChangeOperation = "UPDATE"
	ChangeDelete ChangeOperation = "DELETE"
)

// Entity type strings used in change_logs rows.
const (
	EntityFamilyTree   = "family_tree"
	EntityFamilyMember = "family_member"
	EntityMarriage     = "marriage"
	EntityBirth        = "birth"
	EntityPassing      = "passing"
	EntityAchievement  = "achievement"
)

// ChangeLog is one append-only audit row. OldValue/NewValue hold JSON
// snapshots of the entity before and after the mutation (nil for the
// missing side of CREATE/DELETE).
type ChangeLog struct {
	ID           int64           `json:"id"`
	EntityType   string          `json:"entity_type"`
	EntityID     int64           `json:"entity_id"`
	Operation    ChangeOperation `json:"operation"`
	TreeID       int64           `json:"tree_id"`
	ActingUserID string          `json:"acting_user_id"`
	OldValue     json.RawMessage `json:"old_value,omitempty"`
	NewValue     json.RawMessage `json:"new_value,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
