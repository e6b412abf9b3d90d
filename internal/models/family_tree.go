package models

import (
	"errors"
	"strings"
	"time"
)

type FamilyTree struct {
	ID          int64     `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *FamilyTree) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("tree name required")
	}
	return nil
}
