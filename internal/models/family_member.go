package models

import (
	"errors"
	"strings"
	"time"
)

type FamilyMember struct {
	ID        int64      `json:"id"`
	TreeID    int64      `json:"tree_id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Bio       string     `json:"bio,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (m *FamilyMember) Validate() error {
	if strings.TrimSpace(m.FirstName) == "" {
		return errors.New("first name required")
	}
	return nil
}
