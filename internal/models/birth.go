package models

import (
	"errors"
	"time"
)

type Birth struct {
	ID        int64     `json:"id"`
	TreeID    int64     `json:"tree_id"`
	ChildID   int64     `json:"child_id"`
	MotherID  *int64    `json:"mother_id,omitempty"`
	FatherID  *int64    `json:"father_id,omitempty"`
	BirthDate time.Time `json:"birth_date"`
	Place     string    `json:"place,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *Birth) Validate() error {
	if b.ChildID == 0 {
		return errors.New("child required")
	}
	if b.BirthDate.IsZero() {
		return errors.New("birth date required")
	}
	return nil
}
