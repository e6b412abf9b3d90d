package models

import (
	"errors"
	"time"
)

type Passing struct {
	ID          int64     `json:"id"`
	TreeID      int64     `json:"tree_id"`
	MemberID    int64     `json:"member_id"`
	PassingDate time.Time `json:"passing_date"`
	Place       string    `json:"place,omitempty"`
	Cause       string    `json:"cause,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Passing) Validate() error {
	if p.MemberID == 0 {
		return errors.New("member required")
	}
	if p.PassingDate.IsZero() {
		return errors.New("passing date required")
	}
	return nil
}
