package models

import (
	"errors"
	"strings"
	"time"
)

type Achievement struct {
	ID          int64      `json:"id"`
	TreeID      int64      `json:"tree_id"`
	MemberID    int64      `json:"member_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AchievedOn  *time.Time `json:"achieved_on,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (a *Achievement) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("title required")
	}
	return nil
}
