package models

import (
	"errors"
	"time"
)

type Marriage struct {
	ID           int64      `json:"id"`
	TreeID       int64      `json:"tree_id"`
	PartnerOneID int64      `json:"partner_one_id"`
	PartnerTwoID int64      `json:"partner_two_id"`
	MarriageDate time.Time  `json:"marriage_date"`
	DivorceDate  *time.Time `json:"divorce_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (m *Marriage) Validate() error {
	if m.PartnerOneID == m.PartnerTwoID {
		return errors.New("partners must be distinct")
	}
	if m.MarriageDate.IsZero() {
		return errors.New("marriage date required")
	}
	return nil
}

// Divorced reports whether a divorce has been recorded.
func (m *Marriage) Divorced() bool { return m.DivorceDate != nil }
