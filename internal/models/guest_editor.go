package models

import "time"

// CodeTTL is how long a guest access code stays redeemable.
const CodeTTL = 48 * time.Hour

// CodeLength is the exact length of a guest access code.
const CodeLength = 45

// GuestEditor binds a random access code to one member of one tree.
// Codes are never revoked, they only age out after CodeTTL.
type GuestEditor struct {
	ID        int64     `json:"id"`
	TreeID    int64     `json:"tree_id"`
	MemberID  int64     `json:"member_id"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpiresAt returns the instant the code stops being redeemable.
func (g *GuestEditor) ExpiresAt() time.Time { return g.CreatedAt.Add(CodeTTL) }

// Active reports whether the code is still redeemable at now.
func (g *GuestEditor) Active(now time.Time) bool { return now.Before(g.ExpiresAt()) }
