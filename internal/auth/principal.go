package auth

// Principal is the resolved session identity handed to services.
// TreeID/MemberID are only set for guest sessions.
type Principal struct {
	UserID   string
	Role     string
	TreeID   int64
	MemberID int64
}

func (p Principal) IsOwner() bool { return p.Role == RoleOwner }
func (p Principal) IsGuest() bool { return p.Role == RoleGuest }
