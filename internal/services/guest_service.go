package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecetopal/familytree-backend/internal/auth"
	"github.com/ecetopal/familytree-backend/internal/metrics"
	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
)

type GuestService struct {
	guests  repo.GuestEditors
	members repo.FamilyMembers
	guard   *Guard
	tm      *auth.TokenManager
	now     func() time.Time
}

func NewGuestService(guests repo.GuestEditors, members repo.FamilyMembers, guard *Guard, tm *auth.TokenManager) *GuestService {
	return &GuestService{guests: guests, members: members, guard: guard, tm: tm, now: time.Now}
}

// IssueCode hands out the access code for a member. Issuance is idempotent:
// while an unexpired code exists, the same code comes back; once it has
// aged out a fresh one replaces it.
func (s *GuestService) IssueCode(ctx context.Context, p auth.Principal, treeID, memberID int64) (models.GuestEditor, error) {
	if _, err := s.guard.OwnTree(ctx, p, treeID); err != nil {
		return models.GuestEditor{}, err
	}
	m, err := s.members.GetByID(ctx, memberID)
	if errors.Is(err, repo.ErrNotFound) || (err == nil && m.TreeID != treeID) {
		return models.GuestEditor{}, NotFound("family member not found")
	}
	if err != nil {
		return models.GuestEditor{}, err
	}

	code, err := auth.NewAccessCode()
	if err != nil {
		return models.GuestEditor{}, err
	}
	g, err := s.guests.IssueCode(ctx, treeID, memberID, code)
	if err != nil {
		return models.GuestEditor{}, err
	}
	if g.Code == code {
		metrics.GuestCodesIssued.Inc()
	}
	return g, nil
}

// Redeem turns an active access code into a guest session bound to the
// code's member and tree.
func (s *GuestService) Redeem(ctx context.Context, code string) (access, refresh string, g models.GuestEditor, err error) {
	if len(code) != models.CodeLength {
		return "", "", models.GuestEditor{}, Invalid("access code must be 45 characters")
	}
	g, err = s.guests.GetByCode(ctx, code)
	if errors.Is(err, repo.ErrNotFound) {
		return "", "", models.GuestEditor{}, Unauthorized("invalid or expired access code")
	}
	if err != nil {
		return "", "", models.GuestEditor{}, err
	}
	if !g.Active(s.now()) {
		return "", "", models.GuestEditor{}, Unauthorized("invalid or expired access code")
	}
	// Guests have no user row; the grant id becomes the acting identity
	// recorded in change logs.
	actorID := fmt.Sprintf("guest:%d", g.ID)
	access, refresh, _, err = s.tm.GenerateGuestPair(actorID, g.TreeID, g.MemberID)
	if err != nil {
		return "", "", models.GuestEditor{}, err
	}
	metrics.GuestCodesRedeemed.Inc()
	return access, refresh, g, nil
}
