package services

import (
	"context"
	"errors"
	"time"

	"github.com/ecetopal/familytree-backend/internal/auth"
	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
)

type MarriageService struct {
	marriages repo.Marriages
	members   repo.FamilyMembers
	guard     *Guard
	rec       *ChangeRecorder
}

func NewMarriageService(marriages repo.Marriages, members repo.FamilyMembers, guard *Guard, rec *ChangeRecorder) *MarriageService {
	return &MarriageService{marriages: marriages, members: members, guard: guard, rec: rec}
}

func (s *MarriageService) Record(ctx context.Context, p auth.Principal, m models.Marriage) (models.Marriage, error) {
	if _, err := s.guard.OwnTree(ctx, p, m.TreeID); err != nil {
		return models.Marriage{}, err
	}
	if err := m.Validate(); err != nil {
		return models.Marriage{}, Invalid(err.Error())
	}
	ok, err := s.members.AllInTree(ctx, m.TreeID, m.PartnerOneID, m.PartnerTwoID)
	if err != nil {
		return models.Marriage{}, err
	}
	if !ok {
		return models.Marriage{}, Invalid("both partners must belong to the tree")
	}
	created, err := s.marriages.Create(ctx, m)
	if err != nil {
		return models.Marriage{}, err
	}
	s.rec.Record(ctx, p.UserID, m.TreeID, models.EntityMarriage, created.ID, models.ChangeCreate, nil, created)
	return created, nil
}

func (s *MarriageService) ListByTree(ctx context.Context, p auth.Principal, treeID int64) ([]models.Marriage, error) {
	if _, err := s.guard.ViewTree(ctx, p, treeID); err != nil {
		return nil, err
	}
	return s.marriages.ListByTree(ctx, treeID)
}

// Divorce records a divorce date on an existing marriage. The date must
// fall after the marriage date, and a couple can only divorce once.
func (s *MarriageService) Divorce(ctx context.Context, p auth.Principal, id int64, date time.Time) (models.Marriage, error) {
	old, err := s.marriages.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Marriage{}, NotFound("marriage not found")
	}
	if err != nil {
		return models.Marriage{}, err
	}
	if _, err := s.guard.OwnTree(ctx, p, old.TreeID); err != nil {
		return models.Marriage{}, err
	}
	if date.IsZero() {
		return models.Marriage{}, Invalid("divorce date required")
	}
	if !date.After(old.MarriageDate) {
		return models.Marriage{}, Invalid("divorce date must be after the marriage date")
	}
	if old.Divorced() {
		return models.Marriage{}, Conflict("marriage already has a divorce recorded")
	}
	updated, err := s.marriages.SetDivorceDate(ctx, id, date)
	if err != nil {
		return models.Marriage{}, err
	}
	s.rec.Record(ctx, p.UserID, old.TreeID, models.EntityMarriage, id, models.ChangeUpdate, old, updated)
	return updated, nil
}
