package services

import (
	"context"
	"errors"

	"github.com/ecetopal/familytree-backend/internal/auth"
	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
)

type MemberService struct {
	members repo.FamilyMembers
	guard   *Guard
	rec     *ChangeRecorder
}

func NewMemberService(members repo.FamilyMembers, guard *Guard, rec *ChangeRecorder) *MemberService {
	return &MemberService{members: members, guard: guard, rec: rec}
}

// resolve fetches a member and applies the cross-tree visibility policy.
func (s *MemberService) resolve(ctx context.Context, p auth.Principal, id int64) (models.FamilyMember, error) {
	m, err := s.members.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.FamilyMember{}, NotFound("family member not found")
	}
	if err != nil {
		return models.FamilyMember{}, err
	}
	if _, err := s.guard.ViewTree(ctx, p, m.TreeID); err != nil {
		return models.FamilyMember{}, NotFound("family member not found")
	}
	return m, nil
}

func (s *MemberService) Create(ctx context.Context, p auth.Principal, m models.FamilyMember) (models.FamilyMember, error) {
	if _, err := s.guard.OwnTree(ctx, p, m.TreeID); err != nil {
		return models.FamilyMember{}, err
	}
	if err := m.Validate(); err != nil {
		return models.FamilyMember{}, Invalid(err.Error())
	}
	created, err := s.members.Create(ctx, m)
	if err != nil {
		return models.FamilyMember{}, err
	}
	s.rec.Record(ctx, p.UserID, m.TreeID, models.EntityFamilyMember, created.ID, models.ChangeCreate, nil, created)
	return created, nil
}

func (s *MemberService) Get(ctx context.Context, p auth.Principal, id int64) (models.FamilyMember, error) {
	return s.resolve(ctx, p, id)
}

func (s *MemberService) ListByTree(ctx context.Context, p auth.Principal, treeID int64) ([]models.FamilyMember, error) {
	if _, err := s.guard.ViewTree(ctx, p, treeID); err != nil {
		return nil, err
	}
	return s.members.ListByTree(ctx, treeID)
}

// Update edits a member profile. Owners may edit anyone in their trees;
// guests only the member they are bound to.
func (s *MemberService) Update(ctx context.Context, p auth.Principal, id int64, in models.FamilyMember) (models.FamilyMember, error) {
	old, err := s.resolve(ctx, p, id)
	if err != nil {
		return models.FamilyMember{}, err
	}
	if err := s.guard.EditMember(ctx, p, old); err != nil {
		return models.FamilyMember{}, err
	}
	m := old
	m.FirstName = in.FirstName
	m.LastName = in.LastName
	m.Gender = in.Gender
	m.BirthDate = in.BirthDate
	m.Bio = in.Bio
	if err := m.Validate(); err != nil {
		return models.FamilyMember{}, Invalid(err.Error())
	}
	updated, err := s.members.Update(ctx, m)
	if err != nil {
		return models.FamilyMember{}, err
	}
	s.rec.Record(ctx, p.UserID, old.TreeID, models.EntityFamilyMember, id, models.ChangeUpdate, old, updated)
	return updated, nil
}

func (s *MemberService) Delete(ctx context.Context, p auth.Principal, id int64) error {
	old, err := s.resolve(ctx, p, id)
	if err != nil {
		return err
	}
	if _, err := s.guard.OwnTree(ctx, p, old.TreeID); err != nil {
		return err
	}
	if err := s.members.Delete(ctx, id); err != nil {
		return err
	}
	s.rec.Record(ctx, p.UserID, old.TreeID, models.EntityFamilyMember, id, models.ChangeDelete, old, nil)
	return nil
}
