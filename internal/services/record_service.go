package services

import (
	"context"
	"errors"

	"github.com/ecetopal/familytree-backend/internal/auth"
	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
)

// RecordService covers the life-event records: births, passings and
// achievements.
type RecordService struct {
	births       repo.Births
	passings     repo.Passings
	achievements repo.Achievements
	members      repo.FamilyMembers
	guard        *Guard
	rec          *ChangeRecorder
}

func NewRecordService(births repo.Births, passings repo.Passings, achievements repo.Achievements, members repo.FamilyMembers, guard *Guard, rec *ChangeRecorder) *RecordService {
	return &RecordService{
		births:       births,
		passings:     passings,
		achievements: achievements,
		members:      members,
		guard:        guard,
		rec:          rec,
	}
}

// ---------------- births ----------------

func (s *RecordService) RecordBirth(ctx context.Context, p auth.Principal, b models.Birth) (models.Birth, error) {
	if _, err := s.guard.OwnTree(ctx, p, b.TreeID); err != nil {
		return models.Birth{}, err
	}
	if err := b.Validate(); err != nil {
		return models.Birth{}, Invalid(err.Error())
	}
	ids := []int64{b.ChildID}
	if b.MotherID != nil {
		ids = append(ids, *b.MotherID)
	}
	if b.FatherID != nil {
		ids = append(ids, *b.FatherID)
	}
	ok, err := s.members.AllInTree(ctx, b.TreeID, ids...)
	if err != nil {
		return models.Birth{}, err
	}
	if !ok {
		return models.Birth{}, Invalid("child and parents must belong to the tree")
	}
	created, err := s.births.Create(ctx, b)
	if err != nil {
		return models.Birth{}, err
	}
	s.rec.Record(ctx, p.UserID, b.TreeID, models.EntityBirth, created.ID, models.ChangeCreate, nil, created)
	return created, nil
}

func (s *RecordService) ListBirths(ctx context.Context, p auth.Principal, treeID int64) ([]models.Birth, error) {
	if _, err := s.guard.ViewTree(ctx, p, treeID); err != nil {
		return nil, err
	}
	return s.births.ListByTree(ctx, treeID)
}

// ---------------- passings ----------------

// RecordPassing creates the single passing record a member may have.
func (s *RecordService) RecordPassing(ctx context.Context, p auth.Principal, in models.Passing) (models.Passing, error) {
	m, err := s.members.GetByID(ctx, in.MemberID)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Passing{}, NotFound("family member not found")
	}
	if err != nil {
		return models.Passing{}, err
	}
	if _, err := s.guard.OwnTree(ctx, p, m.TreeID); err != nil {
		return models.Passing{}, err
	}
	in.TreeID = m.TreeID
	if err := in.Validate(); err != nil {
		return models.Passing{}, Invalid(err.Error())
	}
	created, err := s.passings.Create(ctx, in)
	if errors.Is(err, repo.ErrDuplicate) {
		return models.Passing{}, Conflict("member already has a passing record")
	}
	if err != nil {
		return models.Passing{}, err
	}
	s.rec.Record(ctx, p.UserID, m.TreeID, models.EntityPassing, created.ID, models.ChangeCreate, nil, created)
	return created, nil
}

// ---------------- achievements ----------------

func (s *RecordService) AddAchievement(ctx context.Context, p auth.Principal, a models.Achievement) (models.Achievement, error) {
	m, err := s.members.GetByID(ctx, a.MemberID)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Achievement{}, NotFound("family member not found")
	}
	if err != nil {
		return models.Achievement{}, err
	}
	if err := s.guard.EditMember(ctx, p, m); err != nil {
		return models.Achievement{}, err
	}
	a.TreeID = m.TreeID
	if err := a.Validate(); err != nil {
		return models.Achievement{}, Invalid(err.Error())
	}
	created, err := s.achievements.Create(ctx, a)
	if err != nil {
		return models.Achievement{}, err
	}
	s.rec.Record(ctx, p.UserID, m.TreeID, models.EntityAchievement, created.ID, models.ChangeCreate, nil, created)
	return created, nil
}

func (s *RecordService) ListAchievements(ctx context.Context, p auth.Principal, memberID int64) ([]models.Achievement, error) {
	m, err := s.members.GetByID(ctx, memberID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NotFound("family member not found")
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.ViewTree(ctx, p, m.TreeID); err != nil {
		return nil, NotFound("family member not found")
	}
	return s.achievements.ListByMember(ctx, memberID)
}

// resolveAchievement loads an achievement plus its member for the guard.
func (s *RecordService) resolveAchievement(ctx context.Context, p auth.Principal, id int64) (models.Achievement, models.FamilyMember, error) {
	a, err := s.achievements.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Achievement{}, models.FamilyMember{}, NotFound("achievement not found")
	}
	if err != nil {
		return models.Achievement{}, models.FamilyMember{}, err
	}
	m, err := s.members.GetByID(ctx, a.MemberID)
	if err != nil {
		return models.Achievement{}, models.FamilyMember{}, err
	}
	if _, err := s.guard.ViewTree(ctx, p, m.TreeID); err != nil {
		return models.Achievement{}, models.FamilyMember{}, NotFound("achievement not found")
	}
	return a, m, nil
}

func (s *RecordService) UpdateAchievement(ctx context.Context, p auth.Principal, id int64, in models.Achievement) (models.Achievement, error) {
	old, m, err := s.resolveAchievement(ctx, p, id)
	if err != nil {
		return models.Achievement{}, err
	}
	if err := s.guard.EditMember(ctx, p, m); err != nil {
		return models.Achievement{}, err
	}
	a := old
	a.Title = in.Title
	a.Description = in.Description
	a.AchievedOn = in.AchievedOn
	if err := a.Validate(); err != nil {
		return models.Achievement{}, Invalid(err.Error())
	}
	updated, err := s.achievements.Update(ctx, a)
	if err != nil {
		return models.Achievement{}, err
	}
	s.rec.Record(ctx, p.UserID, m.TreeID, models.EntityAchievement, id, models.ChangeUpdate, old, updated)
	return updated, nil
}

func (s *RecordService) DeleteAchievement(ctx context.Context, p auth.Principal, id int64) error {
	old, m, err := s.resolveAchievement(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.guard.EditMember(ctx, p, m); err != nil {
		return err
	}
	if err := s.achievements.Delete(ctx, id); err != nil {
		return err
	}
	s.rec.Record(ctx, p.UserID, m.TreeID, models.EntityAchievement, id, models.ChangeDelete, old, nil)
	return nil
}
