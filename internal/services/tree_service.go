package services

import (
	"context"

	"github.com/ecetopal/familytree-backend/internal/auth"
	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
)

type TreeService struct {
	trees repo.FamilyTrees
	logs  repo.ChangeLogs
	guard *Guard
	rec   *ChangeRecorder
}

func NewTreeService(trees repo.FamilyTrees, logs repo.ChangeLogs, guard *Guard, rec *ChangeRecorder) *TreeService {
	return &TreeService{trees: trees, logs: logs, guard: guard, rec: rec}
}

func (s *TreeService) Create(ctx context.Context, p auth.Principal, name, description string) (models.FamilyTree, error) {
	if p.IsGuest() {
		return models.FamilyTree{}, Forbidden("this action is reserved for the tree owner")
	}
	t := models.FamilyTree{OwnerID: p.UserID, Name: name, Description: description}
	if err := t.Validate(); err != nil {
		return models.FamilyTree{}, Invalid(err.Error())
	}
	created, err := s.trees.Create(ctx, t)
	if err != nil {
		return models.FamilyTree{}, err
	}
	s.rec.Record(ctx, p.UserID, created.ID, models.EntityFamilyTree, created.ID, models.ChangeCreate, nil, created)
	return created, nil
}

func (s *TreeService) Get(ctx context.Context, p auth.Principal, id int64) (models.FamilyTree, error) {
	return s.guard.ViewTree(ctx, p, id)
}

func (s *TreeService) List(ctx context.Context, p auth.Principal) ([]models.FamilyTree, error) {
	if p.IsGuest() {
		return nil, Forbidden("this action is reserved for the tree owner")
	}
	return s.trees.ListByOwner(ctx, p.UserID)
}

func (s *TreeService) Update(ctx context.Context, p auth.Principal, id int64, name, description string) (models.FamilyTree, error) {
	old, err := s.guard.OwnTree(ctx, p, id)
	if err != nil {
		return models.FamilyTree{}, err
	}
	t := old
	t.Name = name
	t.Description = description
	if err := t.Validate(); err != nil {
		return models.FamilyTree{}, Invalid(err.Error())
	}
	updated, err := s.trees.Update(ctx, t)
	if err != nil {
		return models.FamilyTree{}, err
	}
	s.rec.Record(ctx, p.UserID, id, models.EntityFamilyTree, id, models.ChangeUpdate, old, updated)
	return updated, nil
}

func (s *TreeService) Delete(ctx context.Context, p auth.Principal, id int64) error {
	old, err := s.guard.OwnTree(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.trees.Delete(ctx, id); err != nil {
		return err
	}
	s.rec.Record(ctx, p.UserID, id, models.EntityFamilyTree, id, models.ChangeDelete, old, nil)
	return nil
}

// ChangeLog lists the tree's audit trail, newest first. Owner only: the
// trail covers every actor's edits, not just the caller's.
func (s *TreeService) ChangeLog(ctx context.Context, p auth.Principal, treeID int64, limit, offset int) ([]models.ChangeLog, error) {
	if _, err := s.guard.OwnTree(ctx, p, treeID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	return s.logs.ListByTree(ctx, treeID, limit, offset)
}
