package services

import (
	"context"
	"errors"

	"github.com/ecetopal/familytree-backend/internal/auth"
	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
)

// Guard centralizes the tree access policy so handlers and services do not
// each reimplement the resolve-role-check-ownership block.
//
// Policy: any access across a tree boundary answers not-found, never
// forbidden, so probing cannot reveal which trees exist. A guest acting
// inside their own tree but outside their allowance gets forbidden.
type Guard struct {
	trees repo.FamilyTrees
}

func NewGuard(trees repo.FamilyTrees) *Guard { return &Guard{trees: trees} }

// ViewTree permits reads: owners on trees they own, guests on their bound
// tree. Everything else is not-found.
func (g *Guard) ViewTree(ctx context.Context, p auth.Principal, treeID int64) (models.FamilyTree, error) {
	if p.IsGuest() {
		if p.TreeID != treeID {
			return models.FamilyTree{}, NotFound("family tree not found")
		}
		t, err := g.trees.GetByID(ctx, treeID)
		if errors.Is(err, repo.ErrNotFound) {
			return models.FamilyTree{}, NotFound("family tree not found")
		}
		return t, err
	}
	t, err := g.trees.GetOwned(ctx, treeID, p.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		return models.FamilyTree{}, NotFound("family tree not found")
	}
	return t, err
}

// OwnTree permits owner-only writes. Guests bound to the tree are told so;
// guests probing other trees get the same not-found as ViewTree.
func (g *Guard) OwnTree(ctx context.Context, p auth.Principal, treeID int64) (models.FamilyTree, error) {
	if p.IsGuest() {
		if p.TreeID != treeID {
			return models.FamilyTree{}, NotFound("family tree not found")
		}
		return models.FamilyTree{}, Forbidden("this action is reserved for the tree owner")
	}
	t, err := g.trees.GetOwned(ctx, treeID, p.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		return models.FamilyTree{}, NotFound("family tree not found")
	}
	return t, err
}

// EditMember permits profile writes on a member already resolved to its
// tree: owners of the tree, or the guest bound to exactly that member.
func (g *Guard) EditMember(ctx context.Context, p auth.Principal, m models.FamilyMember) error {
	if p.IsGuest() {
		if p.TreeID != m.TreeID {
			return NotFound("family member not found")
		}
		if p.MemberID != m.ID {
			return Forbidden("guests may only edit their own profile")
		}
		return nil
	}
	_, err := g.OwnTree(ctx, p, m.TreeID)
	return err
}
