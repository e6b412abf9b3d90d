package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecetopal/familytree-backend/internal/models"
)

// Sentinel errors the postgres implementations translate driver errors into.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type FamilyTrees interface {
	Create(ctx context.Context, t models.FamilyTree) (models.FamilyTree, error)
	// GetOwned joins on the owner so callers never see trees they do not own.
	GetOwned(ctx context.Context, id int64, ownerID string) (models.FamilyTree, error)
	GetByID(ctx context.Context, id int64) (models.FamilyTree, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.FamilyTree, error)
	Update(ctx context.Context, t models.FamilyTree) (models.FamilyTree, error)
	Delete(ctx context.Context, id int64) error
}

type FamilyMembers interface {
	Create(ctx context.Context, m models.FamilyMember) (models.FamilyMember, error)
	GetByID(ctx context.Context, id int64) (models.FamilyMember, error)
	ListByTree(ctx context.Context, treeID int64) ([]models.FamilyMember, error)
	Update(ctx context.Context, m models.FamilyMember) (models.FamilyMember, error)
	Delete(ctx context.Context, id int64) error
	// AllInTree reports whether every given member id belongs to the tree.
	AllInTree(ctx context.Context, treeID int64, ids ...int64) (bool, error)
}

type Marriages interface {
	Create(ctx context.Context, m models.Marriage) (models.Marriage, error)
	GetByID(ctx context.Context, id int64) (models.Marriage, error)
	ListByTree(ctx context.Context, treeID int64) ([]models.Marriage, error)
	SetDivorceDate(ctx context.Context, id int64, date time.Time) (models.Marriage, error)
}

type Births interface {
	Create(ctx context.Context, b models.Birth) (models.Birth, error)
	ListByTree(ctx context.Context, treeID int64) ([]models.Birth, error)
}

type Passings interface {
	// Create fails with ErrDuplicate when the member already has a record.
	Create(ctx context.Context, p models.Passing) (models.Passing, error)
}

type Achievements interface {
	Create(ctx context.Context, a models.Achievement) (models.Achievement, error)
	GetByID(ctx context.Context, id int64) (models.Achievement, error)
	ListByMember(ctx context.Context, memberID int64) ([]models.Achievement, error)
	Update(ctx context.Context, a models.Achievement) (models.Achievement, error)
	Delete(ctx context.Context, id int64) error
}

type GuestEditors interface {
	// IssueCode stores code for the member unless an unexpired code exists,
	// in which case the existing row is returned untouched.
	IssueCode(ctx context.Context, treeID, memberID int64, code string) (models.GuestEditor, error)
	GetByCode(ctx context.Context, code string) (models.GuestEditor, error)
}

type ChangeLogs interface {
	Create(ctx context.Context, l models.ChangeLog) error
	ListByTree(ctx context.Context, treeID int64, limit, offset int) ([]models.ChangeLog, error)
}
