package postgres

import (
	"errors"

	repo "github.com/ecetopal/familytree-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users        repo.Users
	FamilyTrees  repo.FamilyTrees
	Members      repo.FamilyMembers
	Marriages    repo.Marriages
	Births       repo.Births
	Passings     repo.Passings
	Achievements repo.Achievements
	GuestEditors repo.GuestEditors
	ChangeLogs   repo.ChangeLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:        &usersRepo{pool},
		FamilyTrees:  &treesRepo{pool},
		Members:      &membersRepo{pool},
		Marriages:    &marriagesRepo{pool},
		Births:       &birthsRepo{pool},
		Passings:     &passingsRepo{pool},
		Achievements: &achievementsRepo{pool},
		GuestEditors: &guestEditorsRepo{pool},
		ChangeLogs:   &changeLogsRepo{pool},
	}
}

// translate maps driver errors onto the repository sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repo.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repo.ErrDuplicate
	}
	return err
}
