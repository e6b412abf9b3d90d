package postgres

import (
	"context"

	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type achievementsRepo struct{ pool *pgxpool.Pool }

const achievementCols = `id, tree_id, member_id, title, description, achieved_on, created_at, updated_at`

func (r *achievementsRepo) scan(row interface{ Scan(...any) error }) (models.Achievement, error) {
	var a models.Achievement
	err := row.Scan(&a.ID, &a.TreeID, &a.MemberID, &a.Title, &a.Description, &a.AchievedOn, &a.CreatedAt, &a.UpdatedAt)
	return a, translate(err)
}

func (r *achievementsRepo) Create(ctx context.Context, a models.Achievement) (models.Achievement, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`INSERT INTO achievements(tree_id, member_id, title, description, achieved_on)
		 VALUES($1,$2,$3,$4,$5)
		 RETURNING `+achievementCols,
		a.TreeID, a.MemberID, a.Title, a.Description, a.AchievedOn,
	))
}

func (r *achievementsRepo) GetByID(ctx context.Context, id int64) (models.Achievement, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+achievementCols+` FROM achievements WHERE id=$1`, id,
	))
}

func (r *achievementsRepo) ListByMember(ctx context.Context, memberID int64) ([]models.Achievement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+achievementCols+` FROM achievements WHERE member_id=$1 ORDER BY achieved_on NULLS LAST, id`,
		memberID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Achievement
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *achievementsRepo) Update(ctx context.Context, a models.Achievement) (models.Achievement, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`UPDATE achievements
		    SET title=$2, description=$3, achieved_on=$4, updated_at=now()
		  WHERE id=$1
		 RETURNING `+achievementCols,
		a.ID, a.Title, a.Description, a.AchievedOn,
	))
}

func (r *achievementsRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM achievements WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
