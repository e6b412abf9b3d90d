package postgres

import (
	"context"

	"github.com/ecetopal/familytree-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type birthsRepo struct{ pool *pgxpool.Pool }

const birthCols = `id, tree_id, child_id, mother_id, father_id, birth_date, place, created_at`

func (r *birthsRepo) scan(row interface{ Scan(...any) error }) (models.Birth, error) {
	var b models.Birth
	err := row.Scan(&b.ID, &b.TreeID, &b.ChildID, &b.MotherID, &b.FatherID, &b.BirthDate, &b.Place, &b.CreatedAt)
	return b, translate(err)
}

func (r *birthsRepo) Create(ctx context.Context, b models.Birth) (models.Birth, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`INSERT INTO births(tree_id, child_id, mother_id, father_id, birth_date, place)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING `+birthCols,
		b.TreeID, b.ChildID, b.MotherID, b.FatherID, b.BirthDate, b.Place,
	))
}

func (r *birthsRepo) ListByTree(ctx context.Context, treeID int64) ([]models.Birth, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+birthCols+` FROM births WHERE tree_id=$1 ORDER BY birth_date`, treeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Birth
	for rows.Next() {
		b, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
