package postgres

import (
	"context"

	"github.com/ecetopal/familytree-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type passingsRepo struct{ pool *pgxpool.Pool }

const passingCols = `id, tree_id, member_id, passing_date, place, cause, created_at`

func (r *passingsRepo) scan(row interface{ Scan(...any) error }) (models.Passing, error) {
	var p models.Passing
	err := row.Scan(&p.ID, &p.TreeID, &p.MemberID, &p.PassingDate, &p.Place, &p.Cause, &p.CreatedAt)
	return p, translate(err)
}

// Create relies on the unique constraint on member_id; a second passing for
// the same member comes back as ErrDuplicate.
func (r *passingsRepo) Create(ctx context.Context, p models.Passing) (models.Passing, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`INSERT INTO passings(tree_id, member_id, passing_date, place, cause)
		 VALUES($1,$2,$3,$4,$5)
		 RETURNING `+passingCols,
		p.TreeID, p.MemberID, p.PassingDate, p.Place, p.Cause,
	))
}
