package postgres

import (
	"context"
	"time"

	"github.com/ecetopal/familytree-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type marriagesRepo struct{ pool *pgxpool.Pool }

const marriageCols = `id, tree_id, partner_one_id, partner_two_id, marriage_date, divorce_date, created_at`

func (r *marriagesRepo) scan(row interface{ Scan(...any) error }) (models.Marriage, error) {
	var m models.Marriage
	err := row.Scan(&m.ID, &m.TreeID, &m.PartnerOneID, &m.PartnerTwoID, &m.MarriageDate, &m.DivorceDate, &m.CreatedAt)
	return m, translate(err)
}

func (r *marriagesRepo) Create(ctx context.Context, m models.Marriage) (models.Marriage, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`INSERT INTO marriages(tree_id, partner_one_id, partner_two_id, marriage_date)
		 VALUES($1,$2,$3,$4)
		 RETURNING `+marriageCols,
		m.TreeID, m.PartnerOneID, m.PartnerTwoID, m.MarriageDate,
	))
}

func (r *marriagesRepo) GetByID(ctx context.Context, id int64) (models.Marriage, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+marriageCols+` FROM marriages WHERE id=$1`, id,
	))
}

func (r *marriagesRepo) ListByTree(ctx context.Context, treeID int64) ([]models.Marriage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+marriageCols+` FROM marriages WHERE tree_id=$1 ORDER BY marriage_date`, treeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Marriage
	for rows.Next() {
		m, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *marriagesRepo) SetDivorceDate(ctx context.Context, id int64, date time.Time) (models.Marriage, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`UPDATE marriages SET divorce_date=$2 WHERE id=$1 RETURNING `+marriageCols,
		id, date,
	))
}
