package postgres

import (
	"context"

	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type membersRepo struct{ pool *pgxpool.Pool }

const memberCols = `id, tree_id, first_name, last_name, gender, birth_date, bio, created_at, updated_at`

func (r *membersRepo) scan(row interface{ Scan(...any) error }) (models.FamilyMember, error) {
	var m models.FamilyMember
	err := row.Scan(&m.ID, &m.TreeID, &m.FirstName, &m.LastName, &m.Gender, &m.BirthDate, &m.Bio, &m.CreatedAt, &m.UpdatedAt)
	return m, translate(err)
}

func (r *membersRepo) Create(ctx context.Context, m models.FamilyMember) (models.FamilyMember, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`INSERT INTO family_members(tree_id, first_name, last_name, gender, birth_date, bio)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING `+memberCols,
		m.TreeID, m.FirstName, m.LastName, m.Gender, m.BirthDate, m.Bio,
	))
}

func (r *membersRepo) GetByID(ctx context.Context, id int64) (models.FamilyMember, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+memberCols+` FROM family_members WHERE id=$1`, id,
	))
}

func (r *membersRepo) ListByTree(ctx context.Context, treeID int64) ([]models.FamilyMember, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+memberCols+` FROM family_members WHERE tree_id=$1 ORDER BY id`, treeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.FamilyMember
	for rows.Next() {
		m, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *membersRepo) Update(ctx context.Context, m models.FamilyMember) (models.FamilyMember, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`UPDATE family_members
		    SET first_name=$2, last_name=$3, gender=$4, birth_date=$5, bio=$6, updated_at=now()
		  WHERE id=$1
		 RETURNING `+memberCols,
		m.ID, m.FirstName, m.LastName, m.Gender, m.BirthDate, m.Bio,
	))
}

func (r *membersRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM family_members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *membersRepo) AllInTree(ctx context.Context, treeID int64, ids ...int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM family_members WHERE tree_id=$1 AND id = ANY($2)`,
		treeID, ids,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n == len(uniqueIDs(ids)), nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
