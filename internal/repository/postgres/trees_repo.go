package postgres

import (
	"context"

	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type treesRepo struct{ pool *pgxpool.Pool }

const treeCols = `id, owner_id, name, description, created_at, updated_at`

func (r *treesRepo) scan(row interface{ Scan(...any) error }) (models.FamilyTree, error) {
	var t models.FamilyTree
	err := row.Scan(&t.ID, &t.OwnerID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	return t, translate(err)
}

func (r *treesRepo) Create(ctx context.Context, t models.FamilyTree) (models.FamilyTree, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`INSERT INTO family_trees(owner_id, name, description) VALUES($1,$2,$3)
		 RETURNING `+treeCols,
		t.OwnerID, t.Name, t.Description,
	))
}

func (r *treesRepo) GetOwned(ctx context.Context, id int64, ownerID string) (models.FamilyTree, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+treeCols+` FROM family_trees WHERE id=$1 AND owner_id=$2`,
		id, ownerID,
	))
}

func (r *treesRepo) GetByID(ctx context.Context, id int64) (models.FamilyTree, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+treeCols+` FROM family_trees WHERE id=$1`, id,
	))
}

func (r *treesRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.FamilyTree, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+treeCols+` FROM family_trees WHERE owner_id=$1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.FamilyTree
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *treesRepo) Update(ctx context.Context, t models.FamilyTree) (models.FamilyTree, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`UPDATE family_trees SET name=$2, description=$3, updated_at=now()
		  WHERE id=$1
		 RETURNING `+treeCols,
		t.ID, t.Name, t.Description,
	))
}

func (r *treesRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM family_trees WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
