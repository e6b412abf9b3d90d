package postgres

import (
	"context"
	"errors"

	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type guestEditorsRepo struct{ pool *pgxpool.Pool }

const guestCols = `id, tree_id, member_id, code, created_at`

func (r *guestEditorsRepo) scan(row interface{ Scan(...any) error }) (models.GuestEditor, error) {
	var g models.GuestEditor
	err := row.Scan(&g.ID, &g.TreeID, &g.MemberID, &g.Code, &g.CreatedAt)
	return g, translate(err)
}

// IssueCode inserts the fresh code, or on conflict replaces the member's row
// only when the old code has expired. When the upsert touches nothing the
// member still holds an active code, so we hand that one back. The single
// conditional statement is what makes concurrent issuance safe: one racer
// wins the write, the other reads the winner's row.
func (r *guestEditorsRepo) IssueCode(ctx context.Context, treeID, memberID int64, code string) (models.GuestEditor, error) {
	g, err := r.scan(r.pool.QueryRow(ctx,
		`INSERT INTO guest_editors(tree_id, member_id, code)
		 VALUES($1,$2,$3)
		 ON CONFLICT (member_id) DO UPDATE
		    SET code=EXCLUDED.code, created_at=now()
		  WHERE guest_editors.created_at <= now() - interval '48 hours'
		 RETURNING `+guestCols,
		treeID, memberID, code,
	))
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return models.GuestEditor{}, err
	}
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+guestCols+` FROM guest_editors WHERE member_id=$1`, memberID,
	))
}

func (r *guestEditorsRepo) GetByCode(ctx context.Context, code string) (models.GuestEditor, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+guestCols+` FROM guest_editors WHERE code=$1`, code,
	))
}
