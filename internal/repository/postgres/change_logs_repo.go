package postgres

import (
	"context"

	"github.com/ecetopal/familytree-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type changeLogsRepo struct{ pool *pgxpool.Pool }

func (r *changeLogsRepo) Create(ctx context.Context, l models.ChangeLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO change_logs(entity_type, entity_id, operation, tree_id, acting_user_id, old_value, new_value)
		 VALUES($1,$2,$3,$4,$5,$6,$7)`,
		l.EntityType, l.EntityID, l.Operation, l.TreeID, l.ActingUserID, l.OldValue, l.NewValue,
	)
	return err
}

func (r *changeLogsRepo) ListByTree(ctx context.Context, treeID int64, limit, offset int) ([]models.ChangeLog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, entity_type, entity_id, operation, tree_id, acting_user_id, old_value, new_value, created_at
		   FROM change_logs
		  WHERE tree_id=$1
		  ORDER BY created_at DESC, id DESC
		  LIMIT $2 OFFSET $3`,
		treeID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ChangeLog
	for rows.Next() {
		var l models.ChangeLog
		if err := rows.Scan(&l.ID, &l.EntityType, &l.EntityID, &l.Operation, &l.TreeID, &l.ActingUserID, &l.OldValue, &l.NewValue, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
