package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ecetopal/familytree-backend/internal/metrics"
	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
)

// ChangeRecorder appends audit rows for entity mutations. Writes are
// best-effort: the business mutation has already committed when Record runs,
// so a failed append is logged and counted but never surfaced to the caller.
type ChangeRecorder struct {
	logs repo.ChangeLogs
}

func NewChangeRecorder(logs repo.ChangeLogs) *ChangeRecorder {
	return &ChangeRecorder{logs: logs}
}

// Record writes one change row with before/after snapshots. oldV/newV may be
// nil (CREATE has no before, DELETE has no after).
func (c *ChangeRecorder) Record(ctx context.Context, actorID string, treeID int64, entityType string, entityID int64, op models.ChangeOperation, oldV, newV any) {
	l := models.ChangeLog{
		EntityType:   entityType,
		EntityID:     entityID,
		Operation:    op,
		TreeID:       treeID,
		ActingUserID: actorID,
		OldValue:     snapshot(oldV),
		NewValue:     snapshot(newV),
	}
	if err := c.logs.Create(ctx, l); err != nil {
		metrics.ChangeLogFailures.Inc()
		slog.Error("change log write failed",
			"entity_type", entityType, "entity_id", entityID, "op", op, "err", err)
		return
	}
	metrics.ChangesLogged.WithLabelValues(entityType, string(op)).Inc()
}

func snapshot(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		slog.Error("change log snapshot", "err", err)
		return nil
	}
	return b
}
