package audit

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

// AuditRepository is append-only, rows are never updated or deleted.
type AuditRepository interface {
	InsertLogTx(ctx context.Context, tx *sqlx.Tx, entry *model.ActivityLog) error
	ListByOrder(ctx context.Context, orderType constant.OrderType, orderID uint64) ([]model.ActivityLog, error)
}

func NewAuditRepository(conn *sqlx.DB) AuditRepository {
	return &SQL{conn: conn}
}

const auditColumns = "id, order_type, order_id, actor_id, actor_role, action, previous_status, new_status, note, created_at"

func (r *SQL) InsertLogTx(ctx context.Context, tx *sqlx.Tx, entry *model.ActivityLog) error {
	q := "INSERT INTO activity_log (order_type, order_id, actor_id, actor_role, action, previous_status, new_status, note) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := tx.ExecContext(ctx, q,
		entry.OrderType, entry.OrderID, entry.ActorID, entry.ActorRole,
		entry.Action, entry.PreviousStatus, entry.NewStatus, entry.Note)
	return err
}

func (r *SQL) ListByOrder(ctx context.Context, orderType constant.OrderType, orderID uint64) ([]model.ActivityLog, error) {
	q := "SELECT " + auditColumns + " FROM activity_log WHERE order_type = ? AND order_id = ? ORDER BY id"
	rows, err := r.conn.QueryxContext(ctx, q, orderType, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.ActivityLog, 0)
	for rows.Next() {
		var e model.ActivityLog
		if err := rows.StructScan(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
