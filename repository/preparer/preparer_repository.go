package preparer

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

// PreparerRepository tracks which workers are picking an order. Several
// workers can hold working rows on the same order at once, completion keeps
// the finisher and cancels the rest.
type PreparerRepository interface {
	InsertPreparerTx(ctx context.Context, tx *sqlx.Tx, orderID, workerID uint64) (uint64, error)
	GetWorkingPreparerTx(ctx context.Context, tx *sqlx.Tx, orderID, workerID uint64) (*model.OrderPreparer, error)
	UpdatePreparerStatusTx(ctx context.Context, tx *sqlx.Tx, preparerID uint64, status constant.PreparerStatus) error
	CancelWorkingExceptTx(ctx context.Context, tx *sqlx.Tx, orderID, preparerID uint64) error
	ListByOrder(ctx context.Context, orderID uint64) ([]model.OrderPreparer, error)
}

func NewPreparerRepository(conn *sqlx.DB) PreparerRepository {
	return &SQL{conn: conn}
}

const preparerColumns = "id, order_id, worker_id, status, created_at, updated_at"

func (r *SQL) InsertPreparerTx(ctx context.Context, tx *sqlx.Tx, orderID, workerID uint64) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO order_preparer (order_id, worker_id, status) VALUES (?, ?, ?)",
		orderID, workerID, constant.PreparerStatusWorking)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetWorkingPreparerTx(ctx context.Context, tx *sqlx.Tx, orderID, workerID uint64) (*model.OrderPreparer, error) {
	var p model.OrderPreparer
	q := "SELECT " + preparerColumns + " FROM order_preparer WHERE order_id = ? AND worker_id = ? AND status = ?"
	if err := tx.QueryRowxContext(ctx, q, orderID, workerID, constant.PreparerStatusWorking).StructScan(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQL) UpdatePreparerStatusTx(ctx context.Context, tx *sqlx.Tx, preparerID uint64, status constant.PreparerStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE order_preparer SET status = ? WHERE id = ?", status, preparerID)
	return err
}

func (r *SQL) CancelWorkingExceptTx(ctx context.Context, tx *sqlx.Tx, orderID, preparerID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE order_preparer SET status = ? WHERE order_id = ? AND status = ? AND id != ?",
		constant.PreparerStatusCancelled, orderID, constant.PreparerStatusWorking, preparerID)
	return err
}

func (r *SQL) ListByOrder(ctx context.Context, orderID uint64) ([]model.OrderPreparer, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT "+preparerColumns+" FROM order_preparer WHERE order_id = ? ORDER BY id", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	preparers := make([]model.OrderPreparer, 0)
	for rows.Next() {
		var p model.OrderPreparer
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		preparers = append(preparers, p)
	}
	return preparers, rows.Err()
}
