package batch

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BatchRepository interface {
	GetActiveBatches(ctx context.Context, productID uint64) ([]model.Batch, error)
	GetActiveBatchesTx(ctx context.Context, tx *sqlx.Tx, productID uint64) ([]model.Batch, error)
	GetBatchesByIDTx(ctx context.Context, tx *sqlx.Tx, batchIDs []uint64) ([]model.Batch, error)
	CountBatches(ctx context.Context, productID uint64) (int64, error)
	CountBatchesTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (int64, error)
	InsertBatchTx(ctx context.Context, tx *sqlx.Tx, b *model.Batch) (uint64, error)
	UpdateBatchQuantityTx(ctx context.Context, tx *sqlx.Tx, batchID uint64, quantity int64, status constant.BatchStatus) error
	ListByProduct(ctx context.Context, productID uint64) ([]model.Batch, error)
	ListNearExpiry(ctx context.Context, until time.Time) ([]model.Batch, error)
}

func NewBatchRepository(conn *sqlx.DB) BatchRepository {
	return &SQL{conn: conn}
}

const (
	batchColumns = "id, product_id, quantity, production_date, expiry_date, batch_number, received_date, cost_price, status, supplier_id, supplier_order_id, created_at, updated_at"

	// consumption order: oldest production first with unknown dates last,
	// then oldest arrival, then id as the tie break
	fifoOrder = "ORDER BY production_date IS NULL, production_date ASC, received_date ASC, id ASC"
)

func (r *SQL) GetActiveBatches(ctx context.Context, productID uint64) ([]model.Batch, error) {
	q := "SELECT " + batchColumns + " FROM batch WHERE product_id = ? AND status = ? " + fifoOrder
	return r.scanBatches(r.conn.QueryxContext(ctx, q, productID, constant.BatchStatusActive))
}

func (r *SQL) GetActiveBatchesTx(ctx context.Context, tx *sqlx.Tx, productID uint64) ([]model.Batch, error) {
	// lock rows for this product to avoid double allocation
	q := "SELECT " + batchColumns + " FROM batch WHERE product_id = ? AND status = ? " + fifoOrder + " FOR UPDATE"
	return r.scanBatches(tx.QueryxContext(ctx, q, productID, constant.BatchStatusActive))
}

func (r *SQL) GetBatchesByIDTx(ctx context.Context, tx *sqlx.Tx, batchIDs []uint64) ([]model.Batch, error) {
	if len(batchIDs) == 0 {
		return []model.Batch{}, nil
	}
	q, args, err := sqlx.In("SELECT "+batchColumns+" FROM batch WHERE id IN (?) ORDER BY id FOR UPDATE", batchIDs)
	if err != nil {
		return nil, err
	}
	return r.scanBatches(tx.QueryxContext(ctx, tx.Rebind(q), args...))
}

func (r *SQL) CountBatches(ctx context.Context, productID uint64) (int64, error) {
	var total int64
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM batch WHERE product_id = ?", productID); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SQL) CountBatchesTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (int64, error) {
	var total int64
	if err := tx.GetContext(ctx, &total, "SELECT COUNT(*) FROM batch WHERE product_id = ?", productID); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SQL) InsertBatchTx(ctx context.Context, tx *sqlx.Tx, b *model.Batch) (uint64, error) {
	q := "INSERT INTO batch (product_id, quantity, production_date, expiry_date, batch_number, received_date, cost_price, status, supplier_id, supplier_order_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	res, err := tx.ExecContext(ctx, q,
		b.ProductID, b.Quantity, b.ProductionDate, b.ExpiryDate, b.BatchNumber,
		b.ReceivedDate, b.CostPrice, b.Status, b.SupplierID, b.SupplierOrderID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) UpdateBatchQuantityTx(ctx context.Context, tx *sqlx.Tx, batchID uint64, quantity int64, status constant.BatchStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE batch SET quantity = ?, status = ? WHERE id = ?", quantity, status, batchID)
	return err
}

func (r *SQL) ListByProduct(ctx context.Context, productID uint64) ([]model.Batch, error) {
	q := "SELECT " + batchColumns + " FROM batch WHERE product_id = ? " + fifoOrder
	return r.scanBatches(r.conn.QueryxContext(ctx, q, productID))
}

func (r *SQL) ListNearExpiry(ctx context.Context, until time.Time) ([]model.Batch, error) {
	q := "SELECT " + batchColumns + " FROM batch WHERE status = ? AND expiry_date IS NOT NULL AND expiry_date <= ? ORDER BY expiry_date ASC, id ASC"
	return r.scanBatches(r.conn.QueryxContext(ctx, q, constant.BatchStatusActive, until))
}

func (r *SQL) scanBatches(rows *sqlx.Rows, qerr error) ([]model.Batch, error) {
	if qerr != nil {
		return nil, qerr
	}
	defer rows.Close()

	batches := make([]model.Batch, 0)
	for rows.Next() {
		var b model.Batch
		if err := rows.StructScan(&b); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}
