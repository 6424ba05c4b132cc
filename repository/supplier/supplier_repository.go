package supplier

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type SupplierRepository interface {
	GetSupplier(ctx context.Context, id uint64) (*model.Supplier, error)
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
	GetSupplierPriceTx(ctx context.Context, tx *sqlx.Tx, supplierID, productID uint64) (decimal.Decimal, bool, error)
	InsertSupplierOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.SupplierOrder) (uint64, error)
	InsertSupplierOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.SupplierOrderItem) error
	GetSupplierOrder(ctx context.Context, id uint64) (*model.SupplierOrder, error)
	GetSupplierOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.SupplierOrder, error)
	GetSupplierOrderItems(ctx context.Context, orderID uint64) ([]model.SupplierOrderItem, error)
	GetSupplierOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.SupplierOrderItem, error)
	UpdateSupplierOrderStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, from, to constant.SupplierOrderStatus) (bool, error)
	UpdateSupplierOrderTotalTx(ctx context.Context, tx *sqlx.Tx, id uint64, total decimal.Decimal) error
	UpdateItemDecisionTx(ctx context.Context, tx *sqlx.Tx, item *model.SupplierOrderItem) error
	UpdateItemReceivedTx(ctx context.Context, tx *sqlx.Tx, itemID uint64, received int64, subtotal decimal.Decimal) error
	List(ctx context.Context, status constant.SupplierOrderStatus, page, perPage int) ([]model.SupplierOrder, int64, error)
}

func NewSupplierRepository(conn *sqlx.DB) SupplierRepository {
	return &SQL{conn: conn}
}

const (
	supplierOrderColumns = "id, supplier_id, status, total_cost, created_at, updated_at"

	supplierItemColumns = "si.id, si.supplier_order_id, si.product_id, p.name as product_name, si.status, si.quantity, si.received_quantity, si.cost_price, si.subtotal, si.production_date, si.expiry_date, si.batch_number"
)

func (r *SQL) GetSupplier(ctx context.Context, id uint64) (*model.Supplier, error) {
	var s model.Supplier
	if err := r.conn.QueryRowxContext(ctx, "SELECT id, name, phone, created_at FROM supplier WHERE id = ?", id).StructScan(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQL) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT id, name, phone, created_at FROM supplier ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suppliers := make([]model.Supplier, 0)
	for rows.Next() {
		var s model.Supplier
		if err := rows.StructScan(&s); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

// GetSupplierPriceTx looks up the negotiated price for one product. The
// second return is false when the supplier has no price list entry and the
// caller should fall back to the product cost price.
func (r *SQL) GetSupplierPriceTx(ctx context.Context, tx *sqlx.Tx, supplierID, productID uint64) (decimal.Decimal, bool, error) {
	var price decimal.Decimal
	q := "SELECT cost_price FROM supplier_price WHERE supplier_id = ? AND product_id = ?"
	if err := tx.GetContext(ctx, &price, q, supplierID, productID); err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}
	return price, true, nil
}

func (r *SQL) InsertSupplierOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.SupplierOrder) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO supplier_order (supplier_id, status, total_cost) VALUES (?, ?, ?)",
		order.SupplierID, order.Status, order.TotalCost)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertSupplierOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.SupplierOrderItem) error {
	q := "INSERT INTO supplier_order_item (supplier_order_id, product_id, status, quantity, cost_price, subtotal) VALUES (?, ?, ?, ?, ?, ?)"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, orderID, it.ProductID, it.Status, it.Quantity, it.CostPrice, it.Subtotal); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetSupplierOrder(ctx context.Context, id uint64) (*model.SupplierOrder, error) {
	var o model.SupplierOrder
	if err := r.conn.QueryRowxContext(ctx, "SELECT "+supplierOrderColumns+" FROM supplier_order WHERE id = ?", id).StructScan(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *SQL) GetSupplierOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.SupplierOrder, error) {
	var o model.SupplierOrder
	if err := tx.QueryRowxContext(ctx, "SELECT "+supplierOrderColumns+" FROM supplier_order WHERE id = ? FOR UPDATE", id).StructScan(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *SQL) GetSupplierOrderItems(ctx context.Context, orderID uint64) ([]model.SupplierOrderItem, error) {
	q := "SELECT " + supplierItemColumns + " FROM supplier_order_item si JOIN product p ON p.id = si.product_id WHERE si.supplier_order_id = ? ORDER BY si.id"
	return r.scanItems(r.conn.QueryxContext(ctx, q, orderID))
}

func (r *SQL) GetSupplierOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.SupplierOrderItem, error) {
	q := "SELECT " + supplierItemColumns + " FROM supplier_order_item si JOIN product p ON p.id = si.product_id WHERE si.supplier_order_id = ? ORDER BY si.id"
	return r.scanItems(tx.QueryxContext(ctx, q, orderID))
}

func (r *SQL) UpdateSupplierOrderStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, from, to constant.SupplierOrderStatus) (bool, error) {
	res, err := tx.ExecContext(ctx, "UPDATE supplier_order SET status = ? WHERE id = ? AND status = ?", to, id, from)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *SQL) UpdateSupplierOrderTotalTx(ctx context.Context, tx *sqlx.Tx, id uint64, total decimal.Decimal) error {
	_, err := tx.ExecContext(ctx, "UPDATE supplier_order SET total_cost = ? WHERE id = ?", total, id)
	return err
}

func (r *SQL) UpdateItemDecisionTx(ctx context.Context, tx *sqlx.Tx, item *model.SupplierOrderItem) error {
	q := "UPDATE supplier_order_item SET status = ?, quantity = ?, cost_price = ?, subtotal = ?, production_date = ?, expiry_date = ?, batch_number = ? WHERE id = ?"
	_, err := tx.ExecContext(ctx, q,
		item.Status, item.Quantity, item.CostPrice, item.Subtotal,
		item.ProductionDate, item.ExpiryDate, item.BatchNumber, item.ID)
	return err
}

func (r *SQL) UpdateItemReceivedTx(ctx context.Context, tx *sqlx.Tx, itemID uint64, received int64, subtotal decimal.Decimal) error {
	_, err := tx.ExecContext(ctx, "UPDATE supplier_order_item SET received_quantity = ?, subtotal = ? WHERE id = ?", received, subtotal, itemID)
	return err
}

func (r *SQL) List(ctx context.Context, status constant.SupplierOrderStatus, page, perPage int) ([]model.SupplierOrder, int64, error) {
	offset := (page - 1) * perPage

	query := "SELECT " + supplierOrderColumns + " FROM supplier_order WHERE true"
	countQuery := "SELECT COUNT(*) FROM supplier_order WHERE true"
	args := make([]any, 0, 3)
	countArgs := make([]any, 0, 1)

	if status != "" {
		query += " AND status = ?"
		countQuery += " AND status = ?"
		args = append(args, status)
		countArgs = append(countArgs, status)
	}
	query += " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, perPage, offset)

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]model.SupplierOrder, 0)
	for rows.Next() {
		var o model.SupplierOrder
		if err := rows.StructScan(&o); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *SQL) scanItems(rows *sqlx.Rows, qerr error) ([]model.SupplierOrderItem, error) {
	if qerr != nil {
		return nil, qerr
	}
	defer rows.Close()

	items := make([]model.SupplierOrderItem, 0)
	for rows.Next() {
		var it model.SupplierOrderItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
