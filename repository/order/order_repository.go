package order

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.CustomerOrder) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error
	GetOrder(ctx context.Context, orderID uint64) (*model.CustomerOrder, error)
	GetOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.CustomerOrder, error)
	GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.CustomerOrder, error)
	GetOrderItems(ctx context.Context, orderID uint64) ([]model.OrderItem, error)
	GetOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItem, error)
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, from, to constant.CustomerOrderStatus) (bool, error)
	UpdateAllocationSnapshotTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, snapshot string) error
	UpdatePaymentTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, method constant.PaymentMethod, amountPaid decimal.Decimal) error
	SetCourierTx(ctx context.Context, tx *sqlx.Tx, orderID, courierID uint64) error
	List(ctx context.Context, status constant.CustomerOrderStatus, page, perPage int) ([]model.CustomerOrder, int64, error)
	ListActiveByCourier(ctx context.Context, courierID uint64) ([]model.CustomerOrder, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	orderColumns = "id, customer_id, status, total_cost, discount, amount_paid, payment_method, batch_allocation, courier_id, created_at, updated_at"

	orderItemColumns = "oi.id, oi.order_id, oi.product_id, p.name as product_name, oi.quantity, oi.unit_price, oi.subtotal"
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.CustomerOrder) (uint64, error) {
	q := "INSERT INTO customer_order (customer_id, status, total_cost, discount, amount_paid, payment_method, batch_allocation) VALUES (?, ?, ?, ?, ?, ?, ?)"
	res, err := tx.ExecContext(ctx, q,
		order.CustomerID, order.Status, order.TotalCost, order.Discount,
		order.AmountPaid, order.PaymentMethod, order.BatchAllocation)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error {
	q := "INSERT INTO customer_order_item (order_id, product_id, quantity, unit_price, subtotal) VALUES (?, ?, ?, ?, ?)"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, orderID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetOrder(ctx context.Context, orderID uint64) (*model.CustomerOrder, error) {
	var o model.CustomerOrder
	if err := r.conn.QueryRowxContext(ctx, "SELECT "+orderColumns+" FROM customer_order WHERE id = ?", orderID).StructScan(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *SQL) GetOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.CustomerOrder, error) {
	var o model.CustomerOrder
	if err := tx.QueryRowxContext(ctx, "SELECT "+orderColumns+" FROM customer_order WHERE id = ?", orderID).StructScan(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *SQL) GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.CustomerOrder, error) {
	var o model.CustomerOrder
	if err := tx.QueryRowxContext(ctx, "SELECT "+orderColumns+" FROM customer_order WHERE id = ? FOR UPDATE", orderID).StructScan(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *SQL) GetOrderItems(ctx context.Context, orderID uint64) ([]model.OrderItem, error) {
	q := "SELECT " + orderItemColumns + " FROM customer_order_item oi JOIN product p ON p.id = oi.product_id WHERE oi.order_id = ? ORDER BY oi.id"
	return r.scanItems(r.conn.QueryxContext(ctx, q, orderID))
}

func (r *SQL) GetOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItem, error) {
	q := "SELECT " + orderItemColumns + " FROM customer_order_item oi JOIN product p ON p.id = oi.product_id WHERE oi.order_id = ? ORDER BY oi.id"
	return r.scanItems(tx.QueryxContext(ctx, q, orderID))
}

// UpdateOrderStatusTx moves the order from one status to another in a single
// compare-and-set statement. A false return means another request won the
// transition first.
func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, from, to constant.CustomerOrderStatus) (bool, error) {
	res, err := tx.ExecContext(ctx, "UPDATE customer_order SET status = ? WHERE id = ? AND status = ?", to, orderID, from)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *SQL) UpdateAllocationSnapshotTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, snapshot string) error {
	_, err := tx.ExecContext(ctx, "UPDATE customer_order SET batch_allocation = ? WHERE id = ?", snapshot, orderID)
	return err
}

func (r *SQL) UpdatePaymentTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, method constant.PaymentMethod, amountPaid decimal.Decimal) error {
	_, err := tx.ExecContext(ctx, "UPDATE customer_order SET payment_method = ?, amount_paid = ? WHERE id = ?", method, amountPaid, orderID)
	return err
}

func (r *SQL) SetCourierTx(ctx context.Context, tx *sqlx.Tx, orderID, courierID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE customer_order SET courier_id = ? WHERE id = ?", courierID, orderID)
	return err
}

func (r *SQL) List(ctx context.Context, status constant.CustomerOrderStatus, page, perPage int) ([]model.CustomerOrder, int64, error) {
	offset := (page - 1) * perPage

	query := "SELECT " + orderColumns + " FROM customer_order WHERE true"
	countQuery := "SELECT COUNT(*) FROM customer_order WHERE true"
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

	orders := make([]model.CustomerOrder, 0)
	for rows.Next() {
		var o model.CustomerOrder
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

func (r *SQL) ListActiveByCourier(ctx context.Context, courierID uint64) ([]model.CustomerOrder, error) {
	q := "SELECT " + orderColumns + " FROM customer_order WHERE courier_id = ? AND status IN (?, ?) ORDER BY id"
	rows, err := r.conn.QueryxContext(ctx, q, courierID, constant.OrderStatusAssigned, constant.OrderStatusOnTheWay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.CustomerOrder, 0)
	for rows.Next() {
		var o model.CustomerOrder
		if err := rows.StructScan(&o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *SQL) scanItems(rows *sqlx.Rows, qerr error) ([]model.OrderItem, error) {
	if qerr != nil {
		return nil, qerr
	}
	defer rows.Close()

	items := make([]model.OrderItem, 0)
	for rows.Next() {
		var it model.OrderItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
