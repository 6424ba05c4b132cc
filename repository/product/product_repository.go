package product

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
	"github.com/bobursolih/market-backend/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.Product, error)
	GetProductTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Product, error)
	GetProductForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Product, error)
	AdjustQuantityTx(ctx context.Context, tx *sqlx.Tx, id uint64, delta int64) error
	ListLowStock(ctx context.Context) ([]model.Product, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	productColumns = "id, name, quantity, low_stock, cost_price, sell_price, created_at, updated_at"

	listProductsBase = `SELECT p.id, p.name, p.quantity, p.low_stock, p.sell_price, COUNT(b.id) as active_lots
FROM product p
LEFT JOIN batch b ON b.product_id = p.id AND b.status = ?
GROUP BY p.id, p.name, p.quantity, p.low_stock, p.sell_price`

	countProductsQuery = `SELECT COUNT(*) FROM product`
)

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listProductsBase + " ORDER BY p.id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, constant.BatchStatusActive, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	// get total count
	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Product, error) {
	var p model.Product
	if err := s.conn.QueryRowxContext(ctx, "SELECT "+productColumns+" FROM product WHERE id = ?", id).StructScan(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQL) GetProductTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Product, error) {
	var p model.Product
	if err := tx.QueryRowxContext(ctx, "SELECT "+productColumns+" FROM product WHERE id = ?", id).StructScan(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQL) GetProductForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Product, error) {
	var p model.Product
	if err := tx.QueryRowxContext(ctx, "SELECT "+productColumns+" FROM product WHERE id = ? FOR UPDATE", id).StructScan(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// AdjustQuantityTx moves the aggregate quantity by delta. The guard keeps
// the counter from going negative, a zero row count means there was not
// enough stock.
func (s *SQL) AdjustQuantityTx(ctx context.Context, tx *sqlx.Tx, id uint64, delta int64) error {
	if delta == 0 {
		return nil
	}
	res, err := tx.ExecContext(ctx, "UPDATE product SET quantity = quantity + ? WHERE id = ? AND quantity + ? >= 0", delta, id, delta)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	return nil
}

func (s *SQL) ListLowStock(ctx context.Context) ([]model.Product, error) {
	q := "SELECT " + productColumns + " FROM product WHERE low_stock > 0 AND quantity <= low_stock ORDER BY quantity ASC"
	rows, err := s.conn.QueryxContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
