package customer

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/bobursolih/market-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CustomerRepository interface {
	Insert(ctx context.Context, c *model.Customer) (uint64, error)
	GetCustomer(ctx context.Context, id uint64) (*model.Customer, error)
	GetCustomerByPhone(ctx context.Context, phone string) (*model.Customer, error)
	GetCustomerTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Customer, error)
	AdjustBalanceTx(ctx context.Context, tx *sqlx.Tx, customerID uint64, delta decimal.Decimal) error
	List(ctx context.Context, page, perPage int) ([]model.Customer, int64, error)
}

func NewCustomerRepository(conn *sqlx.DB) CustomerRepository {
	return &SQL{conn: conn}
}

const customerColumns = "id, name, phone, balance, latitude, longitude, created_at"

func (r *SQL) Insert(ctx context.Context, c *model.Customer) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, "INSERT INTO customer (name, phone, balance, latitude, longitude) VALUES (?, ?, 0, ?, ?)",
		c.Name, c.Phone, c.Latitude, c.Longitude)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetCustomerByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	var c model.Customer
	if err := r.conn.QueryRowxContext(ctx, "SELECT "+customerColumns+" FROM customer WHERE phone = ?", phone).StructScan(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQL) GetCustomer(ctx context.Context, id uint64) (*model.Customer, error) {
	var c model.Customer
	if err := r.conn.QueryRowxContext(ctx, "SELECT "+customerColumns+" FROM customer WHERE id = ?", id).StructScan(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQL) GetCustomerTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Customer, error) {
	var c model.Customer
	if err := tx.QueryRowxContext(ctx, "SELECT "+customerColumns+" FROM customer WHERE id = ? FOR UPDATE", id).StructScan(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// AdjustBalanceTx moves the debt balance by delta. The floor keeps the
// balance from going negative when a reversal exceeds what is still owed.
func (r *SQL) AdjustBalanceTx(ctx context.Context, tx *sqlx.Tx, customerID uint64, delta decimal.Decimal) error {
	_, err := tx.ExecContext(ctx, "UPDATE customer SET balance = GREATEST(balance + ?, 0) WHERE id = ?", delta, customerID)
	return err
}

func (r *SQL) List(ctx context.Context, page, perPage int) ([]model.Customer, int64, error) {
	offset := (page - 1) * perPage

	rows, err := r.conn.QueryxContext(ctx, "SELECT "+customerColumns+" FROM customer ORDER BY id LIMIT ? OFFSET ?", perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.StructScan(&c); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM customer"); err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}
