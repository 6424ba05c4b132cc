package tx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// TxRepository hands out transactions for the write paths. Callers begin,
// defer a rollback guarded by a committed flag, and commit at the end, so
// every mutation of orders, batches and balances is atomic.
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewTxRepository(conn *sqlx.DB) TxRepository {
	return &SQL{conn: conn}
}

func (r *SQL) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.conn.BeginTxx(ctx, nil)
}

func (r *SQL) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *SQL) RollbackTx(tx *sqlx.Tx) error {
	// after a failed commit the driver has already closed the tx
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		return err
	}
	return nil
}
