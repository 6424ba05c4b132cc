package delivery

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bobursolih/market-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type DeliveryRepository interface {
	InsertDeliveryTx(ctx context.Context, tx *sqlx.Tx, d *model.Delivery) (uint64, error)
	GetActiveDeliveryTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.Delivery, error)
	GetDeliveriesByOrder(ctx context.Context, orderID uint64) ([]model.Delivery, error)
	UpdateDeliveryStartTx(ctx context.Context, tx *sqlx.Tx, deliveryID uint64, startedAt time.Time) error
	UpdateDeliveryEstimateTx(ctx context.Context, tx *sqlx.Tx, deliveryID uint64, estimatedMinutes int64, reason string) error
	CompleteDeliveryTx(ctx context.Context, tx *sqlx.Tx, d *model.Delivery) error
	GetCourier(ctx context.Context, courierID uint64) (*model.Courier, error)
	GetCourierForUpdateTx(ctx context.Context, tx *sqlx.Tx, courierID uint64) (*model.Courier, error)
	SetCourierAvailabilityTx(ctx context.Context, tx *sqlx.Tx, courierID uint64, available bool) error
	UpdateCourierLocation(ctx context.Context, courierID uint64, lat, lng float64) error
	CountActiveByCourierTx(ctx context.Context, tx *sqlx.Tx, courierID uint64) (int64, error)
	ListCouriers(ctx context.Context) ([]model.Courier, error)
}

func NewDeliveryRepository(conn *sqlx.DB) DeliveryRepository {
	return &SQL{conn: conn}
}

const (
	deliveryColumns = "id, order_id, courier_id, assigned_at, started_at, ended_at, estimated_minutes, actual_minutes, delay_reason, payment_method, amount_paid, courier_lat, courier_lng, customer_lat, customer_lng"

	courierColumns = "c.user_id, u.name, c.is_available, c.latitude, c.longitude, c.updated_at"
)

func (r *SQL) InsertDeliveryTx(ctx context.Context, tx *sqlx.Tx, d *model.Delivery) (uint64, error) {
	q := "INSERT INTO delivery (order_id, courier_id, assigned_at, estimated_minutes, courier_lat, courier_lng, customer_lat, customer_lng) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	res, err := tx.ExecContext(ctx, q,
		d.OrderID, d.CourierID, d.AssignedAt, d.EstimatedMinutes,
		d.CourierLat, d.CourierLng, d.CustomerLat, d.CustomerLng)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetActiveDeliveryTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.Delivery, error) {
	var d model.Delivery
	q := "SELECT " + deliveryColumns + " FROM delivery WHERE order_id = ? AND ended_at IS NULL ORDER BY id DESC LIMIT 1 FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, orderID).StructScan(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *SQL) GetDeliveriesByOrder(ctx context.Context, orderID uint64) ([]model.Delivery, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT "+deliveryColumns+" FROM delivery WHERE order_id = ? ORDER BY id", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]model.Delivery, 0)
	for rows.Next() {
		var d model.Delivery
		if err := rows.StructScan(&d); err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, rows.Err()
}

func (r *SQL) UpdateDeliveryStartTx(ctx context.Context, tx *sqlx.Tx, deliveryID uint64, startedAt time.Time) error {
	_, err := tx.ExecContext(ctx, "UPDATE delivery SET started_at = ? WHERE id = ?", startedAt, deliveryID)
	return err
}

func (r *SQL) UpdateDeliveryEstimateTx(ctx context.Context, tx *sqlx.Tx, deliveryID uint64, estimatedMinutes int64, reason string) error {
	_, err := tx.ExecContext(ctx, "UPDATE delivery SET estimated_minutes = ?, delay_reason = ? WHERE id = ?", estimatedMinutes, reason, deliveryID)
	return err
}

func (r *SQL) CompleteDeliveryTx(ctx context.Context, tx *sqlx.Tx, d *model.Delivery) error {
	q := "UPDATE delivery SET ended_at = ?, actual_minutes = ?, payment_method = ?, amount_paid = ?, courier_lat = ?, courier_lng = ? WHERE id = ?"
	_, err := tx.ExecContext(ctx, q,
		d.EndedAt, d.ActualMinutes, d.PaymentMethod, d.AmountPaid,
		d.CourierLat, d.CourierLng, d.ID)
	return err
}

func (r *SQL) GetCourier(ctx context.Context, courierID uint64) (*model.Courier, error) {
	var c model.Courier
	q := "SELECT " + courierColumns + " FROM courier c JOIN user u ON u.id = c.user_id WHERE c.user_id = ?"
	if err := r.conn.QueryRowxContext(ctx, q, courierID).StructScan(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQL) GetCourierForUpdateTx(ctx context.Context, tx *sqlx.Tx, courierID uint64) (*model.Courier, error) {
	var c model.Courier
	q := "SELECT " + courierColumns + " FROM courier c JOIN user u ON u.id = c.user_id WHERE c.user_id = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, courierID).StructScan(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQL) SetCourierAvailabilityTx(ctx context.Context, tx *sqlx.Tx, courierID uint64, available bool) error {
	_, err := tx.ExecContext(ctx, "UPDATE courier SET is_available = ? WHERE user_id = ?", available, courierID)
	return err
}

func (r *SQL) UpdateCourierLocation(ctx context.Context, courierID uint64, lat, lng float64) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE courier SET latitude = ?, longitude = ? WHERE user_id = ?", lat, lng, courierID)
	return err
}

func (r *SQL) CountActiveByCourierTx(ctx context.Context, tx *sqlx.Tx, courierID uint64) (int64, error) {
	var total int64
	q := "SELECT COUNT(*) FROM delivery WHERE courier_id = ? AND ended_at IS NULL"
	if err := tx.GetContext(ctx, &total, q, courierID); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SQL) ListCouriers(ctx context.Context) ([]model.Courier, error) {
	q := "SELECT " + courierColumns + " FROM courier c JOIN user u ON u.id = c.user_id ORDER BY c.user_id"
	rows, err := r.conn.QueryxContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]model.Courier, 0)
	for rows.Next() {
		var c model.Courier
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, rows.Err()
}
