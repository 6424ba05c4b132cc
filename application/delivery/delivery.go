package delivery

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
	auditrepo "github.com/bobursolih/market-backend/repository/audit"
	customerrepo "github.com/bobursolih/market-backend/repository/customer"
	deliveryrepo "github.com/bobursolih/market-backend/repository/delivery"
	orderrepo "github.com/bobursolih/market-backend/repository/order"
	txrepo "github.com/bobursolih/market-backend/repository/tx"
	"github.com/bobursolih/market-backend/utils/errors"
	"github.com/bobursolih/market-backend/utils/logger"
)

// DeliveryApp owns the delivery leg of the order lifecycle, Prepared through
// Shipped or Returned. Payment is settled here at handover, inventory is not
// touched, the goods already left the shelf at preparation.
type DeliveryApp interface {
	AssignOrders(ctx context.Context, actor model.Actor, req *model.AssignDeliveryRequest) ([]model.Delivery, error)
	StartDelivery(ctx context.Context, actor model.Actor, req *model.StartDeliveryRequest) ([]model.Delivery, error)
	UpdateEstimate(ctx context.Context, actor model.Actor, orderID uint64, req *model.UpdateEstimateRequest) (*model.Delivery, error)
	CompleteDelivery(ctx context.Context, actor model.Actor, orderID uint64, amountPaid decimal.Decimal) (*model.CustomerOrder, error)
	ReturnDelivery(ctx context.Context, actor model.Actor, orderID uint64, note string) (*model.CustomerOrder, error)
	UpdateCourierLocation(ctx context.Context, actor model.Actor, req *model.CourierLocationRequest) error
	ListCouriers(ctx context.Context) ([]model.Courier, error)
	ListCourierOrders(ctx context.Context, actor model.Actor) ([]model.CustomerOrder, error)
	GetOrderDeliveries(ctx context.Context, orderID uint64) ([]model.Delivery, error)
}

type deliveryAppImpl struct {
	txRepo       txrepo.TxRepository
	deliveryRepo deliveryrepo.DeliveryRepository
	orderRepo    orderrepo.OrderRepository
	customerRepo customerrepo.CustomerRepository
	auditRepo    auditrepo.AuditRepository
}

func NewDeliveryApp(txRepo txrepo.TxRepository, deliveryRepo deliveryrepo.DeliveryRepository, orderRepo orderrepo.OrderRepository, customerRepo customerrepo.CustomerRepository, auditRepo auditrepo.AuditRepository) DeliveryApp {
	return &deliveryAppImpl{
		txRepo:       txRepo,
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
	}
}

// AssignOrders hands a batch of prepared orders to one courier atomically,
// either every order moves to Assigned or none does. Each order gets a
// delivery row snapshotting courier and customer locations at assignment.
func (s *deliveryAppImpl) AssignOrders(ctx context.Context, actor model.Actor, req *model.AssignDeliveryRequest) ([]model.Delivery, error) {
	if actor.Role != constant.RoleAdmin {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if len(req.OrderIDs) == 0 || req.EstimatedMinutes <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	seen := make(map[uint64]bool, len(req.OrderIDs))
	for _, id := range req.OrderIDs {
		if seen[id] {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		seen[id] = true
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AssignOrders] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	courier, err := s.deliveryRepo.GetCourierForUpdateTx(ctx, tx, req.CourierID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[AssignOrders] get courier", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now()
	deliveries := make([]model.Delivery, 0, len(req.OrderIDs))
	for _, orderID := range req.OrderIDs {
		order, err := s.getOrderForUpdate(ctx, tx, orderID, "[AssignOrders]")
		if err != nil {
			return nil, err
		}
		if order.Status != constant.OrderStatusPrepared {
			return nil, errors.SetCustomError(constant.ErrInvalidState)
		}

		if err := s.moveStatusTx(ctx, tx, orderID, constant.OrderStatusPrepared, constant.OrderStatusAssigned, "[AssignOrders]"); err != nil {
			return nil, err
		}
		if err := s.orderRepo.SetCourierTx(ctx, tx, orderID, req.CourierID); err != nil {
			logger.Error("[AssignOrders] set courier", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		customer, err := s.customerRepo.GetCustomerTx(ctx, tx, order.CustomerID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, errors.SetCustomError(constant.ErrNotFound)
			}
			logger.Error("[AssignOrders] get customer", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		d := model.Delivery{
			OrderID:          orderID,
			CourierID:        req.CourierID,
			AssignedAt:       now,
			EstimatedMinutes: req.EstimatedMinutes,
			AmountPaid:       decimal.Zero,
			CourierLat:       courier.Latitude,
			CourierLng:       courier.Longitude,
			CustomerLat:      customer.Latitude,
			CustomerLng:      customer.Longitude,
		}
		id, err := s.deliveryRepo.InsertDeliveryTx(ctx, tx, &d)
		if err != nil {
			logger.Error("[AssignOrders] insert delivery", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		d.ID = id
		deliveries = append(deliveries, d)

		if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionAssignDelivery, string(constant.OrderStatusPrepared), string(constant.OrderStatusAssigned), fmt.Sprintf("assigned to %s", courier.Name)); err != nil {
			return nil, err
		}
	}

	if err := s.deliveryRepo.SetCourierAvailabilityTx(ctx, tx, req.CourierID, false); err != nil {
		logger.Error("[AssignOrders] set availability", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AssignOrders] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return deliveries, nil
}

// StartDelivery marks the courier as on the road for their assigned orders.
func (s *deliveryAppImpl) StartDelivery(ctx context.Context, actor model.Actor, req *model.StartDeliveryRequest) ([]model.Delivery, error) {
	if actor.Role != constant.RoleCourier {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if len(req.OrderIDs) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	seen := make(map[uint64]bool, len(req.OrderIDs))
	for _, id := range req.OrderIDs {
		if seen[id] {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		seen[id] = true
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[StartDelivery] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	now := time.Now()
	deliveries := make([]model.Delivery, 0, len(req.OrderIDs))
	for _, orderID := range req.OrderIDs {
		order, err := s.getOrderForUpdate(ctx, tx, orderID, "[StartDelivery]")
		if err != nil {
			return nil, err
		}
		if order.CourierID == nil || *order.CourierID != actor.ID {
			return nil, errors.SetCustomError(constant.ErrUnauthorize)
		}
		if order.Status != constant.OrderStatusAssigned {
			return nil, errors.SetCustomError(constant.ErrInvalidState)
		}

		if err := s.moveStatusTx(ctx, tx, orderID, constant.OrderStatusAssigned, constant.OrderStatusOnTheWay, "[StartDelivery]"); err != nil {
			return nil, err
		}

		d, err := s.getActiveDelivery(ctx, tx, orderID, "[StartDelivery]")
		if err != nil {
			return nil, err
		}
		if err := s.deliveryRepo.UpdateDeliveryStartTx(ctx, tx, d.ID, now); err != nil {
			logger.Error("[StartDelivery] update start", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		d.StartedAt = &now
		deliveries = append(deliveries, *d)

		if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionStartDelivery, string(constant.OrderStatusAssigned), string(constant.OrderStatusOnTheWay), ""); err != nil {
			return nil, err
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[StartDelivery] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return deliveries, nil
}

// UpdateEstimate revises the promised minutes on a running delivery, with an
// optional delay reason. The order status does not change.
func (s *deliveryAppImpl) UpdateEstimate(ctx context.Context, actor model.Actor, orderID uint64, req *model.UpdateEstimateRequest) (*model.Delivery, error) {
	if req.EstimatedMinutes <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateEstimate] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.getOrderForUpdate(ctx, tx, orderID, "[UpdateEstimate]")
	if err != nil {
		return nil, err
	}
	if err := s.checkCourierActor(actor, order); err != nil {
		return nil, err
	}
	if order.Status != constant.OrderStatusAssigned && order.Status != constant.OrderStatusOnTheWay {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	d, err := s.getActiveDelivery(ctx, tx, orderID, "[UpdateEstimate]")
	if err != nil {
		return nil, err
	}
	if err := s.deliveryRepo.UpdateDeliveryEstimateTx(ctx, tx, d.ID, req.EstimatedMinutes, req.Reason); err != nil {
		logger.Error("[UpdateEstimate] update estimate", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	d.EstimatedMinutes = req.EstimatedMinutes
	d.DelayReason = req.Reason

	if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionUpdateEstimate, string(order.Status), string(order.Status), req.Reason); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateEstimate] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return d, nil
}

// CompleteDelivery settles the order at handover. The payment method is
// derived from what was collected: everything in cash, nothing means debt,
// anything between is partial and the rest goes on the customer balance.
func (s *deliveryAppImpl) CompleteDelivery(ctx context.Context, actor model.Actor, orderID uint64, amountPaid decimal.Decimal) (*model.CustomerOrder, error) {
	if actor.Role != constant.RoleCourier {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if amountPaid.IsNegative() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CompleteDelivery] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.getOrderForUpdate(ctx, tx, orderID, "[CompleteDelivery]")
	if err != nil {
		return nil, err
	}
	if order.CourierID == nil || *order.CourierID != actor.ID {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if order.Status != constant.OrderStatusOnTheWay {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}
	if amountPaid.GreaterThan(order.TotalCost) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var method constant.PaymentMethod
	switch {
	case amountPaid.Equal(order.TotalCost):
		method = constant.PaymentMethodCash
	case amountPaid.IsZero():
		method = constant.PaymentMethodDebt
	default:
		method = constant.PaymentMethodPartial
	}

	if err := s.moveStatusTx(ctx, tx, orderID, constant.OrderStatusOnTheWay, constant.OrderStatusShipped, "[CompleteDelivery]"); err != nil {
		return nil, err
	}

	courier, err := s.deliveryRepo.GetCourierForUpdateTx(ctx, tx, actor.ID)
	if err != nil {
		logger.Error("[CompleteDelivery] get courier", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	d, err := s.getActiveDelivery(ctx, tx, orderID, "[CompleteDelivery]")
	if err != nil {
		return nil, err
	}
	now := time.Now()
	actual := elapsedMinutes(d, now)
	d.EndedAt = &now
	d.ActualMinutes = &actual
	d.PaymentMethod = method
	d.AmountPaid = amountPaid
	d.CourierLat = courier.Latitude
	d.CourierLng = courier.Longitude
	if err := s.deliveryRepo.CompleteDeliveryTx(ctx, tx, d); err != nil {
		logger.Error("[CompleteDelivery] complete delivery", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.UpdatePaymentTx(ctx, tx, orderID, method, amountPaid); err != nil {
		logger.Error("[CompleteDelivery] update payment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	outstanding := order.TotalCost.Sub(amountPaid)
	if method != constant.PaymentMethodCash && outstanding.IsPositive() {
		if err := s.customerRepo.AdjustBalanceTx(ctx, tx, order.CustomerID, outstanding); err != nil {
			logger.Error("[CompleteDelivery] post debt", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionCompleteDelivery, string(constant.OrderStatusOnTheWay), string(constant.OrderStatusShipped), fmt.Sprintf("paid %s of %s", amountPaid.String(), order.TotalCost.String())); err != nil {
		return nil, err
	}

	if err := s.freeCourierIfIdleTx(ctx, tx, actor.ID, "[CompleteDelivery]"); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CompleteDelivery] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	order.Status = constant.OrderStatusShipped
	order.PaymentMethod = method
	order.AmountPaid = amountPaid
	return order, nil
}

// ReturnDelivery brings the goods back undelivered. The order ends Returned,
// stock stays deducted until someone decides what to do with the returned
// items, no payment is recorded.
func (s *deliveryAppImpl) ReturnDelivery(ctx context.Context, actor model.Actor, orderID uint64, note string) (*model.CustomerOrder, error) {
	if actor.Role != constant.RoleCourier && actor.Role != constant.RoleAdmin {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReturnDelivery] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.getOrderForUpdate(ctx, tx, orderID, "[ReturnDelivery]")
	if err != nil {
		return nil, err
	}
	if actor.Role == constant.RoleCourier && (order.CourierID == nil || *order.CourierID != actor.ID) {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if order.Status != constant.OrderStatusOnTheWay {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	if err := s.moveStatusTx(ctx, tx, orderID, constant.OrderStatusOnTheWay, constant.OrderStatusReturned, "[ReturnDelivery]"); err != nil {
		return nil, err
	}

	d, err := s.getActiveDelivery(ctx, tx, orderID, "[ReturnDelivery]")
	if err != nil {
		return nil, err
	}
	now := time.Now()
	actual := elapsedMinutes(d, now)
	d.EndedAt = &now
	d.ActualMinutes = &actual
	d.AmountPaid = decimal.Zero
	if err := s.deliveryRepo.CompleteDeliveryTx(ctx, tx, d); err != nil {
		logger.Error("[ReturnDelivery] close delivery", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionReturnDelivery, string(constant.OrderStatusOnTheWay), string(constant.OrderStatusReturned), note); err != nil {
		return nil, err
	}

	if err := s.freeCourierIfIdleTx(ctx, tx, d.CourierID, "[ReturnDelivery]"); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReturnDelivery] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	order.Status = constant.OrderStatusReturned
	return order, nil
}

func (s *deliveryAppImpl) UpdateCourierLocation(ctx context.Context, actor model.Actor, req *model.CourierLocationRequest) error {
	if actor.Role != constant.RoleCourier {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.deliveryRepo.UpdateCourierLocation(ctx, actor.ID, req.Latitude, req.Longitude); err != nil {
		logger.Error("[UpdateCourierLocation] update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *deliveryAppImpl) ListCouriers(ctx context.Context) ([]model.Courier, error) {
	couriers, err := s.deliveryRepo.ListCouriers(ctx)
	if err != nil {
		logger.Error("[ListCouriers] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return couriers, nil
}

func (s *deliveryAppImpl) ListCourierOrders(ctx context.Context, actor model.Actor) ([]model.CustomerOrder, error) {
	if actor.Role != constant.RoleCourier {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	orders, err := s.orderRepo.ListActiveByCourier(ctx, actor.ID)
	if err != nil {
		logger.Error("[ListCourierOrders] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return orders, nil
}

func (s *deliveryAppImpl) GetOrderDeliveries(ctx context.Context, orderID uint64) ([]model.Delivery, error) {
	deliveries, err := s.deliveryRepo.GetDeliveriesByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrderDeliveries] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return deliveries, nil
}

// checkCourierActor allows admins and the courier the order is assigned to.
func (s *deliveryAppImpl) checkCourierActor(actor model.Actor, order *model.CustomerOrder) error {
	switch actor.Role {
	case constant.RoleAdmin:
		return nil
	case constant.RoleCourier:
		if order.CourierID == nil || *order.CourierID != actor.ID {
			return errors.SetCustomError(constant.ErrUnauthorize)
		}
		return nil
	default:
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
}

// freeCourierIfIdleTx flips the courier back to available once their last
// open delivery is closed.
func (s *deliveryAppImpl) freeCourierIfIdleTx(ctx context.Context, tx *sqlx.Tx, courierID uint64, op string) error {
	active, err := s.deliveryRepo.CountActiveByCourierTx(ctx, tx, courierID)
	if err != nil {
		logger.Error(op+" count active deliveries", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if active == 0 {
		if err := s.deliveryRepo.SetCourierAvailabilityTx(ctx, tx, courierID, true); err != nil {
			logger.Error(op+" set availability", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

func elapsedMinutes(d *model.Delivery, now time.Time) int64 {
	ref := d.AssignedAt
	if d.StartedAt != nil {
		ref = *d.StartedAt
	}
	return int64(now.Sub(ref).Minutes())
}

func (s *deliveryAppImpl) getOrderForUpdate(ctx context.Context, tx *sqlx.Tx, orderID uint64, op string) (*model.CustomerOrder, error) {
	order, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, orderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error(op+" get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return order, nil
}

func (s *deliveryAppImpl) getActiveDelivery(ctx context.Context, tx *sqlx.Tx, orderID uint64, op string) (*model.Delivery, error) {
	d, err := s.deliveryRepo.GetActiveDeliveryTx(ctx, tx, orderID)
	if err != nil {
		// an assigned order always has an open delivery row
		logger.Error(op+" get active delivery", zap.String("error", err.Error()), zap.Uint64("order_id", orderID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return d, nil
}

func (s *deliveryAppImpl) moveStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, from, to constant.CustomerOrderStatus, op string) error {
	ok, err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, from, to)
	if err != nil {
		logger.Error(op+" update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrStateConflict)
	}
	return nil
}

func (s *deliveryAppImpl) auditTx(ctx context.Context, tx *sqlx.Tx, actor model.Actor, orderID uint64, action constant.AuditAction, prev, next, note string) error {
	entry := &model.ActivityLog{
		OrderType:      constant.OrderTypeCustomer,
		OrderID:        orderID,
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		Action:         action,
		PreviousStatus: prev,
		NewStatus:      next,
		Note:           note,
	}
	if err := s.auditRepo.InsertLogTx(ctx, tx, entry); err != nil {
		logger.Error("[auditTx] insert activity log", zap.String("error", err.Error()), zap.Uint64("order_id", orderID))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
