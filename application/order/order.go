package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	inventoryapp "github.com/bobursolih/market-backend/application/inventory"
	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
	auditrepo "github.com/bobursolih/market-backend/repository/audit"
	customerrepo "github.com/bobursolih/market-backend/repository/customer"
	deliveryrepo "github.com/bobursolih/market-backend/repository/delivery"
	orderrepo "github.com/bobursolih/market-backend/repository/order"
	preparerrepo "github.com/bobursolih/market-backend/repository/preparer"
	productrepo "github.com/bobursolih/market-backend/repository/product"
	txrepo "github.com/bobursolih/market-backend/repository/tx"
	"github.com/bobursolih/market-backend/thirdparty/rabbitmq"
	"github.com/bobursolih/market-backend/utils/errors"
	"github.com/bobursolih/market-backend/utils/logger"
)

// OrderApp drives the customer order lifecycle. Every state change runs in
// one transaction with its inventory and debt effects and leaves an activity
// log row behind.
type OrderApp interface {
	CreateOrder(ctx context.Context, actor model.Actor, req *model.CreateOrderRequest) (*model.CustomerOrder, error)
	GetOrder(ctx context.Context, orderID uint64) (*model.CustomerOrder, error)
	ListOrders(ctx context.Context, status constant.CustomerOrderStatus, page, perPage int) (*model.OrderListResponse, error)
	Transition(ctx context.Context, actor model.Actor, orderID uint64, req *model.OrderTransitionRequest) (*model.PreparationResult, error)
	AcceptOrder(ctx context.Context, actor model.Actor, orderID uint64) (*model.CustomerOrder, error)
	RejectOrder(ctx context.Context, actor model.Actor, orderID uint64, note string) (*model.CustomerOrder, error)
	StartPreparation(ctx context.Context, actor model.Actor, orderID uint64) (*model.OrderPreparer, error)
	CompletePreparation(ctx context.Context, actor model.Actor, orderID uint64, manual []model.ProductAllocation) (*model.PreparationResult, error)
	CancelOrder(ctx context.Context, actor model.Actor, orderID uint64, note string) (*model.CustomerOrder, error)
	PayDebt(ctx context.Context, actor model.Actor, orderID uint64, amount decimal.Decimal) (*model.CustomerOrder, error)
	ListActivity(ctx context.Context, orderID uint64) ([]model.ActivityLog, error)
}

type orderAppImpl struct {
	txRepo       txrepo.TxRepository
	orderRepo    orderrepo.OrderRepository
	preparerRepo preparerrepo.PreparerRepository
	productRepo  productrepo.ProductRepository
	customerRepo customerrepo.CustomerRepository
	deliveryRepo deliveryrepo.DeliveryRepository
	auditRepo    auditrepo.AuditRepository
	inventoryApp inventoryapp.InventoryApp
	publisher    *rabbitmq.Publisher
}

func NewOrderApp(txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, preparerRepo preparerrepo.PreparerRepository, productRepo productrepo.ProductRepository, customerRepo customerrepo.CustomerRepository, deliveryRepo deliveryrepo.DeliveryRepository, auditRepo auditrepo.AuditRepository, inventoryApp inventoryapp.InventoryApp, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{
		txRepo:       txRepo,
		orderRepo:    orderRepo,
		preparerRepo: preparerRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		deliveryRepo: deliveryRepo,
		auditRepo:    auditRepo,
		inventoryApp: inventoryApp,
		publisher:    publisher,
	}
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, actor model.Actor, req *model.CreateOrderRequest) (*model.CustomerOrder, error) {
	if len(req.Items) == 0 || req.Discount.IsNegative() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	switch actor.Role {
	case constant.RoleAdmin:
	case constant.RoleCustomer:
		if actor.ID != req.CustomerID {
			return nil, errors.SetCustomError(constant.ErrUnauthorize)
		}
	default:
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	// one line per product
	seen := make(map[uint64]bool, len(req.Items))
	for _, it := range req.Items {
		if seen[it.ProductID] {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		seen[it.ProductID] = true
	}

	if _, err := s.customerRepo.GetCustomer(ctx, req.CustomerID); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[CreateOrder] get customer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// price items at the current sell price and check each line against
	// the aggregate, lots are only taken at preparation
	items := make([]model.OrderItem, 0, len(req.Items))
	total := decimal.Zero
	for _, it := range req.Items {
		product, err := s.productRepo.GetProductTx(ctx, tx, it.ProductID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, errors.SetCustomError(constant.ErrNotFound)
			}
			logger.Error("[CreateOrder] get product", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if product.Quantity < it.Quantity {
			logger.Info("[CreateOrder] ordered above current stock",
				zap.Uint64("product_id", it.ProductID),
				zap.Int64("need", it.Quantity),
				zap.Int64("available", product.Quantity))
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}
		subtotal := product.SellPrice.Mul(decimal.NewFromInt(it.Quantity))
		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: product.SellPrice,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	total = total.Sub(req.Discount)
	if total.IsNegative() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	order := &model.CustomerOrder{
		CustomerID: req.CustomerID,
		Status:     constant.OrderStatusPending,
		TotalCost:  total,
		Discount:   req.Discount,
		AmountPaid: decimal.Zero,
	}
	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, order)
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, items); err != nil {
		logger.Error("[CreateOrder] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionCreate, "", string(constant.OrderStatusPending), ""); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return s.GetOrder(ctx, orderID)
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID uint64) (*model.CustomerOrder, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[GetOrder] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items, err := s.orderRepo.GetOrderItems(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	order.Items = items

	if plan, err := model.DecodeAllocationSnapshot(order.BatchAllocation); err == nil {
		order.Allocations = plan
	}
	return order, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context, status constant.CustomerOrderStatus, page, perPage int) (*model.OrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	orders, total, err := s.orderRepo.List(ctx, status, page, perPage)
	if err != nil {
		logger.Error("[ListOrders] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.OrderListResponse{Items: orders, TotalCount: total, Page: page, PerPage: perPage}, nil
}

// Transition routes a target status to its operation. Delivery statuses
// (Assigned, on_theway, Shipped, Returned) belong to the delivery flow and
// are rejected here.
func (s *orderAppImpl) Transition(ctx context.Context, actor model.Actor, orderID uint64, req *model.OrderTransitionRequest) (*model.PreparationResult, error) {
	switch req.Target {
	case constant.OrderStatusAccepted:
		order, err := s.AcceptOrder(ctx, actor, orderID)
		if err != nil {
			return nil, err
		}
		return &model.PreparationResult{Order: order}, nil
	case constant.OrderStatusRejected:
		order, err := s.RejectOrder(ctx, actor, orderID, req.Note)
		if err != nil {
			return nil, err
		}
		return &model.PreparationResult{Order: order}, nil
	case constant.OrderStatusPreparing:
		if _, err := s.StartPreparation(ctx, actor, orderID); err != nil {
			return nil, err
		}
		order, err := s.GetOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}
		return &model.PreparationResult{Order: order}, nil
	case constant.OrderStatusPrepared:
		return s.CompletePreparation(ctx, actor, orderID, req.Manual)
	case constant.OrderStatusCancelled:
		order, err := s.CancelOrder(ctx, actor, orderID, req.Note)
		if err != nil {
			return nil, err
		}
		return &model.PreparationResult{Order: order}, nil
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
}

func (s *orderAppImpl) AcceptOrder(ctx context.Context, actor model.Actor, orderID uint64) (*model.CustomerOrder, error) {
	if actor.Role != constant.RoleAdmin {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AcceptOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.getOrderForUpdate(ctx, tx, orderID, "[AcceptOrder]")
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(constant.OrderStatusAccepted) {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	if err := s.moveStatusTx(ctx, tx, orderID, order.Status, constant.OrderStatusAccepted, "[AcceptOrder]"); err != nil {
		return nil, err
	}
	if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionAccept, string(order.Status), string(constant.OrderStatusAccepted), ""); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AcceptOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	order.Status = constant.OrderStatusAccepted
	return order, nil
}

func (s *orderAppImpl) RejectOrder(ctx context.Context, actor model.Actor, orderID uint64, note string) (*model.CustomerOrder, error) {
	if actor.Role != constant.RoleAdmin {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RejectOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.getOrderForUpdate(ctx, tx, orderID, "[RejectOrder]")
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(constant.OrderStatusRejected) {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	if err := s.releaseOrderHoldingsTx(ctx, tx, order, "[RejectOrder]"); err != nil {
		return nil, err
	}
	if err := s.closeActiveDeliveryTx(ctx, tx, order, "[RejectOrder]"); err != nil {
		return nil, err
	}
	if err := s.moveStatusTx(ctx, tx, orderID, order.Status, constant.OrderStatusRejected, "[RejectOrder]"); err != nil {
		return nil, err
	}
	if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionReject, string(order.Status), string(constant.OrderStatusRejected), note); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RejectOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	order.Status = constant.OrderStatusRejected
	return order, nil
}

func (s *orderAppImpl) StartPreparation(ctx context.Context, actor model.Actor, orderID uint64) (*model.OrderPreparer, error) {
	if actor.Role != constant.RoleWorker {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[StartPreparation] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.getOrderForUpdate(ctx, tx, orderID, "[StartPreparation]")
	if err != nil {
		return nil, err
	}
	if order.Status != constant.OrderStatusAccepted && order.Status != constant.OrderStatusPreparing {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	if order.Status == constant.OrderStatusAccepted {
		if err := s.moveStatusTx(ctx, tx, orderID, order.Status, constant.OrderStatusPreparing, "[StartPreparation]"); err != nil {
			return nil, err
		}
		if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionStartPreparation, string(order.Status), string(constant.OrderStatusPreparing), ""); err != nil {
			return nil, err
		}
	}

	// idempotent per worker, starting twice returns the same working row
	preparer, err := s.preparerRepo.GetWorkingPreparerTx(ctx, tx, orderID, actor.ID)
	if err != nil && err != sql.ErrNoRows {
		logger.Error("[StartPreparation] get preparer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if preparer == nil || err == sql.ErrNoRows {
		id, err := s.preparerRepo.InsertPreparerTx(ctx, tx, orderID, actor.ID)
		if err != nil {
			logger.Error("[StartPreparation] insert preparer", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		preparer = &model.OrderPreparer{
			ID:       id,
			OrderID:  orderID,
			WorkerID: actor.ID,
			Status:   constant.PreparerStatusWorking,
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[StartPreparation] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return preparer, nil
}

func (s *orderAppImpl) CompletePreparation(ctx context.Context, actor model.Actor, orderID uint64, manual []model.ProductAllocation) (*model.PreparationResult, error) {
	if actor.Role != constant.RoleWorker {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CompletePreparation] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// plain read, the compare-and-set below is the real gate against a
	// concurrent completion
	order, err := s.orderRepo.GetOrderTx(ctx, tx, orderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[CompletePreparation] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order.Status != constant.OrderStatusPreparing {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	preparer, err := s.preparerRepo.GetWorkingPreparerTx(ctx, tx, orderID, actor.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrUnauthorize)
		}
		logger.Error("[CompletePreparation] get preparer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// claim the completion first, the loser of a concurrent race gets a
	// conflict instead of deducting stock twice
	won, err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, constant.OrderStatusPreparing, constant.OrderStatusPrepared)
	if err != nil {
		logger.Error("[CompletePreparation] claim completion", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !won {
		return nil, errors.SetCustomError(constant.ErrStateConflict)
	}

	items, err := s.orderRepo.GetOrderItemsTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CompletePreparation] get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	manualByProduct := make(map[uint64][]model.BatchAllocation, len(manual))
	itemByProduct := make(map[uint64]model.OrderItem, len(items))
	for _, it := range items {
		itemByProduct[it.ProductID] = it
	}
	for _, m := range manual {
		if _, dup := manualByProduct[m.ProductID]; dup {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if _, ok := itemByProduct[m.ProductID]; !ok {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		manualByProduct[m.ProductID] = m.Allocation
	}

	snapshot := make([]model.ProductAllocation, 0, len(items))
	alerts := make([]constant.StockAlert, 0)
	for _, it := range items {
		if plan, ok := manualByProduct[it.ProductID]; ok {
			if err := s.applyManualAllocationTx(ctx, tx, it, plan); err != nil {
				return nil, err
			}
			snapshot = append(snapshot, model.ProductAllocation{ProductID: it.ProductID, Allocation: plan})
			continue
		}

		res, err := s.inventoryApp.AllocateFIFOTx(ctx, tx, it.ProductID, it.Quantity)
		if err != nil {
			return nil, err
		}
		if !res.CanFulfill {
			logger.Info("[CompletePreparation] cannot fulfill item",
				zap.Uint64("order_id", orderID),
				zap.Uint64("product_id", it.ProductID),
				zap.Int64("need", it.Quantity),
				zap.Int64("available", res.TotalAvailable))
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}
		alerts = mergeAlerts(alerts, res.Alerts)

		if res.HasAlert(constant.AlertSimpleQuantity) {
			// aggregate-only product, nothing to snapshot
			if err := s.adjustProductTx(ctx, tx, it.ProductID, -it.Quantity, "[CompletePreparation]"); err != nil {
				return nil, err
			}
			continue
		}
		if err := s.inventoryApp.ApplyAllocationTx(ctx, tx, it.ProductID, res.Allocation); err != nil {
			return nil, err
		}
		if err := s.adjustProductTx(ctx, tx, it.ProductID, -it.Quantity, "[CompletePreparation]"); err != nil {
			return nil, err
		}
		snapshot = append(snapshot, model.ProductAllocation{ProductID: it.ProductID, Allocation: res.Allocation})
	}

	snapJSON, err := model.EncodeAllocationSnapshot(snapshot)
	if err != nil {
		logger.Error("[CompletePreparation] encode snapshot", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.orderRepo.UpdateAllocationSnapshotTx(ctx, tx, orderID, snapJSON); err != nil {
		logger.Error("[CompletePreparation] store snapshot", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.preparerRepo.UpdatePreparerStatusTx(ctx, tx, preparer.ID, constant.PreparerStatusCompleted); err != nil {
		logger.Error("[CompletePreparation] complete preparer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.preparerRepo.CancelWorkingExceptTx(ctx, tx, orderID, preparer.ID); err != nil {
		logger.Error("[CompletePreparation] cancel other preparers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionCompletePreparation, string(constant.OrderStatusPreparing), string(constant.OrderStatusPrepared), ""); err != nil {
		return nil, err
	}

	lowStock, err := s.collectLowStockTx(ctx, tx, orderID, items)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CompletePreparation] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// alerts go out only after the deduction is durable
	if s.publisher != nil {
		for _, msg := range lowStock {
			if err := s.publisher.PublishLowStock(msg); err != nil {
				logger.Error("[CompletePreparation] publish low stock", zap.String("error", err.Error()), zap.Uint64("product_id", msg.ProductID))
			}
		}
	}

	order.Status = constant.OrderStatusPrepared
	order.BatchAllocation = snapJSON
	order.Items = items
	order.Allocations = snapshot
	return &model.PreparationResult{Order: order, Allocations: snapshot, Alerts: alerts}, nil
}

func (s *orderAppImpl) CancelOrder(ctx context.Context, actor model.Actor, orderID uint64, note string) (*model.CustomerOrder, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.getOrderForUpdate(ctx, tx, orderID, "[CancelOrder]")
	if err != nil {
		return nil, err
	}

	if err := s.checkCancelAllowed(actor, order); err != nil {
		return nil, err
	}

	if err := s.releaseOrderHoldingsTx(ctx, tx, order, "[CancelOrder]"); err != nil {
		return nil, err
	}
	if err := s.closeActiveDeliveryTx(ctx, tx, order, "[CancelOrder]"); err != nil {
		return nil, err
	}
	if err := s.moveStatusTx(ctx, tx, orderID, order.Status, constant.OrderStatusCancelled, "[CancelOrder]"); err != nil {
		return nil, err
	}
	if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionCancel, string(order.Status), string(constant.OrderStatusCancelled), note); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	order.Status = constant.OrderStatusCancelled
	return order, nil
}

// checkCancelAllowed enforces who may cancel from which status. Admins can
// cancel any non-terminal order including shipped ones, customers only their
// own order before it is picked, couriers only their own active delivery.
func (s *orderAppImpl) checkCancelAllowed(actor model.Actor, order *model.CustomerOrder) error {
	switch actor.Role {
	case constant.RoleAdmin:
		if order.Status.IsTerminal() {
			return errors.SetCustomError(constant.ErrInvalidState)
		}
	case constant.RoleCustomer:
		if order.CustomerID != actor.ID {
			return errors.SetCustomError(constant.ErrUnauthorize)
		}
		switch order.Status {
		case constant.OrderStatusPending, constant.OrderStatusAccepted, constant.OrderStatusPreparing:
		default:
			return errors.SetCustomError(constant.ErrInvalidState)
		}
	case constant.RoleCourier:
		if order.CourierID == nil || *order.CourierID != actor.ID {
			return errors.SetCustomError(constant.ErrUnauthorize)
		}
		if order.Status != constant.OrderStatusOnTheWay {
			return errors.SetCustomError(constant.ErrInvalidState)
		}
	default:
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	return nil
}

func (s *orderAppImpl) PayDebt(ctx context.Context, actor model.Actor, orderID uint64, amount decimal.Decimal) (*model.CustomerOrder, error) {
	if actor.Role != constant.RoleAdmin && actor.Role != constant.RoleCourier {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if !amount.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[PayDebt] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.getOrderForUpdate(ctx, tx, orderID, "[PayDebt]")
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != constant.PaymentMethodDebt && order.PaymentMethod != constant.PaymentMethodPartial {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}
	if amount.GreaterThan(order.Outstanding()) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	newPaid := order.AmountPaid.Add(amount)
	method := constant.PaymentMethodPartial
	if newPaid.Equal(order.TotalCost) {
		// debt settled in full
		method = constant.PaymentMethodCash
	}

	if err := s.orderRepo.UpdatePaymentTx(ctx, tx, orderID, method, newPaid); err != nil {
		logger.Error("[PayDebt] update payment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.customerRepo.AdjustBalanceTx(ctx, tx, order.CustomerID, amount.Neg()); err != nil {
		logger.Error("[PayDebt] adjust balance", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionPayDebt, string(order.Status), string(order.Status), fmt.Sprintf("paid %s", amount.String())); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[PayDebt] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	order.AmountPaid = newPaid
	order.PaymentMethod = method
	return order, nil
}

func (s *orderAppImpl) ListActivity(ctx context.Context, orderID uint64) ([]model.ActivityLog, error) {
	entries, err := s.auditRepo.ListByOrder(ctx, constant.OrderTypeCustomer, orderID)
	if err != nil {
		logger.Error("[ListActivity] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entries, nil
}

// applyManualAllocationTx validates and applies a worker-chosen plan for one
// item. The plan must cover the item quantity exactly.
func (s *orderAppImpl) applyManualAllocationTx(ctx context.Context, tx *sqlx.Tx, item model.OrderItem, plan []model.BatchAllocation) error {
	var sum int64
	for _, a := range plan {
		if a.Quantity <= 0 {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		sum += a.Quantity
	}
	if sum != item.Quantity {
		return errors.SetCustomError(constant.ErrInvalidBatch)
	}

	if err := s.inventoryApp.ApplyAllocationTx(ctx, tx, item.ProductID, plan); err != nil {
		return err
	}
	return s.adjustProductTx(ctx, tx, item.ProductID, -item.Quantity, "[CompletePreparation]")
}

// releaseOrderHoldingsTx undoes what fulfillment took: per-lot restore from
// the snapshot where one exists, aggregate restore for everything else, and
// reversal of any outstanding debt. Orders that never reached Prepared hold
// nothing.
func (s *orderAppImpl) releaseOrderHoldingsTx(ctx context.Context, tx *sqlx.Tx, order *model.CustomerOrder, op string) error {
	if order.Status.HoldsAllocation() {
		items, err := s.orderRepo.GetOrderItemsTx(ctx, tx, order.ID)
		if err != nil {
			logger.Error(op+" get items", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}

		plan, derr := model.DecodeAllocationSnapshot(order.BatchAllocation)
		if derr != nil {
			// corrupt snapshot, fall back to aggregate restore for all items
			logger.Warn(op+" unparsable allocation snapshot", zap.Uint64("order_id", order.ID), zap.String("error", derr.Error()))
			plan = nil
		}

		restored := make(map[uint64]bool, len(plan))
		for _, pa := range plan {
			if err := s.inventoryApp.ReverseAllocationTx(ctx, tx, pa.ProductID, pa.Allocation); err != nil {
				return err
			}
			var qty int64
			for _, a := range pa.Allocation {
				qty += a.Quantity
			}
			if err := s.adjustProductTx(ctx, tx, pa.ProductID, qty, op); err != nil {
				return err
			}
			restored[pa.ProductID] = true
		}
		for _, it := range items {
			if restored[it.ProductID] {
				continue
			}
			if err := s.adjustProductTx(ctx, tx, it.ProductID, it.Quantity, op); err != nil {
				return err
			}
		}
	}

	// undo debt that delivery completion put on the customer
	if order.PaymentMethod == constant.PaymentMethodDebt || order.PaymentMethod == constant.PaymentMethodPartial {
		outstanding := order.Outstanding()
		if outstanding.IsPositive() {
			if err := s.customerRepo.AdjustBalanceTx(ctx, tx, order.CustomerID, outstanding.Neg()); err != nil {
				logger.Error(op+" reverse debt", zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrInternal)
			}
		}
	}
	return nil
}

// closeActiveDeliveryTx ends the open delivery row of an order leaving the
// delivery leg through cancel or reject and hands the courier back once no
// other open runs remain. Orders before Assigned have no row to close.
func (s *orderAppImpl) closeActiveDeliveryTx(ctx context.Context, tx *sqlx.Tx, order *model.CustomerOrder, op string) error {
	if order.Status != constant.OrderStatusAssigned && order.Status != constant.OrderStatusOnTheWay {
		return nil
	}

	d, err := s.deliveryRepo.GetActiveDeliveryTx(ctx, tx, order.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		logger.Error(op+" get active delivery", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now()
	ref := d.AssignedAt
	if d.StartedAt != nil {
		ref = *d.StartedAt
	}
	actual := int64(now.Sub(ref).Minutes())
	d.EndedAt = &now
	d.ActualMinutes = &actual
	d.AmountPaid = decimal.Zero
	if err := s.deliveryRepo.CompleteDeliveryTx(ctx, tx, d); err != nil {
		logger.Error(op+" close delivery", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	active, err := s.deliveryRepo.CountActiveByCourierTx(ctx, tx, d.CourierID)
	if err != nil {
		logger.Error(op+" count active deliveries", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if active == 0 {
		if err := s.deliveryRepo.SetCourierAvailabilityTx(ctx, tx, d.CourierID, true); err != nil {
			logger.Error(op+" set availability", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

func (s *orderAppImpl) collectLowStockTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) ([]rabbitmq.LowStockMessage, error) {
	msgs := make([]rabbitmq.LowStockMessage, 0)
	for _, it := range items {
		p, err := s.productRepo.GetProductTx(ctx, tx, it.ProductID)
		if err != nil {
			logger.Error("[CompletePreparation] reread product", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if p.LowStock > 0 && p.Quantity <= p.LowStock {
			msgs = append(msgs, rabbitmq.LowStockMessage{
				ProductID: p.ID,
				Name:      p.Name,
				Quantity:  p.Quantity,
				LowStock:  p.LowStock,
				OrderID:   orderID,
				AlertedAt: time.Now(),
			})
		}
	}
	return msgs, nil
}

func (s *orderAppImpl) getOrderForUpdate(ctx context.Context, tx *sqlx.Tx, orderID uint64, op string) (*model.CustomerOrder, error) {
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

func (s *orderAppImpl) moveStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, from, to constant.CustomerOrderStatus, op string) error {
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

func (s *orderAppImpl) adjustProductTx(ctx context.Context, tx *sqlx.Tx, productID uint64, delta int64, op string) error {
	if err := s.productRepo.AdjustQuantityTx(ctx, tx, productID, delta); err != nil {
		if errors.IsCustom(err) {
			return err
		}
		logger.Error(op+" adjust product quantity", zap.String("error", err.Error()), zap.Uint64("product_id", productID))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *orderAppImpl) auditTx(ctx context.Context, tx *sqlx.Tx, actor model.Actor, orderID uint64, action constant.AuditAction, prev, next, note string) error {
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

func mergeAlerts(dst, src []constant.StockAlert) []constant.StockAlert {
	for _, a := range src {
		found := false
		for _, b := range dst {
			if a == b {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, a)
		}
	}
	return dst
}
