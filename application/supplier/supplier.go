package supplier

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	inventoryapp "github.com/bobursolih/market-backend/application/inventory"
	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
	auditrepo "github.com/bobursolih/market-backend/repository/audit"
	productrepo "github.com/bobursolih/market-backend/repository/product"
	supplierrepo "github.com/bobursolih/market-backend/repository/supplier"
	txrepo "github.com/bobursolih/market-backend/repository/tx"
	"github.com/bobursolih/market-backend/utils/errors"
	"github.com/bobursolih/market-backend/utils/logger"
)

// SupplierApp drives restock orders: the shop requests, the supplier responds
// per line, delivery turns accepted lines into inventory lots.
type SupplierApp interface {
	CreateSupplierOrder(ctx context.Context, actor model.Actor, req *model.CreateSupplierOrderRequest) (*model.SupplierOrder, error)
	GetSupplierOrder(ctx context.Context, orderID uint64) (*model.SupplierOrder, error)
	ListSupplierOrders(ctx context.Context, status constant.SupplierOrderStatus, page, perPage int) (*model.SupplierOrderListResponse, error)
	Transition(ctx context.Context, actor model.Actor, orderID uint64, req *model.SupplierTransitionRequest) (*model.SupplierDeliveryResult, error)
	Respond(ctx context.Context, actor model.Actor, orderID uint64, decisions []model.SupplierItemDecision, fallback constant.SupplierItemStatus) (*model.SupplierOrder, error)
	Confirm(ctx context.Context, actor model.Actor, orderID uint64) (*model.SupplierOrder, error)
	Deliver(ctx context.Context, actor model.Actor, orderID uint64, received []model.ReceivedItem) (*model.SupplierDeliveryResult, error)
	ListActivity(ctx context.Context, orderID uint64) ([]model.ActivityLog, error)
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
}

type supplierAppImpl struct {
	txRepo       txrepo.TxRepository
	supplierRepo supplierrepo.SupplierRepository
	productRepo  productrepo.ProductRepository
	auditRepo    auditrepo.AuditRepository
	inventoryApp inventoryapp.InventoryApp
}

func NewSupplierApp(txRepo txrepo.TxRepository, supplierRepo supplierrepo.SupplierRepository, productRepo productrepo.ProductRepository, auditRepo auditrepo.AuditRepository, inventoryApp inventoryapp.InventoryApp) SupplierApp {
	return &supplierAppImpl{
		txRepo:       txRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		auditRepo:    auditRepo,
		inventoryApp: inventoryApp,
	}
}

func (s *supplierAppImpl) CreateSupplierOrder(ctx context.Context, actor model.Actor, req *model.CreateSupplierOrderRequest) (*model.SupplierOrder, error) {
	if actor.Role != constant.RoleAdmin {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	seen := make(map[uint64]bool, len(req.Items))
	for _, it := range req.Items {
		if seen[it.ProductID] {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		seen[it.ProductID] = true
	}

	if _, err := s.supplierRepo.GetSupplier(ctx, req.SupplierID); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[CreateSupplierOrder] get supplier", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateSupplierOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// supplier price list wins, product cost price is the fallback
	items := make([]model.SupplierOrderItem, 0, len(req.Items))
	total := decimal.Zero
	for _, it := range req.Items {
		product, err := s.productRepo.GetProductTx(ctx, tx, it.ProductID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, errors.SetCustomError(constant.ErrNotFound)
			}
			logger.Error("[CreateSupplierOrder] get product", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		price, found, err := s.supplierRepo.GetSupplierPriceTx(ctx, tx, req.SupplierID, it.ProductID)
		if err != nil {
			logger.Error("[CreateSupplierOrder] get supplier price", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if !found {
			price = product.CostPrice
		}

		subtotal := price.Mul(decimal.NewFromInt(it.Quantity))
		items = append(items, model.SupplierOrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			CostPrice: price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	order := &model.SupplierOrder{
		SupplierID: req.SupplierID,
		Status:     constant.SupplierOrderStatusPending,
		TotalCost:  total,
	}
	orderID, err := s.supplierRepo.InsertSupplierOrderTx(ctx, tx, order)
	if err != nil {
		logger.Error("[CreateSupplierOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.supplierRepo.InsertSupplierOrderItemsTx(ctx, tx, orderID, items); err != nil {
		logger.Error("[CreateSupplierOrder] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionCreate, "", string(constant.SupplierOrderStatusPending), ""); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateSupplierOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return s.GetSupplierOrder(ctx, orderID)
}

func (s *supplierAppImpl) GetSupplierOrder(ctx context.Context, orderID uint64) (*model.SupplierOrder, error) {
	order, err := s.supplierRepo.GetSupplierOrder(ctx, orderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[GetSupplierOrder] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items, err := s.supplierRepo.GetSupplierOrderItems(ctx, orderID)
	if err != nil {
		logger.Error("[GetSupplierOrder] get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	order.Items = items
	return order, nil
}

func (s *supplierAppImpl) ListSupplierOrders(ctx context.Context, status constant.SupplierOrderStatus, page, perPage int) (*model.SupplierOrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	orders, total, err := s.supplierRepo.List(ctx, status, page, perPage)
	if err != nil {
		logger.Error("[ListSupplierOrders] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.SupplierOrderListResponse{Items: orders, TotalCount: total, Page: page, PerPage: perPage}, nil
}

func (s *supplierAppImpl) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		logger.Error("[ListSuppliers] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return suppliers, nil
}

// Transition routes a target status to its operation. The response statuses
// land wherever the per-line decisions put them, the target only picks the
// route: a response target with no decisions means accept all or decline all.
func (s *supplierAppImpl) Transition(ctx context.Context, actor model.Actor, orderID uint64, req *model.SupplierTransitionRequest) (*model.SupplierDeliveryResult, error) {
	switch req.Target {
	case constant.SupplierOrderStatusAccepted:
		current, err := s.supplierRepo.GetSupplierOrder(ctx, orderID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, errors.SetCustomError(constant.ErrNotFound)
			}
			logger.Error("[Transition] get order", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if current.Status == constant.SupplierOrderStatusPartiallyAccepted {
			order, err := s.Confirm(ctx, actor, orderID)
			if err != nil {
				return nil, err
			}
			return &model.SupplierDeliveryResult{Order: order}, nil
		}
		order, err := s.Respond(ctx, actor, orderID, req.Decisions, constant.SupplierItemStatusAccepted)
		if err != nil {
			return nil, err
		}
		return &model.SupplierDeliveryResult{Order: order}, nil
	case constant.SupplierOrderStatusPartiallyAccepted:
		order, err := s.Respond(ctx, actor, orderID, req.Decisions, constant.SupplierItemStatusAccepted)
		if err != nil {
			return nil, err
		}
		return &model.SupplierDeliveryResult{Order: order}, nil
	case constant.SupplierOrderStatusDeclined:
		order, err := s.Respond(ctx, actor, orderID, req.Decisions, constant.SupplierItemStatusDeclined)
		if err != nil {
			return nil, err
		}
		return &model.SupplierDeliveryResult{Order: order}, nil
	case constant.SupplierOrderStatusDelivered:
		return s.Deliver(ctx, actor, orderID, req.Received)
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
}

// Respond records the supplier verdict on every line in one shot. Lines not
// mentioned in decisions get the fallback verdict. The landed order status is
// derived from the lines, not from the requested target.
func (s *supplierAppImpl) Respond(ctx context.Context, actor model.Actor, orderID uint64, decisions []model.SupplierItemDecision, fallback constant.SupplierItemStatus) (*model.SupplierOrder, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Respond] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.getOrderForUpdate(ctx, tx, orderID, "[Respond]")
	if err != nil {
		return nil, err
	}
	if err := s.checkSupplierActor(actor, order); err != nil {
		return nil, err
	}
	if order.Status != constant.SupplierOrderStatusPending {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	items, err := s.getItemsTx(ctx, tx, orderID, "[Respond]")
	if err != nil {
		return nil, err
	}

	itemByID := make(map[uint64]model.SupplierOrderItem, len(items))
	for _, it := range items {
		itemByID[it.ID] = it
	}
	decisionByItem := make(map[uint64]model.SupplierItemDecision, len(decisions))
	for _, d := range decisions {
		if _, dup := decisionByItem[d.ItemID]; dup {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if _, ok := itemByID[d.ItemID]; !ok {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		decisionByItem[d.ItemID] = d
	}

	accepted := 0
	total := decimal.Zero
	for _, it := range items {
		d, mentioned := decisionByItem[it.ID]
		if !mentioned {
			d = model.SupplierItemDecision{ItemID: it.ID, Decision: fallback}
		}

		switch d.Decision {
		case constant.SupplierItemStatusDeclined:
			it.Status = constant.SupplierItemStatusDeclined
			it.Subtotal = decimal.Zero
		case constant.SupplierItemStatusAccepted:
			it.Status = constant.SupplierItemStatusAccepted
			if d.Quantity != nil {
				if *d.Quantity <= 0 {
					return nil, errors.SetCustomError(constant.ErrInvalidRequest)
				}
				it.Quantity = *d.Quantity
			}
			if d.CostPrice != nil {
				if d.CostPrice.IsNegative() {
					return nil, errors.SetCustomError(constant.ErrInvalidRequest)
				}
				it.CostPrice = *d.CostPrice
			}
			if d.ProductionDate != nil {
				it.ProductionDate = d.ProductionDate
			}
			if d.ExpiryDate != nil {
				it.ExpiryDate = d.ExpiryDate
			}
			if it.ProductionDate != nil && it.ExpiryDate != nil && it.ExpiryDate.Before(*it.ProductionDate) {
				return nil, errors.SetCustomError(constant.ErrInvalidRequest)
			}
			if d.BatchNumber != nil {
				it.BatchNumber = *d.BatchNumber
			}
			it.Subtotal = it.CostPrice.Mul(decimal.NewFromInt(it.Quantity))
			total = total.Add(it.Subtotal)
			accepted++
		default:
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}

		if err := s.supplierRepo.UpdateItemDecisionTx(ctx, tx, &it); err != nil {
			logger.Error("[Respond] update item", zap.String("error", err.Error()), zap.Uint64("item_id", it.ID))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	var target constant.SupplierOrderStatus
	switch {
	case accepted == 0:
		target = constant.SupplierOrderStatusDeclined
	case accepted == len(items):
		target = constant.SupplierOrderStatusAccepted
	default:
		target = constant.SupplierOrderStatusPartiallyAccepted
	}

	if err := s.moveStatusTx(ctx, tx, orderID, constant.SupplierOrderStatusPending, target, "[Respond]"); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.UpdateSupplierOrderTotalTx(ctx, tx, orderID, total); err != nil {
		logger.Error("[Respond] update total", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionRespond, string(constant.SupplierOrderStatusPending), string(target), fmt.Sprintf("%d of %d lines accepted", accepted, len(items))); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Respond] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return s.GetSupplierOrder(ctx, orderID)
}

// Confirm accepts a partially accepted response as the new order content.
func (s *supplierAppImpl) Confirm(ctx context.Context, actor model.Actor, orderID uint64) (*model.SupplierOrder, error) {
	if actor.Role != constant.RoleAdmin {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Confirm] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.getOrderForUpdate(ctx, tx, orderID, "[Confirm]")
	if err != nil {
		return nil, err
	}
	if order.Status != constant.SupplierOrderStatusPartiallyAccepted {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	if err := s.moveStatusTx(ctx, tx, orderID, order.Status, constant.SupplierOrderStatusAccepted, "[Confirm]"); err != nil {
		return nil, err
	}
	if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionConfirm, string(order.Status), string(constant.SupplierOrderStatusAccepted), ""); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Confirm] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	order.Status = constant.SupplierOrderStatusAccepted
	return order, nil
}

// Deliver receives the accepted lines into stock. Every accepted line becomes
// an inventory lot carrying the supplier dates and cost, short shipments are
// recorded per line through received overrides. Date conflicts against lots
// already on the shelf are reported, not blocking.
func (s *supplierAppImpl) Deliver(ctx context.Context, actor model.Actor, orderID uint64, received []model.ReceivedItem) (*model.SupplierDeliveryResult, error) {
	if actor.Role != constant.RoleAdmin && actor.Role != constant.RoleWorker {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Deliver] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.getOrderForUpdate(ctx, tx, orderID, "[Deliver]")
	if err != nil {
		return nil, err
	}
	if order.Status != constant.SupplierOrderStatusAccepted && order.Status != constant.SupplierOrderStatusPartiallyAccepted {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}
	from := order.Status

	items, err := s.getItemsTx(ctx, tx, orderID, "[Deliver]")
	if err != nil {
		return nil, err
	}

	itemByID := make(map[uint64]model.SupplierOrderItem, len(items))
	for _, it := range items {
		itemByID[it.ID] = it
	}
	receivedByItem := make(map[uint64]int64, len(received))
	for _, r := range received {
		if _, dup := receivedByItem[r.ItemID]; dup {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		it, ok := itemByID[r.ItemID]
		if !ok || it.Status != constant.SupplierItemStatusAccepted {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		receivedByItem[r.ItemID] = r.Quantity
	}

	batches := make([]model.Batch, 0, len(items))
	conflicts := make([]model.DateConflict, 0)
	total := decimal.Zero
	for _, it := range items {
		if it.Status != constant.SupplierItemStatusAccepted {
			continue
		}

		qty := it.Quantity
		if r, ok := receivedByItem[it.ID]; ok {
			if r <= 0 || r > it.Quantity {
				return nil, errors.SetCustomError(constant.ErrInvalidRequest)
			}
			qty = r
		}
		subtotal := it.CostPrice.Mul(decimal.NewFromInt(qty))
		if err := s.supplierRepo.UpdateItemReceivedTx(ctx, tx, it.ID, qty, subtotal); err != nil {
			logger.Error("[Deliver] update received", zap.String("error", err.Error()), zap.Uint64("item_id", it.ID))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		total = total.Add(subtotal)

		// check before insert so the incoming lot does not flag itself
		conflict, err := s.inventoryApp.CheckDateConflictsTx(ctx, tx, it.ProductID, it.ProductionDate, it.ExpiryDate)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			conflicts = append(conflicts, *conflict)
		}

		supplierID := order.SupplierID
		batch, err := s.inventoryApp.CreateBatchTx(ctx, tx, &model.CreateBatchRequest{
			ProductID:       it.ProductID,
			Quantity:        qty,
			ProductionDate:  it.ProductionDate,
			ExpiryDate:      it.ExpiryDate,
			BatchNumber:     it.BatchNumber,
			CostPrice:       it.CostPrice,
			SupplierID:      &supplierID,
			SupplierOrderID: &orderID,
		})
		if err != nil {
			return nil, err
		}
		batches = append(batches, *batch)
	}

	if err := s.supplierRepo.UpdateSupplierOrderTotalTx(ctx, tx, orderID, total); err != nil {
		logger.Error("[Deliver] update total", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.moveStatusTx(ctx, tx, orderID, from, constant.SupplierOrderStatusDelivered, "[Deliver]"); err != nil {
		return nil, err
	}

	note := ""
	if len(conflicts) > 0 {
		note = fmt.Sprintf("%d date conflicts", len(conflicts))
	}
	if err := s.auditTx(ctx, tx, actor, orderID, constant.ActionDeliver, string(from), string(constant.SupplierOrderStatusDelivered), note); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Deliver] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	order.Status = constant.SupplierOrderStatusDelivered
	order.TotalCost = total
	return &model.SupplierDeliveryResult{Order: order, Batches: batches, Conflicts: conflicts}, nil
}

func (s *supplierAppImpl) ListActivity(ctx context.Context, orderID uint64) ([]model.ActivityLog, error) {
	entries, err := s.auditRepo.ListByOrder(ctx, constant.OrderTypeSupplier, orderID)
	if err != nil {
		logger.Error("[ListActivity] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entries, nil
}

// checkSupplierActor allows admins and the supplier the order belongs to.
func (s *supplierAppImpl) checkSupplierActor(actor model.Actor, order *model.SupplierOrder) error {
	switch actor.Role {
	case constant.RoleAdmin:
		return nil
	case constant.RoleSupplier:
		if actor.SupplierID == nil || *actor.SupplierID != order.SupplierID {
			return errors.SetCustomError(constant.ErrUnauthorize)
		}
		return nil
	default:
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
}

func (s *supplierAppImpl) getOrderForUpdate(ctx context.Context, tx *sqlx.Tx, orderID uint64, op string) (*model.SupplierOrder, error) {
	order, err := s.supplierRepo.GetSupplierOrderForUpdateTx(ctx, tx, orderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error(op+" get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return order, nil
}

func (s *supplierAppImpl) getItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, op string) ([]model.SupplierOrderItem, error) {
	items, err := s.supplierRepo.GetSupplierOrderItemsTx(ctx, tx, orderID)
	if err != nil {
		logger.Error(op+" get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *supplierAppImpl) moveStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, from, to constant.SupplierOrderStatus, op string) error {
	ok, err := s.supplierRepo.UpdateSupplierOrderStatusTx(ctx, tx, orderID, from, to)
	if err != nil {
		logger.Error(op+" update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrStateConflict)
	}
	return nil
}

func (s *supplierAppImpl) auditTx(ctx context.Context, tx *sqlx.Tx, actor model.Actor, orderID uint64, action constant.AuditAction, prev, next, note string) error {
	entry := &model.ActivityLog{
		OrderType:      constant.OrderTypeSupplier,
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
