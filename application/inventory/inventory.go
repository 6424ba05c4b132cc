package inventory

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/bobursolih/market-backend/cmd/config"
	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
	batchrepo "github.com/bobursolih/market-backend/repository/batch"
	productrepo "github.com/bobursolih/market-backend/repository/product"
	txrepo "github.com/bobursolih/market-backend/repository/tx"
	"github.com/bobursolih/market-backend/utils/errors"
	"github.com/bobursolih/market-backend/utils/logger"
)

// InventoryApp owns the lot ledger: FIFO allocation planning, lot mutation
// and the product aggregate that mirrors the sum of active lots. Tx methods
// run inside a caller transaction so order and supplier flows stay atomic.
type InventoryApp interface {
	AllocateFIFO(ctx context.Context, productID uint64, required int64) (*model.AllocationResult, error)
	AllocateFIFOTx(ctx context.Context, tx *sqlx.Tx, productID uint64, required int64) (*model.AllocationResult, error)
	ApplyAllocationTx(ctx context.Context, tx *sqlx.Tx, productID uint64, allocation []model.BatchAllocation) error
	ReverseAllocationTx(ctx context.Context, tx *sqlx.Tx, productID uint64, allocation []model.BatchAllocation) error
	CreateBatch(ctx context.Context, req *model.CreateBatchRequest) (*model.Batch, error)
	CreateBatchTx(ctx context.Context, tx *sqlx.Tx, req *model.CreateBatchRequest) (*model.Batch, error)
	CheckDateConflicts(ctx context.Context, productID uint64, productionDate, expiryDate *time.Time) (*model.DateConflict, error)
	CheckDateConflictsTx(ctx context.Context, tx *sqlx.Tx, productID uint64, productionDate, expiryDate *time.Time) (*model.DateConflict, error)
	ListProductBatches(ctx context.Context, productID uint64) ([]model.Batch, error)
	ListNearExpiry(ctx context.Context) ([]model.Batch, error)
}

type inventoryAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	batchRepo   batchrepo.BatchRepository
	productRepo productrepo.ProductRepository
}

func NewInventoryApp(config *config.Config, txRepo txrepo.TxRepository, batchRepo batchrepo.BatchRepository, productRepo productrepo.ProductRepository) InventoryApp {
	return &inventoryAppImpl{config: config, txRepo: txRepo, batchRepo: batchRepo, productRepo: productRepo}
}

// ComputeAllocation walks active lots oldest first and builds the plan for
// the required quantity. It never touches storage, ordering is
// (production date asc with unknown dates last, received date asc, id asc).
// Products with no lots recorded at all fall back to the aggregate quantity
// and get the SIMPLE_QUANTITY alert.
func ComputeAllocation(product *model.Product, batches []model.Batch, lotCount, required int64, nearExpiryWithin time.Duration, now time.Time) *model.AllocationResult {
	res := &model.AllocationResult{
		ProductID:  product.ID,
		Required:   required,
		Allocation: []model.BatchAllocation{},
	}

	if lotCount == 0 {
		// legacy product without lot tracking
		res.TotalAvailable = product.Quantity
		res.CanFulfill = product.Quantity >= required
		res.Alerts = append(res.Alerts, constant.AlertSimpleQuantity)
		if !res.CanFulfill {
			res.Alerts = append(res.Alerts, constant.AlertInsufficientStock)
		}
		return res
	}

	sortFIFO(batches)

	var total int64
	for _, b := range batches {
		if b.Quantity > 0 {
			total += b.Quantity
		}
	}
	res.TotalAvailable = total

	if len(batches) == 0 {
		res.Alerts = append(res.Alerts, constant.AlertInsufficientStock, constant.AlertNoStock)
		return res
	}

	expiryCutoff := now.Add(nearExpiryWithin)
	nearExpiry := false
	remaining := required
	for _, b := range batches {
		if remaining == 0 {
			break
		}
		if b.Quantity <= 0 {
			continue
		}
		take := b.Quantity
		if take > remaining {
			take = remaining
		}
		res.Allocation = append(res.Allocation, model.BatchAllocation{BatchID: b.ID, Quantity: take})
		remaining -= take
		if b.ExpiryDate != nil && !b.ExpiryDate.After(expiryCutoff) {
			nearExpiry = true
		}
	}

	res.CanFulfill = remaining == 0
	if !res.CanFulfill {
		res.Alerts = append(res.Alerts, constant.AlertInsufficientStock)
	}
	if len(res.Allocation) > 1 {
		res.Alerts = append(res.Alerts, constant.AlertMultipleBatches)
	}
	if nearExpiry {
		res.Alerts = append(res.Alerts, constant.AlertNearExpiry)
	}
	return res
}

// sortFIFO orders lots for consumption. Unknown production dates go last so
// dated stock is used up before undated stock.
func sortFIFO(batches []model.Batch) {
	sort.SliceStable(batches, func(i, j int) bool {
		a, b := batches[i], batches[j]
		switch {
		case a.ProductionDate == nil && b.ProductionDate != nil:
			return false
		case a.ProductionDate != nil && b.ProductionDate == nil:
			return true
		case a.ProductionDate != nil && b.ProductionDate != nil && !a.ProductionDate.Equal(*b.ProductionDate):
			return a.ProductionDate.Before(*b.ProductionDate)
		}
		if !a.ReceivedDate.Equal(b.ReceivedDate) {
			return a.ReceivedDate.Before(b.ReceivedDate)
		}
		return a.ID < b.ID
	})
}

func (s *inventoryAppImpl) AllocateFIFO(ctx context.Context, productID uint64, required int64) (*model.AllocationResult, error) {
	if required <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[AllocateFIFO] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	lotCount, err := s.batchRepo.CountBatches(ctx, productID)
	if err != nil {
		logger.Error("[AllocateFIFO] count lots", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	batches, err := s.batchRepo.GetActiveBatches(ctx, productID)
	if err != nil {
		logger.Error("[AllocateFIFO] get active lots", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return ComputeAllocation(product, batches, lotCount, required, s.config.Inventory.NearExpiryWindow, time.Now()), nil
}

// AllocateFIFOTx is the in-transaction variant, it locks the product row and
// active lots so the plan stays valid until the caller applies it.
func (s *inventoryAppImpl) AllocateFIFOTx(ctx context.Context, tx *sqlx.Tx, productID uint64, required int64) (*model.AllocationResult, error) {
	if required <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	product, err := s.productRepo.GetProductForUpdateTx(ctx, tx, productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[AllocateFIFOTx] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	lotCount, err := s.batchRepo.CountBatchesTx(ctx, tx, productID)
	if err != nil {
		logger.Error("[AllocateFIFOTx] count lots", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	batches, err := s.batchRepo.GetActiveBatchesTx(ctx, tx, productID)
	if err != nil {
		logger.Error("[AllocateFIFOTx] get active lots", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return ComputeAllocation(product, batches, lotCount, required, s.config.Inventory.NearExpiryWindow, time.Now()), nil
}

// ApplyAllocationTx deducts the planned quantities from their lots. Lots
// that reach zero flip to Depleted. The caller adjusts the product
// aggregate, this method touches lots only.
func (s *inventoryAppImpl) ApplyAllocationTx(ctx context.Context, tx *sqlx.Tx, productID uint64, allocation []model.BatchAllocation) error {
	if len(allocation) == 0 {
		return nil
	}

	byID, err := s.lockAllocationLots(ctx, tx, allocation)
	if err != nil {
		return err
	}

	for _, a := range allocation {
		b, ok := byID[a.BatchID]
		if !ok {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if b.ProductID != productID || b.Status != constant.BatchStatusActive {
			return errors.SetCustomError(constant.ErrInvalidBatch)
		}
		if a.Quantity <= 0 || b.Quantity < a.Quantity {
			return errors.SetCustomError(constant.ErrInvalidBatch)
		}

		b.Quantity -= a.Quantity
		if b.Quantity == 0 {
			b.Status = constant.BatchStatusDepleted
		}
		if err := s.batchRepo.UpdateBatchQuantityTx(ctx, tx, b.ID, b.Quantity, b.Status); err != nil {
			logger.Error("[ApplyAllocationTx] update lot", zap.String("error", err.Error()), zap.Uint64("batch_id", b.ID))
			return errors.SetCustomError(constant.ErrInternal)
		}
		byID[a.BatchID] = b
	}
	return nil
}

// ReverseAllocationTx puts deducted quantities back on their lots,
// resurrecting Depleted lots to Active. Expired lots get their quantity back
// but stay Expired so they are not reallocated.
func (s *inventoryAppImpl) ReverseAllocationTx(ctx context.Context, tx *sqlx.Tx, productID uint64, allocation []model.BatchAllocation) error {
	if len(allocation) == 0 {
		return nil
	}

	byID, err := s.lockAllocationLots(ctx, tx, allocation)
	if err != nil {
		return err
	}

	for _, a := range allocation {
		b, ok := byID[a.BatchID]
		if !ok {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if b.ProductID != productID {
			return errors.SetCustomError(constant.ErrInvalidBatch)
		}
		if a.Quantity <= 0 {
			return errors.SetCustomError(constant.ErrInvalidBatch)
		}

		b.Quantity += a.Quantity
		if b.Status == constant.BatchStatusDepleted && b.Quantity > 0 {
			b.Status = constant.BatchStatusActive
		}
		if err := s.batchRepo.UpdateBatchQuantityTx(ctx, tx, b.ID, b.Quantity, b.Status); err != nil {
			logger.Error("[ReverseAllocationTx] update lot", zap.String("error", err.Error()), zap.Uint64("batch_id", b.ID))
			return errors.SetCustomError(constant.ErrInternal)
		}
		byID[a.BatchID] = b
	}
	return nil
}

func (s *inventoryAppImpl) lockAllocationLots(ctx context.Context, tx *sqlx.Tx, allocation []model.BatchAllocation) (map[uint64]model.Batch, error) {
	ids := make([]uint64, 0, len(allocation))
	for _, a := range allocation {
		ids = append(ids, a.BatchID)
	}

	batches, err := s.batchRepo.GetBatchesByIDTx(ctx, tx, ids)
	if err != nil {
		logger.Error("[lockAllocationLots] get lots", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	byID := make(map[uint64]model.Batch, len(batches))
	for _, b := range batches {
		byID[b.ID] = b
	}
	return byID, nil
}

func (s *inventoryAppImpl) CreateBatch(ctx context.Context, req *model.CreateBatchRequest) (*model.Batch, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateBatch] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	b, err := s.CreateBatchTx(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateBatch] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return b, nil
}

// CreateBatchTx registers a new lot and bumps the product aggregate in the
// same transaction, keeping quantity equal to the sum of active lots.
func (s *inventoryAppImpl) CreateBatchTx(ctx context.Context, tx *sqlx.Tx, req *model.CreateBatchRequest) (*model.Batch, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.ProductionDate != nil && req.ExpiryDate != nil && req.ExpiryDate.Before(*req.ProductionDate) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if _, err := s.productRepo.GetProductForUpdateTx(ctx, tx, req.ProductID); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[CreateBatchTx] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	received := time.Now()
	if req.ReceivedDate != nil {
		received = *req.ReceivedDate
	}

	b := &model.Batch{
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		ProductionDate:  req.ProductionDate,
		ExpiryDate:      req.ExpiryDate,
		BatchNumber:     req.BatchNumber,
		ReceivedDate:    received,
		CostPrice:       req.CostPrice,
		Status:          constant.BatchStatusActive,
		SupplierID:      req.SupplierID,
		SupplierOrderID: req.SupplierOrderID,
	}

	id, err := s.batchRepo.InsertBatchTx(ctx, tx, b)
	if err != nil {
		logger.Error("[CreateBatchTx] insert lot", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	b.ID = id

	if err := s.productRepo.AdjustQuantityTx(ctx, tx, req.ProductID, req.Quantity); err != nil {
		logger.Error("[CreateBatchTx] adjust product quantity", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return b, nil
}

func (s *inventoryAppImpl) CheckDateConflicts(ctx context.Context, productID uint64, productionDate, expiryDate *time.Time) (*model.DateConflict, error) {
	batches, err := s.batchRepo.GetActiveBatches(ctx, productID)
	if err != nil {
		logger.Error("[CheckDateConflicts] get active lots", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return findDateConflicts(productID, batches, productionDate, expiryDate), nil
}

func (s *inventoryAppImpl) CheckDateConflictsTx(ctx context.Context, tx *sqlx.Tx, productID uint64, productionDate, expiryDate *time.Time) (*model.DateConflict, error) {
	batches, err := s.batchRepo.GetActiveBatchesTx(ctx, tx, productID)
	if err != nil {
		logger.Error("[CheckDateConflictsTx] get active lots", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return findDateConflicts(productID, batches, productionDate, expiryDate), nil
}

// findDateConflicts flags active lots whose dates differ from the incoming
// lot by calendar day. Unknown dates on either side never conflict.
func findDateConflicts(productID uint64, batches []model.Batch, productionDate, expiryDate *time.Time) *model.DateConflict {
	ids := make([]uint64, 0)
	for _, b := range batches {
		if b.Quantity <= 0 {
			continue
		}
		if differentDay(productionDate, b.ProductionDate) || differentDay(expiryDate, b.ExpiryDate) {
			ids = append(ids, b.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return &model.DateConflict{ProductID: productID, BatchIDs: ids}
}

func differentDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return false
	}
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay != by || am != bm || ad != bd
}

func (s *inventoryAppImpl) ListProductBatches(ctx context.Context, productID uint64) ([]model.Batch, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[ListProductBatches] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	batches, err := s.batchRepo.ListByProduct(ctx, productID)
	if err != nil {
		logger.Error("[ListProductBatches] list lots", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return batches, nil
}

func (s *inventoryAppImpl) ListNearExpiry(ctx context.Context) ([]model.Batch, error) {
	until := time.Now().Add(s.config.Inventory.NearExpiryWindow)
	batches, err := s.batchRepo.ListNearExpiry(ctx, until)
	if err != nil {
		logger.Error("[ListNearExpiry] list lots", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return batches, nil
}
