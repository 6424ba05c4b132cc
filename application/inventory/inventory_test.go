package inventory_test

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	appinventory "github.com/bobursolih/market-backend/application/inventory"
	"github.com/bobursolih/market-backend/cmd/config"
	"github.com/bobursolih/market-backend/constant"
	batchmocks "github.com/bobursolih/market-backend/mocks/repository/batch"
	productmocks "github.com/bobursolih/market-backend/mocks/repository/product"
	txmocks "github.com/bobursolih/market-backend/mocks/repository/tx"
	"github.com/bobursolih/market-backend/model"
	cerr "github.com/bobursolih/market-backend/utils/errors"
	"github.com/jmoiron/sqlx"
)

func day(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

func at(s string) time.Time {
	return *day(s)
}

func TestComputeAllocation(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour
	product := &model.Product{ID: 7, Quantity: 50}

	tests := []struct {
		name     string
		batches  []model.Batch
		lotCount int64
		required int64
		want     *model.AllocationResult
	}{
		{
			name: "success: single lot covers the requirement",
			batches: []model.Batch{
				{ID: 1, ProductID: 7, Quantity: 10, ProductionDate: day("2026-01-01"), ReceivedDate: at("2026-01-02")},
			},
			lotCount: 1,
			required: 5,
			want: &model.AllocationResult{
				ProductID:      7,
				Required:       5,
				CanFulfill:     true,
				TotalAvailable: 10,
				Allocation:     []model.BatchAllocation{{BatchID: 1, Quantity: 5}},
			},
		},
		{
			name: "success: oldest production date consumed first",
			batches: []model.Batch{
				{ID: 2, ProductID: 7, Quantity: 5, ProductionDate: day("2026-02-01"), ReceivedDate: at("2026-02-02")},
				{ID: 1, ProductID: 7, Quantity: 5, ProductionDate: day("2026-01-01"), ReceivedDate: at("2026-01-02")},
			},
			lotCount: 2,
			required: 6,
			want: &model.AllocationResult{
				ProductID:      7,
				Required:       6,
				CanFulfill:     true,
				TotalAvailable: 10,
				Allocation:     []model.BatchAllocation{{BatchID: 1, Quantity: 5}, {BatchID: 2, Quantity: 1}},
				Alerts:         []constant.StockAlert{constant.AlertMultipleBatches},
			},
		},
		{
			name: "success: undated lots consumed last",
			batches: []model.Batch{
				{ID: 1, ProductID: 7, Quantity: 10, ReceivedDate: at("2026-01-01")},
				{ID: 2, ProductID: 7, Quantity: 4, ProductionDate: day("2026-02-10"), ReceivedDate: at("2026-02-11")},
			},
			lotCount: 2,
			required: 6,
			want: &model.AllocationResult{
				ProductID:      7,
				Required:       6,
				CanFulfill:     true,
				TotalAvailable: 14,
				Allocation:     []model.BatchAllocation{{BatchID: 2, Quantity: 4}, {BatchID: 1, Quantity: 2}},
				Alerts:         []constant.StockAlert{constant.AlertMultipleBatches},
			},
		},
		{
			name: "success: received date breaks production ties",
			batches: []model.Batch{
				{ID: 2, ProductID: 7, Quantity: 5, ProductionDate: day("2026-01-01"), ReceivedDate: at("2026-01-05")},
				{ID: 1, ProductID: 7, Quantity: 5, ProductionDate: day("2026-01-01"), ReceivedDate: at("2026-01-03")},
			},
			lotCount: 2,
			required: 5,
			want: &model.AllocationResult{
				ProductID:      7,
				Required:       5,
				CanFulfill:     true,
				TotalAvailable: 10,
				Allocation:     []model.BatchAllocation{{BatchID: 1, Quantity: 5}},
			},
		},
		{
			name: "success: lower id wins a complete tie",
			batches: []model.Batch{
				{ID: 9, ProductID: 7, Quantity: 5, ProductionDate: day("2026-01-01"), ReceivedDate: at("2026-01-03")},
				{ID: 3, ProductID: 7, Quantity: 5, ProductionDate: day("2026-01-01"), ReceivedDate: at("2026-01-03")},
			},
			lotCount: 2,
			required: 2,
			want: &model.AllocationResult{
				ProductID:      7,
				Required:       2,
				CanFulfill:     true,
				TotalAvailable: 10,
				Allocation:     []model.BatchAllocation{{BatchID: 3, Quantity: 2}},
			},
		},
		{
			name: "alert: allocated lot close to expiry",
			batches: []model.Batch{
				{ID: 1, ProductID: 7, Quantity: 10, ProductionDate: day("2026-01-01"), ExpiryDate: day("2026-03-05"), ReceivedDate: at("2026-01-02")},
			},
			lotCount: 1,
			required: 5,
			want: &model.AllocationResult{
				ProductID:      7,
				Required:       5,
				CanFulfill:     true,
				TotalAvailable: 10,
				Allocation:     []model.BatchAllocation{{BatchID: 1, Quantity: 5}},
				Alerts:         []constant.StockAlert{constant.AlertNearExpiry},
			},
		},
		{
			name: "no alert for a near-expiry lot the plan never touches",
			batches: []model.Batch{
				{ID: 1, ProductID: 7, Quantity: 10, ProductionDate: day("2026-01-01"), ExpiryDate: day("2026-06-01"), ReceivedDate: at("2026-01-02")},
				{ID: 2, ProductID: 7, Quantity: 5, ProductionDate: day("2026-02-01"), ExpiryDate: day("2026-03-05"), ReceivedDate: at("2026-02-02")},
			},
			lotCount: 2,
			required: 5,
			want: &model.AllocationResult{
				ProductID:      7,
				Required:       5,
				CanFulfill:     true,
				TotalAvailable: 15,
				Allocation:     []model.BatchAllocation{{BatchID: 1, Quantity: 5}},
			},
		},
		{
			name: "alert: insufficient stock keeps the partial plan",
			batches: []model.Batch{
				{ID: 1, ProductID: 7, Quantity: 4, ProductionDate: day("2026-01-01"), ReceivedDate: at("2026-01-02")},
				{ID: 2, ProductID: 7, Quantity: 3, ProductionDate: day("2026-02-01"), ReceivedDate: at("2026-02-02")},
			},
			lotCount: 2,
			required: 10,
			want: &model.AllocationResult{
				ProductID:      7,
				Required:       10,
				CanFulfill:     false,
				TotalAvailable: 7,
				Allocation:     []model.BatchAllocation{{BatchID: 1, Quantity: 4}, {BatchID: 2, Quantity: 3}},
				Alerts:         []constant.StockAlert{constant.AlertInsufficientStock, constant.AlertMultipleBatches},
			},
		},
		{
			name:     "alert: lots exist but none active",
			batches:  []model.Batch{},
			lotCount: 2,
			required: 5,
			want: &model.AllocationResult{
				ProductID:      7,
				Required:       5,
				CanFulfill:     false,
				TotalAvailable: 0,
				Allocation:     []model.BatchAllocation{},
				Alerts:         []constant.StockAlert{constant.AlertInsufficientStock, constant.AlertNoStock},
			},
		},
		{
			name:     "alert: aggregate product fulfills without lots",
			batches:  nil,
			lotCount: 0,
			required: 20,
			want: &model.AllocationResult{
				ProductID:      7,
				Required:       20,
				CanFulfill:     true,
				TotalAvailable: 50,
				Allocation:     []model.BatchAllocation{},
				Alerts:         []constant.StockAlert{constant.AlertSimpleQuantity},
			},
		},
		{
			name:     "alert: aggregate product with too little stock",
			batches:  nil,
			lotCount: 0,
			required: 80,
			want: &model.AllocationResult{
				ProductID:      7,
				Required:       80,
				CanFulfill:     false,
				TotalAvailable: 50,
				Allocation:     []model.BatchAllocation{},
				Alerts:         []constant.StockAlert{constant.AlertSimpleQuantity, constant.AlertInsufficientStock},
			},
		},
		{
			name: "zero quantity lots are skipped",
			batches: []model.Batch{
				{ID: 1, ProductID: 7, Quantity: 0, ProductionDate: day("2026-01-01"), ReceivedDate: at("2026-01-02")},
				{ID: 2, ProductID: 7, Quantity: 5, ProductionDate: day("2026-02-01"), ReceivedDate: at("2026-02-02")},
			},
			lotCount: 2,
			required: 5,
			want: &model.AllocationResult{
				ProductID:      7,
				Required:       5,
				CanFulfill:     true,
				TotalAvailable: 5,
				Allocation:     []model.BatchAllocation{{BatchID: 2, Quantity: 5}},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := appinventory.ComputeAllocation(product, tt.batches, tt.lotCount, tt.required, window, now)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ComputeAllocation() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInventoryApp_AllocateFIFO(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		batchRepo   *batchmocks.BatchRepository
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx       context.Context
		productID uint64
		required  int64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.AllocationResult
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: plan split across two lots",
			fields: fields{
				config: &config.Config{
					Inventory: config.InventoryConfig{NearExpiryWindow: 7 * 24 * time.Hour},
				},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				productID: 5,
				required:  25,
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.Product{ID: 5, Quantity: 30}, nil).Once()
				f.batchRepo.On("CountBatches", mock.Anything, uint64(5)).Return(int64(2), nil).Once()
				f.batchRepo.On("GetActiveBatches", mock.Anything, uint64(5)).Return([]model.Batch{
					{ID: 1, ProductID: 5, Quantity: 20, ProductionDate: day("2026-01-01"), ReceivedDate: at("2026-01-02")},
					{ID: 2, ProductID: 5, Quantity: 10, ProductionDate: day("2026-02-01"), ReceivedDate: at("2026-02-02")},
				}, nil).Once()
			},
			want: &model.AllocationResult{
				ProductID:      5,
				Required:       25,
				CanFulfill:     true,
				TotalAvailable: 30,
				Allocation:     []model.BatchAllocation{{BatchID: 1, Quantity: 20}, {BatchID: 2, Quantity: 5}},
				Alerts:         []constant.StockAlert{constant.AlertMultipleBatches},
			},
		},
		{
			name: "error: zero required quantity",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				productID: 5,
				required:  0,
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: product not found",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				productID: 404,
				required:  1,
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(404)).Return(nil, sql.ErrNoRows).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: lot lookup fails",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				productID: 5,
				required:  1,
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.Product{ID: 5}, nil).Once()
				f.batchRepo.On("CountBatches", mock.Anything, uint64(5)).Return(int64(0), errors.New("db error")).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appinventory.NewInventoryApp(tt.fields.config, tt.fields.txRepo, tt.fields.batchRepo, tt.fields.productRepo)

			got, err := app.AllocateFIFO(tt.args.ctx, tt.args.productID, tt.args.required)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AllocateFIFO() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("AllocateFIFO() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInventoryApp_ApplyAllocationTx(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		batchRepo   *batchmocks.BatchRepository
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx        context.Context
		productID  uint64
		allocation []model.BatchAllocation
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: second lot depletes to zero",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:        context.Background(),
				productID:  7,
				allocation: []model.BatchAllocation{{BatchID: 1, Quantity: 3}, {BatchID: 2, Quantity: 5}},
			},
			mockCall: func(f fields) {
				f.batchRepo.On("GetBatchesByIDTx", mock.Anything, mock.Anything, []uint64{1, 2}).Return([]model.Batch{
					{ID: 1, ProductID: 7, Quantity: 10, Status: constant.BatchStatusActive},
					{ID: 2, ProductID: 7, Quantity: 5, Status: constant.BatchStatusActive},
				}, nil).Once()
				f.batchRepo.On("UpdateBatchQuantityTx", mock.Anything, mock.Anything, uint64(1), int64(7), constant.BatchStatusActive).Return(nil).Once()
				f.batchRepo.On("UpdateBatchQuantityTx", mock.Anything, mock.Anything, uint64(2), int64(0), constant.BatchStatusDepleted).Return(nil).Once()
			},
		},
		{
			name: "error: lot belongs to another product",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:        context.Background(),
				productID:  7,
				allocation: []model.BatchAllocation{{BatchID: 1, Quantity: 3}},
			},
			mockCall: func(f fields) {
				f.batchRepo.On("GetBatchesByIDTx", mock.Anything, mock.Anything, []uint64{1}).Return([]model.Batch{
					{ID: 1, ProductID: 8, Quantity: 10, Status: constant.BatchStatusActive},
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidBatch,
		},
		{
			name: "error: deduction larger than the lot",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:        context.Background(),
				productID:  7,
				allocation: []model.BatchAllocation{{BatchID: 1, Quantity: 11}},
			},
			mockCall: func(f fields) {
				f.batchRepo.On("GetBatchesByIDTx", mock.Anything, mock.Anything, []uint64{1}).Return([]model.Batch{
					{ID: 1, ProductID: 7, Quantity: 10, Status: constant.BatchStatusActive},
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidBatch,
		},
		{
			name: "error: inactive lot",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:        context.Background(),
				productID:  7,
				allocation: []model.BatchAllocation{{BatchID: 1, Quantity: 3}},
			},
			mockCall: func(f fields) {
				f.batchRepo.On("GetBatchesByIDTx", mock.Anything, mock.Anything, []uint64{1}).Return([]model.Batch{
					{ID: 1, ProductID: 7, Quantity: 10, Status: constant.BatchStatusExpired},
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidBatch,
		},
		{
			name: "error: unknown lot",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:        context.Background(),
				productID:  7,
				allocation: []model.BatchAllocation{{BatchID: 99, Quantity: 3}},
			},
			mockCall: func(f fields) {
				f.batchRepo.On("GetBatchesByIDTx", mock.Anything, mock.Anything, []uint64{99}).Return([]model.Batch{}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appinventory.NewInventoryApp(tt.fields.config, tt.fields.txRepo, tt.fields.batchRepo, tt.fields.productRepo)

			err := app.ApplyAllocationTx(tt.args.ctx, &sqlx.Tx{}, tt.args.productID, tt.args.allocation)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyAllocationTx() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestInventoryApp_ReverseAllocationTx(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		batchRepo   *batchmocks.BatchRepository
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx        context.Context
		productID  uint64
		allocation []model.BatchAllocation
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: depleted lot comes back active",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:        context.Background(),
				productID:  7,
				allocation: []model.BatchAllocation{{BatchID: 1, Quantity: 5}},
			},
			mockCall: func(f fields) {
				f.batchRepo.On("GetBatchesByIDTx", mock.Anything, mock.Anything, []uint64{1}).Return([]model.Batch{
					{ID: 1, ProductID: 7, Quantity: 0, Status: constant.BatchStatusDepleted},
				}, nil).Once()
				f.batchRepo.On("UpdateBatchQuantityTx", mock.Anything, mock.Anything, uint64(1), int64(5), constant.BatchStatusActive).Return(nil).Once()
			},
		},
		{
			name: "success: expired lot regains quantity but stays expired",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:        context.Background(),
				productID:  7,
				allocation: []model.BatchAllocation{{BatchID: 2, Quantity: 4}},
			},
			mockCall: func(f fields) {
				f.batchRepo.On("GetBatchesByIDTx", mock.Anything, mock.Anything, []uint64{2}).Return([]model.Batch{
					{ID: 2, ProductID: 7, Quantity: 0, Status: constant.BatchStatusExpired},
				}, nil).Once()
				f.batchRepo.On("UpdateBatchQuantityTx", mock.Anything, mock.Anything, uint64(2), int64(4), constant.BatchStatusExpired).Return(nil).Once()
			},
		},
		{
			name: "error: unknown lot",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:        context.Background(),
				productID:  7,
				allocation: []model.BatchAllocation{{BatchID: 99, Quantity: 4}},
			},
			mockCall: func(f fields) {
				f.batchRepo.On("GetBatchesByIDTx", mock.Anything, mock.Anything, []uint64{99}).Return([]model.Batch{}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appinventory.NewInventoryApp(tt.fields.config, tt.fields.txRepo, tt.fields.batchRepo, tt.fields.productRepo)

			err := app.ReverseAllocationTx(tt.args.ctx, &sqlx.Tx{}, tt.args.productID, tt.args.allocation)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReverseAllocationTx() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

// Reversing the exact allocation that was applied must land every lot back
// on its original quantity and status, including resurrecting depleted lots.
func TestInventoryApp_ApplyThenReverseRestoresLots(t *testing.T) {
	batchRepo := batchmocks.NewBatchRepository(t)
	app := appinventory.NewInventoryApp(&config.Config{}, txmocks.NewTxRepository(t), batchRepo, productmocks.NewProductRepository(t))

	allocation := []model.BatchAllocation{{BatchID: 1, Quantity: 5}, {BatchID: 2, Quantity: 2}}

	batchRepo.On("GetBatchesByIDTx", mock.Anything, mock.Anything, []uint64{1, 2}).Return([]model.Batch{
		{ID: 1, ProductID: 7, Quantity: 5, Status: constant.BatchStatusActive},
		{ID: 2, ProductID: 7, Quantity: 3, Status: constant.BatchStatusActive},
	}, nil).Once()
	batchRepo.On("UpdateBatchQuantityTx", mock.Anything, mock.Anything, uint64(1), int64(0), constant.BatchStatusDepleted).Return(nil).Once()
	batchRepo.On("UpdateBatchQuantityTx", mock.Anything, mock.Anything, uint64(2), int64(1), constant.BatchStatusActive).Return(nil).Once()

	// the second lookup sees the lots as the apply left them
	batchRepo.On("GetBatchesByIDTx", mock.Anything, mock.Anything, []uint64{1, 2}).Return([]model.Batch{
		{ID: 1, ProductID: 7, Quantity: 0, Status: constant.BatchStatusDepleted},
		{ID: 2, ProductID: 7, Quantity: 1, Status: constant.BatchStatusActive},
	}, nil).Once()
	batchRepo.On("UpdateBatchQuantityTx", mock.Anything, mock.Anything, uint64(1), int64(5), constant.BatchStatusActive).Return(nil).Once()
	batchRepo.On("UpdateBatchQuantityTx", mock.Anything, mock.Anything, uint64(2), int64(3), constant.BatchStatusActive).Return(nil).Once()

	ctx := context.Background()
	if err := app.ApplyAllocationTx(ctx, &sqlx.Tx{}, 7, allocation); err != nil {
		t.Fatalf("ApplyAllocationTx() error = %v", err)
	}
	if err := app.ReverseAllocationTx(ctx, &sqlx.Tx{}, 7, allocation); err != nil {
		t.Fatalf("ReverseAllocationTx() error = %v", err)
	}
}

func TestInventoryApp_CreateBatch(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		batchRepo   *batchmocks.BatchRepository
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx context.Context
		req *model.CreateBatchRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantID   uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: lot registered and product aggregate bumped",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateBatchRequest{
					ProductID:   7,
					Quantity:    10,
					BatchNumber: "LOT-2026-014",
					CostPrice:   decimal.NewFromInt(3),
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.productRepo.On("GetProductForUpdateTx", mock.Anything, tx, uint64(7)).Return(&model.Product{ID: 7, Quantity: 5}, nil).Once()
				f.batchRepo.On("InsertBatchTx", mock.Anything, tx, mock.MatchedBy(func(b *model.Batch) bool {
					return b.ProductID == 7 && b.Quantity == 10 && b.Status == constant.BatchStatusActive && b.BatchNumber == "LOT-2026-014"
				})).Return(uint64(11), nil).Once()
				f.productRepo.On("AdjustQuantityTx", mock.Anything, tx, uint64(7), int64(10)).Return(nil).Once()
			},
			wantID: 11,
		},
		{
			name: "error: non-positive quantity",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateBatchRequest{ProductID: 7, Quantity: 0},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: expiry before production",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateBatchRequest{
					ProductID:      7,
					Quantity:       10,
					ProductionDate: day("2026-03-10"),
					ExpiryDate:     day("2026-03-01"),
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: product missing",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateBatchRequest{ProductID: 404, Quantity: 10},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.productRepo.On("GetProductForUpdateTx", mock.Anything, tx, uint64(404)).Return(nil, sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appinventory.NewInventoryApp(tt.fields.config, tt.fields.txRepo, tt.fields.batchRepo, tt.fields.productRepo)

			got, err := app.CreateBatch(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateBatch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.ID != tt.wantID {
				t.Fatalf("CreateBatch() ID = %d, want %d", got.ID, tt.wantID)
			}
			if got.Status != constant.BatchStatusActive {
				t.Fatalf("CreateBatch() Status = %s, want %s", got.Status, constant.BatchStatusActive)
			}
		})
	}
}

func TestInventoryApp_CheckDateConflicts(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		batchRepo   *batchmocks.BatchRepository
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx            context.Context
		productID      uint64
		productionDate *time.Time
		expiryDate     *time.Time
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.DateConflict
		wantErr  bool
	}{
		{
			name: "conflict: expiry differs by calendar day",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				productID:      7,
				productionDate: day("2026-01-01"),
				expiryDate:     day("2026-03-05"),
			},
			mockCall: func(f fields) {
				f.batchRepo.On("GetActiveBatches", mock.Anything, uint64(7)).Return([]model.Batch{
					{ID: 1, ProductID: 7, Quantity: 5, ProductionDate: day("2026-01-01"), ExpiryDate: day("2026-03-05")},
					{ID: 2, ProductID: 7, Quantity: 5, ProductionDate: day("2026-01-01"), ExpiryDate: day("2026-03-03")},
				}, nil).Once()
			},
			want: &model.DateConflict{ProductID: 7, BatchIDs: []uint64{2}},
		},
		{
			name: "no conflict: same day different clock time",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				productID:      7,
				productionDate: func() *time.Time { d := time.Date(2026, 1, 1, 23, 0, 0, 0, time.UTC); return &d }(),
				expiryDate:     nil,
			},
			mockCall: func(f fields) {
				f.batchRepo.On("GetActiveBatches", mock.Anything, uint64(7)).Return([]model.Batch{
					{ID: 1, ProductID: 7, Quantity: 5, ProductionDate: day("2026-01-01")},
				}, nil).Once()
			},
			want: nil,
		},
		{
			name: "no conflict: unknown dates on the incoming lot",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				productID: 7,
			},
			mockCall: func(f fields) {
				f.batchRepo.On("GetActiveBatches", mock.Anything, uint64(7)).Return([]model.Batch{
					{ID: 1, ProductID: 7, Quantity: 5, ProductionDate: day("2026-01-01"), ExpiryDate: day("2026-03-03")},
				}, nil).Once()
			},
			want: nil,
		},
		{
			name: "no conflict: emptied lots are ignored",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				batchRepo:   batchmocks.NewBatchRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:            context.Background(),
				productID:      7,
				productionDate: day("2026-02-01"),
			},
			mockCall: func(f fields) {
				f.batchRepo.On("GetActiveBatches", mock.Anything, uint64(7)).Return([]model.Batch{
					{ID: 1, ProductID: 7, Quantity: 0, ProductionDate: day("2026-01-01")},
				}, nil).Once()
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appinventory.NewInventoryApp(tt.fields.config, tt.fields.txRepo, tt.fields.batchRepo, tt.fields.productRepo)

			got, err := app.CheckDateConflicts(tt.args.ctx, tt.args.productID, tt.args.productionDate, tt.args.expiryDate)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckDateConflicts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CheckDateConflicts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
