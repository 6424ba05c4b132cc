package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bobursolih/market-backend/constant"
)

type Batch struct {
	ID              uint64               `db:"id" json:"id"`
	ProductID       uint64               `db:"product_id" json:"product_id"`
	Quantity        int64                `db:"quantity" json:"quantity"`
	ProductionDate  *time.Time           `db:"production_date" json:"production_date,omitempty"`
	ExpiryDate      *time.Time           `db:"expiry_date" json:"expiry_date,omitempty"`
	BatchNumber     string               `db:"batch_number" json:"batch_number,omitempty"`
	ReceivedDate    time.Time            `db:"received_date" json:"received_date"`
	CostPrice       decimal.Decimal      `db:"cost_price" json:"cost_price"`
	Status          constant.BatchStatus `db:"status" json:"status"`
	SupplierID      *uint64              `db:"supplier_id" json:"supplier_id,omitempty"`
	SupplierOrderID *uint64              `db:"supplier_order_id" json:"supplier_order_id,omitempty"`
	CreatedAt       time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
}

// BatchAllocation and ProductAllocation are the persisted allocation snapshot
// shape. The camelCase keys are read back by storefront clients, do not
// rename them.
type BatchAllocation struct {
	BatchID  uint64 `json:"batchId"`
	Quantity int64  `json:"quantity"`
}

type ProductAllocation struct {
	ProductID  uint64            `json:"productId"`
	Allocation []BatchAllocation `json:"allocation"`
}

// EncodeAllocationSnapshot serializes per-lot deductions for storage on the
// order row. An empty plan encodes to an empty string, not "[]", so orders
// with no lot-backed items keep the column blank.
func EncodeAllocationSnapshot(plan []ProductAllocation) (string, error) {
	if len(plan) == 0 {
		return "", nil
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeAllocationSnapshot parses a stored snapshot. Callers treat an error
// the same as an absent snapshot and fall back to aggregate restoration.
func DecodeAllocationSnapshot(snapshot string) ([]ProductAllocation, error) {
	if snapshot == "" {
		return nil, nil
	}
	var plan []ProductAllocation
	if err := json.Unmarshal([]byte(snapshot), &plan); err != nil {
		return nil, err
	}
	return plan, nil
}

type AllocationResult struct {
	ProductID      uint64                `json:"product_id"`
	Required       int64                 `json:"required"`
	CanFulfill     bool                  `json:"can_fulfill"`
	TotalAvailable int64                 `json:"total_available"`
	Allocation     []BatchAllocation     `json:"allocation"`
	Alerts         []constant.StockAlert `json:"alerts,omitempty"`
}

func (r *AllocationResult) HasAlert(alert constant.StockAlert) bool {
	for _, a := range r.Alerts {
		if a == alert {
			return true
		}
	}
	return false
}

type CreateBatchRequest struct {
	ProductID       uint64          `json:"product_id" validate:"required"`
	Quantity        int64           `json:"quantity" validate:"required,gt=0"`
	ProductionDate  *time.Time      `json:"production_date"`
	ExpiryDate      *time.Time      `json:"expiry_date"`
	BatchNumber     string          `json:"batch_number"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	ReceivedDate    *time.Time      `json:"received_date"`
	SupplierID      *uint64         `json:"supplier_id"`
	SupplierOrderID *uint64         `json:"supplier_order_id"`
}

// DateConflict lists active lots of a product whose production or expiry
// dates differ from an incoming lot. Advisory only.
type DateConflict struct {
	ProductID uint64   `json:"product_id"`
	BatchIDs  []uint64 `json:"batch_ids"`
}

// DateConflictRequest previews conflicts for a lot before it is registered.
type DateConflictRequest struct {
	ProductID      uint64     `json:"product_id" validate:"required"`
	ProductionDate *time.Time `json:"production_date"`
	ExpiryDate     *time.Time `json:"expiry_date"`
}
