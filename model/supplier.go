package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bobursolih/market-backend/constant"
)

type Supplier struct {
	ID        uint64    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type SupplierOrder struct {
	ID         uint64                       `db:"id" json:"id"`
	SupplierID uint64                       `db:"supplier_id" json:"supplier_id"`
	Status     constant.SupplierOrderStatus `db:"status" json:"status"`
	TotalCost  decimal.Decimal              `db:"total_cost" json:"total_cost"`
	CreatedAt  time.Time                    `db:"created_at" json:"created_at"`
	UpdatedAt  *time.Time                   `db:"updated_at" json:"updated_at,omitempty"`

	Items []SupplierOrderItem `json:"items,omitempty"`
}

type SupplierOrderItem struct {
	ID               uint64                      `db:"id" json:"id"`
	SupplierOrderID  uint64                      `db:"supplier_order_id" json:"supplier_order_id"`
	ProductID        uint64                      `db:"product_id" json:"product_id"`
	ProductName      string                      `db:"product_name" json:"product_name,omitempty"`
	Status           constant.SupplierItemStatus `db:"status" json:"status,omitempty"`
	Quantity         int64                       `db:"quantity" json:"quantity"`
	ReceivedQuantity *int64                      `db:"received_quantity" json:"received_quantity,omitempty"`
	CostPrice        decimal.Decimal             `db:"cost_price" json:"cost_price"`
	Subtotal         decimal.Decimal             `db:"subtotal" json:"subtotal"`
	ProductionDate   *time.Time                  `db:"production_date" json:"production_date,omitempty"`
	ExpiryDate       *time.Time                  `db:"expiry_date" json:"expiry_date,omitempty"`
	BatchNumber      string                      `db:"batch_number" json:"batch_number,omitempty"`
}

type CreateSupplierOrderItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type CreateSupplierOrderRequest struct {
	SupplierID uint64                           `json:"supplier_id" validate:"required"`
	Items      []CreateSupplierOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SupplierItemDecision carries the supplier verdict on one order line.
// Adjustment fields apply only to accepted lines, nil keeps the ordered
// value.
type SupplierItemDecision struct {
	ItemID         uint64                      `json:"item_id" validate:"required"`
	Decision       constant.SupplierItemStatus `json:"decision" validate:"required,oneof=Accepted Declined"`
	Quantity       *int64                      `json:"quantity,omitempty"`
	CostPrice      *decimal.Decimal            `json:"cost_price,omitempty"`
	ProductionDate *time.Time                  `json:"production_date,omitempty"`
	ExpiryDate     *time.Time                  `json:"expiry_date,omitempty"`
	BatchNumber    *string                     `json:"batch_number,omitempty"`
}

// ReceivedItem overrides the received quantity of one accepted line at
// delivery time, for short shipments.
type ReceivedItem struct {
	ItemID   uint64 `json:"item_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

// SupplierTransitionRequest drives the supplier transition endpoint.
// Decisions are read when the target is a response status, Received when
// the target is Delivered.
type SupplierTransitionRequest struct {
	Target    constant.SupplierOrderStatus `json:"target_status" validate:"required"`
	Decisions []SupplierItemDecision       `json:"decisions,omitempty" validate:"omitempty,dive"`
	Received  []ReceivedItem               `json:"received,omitempty" validate:"omitempty,dive"`
}

type SupplierDeliveryResult struct {
	Order     *SupplierOrder `json:"order"`
	Batches   []Batch        `json:"batches"`
	Conflicts []DateConflict `json:"date_conflicts,omitempty"`
}

type SupplierOrderListResponse struct {
	Items      []SupplierOrder `json:"items"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
}
