package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bobursolih/market-backend/constant"
)

type CustomerOrder struct {
	ID              uint64                       `db:"id" json:"id"`
	CustomerID      uint64                       `db:"customer_id" json:"customer_id"`
	Status          constant.CustomerOrderStatus `db:"status" json:"status"`
	TotalCost       decimal.Decimal              `db:"total_cost" json:"total_cost"`
	Discount        decimal.Decimal              `db:"discount" json:"discount"`
	AmountPaid      decimal.Decimal              `db:"amount_paid" json:"amount_paid"`
	PaymentMethod   constant.PaymentMethod       `db:"payment_method" json:"payment_method,omitempty"`
	BatchAllocation string                       `db:"batch_allocation" json:"-"`
	CourierID       *uint64                      `db:"courier_id" json:"courier_id,omitempty"`
	CreatedAt       time.Time                    `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time                   `db:"updated_at" json:"updated_at,omitempty"`

	Items       []OrderItem         `json:"items,omitempty"`
	Allocations []ProductAllocation `json:"batch_allocation,omitempty"`
}

// Outstanding is the unpaid remainder of the order. Never negative.
func (o *CustomerOrder) Outstanding() decimal.Decimal {
	out := o.TotalCost.Sub(o.AmountPaid)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

type OrderItem struct {
	ID          uint64          `db:"id" json:"id"`
	OrderID     uint64          `db:"order_id" json:"order_id"`
	ProductID   uint64          `db:"product_id" json:"product_id"`
	ProductName string          `db:"product_name" json:"product_name,omitempty"`
	Quantity    int64           `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	Subtotal    decimal.Decimal `db:"subtotal" json:"subtotal"`
}

type OrderPreparer struct {
	ID        uint64                  `db:"id" json:"id"`
	OrderID   uint64                  `db:"order_id" json:"order_id"`
	WorkerID  uint64                  `db:"worker_id" json:"worker_id"`
	Status    constant.PreparerStatus `db:"status" json:"status"`
	CreatedAt time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time              `db:"updated_at" json:"updated_at,omitempty"`
}

type CreateOrderItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	CustomerID uint64                   `json:"customer_id" validate:"required"`
	Discount   decimal.Decimal          `json:"discount"`
	Items      []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderTransitionRequest drives the generic transition endpoint. Manual is
// only read when the target is Prepared, Note only for Rejected/Cancelled.
type OrderTransitionRequest struct {
	Target constant.CustomerOrderStatus `json:"target_status" validate:"required"`
	Note   string                       `json:"note"`
	Manual []ProductAllocation          `json:"manual_allocations,omitempty"`
}

type PayDebtRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// InternalCancelRequest is sent by the storefront service when a customer
// cancels their own order.
type InternalCancelRequest struct {
	CustomerID uint64 `json:"customer_id" validate:"required"`
	Note       string `json:"note"`
}

type PreparationResult struct {
	Order       *CustomerOrder        `json:"order"`
	Allocations []ProductAllocation   `json:"batch_allocation"`
	Alerts      []constant.StockAlert `json:"alerts,omitempty"`
}

type OrderListResponse struct {
	Items      []CustomerOrder `json:"items"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
}
