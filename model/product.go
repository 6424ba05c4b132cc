package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        uint64          `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	LowStock  int64           `db:"low_stock" json:"low_stock"`
	CostPrice decimal.Decimal `db:"cost_price" json:"cost_price"`
	SellPrice decimal.Decimal `db:"sell_price" json:"sell_price"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
}

type ProductListItem struct {
	ID         uint64          `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	Quantity   int64           `db:"quantity" json:"quantity"`
	LowStock   int64           `db:"low_stock" json:"low_stock"`
	SellPrice  decimal.Decimal `db:"sell_price" json:"sell_price"`
	ActiveLots int64           `db:"active_lots" json:"active_lots"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}
