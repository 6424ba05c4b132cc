package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        uint64          `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Phone     string          `db:"phone" json:"phone,omitempty"`
	Balance   decimal.Decimal `db:"balance" json:"balance"`
	Latitude  *float64        `db:"latitude" json:"latitude,omitempty"`
	Longitude *float64        `db:"longitude" json:"longitude,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

type CreateCustomerRequest struct {
	Name      string   `json:"name" validate:"required"`
	Phone     string   `json:"phone" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type CustomerListResponse struct {
	Items      []Customer `json:"items"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
}
