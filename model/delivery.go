package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bobursolih/market-backend/constant"
)

type Delivery struct {
	ID               uint64                 `db:"id" json:"id"`
	OrderID          uint64                 `db:"order_id" json:"order_id"`
	CourierID        uint64                 `db:"courier_id" json:"courier_id"`
	AssignedAt       time.Time              `db:"assigned_at" json:"assigned_at"`
	StartedAt        *time.Time             `db:"started_at" json:"started_at,omitempty"`
	EndedAt          *time.Time             `db:"ended_at" json:"ended_at,omitempty"`
	EstimatedMinutes int64                  `db:"estimated_minutes" json:"estimated_minutes"`
	ActualMinutes    *int64                 `db:"actual_minutes" json:"actual_minutes,omitempty"`
	DelayReason      string                 `db:"delay_reason" json:"delay_reason,omitempty"`
	PaymentMethod    constant.PaymentMethod `db:"payment_method" json:"payment_method,omitempty"`
	AmountPaid       decimal.Decimal        `db:"amount_paid" json:"amount_paid"`
	CourierLat       *float64               `db:"courier_lat" json:"courier_lat,omitempty"`
	CourierLng       *float64               `db:"courier_lng" json:"courier_lng,omitempty"`
	CustomerLat      *float64               `db:"customer_lat" json:"customer_lat,omitempty"`
	CustomerLng      *float64               `db:"customer_lng" json:"customer_lng,omitempty"`
}

type Courier struct {
	UserID      uint64     `db:"user_id" json:"user_id"`
	Name        string     `db:"name" json:"name"`
	IsAvailable bool       `db:"is_available" json:"is_available"`
	Latitude    *float64   `db:"latitude" json:"latitude,omitempty"`
	Longitude   *float64   `db:"longitude" json:"longitude,omitempty"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type AssignDeliveryRequest struct {
	CourierID        uint64   `json:"courier_id" validate:"required"`
	OrderIDs         []uint64 `json:"order_ids" validate:"required,min=1"`
	EstimatedMinutes int64    `json:"estimated_minutes" validate:"required,gt=0"`
}

type StartDeliveryRequest struct {
	OrderIDs []uint64 `json:"order_ids" validate:"required,min=1"`
}

type UpdateEstimateRequest struct {
	EstimatedMinutes int64  `json:"estimated_minutes" validate:"required,gt=0"`
	Reason           string `json:"reason"`
}

type CompleteDeliveryRequest struct {
	AmountPaid decimal.Decimal `json:"amount_paid"`
}

type ReturnDeliveryRequest struct {
	Note string `json:"note"`
}

type CourierLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}
