package model

import (
	"time"

	"github.com/bobursolih/market-backend/constant"
)

// UserEntity represents the user table entity. SupplierID links a
// supplier-role login to its supplier record.
type UserEntity struct {
	ID           uint64        `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	Email        string        `db:"email" json:"email"`
	Phone        string        `db:"phone" json:"phone"`
	PasswordHash string        `db:"password_hash" json:"-"`
	Role         constant.Role `db:"role" json:"role"`
	SupplierID   *uint64       `db:"supplier_id" json:"supplier_id,omitempty"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time    `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
	Phone string
}

// Actor identifies who performs a state-changing operation. Staff actors
// come from the auth middleware, customer actors from internal endpoints.
// SupplierID is set only for supplier-role actors.
type Actor struct {
	ID         uint64        `json:"id"`
	Role       constant.Role `json:"role"`
	SupplierID *uint64       `json:"supplier_id,omitempty"`
}

// RegisterRequest for user registration. SupplierID is required for the
// supplier role and rejected for everything else.
type RegisterRequest struct {
	Name       string        `json:"name" validate:"required"`
	Email      string        `json:"email" validate:"required,email"`
	Phone      string        `json:"phone" validate:"required"`
	Password   string        `json:"password" validate:"required,min=6"`
	Role       constant.Role `json:"role" validate:"required,oneof=admin worker courier supplier"`
	SupplierID *uint64       `json:"supplier_id,omitempty"`
}

// LoginRequest for user login (accepts email or phone)
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email or phone
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  constant.Role `json:"role"`
	Token string        `json:"token"`
}

type RegisterResponse struct {
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  constant.Role `json:"role"`
}
