package model

import (
	"time"

	"github.com/bobursolih/market-backend/constant"
)

// ActivityLog is one append-only audit row. Status fields are plain strings
// since the log covers both order families.
type ActivityLog struct {
	ID             uint64               `db:"id" json:"id"`
	OrderType      constant.OrderType   `db:"order_type" json:"order_type"`
	OrderID        uint64               `db:"order_id" json:"order_id"`
	ActorID        uint64               `db:"actor_id" json:"actor_id"`
	ActorRole      constant.Role        `db:"actor_role" json:"actor_role"`
	Action         constant.AuditAction `db:"action" json:"action"`
	PreviousStatus string               `db:"previous_status" json:"previous_status,omitempty"`
	NewStatus      string               `db:"new_status" json:"new_status,omitempty"`
	Note           string               `db:"note" json:"note,omitempty"`
	CreatedAt      time.Time            `db:"created_at" json:"created_at"`
}
