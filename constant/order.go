package constant

type CustomerOrderStatus string

const (
	OrderStatusPending   CustomerOrderStatus = "Pending"
	OrderStatusAccepted  CustomerOrderStatus = "Accepted"
	OrderStatusPreparing CustomerOrderStatus = "Preparing"
	OrderStatusPrepared  CustomerOrderStatus = "Prepared"
	OrderStatusAssigned  CustomerOrderStatus = "Assigned"
	OrderStatusOnTheWay  CustomerOrderStatus = "on_theway"
	OrderStatusShipped   CustomerOrderStatus = "Shipped"
	OrderStatusRejected  CustomerOrderStatus = "Rejected"
	OrderStatusCancelled CustomerOrderStatus = "Cancelled"
	OrderStatusReturned  CustomerOrderStatus = "Returned"
)

// CanTransitionTo reports whether the order status graph allows moving to
// target. Role checks live in the application layer, this is state only.
func (s CustomerOrderStatus) CanTransitionTo(target CustomerOrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusAccepted || target == OrderStatusRejected || target == OrderStatusCancelled
	case OrderStatusAccepted:
		return target == OrderStatusPreparing || target == OrderStatusRejected || target == OrderStatusCancelled
	case OrderStatusPreparing:
		return target == OrderStatusPrepared || target == OrderStatusRejected || target == OrderStatusCancelled
	case OrderStatusPrepared:
		return target == OrderStatusAssigned || target == OrderStatusRejected || target == OrderStatusCancelled
	case OrderStatusAssigned:
		return target == OrderStatusOnTheWay || target == OrderStatusRejected || target == OrderStatusCancelled
	case OrderStatusOnTheWay:
		return target == OrderStatusShipped || target == OrderStatusReturned ||
			target == OrderStatusRejected || target == OrderStatusCancelled
	case OrderStatusShipped:
		// post-sale reversal, admin only
		return target == OrderStatusCancelled
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible except the
// admin cancel of a shipped order.
func (s CustomerOrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusRejected, OrderStatusCancelled, OrderStatusReturned:
		return true
	default:
		return false
	}
}

// HoldsAllocation reports whether stock deducted during preparation is still
// held by the order, i.e. cancelling it must put inventory back.
func (s CustomerOrderStatus) HoldsAllocation() bool {
	switch s {
	case OrderStatusPrepared, OrderStatusAssigned, OrderStatusOnTheWay, OrderStatusShipped:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodDebt    PaymentMethod = "debt"
	PaymentMethodPartial PaymentMethod = "partial"
)

type PreparerStatus string

const (
	PreparerStatusWorking   PreparerStatus = "working"
	PreparerStatusCompleted PreparerStatus = "completed"
	PreparerStatusCancelled PreparerStatus = "cancelled"
)
