package constant

type SupplierOrderStatus string

const (
	SupplierOrderStatusPending           SupplierOrderStatus = "Pending"
	SupplierOrderStatusAccepted          SupplierOrderStatus = "Accepted"
	SupplierOrderStatusPartiallyAccepted SupplierOrderStatus = "PartiallyAccepted"
	SupplierOrderStatusDeclined          SupplierOrderStatus = "Declined"
	SupplierOrderStatusDelivered         SupplierOrderStatus = "Delivered"
)

func (s SupplierOrderStatus) CanTransitionTo(target SupplierOrderStatus) bool {
	switch s {
	case SupplierOrderStatusPending:
		return target == SupplierOrderStatusAccepted ||
			target == SupplierOrderStatusPartiallyAccepted ||
			target == SupplierOrderStatusDeclined
	case SupplierOrderStatusAccepted:
		return target == SupplierOrderStatusDelivered
	case SupplierOrderStatusPartiallyAccepted:
		// confirm narrows the order to its accepted lines
		return target == SupplierOrderStatusAccepted || target == SupplierOrderStatusDelivered
	default:
		return false
	}
}

func (s SupplierOrderStatus) IsTerminal() bool {
	return s == SupplierOrderStatusDeclined || s == SupplierOrderStatusDelivered
}

// SupplierItemStatus is empty while the supplier has not decided on the line.
type SupplierItemStatus string

const (
	SupplierItemStatusAccepted SupplierItemStatus = "Accepted"
	SupplierItemStatusDeclined SupplierItemStatus = "Declined"
)
