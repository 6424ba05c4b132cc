package constant

// OrderType distinguishes the two order families in the activity log.
type OrderType string

const (
	OrderTypeCustomer OrderType = "customer"
	OrderTypeSupplier OrderType = "supplier"
)

type AuditAction string

const (
	ActionCreate              AuditAction = "create"
	ActionAccept              AuditAction = "accept"
	ActionReject              AuditAction = "reject"
	ActionStartPreparation    AuditAction = "start_preparation"
	ActionCompletePreparation AuditAction = "complete_preparation"
	ActionCancel              AuditAction = "cancel"
	ActionPayDebt             AuditAction = "pay_debt"
	ActionRespond             AuditAction = "respond"
	ActionConfirm             AuditAction = "confirm"
	ActionDeliver             AuditAction = "deliver"
	ActionAssignDelivery      AuditAction = "assign_delivery"
	ActionStartDelivery       AuditAction = "start_delivery"
	ActionUpdateEstimate      AuditAction = "update_estimate"
	ActionCompleteDelivery    AuditAction = "complete_delivery"
	ActionReturnDelivery      AuditAction = "return_delivery"
)
