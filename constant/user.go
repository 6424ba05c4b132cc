package constant

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleWorker   Role = "worker"
	RoleCourier  Role = "courier"
	RoleSupplier Role = "supplier"
	// RoleCustomer is never a login role, customer-initiated calls arrive
	// through the internal API with the customer id in the payload.
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleWorker, RoleCourier, RoleSupplier:
		return true
	default:
		return false
	}
}

type ctxKey string

// ActorKey carries the authenticated actor on request contexts.
const ActorKey ctxKey = "actor"
