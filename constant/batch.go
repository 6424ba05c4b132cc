package constant

type BatchStatus string

const (
	BatchStatusActive   BatchStatus = "Active"
	BatchStatusExpired  BatchStatus = "Expired"
	BatchStatusDepleted BatchStatus = "Depleted"
)

// StockAlert codes are advisory markers attached to allocation results.
// None of them blocks an operation except through the CanFulfill flag that
// accompanies INSUFFICIENT_STOCK and NO_STOCK.
type StockAlert string

const (
	AlertMultipleBatches   StockAlert = "MULTIPLE_BATCHES"
	AlertNearExpiry        StockAlert = "NEAR_EXPIRY"
	AlertInsufficientStock StockAlert = "INSUFFICIENT_STOCK"
	AlertNoStock           StockAlert = "NO_STOCK"
	AlertSimpleQuantity    StockAlert = "SIMPLE_QUANTITY"
	AlertDateConflict      StockAlert = "DATE_CONFLICT"
)
