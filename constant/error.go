package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrInvalidState
	ErrInsufficientStock
	ErrInvalidBatch
	ErrStateConflict
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrCredentialExists:  "email or phone already exists",
	ErrInvalidPassword:   "password invalid",
	ErrInvalidState:      "operation not allowed in current status",
	ErrInsufficientStock: "insufficient stock",
	ErrInvalidBatch:      "invalid batch reference",
	ErrStateConflict:     "order was modified concurrently, retry",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrCredentialExists:  http.StatusBadRequest,
	ErrInvalidPassword:   http.StatusBadRequest,
	ErrInvalidState:      http.StatusConflict,
	ErrInsufficientStock: http.StatusUnprocessableEntity,
	ErrInvalidBatch:      http.StatusUnprocessableEntity,
	ErrStateConflict:     http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrCredentialExists:  "0005",
	ErrInvalidPassword:   "0006",
	ErrInvalidState:      "0007",
	ErrInsufficientStock: "0008",
	ErrInvalidBatch:      "0009",
	ErrStateConflict:     "0010",
}
