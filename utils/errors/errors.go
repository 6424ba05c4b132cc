package errors

import (
	goerrors "errors"

	"github.com/bobursolih/market-backend/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// Is reports whether err is a CustomError of the given type. Services use
// it to pass domain errors through untouched while wrapping everything else
// as internal.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if goerrors.As(err, &ce) {
		return ce.errType == errorType
	}
	return false
}

// IsCustom reports whether err carries a domain error type at all.
func IsCustom(err error) bool {
	var ce CustomError
	return goerrors.As(err, &ce)
}
