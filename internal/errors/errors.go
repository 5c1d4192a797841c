package errors

import "fmt"

type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code, message string, cause ...error) *AppError {
	var c error
	if len(cause) > 0 {
		c = cause[0]
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   c,
	}
}

var (
	ErrConfigNotFound = &AppError{Code: "CONFIG_001", Message: "configuration not found"}
	ErrConfigInvalid  = &AppError{Code: "CONFIG_002", Message: "invalid configuration"}

	ErrImportMalformed = &AppError{Code: "IMPORT_001", Message: "malformed import data"}
	ErrImportMismatch  = &AppError{Code: "IMPORT_002", Message: "import data belongs to another activity"}

	ErrActivityNotFound = &AppError{Code: "ACT_001", Message: "activity not found"}
	ErrInvalidInput     = &AppError{Code: "ACT_002", Message: "invalid activity input"}

	ErrStateCorrupted = &AppError{Code: "STORE_001", Message: "persisted state corrupted"}
	ErrStoreClosed    = &AppError{Code: "STORE_002", Message: "store closed"}

	ErrNotFound = &AppError{Code: "GEN_001", Message: "resource not found"}
	ErrInternal = &AppError{Code: "GEN_002", Message: "internal error"}
)

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}
