package errors

import (
	"net/http"

	"mesauth/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Retryable reports whether the failure class is transient and the caller may
// retry with backoff. Everything except store-availability failures is
// non-retryable without changed input.
func (e *BaseError) Retryable() bool {
	return e.errorCode == ErrStoreUnavailable.errorCode
}

// Predefined error types
var (
	// Credential-related errors.
	// Unknown-user and wrong-password both collapse into ErrInvalidCredentials
	// so responses cannot be used for username enumeration.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"使用者名稱或密碼錯誤",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_INACTIVE",
		"帳號已被停用",
		"",
	)

	// Token-related errors
	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"權杖已過期",
		"",
	)

	ErrTokenRevoked = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REVOKED",
		"重新整理權杖已被撤銷",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"無效的權杖",
		"",
	)

	// Password-related errors
	ErrPasswordTooWeak = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_WEAK",
		"密碼強度不足",
		"",
	)

	ErrPasswordMatchesOld = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MATCHES_OLD",
		"新密碼不可與目前密碼相同",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	// User-related errors
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"此使用者名稱或員工編號已被註冊",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"無效的角色",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// ErrStoreUnavailable is the only retryable failure class: the backing
	// store timed out or was unreachable.
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"服務暫時無法使用，請稍後再試",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
