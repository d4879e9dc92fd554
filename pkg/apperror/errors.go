package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	Context    map[string]any `json:"context,omitempty"`
	HTTPStatus int            `json:"-"`
	Err        error          `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithContext attaches machine-readable details to the error.
func (e *AppError) WithContext(ctx map[string]any) *AppError {
	e.Context = ctx
	return e
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet Business Logic (WAL) ----

func ErrInsufficientFunds(balance, required int64) *AppError {
	return New("WAL_001", "Insufficient balance in wallet", http.StatusBadRequest).
		WithContext(map[string]any{"balance": balance, "required": required})
}

func ErrSelfTransfer() *AppError {
	return New("WAL_002", "Cannot transfer to your own wallet", http.StatusBadRequest)
}

func ErrBelowMinimumDeposit(minimum int64) *AppError {
	return New("WAL_003", fmt.Sprintf("Minimum deposit is %d kobo", minimum), http.StatusBadRequest).
		WithContext(map[string]any{"minimum": minimum})
}

func ErrNotFound(entity string) *AppError {
	return New("WAL_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrDuplicateTransaction() *AppError {
	return New("WAL_005", "Duplicate transaction", http.StatusConflict)
}

// ---- Webhook Security (SEC) ----

func ErrMissingSignature() *AppError {
	return New("SEC_001", "Missing webhook signature", http.StatusBadRequest)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid webhook signature", http.StatusUnauthorized)
}

// ---- Authentication & Authorization (AUTH) ----

func ErrAuthenticationRequired() *AppError {
	return New("AUTH_001", "Authentication required", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidAPIKey() *AppError {
	return New("AUTH_003", "Invalid, expired or revoked API key", http.StatusUnauthorized)
}

func ErrPermissionDenied(permission string) *AppError {
	return New("AUTH_004", fmt.Sprintf("Missing required permission: %s", permission), http.StatusForbidden)
}

// ---- API Key Management (KEY) ----

func ErrKeyLimitReached(limit int) *AppError {
	return New("KEY_001", fmt.Sprintf("Maximum of %d active API keys reached", limit), http.StatusBadRequest)
}

func ErrKeyNotExpired() *AppError {
	return New("KEY_002", "API key has not expired yet", http.StatusBadRequest)
}

// ---- Payment Gateway (GTW) ----

func ErrGateway(err error) *AppError {
	return Wrap("GTW_001", "Payment gateway request failed", http.StatusBadGateway, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
