package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("WAL_002", "Cannot transfer to your own wallet", http.StatusBadRequest),
			expected: "[WAL_002] Cannot transfer to your own wallet",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("WAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestWalletErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InsufficientFunds", ErrInsufficientFunds(500, 2000), "WAL_001", 400},
		{"SelfTransfer", ErrSelfTransfer(), "WAL_002", 400},
		{"BelowMinimumDeposit", ErrBelowMinimumDeposit(100), "WAL_003", 400},
		{"NotFound", ErrNotFound("Wallet"), "WAL_004", 404},
		{"DuplicateTransaction", ErrDuplicateTransaction(), "WAL_005", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInsufficientFundsContext(t *testing.T) {
	err := ErrInsufficientFunds(500, 2000)
	assert.Equal(t, int64(500), err.Context["balance"])
	assert.Equal(t, int64(2000), err.Context["required"])
}

func TestSignatureErrors(t *testing.T) {
	missing := ErrMissingSignature()
	assert.Equal(t, "SEC_001", missing.Code)
	assert.Equal(t, 400, missing.HTTPStatus)

	invalid := ErrInvalidSignature()
	assert.Equal(t, "SEC_002", invalid.Code)
	assert.Equal(t, 401, invalid.HTTPStatus)
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"AuthenticationRequired", ErrAuthenticationRequired(), "AUTH_001", 401},
		{"InvalidToken", ErrInvalidToken(), "AUTH_002", 401},
		{"InvalidAPIKey", ErrInvalidAPIKey(), "AUTH_003", 401},
		{"PermissionDenied", ErrPermissionDenied("transfer"), "AUTH_004", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestKeyErrors(t *testing.T) {
	limit := ErrKeyLimitReached(5)
	assert.Equal(t, "KEY_001", limit.Code)
	assert.Equal(t, 400, limit.HTTPStatus)
	assert.Contains(t, limit.Message, "5")

	notExpired := ErrKeyNotExpired()
	assert.Equal(t, "KEY_002", notExpired.Code)
	assert.Equal(t, 400, notExpired.HTTPStatus)
}

func TestGatewayError(t *testing.T) {
	inner := fmt.Errorf("dial tcp: i/o timeout")
	err := ErrGateway(inner)
	assert.Equal(t, "GTW_001", err.Code)
	assert.Equal(t, 502, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Transaction")
	assert.Contains(t, err.Message, "Transaction")
	assert.Equal(t, "WAL_004", err.Code)
}

func TestPermissionDeniedMessage(t *testing.T) {
	err := ErrPermissionDenied("deposit")
	assert.Contains(t, err.Message, "deposit")
}
