package handler

import (
	"net/http"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/adapter/http/dto"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles Google sign-in endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// GoogleLogin handles GET /auth/google. The consent URL is returned in the
// body rather than as a redirect so non-browser clients can drive the flow.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	url, err := h.authSvc.GoogleAuthURL(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AuthURLResponse{AuthorizationURL: url})
}

// GoogleCallback handles GET /auth/google/callback.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")

	result, err := h.authSvc.HandleGoogleCallback(c.Request.Context(), state, code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKMsg(c, "login successful", dto.LoginResponse{
		AccessToken: result.Token,
		TokenType:   "bearer",
		ExpiresAt:   result.ExpiresAt.UTC().Format(time.RFC3339),
		User: dto.UserResponse{
			ID:       result.User.ID.String(),
			Email:    result.User.Email,
			FullName: result.User.FullName,
		},
		Wallet: dto.WalletResponse{
			WalletNumber: result.Wallet.WalletNumber,
			Balance:      result.Wallet.Balance,
			Currency:     result.Wallet.Currency,
		},
	})
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
