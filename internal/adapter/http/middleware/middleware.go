package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/apperror"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderAPIKey carries a machine credential.
	HeaderAPIKey = "x-api-key"
	// HeaderRequestID echoes the request id back to the caller.
	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxPrincipal = "principal"
	CtxRequestID = "request_id"
)

// RequestID assigns every request an id, carried in logs and response
// envelopes. An id supplied by the caller is kept.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// Authenticate resolves the caller into a Principal from either a Bearer
// JWT or an x-api-key credential. JWT principals act with every permission;
// API key principals act with the grants minted into the key.
func Authenticate(
	tokenSvc ports.TokenService,
	keySvc ports.APIKeyService,
	userRepo ports.UserRepository,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				response.Error(c, apperror.ErrInvalidToken())
				c.Abort()
				return
			}
			claims, err := tokenSvc.Validate(token)
			if err != nil {
				response.Error(c, apperror.ErrInvalidToken())
				c.Abort()
				return
			}
			c.Set(CtxPrincipal, &domain.Principal{
				UserID:      claims.UserID,
				Email:       claims.Email,
				Method:      domain.AuthMethodJWT,
				Permissions: domain.AllPermissions(),
			})
			c.Next()
			return
		}

		if plaintext := c.GetHeader(HeaderAPIKey); plaintext != "" {
			key, err := keySvc.ResolveKey(c.Request.Context(), plaintext)
			if err != nil {
				response.Error(c, err)
				c.Abort()
				return
			}
			owner, err := userRepo.GetByID(c.Request.Context(), key.UserID)
			if err != nil {
				log.Error().Err(err).Str("key_id", key.ID.String()).Msg("failed to load key owner")
				response.Error(c, apperror.InternalError(err))
				c.Abort()
				return
			}
			if owner == nil {
				response.Error(c, apperror.ErrInvalidAPIKey())
				c.Abort()
				return
			}
			c.Set(CtxPrincipal, &domain.Principal{
				UserID:      key.UserID,
				Email:       owner.Email,
				Method:      domain.AuthMethodAPIKey,
				Permissions: key.Permissions,
			})
			c.Next()
			return
		}

		response.Error(c, apperror.ErrAuthenticationRequired())
		c.Abort()
	}
}

// RequirePermission gates a route on a single permission grant.
func RequirePermission(perm domain.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			response.Error(c, apperror.ErrAuthenticationRequired())
			c.Abort()
			return
		}
		if !principal.HasPermission(perm) {
			response.Error(c, apperror.ErrPermissionDenied(string(perm)))
			c.Abort()
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the principal resolved by Authenticate.
func PrincipalFrom(c *gin.Context) (*domain.Principal, bool) {
	v, exists := c.Get(CtxPrincipal)
	if !exists {
		return nil, false
	}
	p, ok := v.(*domain.Principal)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("request_id", c.GetString(CtxRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
