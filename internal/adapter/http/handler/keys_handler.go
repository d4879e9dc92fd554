package handler

import (
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/adapter/http/dto"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/adapter/http/middleware"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/apperror"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeysHandler handles API key self-service endpoints.
type KeysHandler struct {
	keySvc ports.APIKeyService
}

// NewKeysHandler creates a new KeysHandler.
func NewKeysHandler(keySvc ports.APIKeyService) *KeysHandler {
	return &KeysHandler{keySvc: keySvc}
}

// CreateKey handles POST /keys/create.
func (h *KeysHandler) CreateKey(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrAuthenticationRequired())
		return
	}

	var req dto.CreateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	perms := make([]domain.Permission, 0, len(req.Permissions))
	for _, p := range req.Permissions {
		perms = append(perms, domain.Permission(p))
	}

	created, err := h.keySvc.CreateKey(c.Request.Context(), principal, ports.CreateKeyRequest{
		Name:        req.Name,
		Permissions: perms,
		Expiry:      req.Expiry,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toCreatedKeyResponse(created))
}

// RolloverKey handles POST /keys/rollover.
func (h *KeysHandler) RolloverKey(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrAuthenticationRequired())
		return
	}

	var req dto.RolloverKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	expiredKeyID, err := uuid.Parse(req.ExpiredKeyID)
	if err != nil {
		response.Error(c, apperror.Validation("expired_key_id must be a UUID"))
		return
	}

	created, err := h.keySvc.RolloverKey(c.Request.Context(), principal, ports.RolloverKeyRequest{
		ExpiredKeyID: expiredKeyID,
		Expiry:       req.Expiry,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toCreatedKeyResponse(created))
}

// toCreatedKeyResponse converts the service result to DTO. The plaintext
// key appears here and nowhere else.
func toCreatedKeyResponse(created *ports.CreatedKey) dto.CreatedKeyResponse {
	perms := make([]string, 0, len(created.Key.Permissions))
	for _, p := range created.Key.Permissions {
		perms = append(perms, string(p))
	}
	return dto.CreatedKeyResponse{
		ID:          created.Key.ID.String(),
		Name:        created.Key.Name,
		Key:         created.Plaintext,
		Permissions: perms,
		ExpiresAt:   created.Key.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
