package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// APIKeyServiceImpl implements ports.APIKeyService.
type APIKeyServiceImpl struct {
	keyRepo ports.APIKeyRepository
	log     zerolog.Logger
}

// NewAPIKeyService creates a new APIKeyServiceImpl.
func NewAPIKeyService(keyRepo ports.APIKeyRepository, log zerolog.Logger) *APIKeyServiceImpl {
	return &APIKeyServiceImpl{
		keyRepo: keyRepo,
		log:     log,
	}
}

// CreateKey mints a machine credential scoped to the requested permissions.
// The plaintext is returned exactly once; only its digest is stored.
func (s *APIKeyServiceImpl) CreateKey(ctx context.Context, principal *domain.Principal, req ports.CreateKeyRequest) (*ports.CreatedKey, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperror.Validation("name is required")
	}
	if len(req.Permissions) == 0 {
		return nil, apperror.Validation("at least one permission is required")
	}
	for _, p := range req.Permissions {
		if !domain.ValidPermission(p) {
			return nil, apperror.Validation(fmt.Sprintf("unknown permission %q", p))
		}
	}
	lifetime, err := domain.ExpiryDuration(req.Expiry)
	if err != nil {
		return nil, apperror.Validation("expiry must be one of 1H, 1D, 1M, 1Y")
	}

	count, err := s.keyRepo.CountActiveByUser(ctx, principal.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count active keys: %w", err))
	}
	if count >= domain.MaxActiveKeys {
		return nil, apperror.ErrKeyLimitReached(domain.MaxActiveKeys)
	}

	plaintext, digest, err := generateAPIKey()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate key: %w", err))
	}

	now := time.Now().UTC()
	key := &domain.APIKey{
		ID:          uuid.New(),
		UserID:      principal.UserID,
		Name:        req.Name,
		KeyDigest:   digest,
		Permissions: req.Permissions,
		ExpiresAt:   now.Add(lifetime),
		CreatedAt:   now,
	}
	if err := s.keyRepo.Create(ctx, key); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create key: %w", err))
	}

	s.log.Info().
		Str("key_id", key.ID.String()).
		Str("user_id", principal.UserID.String()).
		Str("expiry", req.Expiry).
		Msg("api key created successfully")

	return &ports.CreatedKey{Key: key, Plaintext: plaintext}, nil
}

// RolloverKey replaces an expired key with a fresh one carrying the same
// name and permission set.
func (s *APIKeyServiceImpl) RolloverKey(ctx context.Context, principal *domain.Principal, req ports.RolloverKeyRequest) (*ports.CreatedKey, error) {
	lifetime, err := domain.ExpiryDuration(req.Expiry)
	if err != nil {
		return nil, apperror.Validation("expiry must be one of 1H, 1D, 1M, 1Y")
	}

	old, err := s.keyRepo.GetByID(ctx, req.ExpiredKeyID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load key: %w", err))
	}
	// Foreign keys are reported as missing, not forbidden
	if old == nil || old.UserID != principal.UserID {
		return nil, apperror.ErrNotFound("api key")
	}
	if old.Revoked {
		return nil, apperror.Validation("revoked keys cannot be rolled over")
	}
	now := time.Now().UTC()
	if !old.IsExpired(now) {
		return nil, apperror.ErrKeyNotExpired()
	}

	plaintext, digest, err := generateAPIKey()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate key: %w", err))
	}

	key := &domain.APIKey{
		ID:          uuid.New(),
		UserID:      old.UserID,
		Name:        old.Name,
		KeyDigest:   digest,
		Permissions: old.Permissions,
		ExpiresAt:   now.Add(lifetime),
		CreatedAt:   now,
	}
	if err := s.keyRepo.Create(ctx, key); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create key: %w", err))
	}

	s.log.Info().
		Str("key_id", key.ID.String()).
		Str("replaces", old.ID.String()).
		Msg("api key rolled over successfully")

	return &ports.CreatedKey{Key: key, Plaintext: plaintext}, nil
}

// ResolveKey authenticates a presented plaintext key against its stored
// digest. Expired and revoked keys fail the same way unknown ones do.
func (s *APIKeyServiceImpl) ResolveKey(ctx context.Context, plaintext string) (*domain.APIKey, error) {
	if !strings.HasPrefix(plaintext, domain.KeyPrefix) {
		return nil, apperror.ErrInvalidAPIKey()
	}

	key, err := s.keyRepo.GetByDigest(ctx, digestKey(plaintext))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load key by digest: %w", err))
	}
	if key == nil || !key.IsActive(time.Now().UTC()) {
		return nil, apperror.ErrInvalidAPIKey()
	}
	return key, nil
}

// generateAPIKey returns a fresh plaintext key and its storage digest.
func generateAPIKey() (string, string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	plaintext := domain.KeyPrefix + base64.RawURLEncoding.EncodeToString(raw)
	return plaintext, digestKey(plaintext), nil
}

func digestKey(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
