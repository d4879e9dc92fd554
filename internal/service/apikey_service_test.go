package service

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAPIKeyService(t *testing.T) (*APIKeyServiceImpl, *mocks.MockAPIKeyRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	keyRepo := mocks.NewMockAPIKeyRepository(ctrl)
	svc := NewAPIKeyService(keyRepo, zerolog.Nop())
	return svc, keyRepo, ctrl
}

func TestAPIKeyService_CreateKey_Success(t *testing.T) {
	svc, keyRepo, ctrl := setupAPIKeyService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	keyRepo.EXPECT().CountActiveByUser(ctx, userID).Return(2, nil)

	var stored *domain.APIKey
	keyRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, key *domain.APIKey) error {
			stored = key
			return nil
		})

	req := ports.CreateKeyRequest{
		Name:        "ci-pipeline",
		Permissions: []domain.Permission{domain.PermissionDeposit, domain.PermissionRead},
		Expiry:      "1H",
	}
	created, err := svc.CreateKey(ctx, principalFor(userID), req)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.True(t, strings.HasPrefix(created.Plaintext, domain.KeyPrefix))
	require.NotNil(t, stored)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, "ci-pipeline", stored.Name)
	assert.Equal(t, req.Permissions, stored.Permissions)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), stored.ExpiresAt, 5*time.Second)

	// Only the digest is stored, never the plaintext.
	assert.NotContains(t, stored.KeyDigest, created.Plaintext)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), stored.KeyDigest)
	assert.Equal(t, digestKey(created.Plaintext), stored.KeyDigest)
}

func TestAPIKeyService_CreateKey_LimitReached(t *testing.T) {
	svc, keyRepo, ctrl := setupAPIKeyService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	keyRepo.EXPECT().CountActiveByUser(ctx, userID).Return(domain.MaxActiveKeys, nil)

	req := ports.CreateKeyRequest{
		Name:        "one-too-many",
		Permissions: []domain.Permission{domain.PermissionRead},
		Expiry:      "1D",
	}
	created, err := svc.CreateKey(ctx, principalFor(userID), req)
	assert.Nil(t, created)
	assertAppError(t, err, "KEY_001")
}

func TestAPIKeyService_CreateKey_InvalidExpiry(t *testing.T) {
	svc, _, ctrl := setupAPIKeyService(t)
	defer ctrl.Finish()

	req := ports.CreateKeyRequest{
		Name:        "bad-expiry",
		Permissions: []domain.Permission{domain.PermissionRead},
		Expiry:      "2W",
	}
	created, err := svc.CreateKey(context.Background(), principalFor(uuid.New()), req)
	assert.Nil(t, created)
	assertAppError(t, err, "VAL_001")
}

func TestAPIKeyService_CreateKey_UnknownPermission(t *testing.T) {
	svc, _, ctrl := setupAPIKeyService(t)
	defer ctrl.Finish()

	req := ports.CreateKeyRequest{
		Name:        "bad-perm",
		Permissions: []domain.Permission{"withdraw"},
		Expiry:      "1D",
	}
	created, err := svc.CreateKey(context.Background(), principalFor(uuid.New()), req)
	assert.Nil(t, created)
	assertAppError(t, err, "VAL_001")
}

func TestAPIKeyService_RolloverKey_Success(t *testing.T) {
	svc, keyRepo, ctrl := setupAPIKeyService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	oldID := uuid.New()

	old := &domain.APIKey{
		ID:          oldID,
		UserID:      userID,
		Name:        "ci-pipeline",
		Permissions: []domain.Permission{domain.PermissionTransfer},
		ExpiresAt:   time.Now().UTC().Add(-time.Hour),
	}
	keyRepo.EXPECT().GetByID(ctx, oldID).Return(old, nil)

	var stored *domain.APIKey
	keyRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, key *domain.APIKey) error {
			stored = key
			return nil
		})

	created, err := svc.RolloverKey(ctx, principalFor(userID), ports.RolloverKeyRequest{
		ExpiredKeyID: oldID,
		Expiry:       "1M",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	// The replacement keeps the name and permission set.
	require.NotNil(t, stored)
	assert.NotEqual(t, oldID, stored.ID)
	assert.Equal(t, "ci-pipeline", stored.Name)
	assert.Equal(t, old.Permissions, stored.Permissions)
	assert.NotEqual(t, old.KeyDigest, stored.KeyDigest)
	assert.True(t, stored.ExpiresAt.After(time.Now().UTC()))
}

func TestAPIKeyService_RolloverKey_NotExpiredYet(t *testing.T) {
	svc, keyRepo, ctrl := setupAPIKeyService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	keyID := uuid.New()

	keyRepo.EXPECT().GetByID(ctx, keyID).Return(&domain.APIKey{
		ID: keyID, UserID: userID, ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil)

	created, err := svc.RolloverKey(ctx, principalFor(userID), ports.RolloverKeyRequest{
		ExpiredKeyID: keyID,
		Expiry:       "1D",
	})
	assert.Nil(t, created)
	assertAppError(t, err, "KEY_002")
}

func TestAPIKeyService_RolloverKey_ForeignKeyHidden(t *testing.T) {
	svc, keyRepo, ctrl := setupAPIKeyService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	keyID := uuid.New()

	keyRepo.EXPECT().GetByID(ctx, keyID).Return(&domain.APIKey{
		ID: keyID, UserID: uuid.New(), ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}, nil)

	created, err := svc.RolloverKey(ctx, principalFor(uuid.New()), ports.RolloverKeyRequest{
		ExpiredKeyID: keyID,
		Expiry:       "1D",
	})
	assert.Nil(t, created)
	assertAppError(t, err, "WAL_004")
}

func TestAPIKeyService_ResolveKey_Valid(t *testing.T) {
	svc, keyRepo, ctrl := setupAPIKeyService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	plaintext := domain.KeyPrefix + "dGVzdC1rZXktbWF0ZXJpYWw"
	active := &domain.APIKey{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		KeyDigest:   digestKey(plaintext),
		Permissions: []domain.Permission{domain.PermissionRead},
		ExpiresAt:   time.Now().UTC().Add(time.Hour),
	}
	keyRepo.EXPECT().GetByDigest(ctx, digestKey(plaintext)).Return(active, nil)

	key, err := svc.ResolveKey(ctx, plaintext)
	require.NoError(t, err)
	assert.Same(t, active, key)
}

func TestAPIKeyService_ResolveKey_WrongShape(t *testing.T) {
	svc, _, ctrl := setupAPIKeyService(t)
	defer ctrl.Finish()

	// No lookup happens for keys without the issued prefix.
	key, err := svc.ResolveKey(context.Background(), "pk_test_whatever")
	assert.Nil(t, key)
	assertAppError(t, err, "AUTH_003")
}

func TestAPIKeyService_ResolveKey_UnknownKey(t *testing.T) {
	svc, keyRepo, ctrl := setupAPIKeyService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	plaintext := domain.KeyPrefix + "bm8tc3VjaC1rZXk"
	keyRepo.EXPECT().GetByDigest(ctx, digestKey(plaintext)).Return(nil, nil)

	key, err := svc.ResolveKey(ctx, plaintext)
	assert.Nil(t, key)
	assertAppError(t, err, "AUTH_003")
}

func TestAPIKeyService_ResolveKey_ExpiredOrRevoked(t *testing.T) {
	svc, keyRepo, ctrl := setupAPIKeyService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	expired := domain.KeyPrefix + "ZXhwaXJlZA"
	keyRepo.EXPECT().GetByDigest(ctx, digestKey(expired)).Return(&domain.APIKey{
		ID: uuid.New(), ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}, nil)
	key, err := svc.ResolveKey(ctx, expired)
	assert.Nil(t, key)
	assertAppError(t, err, "AUTH_003")

	revoked := domain.KeyPrefix + "cmV2b2tlZA"
	keyRepo.EXPECT().GetByDigest(ctx, digestKey(revoked)).Return(&domain.APIKey{
		ID: uuid.New(), Revoked: true, ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil)
	key, err = svc.ResolveKey(ctx, revoked)
	assert.Nil(t, key)
	assertAppError(t, err, "AUTH_003")
}
