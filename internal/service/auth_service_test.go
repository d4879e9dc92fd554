package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authTestDeps struct {
	svc        *AuthServiceImpl
	userRepo   *mocks.MockUserRepository
	walletRepo *mocks.MockWalletRepository
	oauth      *mocks.MockGoogleOAuthClient
	stateStore *mocks.MockOAuthStateStore
	tokenSvc   *mocks.MockTokenService
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupAuthService(t *testing.T) *authTestDeps {
	ctrl := gomock.NewController(t)
	d := &authTestDeps{
		userRepo:   mocks.NewMockUserRepository(ctrl),
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		oauth:      mocks.NewMockGoogleOAuthClient(ctrl),
		stateStore: mocks.NewMockOAuthStateStore(ctrl),
		tokenSvc:   mocks.NewMockTokenService(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewAuthService(
		d.userRepo, d.walletRepo, d.oauth, d.stateStore,
		d.tokenSvc, d.transactor, "NGN", zerolog.Nop(),
	)
	return d
}

func TestAuthService_GoogleAuthURL_IssuesSingleUseState(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	var issued string
	d.stateStore.EXPECT().Issue(ctx, gomock.Any(), oauthStateTTL).DoAndReturn(
		func(_ context.Context, state string, _ time.Duration) (bool, error) {
			issued = state
			return true, nil
		})
	d.oauth.EXPECT().AuthURL(gomock.Any()).DoAndReturn(
		func(state string) string {
			assert.Equal(t, issued, state)
			return "https://accounts.google.com/o/oauth2/v2/auth?state=" + state
		})

	url, err := d.svc.GoogleAuthURL(ctx)
	require.NoError(t, err)
	assert.Contains(t, url, "accounts.google.com")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), issued)
}

func TestAuthService_HandleGoogleCallback_FirstLoginProvisionsWallet(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	d.stateStore.EXPECT().Consume(ctx, "state123").Return(true, nil)
	d.oauth.EXPECT().Exchange(ctx, "code456").Return(&ports.GoogleProfile{
		GoogleID: "g-10923", Email: "ada@example.com", FullName: "Ada Obi",
	}, nil)
	d.userRepo.EXPECT().GetByGoogleID(ctx, "g-10923").Return(nil, nil)
	d.userRepo.EXPECT().GetByEmail(ctx, "ada@example.com").Return(nil, nil)

	var createdUser *domain.User
	var createdWallet *domain.Wallet
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.userRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, user *domain.User) error {
			createdUser = user
			return nil
		})
	d.walletRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, wallet *domain.Wallet) error {
			createdWallet = wallet
			return nil
		})
	d.tokenSvc.EXPECT().Generate(gomock.Any(), "ada@example.com").Return("jwt_token_here", expiresAt, nil)

	result, err := d.svc.HandleGoogleCallback(ctx, "state123", "code456")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "jwt_token_here", result.Token)
	assert.Equal(t, expiresAt, result.ExpiresAt)

	require.NotNil(t, createdUser)
	assert.Equal(t, "ada@example.com", createdUser.Email)
	assert.Equal(t, "Ada Obi", createdUser.FullName)
	assert.Equal(t, "g-10923", createdUser.GoogleID)

	// The wallet belongs to the new user and starts empty.
	require.NotNil(t, createdWallet)
	assert.Equal(t, createdUser.ID, createdWallet.UserID)
	assert.Equal(t, int64(0), createdWallet.Balance)
	assert.Equal(t, "NGN", createdWallet.Currency)
	assert.Len(t, createdWallet.WalletNumber, 10)
	assert.Same(t, createdWallet, result.Wallet)
}

func TestAuthService_HandleGoogleCallback_ReturningUser(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	user := &domain.User{ID: userID, Email: "ada@example.com", GoogleID: "g-10923"}
	wallet := &domain.Wallet{ID: uuid.New(), UserID: userID, WalletNumber: "1001001001", Balance: 250_000}

	d.stateStore.EXPECT().Consume(ctx, "state123").Return(true, nil)
	d.oauth.EXPECT().Exchange(ctx, "code456").Return(&ports.GoogleProfile{
		GoogleID: "g-10923", Email: "ada@example.com", FullName: "Ada Obi",
	}, nil)
	d.userRepo.EXPECT().GetByGoogleID(ctx, "g-10923").Return(user, nil)
	d.walletRepo.EXPECT().GetByUserID(ctx, userID).Return(wallet, nil)
	d.tokenSvc.EXPECT().Generate(userID, "ada@example.com").Return("jwt_token_here", expiresAt, nil)

	result, err := d.svc.HandleGoogleCallback(ctx, "state123", "code456")
	require.NoError(t, err)
	assert.Same(t, user, result.User)
	assert.Same(t, wallet, result.Wallet)
}

func TestAuthService_HandleGoogleCallback_UnknownState(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.stateStore.EXPECT().Consume(ctx, "forged").Return(false, nil)

	result, err := d.svc.HandleGoogleCallback(ctx, "forged", "code456")
	assert.Nil(t, result)
	assertAppError(t, err, "AUTH_002")
}

func TestAuthService_HandleGoogleCallback_StateIsSingleUse(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	user := &domain.User{ID: userID, Email: "ada@example.com", GoogleID: "g-10923"}
	wallet := &domain.Wallet{ID: uuid.New(), UserID: userID}

	// First callback consumes the state.
	d.stateStore.EXPECT().Consume(ctx, "state123").Return(true, nil)
	d.oauth.EXPECT().Exchange(ctx, "code456").Return(&ports.GoogleProfile{
		GoogleID: "g-10923", Email: "ada@example.com",
	}, nil)
	d.userRepo.EXPECT().GetByGoogleID(ctx, "g-10923").Return(user, nil)
	d.walletRepo.EXPECT().GetByUserID(ctx, userID).Return(wallet, nil)
	d.tokenSvc.EXPECT().Generate(userID, "ada@example.com").Return("jwt", time.Now(), nil)

	_, err := d.svc.HandleGoogleCallback(ctx, "state123", "code456")
	require.NoError(t, err)

	// Replaying the same state is rejected.
	d.stateStore.EXPECT().Consume(ctx, "state123").Return(false, nil)
	result, err := d.svc.HandleGoogleCallback(ctx, "state123", "code456")
	assert.Nil(t, result)
	assertAppError(t, err, "AUTH_002")
}

func TestAuthService_HandleGoogleCallback_ExchangeFails(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.stateStore.EXPECT().Consume(ctx, "state123").Return(true, nil)
	d.oauth.EXPECT().Exchange(ctx, "badcode").Return(nil, errors.New("google token endpoint: HTTP 400"))

	result, err := d.svc.HandleGoogleCallback(ctx, "state123", "badcode")
	assert.Nil(t, result)
	assertAppError(t, err, "VAL_001")
}

func TestAuthService_HandleGoogleCallback_MissingParams(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	result, err := d.svc.HandleGoogleCallback(context.Background(), "", "code")
	assert.Nil(t, result)
	assertAppError(t, err, "VAL_001")
}
