package service

import (
	"context"
	"errors"
	"strings"
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

type depositTestDeps struct {
	svc          *DepositServiceImpl
	txRepo       *mocks.MockTransactionRepository
	walletRepo   *mocks.MockWalletRepository
	gateway      *mocks.MockGatewayClient
	transactor   *mocks.MockDBTransactor
	settledCache *mocks.MockSettledCache
	ctrl         *gomock.Controller
}

func setupDepositService(t *testing.T) *depositTestDeps {
	ctrl := gomock.NewController(t)
	d := &depositTestDeps{
		txRepo:       mocks.NewMockTransactionRepository(ctrl),
		walletRepo:   mocks.NewMockWalletRepository(ctrl),
		gateway:      mocks.NewMockGatewayClient(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		settledCache: mocks.NewMockSettledCache(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewDepositService(
		d.txRepo, d.walletRepo, d.gateway, d.transactor, d.settledCache,
		100, time.Second, nil, zerolog.Nop(),
	)
	return d
}

func chargeSuccessEvent(reference string, amount int64) *domain.WebhookEvent {
	return &domain.WebhookEvent{
		Event: domain.EventChargeSuccess,
		Data: domain.WebhookEventData{
			Reference: reference,
			Amount:    amount,
			Status:    "success",
			Channel:   "card",
			PaidAt:    "2025-01-15T10:30:00.000Z",
		},
	}
}

// ==================== InitiateDeposit Tests ====================

func TestDepositService_InitiateDeposit_Success(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()
	tx := &mockTx{}

	d.walletRepo.EXPECT().GetByUserID(ctx, userID).Return(&domain.Wallet{
		ID: walletID, UserID: userID, WalletNumber: "1001001001",
	}, nil)

	var created *domain.Transaction
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, txn *domain.Transaction) error {
			created = txn
			return nil
		})

	// Gateway calls run under a derived timeout context.
	d.gateway.EXPECT().Initialize(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.InitializePaymentRequest) (*ports.InitializePaymentResponse, error) {
			assert.Equal(t, "ada@example.com", req.Email)
			assert.Equal(t, int64(500_000), req.Amount)
			return &ports.InitializePaymentResponse{
				AuthorizationURL: "https://checkout.paystack.com/abc123",
				AccessCode:       "abc123",
				Reference:        req.Reference,
			}, nil
		})

	principal := &domain.Principal{UserID: userID, Email: "ada@example.com", Method: domain.AuthMethodJWT}
	intent, err := d.svc.InitiateDeposit(ctx, principal, 500_000)
	require.NoError(t, err)
	require.NotNil(t, intent)
	assert.True(t, strings.HasPrefix(intent.Reference, "dep_"))
	assert.Equal(t, "https://checkout.paystack.com/abc123", intent.AuthorizationURL)
	assert.Equal(t, "abc123", intent.AccessCode)
	assert.Equal(t, int64(500_000), intent.Amount)

	// PENDING row was committed before the gateway was contacted.
	require.NotNil(t, created)
	assert.Equal(t, intent.Reference, created.Reference)
	assert.Equal(t, domain.TransactionTypeDeposit, created.Type)
	assert.Equal(t, domain.DirectionCredit, created.Direction)
	assert.Equal(t, domain.TransactionStatusPending, created.Status)
	assert.Nil(t, created.SettledAt)
}

func TestDepositService_InitiateDeposit_BelowMinimum(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	principal := &domain.Principal{UserID: uuid.New(), Email: "ada@example.com"}
	intent, err := d.svc.InitiateDeposit(context.Background(), principal, 99)
	assert.Nil(t, intent)
	assertAppError(t, err, "WAL_003")
}

func TestDepositService_InitiateDeposit_WalletNotFound(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	d.walletRepo.EXPECT().GetByUserID(ctx, userID).Return(nil, nil)

	principal := &domain.Principal{UserID: userID, Email: "ada@example.com"}
	intent, err := d.svc.InitiateDeposit(ctx, principal, 500_000)
	assert.Nil(t, intent)
	assertAppError(t, err, "WAL_004")
}

func TestDepositService_InitiateDeposit_GatewayError(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()
	tx := &mockTx{}

	d.walletRepo.EXPECT().GetByUserID(ctx, userID).Return(&domain.Wallet{
		ID: walletID, UserID: userID,
	}, nil)

	var createdID uuid.UUID
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, txn *domain.Transaction) error {
			createdID = txn.ID
			return nil
		})

	d.gateway.EXPECT().Initialize(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("paystack POST /transaction/initialize: HTTP 503"))

	// The stranded PENDING row is flipped to FAILED.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.txRepo.EXPECT().Settle(ctx, tx, gomock.Any(), domain.TransactionStatusFailed, nil).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, id uuid.UUID, _ domain.TransactionStatus, _ *domain.TransactionMetadata) error {
			assert.Equal(t, createdID, id)
			return nil
		})

	principal := &domain.Principal{UserID: userID, Email: "ada@example.com"}
	intent, err := d.svc.InitiateDeposit(ctx, principal, 500_000)
	assert.Nil(t, intent)
	assertAppError(t, err, "GTW_001")
}

// ==================== Reconcile Tests ====================

func TestDepositService_Reconcile_SettlesPendingDeposit(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()
	walletID := uuid.New()
	userID := uuid.New()
	tx := &mockTx{}
	reference := "dep_a1b2c3d4e5f60718"

	pending := &domain.Transaction{
		ID: txnID, Reference: reference, WalletID: walletID, UserID: userID,
		Type: domain.TransactionTypeDeposit, Direction: domain.DirectionCredit,
		Amount: 500_000, Status: domain.TransactionStatusPending,
	}

	d.settledCache.EXPECT().IsSettled(ctx, reference).Return(false, nil)
	d.txRepo.EXPECT().GetByReference(ctx, reference).Return(pending, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.txRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, reference).Return(pending, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, walletID).Return(&domain.Wallet{
		ID: walletID, UserID: userID, Balance: 250_000,
	}, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, walletID, int64(750_000)).Return(nil)
	d.txRepo.EXPECT().Settle(ctx, tx, txnID, domain.TransactionStatusSuccess, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, _ uuid.UUID, _ domain.TransactionStatus, md *domain.TransactionMetadata) error {
			require.NotNil(t, md)
			assert.Equal(t, "success", md.GatewayStatus)
			assert.Equal(t, "card", md.GatewayChannel)
			assert.Equal(t, int64(500_000), md.GatewayAmount)
			assert.Equal(t, "2025-01-15T10:30:00.000Z", md.PaidAt)
			return nil
		})
	d.settledCache.EXPECT().MarkSettled(ctx, reference, settledTTL).Return(nil)

	err := d.svc.Reconcile(ctx, chargeSuccessEvent(reference, 500_000))
	require.NoError(t, err)
}

func TestDepositService_Reconcile_DuplicateAbsorbed(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	reference := "dep_a1b2c3d4e5f60718"

	d.settledCache.EXPECT().IsSettled(ctx, reference).Return(false, nil)
	d.txRepo.EXPECT().GetByReference(ctx, reference).Return(&domain.Transaction{
		ID: uuid.New(), Reference: reference,
		Type: domain.TransactionTypeDeposit, Status: domain.TransactionStatusSuccess,
	}, nil)
	d.settledCache.EXPECT().MarkSettled(ctx, reference, settledTTL).Return(nil)

	err := d.svc.Reconcile(ctx, chargeSuccessEvent(reference, 500_000))
	require.NoError(t, err)
}

func TestDepositService_Reconcile_CachedDuplicateShortCircuits(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	reference := "dep_a1b2c3d4e5f60718"
	d.settledCache.EXPECT().IsSettled(ctx, reference).Return(true, nil)

	err := d.svc.Reconcile(ctx, chargeSuccessEvent(reference, 500_000))
	require.NoError(t, err)
}

func TestDepositService_Reconcile_UnknownReferenceAbsorbed(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	reference := "dep_ffffffffffffffff"
	d.settledCache.EXPECT().IsSettled(ctx, reference).Return(false, nil)
	d.txRepo.EXPECT().GetByReference(ctx, reference).Return(nil, nil)

	err := d.svc.Reconcile(ctx, chargeSuccessEvent(reference, 500_000))
	require.NoError(t, err)
}

func TestDepositService_Reconcile_IgnoresOtherEvents(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	err := d.svc.Reconcile(context.Background(), &domain.WebhookEvent{
		Event: "transfer.success",
		Data:  domain.WebhookEventData{Reference: "dep_a1b2c3d4e5f60718"},
	})
	require.NoError(t, err)

	// charge.success with a non-success data status does not settle either.
	err = d.svc.Reconcile(context.Background(), &domain.WebhookEvent{
		Event: domain.EventChargeSuccess,
		Data:  domain.WebhookEventData{Reference: "dep_a1b2c3d4e5f60718", Status: "failed"},
	})
	require.NoError(t, err)
}

func TestDepositService_Reconcile_CreditsGatewayAmountOnMismatch(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()
	walletID := uuid.New()
	tx := &mockTx{}
	reference := "dep_a1b2c3d4e5f60718"

	pending := &domain.Transaction{
		ID: txnID, Reference: reference, WalletID: walletID,
		Type: domain.TransactionTypeDeposit, Amount: 500_000,
		Status: domain.TransactionStatusPending,
	}

	d.settledCache.EXPECT().IsSettled(ctx, reference).Return(false, nil)
	d.txRepo.EXPECT().GetByReference(ctx, reference).Return(pending, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.txRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, reference).Return(pending, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, walletID).Return(&domain.Wallet{
		ID: walletID, Balance: 0,
	}, nil)
	// The wallet receives what the gateway actually collected.
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, walletID, int64(300_000)).Return(nil)
	d.txRepo.EXPECT().Settle(ctx, tx, txnID, domain.TransactionStatusSuccess, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, _ uuid.UUID, _ domain.TransactionStatus, md *domain.TransactionMetadata) error {
			assert.Equal(t, int64(300_000), md.GatewayAmount)
			return nil
		})
	d.settledCache.EXPECT().MarkSettled(ctx, reference, settledTTL).Return(nil)

	err := d.svc.Reconcile(ctx, chargeSuccessEvent(reference, 300_000))
	require.NoError(t, err)
}

func TestDepositService_Reconcile_RaceLostToConcurrentDelivery(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()
	tx := &mockTx{}
	reference := "dep_a1b2c3d4e5f60718"

	d.settledCache.EXPECT().IsSettled(ctx, reference).Return(false, nil)
	d.txRepo.EXPECT().GetByReference(ctx, reference).Return(&domain.Transaction{
		ID: txnID, Reference: reference,
		Type: domain.TransactionTypeDeposit, Status: domain.TransactionStatusPending,
	}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	// Another delivery won the lock and settled first.
	d.txRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, reference).Return(&domain.Transaction{
		ID: txnID, Reference: reference,
		Type: domain.TransactionTypeDeposit, Status: domain.TransactionStatusSuccess,
	}, nil)
	d.settledCache.EXPECT().MarkSettled(ctx, reference, settledTTL).Return(nil)

	err := d.svc.Reconcile(ctx, chargeSuccessEvent(reference, 500_000))
	require.NoError(t, err)
}

// ==================== CheckStatus Tests ====================

func TestDepositService_CheckStatus_WithGatewayView(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	reference := "dep_a1b2c3d4e5f60718"
	createdAt := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	d.txRepo.EXPECT().GetByReferenceAndUser(ctx, reference, userID).Return(&domain.Transaction{
		Reference: reference, UserID: userID, Type: domain.TransactionTypeDeposit,
		Amount: 500_000, Status: domain.TransactionStatusSuccess, CreatedAt: createdAt,
	}, nil)
	d.gateway.EXPECT().Verify(gomock.Any(), reference).Return(&ports.VerifyPaymentResponse{
		Reference: reference, Status: "success", Amount: 500_000,
	}, nil)

	principal := &domain.Principal{UserID: userID, Email: "ada@example.com"}
	status, err := d.svc.CheckStatus(ctx, principal, reference)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusSuccess, status.Status)
	assert.Equal(t, "success", status.GatewayStatus)
	assert.Equal(t, int64(500_000), status.Amount)
	assert.Equal(t, createdAt, status.CreatedAt)
}

func TestDepositService_CheckStatus_GatewayUnavailable(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	reference := "dep_a1b2c3d4e5f60718"

	d.txRepo.EXPECT().GetByReferenceAndUser(ctx, reference, userID).Return(&domain.Transaction{
		Reference: reference, UserID: userID, Type: domain.TransactionTypeDeposit,
		Amount: 500_000, Status: domain.TransactionStatusPending,
	}, nil)
	d.gateway.EXPECT().Verify(gomock.Any(), reference).Return(nil, errors.New("connection refused"))

	principal := &domain.Principal{UserID: userID, Email: "ada@example.com"}
	status, err := d.svc.CheckStatus(ctx, principal, reference)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusPending, status.Status)
	assert.Empty(t, status.GatewayStatus)
}

func TestDepositService_CheckStatus_NotFound(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	d.txRepo.EXPECT().GetByReferenceAndUser(ctx, "dep_0000000000000000", userID).Return(nil, nil)

	principal := &domain.Principal{UserID: userID, Email: "ada@example.com"}
	status, err := d.svc.CheckStatus(ctx, principal, "dep_0000000000000000")
	assert.Nil(t, status)
	assertAppError(t, err, "WAL_004")
}
