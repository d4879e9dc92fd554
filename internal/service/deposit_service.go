package service

import (
	"context"
	"fmt"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/metrics"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Paystack redelivers undelivered events for up to 72 hours; keep settled
// references cached at least that long.
const settledTTL = 72 * time.Hour

// DepositServiceImpl implements ports.DepositService.
type DepositServiceImpl struct {
	txRepo         ports.TransactionRepository
	walletRepo     ports.WalletRepository
	gateway        ports.GatewayClient
	transactor     ports.DBTransactor
	settledCache   ports.SettledCache
	minDeposit     int64
	gatewayTimeout time.Duration
	metrics        *metrics.Metrics
	log            zerolog.Logger
}

// NewDepositService creates a new DepositServiceImpl.
func NewDepositService(
	txRepo ports.TransactionRepository,
	walletRepo ports.WalletRepository,
	gateway ports.GatewayClient,
	transactor ports.DBTransactor,
	settledCache ports.SettledCache,
	minDeposit int64,
	gatewayTimeout time.Duration,
	m *metrics.Metrics,
	log zerolog.Logger,
) *DepositServiceImpl {
	return &DepositServiceImpl{
		txRepo:         txRepo,
		walletRepo:     walletRepo,
		gateway:        gateway,
		transactor:     transactor,
		settledCache:   settledCache,
		minDeposit:     minDeposit,
		gatewayTimeout: gatewayTimeout,
		metrics:        m,
		log:            log,
	}
}

// InitiateDeposit records a PENDING ledger entry, then asks the gateway for
// a checkout session. The row is committed before the gateway call so an
// event arriving for this reference always finds it.
func (s *DepositServiceImpl) InitiateDeposit(ctx context.Context, principal *domain.Principal, amount int64) (*ports.DepositIntent, error) {
	if amount < s.minDeposit {
		return nil, apperror.ErrBelowMinimumDeposit(s.minDeposit)
	}

	wallet, err := s.walletRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:        uuid.New(),
		Reference: domain.NewDepositReference(),
		WalletID:  wallet.ID,
		UserID:    principal.UserID,
		Type:      domain.TransactionTypeDeposit,
		Direction: domain.DirectionCredit,
		Amount:    amount,
		Status:    domain.TransactionStatusPending,
		CreatedAt: now,
	}

	// Persist: PENDING row, committed before the gateway is contacted
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create deposit: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Ask the gateway for a checkout session
	gwCtx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()
	init, err := s.gateway.Initialize(gwCtx, ports.InitializePaymentRequest{
		Email:     principal.Email,
		Amount:    amount,
		Reference: txn.Reference,
	})
	if err != nil {
		s.failInitiation(ctx, txn)
		s.metrics.ObserveDepositInitiated("gateway_error")
		return nil, apperror.ErrGateway(err)
	}

	s.metrics.ObserveDepositInitiated("success")
	s.log.Info().
		Str("reference", txn.Reference).
		Str("wallet_id", wallet.ID.String()).
		Int64("amount", amount).
		Msg("deposit initiated successfully")

	return &ports.DepositIntent{
		Reference:        txn.Reference,
		AuthorizationURL: init.AuthorizationURL,
		AccessCode:       init.AccessCode,
		Amount:           amount,
	}, nil
}

// failInitiation flips a deposit to FAILED after the gateway refused to
// open a session for it. Best effort; the row stays PENDING if this fails.
func (s *DepositServiceImpl) failInitiation(ctx context.Context, txn *domain.Transaction) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("reference", txn.Reference).Msg("failed to mark deposit failed")
		return
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck
	if err := s.txRepo.Settle(ctx, dbTx, txn.ID, domain.TransactionStatusFailed, nil); err != nil {
		s.log.Warn().Err(err).Str("reference", txn.Reference).Msg("failed to mark deposit failed")
		return
	}
	if err := dbTx.Commit(ctx); err != nil {
		s.log.Warn().Err(err).Str("reference", txn.Reference).Msg("failed to mark deposit failed")
	}
}

// Reconcile applies a verified gateway event to the ledger. It is safe to
// call any number of times for the same reference: only the first
// settlement credits the wallet, every later delivery is absorbed.
func (s *DepositServiceImpl) Reconcile(ctx context.Context, event *domain.WebhookEvent) error {
	if event == nil || !event.IsChargeSuccess() {
		s.metrics.ObserveDepositReconciled("ignored_event")
		return nil
	}
	reference := event.Data.Reference
	if reference == "" {
		s.metrics.ObserveDepositReconciled("ignored_event")
		return nil
	}

	// Fast path: reference already known terminal
	settled, err := s.settledCache.IsSettled(ctx, reference)
	if err != nil {
		s.log.Warn().Err(err).Str("reference", reference).Msg("settled cache check failed, falling through to DB")
	}
	if settled {
		s.metrics.ObserveDepositReconciled("duplicate")
		return nil
	}

	// Quick check without a lock; unknown references are absorbed
	txn, err := s.txRepo.GetByReference(ctx, reference)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load transaction: %w", err))
	}
	if txn == nil {
		s.log.Info().Str("reference", reference).Msg("event for unknown reference ignored")
		s.metrics.ObserveDepositReconciled("unknown_reference")
		return nil
	}
	if txn.Type != domain.TransactionTypeDeposit {
		s.log.Warn().Str("reference", reference).Msg("event for non-deposit reference ignored")
		s.metrics.ObserveDepositReconciled("ignored_event")
		return nil
	}
	if txn.IsTerminal() {
		s.cacheSettled(ctx, reference)
		s.metrics.ObserveDepositReconciled("duplicate")
		return nil
	}

	// Begin database transaction
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock & re-check: a concurrent delivery may have settled it first
	locked, err := s.txRepo.GetByReferenceForUpdate(ctx, dbTx, reference)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock transaction: %w", err))
	}
	if locked == nil {
		return nil
	}
	if locked.IsTerminal() {
		s.cacheSettled(ctx, reference)
		s.metrics.ObserveDepositReconciled("duplicate")
		return nil
	}

	// Lock & get wallet
	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, locked.WalletID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return apperror.InternalError(fmt.Errorf("wallet %s missing for deposit %s", locked.WalletID, reference))
	}

	// Credit what the gateway reports it collected, not what was asked for
	amount := event.Data.Amount
	if amount != locked.Amount {
		s.log.Warn().
			Str("reference", reference).
			Int64("requested", locked.Amount).
			Int64("collected", amount).
			Msg("gateway amount differs from initiated amount")
	}
	wallet.Credit(amount)

	// Persist: wallet balance and terminal status
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, wallet.Balance); err != nil {
		return apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}
	metadata := &domain.TransactionMetadata{
		GatewayStatus:  event.Data.Status,
		GatewayChannel: event.Data.Channel,
		GatewayAmount:  amount,
		PaidAt:         event.Data.PaidAt,
	}
	if err := s.txRepo.Settle(ctx, dbTx, locked.ID, domain.TransactionStatusSuccess, metadata); err != nil {
		return apperror.InternalError(fmt.Errorf("settle deposit: %w", err))
	}

	// Commit
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-process: remember the settlement for the redelivery fast path
	s.cacheSettled(ctx, reference)

	s.metrics.ObserveDepositReconciled("success")
	s.log.Info().
		Str("reference", reference).
		Str("wallet_id", wallet.ID.String()).
		Int64("amount", amount).
		Msg("deposit settled successfully")

	return nil
}

func (s *DepositServiceImpl) cacheSettled(ctx context.Context, reference string) {
	if err := s.settledCache.MarkSettled(ctx, reference, settledTTL); err != nil {
		s.log.Warn().Err(err).Str("reference", reference).Msg("failed to cache settled reference")
	}
}

// CheckStatus reports the ledger's view of a deposit, enriched with a live
// gateway lookup when the gateway answers in time.
func (s *DepositServiceImpl) CheckStatus(ctx context.Context, principal *domain.Principal, reference string) (*ports.DepositStatus, error) {
	txn, err := s.txRepo.GetByReferenceAndUser(ctx, reference, principal.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load transaction: %w", err))
	}
	if txn == nil || txn.Type != domain.TransactionTypeDeposit {
		return nil, apperror.ErrNotFound("deposit")
	}

	status := &ports.DepositStatus{
		Reference: txn.Reference,
		Amount:    txn.Amount,
		Status:    txn.Status,
		CreatedAt: txn.CreatedAt,
	}

	// Best effort: a dead gateway never blocks the local answer
	gwCtx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()
	verification, err := s.gateway.Verify(gwCtx, reference)
	if err != nil {
		s.log.Warn().Err(err).Str("reference", reference).Msg("gateway verification unavailable")
		return status, nil
	}
	status.GatewayStatus = verification.Status

	return status, nil
}
