package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/metrics"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// TransferServiceImpl implements ports.TransferService.
type TransferServiceImpl struct {
	txRepo     ports.TransactionRepository
	walletRepo ports.WalletRepository
	transactor ports.DBTransactor
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	txRepo ports.TransactionRepository,
	walletRepo ports.WalletRepository,
	transactor ports.DBTransactor,
	m *metrics.Metrics,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		txRepo:     txRepo,
		walletRepo: walletRepo,
		transactor: transactor,
		metrics:    m,
		log:        log,
	}
}

// Transfer moves funds between two wallets with pessimistic locking. Both
// ledger legs are written SUCCESS inside one database transaction; internal
// moves have no pending state.
func (s *TransferServiceImpl) Transfer(ctx context.Context, principal *domain.Principal, req ports.TransferRequest) (*ports.TransferResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.Validation("amount must be a positive integer (kobo)")
	}
	if req.RecipientWalletNumber == "" {
		return nil, apperror.Validation("wallet_number is required")
	}

	// Resolve both parties before taking any locks
	sender, err := s.walletRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load sender wallet: %w", err))
	}
	if sender == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	recipient, err := s.walletRepo.GetByNumber(ctx, req.RecipientWalletNumber)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load recipient wallet: %w", err))
	}
	if recipient == nil {
		return nil, apperror.ErrNotFound("recipient wallet")
	}
	if sender.ID == recipient.ID {
		return nil, apperror.ErrSelfTransfer()
	}

	// Begin database transaction
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock & re-read both wallets in wallet-ID order so opposing transfers
	// cannot deadlock
	sender, recipient, err = s.lockPair(ctx, dbTx, sender.ID, recipient.ID)
	if err != nil {
		return nil, err
	}

	// Business rule: sufficient funds, checked on the locked row
	if err := sender.Debit(req.Amount); err != nil {
		s.metrics.ObserveTransfer("insufficient_funds")
		return nil, err
	}
	recipient.Credit(req.Amount)

	now := time.Now().UTC()
	reference := domain.NewTransferReference()
	debitID := uuid.New()
	creditID := uuid.New()

	debit := &domain.Transaction{
		ID:                   debitID,
		Reference:            reference + "_debit",
		WalletID:             sender.ID,
		UserID:               sender.UserID,
		Type:                 domain.TransactionTypeTransfer,
		Direction:            domain.DirectionDebit,
		Amount:               req.Amount,
		Status:               domain.TransactionStatusSuccess,
		RelatedTransactionID: &creditID,
		Metadata:             &domain.TransactionMetadata{RecipientWallet: recipient.WalletNumber},
		CreatedAt:            now,
		SettledAt:            &now,
	}
	credit := &domain.Transaction{
		ID:                   creditID,
		Reference:            reference + "_credit",
		WalletID:             recipient.ID,
		UserID:               recipient.UserID,
		Type:                 domain.TransactionTypeTransfer,
		Direction:            domain.DirectionCredit,
		Amount:               req.Amount,
		Status:               domain.TransactionStatusSuccess,
		RelatedTransactionID: &debitID,
		Metadata:             &domain.TransactionMetadata{SenderWallet: sender.WalletNumber},
		CreatedAt:            now,
		SettledAt:            &now,
	}

	// Persist: both ledger legs
	if err := s.txRepo.Create(ctx, dbTx, debit); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create debit leg: %w", err))
	}
	if err := s.txRepo.Create(ctx, dbTx, credit); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create credit leg: %w", err))
	}

	// Persist: both balances
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, sender.ID, sender.Balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update sender balance: %w", err))
	}
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, recipient.ID, recipient.Balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update recipient balance: %w", err))
	}

	// Commit
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.metrics.ObserveTransfer("success")
	s.log.Info().
		Str("reference", reference).
		Str("sender_wallet", sender.WalletNumber).
		Str("recipient_wallet", recipient.WalletNumber).
		Int64("amount", req.Amount).
		Msg("transfer completed successfully")

	return &ports.TransferResult{
		Reference:       reference,
		Amount:          req.Amount,
		RecipientWallet: recipient.WalletNumber,
		NewBalance:      sender.Balance,
	}, nil
}

// lockPair acquires FOR UPDATE locks on both wallets in a fixed global
// order and returns the re-read rows, which carry the authoritative
// balances.
func (s *TransferServiceImpl) lockPair(ctx context.Context, dbTx pgx.Tx, senderID, recipientID uuid.UUID) (*domain.Wallet, *domain.Wallet, error) {
	first, second := senderID, recipientID
	if bytes.Compare(recipientID[:], senderID[:]) < 0 {
		first, second = recipientID, senderID
	}

	w1, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, first)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	w2, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, second)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if w1 == nil || w2 == nil {
		return nil, nil, apperror.ErrNotFound("wallet")
	}

	if w1.ID == senderID {
		return w1, w2, nil
	}
	return w2, w1, nil
}
