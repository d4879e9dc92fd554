package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const transactionColumns = `id, reference, wallet_id, user_id, type, direction, amount, status,
		related_transaction_id, metadata, created_at, settled_at`

// Create inserts a new ledger entry within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	metadata, err := marshalMetadata(t.Metadata)
	if err != nil {
		return err
	}

	query := `INSERT INTO transactions (id, reference, wallet_id, user_id, type, direction, amount, status,
		related_transaction_id, metadata, created_at, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = tx.Exec(ctx, query,
		t.ID, t.Reference, t.WalletID, t.UserID,
		t.Type, t.Direction, t.Amount, t.Status,
		t.RelatedTransactionID, metadata, t.CreatedAt, t.SettledAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.ErrDuplicateTransaction()
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a transaction by UUID.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return scanTransaction(r.pool.QueryRow(ctx, query, id))
}

// GetByReference fetches a transaction by its unique reference.
func (r *TransactionRepo) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1`
	return scanTransaction(r.pool.QueryRow(ctx, query, reference))
}

// GetByReferenceForUpdate fetches a transaction by reference with pessimistic
// locking. This MUST be called within a transaction; it serializes competing
// webhook deliveries for the same reference.
func (r *TransactionRepo) GetByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reference string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1 FOR UPDATE`
	return scanTransaction(tx.QueryRow(ctx, query, reference))
}

// GetByReferenceAndUser fetches a transaction only if it belongs to the user.
func (r *TransactionRepo) GetByReferenceAndUser(ctx context.Context, reference string, userID uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1 AND user_id = $2`
	return scanTransaction(r.pool.QueryRow(ctx, query, reference, userID))
}

// Settle marks a transaction terminal and records its settlement metadata.
func (r *TransactionRepo) Settle(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus, md *domain.TransactionMetadata) error {
	metadata, err := marshalMetadata(md)
	if err != nil {
		return err
	}

	query := `UPDATE transactions SET status = $1, metadata = $2, settled_at = $3 WHERE id = $4`

	tag, err := tx.Exec(ctx, query, status, metadata, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("settle transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

// ListByWallet fetches a wallet's ledger entries, newest first.
func (r *TransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE wallet_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var metadata []byte
		err := rows.Scan(
			&t.ID, &t.Reference, &t.WalletID, &t.UserID,
			&t.Type, &t.Direction, &t.Amount, &t.Status,
			&t.RelatedTransactionID, &metadata, &t.CreatedAt, &t.SettledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		if t.Metadata, err = unmarshalMetadata(metadata); err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, nil
}

// scanTransaction scans a single row into a Transaction.
func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	var metadata []byte
	err := row.Scan(
		&t.ID, &t.Reference, &t.WalletID, &t.UserID,
		&t.Type, &t.Direction, &t.Amount, &t.Status,
		&t.RelatedTransactionID, &metadata, &t.CreatedAt, &t.SettledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	if t.Metadata, err = unmarshalMetadata(metadata); err != nil {
		return nil, err
	}
	return t, nil
}

func marshalMetadata(md *domain.TransactionMetadata) ([]byte, error) {
	if md == nil {
		return nil, nil
	}
	b, err := json.Marshal(md)
	if err != nil {
		return nil, fmt.Errorf("marshal transaction metadata: %w", err)
	}
	return b, nil
}

func unmarshalMetadata(b []byte) (*domain.TransactionMetadata, error) {
	if len(b) == 0 {
		return nil, nil
	}
	md := &domain.TransactionMetadata{}
	if err := json.Unmarshal(b, md); err != nil {
		return nil, fmt.Errorf("unmarshal transaction metadata: %w", err)
	}
	return md, nil
}
