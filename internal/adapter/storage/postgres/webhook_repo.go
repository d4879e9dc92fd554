package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WebhookLogRepo implements ports.WebhookLogRepository. Writes run on the
// pool, not inside the business transaction: the raw event must survive
// even when processing fails afterwards.
type WebhookLogRepo struct {
	pool Pool
}

// NewWebhookLogRepo creates a new WebhookLogRepo.
func NewWebhookLogRepo(pool Pool) *WebhookLogRepo {
	return &WebhookLogRepo{pool: pool}
}

// Create appends an inbound provider event.
func (r *WebhookLogRepo) Create(ctx context.Context, log *domain.WebhookLog) error {
	query := `INSERT INTO webhook_logs (id, provider, payload, headers, processed, created_at, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		log.ID, log.Provider, log.Payload, log.Headers,
		log.Processed, log.CreatedAt, log.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook log: %w", err)
	}
	return nil
}

// MarkProcessed flips a log entry to processed.
func (r *WebhookLogRepo) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE webhook_logs SET processed = TRUE, processed_at = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("mark webhook log processed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook log not found: %s", id)
	}
	return nil
}

// GetByID fetches a webhook log entry.
func (r *WebhookLogRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookLog, error) {
	query := `SELECT id, provider, payload, headers, processed, created_at, processed_at
		FROM webhook_logs WHERE id = $1`

	l := &domain.WebhookLog{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Provider, &l.Payload, &l.Headers,
		&l.Processed, &l.CreatedAt, &l.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook log: %w", err)
	}
	return l, nil
}
