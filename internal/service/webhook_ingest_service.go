package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/metrics"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WebhookIngestServiceImpl implements ports.WebhookIngestService.
type WebhookIngestServiceImpl struct {
	webhookRepo ports.WebhookLogRepository
	depositSvc  ports.DepositService
	metrics     *metrics.Metrics
	log         zerolog.Logger
}

// NewWebhookIngestService creates a new WebhookIngestServiceImpl.
func NewWebhookIngestService(
	webhookRepo ports.WebhookLogRepository,
	depositSvc ports.DepositService,
	m *metrics.Metrics,
	log zerolog.Logger,
) *WebhookIngestServiceImpl {
	return &WebhookIngestServiceImpl{
		webhookRepo: webhookRepo,
		depositSvc:  depositSvc,
		metrics:     m,
		log:         log,
	}
}

// Ingest durably records a provider event, then applies it to the ledger.
// Business outcomes such as unknown references, duplicates and foreign event
// types are absorbed; only infrastructure failures return an error, and the
// stored row stays unprocessed so the redelivery can be traced.
func (s *WebhookIngestServiceImpl) Ingest(ctx context.Context, provider string, payload []byte, headers []byte) error {
	// Persist: raw event before any business effect
	entry := &domain.WebhookLog{
		ID:        uuid.New(),
		Provider:  provider,
		Payload:   payload,
		Headers:   headers,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.webhookRepo.Create(ctx, entry); err != nil {
		s.metrics.ObserveWebhookEvent("store_failed")
		return apperror.InternalError(fmt.Errorf("store webhook: %w", err))
	}

	var event domain.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		// Malformed bodies are kept for inspection and acknowledged
		s.log.Warn().Err(err).Str("webhook_id", entry.ID.String()).Msg("unparseable webhook payload")
		s.markProcessed(ctx, entry.ID)
		s.metrics.ObserveWebhookEvent("malformed")
		return nil
	}

	if err := s.depositSvc.Reconcile(ctx, &event); err != nil {
		s.metrics.ObserveWebhookEvent("reconcile_failed")
		return err
	}

	s.markProcessed(ctx, entry.ID)
	s.metrics.ObserveWebhookEvent("processed")
	s.log.Info().
		Str("webhook_id", entry.ID.String()).
		Str("event", event.Event).
		Str("reference", event.Data.Reference).
		Msg("webhook processed successfully")
	return nil
}

func (s *WebhookIngestServiceImpl) markProcessed(ctx context.Context, id uuid.UUID) {
	if err := s.webhookRepo.MarkProcessed(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("webhook_id", id.String()).Msg("failed to mark webhook processed")
	}
}
