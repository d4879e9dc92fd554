package domain

import (
	"time"

	"github.com/google/uuid"
)

// WebhookLog records every inbound provider event before it is acted on.
// Rows are appended unconditionally (even for events that turn out to be
// no-ops) and flipped to processed once handling finishes.
type WebhookLog struct {
	ID          uuid.UUID  `json:"id"`
	Provider    string     `json:"provider"`
	Payload     []byte     `json:"payload"` // raw event JSON
	Headers     []byte     `json:"headers"` // raw request headers JSON
	Processed   bool       `json:"processed"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

// WebhookEvent is the parsed body of a Paystack event notification.
type WebhookEvent struct {
	Event string           `json:"event"`
	Data  WebhookEventData `json:"data"`
}

// WebhookEventData is the subset of the event payload the ledger cares about.
type WebhookEventData struct {
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"` // minor units as reported by the gateway
	Status    string `json:"status"`
	Channel   string `json:"channel,omitempty"`
	PaidAt    string `json:"paid_at,omitempty"`
}

// EventChargeSuccess is the only event type that settles deposits.
const EventChargeSuccess = "charge.success"

// IsChargeSuccess reports whether this event can settle a pending deposit.
func (e *WebhookEvent) IsChargeSuccess() bool {
	return e.Event == EventChargeSuccess && e.Data.Status == "success"
}
