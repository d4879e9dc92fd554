package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// TransactionDirection tells which side of the movement a row records.
type TransactionDirection string

const (
	DirectionDebit  TransactionDirection = "DEBIT"
	DirectionCredit TransactionDirection = "CREDIT"
)

// TransactionStatus represents the lifecycle state of a transaction.
// PENDING -> SUCCESS | FAILED; terminal states never change again.
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// TransactionMetadata carries the bounded per-type context of a transaction.
// Transfer rows record the counterparty wallet number; deposit rows record
// what the gateway reported at settlement.
type TransactionMetadata struct {
	SenderWallet     string `json:"sender_wallet,omitempty"`
	RecipientWallet  string `json:"recipient_wallet,omitempty"`
	GatewayStatus    string `json:"gateway_status,omitempty"`
	GatewayChannel   string `json:"gateway_channel,omitempty"`
	GatewayReference string `json:"gateway_reference,omitempty"`
	GatewayAmount    int64  `json:"gateway_amount,omitempty"`
	PaidAt           string `json:"paid_at,omitempty"`
}

// Transaction is an immutable ledger entry. Amount is in minor units and
// always positive; Direction says whether it left or entered the wallet.
type Transaction struct {
	ID                   uuid.UUID            `json:"id"`
	Reference            string               `json:"reference"`
	WalletID             uuid.UUID            `json:"wallet_id"`
	UserID               uuid.UUID            `json:"user_id"`
	Type                 TransactionType      `json:"type"`
	Direction            TransactionDirection `json:"direction"`
	Amount               int64                `json:"amount"`
	Status               TransactionStatus    `json:"status"`
	RelatedTransactionID *uuid.UUID           `json:"related_transaction_id,omitempty"`
	Metadata             *TransactionMetadata `json:"metadata,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	SettledAt            *time.Time           `json:"settled_at,omitempty"`
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusSuccess ||
		t.Status == TransactionStatusFailed
}

const (
	depositRefPrefix  = "dep_"
	transferRefPrefix = "txf_"
)

// NewDepositReference returns a fresh deposit reference, e.g. dep_1a2b3c4d5e6f7a8b.
func NewDepositReference() string {
	return depositRefPrefix + shortID()
}

// NewTransferReference returns the shared stem of a transfer's two legs.
// The debit row appends "_debit", the credit row "_credit".
func NewTransferReference() string {
	return transferRefPrefix + shortID()
}

func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}
