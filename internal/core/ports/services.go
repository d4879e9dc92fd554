package ports

import (
	"context"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// WebhookSignatureService authenticates inbound provider events.
type WebhookSignatureService interface {
	// Verify checks the signature header against the exact raw body bytes.
	Verify(payload []byte, signature string) bool
}

// SettledCache is the Redis-layer fast path for webhook redelivery. It only
// short-circuits references already known to be terminal; the transaction
// row stays authoritative.
type SettledCache interface {
	IsSettled(ctx context.Context, reference string) (bool, error)
	MarkSettled(ctx context.Context, reference string, ttl time.Duration) error
}

// OAuthStateStore tracks single-use OAuth state tokens for CSRF protection.
type OAuthStateStore interface {
	Issue(ctx context.Context, state string, ttl time.Duration) (bool, error)
	Consume(ctx context.Context, state string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID uuid.UUID, email string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// --- Service Ports (Business Logic) ---

// DepositService drives the deposit lifecycle: PENDING at initiation,
// settled to SUCCESS or FAILED by gateway events.
type DepositService interface {
	InitiateDeposit(ctx context.Context, principal *domain.Principal, amount int64) (*DepositIntent, error)
	// Reconcile applies a verified gateway event to the ledger. Events for
	// unknown or already-settled references are absorbed without error.
	Reconcile(ctx context.Context, event *domain.WebhookEvent) error
	CheckStatus(ctx context.Context, principal *domain.Principal, reference string) (*DepositStatus, error)
}

// DepositIntent is returned from InitiateDeposit; the caller completes
// payment at the authorization URL.
type DepositIntent struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
	Amount           int64
}

// DepositStatus is the local view of a deposit, optionally enriched with a
// live gateway check.
type DepositStatus struct {
	Reference     string
	Amount        int64
	Status        domain.TransactionStatus
	GatewayStatus string // empty when the gateway was not reachable
	CreatedAt     time.Time
}

// TransferService moves funds between two wallets synchronously.
type TransferService interface {
	Transfer(ctx context.Context, principal *domain.Principal, req TransferRequest) (*TransferResult, error)
}

// TransferRequest holds validated input for a wallet-to-wallet transfer.
type TransferRequest struct {
	RecipientWalletNumber string
	Amount                int64
}

// TransferResult reports the completed transfer.
type TransferResult struct {
	Reference       string
	Amount          int64
	RecipientWallet string
	NewBalance      int64
}

// WalletService exposes read-side wallet queries.
type WalletService interface {
	GetBalance(ctx context.Context, principal *domain.Principal) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, principal *domain.Principal, limit, offset int) ([]domain.Transaction, error)
}

// WebhookIngestService records and dispatches inbound provider events.
// The raw event is persisted before any business effect.
type WebhookIngestService interface {
	Ingest(ctx context.Context, provider string, payload []byte, headers []byte) error
}

// AuthService signs users in via Google and provisions their wallet on
// first login.
type AuthService interface {
	// GoogleAuthURL issues a single-use state token and returns the consent URL.
	GoogleAuthURL(ctx context.Context) (string, error)
	HandleGoogleCallback(ctx context.Context, state, code string) (*LoginResult, error)
}

// LoginResult is returned after a successful OAuth exchange.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
	Wallet    *domain.Wallet
}

// APIKeyService manages machine credentials.
type APIKeyService interface {
	CreateKey(ctx context.Context, principal *domain.Principal, req CreateKeyRequest) (*CreatedKey, error)
	RolloverKey(ctx context.Context, principal *domain.Principal, req RolloverKeyRequest) (*CreatedKey, error)
	// ResolveKey authenticates a presented plaintext key.
	ResolveKey(ctx context.Context, plaintext string) (*domain.APIKey, error)
}

// CreateKeyRequest holds validated input for key creation.
type CreateKeyRequest struct {
	Name        string
	Permissions []domain.Permission
	Expiry      string // 1H, 1D, 1M, 1Y
}

// RolloverKeyRequest holds validated input for replacing an expired key.
type RolloverKeyRequest struct {
	ExpiredKeyID uuid.UUID
	Expiry       string
}

// CreatedKey carries the one-time plaintext next to the stored record.
type CreatedKey struct {
	Key       *domain.APIKey
	Plaintext string
}
