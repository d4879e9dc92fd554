package dto

// DepositRequest is the request body for initiating a deposit.
type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// TransferRequest is the request body for a wallet-to-wallet transfer.
type TransferRequest struct {
	WalletNumber string `json:"wallet_number" binding:"required,len=10,numeric"`
	Amount       int64  `json:"amount" binding:"required,gt=0"`
}

// CreateKeyRequest is the request body for minting an API key.
type CreateKeyRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Permissions []string `json:"permissions" binding:"required,min=1,dive,oneof=deposit transfer read"`
	Expiry      string   `json:"expiry" binding:"required,oneof=1H 1D 1M 1Y"`
}

// RolloverKeyRequest is the request body for replacing an expired key.
type RolloverKeyRequest struct {
	ExpiredKeyID string `json:"expired_key_id" binding:"required,uuid"`
	Expiry       string `json:"expiry" binding:"required,oneof=1H 1D 1M 1Y"`
}

// DepositStatusURI binds the reference path parameter on status checks.
type DepositStatusURI struct {
	Reference string `uri:"reference" binding:"required,max=64,safe_id"`
}

// AuthURLResponse carries the Google consent URL for the client to follow.
type AuthURLResponse struct {
	AuthorizationURL string `json:"authorization_url"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// WalletResponse is the public view of a wallet.
type WalletResponse struct {
	WalletNumber string `json:"wallet_number"`
	Balance      int64  `json:"balance"`
	Currency     string `json:"currency"`
}

// LoginResponse is the response body for a completed Google sign-in.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresAt   string         `json:"expires_at"`
	User        UserResponse   `json:"user"`
	Wallet      WalletResponse `json:"wallet"`
}

// DepositResponse returns the gateway checkout session for a new deposit.
type DepositResponse struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Amount           int64  `json:"amount"`
}

// TransferResponse is the response body for a completed transfer.
type TransferResponse struct {
	Reference       string `json:"reference"`
	Amount          int64  `json:"amount"`
	RecipientWallet string `json:"recipient_wallet"`
	NewBalance      int64  `json:"new_balance"`
}

// DepositStatusResponse reports the ledger status of a deposit, enriched
// with the live gateway status when it could be fetched.
type DepositStatusResponse struct {
	Reference     string `json:"reference"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	GatewayStatus string `json:"gateway_status,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// TransactionResponse is one ledger entry in a listing.
type TransactionResponse struct {
	ID                   string  `json:"id"`
	Reference            string  `json:"reference"`
	Type                 string  `json:"type"`
	Direction            string  `json:"direction"`
	Amount               int64   `json:"amount"`
	Status               string  `json:"status"`
	Counterparty         *string `json:"counterparty,omitempty"`
	RelatedTransactionID *string `json:"related_transaction_id,omitempty"`
	CreatedAt            string  `json:"created_at"`
	SettledAt            *string `json:"settled_at,omitempty"`
}

// TransactionListResponse wraps a page of ledger entries.
type TransactionListResponse struct {
	Items  []TransactionResponse `json:"items"`
	Count  int                   `json:"count"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// CreatedKeyResponse returns a newly minted API key. Key holds the
// plaintext and is shown exactly once.
type CreatedKeyResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Key         string   `json:"key"`
	Permissions []string `json:"permissions"`
	ExpiresAt   string   `json:"expires_at"`
}
