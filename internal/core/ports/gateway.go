package ports

import "context"

//go:generate mockgen -source=gateway.go -destination=mocks/gateway_mock.go -package=mocks

// GatewayClient is the outbound payment gateway boundary. Implementations
// must bound every call with a timeout and surface failures as errors; they
// never touch the ledger.
type GatewayClient interface {
	Initialize(ctx context.Context, req InitializePaymentRequest) (*InitializePaymentResponse, error)
	Verify(ctx context.Context, reference string) (*VerifyPaymentResponse, error)
}

// InitializePaymentRequest starts a hosted checkout for a deposit.
type InitializePaymentRequest struct {
	Email     string
	Amount    int64 // minor units
	Reference string
}

// InitializePaymentResponse carries the checkout handoff.
type InitializePaymentResponse struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyPaymentResponse is the gateway's view of a transaction.
type VerifyPaymentResponse struct {
	Reference string
	Status    string // success, failed, abandoned, pending
	Amount    int64  // minor units
	Channel   string
	PaidAt    string
}

// GoogleOAuthClient is the outbound Google sign-in boundary.
type GoogleOAuthClient interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*GoogleProfile, error)
}

// GoogleProfile is the verified identity returned by Google.
type GoogleProfile struct {
	GoogleID string
	Email    string
	FullName string
}
