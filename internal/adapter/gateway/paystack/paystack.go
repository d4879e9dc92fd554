package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/idyweb/Wallet-Service-with-Paystack/config"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the Paystack REST API. It implements ports.GatewayClient.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a Paystack API client.
func NewClient(cfg config.PaystackConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		secretKey:  cfg.SecretKey,
		httpClient: httpClient,
		log:        log,
	}
}

// envelope is the outer shape of every Paystack response.
// status=false means the request was rejected even on HTTP 200.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initializeRequest struct {
	Email     string `json:"email"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Channel   string `json:"channel"`
	PaidAt    string `json:"paid_at"`
}

// Initialize starts a hosted checkout session for a deposit.
func (c *Client) Initialize(ctx context.Context, req ports.InitializePaymentRequest) (*ports.InitializePaymentResponse, error) {
	body, err := json.Marshal(initializeRequest{
		Email:     req.Email,
		Amount:    req.Amount,
		Reference: req.Reference,
	})
	if err != nil {
		return nil, fmt.Errorf("paystack initialize: marshal request: %w", err)
	}

	var data initializeData
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body), &data); err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("reference", req.Reference).
		Int64("amount", req.Amount).
		Msg("paystack: transaction initialized")

	return &ports.InitializePaymentResponse{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

// Verify fetches the gateway's view of a transaction by reference.
func (c *Client) Verify(ctx context.Context, reference string) (*ports.VerifyPaymentResponse, error) {
	var data verifyData
	if err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &data); err != nil {
		return nil, err
	}

	return &ports.VerifyPaymentResponse{
		Reference: data.Reference,
		Status:    data.Status,
		Amount:    data.Amount,
		Channel:   data.Channel,
		PaidAt:    data.PaidAt,
	}, nil
}

// do executes one API call and unmarshals the envelope data into out.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("paystack %s %s: create request: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paystack %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("paystack %s %s: read response: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("paystack %s %s: decode response (HTTP %d): %w", method, path, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("paystack %s %s: HTTP %d: %s", method, path, resp.StatusCode, env.Message)
	}
	if !env.Status {
		return fmt.Errorf("paystack %s %s: rejected: %s", method, path, env.Message)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("paystack %s %s: decode data: %w", method, path, err)
	}
	return nil
}
