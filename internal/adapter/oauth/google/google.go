package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/idyweb/Wallet-Service-with-Paystack/config"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	authEndpoint     = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenEndpoint    = "https://oauth2.googleapis.com/token"
	userinfoEndpoint = "https://www.googleapis.com/oauth2/v1/userinfo"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client drives the Google OAuth code flow. It implements
// ports.GoogleOAuthClient.
type Client struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   HTTPClient
	log          zerolog.Logger
}

// NewClient creates a Google OAuth client.
func NewClient(cfg config.GoogleConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURI:  cfg.RedirectURI,
		httpClient:   httpClient,
		log:          log,
	}
}

// AuthURL builds the consent page URL the user is sent to.
func (c *Client) AuthURL(state string) string {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", "openid email profile")
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("state", state)
	return authEndpoint + "?" + params.Encode()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type userinfoResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Exchange trades an authorization code for the user's verified profile.
func (c *Client) Exchange(ctx context.Context, code string) (*ports.GoogleProfile, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("redirect_uri", c.redirectURI)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("google token: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var token tokenResponse
	if err := c.doJSON(req, &token); err != nil {
		return nil, fmt.Errorf("google token: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("google token: empty access token")
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, userinfoEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("google userinfo: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	var info userinfoResponse
	if err := c.doJSON(req, &info); err != nil {
		return nil, fmt.Errorf("google userinfo: %w", err)
	}
	if info.ID == "" || info.Email == "" {
		return nil, fmt.Errorf("google userinfo: incomplete profile")
	}

	fullName := info.Name
	if fullName == "" {
		fullName = info.Email
	}

	c.log.Debug().Str("email", info.Email).Msg("google: profile fetched")

	return &ports.GoogleProfile{
		GoogleID: info.ID,
		Email:    info.Email,
		FullName: fullName,
	}, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
