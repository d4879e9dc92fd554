package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// PaystackSignatureService implements ports.WebhookSignatureService using
// HMAC-SHA512, the scheme Paystack signs webhook deliveries with.
type PaystackSignatureService struct {
	secretKey []byte
}

// NewPaystackSignatureService creates a signature verifier bound to the
// Paystack secret key.
func NewPaystackSignatureService(secretKey string) *PaystackSignatureService {
	return &PaystackSignatureService{secretKey: []byte(secretKey)}
}

// Sign computes HMAC-SHA512 of the payload.
// Returns lowercase hex-encoded signature.
func (s *PaystackSignatureService) Sign(payload []byte) string {
	mac := hmac.New(sha512.New, s.secretKey)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks the x-paystack-signature header against the exact raw body
// bytes. Uses constant-time comparison to prevent timing attacks.
func (s *PaystackSignatureService) Verify(payload []byte, signature string) bool {
	expected := s.Sign(payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}
