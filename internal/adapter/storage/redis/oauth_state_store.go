package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// OAuthStateStore tracks single-use OAuth state tokens using Redis SET NX.
// A state is issued before redirecting to the provider and consumed exactly
// once on callback, which blocks both CSRF and replayed callbacks.
type OAuthStateStore struct {
	client *goredis.Client
	prefix string
}

// NewOAuthStateStore creates a new Redis-backed OAuth state store.
func NewOAuthStateStore(client *goredis.Client) *OAuthStateStore {
	return &OAuthStateStore{
		client: client,
		prefix: "oauth:state:",
	}
}

// Issue registers a freshly generated state token with a TTL.
// Returns false if the state already exists, which indicates a generator
// collision and should be treated as a failed issue.
func (s *OAuthStateStore) Issue(ctx context.Context, state string, ttl time.Duration) (bool, error) {
	result, err := s.client.SetArgs(ctx, s.prefix+state, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis oauth state issue: %w", err)
	}
	return result == "OK", nil
}

// Consume atomically removes a state token.
// Returns true only if the state existed, so a second callback with the
// same state is rejected.
func (s *OAuthStateStore) Consume(ctx context.Context, state string) (bool, error) {
	_, err := s.client.GetDel(ctx, s.prefix+state).Result()
	if err != nil {
		if err == goredis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis oauth state consume: %w", err)
	}
	return true, nil
}
