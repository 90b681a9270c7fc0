package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/paradise-nursery/storefront-backend/pkg/config"
	redisclient "github.com/paradise-nursery/storefront-backend/pkg/redis"
)

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type sessionKeyer interface {
	SessionKey(tokenID string) string
}

// AccessSessionChecker is the surface auth middleware needs to verify that a
// token's server-side session is still alive (i.e. not logged out).
type AccessSessionChecker interface {
	HasSession(ctx context.Context, tokenID string) (bool, error)
}

// Manager tracks issued access tokens in Redis so logout can revoke them
// before their JWT expiry.
type Manager struct {
	store sessionStore
	keyer sessionKeyer
	ttl   time.Duration
}

// NewManager builds a session manager backed by the provided Redis client.
func NewManager(client *redisclient.Client, cfg config.JWTConfig) (*Manager, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	ttl := cfg.SessionTTL()
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Manager{store: client, keyer: client, ttl: ttl}, nil
}

// Create registers the token id for the configured session lifetime.
func (m *Manager) Create(ctx context.Context, tokenID string) error {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return fmt.Errorf("token id is required")
	}
	return m.store.Set(ctx, m.keyer.SessionKey(tokenID), "1", m.ttl)
}

// HasSession reports whether the token id still has a live session.
func (m *Manager) HasSession(ctx context.Context, tokenID string) (bool, error) {
	if strings.TrimSpace(tokenID) == "" {
		return false, nil
	}
	if _, err := m.store.Get(ctx, m.keyer.SessionKey(tokenID)); err != nil {
		if redisclient.IsNil(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Revoke drops the session for the token id; revoking an unknown id is a no-op.
func (m *Manager) Revoke(ctx context.Context, tokenID string) error {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return nil
	}
	return m.store.Del(ctx, m.keyer.SessionKey(tokenID))
}
