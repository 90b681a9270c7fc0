package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/paradise-nursery/storefront-backend/pkg/logger"
	"github.com/paradise-nursery/storefront-backend/pkg/redis"
)

type keyValueStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

// Store persists cart snapshots as JSON in Redis, keyed by the client's
// cart-session id.
type Store struct {
	kv   keyValueStore
	ttl  time.Duration
	logg *logger.Logger
}

// NewStore builds a snapshot store with the given session TTL.
func NewStore(kv keyValueStore, ttl time.Duration, logg *logger.Logger) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("key-value store required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Store{kv: kv, ttl: ttl, logg: logg}, nil
}

// Load returns the cart for the session. A missing or unreadable snapshot
// yields a fresh empty cart rather than an error, so a corrupt entry can
// never wedge the storefront.
func (s *Store) Load(ctx context.Context, sessionID string) (*Cart, error) {
	raw, err := s.kv.Get(ctx, s.kv.CartKey(sessionID))
	if err != nil {
		if redis.IsNil(err) {
			return NewCart(sessionID), nil
		}
		return nil, fmt.Errorf("loading cart snapshot: %w", err)
	}

	loaded := &Cart{}
	if err := json.Unmarshal([]byte(raw), loaded); err != nil {
		s.logg.Warn(s.logg.WithCartSession(ctx, sessionID), "discarding corrupt cart snapshot")
		return NewCart(sessionID), nil
	}
	loaded.SessionID = sessionID
	if loaded.Items == nil {
		loaded.Items = []Line{}
	}
	return loaded, nil
}

// Save writes the snapshot and refreshes the session TTL.
func (s *Store) Save(ctx context.Context, c *Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding cart snapshot: %w", err)
	}
	if err := s.kv.Set(ctx, s.kv.CartKey(c.SessionID), string(raw), s.ttl); err != nil {
		return fmt.Errorf("saving cart snapshot: %w", err)
	}
	return nil
}

// Delete removes the session's snapshot.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.kv.Del(ctx, s.kv.CartKey(sessionID)); err != nil {
		return fmt.Errorf("deleting cart snapshot: %w", err)
	}
	return nil
}
