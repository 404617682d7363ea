package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/ports"
)

const (
	idempotencyTTL = 24 * time.Hour
	// pendingTTL bounds how long a crashed request can hold a key.
	pendingTTL    = time.Minute
	pendingMarker = "0"
)

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// IdempotencyStore maps client Idempotency-Key headers to the customer id the
// first request produced.
// Key format: idempotency:customer:<key>
type IdempotencyStore struct {
	client     *redis.Client
	ttl        time.Duration
	pendingTTL time.Duration
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: idempotencyTTL, pendingTTL: pendingTTL}
}

// Claim reserves key with a short-lived pending marker. A taken key is
// reported with the customer id stored under it, 0 meaning still pending.
func (s *IdempotencyStore) Claim(ctx context.Context, key string) (bool, int64, error) {
	ok, err := s.client.SetNX(ctx, s.key(key), pendingMarker, s.pendingTTL).Result()
	if err != nil {
		return false, 0, fmt.Errorf("idempotency claim: %w", err)
	}
	if ok {
		return true, 0, nil
	}

	raw, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		// The pending claim expired between the two calls.
		return false, 0, nil
	}
	if err != nil {
		return false, 0, fmt.Errorf("idempotency claim: %w", err)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, 0, fmt.Errorf("idempotency claim: corrupt value %q: %w", raw, err)
	}
	return false, id, nil
}

// Remember replaces the pending marker with customerID for the full TTL.
func (s *IdempotencyStore) Remember(ctx context.Context, key string, customerID int64) error {
	if err := s.client.Set(ctx, s.key(key), customerID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

// Release removes the claim so the client can retry with the same key.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(key string) string {
	return "idempotency:customer:" + key
}
