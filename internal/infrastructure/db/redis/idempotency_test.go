package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*IdempotencyStore, *miniredis.Miniredis) {
	t.Helper()
	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client, err := Connect(context.Background(), Config{Addr: mini.Addr()})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewIdempotencyStore(client), mini
}

func TestIdempotencyStore_ClaimRememberReplay(t *testing.T) {
	store, mini := newTestStore(t)
	ctx := context.Background()

	claimed, id, err := store.Claim(ctx, "k1")
	if err != nil || !claimed || id != 0 {
		t.Fatalf("Claim = (%v, %d, %v), want (true, 0, nil)", claimed, id, err)
	}
	if ttl := mini.TTL("idempotency:customer:k1"); ttl != pendingTTL {
		t.Fatalf("unexpected pending ttl %v", ttl)
	}

	if err := store.Remember(ctx, "k1", 42); err != nil {
		t.Fatalf("Remember: %v", err)
	}
	claimed, id, err = store.Claim(ctx, "k1")
	if err != nil || claimed || id != 42 {
		t.Fatalf("Claim = (%v, %d, %v), want (false, 42, nil)", claimed, id, err)
	}
	if ttl := mini.TTL("idempotency:customer:k1"); ttl != idempotencyTTL {
		t.Fatalf("unexpected ttl %v", ttl)
	}
}

func TestIdempotencyStore_SecondClaimSeesPending(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if claimed, _, _ := store.Claim(ctx, "k1"); !claimed {
		t.Fatalf("first claim must win")
	}
	claimed, id, err := store.Claim(ctx, "k1")
	if err != nil || claimed || id != 0 {
		t.Fatalf("Claim = (%v, %d, %v), want (false, 0, nil)", claimed, id, err)
	}
}

func TestIdempotencyStore_Release(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, _, _ = store.Claim(ctx, "k1")
	if err := store.Release(ctx, "k1"); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if claimed, _, _ := store.Claim(ctx, "k1"); !claimed {
		t.Fatalf("released key must be claimable again")
	}
}

func TestIdempotencyStore_Expires(t *testing.T) {
	store, mini := newTestStore(t)
	ctx := context.Background()

	_, _, _ = store.Claim(ctx, "pending")
	mini.FastForward(pendingTTL + time.Second)
	if claimed, _, _ := store.Claim(ctx, "pending"); !claimed {
		t.Fatalf("stale pending claim must expire")
	}

	_ = store.Remember(ctx, "k1", 1)
	mini.FastForward(idempotencyTTL + time.Second)
	if claimed, _, _ := store.Claim(ctx, "k1"); !claimed {
		t.Fatalf("expected key to expire")
	}
}

func TestIdempotencyStore_CorruptValue(t *testing.T) {
	store, mini := newTestStore(t)
	if err := mini.Set("idempotency:customer:bad", "not-a-number"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := store.Claim(context.Background(), "bad"); err == nil {
		t.Fatalf("expected error for corrupt value")
	}
}

func TestPinger(t *testing.T) {
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	defer client.Close()

	if err := (Pinger{Client: client}).Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	mini.Close()
	if err := (Pinger{Client: client}).Ping(context.Background()); err == nil {
		t.Fatalf("expected ping to fail after shutdown")
	}
}
