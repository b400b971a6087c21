package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/you/playconnect/domain"
)

func newTestCodeStore(t *testing.T, ttl time.Duration) (domain.ResetCodeStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewResetCodeRepository(client, ttl), mr
}

func TestResetCodeRepositoryImpl_PutAndConsume(t *testing.T) {
	store, _ := newTestCodeStore(t, 10*time.Minute)
	ctx := context.Background()

	if err := store.Put(ctx, "test@example.com", "123456"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Consume(ctx, "test@example.com", "123456"); err != nil {
		t.Fatalf("consume: %v", err)
	}
}

func TestResetCodeRepositoryImpl_Consume_SingleUse(t *testing.T) {
	store, _ := newTestCodeStore(t, 10*time.Minute)
	ctx := context.Background()

	if err := store.Put(ctx, "test@example.com", "123456"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Consume(ctx, "test@example.com", "123456"); err != nil {
		t.Fatalf("first consume: %v", err)
	}
	err := store.Consume(ctx, "test@example.com", "123456")
	if !errors.Is(err, domain.ErrResetCodeInvalid) {
		t.Fatalf("expected ErrResetCodeInvalid on reuse, got %v", err)
	}
}

func TestResetCodeRepositoryImpl_Consume_WrongCode(t *testing.T) {
	store, _ := newTestCodeStore(t, 10*time.Minute)
	ctx := context.Background()

	if err := store.Put(ctx, "test@example.com", "123456"); err != nil {
		t.Fatalf("put: %v", err)
	}

	err := store.Consume(ctx, "test@example.com", "000000")
	if !errors.Is(err, domain.ErrResetCodeInvalid) {
		t.Fatalf("expected ErrResetCodeInvalid, got %v", err)
	}

	// A wrong guess must not burn the stored code.
	if err := store.Consume(ctx, "test@example.com", "123456"); err != nil {
		t.Fatalf("correct code should still work: %v", err)
	}
}

func TestResetCodeRepositoryImpl_Put_ReplacesPreviousCode(t *testing.T) {
	store, _ := newTestCodeStore(t, 10*time.Minute)
	ctx := context.Background()

	if err := store.Put(ctx, "test@example.com", "111111"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, "test@example.com", "222222"); err != nil {
		t.Fatalf("put: %v", err)
	}

	if err := store.Consume(ctx, "test@example.com", "111111"); !errors.Is(err, domain.ErrResetCodeInvalid) {
		t.Fatalf("expected the old code to be dead, got %v", err)
	}
	if err := store.Consume(ctx, "test@example.com", "222222"); err != nil {
		t.Fatalf("latest code should redeem: %v", err)
	}
}

func TestResetCodeRepositoryImpl_Consume_Expired(t *testing.T) {
	store, mr := newTestCodeStore(t, 10*time.Minute)
	ctx := context.Background()

	if err := store.Put(ctx, "test@example.com", "123456"); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(11 * time.Minute)

	err := store.Consume(ctx, "test@example.com", "123456")
	if !errors.Is(err, domain.ErrResetCodeInvalid) {
		t.Fatalf("expected ErrResetCodeInvalid after expiry, got %v", err)
	}
}
