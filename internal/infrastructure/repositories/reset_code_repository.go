package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/playconnect/domain"
)

// consumeScript compares and deletes in one server-side step so a code can
// never be redeemed twice, even by concurrent requests.
var consumeScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	redis.call('DEL', KEYS[1])
	return 1
end
return 0
`)

// ResetCodeRepositoryImpl implements domain.ResetCodeStore using Redis
type ResetCodeRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewResetCodeRepository creates a new reset code store
func NewResetCodeRepository(client *redis.Client, ttl time.Duration) domain.ResetCodeStore {
	return &ResetCodeRepositoryImpl{
		client: client,
		prefix: "pwdreset:",
		ttl:    ttl,
	}
}

// Put implements domain.ResetCodeStore. SET overwrites any previous code for
// the email, so at most one code is ever active per address.
func (r *ResetCodeRepositoryImpl) Put(ctx context.Context, email, code string) error {
	key := r.prefix + email
	if err := r.client.Set(ctx, key, code, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}
	return nil
}

// Consume implements domain.ResetCodeStore
func (r *ResetCodeRepositoryImpl) Consume(ctx context.Context, email, code string) error {
	key := r.prefix + email
	ok, err := consumeScript.Run(ctx, r.client, []string{key}, code).Int()
	if err != nil {
		return fmt.Errorf("failed to consume reset code: %w", err)
	}
	if ok != 1 {
		return domain.ErrResetCodeInvalid
	}
	return nil
}
