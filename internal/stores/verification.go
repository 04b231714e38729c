package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrVerificationRedisUnavailable wraps any Redis transport failure; callers
// treat it as a fatal infrastructure error, not a domain error.
var ErrVerificationRedisUnavailable = errors.New("verification redis unavailable")

// PendingVerification is a stored, not-yet-consumed email verification code.
type PendingVerification struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// VerificationStore is a TTL key-value map from email address to the single
// pending verification code for that address. Writes are last-writer-wins:
// a new Put fully replaces the prior entry and restarts its expiry clock.
type VerificationStore struct {
	redis  redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewVerificationStore(redisClient redis.UniversalClient, prefix string, ttl time.Duration) *VerificationStore {
	if prefix == "" {
		prefix = "eav"
	}
	return &VerificationStore{
		redis:  redisClient,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *VerificationStore) key(email string) string {
	return s.prefix + ":" + email
}

// Put inserts or overwrites the entry for email and resets its expiry to the
// store TTL.
func (s *VerificationStore) Put(ctx context.Context, email, code string) error {
	record := PendingVerification{
		Email:     email,
		Code:      code,
		CreatedAt: time.Now(),
	}
	encoded, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := s.redis.Set(ctx, s.key(email), encoded, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrVerificationRedisUnavailable, err)
	}
	return nil
}

// Get returns the pending entry for email, or nil when absent. Entries past
// their TTL are absent for all observers: Redis evicts them, and a record
// whose CreatedAt is older than the TTL is deleted and treated as missing
// even if eviction lagged.
func (s *VerificationStore) Get(ctx context.Context, email string) (*PendingVerification, error) {
	data, err := s.redis.Get(ctx, s.key(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrVerificationRedisUnavailable, err)
	}

	var record PendingVerification
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerificationRedisUnavailable, err)
	}

	if time.Since(record.CreatedAt) > s.ttl {
		_ = s.redis.Del(ctx, s.key(email)).Err()
		return nil, nil
	}

	return &record, nil
}

// Remove deletes the entry for email immediately. Removing an absent entry
// is a no-op.
func (s *VerificationStore) Remove(ctx context.Context, email string) error {
	if err := s.redis.Del(ctx, s.key(email)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrVerificationRedisUnavailable, err)
	}
	return nil
}
