package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptWindow = 15 * time.Minute
	maxFailures   = 10
)

// SignInLimiter throttles repeated failed sign-ins per username.
// Key format: signin_fail:<username>, an attempt counter expiring after
// attemptWindow. A limiter failure never decides authentication; callers
// treat it as a store error, not as a verdict.
type SignInLimiter struct {
	client *redis.Client
}

// NewSignInLimiter creates a SignInLimiter wrapping the given Redis client.
func NewSignInLimiter(client *redis.Client) *SignInLimiter {
	return &SignInLimiter{client: client}
}

// Blocked reports whether the username has exhausted its failure budget for
// the current window.
func (l *SignInLimiter) Blocked(ctx context.Context, username string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("signin limiter check: %w", err)
	}
	return n >= maxFailures, nil
}

// RecordFailure counts one failed attempt; the first failure opens the window.
func (l *SignInLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.key(username)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("signin limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, attemptWindow).Err(); err != nil {
			return fmt.Errorf("signin limiter expire: %w", err)
		}
	}
	return nil
}

// Reset clears the failure counter after a successful sign-in.
func (l *SignInLimiter) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, l.key(username)).Err()
}

func (l *SignInLimiter) key(username string) string {
	return "signin_fail:" + username
}
