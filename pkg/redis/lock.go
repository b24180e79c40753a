package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotHeld is returned when the lock key is missing or owned by someone else
var ErrLockNotHeld = errors.New("lock was not held by this client")

// ErrLockNotAcquired is returned when all attempts to acquire the lock failed
var ErrLockNotAcquired = errors.New("lock not acquired")

var (
	unlockScript = redis.NewScript(`
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		end
		return 0
	`)
	refreshScript = redis.NewScript(`
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("PEXPIRE", KEYS[1], ARGV[2])
		end
		return 0
	`)
)

// LockOptions represents options for distributed locking
type LockOptions struct {
	// TTL is the lock expiration time
	TTL time.Duration
	// RetryDelay is the delay between retry attempts
	RetryDelay time.Duration
	// MaxRetries is the number of extra attempts; 0 tries once
	MaxRetries int
	// RefreshInterval is the interval used by AutoRefresh
	RefreshInterval time.Duration
	// LockNamespace groups locks under "prefix::namespace::key"
	LockNamespace string
}

// NewLockOptions creates a new lock options with default values
func NewLockOptions() *LockOptions {
	return &LockOptions{
		TTL:             30 * time.Second,
		RetryDelay:      100 * time.Millisecond,
		RefreshInterval: 10 * time.Second,
		LockNamespace:   "locks",
	}
}

// WithTTL sets the lock expiration time
func (lo *LockOptions) WithTTL(ttl time.Duration) *LockOptions {
	lo.TTL = ttl
	return lo
}

// WithMaxRetries sets the maximum number of retry attempts
func (lo *LockOptions) WithMaxRetries(maxRetries int) *LockOptions {
	lo.MaxRetries = maxRetries
	return lo
}

// WithRefreshInterval sets the interval for refreshing the lock
func (lo *LockOptions) WithRefreshInterval(interval time.Duration) *LockOptions {
	lo.RefreshInterval = interval
	return lo
}

// WithLockNamespace sets the namespace for organizing locks
func (lo *LockOptions) WithLockNamespace(namespace string) *LockOptions {
	lo.LockNamespace = namespace
	return lo
}

// Lock represents a distributed lock
type Lock struct {
	client *Client
	key    string
	value  string
	opts   *LockOptions
}

// NewLock creates a new distributed lock; the owner value is a random uuid
func NewLock(client *Client, key string, opts *LockOptions) *Lock {
	if opts == nil {
		opts = NewLockOptions()
	}
	return &Lock{
		client: client,
		key:    client.key(opts.LockNamespace, key),
		value:  uuid.NewString(),
		opts:   opts,
	}
}

// Key returns the full lock key
func (l *Lock) Key() string {
	return l.key
}

// Lock attempts to acquire the lock
func (l *Lock) Lock(ctx context.Context) error {
	for attempt := 0; ; attempt++ {
		ok, err := l.client.rdb.SetNX(ctx, l.key, l.value, l.opts.TTL).Result()
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}
		if ok {
			return nil
		}
		if attempt >= l.opts.MaxRetries {
			return ErrLockNotAcquired
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.opts.RetryDelay):
		}
	}
}

// Unlock releases the lock
func (l *Lock) Unlock(ctx context.Context) error {
	n, err := unlockScript.Run(ctx, l.client.rdb, []string{l.key}, l.value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if n == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// Refresh extends the lock's TTL
func (l *Lock) Refresh(ctx context.Context) error {
	n, err := refreshScript.Run(ctx, l.client.rdb, []string{l.key}, l.value, l.opts.TTL.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("failed to refresh lock: %w", err)
	}
	if n == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// AutoRefresh refreshes the lock until ctx is done or a refresh fails.
// The channel receives nil on cancellation.
func (l *Lock) AutoRefresh(ctx context.Context) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		ticker := time.NewTicker(l.opts.RefreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				errChan <- nil
				return
			case <-ticker.C:
				if err := l.Refresh(ctx); err != nil {
					errChan <- err
					return
				}
			}
		}
	}()

	return errChan
}

// LockWithFunc executes fn while holding the lock, refreshing it every RefreshInterval.
// ErrLockNotAcquired means another instance is running fn. When a refresh fails the
// context passed to fn is cancelled and the refresh error is returned.
func LockWithFunc(ctx context.Context, client *Client, key string, opts *LockOptions, fn func(ctx context.Context) error) (err error) {
	lock := NewLock(client, key, opts)

	if err := lock.Lock(ctx); err != nil {
		return err
	}
	defer func() {
		if unlockErr := lock.Unlock(context.WithoutCancel(ctx)); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	refreshErr := lock.AutoRefresh(runCtx)

	done := make(chan error, 1)
	go func() { done <- fn(runCtx) }()

	select {
	case err := <-done:
		return err
	case err := <-refreshErr:
		cancel()
		<-done
		if err == nil {
			return ctx.Err()
		}
		return fmt.Errorf("lock %s lost: %w", key, err)
	}
}
