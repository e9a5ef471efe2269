package utils

import (
	"context" // Context for lock acquisition
	"errors"  // Error matching
	"fmt"     // Error wrapping
	"sync"    // In-process mutual exclusion
	"time"    // Lock expiry and retry backoff

	"github.com/bsm/redislock"   // Distributed lock on top of Redis
	"github.com/sirupsen/logrus" // Logging library
)

// Locker serializes work on a key. Unlock must be called exactly once after a successful Lock.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// RedisLocker holds locks in Redis so that every process sharing the server is serialized
type RedisLocker struct {
	client  *redislock.Client // redislock client
	ttl     time.Duration     // Lock expiry, also the longest time Lock waits
	backoff time.Duration     // Delay between acquisition attempts
}

// NewRedisLocker creates a RedisLocker; rdb is usually a *redis.Client
func NewRedisLocker(rdb redislock.RedisClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client:  redislock.New(rdb), // Wrap the Redis client
		ttl:     ttl,                // Lock expiry
		backoff: 25 * time.Millisecond,
	}
}

// Lock obtains the lock for key, retrying until it is free or the TTL elapses
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	lock, err := l.client.Obtain(ctx, "lock:"+key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(l.backoff), // Keep retrying until the deadline
	})
	if err != nil {
		return nil, fmt.Errorf("obtain lock %q: %w", key, err) // Return error if lock not obtained
	}
	return func() {
		// Release with a fresh context, the request may already be done
		if err := lock.Release(context.Background()); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			logrus.WithFields(logrus.Fields{
				"key":   key,         // Lock key
				"error": err.Error(), // Error message
			}).Warn("Failed to release lock")
		}
	}, nil
}

// KeyedMutex is an in-process Locker used when no Redis server is configured
type KeyedMutex struct {
	mu    sync.Mutex          // Guards locks
	locks map[string]*keyLock // Active locks by key
}

type keyLock struct {
	sem  chan struct{} // Holds one token while locked
	refs int           // Holders plus waiters
}

// NewKeyedMutex creates an empty KeyedMutex
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyLock)}
}

// Lock blocks until key is free or ctx is done
func (m *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	kl, ok := m.locks[key]
	if !ok {
		kl = &keyLock{sem: make(chan struct{}, 1)} // Create lock on first use
		m.locks[key] = kl
	}
	kl.refs++
	m.mu.Unlock()

	select {
	case kl.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-kl.sem // Free the key
				m.release(key, kl)
			})
		}, nil
	case <-ctx.Done():
		m.release(key, kl)
		return nil, fmt.Errorf("obtain lock %q: %w", key, ctx.Err())
	}
}

// release drops a reference and forgets the key once nobody uses it
func (m *KeyedMutex) release(key string, kl *keyLock) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(m.locks, key)
	}
}

// Len reports how many keys are currently held or awaited
func (m *KeyedMutex) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
