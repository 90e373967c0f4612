package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wisdom2788/youthguard-go/core/keyring"
)

const defaultKeyPrefix = "youthguard:session:"

// Keyring stores credential entries in Redis under a shared key prefix.
// It implements keyring.Storage, so a session store can persist sessions
// across processes instead of a local file.
type Keyring struct {
	client        *redis.Client
	prefix        string
	scanBatchSize int64
}

// KeyringOption configures a Keyring.
type KeyringOption func(*Keyring)

// WithKeyPrefix overrides the default key prefix. Use distinct prefixes to
// isolate multiple principals sharing one Redis database.
func WithKeyPrefix(prefix string) KeyringOption {
	return func(k *Keyring) {
		if prefix != "" {
			k.prefix = prefix
		}
	}
}

// WithScanBatchSize overrides the SCAN batch size used by Clear.
func WithScanBatchSize(size int64) KeyringOption {
	return func(k *Keyring) {
		if size > 0 {
			k.scanBatchSize = size
		}
	}
}

// NewKeyring wraps an established Redis client as a credential keyring.
func NewKeyring(client *redis.Client, opts ...KeyringOption) *Keyring {
	k := &Keyring{
		client:        client,
		prefix:        defaultKeyPrefix,
		scanBatchSize: 1000,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Get retrieves a stored entry. Missing keys map to keyring.ErrKeyNotFound
// so callers branch the same way regardless of the backend.
func (k *Keyring) Get(ctx context.Context, key string) (string, error) {
	value, err := k.client.Get(ctx, k.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", keyring.ErrKeyNotFound
		}
		return "", fmt.Errorf("redis keyring get: %w", err)
	}
	return value, nil
}

// Set stores an entry without expiration. Session lifetime is governed by
// token validity on the backend, not by storage TTL.
func (k *Keyring) Set(ctx context.Context, key, value string) error {
	if err := k.client.Set(ctx, k.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis keyring set: %w", err)
	}
	return nil
}

// Delete removes an entry. Deleting a missing key is not an error.
func (k *Keyring) Delete(ctx context.Context, key string) error {
	if err := k.client.Del(ctx, k.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis keyring delete: %w", err)
	}
	return nil
}

// Clear removes every entry under the keyring's prefix using batched SCAN,
// so large databases are not blocked by a KEYS call.
func (k *Keyring) Clear(ctx context.Context) error {
	iter := k.client.Scan(ctx, 0, k.prefix+"*", k.scanBatchSize).Iterator()

	batch := make([]string, 0, k.scanBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if int64(len(batch)) >= k.scanBatchSize {
			if err := k.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("redis keyring clear: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis keyring clear: %w", err)
	}
	if len(batch) > 0 {
		if err := k.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("redis keyring clear: %w", err)
		}
	}
	return nil
}
