// Package redis keeps Idempotency-Key records of the HTTP API in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dietrack/internal/core/ports"

	goredis "github.com/go-redis/redis/v8"
)

const keyPrefix = "idempotency:"

type record struct {
	Done     bool                  `json:"done"`
	Response *ports.StoredResponse `json:"response,omitempty"`
}

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// IdempotencyStore reserves a key before the request runs and stores its response afterwards.
// Every key expires after ttl.
//
// Example:
//
//	stored, err := store.Reserve(ctx, key)
//	switch {
//	case errors.Is(err, ports.ErrIdempotencyKeyInFlight):
//	    // a concurrent request with the same key is running
//	case stored != nil:
//	    // replay stored
//	default:
//	    // run the request, then store.Complete or store.Release
//	}
type IdempotencyStore struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewIdempotencyStore(client *goredis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: ttl}
}

// NewClient connects to Redis and checks the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// Reserve claims key. It returns the stored response when the key was already completed
// and ports.ErrIdempotencyKeyInFlight when it is reserved but not completed.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (*ports.StoredResponse, error) {
	pending, err := json.Marshal(record{})
	if err != nil {
		return nil, err
	}

	ok, err := s.client.SetNX(ctx, keyPrefix+key, pending, s.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("reserve idempotency key: %w", err)
	}
	if ok {
		return nil, nil //nolint:nilnil // reserved, nothing to replay
	}

	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		// expired between SETNX and GET
		return s.Reserve(ctx, key)
	}
	if err != nil {
		return nil, fmt.Errorf("read idempotency key: %w", err)
	}

	var existing record
	if err = json.Unmarshal(raw, &existing); err != nil {
		return nil, fmt.Errorf("decode idempotency key: %w", err)
	}
	if !existing.Done || existing.Response == nil {
		return nil, ports.ErrIdempotencyKeyInFlight
	}
	return existing.Response, nil
}

// Complete stores the response of a reserved key.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, response ports.StoredResponse) error {
	raw, err := json.Marshal(record{Done: true, Response: &response})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+key, raw, s.ttl).Err()
}

// Release drops a reservation so the client may retry, e.g. after a server error.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
