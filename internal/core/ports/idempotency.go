package ports

import (
	"context"
	"errors"
)

// ErrIdempotencyKeyInFlight is returned by IdempotencyStore.Reserve while another request
// holds the key.
var ErrIdempotencyKeyInFlight = errors.New("idempotency key is being processed")

// StoredResponse is a completed response replayed to clients that retry with the same key.
type StoredResponse struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyStore remembers the outcome of requests sent with an Idempotency-Key.
type IdempotencyStore interface {
	// Reserve claims key. A non-nil response means the key was completed before.
	Reserve(ctx context.Context, key string) (*StoredResponse, error)
	Complete(ctx context.Context, key string, response StoredResponse) error
	Release(ctx context.Context, key string) error
}
