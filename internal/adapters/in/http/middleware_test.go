package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"dietrack/internal/core/application/usecases/commands"
	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memoryIdempotencyStore struct {
	mu         sync.Mutex
	entries    map[string]*ports.StoredResponse
	reserved   map[string]bool
	reserveErr error
}

func newMemoryIdempotencyStore() *memoryIdempotencyStore {
	return &memoryIdempotencyStore{
		entries:  map[string]*ports.StoredResponse{},
		reserved: map[string]bool{},
	}
}

func (s *memoryIdempotencyStore) Reserve(_ context.Context, key string) (*ports.StoredResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reserveErr != nil {
		return nil, s.reserveErr
	}
	if stored, ok := s.entries[key]; ok {
		return stored, nil
	}
	if s.reserved[key] {
		return nil, ports.ErrIdempotencyKeyInFlight
	}
	s.reserved[key] = true
	return nil, nil
}

func (s *memoryIdempotencyStore) Complete(_ context.Context, key string, response ports.StoredResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reserved, key)
	s.entries[key] = &response
	return nil
}

func (s *memoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reserved, key)
	return nil
}

func (s *memoryIdempotencyStore) reserve(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reserved[key] = true
}

type movementFixture struct {
	lotID   kernel.UUID
	path    string
	body    string
	handler *mockResultHandler[commands.RecordStockMovementCommand, *inventory.StockMovement]
}

func newMovementFixture(t *testing.T) movementFixture {
	t.Helper()
	lotID := kernel.NewUUID()
	workOrderID := kernel.NewUUID()
	return movementFixture{
		lotID:   lotID,
		path:    "/api/v1/lots/" + lotID.String() + "/movements",
		body:    fmt.Sprintf(`{"workOrderId":%q,"quantityKg":20.5}`, workOrderID.String()),
		handler: &mockResultHandler[commands.RecordStockMovementCommand, *inventory.StockMovement]{},
	}
}

func (f movementFixture) movement(t *testing.T) *inventory.StockMovement {
	t.Helper()
	m, err := inventory.RestoreStockMovement(kernel.NewUUID(), f.lotID, kernel.NewUUID(), 20.5, "", testNow)
	require.NoError(t, err)
	return m
}

func TestIdempotency_ReplaysSuccessfulResponse(t *testing.T) {
	f := newMovementFixture(t)
	f.handler.On("Handle", mock.Anything, mock.Anything).Return(f.movement(t), nil).Once()
	store := newMemoryIdempotencyStore()
	e := newTestRouter(t, Handlers{RecordStockMovement: f.handler}, store)

	first := serve(e, http.MethodPost, f.path, f.body, HeaderIdempotencyKey, "key-1")
	second := serve(e, http.MethodPost, f.path, f.body, HeaderIdempotencyKey, "key-1")

	require.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(HeaderIdempotentReplay))
	assert.Empty(t, first.Header().Get(HeaderIdempotentReplay))
	f.handler.AssertNumberOfCalls(t, "Handle", 1)
}

func TestIdempotency_ReleasesKeyAfterFailure(t *testing.T) {
	f := newMovementFixture(t)
	f.handler.On("Handle", mock.Anything, mock.Anything).
		Return(nil, &inventory.InsufficientStockError{CertificateNumber: "H-1", RequestedKg: 20.5, RemainingKg: 3}).Once()
	f.handler.On("Handle", mock.Anything, mock.Anything).Return(f.movement(t), nil).Once()
	e := newTestRouter(t, Handlers{RecordStockMovement: f.handler}, newMemoryIdempotencyStore())

	first := serve(e, http.MethodPost, f.path, f.body, HeaderIdempotencyKey, "key-1")
	second := serve(e, http.MethodPost, f.path, f.body, HeaderIdempotencyKey, "key-1")

	assert.Equal(t, http.StatusConflict, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	f.handler.AssertNumberOfCalls(t, "Handle", 2)
}

func TestIdempotency_RejectsKeyInFlight(t *testing.T) {
	f := newMovementFixture(t)
	store := newMemoryIdempotencyStore()
	store.reserve(http.MethodPost + " " + f.path + " key-1")
	e := newTestRouter(t, Handlers{RecordStockMovement: f.handler}, store)

	rec := serve(e, http.MethodPost, f.path, f.body, HeaderIdempotencyKey, "key-1")

	assert.Equal(t, http.StatusConflict, rec.Code)
	f.handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestIdempotency_RunsUnguardedWhenStoreFails(t *testing.T) {
	f := newMovementFixture(t)
	f.handler.On("Handle", mock.Anything, mock.Anything).Return(f.movement(t), nil).Twice()
	store := newMemoryIdempotencyStore()
	store.reserveErr = errors.New("connection refused")
	e := newTestRouter(t, Handlers{RecordStockMovement: f.handler}, store)

	first := serve(e, http.MethodPost, f.path, f.body, HeaderIdempotencyKey, "key-1")
	second := serve(e, http.MethodPost, f.path, f.body, HeaderIdempotencyKey, "key-1")

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	f.handler.AssertNumberOfCalls(t, "Handle", 2)
}

func TestIdempotency_WithoutKeyEveryRequestRuns(t *testing.T) {
	f := newMovementFixture(t)
	f.handler.On("Handle", mock.Anything, mock.Anything).Return(f.movement(t), nil).Twice()
	e := newTestRouter(t, Handlers{RecordStockMovement: f.handler}, newMemoryIdempotencyStore())

	serve(e, http.MethodPost, f.path, f.body)
	serve(e, http.MethodPost, f.path, f.body)

	f.handler.AssertNumberOfCalls(t, "Handle", 2)
}

func TestIdempotency_RejectsOversizedKey(t *testing.T) {
	f := newMovementFixture(t)
	e := newTestRouter(t, Handlers{RecordStockMovement: f.handler}, newMemoryIdempotencyStore())

	rec := serve(e, http.MethodPost, f.path, f.body, HeaderIdempotencyKey, strings.Repeat("k", maxIdempotencyKeyLength+1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestIdempotency_IgnoresUnguardedRoutes(t *testing.T) {
	handler := &mockCommandHandler[commands.CreateDieCommand]{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(nil).Twice()
	e := newTestRouter(t, Handlers{CreateDie: handler}, newMemoryIdempotencyStore())
	body := `{"dieNumber":"1100","diameterMm":250,"packageLengthMm":180}`

	serve(e, http.MethodPost, "/api/v1/dies", body, HeaderIdempotencyKey, "key-1")
	serve(e, http.MethodPost, "/api/v1/dies", body, HeaderIdempotencyKey, "key-1")

	handler.AssertNumberOfCalls(t, "Handle", 2)
}
