package productionorder_test

import (
	"testing"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/productionorder"
	"dietrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *productionorder.ProductionOrder {
	t.Helper()
	o, err := productionorder.NewProductionOrder(kernel.NewUUID(), "UE-100-001", kernel.NewUUID(), "rush", time.Now())
	require.NoError(t, err)
	return o
}

func TestNewProductionOrder(t *testing.T) {
	o := newOrder(t)

	assert.Equal(t, "UE-100-001", o.OrderNumber())
	assert.Equal(t, kernel.OrderWaiting, o.Status())
	assert.Nil(t, o.StartedAt())
	assert.Nil(t, o.CompletedAt())
	require.NoError(t, o.ValidateExpandable())

	_, err := productionorder.NewProductionOrder(kernel.NewUUID(), "", kernel.NewUUID(), "", time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = productionorder.NewProductionOrder(kernel.NewUUID(), "UE-1-001", kernel.UUID{}, "", time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestProductionOrder_MarkExpanded(t *testing.T) {
	o := newOrder(t)
	now := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)

	require.NoError(t, o.MarkExpanded(2, now))

	assert.Equal(t, kernel.OrderInProgress, o.Status())
	require.NotNil(t, o.StartedAt())
	assert.Equal(t, now, *o.StartedAt())

	events := o.DomainEvents()
	require.Len(t, events, 1)
	expanded, ok := events[0].(productionorder.ExpandedEvent)
	require.True(t, ok)
	assert.Equal(t, 2, expanded.WorkOrderCount)
	assert.Equal(t, "UE-100-001", expanded.OrderNumber)
}

func TestProductionOrder_MarkExpanded_IsOneShot(t *testing.T) {
	o := newOrder(t)
	first := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	require.NoError(t, o.MarkExpanded(1, first))

	err := o.MarkExpanded(1, first.Add(time.Hour))

	require.ErrorIs(t, err, productionorder.ErrAlreadyExpanded)
	assert.Equal(t, first, *o.StartedAt(), "started_at is never overwritten")
}

func TestProductionOrder_ChangeStatus(t *testing.T) {
	start := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	finish := start.Add(8 * time.Hour)

	o := newOrder(t)
	require.NoError(t, o.MarkExpanded(1, start))
	require.NoError(t, o.ChangeStatus(kernel.OrderInProgress, finish))
	assert.Equal(t, start, *o.StartedAt())

	require.NoError(t, o.ChangeStatus(kernel.OrderCompleted, finish))
	assert.Equal(t, kernel.OrderCompleted, o.Status())
	assert.Equal(t, finish, *o.CompletedAt())
	assert.Len(t, o.DomainEvents(), 2, "idempotent restart records no event")

	err := o.ChangeStatus(kernel.OrderCancelled, finish)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestProductionOrder_ChangeStatus_WaitingCannotStartByHand(t *testing.T) {
	o := newOrder(t)
	now := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)

	err := o.ChangeStatus(kernel.OrderInProgress, now)

	require.ErrorIs(t, err, productionorder.ErrNotExpanded)
	assert.Equal(t, kernel.OrderWaiting, o.Status())
	assert.Nil(t, o.StartedAt())
	assert.Empty(t, o.DomainEvents())
	require.NoError(t, o.ValidateExpandable(), "the order can still be expanded")
	require.NoError(t, o.MarkExpanded(3, now))
	assert.Equal(t, kernel.OrderInProgress, o.Status())
}

func TestProductionOrder_CancelWaiting(t *testing.T) {
	o := newOrder(t)
	now := time.Now()

	require.NoError(t, o.ChangeStatus(kernel.OrderCancelled, now))

	assert.Equal(t, kernel.OrderCancelled, o.Status())
	assert.NotNil(t, o.CompletedAt())
	assert.Nil(t, o.StartedAt())
	require.ErrorIs(t, o.ValidateExpandable(), productionorder.ErrAlreadyExpanded)
}

func TestRestoreProductionOrder_CopiesTimestamps(t *testing.T) {
	started := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	o, err := productionorder.RestoreProductionOrder(
		kernel.NewUUID(), "UE-7-002", kernel.NewUUID(), kernel.OrderInProgress, "", started, &started, nil,
	)
	require.NoError(t, err)

	got := o.StartedAt()
	*got = got.Add(time.Hour)
	assert.Equal(t, started, *o.StartedAt())
}
