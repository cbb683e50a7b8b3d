package workorder_test

import (
	"testing"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	wo         *workorder.WorkOrder
	ops        []kernel.UUID
	workCenter kernel.UUID
}

func newFixture(t *testing.T, steps int) fixture {
	t.Helper()

	wo, err := workorder.NewWorkOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "IE-100-001-01", 12.5)
	require.NoError(t, err)

	f := fixture{wo: wo, workCenter: kernel.NewUUID()}
	// added in reverse to prove ordering by sequence number
	for seq := steps; seq >= 1; seq-- {
		op, err := workorder.NewOperation(kernel.NewUUID(), seq, "step", f.workCenter, 30, "")
		require.NoError(t, err)
		require.NoError(t, wo.AddOperation(op))
		f.ops = append([]kernel.UUID{op.ID()}, f.ops...)
	}
	return f
}

func (f fixture) transition(t *testing.T, idx int, target workorder.OperationStatus) workorder.Transition {
	t.Helper()
	tr, err := f.wo.TransitionOperation(f.ops[idx], target, "", time.Now())
	require.NoError(t, err)
	return tr
}

func TestWorkOrder_OperationsOrderedBySequence(t *testing.T) {
	f := newFixture(t, 3)

	ops := f.wo.Operations()
	require.Len(t, ops, 3)
	for i, op := range ops {
		assert.Equal(t, i+1, op.SequenceNumber())
		assert.Equal(t, workorder.OperationWaiting, op.Status())
	}
}

func TestWorkOrder_AddOperation_DuplicateSequence(t *testing.T) {
	f := newFixture(t, 2)
	op, err := workorder.NewOperation(kernel.NewUUID(), 2, "again", f.workCenter, 0, "")
	require.NoError(t, err)

	err = f.wo.AddOperation(op)

	require.ErrorIs(t, err, errs.ErrDuplicateIdentifier)
}

func TestWorkOrder_StartFirstOperation(t *testing.T) {
	f := newFixture(t, 3)
	now := time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC)

	tr, err := f.wo.TransitionOperation(f.ops[0], workorder.OperationInProgress, "  Ana  ", now)
	require.NoError(t, err)

	assert.Equal(t, workorder.WorkCenterOccupy, tr.Effect)
	assert.True(t, tr.WorkCenterID.IsEqual(f.workCenter))
	assert.Equal(t, kernel.OrderInProgress, f.wo.Status())

	op, err := f.wo.Operation(f.ops[0])
	require.NoError(t, err)
	assert.Equal(t, "Ana", op.OperatorName())
	assert.Equal(t, now, *op.StartedAt())

	events := f.wo.DomainEvents()
	require.Len(t, events, 1)
	changed, ok := events[0].(workorder.OperationStatusChangedEvent)
	require.True(t, ok)
	assert.Equal(t, "Waiting", changed.From)
	assert.Equal(t, "InProgress", changed.To)
}

func TestWorkOrder_SequenceDependencyViolation(t *testing.T) {
	f := newFixture(t, 3)

	_, err := f.wo.TransitionOperation(f.ops[2], workorder.OperationInProgress, "", time.Now())

	require.ErrorIs(t, err, workorder.ErrSequenceDependencyViolation)
	var violation *workorder.SequenceDependencyViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, 3, violation.SequenceNumber)
	assert.Equal(t, []int{1, 2}, violation.BlockingSequence)

	op, err := f.wo.Operation(f.ops[2])
	require.NoError(t, err)
	assert.Equal(t, workorder.OperationWaiting, op.Status())
	assert.Empty(t, f.wo.DomainEvents())
}

func TestWorkOrder_SequenceDependency_AllPredecessorsMustBeCompleted(t *testing.T) {
	f := newFixture(t, 3)
	f.transition(t, 0, workorder.OperationInProgress)
	f.transition(t, 0, workorder.OperationCompleted)
	f.transition(t, 1, workorder.OperationInProgress)
	f.transition(t, 1, workorder.OperationCancelled)

	_, err := f.wo.TransitionOperation(f.ops[2], workorder.OperationInProgress, "", time.Now())

	var violation *workorder.SequenceDependencyViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, []int{2}, violation.BlockingSequence, "a cancelled predecessor still blocks")
}

func TestWorkOrder_FullLifecycle(t *testing.T) {
	f := newFixture(t, 2)

	assert.Equal(t, workorder.WorkCenterOccupy, f.transition(t, 0, workorder.OperationInProgress).Effect)
	assert.Equal(t, workorder.WorkCenterUnchanged, f.transition(t, 0, workorder.OperationPaused).Effect)
	assert.Equal(t, workorder.WorkCenterUnchanged, f.transition(t, 0, workorder.OperationInProgress).Effect)
	assert.Equal(t, workorder.WorkCenterRelease, f.transition(t, 0, workorder.OperationCompleted).Effect)
	assert.Equal(t, workorder.WorkCenterOccupy, f.transition(t, 1, workorder.OperationInProgress).Effect)

	first, err := f.wo.Operation(f.ops[0])
	require.NoError(t, err)
	assert.NotNil(t, first.CompletedAt())
	assert.Len(t, f.wo.DomainEvents(), 5)
}

func TestWorkOrder_ResumeKeepsStartedAt(t *testing.T) {
	f := newFixture(t, 1)
	start := time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC)

	_, err := f.wo.TransitionOperation(f.ops[0], workorder.OperationInProgress, "", start)
	require.NoError(t, err)
	_, err = f.wo.TransitionOperation(f.ops[0], workorder.OperationPaused, "", start.Add(time.Hour))
	require.NoError(t, err)
	_, err = f.wo.TransitionOperation(f.ops[0], workorder.OperationInProgress, "", start.Add(2*time.Hour))
	require.NoError(t, err)

	op, err := f.wo.Operation(f.ops[0])
	require.NoError(t, err)
	assert.Equal(t, start, *op.StartedAt())
}

func TestWorkOrder_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name   string
		setup  []workorder.OperationStatus
		target workorder.OperationStatus
	}{
		{"waiting to paused", nil, workorder.OperationPaused},
		{"waiting to completed", nil, workorder.OperationCompleted},
		{"paused to completed", []workorder.OperationStatus{workorder.OperationInProgress, workorder.OperationPaused}, workorder.OperationCompleted},
		{"back to waiting", []workorder.OperationStatus{workorder.OperationInProgress}, workorder.OperationWaiting},
		{"completed is terminal", []workorder.OperationStatus{workorder.OperationInProgress, workorder.OperationCompleted}, workorder.OperationCancelled},
		{"cancelled is terminal", []workorder.OperationStatus{workorder.OperationCancelled}, workorder.OperationInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1)
			for _, s := range tt.setup {
				f.transition(t, 0, s)
			}

			_, err := f.wo.TransitionOperation(f.ops[0], tt.target, "", time.Now())

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestWorkOrder_CancelReleasesOnlyHeldWorkCenter(t *testing.T) {
	waiting := newFixture(t, 1)
	assert.Equal(t, workorder.WorkCenterUnchanged, waiting.transition(t, 0, workorder.OperationCancelled).Effect)

	paused := newFixture(t, 1)
	paused.transition(t, 0, workorder.OperationInProgress)
	paused.transition(t, 0, workorder.OperationPaused)
	assert.Equal(t, workorder.WorkCenterRelease, paused.transition(t, 0, workorder.OperationCancelled).Effect)
}

func TestWorkOrder_TransitionUnknownOperation(t *testing.T) {
	f := newFixture(t, 1)

	_, err := f.wo.TransitionOperation(kernel.NewUUID(), workorder.OperationInProgress, "", time.Now())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestWorkOrder_OperationsFixedAfterStart(t *testing.T) {
	f := newFixture(t, 1)
	f.transition(t, 0, workorder.OperationInProgress)
	op, err := workorder.NewOperation(kernel.NewUUID(), 2, "late", f.workCenter, 0, "")
	require.NoError(t, err)

	require.ErrorIs(t, f.wo.AddOperation(op), errs.ErrValueIsInvalid)
}

func TestWorkOrder_UpdateOperationDetails(t *testing.T) {
	f := newFixture(t, 1)
	operator, notes, minutes := "Ivo", "check tolerance", 45

	require.NoError(t, f.wo.UpdateOperationDetails(f.ops[0], workorder.OperationDetails{
		OperatorName:             &operator,
		Notes:                    &notes,
		EstimatedDurationMinutes: &minutes,
	}))

	op, err := f.wo.Operation(f.ops[0])
	require.NoError(t, err)
	assert.Equal(t, "Ivo", op.OperatorName())
	assert.Equal(t, "check tolerance", op.Notes())
	assert.Equal(t, 45, op.EstimatedDurationMinutes())
	assert.Equal(t, workorder.OperationWaiting, op.Status())

	negative := -1
	err = f.wo.UpdateOperationDetails(f.ops[0], workorder.OperationDetails{EstimatedDurationMinutes: &negative})
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestWorkOrder_ConsumptionAndLot(t *testing.T) {
	f := newFixture(t, 1)
	lot := kernel.NewUUID()

	require.NoError(t, f.wo.RecordConsumption(4))
	require.NoError(t, f.wo.RecordConsumption(1.5))
	require.NoError(t, f.wo.BindLot(lot))

	assert.InDelta(t, 5.5, f.wo.ActualConsumptionKg(), 1e-9)
	assert.True(t, f.wo.LotID().IsEqual(lot))
	require.ErrorIs(t, f.wo.RecordConsumption(0), errs.ErrValueIsOutOfRange)
}

func TestWorkOrder_RecordConsumption_KeepsGramPrecision(t *testing.T) {
	f := newFixture(t, 1)

	require.NoError(t, f.wo.RecordConsumption(0.1))
	require.NoError(t, f.wo.RecordConsumption(0.2))
	assert.Equal(t, 0.3, f.wo.ActualConsumptionKg())

	require.ErrorIs(t, f.wo.RecordConsumption(0.0001), errs.ErrValueIsInvalid)
	assert.Equal(t, 0.3, f.wo.ActualConsumptionKg())
}

func TestParseOperationStatus(t *testing.T) {
	s, err := workorder.ParseOperationStatus("paused")
	require.NoError(t, err)
	assert.Equal(t, workorder.OperationPaused, s)

	_, err = workorder.ParseOperationStatus("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
