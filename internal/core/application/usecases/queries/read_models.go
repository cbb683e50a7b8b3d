// Package queries contains read operations for retrieving system state.
// Query handlers bypass the aggregates and read flat models with raw SQL through GORM.
package queries

import (
	"fmt"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// OperationView is one operation of a work order as shown to operators.
type OperationView struct {
	ID                       kernel.UUID
	WorkOrderID              kernel.UUID
	SequenceNumber           int
	OperationName            string
	WorkCenterID             kernel.UUID
	WorkCenterName           string
	EstimatedDurationMinutes int
	Status                   workorder.OperationStatus
	OperatorName             string
	Notes                    string
	StartedAt                *time.Time
	CompletedAt              *time.Time
}

// operationColumns selects an OperationView from work_order_operations op joined with
// work_centers wc.
const operationColumns = `
	op.id,
	op.work_order_id,
	op.sequence_number,
	op.operation_name,
	op.work_center_id,
	wc.name,
	op.estimated_duration_minutes,
	op.status,
	COALESCE(op.operator_name, ''),
	COALESCE(op.notes, ''),
	op.started_at,
	op.completed_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOperation(rows rowScanner) (OperationView, error) {
	var (
		view               OperationView
		id, woID, wcID     uuid.UUID
		status             string
		startedAt, complAt *time.Time
	)
	err := rows.Scan(
		&id,
		&woID,
		&view.SequenceNumber,
		&view.OperationName,
		&wcID,
		&view.WorkCenterName,
		&view.EstimatedDurationMinutes,
		&status,
		&view.OperatorName,
		&view.Notes,
		&startedAt,
		&complAt,
	)
	if err != nil {
		return OperationView{}, err
	}

	if view.ID, err = toUUID(id); err != nil {
		return OperationView{}, err
	}
	if view.WorkOrderID, err = toUUID(woID); err != nil {
		return OperationView{}, err
	}
	if view.WorkCenterID, err = toUUID(wcID); err != nil {
		return OperationView{}, err
	}
	if view.Status, err = workorder.ParseOperationStatus(status); err != nil {
		return OperationView{}, err
	}
	view.StartedAt = utc(startedAt)
	view.CompletedAt = utc(complAt)
	return view, nil
}

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil // absent reference
	}
	out, err := toUUID(id.UUID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	out := t.UTC()
	return &out
}

// statusNames renders a status filter for a text[] parameter.
func statusNames[T fmt.Stringer](statuses []T) []string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}
