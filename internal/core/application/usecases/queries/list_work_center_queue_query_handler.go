package queries

import (
	"context"
	"time"

	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListWorkCenterQueueQueryHandler struct {
	db *gorm.DB
}

func NewListWorkCenterQueueQueryHandler(db *gorm.DB) ListWorkCenterQueueQueryHandler {
	return ListWorkCenterQueueQueryHandler{db: db}
}

func (h ListWorkCenterQueueQueryHandler) Handle(
	ctx context.Context,
	query ListWorkCenterQueueQuery,
) ([]WorkCenterQueueItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	id := query.WorkCenterID().String()

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM work_centers WHERE id = ?)`, id).Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("work center", query.WorkCenterID())
	}

	statuses := pq.Array(statusNames(query.Statuses()))

	rows, err := db.Raw(`
		SELECT
			op.id,
			op.work_order_id,
			wo.order_number,
			po.order_number,
			op.sequence_number,
			op.operation_name,
			op.status,
			op.estimated_duration_minutes,
			COALESCE(op.operator_name, ''),
			op.started_at
		FROM work_order_operations op
		JOIN work_orders wo ON wo.id = op.work_order_id
		JOIN production_orders po ON po.id = wo.production_order_id
		WHERE op.work_center_id = ?
			AND (cardinality(?::text[]) = 0 OR op.status = ANY(?::text[]))
		ORDER BY po.created_at, wo.order_number, op.sequence_number
	`, id, statuses, statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	queue := make([]WorkCenterQueueItem, 0)
	for rows.Next() {
		var (
			item       WorkCenterQueueItem
			opID, woID uuid.UUID
			status     string
			startedAt  *time.Time
		)
		err = rows.Scan(
			&opID,
			&woID,
			&item.WorkOrderNumber,
			&item.ProductionOrderNumber,
			&item.SequenceNumber,
			&item.OperationName,
			&status,
			&item.EstimatedDurationMinutes,
			&item.OperatorName,
			&startedAt,
		)
		if err != nil {
			return nil, err
		}

		if item.OperationID, err = toUUID(opID); err != nil {
			return nil, err
		}
		if item.WorkOrderID, err = toUUID(woID); err != nil {
			return nil, err
		}
		if item.Status, err = workorder.ParseOperationStatus(status); err != nil {
			return nil, err
		}
		item.StartedAt = utc(startedAt)
		queue = append(queue, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return queue, nil
}
