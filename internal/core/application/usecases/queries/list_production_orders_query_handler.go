package queries

import (
	"context"
	"time"

	"dietrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListProductionOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListProductionOrdersQueryHandler(db *gorm.DB) ListProductionOrdersQueryHandler {
	return ListProductionOrdersQueryHandler{db: db}
}

func (h ListProductionOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListProductionOrdersQuery,
) ([]ListProductionOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := pq.Array(statusNames(query.Statuses()))

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			po.id,
			po.order_number,
			po.die_id,
			d.die_number,
			po.status,
			po.created_at,
			po.started_at,
			po.completed_at,
			COUNT(wo.id)
		FROM production_orders po
		JOIN dies d ON d.id = po.die_id
		LEFT JOIN work_orders wo ON wo.production_order_id = po.id
		WHERE cardinality(?::text[]) = 0 OR po.status = ANY(?::text[])
		GROUP BY po.id, d.die_number
		ORDER BY po.created_at DESC, po.order_number DESC
	`, statuses, statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListProductionOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			order                  ListProductionOrdersQueryResponse
			id, dieID              uuid.UUID
			status                 string
			startedAt, completedAt *time.Time
		)
		err = rows.Scan(
			&id,
			&order.OrderNumber,
			&dieID,
			&order.DieNumber,
			&status,
			&order.CreatedAt,
			&startedAt,
			&completedAt,
			&order.WorkOrderCount,
		)
		if err != nil {
			return nil, err
		}

		if order.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if order.DieID, err = toUUID(dieID); err != nil {
			return nil, err
		}
		if order.Status, err = kernel.ParseOrderStatus(status); err != nil {
			return nil, err
		}
		order.CreatedAt = order.CreatedAt.UTC()
		order.StartedAt = utc(startedAt)
		order.CompletedAt = utc(completedAt)
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
