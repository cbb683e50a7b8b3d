package queries

import (
	"context"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductionOrderQueryHandler reads a production order in three statements: the order,
// its work orders and all their operations. Operations are attached to their work order in
// memory.
type GetProductionOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetProductionOrderQueryHandler(db *gorm.DB) GetProductionOrderQueryHandler {
	return GetProductionOrderQueryHandler{db: db}
}

func (h GetProductionOrderQueryHandler) Handle(
	ctx context.Context,
	query GetProductionOrderQuery,
) (*GetProductionOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	order, err := h.readOrder(db, query.ProductionOrderID())
	if err != nil {
		return nil, err
	}

	workOrders, err := h.readWorkOrders(db, order.ID)
	if err != nil {
		return nil, err
	}

	index := make(map[kernel.UUID]int, len(workOrders))
	for i, wo := range workOrders {
		index[wo.ID] = i
	}

	rows, err := db.Raw(`
		SELECT `+operationColumns+`
		FROM work_order_operations op
		JOIN work_orders wo ON wo.id = op.work_order_id
		JOIN work_centers wc ON wc.id = op.work_center_id
		WHERE wo.production_order_id = ?
		ORDER BY wo.order_number, op.sequence_number
	`, order.ID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		op, scanErr := scanOperation(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		if i, ok := index[op.WorkOrderID]; ok {
			workOrders[i].Operations = append(workOrders[i].Operations, op)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	order.WorkOrders = workOrders
	return order, nil
}

func (h GetProductionOrderQueryHandler) readOrder(db *gorm.DB, id kernel.UUID) (*GetProductionOrderQueryResponse, error) {
	rows, err := db.Raw(`
		SELECT
			po.id,
			po.order_number,
			po.die_id,
			d.die_number,
			po.status,
			COALESCE(po.notes, ''),
			po.created_at,
			po.started_at,
			po.completed_at
		FROM production_orders po
		JOIN dies d ON d.id = po.die_id
		WHERE po.id = ?
	`, id.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("production order", id)
	}

	var (
		order                  GetProductionOrderQueryResponse
		orderID, dieID         uuid.UUID
		status                 string
		startedAt, completedAt *time.Time
	)
	err = rows.Scan(
		&orderID,
		&order.OrderNumber,
		&dieID,
		&order.DieNumber,
		&status,
		&order.Notes,
		&order.CreatedAt,
		&startedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	if order.ID, err = toUUID(orderID); err != nil {
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
	order.WorkOrders = make([]WorkOrderView, 0)
	return &order, nil
}

func (h GetProductionOrderQueryHandler) readWorkOrders(db *gorm.DB, productionOrderID kernel.UUID) ([]WorkOrderView, error) {
	rows, err := db.Raw(`
		SELECT
			wo.id,
			wo.order_number,
			wo.die_component_id,
			dc.position,
			ct.code,
			wo.status,
			wo.theoretical_consumption_kg,
			wo.actual_consumption_kg,
			wo.lot_id
		FROM work_orders wo
		JOIN die_components dc ON dc.id = wo.die_component_id
		JOIN component_types ct ON ct.id = dc.component_type_id
		WHERE wo.production_order_id = ?
		ORDER BY wo.order_number
	`, productionOrderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workOrders := make([]WorkOrderView, 0)
	for rows.Next() {
		var (
			wo         WorkOrderView
			id, compID uuid.UUID
			status     string
			lotID      uuid.NullUUID
		)
		err = rows.Scan(
			&id,
			&wo.OrderNumber,
			&compID,
			&wo.ComponentPosition,
			&wo.ComponentTypeCode,
			&status,
			&wo.TheoreticalConsumptionKg,
			&wo.ActualConsumptionKg,
			&lotID,
		)
		if err != nil {
			return nil, err
		}

		if wo.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if wo.DieComponentID, err = toUUID(compID); err != nil {
			return nil, err
		}
		if wo.Status, err = kernel.ParseOrderStatus(status); err != nil {
			return nil, err
		}
		if wo.LotID, err = toOptionalUUID(lotID); err != nil {
			return nil, err
		}
		wo.Operations = make([]OperationView, 0)
		workOrders = append(workOrders, wo)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return workOrders, nil
}
