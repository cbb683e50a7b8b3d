package queries

import (
	"context"

	"dietrack/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListWorkOrderOperationsQueryHandler struct {
	db *gorm.DB
}

func NewListWorkOrderOperationsQueryHandler(db *gorm.DB) ListWorkOrderOperationsQueryHandler {
	return ListWorkOrderOperationsQueryHandler{db: db}
}

// Handle fails with errs.ErrObjectNotFound when the work order does not exist. A work order
// without operations yields an empty slice.
func (h ListWorkOrderOperationsQueryHandler) Handle(
	ctx context.Context,
	query ListWorkOrderOperationsQuery,
) ([]OperationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	id := query.WorkOrderID().String()

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM work_orders WHERE id = ?)`, id).Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("work order", query.WorkOrderID())
	}

	rows, err := db.Raw(`
		SELECT `+operationColumns+`
		FROM work_order_operations op
		JOIN work_centers wc ON wc.id = op.work_center_id
		WHERE op.work_order_id = ?
		ORDER BY op.sequence_number
	`, id).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	operations := make([]OperationView, 0)
	for rows.Next() {
		op, scanErr := scanOperation(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		operations = append(operations, op)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return operations, nil
}
