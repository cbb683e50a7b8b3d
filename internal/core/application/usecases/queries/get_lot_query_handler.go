package queries

import (
	"context"

	"dietrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetLotQueryHandler struct {
	db *gorm.DB
}

func NewGetLotQueryHandler(db *gorm.DB) GetLotQueryHandler {
	return GetLotQueryHandler{db: db}
}

func (h GetLotQueryHandler) Handle(ctx context.Context, query GetLotQuery) (*GetLotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	id := query.LotID().String()

	rows, err := db.Raw(`
		SELECT
			l.id,
			l.stock_item_id,
			si.alloy,
			si.diameter_mm,
			l.certificate_number,
			COALESCE(l.supplier, ''),
			l.length_mm,
			l.gross_weight_kg,
			l.remaining_kg,
			l.received_date
		FROM lots l
		JOIN steel_stock_items si ON si.id = l.stock_item_id
		WHERE l.id = ?
	`, id).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("lot", query.LotID())
	}

	var (
		lot           GetLotQueryResponse
		lotID, itemID uuid.UUID
	)
	err = rows.Scan(
		&lotID,
		&itemID,
		&lot.Alloy,
		&lot.DiameterMm,
		&lot.CertificateNumber,
		&lot.Supplier,
		&lot.LengthMm,
		&lot.GrossWeightKg,
		&lot.RemainingKg,
		&lot.ReceivedDate,
	)
	if err != nil {
		return nil, err
	}
	if lot.ID, err = toUUID(lotID); err != nil {
		return nil, err
	}
	if lot.StockItemID, err = toUUID(itemID); err != nil {
		return nil, err
	}
	lot.ReceivedDate = lot.ReceivedDate.UTC()
	_ = rows.Close()

	movements, err := db.Raw(`
		SELECT
			sm.id,
			sm.work_order_id,
			wo.order_number,
			sm.quantity_kg,
			COALESCE(sm.notes, ''),
			sm.created_at
		FROM stock_movements sm
		JOIN work_orders wo ON wo.id = sm.work_order_id
		WHERE sm.lot_id = ?
		ORDER BY sm.created_at, sm.id
	`, id).Rows()
	if err != nil {
		return nil, err
	}
	defer movements.Close()

	lot.Movements = make([]StockMovementView, 0)
	for movements.Next() {
		var (
			movement  StockMovementView
			mID, woID uuid.UUID
		)
		err = movements.Scan(
			&mID,
			&woID,
			&movement.WorkOrderNumber,
			&movement.QuantityKg,
			&movement.Notes,
			&movement.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if movement.ID, err = toUUID(mID); err != nil {
			return nil, err
		}
		if movement.WorkOrderID, err = toUUID(woID); err != nil {
			return nil, err
		}
		movement.CreatedAt = movement.CreatedAt.UTC()
		lot.Movements = append(lot.Movements, movement)
	}

	if err = movements.Err(); err != nil {
		return nil, err
	}
	return &lot, nil
}
