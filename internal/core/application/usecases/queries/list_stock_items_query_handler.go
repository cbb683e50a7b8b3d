package queries

import (
	"context"

	"dietrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListStockItemsQueryHandler struct {
	db *gorm.DB
}

func NewListStockItemsQueryHandler(db *gorm.DB) ListStockItemsQueryHandler {
	return ListStockItemsQueryHandler{db: db}
}

func (h ListStockItemsQueryHandler) Handle(ctx context.Context, query ListStockItemsQuery) ([]StockItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			si.id,
			si.alloy,
			si.diameter_mm,
			COALESCE(si.description, ''),
			COUNT(l.id),
			COUNT(l.id) FILTER (WHERE l.remaining_kg > 0),
			COALESCE(SUM(l.remaining_kg), 0)::float8
		FROM steel_stock_items si
		LEFT JOIN lots l ON l.stock_item_id = si.id
		GROUP BY si.id
		ORDER BY si.alloy, si.diameter_mm
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]StockItemView, 0)
	for rows.Next() {
		var (
			item StockItemView
			id   uuid.UUID
		)
		err = rows.Scan(
			&id,
			&item.Alloy,
			&item.DiameterMm,
			&item.Description,
			&item.LotCount,
			&item.OpenLotCount,
			&item.RemainingKg,
		)
		if err != nil {
			return nil, err
		}
		if item.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		item.RemainingKg = kernel.RoundQuantity(item.RemainingKg)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
