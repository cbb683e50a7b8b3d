// Package stockitemrepo persists the steel bar catalogue.
package stockitemrepo

import (
	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// StockItemDTO represents the database structure for persisting steel stock items.
// Alloy and diameter identify a bar together.
type StockItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Alloy       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_stock_item_alloy_diameter"`
	DiameterMm  int       `gorm:"type:int;not null;uniqueIndex:idx_stock_item_alloy_diameter;check:chk_steel_stock_items_diameter,diameter_mm > 0"`
	Description string    `gorm:"type:text"`
}

func (StockItemDTO) TableName() string {
	return "steel_stock_items"
}

func fromDomain(s *inventory.StockItem) StockItemDTO {
	return StockItemDTO{
		ID:          s.ID().Bytes(),
		Alloy:       s.Alloy(),
		DiameterMm:  s.DiameterMm(),
		Description: s.Description(),
	}
}

func toDomain(dto StockItemDTO) (*inventory.StockItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return inventory.NewStockItem(id, dto.Alloy, dto.DiameterMm, dto.Description)
}
