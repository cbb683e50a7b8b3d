// Package lotrepo persists lots and their stock movements.
package lotrepo

import (
	"time"

	"dietrack/internal/adapters/out/postgres/stockitemrepo"
	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LotDTO represents the database structure for persisting lots.
// remaining_kg carries a CHECK constraint so that no write path can drive it negative.
type LotDTO struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	StockItemID       uuid.UUID                   `gorm:"type:uuid;not null;index"`
	StockItem         *stockitemrepo.StockItemDTO `gorm:"foreignKey:StockItemID;constraint:OnDelete:RESTRICT"`
	CertificateNumber string                      `gorm:"type:varchar(100);not null;uniqueIndex"`
	Supplier          string                      `gorm:"type:varchar(255)"`
	LengthMm          float64                     `gorm:"type:numeric(12,3);not null;default:0"`
	GrossWeightKg     float64                     `gorm:"type:numeric(12,3);not null"`
	RemainingKg       float64                     `gorm:"type:numeric(12,3);not null;check:chk_lots_remaining_kg,remaining_kg >= 0"`
	ReceivedDate      time.Time                   `gorm:"type:date;not null"`
	Movements         []StockMovementDTO          `gorm:"foreignKey:LotID;constraint:OnDelete:RESTRICT"`
}

func (LotDTO) TableName() string {
	return "lots"
}

// StockMovementDTO is an immutable ledger row. The foreign key to work_orders is declared
// on the work order side.
type StockMovementDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	LotID       uuid.UUID `gorm:"type:uuid;not null;index"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	QuantityKg  float64   `gorm:"type:numeric(12,3);not null;check:chk_stock_movements_quantity,quantity_kg > 0"`
	Notes       string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (StockMovementDTO) TableName() string {
	return "stock_movements"
}

func fromDomain(l *inventory.Lot) LotDTO {
	return LotDTO{
		ID:                l.ID().Bytes(),
		StockItemID:       l.StockItemID().Bytes(),
		CertificateNumber: l.CertificateNumber(),
		Supplier:          l.Supplier(),
		LengthMm:          l.LengthMm(),
		GrossWeightKg:     l.GrossWeightKg(),
		RemainingKg:       l.RemainingKg(),
		ReceivedDate:      l.ReceivedDate(),
	}
}

func toDomain(dto LotDTO) (*inventory.Lot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	stockItemID, err := kernel.UUIDFromBytes(dto.StockItemID[:])
	if err != nil {
		return nil, err
	}
	return inventory.RestoreLot(
		id, stockItemID, dto.CertificateNumber, dto.Supplier, dto.LengthMm, dto.GrossWeightKg, dto.RemainingKg, dto.ReceivedDate,
	)
}

func movementFromDomain(m *inventory.StockMovement) StockMovementDTO {
	return StockMovementDTO{
		ID:          m.ID().Bytes(),
		LotID:       m.LotID().Bytes(),
		WorkOrderID: m.WorkOrderID().Bytes(),
		QuantityKg:  m.QuantityKg(),
		Notes:       m.Notes(),
		CreatedAt:   m.CreatedAt(),
	}
}
