// Package productionorderrepo persists production order aggregates.
package productionorderrepo

import (
	"time"

	"dietrack/internal/adapters/out/postgres/dierepo"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/productionorder"

	"github.com/google/uuid"
)

// ProductionOrderDTO represents the database structure for persisting production orders.
type ProductionOrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	DieID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Die         *dierepo.DieDTO `gorm:"foreignKey:DieID;constraint:OnDelete:RESTRICT"`
	Status      string          `gorm:"type:varchar(32);not null;index"`
	Notes       string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	StartedAt   *time.Time
	CompletedAt *time.Time
}

func (ProductionOrderDTO) TableName() string {
	return "production_orders"
}

func fromDomain(o *productionorder.ProductionOrder) ProductionOrderDTO {
	return ProductionOrderDTO{
		ID:          o.ID().Bytes(),
		OrderNumber: o.OrderNumber(),
		DieID:       o.DieID().Bytes(),
		Status:      o.Status().String(),
		Notes:       o.Notes(),
		CreatedAt:   o.CreatedAt(),
		StartedAt:   o.StartedAt(),
		CompletedAt: o.CompletedAt(),
	}
}

func toDomain(dto ProductionOrderDTO) (*productionorder.ProductionOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	dieID, err := kernel.UUIDFromBytes(dto.DieID[:])
	if err != nil {
		return nil, err
	}
	status, err := kernel.ParseOrderStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return productionorder.RestoreProductionOrder(
		id, dto.OrderNumber, dieID, status, dto.Notes, dto.CreatedAt, dto.StartedAt, dto.CompletedAt,
	)
}
