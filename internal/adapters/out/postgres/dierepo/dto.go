// Package dierepo persists die aggregates and their components.
package dierepo

import (
	"dietrack/internal/adapters/out/postgres/componenttyperepo"
	"dietrack/internal/adapters/out/postgres/dietyperepo"
	"dietrack/internal/adapters/out/postgres/stockitemrepo"
	"dietrack/internal/core/domain/model/die"
	"dietrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DieDTO represents the database structure for persisting dies.
type DieDTO struct {
	ID              uuid.UUID               `gorm:"type:uuid;primaryKey"`
	DieNumber       string                  `gorm:"type:varchar(50);not null;uniqueIndex"`
	DieTypeID       uuid.UUID               `gorm:"type:uuid;not null;index"`
	DieType         *dietyperepo.DieTypeDTO `gorm:"foreignKey:DieTypeID;constraint:OnDelete:RESTRICT"`
	DiameterMm      float64                 `gorm:"type:numeric(10,3);not null"`
	PackageLengthMm float64                 `gorm:"type:numeric(10,3);not null"`
	Status          string                  `gorm:"type:varchar(32);not null"`
	Components      []DieComponentDTO       `gorm:"foreignKey:DieID;constraint:OnDelete:CASCADE"`
}

func (DieDTO) TableName() string {
	return "dies"
}

// DieComponentDTO represents a component row. Position and component type are each unique
// inside a die.
type DieComponentDTO struct {
	ID                       uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	DieID                    uuid.UUID                           `gorm:"type:uuid;not null;uniqueIndex:idx_die_component_position;uniqueIndex:idx_die_component_type"`
	Position                 int                                 `gorm:"type:int;not null;uniqueIndex:idx_die_component_position"`
	ComponentTypeID          uuid.UUID                           `gorm:"type:uuid;not null;uniqueIndex:idx_die_component_type"`
	ComponentType            *componenttyperepo.ComponentTypeDTO `gorm:"foreignKey:ComponentTypeID;constraint:OnDelete:RESTRICT"`
	StockItemID              uuid.UUID                           `gorm:"type:uuid;not null;index"`
	StockItem                *stockitemrepo.StockItemDTO         `gorm:"foreignKey:StockItemID;constraint:OnDelete:RESTRICT"`
	PackageLengthMm          float64                             `gorm:"type:numeric(10,3);not null"`
	TheoreticalConsumptionKg float64                             `gorm:"type:numeric(12,3);not null"`
}

func (DieComponentDTO) TableName() string {
	return "die_components"
}

func fromDomain(d *die.Die) DieDTO {
	id := d.ID().Bytes()
	components := make([]DieComponentDTO, 0, len(d.Components()))

	for _, c := range d.Components() {
		components = append(components, DieComponentDTO{
			ID:                       c.ID().Bytes(),
			DieID:                    id,
			Position:                 c.Position(),
			ComponentTypeID:          c.ComponentTypeID().Bytes(),
			StockItemID:              c.StockItemID().Bytes(),
			PackageLengthMm:          c.PackageLengthMm(),
			TheoreticalConsumptionKg: c.TheoreticalConsumptionKg(),
		})
	}

	return DieDTO{
		ID:              id,
		DieNumber:       d.DieNumber(),
		DieTypeID:       d.DieTypeID().Bytes(),
		DiameterMm:      d.DiameterMm(),
		PackageLengthMm: d.PackageLengthMm(),
		Status:          d.Status().String(),
		Components:      components,
	}
}

func toDomain(dto DieDTO) (*die.Die, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	dieTypeID, err := kernel.UUIDFromBytes(dto.DieTypeID[:])
	if err != nil {
		return nil, err
	}
	status, err := die.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	components := make([]*die.Component, 0, len(dto.Components))
	for _, cDTO := range dto.Components {
		c, cErr := componentToDomain(cDTO)
		if cErr != nil {
			return nil, cErr
		}
		components = append(components, c)
	}

	return die.RestoreDie(id, dieTypeID, dto.DieNumber, dto.DiameterMm, dto.PackageLengthMm, status, components)
}

func componentToDomain(dto DieComponentDTO) (*die.Component, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	typeID, err := kernel.UUIDFromBytes(dto.ComponentTypeID[:])
	if err != nil {
		return nil, err
	}
	stockItemID, err := kernel.UUIDFromBytes(dto.StockItemID[:])
	if err != nil {
		return nil, err
	}
	return die.NewComponent(id, typeID, stockItemID, dto.PackageLengthMm, dto.TheoreticalConsumptionKg, dto.Position)
}
