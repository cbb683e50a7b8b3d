// Package dietyperepo persists die types together with the component types they list.
package dietyperepo

import (
	"dietrack/internal/adapters/out/postgres/componenttyperepo"
	"dietrack/internal/core/domain/model/dietype"
	"dietrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DieTypeDTO represents the database structure for persisting die types.
type DieTypeDTO struct {
	ID             uuid.UUID             `gorm:"type:uuid;primaryKey"`
	Code           string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name           string                `gorm:"type:varchar(100);not null"`
	Description    string                `gorm:"type:text"`
	IsActive       bool                  `gorm:"not null;default:true"`
	ComponentTypes []DieTypeComponentDTO `gorm:"foreignKey:DieTypeID;constraint:OnDelete:CASCADE"`
}

func (DieTypeDTO) TableName() string {
	return "die_types"
}

// DieTypeComponentDTO maps a die type to one of its component types. Position keeps the
// order in which component types were listed.
type DieTypeComponentDTO struct {
	DieTypeID       uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	ComponentTypeID uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	ComponentType   *componenttyperepo.ComponentTypeDTO `gorm:"foreignKey:ComponentTypeID;constraint:OnDelete:RESTRICT"`
	Position        int                                 `gorm:"type:int;not null"`
}

func (DieTypeComponentDTO) TableName() string {
	return "die_type_components"
}

func fromDomain(dt *dietype.DieType) DieTypeDTO {
	id := dt.ID().Bytes()
	listed := dt.ComponentTypeIDs()
	mappings := make([]DieTypeComponentDTO, 0, len(listed))

	for i, componentTypeID := range listed {
		mappings = append(mappings, DieTypeComponentDTO{
			DieTypeID:       id,
			ComponentTypeID: componentTypeID.Bytes(),
			Position:        i + 1,
		})
	}

	return DieTypeDTO{
		ID:             id,
		Code:           dt.Code(),
		Name:           dt.Name(),
		Description:    dt.Description(),
		IsActive:       dt.IsActive(),
		ComponentTypes: mappings,
	}
}

func toDomain(dto DieTypeDTO) (*dietype.DieType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	listed := make([]kernel.UUID, 0, len(dto.ComponentTypes))
	for _, mapping := range dto.ComponentTypes {
		componentTypeID, mErr := kernel.UUIDFromBytes(mapping.ComponentTypeID[:])
		if mErr != nil {
			return nil, mErr
		}
		listed = append(listed, componentTypeID)
	}

	return dietype.RestoreDieType(id, dto.Code, dto.Name, dto.Description, dto.IsActive, listed)
}
