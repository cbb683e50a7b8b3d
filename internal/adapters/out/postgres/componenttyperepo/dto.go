// Package componenttyperepo persists component types together with their BOM steps.
package componenttyperepo

import (
	"dietrack/internal/adapters/out/postgres/workcenterrepo"
	"dietrack/internal/core/domain/model/componenttype"
	"dietrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ComponentTypeDTO represents the database structure for persisting component types.
type ComponentTypeDTO struct {
	ID       uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Code     string       `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name     string       `gorm:"type:varchar(100);not null"`
	IsActive bool         `gorm:"not null;default:true"`
	Steps    []BOMStepDTO `gorm:"foreignKey:ComponentTypeID;constraint:OnDelete:CASCADE"`
}

func (ComponentTypeDTO) TableName() string {
	return "component_types"
}

// BOMStepDTO is one BOM row. The sequence number is unique per component type.
type BOMStepDTO struct {
	ComponentTypeID          uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	SequenceNumber           int                           `gorm:"type:int;primaryKey"`
	OperationName            string                        `gorm:"type:varchar(100);not null"`
	WorkCenterID             *uuid.UUID                    `gorm:"type:uuid;index"`
	WorkCenter               *workcenterrepo.WorkCenterDTO `gorm:"foreignKey:WorkCenterID;constraint:OnDelete:RESTRICT"`
	EstimatedDurationMinutes int                           `gorm:"type:int;not null;default:0"`
	Notes                    string                        `gorm:"type:text"`
}

func (BOMStepDTO) TableName() string {
	return "bom_steps"
}

func fromDomain(ct *componenttype.ComponentType) ComponentTypeDTO {
	id := ct.ID().Bytes()
	bom := ct.BOM()
	steps := make([]BOMStepDTO, 0, len(bom))

	for _, step := range bom {
		var workCenterID *uuid.UUID
		if wc := step.WorkCenterID(); wc != nil {
			raw := wc.Bytes()
			workCenterID = &raw
		}

		steps = append(steps, BOMStepDTO{
			ComponentTypeID:          id,
			SequenceNumber:           step.SequenceNumber(),
			OperationName:            step.OperationName(),
			WorkCenterID:             workCenterID,
			EstimatedDurationMinutes: step.EstimatedDurationMinutes(),
			Notes:                    step.Notes(),
		})
	}

	return ComponentTypeDTO{
		ID:       id,
		Code:     ct.Code(),
		Name:     ct.Name(),
		IsActive: ct.IsActive(),
		Steps:    steps,
	}
}

func toDomain(dto ComponentTypeDTO) (*componenttype.ComponentType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	steps := make([]componenttype.Step, 0, len(dto.Steps))
	for _, stepDTO := range dto.Steps {
		var workCenterID *kernel.UUID
		if stepDTO.WorkCenterID != nil {
			wc, wcErr := kernel.UUIDFromBytes((*stepDTO.WorkCenterID)[:])
			if wcErr != nil {
				return nil, wcErr
			}
			workCenterID = &wc
		}

		step, stepErr := componenttype.NewStep(
			stepDTO.SequenceNumber,
			stepDTO.OperationName,
			workCenterID,
			stepDTO.EstimatedDurationMinutes,
			stepDTO.Notes,
		)
		if stepErr != nil {
			return nil, stepErr
		}
		steps = append(steps, step)
	}

	return componenttype.RestoreComponentType(id, dto.Code, dto.Name, dto.IsActive, steps)
}
