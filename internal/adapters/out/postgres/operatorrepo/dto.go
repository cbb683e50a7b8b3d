// Package operatorrepo persists operators and their work center assignments.
package operatorrepo

import (
	"dietrack/internal/adapters/out/postgres/workcenterrepo"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/operator"

	"github.com/google/uuid"
)

// OperatorDTO represents the database structure for persisting operators.
type OperatorDTO struct {
	ID             uuid.UUID               `gorm:"type:uuid;primaryKey"`
	RFIDCode       string                  `gorm:"column:rfid_code;type:varchar(64);not null;uniqueIndex"`
	Name           string                  `gorm:"type:varchar(255);not null"`
	EmployeeNumber string                  `gorm:"type:varchar(50)"`
	IsActive       bool                    `gorm:"not null;default:true;index"`
	WorkCenters    []OperatorWorkCenterDTO `gorm:"foreignKey:OperatorID;constraint:OnDelete:CASCADE"`
}

func (OperatorDTO) TableName() string {
	return "operators"
}

// OperatorWorkCenterDTO assigns an operator to a work center. Deleting the work center
// drops the assignment.
type OperatorWorkCenterDTO struct {
	OperatorID   uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	WorkCenterID uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	WorkCenter   *workcenterrepo.WorkCenterDTO `gorm:"foreignKey:WorkCenterID;constraint:OnDelete:CASCADE"`
}

func (OperatorWorkCenterDTO) TableName() string {
	return "operator_work_centers"
}

func fromDomain(o *operator.Operator) OperatorDTO {
	id := o.ID().Bytes()
	assigned := o.WorkCenterIDs()
	workCenters := make([]OperatorWorkCenterDTO, 0, len(assigned))

	for _, wcID := range assigned {
		workCenters = append(workCenters, OperatorWorkCenterDTO{
			OperatorID:   id,
			WorkCenterID: wcID.Bytes(),
		})
	}

	return OperatorDTO{
		ID:             id,
		RFIDCode:       o.RFIDCode(),
		Name:           o.Name(),
		EmployeeNumber: o.EmployeeNumber(),
		IsActive:       o.IsActive(),
		WorkCenters:    workCenters,
	}
}

func toDomain(dto OperatorDTO) (*operator.Operator, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assigned := make([]kernel.UUID, 0, len(dto.WorkCenters))
	for _, wc := range dto.WorkCenters {
		wcID, wcErr := kernel.UUIDFromBytes(wc.WorkCenterID[:])
		if wcErr != nil {
			return nil, wcErr
		}
		assigned = append(assigned, wcID)
	}

	return operator.RestoreOperator(id, dto.RFIDCode, dto.Name, dto.EmployeeNumber, dto.IsActive, assigned)
}
