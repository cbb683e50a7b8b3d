// Package workcenterrepo persists work center aggregates.
package workcenterrepo

import (
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workcenter"

	"github.com/google/uuid"
)

// WorkCenterDTO represents the database structure for persisting work centers.
type WorkCenterDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(100);not null"`
	Type             string    `gorm:"type:varchar(100)"`
	Location         string    `gorm:"type:varchar(255)"`
	CapacityPerHour  float64   `gorm:"type:numeric(12,3);not null;default:0"`
	SetupTimeMinutes int       `gorm:"type:int;not null;default:0"`
	CostPerHour      float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Status           string    `gorm:"type:varchar(32);not null;index"`
}

func (WorkCenterDTO) TableName() string {
	return "work_centers"
}

func fromDomain(wc *workcenter.WorkCenter) WorkCenterDTO {
	attrs := wc.Attributes()
	return WorkCenterDTO{
		ID:               wc.ID().Bytes(),
		Name:             wc.Name(),
		Type:             attrs.Type,
		Location:         attrs.Location,
		CapacityPerHour:  attrs.CapacityPerHour,
		SetupTimeMinutes: attrs.SetupTimeMinutes,
		CostPerHour:      attrs.CostPerHour,
		Status:           wc.Status().String(),
	}
}

func toDomain(dto WorkCenterDTO) (*workcenter.WorkCenter, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := workcenter.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return workcenter.RestoreWorkCenter(id, dto.Name, workcenter.Attributes{
		Type:             dto.Type,
		Location:         dto.Location,
		CapacityPerHour:  dto.CapacityPerHour,
		SetupTimeMinutes: dto.SetupTimeMinutes,
		CostPerHour:      dto.CostPerHour,
	}, status)
}
