package componenttyperepo

import (
	"context"
	"errors"

	"dietrack/internal/adapters/out/postgres/pgerrors"
	"dietrack/internal/core/domain/model/componenttype"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormComponentTypeRepository implements ports.ComponentTypeRepository using GORM.
type GormComponentTypeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormComponentTypeRepository(db *gorm.DB, tracker aggregateTracker) *GormComponentTypeRepository {
	return &GormComponentTypeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new component type and its BOM.
func (r *GormComponentTypeRepository) Add(ctx context.Context, aggregate *componenttype.ComponentType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Translate(err, "add component type", "component type code", aggregate.Code())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the component type and replaces its BOM rows. Already expanded work orders
// keep their own copies, so replacing the rows never affects them.
func (r *GormComponentTypeRepository) Update(ctx context.Context, aggregate *componenttype.ComponentType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ComponentTypeDTO{}).Where("id = ?", dto.ID).
		Omit(clause.Associations).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrors.Translate(result.Error, "update component type", "component type code", aggregate.Code())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("component type", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	if err := db.Where("component_type_id = ?", dto.ID).Delete(&BOMStepDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Steps) > 0 {
		if err := db.Omit(clause.Associations).Create(&dto.Steps).Error; err != nil {
			return pgerrors.Translate(err, "update component type", "BOM step", aggregate.Code())
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a component type with its BOM ordered by sequence number.
func (r *GormComponentTypeRepository) Get(ctx context.Context, id kernel.UUID) (*componenttype.ComponentType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ComponentTypeDTO
	if err := r.withSteps(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("component type", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetMany retrieves the requested component types keyed by id.
func (r *GormComponentTypeRepository) GetMany(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*componenttype.ComponentType, error) {
	result := make(map[kernel.UUID]*componenttype.ComponentType, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []ComponentTypeDTO
	if err := r.withSteps(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		ct, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result[ct.ID()] = ct
	}
	return result, nil
}

func (r *GormComponentTypeRepository) withSteps(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_number")
	})
}
