package dietyperepo

import (
	"context"
	"errors"

	"dietrack/internal/adapters/out/postgres/pgerrors"
	"dietrack/internal/core/domain/model/dietype"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDieTypeRepository implements ports.DieTypeRepository using GORM.
type GormDieTypeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDieTypeRepository(db *gorm.DB, tracker aggregateTracker) *GormDieTypeRepository {
	return &GormDieTypeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new die type and its component type list.
func (r *GormDieTypeRepository) Add(ctx context.Context, aggregate *dietype.DieType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return pgerrors.Translate(err, "add die type", "component type", aggregate.Code())
		}
		return pgerrors.Translate(err, "add die type", "die type code", aggregate.Code())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the die type and replaces its component type list.
func (r *GormDieTypeRepository) Update(ctx context.Context, aggregate *dietype.DieType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&DieTypeDTO{}).Where("id = ?", dto.ID).
		Omit(clause.Associations).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrors.Translate(result.Error, "update die type", "die type code", aggregate.Code())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("die type", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	if err := db.Where("die_type_id = ?", dto.ID).Delete(&DieTypeComponentDTO{}).Error; err != nil {
		return err
	}
	if len(dto.ComponentTypes) > 0 {
		if err := db.Omit(clause.Associations).Create(&dto.ComponentTypes).Error; err != nil {
			return pgerrors.Translate(err, "update die type", "component type", aggregate.Code())
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a die type with its component types in listing order.
func (r *GormDieTypeRepository) Get(ctx context.Context, id kernel.UUID) (*dietype.DieType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DieTypeDTO
	if err := r.db.WithContext(ctx).
		Preload("ComponentTypes", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("die type", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
