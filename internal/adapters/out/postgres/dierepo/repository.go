package dierepo

import (
	"context"
	"errors"

	"dietrack/internal/adapters/out/postgres/pgerrors"
	"dietrack/internal/core/domain/model/die"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDieRepository implements ports.DieRepository using GORM.
type GormDieRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDieRepository(db *gorm.DB, tracker aggregateTracker) *GormDieRepository {
	return &GormDieRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new die with its components.
func (r *GormDieRepository) Add(ctx context.Context, aggregate *die.Die) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return pgerrors.Translate(err, "add die", "die reference", aggregate.DieNumber())
		}
		return pgerrors.Translate(err, "add die", "die number", aggregate.DieNumber())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the die and upserts its components. Components are never removed, and a
// second component of the same type fails on idx_die_component_type.
func (r *GormDieRepository) Update(ctx context.Context, aggregate *die.Die) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&DieDTO{}).Where("id = ?", dto.ID).
		Omit(clause.Associations).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrors.Translate(result.Error, "update die", "die number", aggregate.DieNumber())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("die", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	if len(dto.Components) > 0 {
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).
			Omit(clause.Associations).
			Create(&dto.Components).Error; err != nil {
			return pgerrors.Translate(err, "update die", "die component", aggregate.DieNumber())
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a die with its components ordered by position.
func (r *GormDieRepository) Get(ctx context.Context, id kernel.UUID) (*die.Die, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DieDTO
	if err := r.db.WithContext(ctx).
		Preload("Components", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("die", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
