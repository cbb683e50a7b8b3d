package workcenterrepo

import (
	"context"
	"errors"

	"dietrack/internal/adapters/out/postgres/pgerrors"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workcenter"
	"dietrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkCenterRepository implements ports.WorkCenterRepository using GORM.
type GormWorkCenterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormWorkCenterRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkCenterRepository {
	return &GormWorkCenterRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormWorkCenterRepository) Add(ctx context.Context, aggregate *workcenter.WorkCenter) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Translate(err, "add work center", "work center", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormWorkCenterRepository) Update(ctx context.Context, aggregate *workcenter.WorkCenter) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkCenterDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrors.Translate(result.Error, "update work center", "work center", aggregate.ID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("work center", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormWorkCenterRepository) Get(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormWorkCenterRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetAllBusy retrieves every Busy work center ordered by name.
func (r *GormWorkCenterRepository) GetAllBusy(ctx context.Context) ([]*workcenter.WorkCenter, error) {
	var dtos []WorkCenterDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", workcenter.Busy.String()).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	centers := make([]*workcenter.WorkCenter, 0, len(dtos))
	for _, dto := range dtos {
		wc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		centers = append(centers, wc)
	}
	return centers, nil
}

// Delete removes the work center. A foreign key violation means operations or BOM steps
// still reference it and is reported as workcenter.ErrWorkCenterInUse.
func (r *GormWorkCenterRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WorkCenterDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if pgerrors.IsForeignKeyViolation(result.Error) {
			return errors.Join(workcenter.ErrWorkCenterInUse, result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work center", id.String())
	}
	return nil
}

func (r *GormWorkCenterRepository) get(db *gorm.DB, id kernel.UUID) (*workcenter.WorkCenter, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkCenterDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work center", id.String())
		}
		return nil, pgerrors.Translate(err, "get work center", "work center", id.String())
	}
	return toDomain(dto)
}
