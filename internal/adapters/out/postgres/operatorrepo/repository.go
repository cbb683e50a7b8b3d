package operatorrepo

import (
	"context"
	"errors"

	"dietrack/internal/adapters/out/postgres/pgerrors"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/operator"
	"dietrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOperatorRepository implements ports.OperatorRepository using GORM.
type GormOperatorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOperatorRepository(db *gorm.DB, tracker aggregateTracker) *GormOperatorRepository {
	return &GormOperatorRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOperatorRepository) Add(ctx context.Context, aggregate *operator.Operator) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return r.translate(err, "add operator", aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the operator and replaces its work center assignments.
func (r *GormOperatorRepository) Update(ctx context.Context, aggregate *operator.Operator) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OperatorDTO{}).Where("id = ?", dto.ID).
		Omit(clause.Associations).Select("*").Updates(&dto)
	if result.Error != nil {
		return r.translate(result.Error, "update operator", aggregate)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("operator", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	if err := db.Where("operator_id = ?", dto.ID).Delete(&OperatorWorkCenterDTO{}).Error; err != nil {
		return err
	}
	if len(dto.WorkCenters) > 0 {
		if err := db.Omit(clause.Associations).Create(&dto.WorkCenters).Error; err != nil {
			return r.translate(err, "update operator", aggregate)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOperatorRepository) Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "operator", id.String(), "id = ?", id.Bytes())
}

// GetByRFID retrieves the operator wearing the given badge.
func (r *GormOperatorRepository) GetByRFID(ctx context.Context, rfidCode string) (*operator.Operator, error) {
	return r.first(ctx, "rfid code", rfidCode, "rfid_code = ?", rfidCode)
}

func (r *GormOperatorRepository) first(ctx context.Context, param, value string, query string, args ...any) (*operator.Operator, error) {
	var dto OperatorDTO
	if err := r.db.WithContext(ctx).
		Preload("WorkCenters").
		Where(query, args...).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, value)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormOperatorRepository) translate(err error, op string, aggregate *operator.Operator) error {
	if pgerrors.IsForeignKeyViolation(err) {
		return pgerrors.Translate(err, op, "work center", aggregate.ID().String())
	}
	return pgerrors.Translate(err, op, "rfid code", aggregate.RFIDCode())
}
