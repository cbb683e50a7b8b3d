package lotrepo

import (
	"context"
	"errors"

	"dietrack/internal/adapters/out/postgres/pgerrors"
	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLotRepository implements ports.LotRepository using GORM.
type GormLotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLotRepository(db *gorm.DB, tracker aggregateTracker) *GormLotRepository {
	return &GormLotRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLotRepository) Add(ctx context.Context, aggregate *inventory.Lot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return pgerrors.Translate(err, "add lot", "stock item", aggregate.StockItemID().String())
		}
		return pgerrors.Translate(err, "add lot", "certificate number", aggregate.CertificateNumber())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLotRepository) Update(ctx context.Context, aggregate *inventory.Lot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LotDTO{}).Where("id = ?", dto.ID).
		Omit(clause.Associations).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrors.Translate(result.Error, "update lot", "lot", aggregate.ID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("lot", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLotRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Lot, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormLotRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*inventory.Lot, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// AddMovement inserts an immutable stock movement row.
func (r *GormLotRepository) AddMovement(ctx context.Context, movement *inventory.StockMovement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	dto := movementFromDomain(movement)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Translate(err, "add stock movement", "stock movement", movement.ID().String())
	}
	return nil
}

func (r *GormLotRepository) get(db *gorm.DB, id kernel.UUID) (*inventory.Lot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LotDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lot", id.String())
		}
		return nil, pgerrors.Translate(err, "get lot", "lot", id.String())
	}
	return toDomain(dto)
}
