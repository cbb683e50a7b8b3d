package stockitemrepo

import (
	"context"
	"errors"

	"dietrack/internal/adapters/out/postgres/pgerrors"
	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockItemRepository implements ports.StockItemRepository using GORM.
type GormStockItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormStockItemRepository(db *gorm.DB, tracker aggregateTracker) *GormStockItemRepository {
	return &GormStockItemRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormStockItemRepository) Add(ctx context.Context, aggregate *inventory.StockItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Translate(err, "add stock item", "stock item", aggregate.Label())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormStockItemRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.StockItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock item", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
