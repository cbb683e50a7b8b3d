package productionorderrepo

import (
	"context"
	"errors"

	"dietrack/internal/adapters/out/postgres/pgerrors"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/productionorder"
	"dietrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductionOrderRepository implements ports.ProductionOrderRepository using GORM.
type GormProductionOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProductionOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormProductionOrderRepository {
	return &GormProductionOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new production order. A taken order number is reported as
// errs.DuplicateIdentifierError so that the caller can regenerate it.
func (r *GormProductionOrderRepository) Add(ctx context.Context, aggregate *productionorder.ProductionOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerrors.Translate(err, "add production order", "order number", aggregate.OrderNumber())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductionOrderRepository) Update(ctx context.Context, aggregate *productionorder.ProductionOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductionOrderDTO{}).Where("id = ?", dto.ID).
		Omit(clause.Associations).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrors.Translate(result.Error, "update production order", "order number", aggregate.OrderNumber())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("production order", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductionOrderRepository) Get(ctx context.Context, id kernel.UUID) (*productionorder.ProductionOrder, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormProductionOrderRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*productionorder.ProductionOrder, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// LatestOrderNumber returns the greatest order number of the die starting with prefix.
// Sequences are zero padded to three digits only, so longer numbers sort first
// (UE-7-1000 after UE-7-999).
func (r *GormProductionOrderRepository) LatestOrderNumber(
	ctx context.Context,
	dieID kernel.UUID,
	prefix string,
) (string, error) {
	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&ProductionOrderDTO{}).
		Where("die_id = ? AND order_number LIKE ?", dieID.Bytes(), escapeLike(prefix)+"%").
		Order("length(order_number) DESC, order_number DESC").
		Limit(1).
		Pluck("order_number", &numbers).Error; err != nil {
		return "", err
	}

	if len(numbers) == 0 {
		return "", nil
	}
	return numbers[0], nil
}

func (r *GormProductionOrderRepository) get(db *gorm.DB, id kernel.UUID) (*productionorder.ProductionOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductionOrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("production order", id.String())
		}
		return nil, pgerrors.Translate(err, "get production order", "production order", id.String())
	}
	return toDomain(dto)
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
