package workorderrepo

import (
	"context"
	"errors"

	"dietrack/internal/adapters/out/postgres/pgerrors"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkOrderRepository implements ports.WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order and all of its operations.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerrors.Translate(err, "add work order", "work order number", aggregate.OrderNumber())
	}
	if len(dto.Operations) > 0 {
		if err := db.Omit(clause.Associations).Create(&dto.Operations).Error; err != nil {
			return pgerrors.Translate(err, "add work order", "operation", aggregate.OrderNumber())
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the work order and the state of its operations.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&WorkOrderDTO{}).Where("id = ?", dto.ID).
		Omit(clause.Associations).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrors.Translate(result.Error, "update work order", "work order number", aggregate.OrderNumber())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("work order", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	if len(dto.Operations) > 0 {
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).
			Omit(clause.Associations).
			Create(&dto.Operations).Error; err != nil {
			return pgerrors.Translate(err, "update work order", "operation", aggregate.OrderNumber())
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormWorkOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetByOperationForUpdate resolves the owning work order of an operation and locks it.
func (r *GormWorkOrderRepository) GetByOperationForUpdate(
	ctx context.Context,
	operationID kernel.UUID,
) (*workorder.WorkOrder, error) {
	if err := operationID.Validate(); err != nil {
		return nil, err
	}

	var workOrderIDs []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&OperationDTO{}).
		Where("id = ?", operationID.Bytes()).
		Pluck("work_order_id", &workOrderIDs).Error; err != nil {
		return nil, err
	}
	if len(workOrderIDs) == 0 {
		return nil, errs.NewObjectNotFoundError("operation", operationID.String())
	}

	workOrderID, err := kernel.UUIDFromBytes(workOrderIDs[0][:])
	if err != nil {
		return nil, err
	}
	return r.GetForUpdate(ctx, workOrderID)
}

func (r *GormWorkOrderRepository) CountByProductionOrder(ctx context.Context, productionOrderID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&WorkOrderDTO{}).
		Where("production_order_id = ?", productionOrderID.Bytes()).
		Count(&count).Error
	return count, err
}

func (r *GormWorkOrderRepository) HasOperationsAtWorkCenter(
	ctx context.Context,
	workCenterID kernel.UUID,
	statuses ...workorder.OperationStatus,
) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&OperationDTO{}).
		Where("work_center_id = ?", workCenterID.Bytes())

	if len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, s.String())
		}
		query = query.Where("status IN ?", names)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormWorkOrderRepository) get(db *gorm.DB, id kernel.UUID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work order", id.String())
		}
		return nil, pgerrors.Translate(err, "get work order", "work order", id.String())
	}

	if err := r.db.WithContext(db.Statement.Context).
		Where("work_order_id = ?", dto.ID).
		Order("sequence_number").
		Find(&dto.Operations).Error; err != nil {
		return nil, err
	}
	return toDomain(dto)
}
