package services

import (
	"sort"
	"time"

	"dietrack/internal/core/domain/model/componenttype"
	"dietrack/internal/core/domain/model/die"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/productionorder"
	"dietrack/internal/core/domain/model/workorder"
)

// WorkOrderExpander fans a production order out into one work order per die component,
// each carrying a snapshot of its component type's BOM as operations.
//
// Business rules:
//   - only a Waiting production order can be expanded (one-shot)
//   - the die must belong to the order, have at least one component and not be Completed
//   - components are processed by position; work order indexes run 1..N across the order
//   - every BOM step needs a preferred work center
//   - BOM steps are copied by value, later BOM edits never reach the operations
//
// On success the die is InProduction and the order InProgress with started_at set.
// On failure neither aggregate is modified.
//
// Example usage:
//
//	expander := services.NewWorkOrderExpander()
//	workOrders, err := expander.Expand(po, d, componentTypes, time.Now())
//	if errors.Is(err, services.ErrInvalidExpansionRequest) {
//	    // report the failed precondition
//	}
type WorkOrderExpander struct {
	numbers OrderNumberGenerator
	newID   func() kernel.UUID
}

func NewWorkOrderExpander() WorkOrderExpander {
	return WorkOrderExpander{
		numbers: NewOrderNumberGenerator(),
		newID:   kernel.NewUUID,
	}
}

// Expand builds the work orders of order. componentTypes must contain the component type of
// every die component, keyed by component type id.
//
// Returns:
//   - []*workorder.WorkOrder: the new work orders in index order, operations in sequence order
//   - error: *InvalidExpansionRequestError when a precondition fails, or a validation error
func (e WorkOrderExpander) Expand(
	order *productionorder.ProductionOrder,
	d *die.Die,
	componentTypes map[kernel.UUID]*componenttype.ComponentType,
	now time.Time,
) ([]*workorder.WorkOrder, error) {
	if err := e.validate(order, d); err != nil {
		return nil, err
	}

	components := d.Components()
	sort.SliceStable(components, func(i, j int) bool {
		return components[i].Position() < components[j].Position()
	})

	workOrders := make([]*workorder.WorkOrder, 0, len(components))
	for i, component := range components {
		wo, err := e.expandComponent(order, d, component, componentTypes, i+1)
		if err != nil {
			return nil, err
		}
		workOrders = append(workOrders, wo)
	}

	if err := d.StartProduction(); err != nil {
		return nil, err
	}
	if err := order.MarkExpanded(len(workOrders), now); err != nil {
		return nil, err
	}
	return workOrders, nil
}

func (e WorkOrderExpander) validate(order *productionorder.ProductionOrder, d *die.Die) error {
	if err := order.Validate(); err != nil {
		return newInvalidExpansionRequest(err, "production order is not constructed")
	}
	if err := d.Validate(); err != nil {
		return newInvalidExpansionRequest(err, "die is not constructed")
	}
	if err := order.ValidateExpandable(); err != nil {
		return newInvalidExpansionRequest(err, "production order %s cannot be expanded", order.OrderNumber())
	}
	if !order.DieID().IsEqual(d.ID()) {
		return newInvalidExpansionRequest(nil, "die %s does not belong to production order %s",
			d.DieNumber(), order.OrderNumber())
	}
	if _, err := d.Status().StartProduction(); err != nil {
		return newInvalidExpansionRequest(err, "die %s cannot start production", d.DieNumber())
	}
	if len(d.Components()) == 0 {
		return newInvalidExpansionRequest(nil, "die %s has no components", d.DieNumber())
	}
	return nil
}

func (e WorkOrderExpander) expandComponent(
	order *productionorder.ProductionOrder,
	d *die.Die,
	component *die.Component,
	componentTypes map[kernel.UUID]*componenttype.ComponentType,
	index int,
) (*workorder.WorkOrder, error) {
	ct, ok := componentTypes[component.ComponentTypeID()]
	if !ok || ct == nil {
		return nil, newInvalidExpansionRequest(nil, "component type %s of component %d is missing",
			component.ComponentTypeID().String(), component.Position())
	}

	wo, err := workorder.NewWorkOrder(
		e.newID(),
		order.ID(),
		component.ID(),
		e.numbers.WorkOrderNumber(d.DieNumber(), order.OrderNumber(), index),
		component.TheoreticalConsumptionKg(),
	)
	if err != nil {
		return nil, err
	}

	for _, step := range ct.BOM() {
		workCenterID := step.WorkCenterID()
		if workCenterID == nil {
			return nil, newInvalidExpansionRequest(nil, "BOM step %d of component type %s has no work center",
				step.SequenceNumber(), ct.Code())
		}

		op, err := workorder.NewOperation(
			e.newID(),
			step.SequenceNumber(),
			step.OperationName(),
			*workCenterID,
			step.EstimatedDurationMinutes(),
			step.Notes(),
		)
		if err != nil {
			return nil, err
		}
		if err = wo.AddOperation(op); err != nil {
			return nil, err
		}
	}
	return wo, nil
}
