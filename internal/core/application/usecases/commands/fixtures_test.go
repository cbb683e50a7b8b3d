package commands_test

import (
	"testing"
	"time"

	"dietrack/internal/core/domain/model/componenttype"
	"dietrack/internal/core/domain/model/die"
	"dietrack/internal/core/domain/model/dietype"
	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/productionorder"
	"dietrack/internal/core/domain/model/workcenter"
	"dietrack/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/require"
)

func newTestWorkCenter(t *testing.T, name string) *workcenter.WorkCenter {
	t.Helper()
	wc, err := workcenter.NewWorkCenter(kernel.NewUUID(), name, workcenter.Attributes{Type: "CNC"})
	require.NoError(t, err)
	return wc
}

func newTestComponentType(t *testing.T, code string, workCenterID kernel.UUID, steps int) *componenttype.ComponentType {
	t.Helper()
	ct, err := componenttype.NewComponentType(kernel.NewUUID(), code, code)
	require.NoError(t, err)
	for seq := 1; seq <= steps; seq++ {
		wcID := workCenterID
		step, err := componenttype.NewStep(seq, "step", &wcID, 10, "")
		require.NoError(t, err)
		require.NoError(t, ct.AddStep(step))
	}
	return ct
}

func newTestDie(t *testing.T, number string, types ...*componenttype.ComponentType) *die.Die {
	t.Helper()
	d, err := die.NewDie(kernel.NewUUID(), kernel.NewUUID(), number, 250, 120)
	require.NoError(t, err)
	for i, ct := range types {
		_, err = d.AddComponent(kernel.NewUUID(), ct.ID(), kernel.NewUUID(), 120, float64(10*(i+1)))
		require.NoError(t, err)
	}
	return d
}

func newTestProductionOrder(t *testing.T, number string, d *die.Die) *productionorder.ProductionOrder {
	t.Helper()
	po, err := productionorder.NewProductionOrder(kernel.NewUUID(), number, d.ID(), "", time.Now())
	require.NoError(t, err)
	return po
}

// newTestWorkOrder builds a Waiting work order with one operation per sequence number,
// all on the same work center.
func newTestWorkOrder(t *testing.T, workCenterID kernel.UUID, sequences ...int) *workorder.WorkOrder {
	t.Helper()
	wo, err := workorder.NewWorkOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "IE-1100-001-01", 12.5)
	require.NoError(t, err)
	for _, seq := range sequences {
		op, err := workorder.NewOperation(kernel.NewUUID(), seq, "step", workCenterID, 30, "")
		require.NoError(t, err)
		require.NoError(t, wo.AddOperation(op))
	}
	return wo
}

func newTestLot(t *testing.T, grossKg float64) *inventory.Lot {
	t.Helper()
	lot, err := inventory.NewLot(kernel.NewUUID(), kernel.NewUUID(), "CERT-"+kernel.NewUUID().String()[:8], "Böhler", 3000, grossKg, time.Now())
	require.NoError(t, err)
	return lot
}

func newTestDieType(t *testing.T, code string, componentTypeIDs ...kernel.UUID) *dietype.DieType {
	t.Helper()
	dt, err := dietype.NewDieType(kernel.NewUUID(), code, code, "")
	require.NoError(t, err)
	for _, id := range componentTypeIDs {
		require.NoError(t, dt.AddComponentType(id))
	}
	return dt
}

func newTestStockItem(t *testing.T, diameterMm int) *inventory.StockItem {
	t.Helper()
	item, err := inventory.NewStockItem(kernel.NewUUID(), "H13", diameterMm, "")
	require.NoError(t, err)
	return item
}
