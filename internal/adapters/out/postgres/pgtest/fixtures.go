package pgtest

import (
	"context"
	"time"

	"dietrack/internal/adapters/out/postgres/componenttyperepo"
	"dietrack/internal/adapters/out/postgres/dierepo"
	"dietrack/internal/adapters/out/postgres/dietyperepo"
	"dietrack/internal/adapters/out/postgres/productionorderrepo"
	"dietrack/internal/adapters/out/postgres/stockitemrepo"
	"dietrack/internal/adapters/out/postgres/workcenterrepo"
	"dietrack/internal/core/domain/model/componenttype"
	"dietrack/internal/core/domain/model/die"
	"dietrack/internal/core/domain/model/dietype"
	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/productionorder"
	"dietrack/internal/core/domain/model/workcenter"

	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// Plant is a persisted die ready for expansion: every component has its own component type
// whose BOM steps all run on one work center.
type Plant struct {
	WorkCenter     *workcenter.WorkCenter
	DieType        *dietype.DieType
	StockItem      *inventory.StockItem
	Die            *die.Die
	ComponentTypes map[kernel.UUID]*componenttype.ComponentType
	Order          *productionorder.ProductionOrder
}

// SeedDieType persists an active die type that accepts any component type.
func SeedDieType(ctx context.Context, db *gorm.DB, code string) (*dietype.DieType, error) {
	dt, err := dietype.NewDieType(kernel.NewUUID(), code, "Die type "+code, "")
	if err != nil {
		return nil, err
	}
	if err = dietyperepo.NewGormDieTypeRepository(db, noopTracker{}).Add(ctx, dt); err != nil {
		return nil, err
	}
	return dt, nil
}

// SeedStockItem persists a bar of the given alloy and diameter.
func SeedStockItem(ctx context.Context, db *gorm.DB, alloy string, diameterMm int) (*inventory.StockItem, error) {
	item, err := inventory.NewStockItem(kernel.NewUUID(), alloy, diameterMm, "")
	if err != nil {
		return nil, err
	}
	if err = stockitemrepo.NewGormStockItemRepository(db, noopTracker{}).Add(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SeedPlant persists a work center, a die type, a stock item, one component type per entry of
// bomSizes, a die with one component per component type and a Waiting production order
// numbered UE-<die>-001.
func SeedPlant(ctx context.Context, db *gorm.DB, dieNumber string, bomSizes ...int) (*Plant, error) {
	p := &Plant{ComponentTypes: make(map[kernel.UUID]*componenttype.ComponentType)}
	tracker := noopTracker{}

	wc, err := workcenter.NewWorkCenter(kernel.NewUUID(), "CNC-"+dieNumber, workcenter.Attributes{Type: "CNC"})
	if err != nil {
		return nil, err
	}
	if err = workcenterrepo.NewGormWorkCenterRepository(db, tracker).Add(ctx, wc); err != nil {
		return nil, err
	}
	p.WorkCenter = wc

	if p.DieType, err = SeedDieType(ctx, db, "DT-"+dieNumber); err != nil {
		return nil, err
	}
	if p.StockItem, err = SeedStockItem(ctx, db, "H13/"+dieNumber, 250); err != nil {
		return nil, err
	}

	d, err := die.NewDie(kernel.NewUUID(), p.DieType.ID(), dieNumber, 250, 120)
	if err != nil {
		return nil, err
	}

	ctRepo := componenttyperepo.NewGormComponentTypeRepository(db, tracker)
	for i, size := range bomSizes {
		ct, ctErr := componenttype.NewComponentType(kernel.NewUUID(), dieNumber+"-T"+string(rune('A'+i)), "type")
		if ctErr != nil {
			return nil, ctErr
		}
		for seq := 1; seq <= size; seq++ {
			wcID := wc.ID()
			step, stepErr := componenttype.NewStep(seq, "op", &wcID, 10*seq, "")
			if stepErr != nil {
				return nil, stepErr
			}
			if stepErr = ct.AddStep(step); stepErr != nil {
				return nil, stepErr
			}
		}
		if ctErr = ctRepo.Add(ctx, ct); ctErr != nil {
			return nil, ctErr
		}
		p.ComponentTypes[ct.ID()] = ct

		if _, ctErr = d.AddComponent(kernel.NewUUID(), ct.ID(), p.StockItem.ID(), 120, float64(5*(i+1))); ctErr != nil {
			return nil, ctErr
		}
	}
	if err = dierepo.NewGormDieRepository(db, tracker).Add(ctx, d); err != nil {
		return nil, err
	}
	p.Die = d

	po, err := productionorder.NewProductionOrder(kernel.NewUUID(), "UE-"+dieNumber+"-001", d.ID(), "", time.Now())
	if err != nil {
		return nil, err
	}
	if err = productionorderrepo.NewGormProductionOrderRepository(db, tracker).Add(ctx, po); err != nil {
		return nil, err
	}
	p.Order = po
	return p, nil
}
