package postgres

import (
	"dietrack/internal/adapters/out/postgres/componenttyperepo"
	"dietrack/internal/adapters/out/postgres/dierepo"
	"dietrack/internal/adapters/out/postgres/dietyperepo"
	"dietrack/internal/adapters/out/postgres/lotrepo"
	"dietrack/internal/adapters/out/postgres/operatorrepo"
	"dietrack/internal/adapters/out/postgres/outboxrepo"
	"dietrack/internal/adapters/out/postgres/productionorderrepo"
	"dietrack/internal/adapters/out/postgres/stockitemrepo"
	"dietrack/internal/adapters/out/postgres/workcenterrepo"
	"dietrack/internal/adapters/out/postgres/workorderrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO, parents before children.
func Models() []any {
	return []any{
		&workcenterrepo.WorkCenterDTO{},
		&componenttyperepo.ComponentTypeDTO{},
		&componenttyperepo.BOMStepDTO{},
		&dietyperepo.DieTypeDTO{},
		&dietyperepo.DieTypeComponentDTO{},
		&stockitemrepo.StockItemDTO{},
		&operatorrepo.OperatorDTO{},
		&operatorrepo.OperatorWorkCenterDTO{},
		&dierepo.DieDTO{},
		&dierepo.DieComponentDTO{},
		&productionorderrepo.ProductionOrderDTO{},
		&lotrepo.LotDTO{},
		&lotrepo.StockMovementDTO{},
		&workorderrepo.WorkOrderDTO{},
		&workorderrepo.OperationDTO{},
		&outboxrepo.OutboxMessageDTO{},
	}
}

// Migrate creates or updates the schema including foreign keys and check constraints.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Tables lists the table names in an order safe for TRUNCATE ... CASCADE in tests.
func Tables() []string {
	return []string{
		"outbox_messages",
		"stock_movements",
		"work_order_operations",
		"work_orders",
		"lots",
		"production_orders",
		"die_components",
		"dies",
		"steel_stock_items",
		"die_type_components",
		"die_types",
		"operator_work_centers",
		"operators",
		"bom_steps",
		"component_types",
		"work_centers",
	}
}
