package queries_test

import (
	"context"
	"testing"

	"dietrack/internal/core/application/usecases/queries"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"GetProductionOrder", queries.GetProductionOrderQuery{}.Validate(), queries.ErrGetProductionOrderQueryIsNotConstructed},
		{"ListProductionOrders", queries.ListProductionOrdersQuery{}.Validate(), queries.ErrListProductionOrdersQueryIsNotConstructed},
		{"ListWorkOrderOperations", queries.ListWorkOrderOperationsQuery{}.Validate(), queries.ErrListWorkOrderOperationsQueryIsNotConstructed},
		{"ListWorkCenterQueue", queries.ListWorkCenterQueueQuery{}.Validate(), queries.ErrListWorkCenterQueueQueryIsNotConstructed},
		{"GetLot", queries.GetLotQuery{}.Validate(), queries.ErrGetLotQueryIsNotConstructed},
		{"ListDieTypes", queries.ListDieTypesQuery{}.Validate(), queries.ErrListDieTypesQueryIsNotConstructed},
		{"ListStockItems", queries.ListStockItemsQuery{}.Validate(), queries.ErrListStockItemsQueryIsNotConstructed},
		{"LoginOperator", queries.LoginOperatorQuery{}.Validate(), queries.ErrLoginOperatorQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, tt.err)
		})
	}
}

func TestQueryHandlers_RejectUnconstructedQueryBeforeTouchingTheDatabase(t *testing.T) {
	// a nil *gorm.DB would panic if the handler reached it
	_, err := queries.NewGetLotQueryHandler(nil).Handle(context.Background(), queries.GetLotQuery{})

	require.ErrorIs(t, err, queries.ErrGetLotQueryIsNotConstructed)
}

func TestNewListProductionOrdersQuery_RejectsUnknownStatus(t *testing.T) {
	_, err := queries.NewListProductionOrdersQuery(kernel.OrderWaiting, kernel.UnknownOrderStatus)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListWorkCenterQueueQuery(t *testing.T) {
	t.Run("copies the status filter", func(t *testing.T) {
		statuses := []workorder.OperationStatus{workorder.OperationWaiting}
		query, err := queries.NewListWorkCenterQueueQuery(kernel.NewUUID(), statuses...)
		require.NoError(t, err)

		statuses[0] = workorder.OperationCompleted

		assert.Equal(t, []workorder.OperationStatus{workorder.OperationWaiting}, query.Statuses())
	})

	t.Run("rejects a zero work center id", func(t *testing.T) {
		_, err := queries.NewListWorkCenterQueueQuery(kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, err := queries.NewListWorkCenterQueueQuery(kernel.NewUUID(), workorder.UnknownOperationStatus)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewLoginOperatorQuery(t *testing.T) {
	t.Run("trims the badge code", func(t *testing.T) {
		query, err := queries.NewLoginOperatorQuery("  04A1B2C3 ")

		require.NoError(t, err)
		assert.Equal(t, "04A1B2C3", query.RFIDCode())
	})

	t.Run("rejects an empty badge", func(t *testing.T) {
		_, err := queries.NewLoginOperatorQuery("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
