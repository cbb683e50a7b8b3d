package productionorderrepo_test

import (
	"context"
	"testing"
	"time"

	"dietrack/internal/adapters/out/postgres/pgtest"
	"dietrack/internal/adapters/out/postgres/productionorderrepo"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/productionorder"
	"dietrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type tracker struct{}

func (tracker) TrackAggregate(kernel.UUID, any) {}

type ProductionOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *pgcontainer.PostgresContainer
	db         *gorm.DB
	repository *productionorderrepo.GormProductionOrderRepository
	plant      *pgtest.Plant
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = productionorderrepo.NewGormProductionOrderRepository(suite.db, tracker{})

	plant, err := pgtest.SeedPlant(context.Background(), suite.db, "1100", 1)
	suite.Require().NoError(err)
	suite.plant = plant
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) addOrder(number string) *productionorder.ProductionOrder {
	po, err := productionorder.NewProductionOrder(kernel.NewUUID(), number, suite.plant.Die.ID(), "", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), po))
	return po
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestLatestOrderNumber() {
	ctx := context.Background()
	suite.addOrder("UE-1100-002")
	suite.addOrder("UE-1100-010")

	latest, err := suite.repository.LatestOrderNumber(ctx, suite.plant.Die.ID(), "UE-1100-")

	suite.Require().NoError(err)
	suite.Equal("UE-1100-010", latest)
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestLatestOrderNumber_PastThreeDigits() {
	ctx := context.Background()
	suite.addOrder("UE-1100-999")
	suite.addOrder("UE-1100-1000")

	latest, err := suite.repository.LatestOrderNumber(ctx, suite.plant.Die.ID(), "UE-1100-")

	suite.Require().NoError(err)
	suite.Equal("UE-1100-1000", latest)
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestLatestOrderNumber_NoMatch() {
	latest, err := suite.repository.LatestOrderNumber(context.Background(), kernel.NewUUID(), "UE-9-")

	suite.Require().NoError(err)
	suite.Empty(latest)
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestLatestOrderNumber_EscapesWildcards() {
	latest, err := suite.repository.LatestOrderNumber(context.Background(), suite.plant.Die.ID(), "UE-11_0-")

	suite.Require().NoError(err)
	suite.Empty(latest)
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber() {
	po, err := productionorder.NewProductionOrder(kernel.NewUUID(), suite.plant.Order.OrderNumber(), suite.plant.Die.ID(), "", time.Now())
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), po)

	suite.Require().ErrorIs(err, errs.ErrDuplicateIdentifier)
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycle() {
	ctx := context.Background()
	po := suite.plant.Order
	suite.Require().NoError(po.MarkExpanded(1, time.Now()))
	suite.Require().NoError(po.Complete(time.Now()))

	suite.Require().NoError(suite.repository.Update(ctx, po))

	loaded, err := suite.repository.GetForUpdate(ctx, po.ID())
	suite.Require().NoError(err)
	suite.Equal(kernel.OrderCompleted, loaded.Status())
	suite.NotNil(loaded.StartedAt())
	suite.NotNil(loaded.CompletedAt())
}

func TestProductionOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductionOrderRepositoryIntegrationTestSuite))
}
