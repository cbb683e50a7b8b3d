package operatorrepo_test

import (
	"context"
	"testing"

	"dietrack/internal/adapters/out/postgres/operatorrepo"
	"dietrack/internal/adapters/out/postgres/pgtest"
	"dietrack/internal/adapters/out/postgres/workcenterrepo"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/operator"
	"dietrack/internal/core/domain/model/workcenter"
	"dietrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type tracker struct{}

func (tracker) TrackAggregate(kernel.UUID, any) {}

type OperatorRepositoryIntegrationTestSuite struct {
	suite.Suite
	container   *pgcontainer.PostgresContainer
	db          *gorm.DB
	repository  *operatorrepo.GormOperatorRepository
	lathe, mill *workcenter.WorkCenter
}

func (suite *OperatorRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *OperatorRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = operatorrepo.NewGormOperatorRepository(suite.db, tracker{})
	suite.lathe = suite.addWorkCenter("Lathe 1")
	suite.mill = suite.addWorkCenter("Mill 2")
}

func (suite *OperatorRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OperatorRepositoryIntegrationTestSuite) addWorkCenter(name string) *workcenter.WorkCenter {
	wc, err := workcenter.NewWorkCenter(kernel.NewUUID(), name, workcenter.Attributes{Type: "CNC"})
	suite.Require().NoError(err)
	suite.Require().NoError(workcenterrepo.NewGormWorkCenterRepository(suite.db, tracker{}).Add(context.Background(), wc))
	return wc
}

func (suite *OperatorRepositoryIntegrationTestSuite) add(rfid string, workCenters ...kernel.UUID) *operator.Operator {
	o, err := operator.NewOperator(kernel.NewUUID(), rfid, "Operator "+rfid, "", workCenters)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func (suite *OperatorRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	o := suite.add("04A1", suite.lathe.ID(), suite.mill.ID())

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("04A1", loaded.RFIDCode())
	suite.True(loaded.AssignedTo(suite.lathe.ID()))
	suite.True(loaded.AssignedTo(suite.mill.ID()))

	byBadge, err := suite.repository.GetByRFID(ctx, "04A1")
	suite.Require().NoError(err)
	suite.True(byBadge.ID().IsEqual(o.ID()))
}

func (suite *OperatorRepositoryIntegrationTestSuite) TestAdd_DuplicateRFID() {
	suite.add("04A1")
	o, err := operator.NewOperator(kernel.NewUUID(), "04A1", "Someone else", "", nil)
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrDuplicateIdentifier)
}

func (suite *OperatorRepositoryIntegrationTestSuite) TestAdd_UnknownWorkCenter() {
	o, err := operator.NewOperator(kernel.NewUUID(), "04A1", "Ayşe", "", []kernel.UUID{kernel.NewUUID()})
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *OperatorRepositoryIntegrationTestSuite) TestUpdate_ReplacesAssignments() {
	ctx := context.Background()
	o := suite.add("04A1", suite.lathe.ID())

	inactive := false
	suite.Require().NoError(o.Apply(operator.Changes{
		IsActive:      &inactive,
		WorkCenterIDs: &[]kernel.UUID{suite.mill.ID()},
	}))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsActive())
	suite.False(loaded.AssignedTo(suite.lathe.ID()))
	suite.True(loaded.AssignedTo(suite.mill.ID()))
}

func (suite *OperatorRepositoryIntegrationTestSuite) TestDeletingWorkCenterDropsAssignment() {
	ctx := context.Background()
	o := suite.add("04A1", suite.lathe.ID(), suite.mill.ID())

	suite.Require().NoError(workcenterrepo.NewGormWorkCenterRepository(suite.db, tracker{}).Delete(ctx, suite.mill.ID()))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{suite.lathe.ID()}, loaded.WorkCenterIDs())
}

func (suite *OperatorRepositoryIntegrationTestSuite) TestGetByRFID_NotFound() {
	_, err := suite.repository.GetByRFID(context.Background(), "FFFF")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOperatorRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OperatorRepositoryIntegrationTestSuite))
}
